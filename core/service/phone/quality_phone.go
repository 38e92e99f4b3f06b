// Package phone converts scraped phone strings into canonical form.
package phone

import (
	"fmt"
	"strings"
)

// Format tags how a normalized number should be interpreted.
type Format string

const (
	FormatUSLocal    Format = "us_local"
	FormatUSE164     Format = "us_e164"
	FormatIntlE164   Format = "intl_e164"
	FormatDigitsOnly Format = "digits_only"
)

// Options controls normalization behavior.
type Options struct {
	// PreferUS formats ambiguous 10-digit numbers as NANP. Without it a
	// bare 10-digit number stays unformatted rather than guessing a
	// country.
	PreferUS bool
}

// Result is the normalized number plus its format tag.
type Result struct {
	Normalized string `json:"normalized"`
	Format     Format `json:"format"`
}

// Normalize extracts digits and applies NANP/international rules.
// Never errors; unparseable input yields an empty normalized string
// tagged digits_only.
func Normalize(input string, opts Options) Result {
	trimmed := strings.TrimSpace(input)
	hadPlus := strings.HasPrefix(trimmed, "+")

	var digits strings.Builder
	for _, r := range trimmed {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	d := digits.String()
	hadZeroZero := strings.HasPrefix(d, "00") && !hadPlus

	if d == "" {
		return Result{Format: FormatDigitsOnly}
	}

	switch {
	case len(d) == 10 && !hadPlus:
		if opts.PreferUS {
			return Result{Normalized: formatNANP(d), Format: FormatUSLocal}
		}
		return Result{Normalized: d, Format: FormatDigitsOnly}

	case len(d) == 11 && d[0] == '1':
		if opts.PreferUS {
			return Result{Normalized: "+1 " + formatNANP(d[1:]), Format: FormatUSE164}
		}
		return Result{Normalized: "+" + d, Format: FormatUSE164}

	case hadPlus:
		return Result{Normalized: "+" + d, Format: FormatIntlE164}

	case hadZeroZero:
		return Result{Normalized: "+" + d[2:], Format: FormatIntlE164}

	case len(d) >= 11 && len(d) <= 15:
		// Long enough to carry a country code; assume international.
		return Result{Normalized: "+" + d, Format: FormatIntlE164}

	default:
		return Result{Normalized: d, Format: FormatDigitsOnly}
	}
}

func formatNANP(d string) string {
	return fmt.Sprintf("(%s) %s-%s", d[:3], d[3:6], d[6:])
}
