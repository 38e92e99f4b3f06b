package pattern

import (
	"strings"
	"unicode"

	"quality_server/core/service/textrepair"
)

// NormalizedName holds the lowercase, diacritic-free first and last
// tokens of a person's name.
type NormalizedName struct {
	First string
	Last  string
}

// NormalizeName lowercases, strips diacritics, splits on whitespace,
// apostrophes, and hyphens, and keeps the first and last tokens.
// Single-token names have an empty Last.
func NormalizeName(name string) NormalizedName {
	lowered := strings.ToLower(textrepair.StripDiacritics(name))
	tokens := strings.FieldsFunc(lowered, func(r rune) bool {
		return unicode.IsSpace(r) || r == '\'' || r == '-' || r == '’'
	})

	clean := tokens[:0]
	for _, t := range tokens {
		if t = keepLetters(t); t != "" {
			clean = append(clean, t)
		}
	}

	switch len(clean) {
	case 0:
		return NormalizedName{}
	case 1:
		return NormalizedName{First: clean[0]}
	default:
		return NormalizedName{First: clean[0], Last: clean[len(clean)-1]}
	}
}

func keepLetters(s string) string {
	var b strings.Builder
	for _, r := range s {
		if unicode.IsLetter(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}
