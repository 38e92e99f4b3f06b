// Package textrepair provides text cleanup for scraped web fragments.
package textrepair

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// CollapseWhitespace trims the string and folds any run of whitespace
// into a single space.
func CollapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// Longest returns the longer of two strings, preferring a over b on ties.
func Longest(a, b string) string {
	if len(strings.TrimSpace(b)) > len(strings.TrimSpace(a)) {
		return b
	}
	return a
}

// DedupeStrings removes duplicates from a string multiset, preserving
// first-seen order. Comparison is case-insensitive on the trimmed form.
func DedupeStrings(items []string) []string {
	if len(items) == 0 {
		return nil
	}
	seen := make(map[string]bool, len(items))
	out := make([]string, 0, len(items))
	for _, item := range items {
		key := strings.ToLower(strings.TrimSpace(item))
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, strings.TrimSpace(item))
	}
	return out
}

var diacriticStripper = transform.Chain(
	norm.NFD,
	runes.Remove(runes.In(unicode.Mn)),
	norm.NFC,
)

// StripDiacritics folds accented characters to their base form
// ("Renée" -> "Renee"). Input that fails to transform is returned as-is.
func StripDiacritics(s string) string {
	out, _, err := transform.String(diacriticStripper, s)
	if err != nil {
		return s
	}
	return out
}

// CompactKey lowercases, strips diacritics, and removes everything that
// is not a letter or digit. Used as the lookup key for phrase tables.
func CompactKey(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(StripDiacritics(s)) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}
