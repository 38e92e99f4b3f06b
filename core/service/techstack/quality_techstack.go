// Package techstack canonicalizes free-text technology names.
package techstack

import (
	"strings"
	"unicode"

	"github.com/agnivade/levenshtein"
)

// maxFuzzyDistance bounds the edit distance accepted when matching a
// near-miss alias ("postgress" -> PostgreSQL). Keys shorter than
// minFuzzyKeyLen are exact-match only; short keys collide too easily.
const (
	maxFuzzyDistance = 1
	minFuzzyKeyLen   = 5
)

// Normalize maps a free-text technology name to its canonical form via
// the alias table, falling back to a bounded fuzzy match and finally to
// a trimmed pass-through. Empty input yields "".
func Normalize(input string) string {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return ""
	}

	key := compactTech(trimmed)
	if canonical, ok := techAliases[key]; ok {
		return canonical
	}

	if len(key) >= minFuzzyKeyLen {
		if canonical, ok := fuzzyLookup(key); ok {
			return canonical
		}
	}

	return trimmed
}

// NormalizeAll normalizes a list and drops duplicates, preserving order.
func NormalizeAll(inputs []string) []string {
	if len(inputs) == 0 {
		return nil
	}
	seen := make(map[string]bool, len(inputs))
	out := make([]string, 0, len(inputs))
	for _, in := range inputs {
		n := Normalize(in)
		if n == "" || seen[strings.ToLower(n)] {
			continue
		}
		seen[strings.ToLower(n)] = true
		out = append(out, n)
	}
	return out
}

func fuzzyLookup(key string) (string, bool) {
	for alias, canonical := range techAliases {
		if len(alias) < minFuzzyKeyLen {
			continue
		}
		if levenshtein.ComputeDistance(key, alias) <= maxFuzzyDistance {
			return canonical, true
		}
	}
	return "", false
}

func compactTech(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}
