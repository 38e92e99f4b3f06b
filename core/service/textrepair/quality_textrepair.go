package textrepair

import (
	"strings"
	"unicode"
)

// Repair splits run-together words and maps known concatenated
// navigation phrases back to readable labels.
//
// Order of operations: split camelCase boundaries and connector
// characters into spaces, then look up the fully compacted form of the
// whole string against the multilingual phrase table. A dictionary hit
// wins; otherwise the split-only result is kept. Consecutive duplicate
// tokens and redundant whitespace are always collapsed. Never errors;
// empty input yields "".
func Repair(input string) string {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return ""
	}

	split := splitConcatenated(trimmed)

	if label, ok := knownPhrases[CompactKey(trimmed)]; ok {
		split = label
	}

	return collapseDuplicateTokens(CollapseWhitespace(split))
}

// splitConcatenated inserts spaces at lower-to-upper transitions and
// replaces connector characters with spaces.
func splitConcatenated(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 8)

	runes := []rune(s)
	for i, r := range runes {
		if r == '-' || r == '_' {
			b.WriteRune(' ')
			continue
		}
		if i > 0 && unicode.IsUpper(r) && unicode.IsLower(runes[i-1]) {
			b.WriteRune(' ')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// collapseDuplicateTokens drops a token when it case-insensitively
// equals the previous one ("Contact Contact us" -> "Contact us").
func collapseDuplicateTokens(s string) string {
	fields := strings.Fields(s)
	if len(fields) < 2 {
		return s
	}
	out := fields[:1]
	for _, f := range fields[1:] {
		if strings.EqualFold(f, out[len(out)-1]) {
			continue
		}
		out = append(out, f)
	}
	return strings.Join(out, " ")
}
