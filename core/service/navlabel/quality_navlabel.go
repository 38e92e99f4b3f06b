// Package navlabel classifies strings as site-navigation boilerplate.
package navlabel

import (
	"strings"

	"quality_server/core/service/textrepair"
)

// Detector answers whether a scraped string is a navigation/boilerplate
// phrase rather than a person's name. It is a gate, never a transformer:
// candidates are classified, not mutated.
type Detector struct {
	spaced  map[string]bool
	compact map[string]bool
}

// NewDetector builds the detector from the static lexicon.
func NewDetector() *Detector {
	d := &Detector{
		spaced:  make(map[string]bool, len(navPhrases)),
		compact: make(map[string]bool, len(navPhrases)),
	}
	for _, phrase := range navPhrases {
		d.spaced[phrase] = true
		d.compact[textrepair.CompactKey(phrase)] = true
	}
	return d
}

// IsNavLabel reports whether the input, after concatenation repair and
// lowercasing, appears in the lexicon in either spaced or compacted form.
func (d *Detector) IsNavLabel(input string) bool {
	repaired := strings.ToLower(textrepair.Repair(input))
	if repaired == "" {
		return false
	}
	if d.spaced[repaired] {
		return true
	}
	return d.compact[textrepair.CompactKey(repaired)]
}
