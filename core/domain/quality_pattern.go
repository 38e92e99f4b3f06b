package domain

import (
	"context"
	"time"
)

// PatternKind enumerates the naming conventions the model can learn.
// The set is closed; SynthesizeLocalPart in the pattern service is total
// over it, which gives exhaustiveness checking instead of key iteration.
type PatternKind string

const (
	PatternFirstDotLast   PatternKind = "first.last"
	PatternFDotLast       PatternKind = "f.last"
	PatternFLast          PatternKind = "flast"
	PatternFirstL         PatternKind = "firstl"
	PatternFirst          PatternKind = "first"
	PatternLastF          PatternKind = "lastf"
	PatternLast           PatternKind = "last"
	PatternFirstUnderLast PatternKind = "first_last"
	PatternFirstDashLast  PatternKind = "first-last"
)

// AllPatternKinds is the canonical iteration order for the nine kinds.
var AllPatternKinds = []PatternKind{
	PatternFirstDotLast,
	PatternFDotLast,
	PatternFLast,
	PatternFirstL,
	PatternFirst,
	PatternLastF,
	PatternLast,
	PatternFirstUnderLast,
	PatternFirstDashLast,
}

// GlobalPrior returns the baseline distribution used for domains with no
// (or expired) learned pattern. Constants reflect observed real-world
// convention frequency: one dominant pattern, long tail.
func GlobalPrior() map[PatternKind]float64 {
	return map[PatternKind]float64{
		PatternFirstDotLast:   0.36,
		PatternFDotLast:       0.18,
		PatternFLast:          0.18,
		PatternFirstL:         0.08,
		PatternFirst:          0.06,
		PatternLastF:          0.05,
		PatternLast:           0.04,
		PatternFirstUnderLast: 0.03,
		PatternFirstDashLast:  0.02,
	}
}

// DomainPattern is one organization's learned naming convention.
// Probabilities sum to 1.0 within floating epsilon.
type DomainPattern struct {
	Domain       string                  `json:"domain"`
	Distribution map[PatternKind]float64 `json:"distribution"`
	LastUpdated  time.Time               `json:"last_updated"`
	TTL          time.Duration           `json:"ttl_ms"`
}

// Expired reports whether the pattern is past its TTL at the given time.
// Expired patterns are treated as absent, never silently served.
func (p *DomainPattern) Expired(now time.Time) bool {
	if p == nil {
		return true
	}
	return now.Sub(p.LastUpdated) > p.TTL
}

// GuessResult is one synthesized candidate email for a (name, domain)
// pair, ordered by descending confidence. Never persisted.
type GuessResult struct {
	Email      string      `json:"email"`
	Confidence float64     `json:"confidence"`
	Pattern    PatternKind `json:"pattern"`
	Provenance string      `json:"provenance"`
}

// PatternStore persists learned domain patterns keyed by domain.
// Get returns (nil, nil) when the domain has no stored pattern.
type PatternStore interface {
	Get(ctx context.Context, domain string) (*DomainPattern, error)
	Put(ctx context.Context, pattern *DomainPattern) error
}
