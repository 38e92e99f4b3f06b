// Package pattern learns per-domain email naming conventions and ranks
// synthesized guesses by learned probability.
package pattern

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"quality_server/core/domain"
	"quality_server/core/service/emailfilter"
)

// PriorWeight is the pseudo-count regularizer applied to the global
// prior. Domains with few observations still resemble the prior;
// domains with many observations are dominated by evidence.
const PriorWeight = 3.0

// DefaultTTL is how long a learned distribution stays fresh.
const DefaultTTL = 30 * 24 * time.Hour

// Model learns and serves domain naming-pattern distributions backed by
// a PatternStore. Safe for concurrent use when the store is.
type Model struct {
	store domain.PatternStore
	log   zerolog.Logger
	now   func() time.Time
}

// NewModel creates a pattern model over the given store.
func NewModel(store domain.PatternStore, log zerolog.Logger) *Model {
	return &Model{store: store, log: log, now: time.Now}
}

// WithClock overrides the model's time source. Test hook.
func (m *Model) WithClock(now func() time.Time) *Model {
	m.now = now
	return m
}

// SynthesizeLocalPart builds the local part for a pattern kind from
// normalized first/last tokens. Total over the enum; unknown kinds and
// names missing a required token yield "".
func SynthesizeLocalPart(kind domain.PatternKind, first, last string) string {
	f1 := firstChar(first)
	l1 := firstChar(last)

	switch kind {
	case domain.PatternFirstDotLast:
		return joinNonEmpty(first, ".", last)
	case domain.PatternFDotLast:
		return joinNonEmpty(f1, ".", last)
	case domain.PatternFLast:
		return joinNonEmpty(f1, "", last)
	case domain.PatternFirstL:
		return joinNonEmpty(first, "", l1)
	case domain.PatternFirst:
		return first
	case domain.PatternLastF:
		return joinNonEmpty(last, "", f1)
	case domain.PatternLast:
		return last
	case domain.PatternFirstUnderLast:
		return joinNonEmpty(first, "_", last)
	case domain.PatternFirstDashLast:
		return joinNonEmpty(first, "-", last)
	default:
		return ""
	}
}

// Learn recomputes the domain's distribution from scratch using the
// observed pairs plus the prior pseudo-counts, then persists it,
// wholly replacing any previous distribution. Pairs whose email
// classifies as non-personal are skipped as evidence. A store write
// failure is logged and the computed pattern is still returned, since
// Learn is idempotent by recomputation.
func (m *Model) Learn(ctx context.Context, mailDomain string, pairs []domain.NamePair, ttl time.Duration) *domain.DomainPattern {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	mailDomain = strings.ToLower(strings.TrimSpace(mailDomain))

	counts := make(map[domain.PatternKind]float64, len(domain.AllPatternKinds))
	observed := 0

	for _, pair := range pairs {
		if emailfilter.Classify(pair.Email) != domain.EmailClassPersonal {
			continue
		}
		name := NormalizeName(pair.Name)
		if name.First == "" {
			continue
		}
		local := emailfilter.LocalPart(pair.Email)

		for _, kind := range domain.AllPatternKinds {
			if synth := SynthesizeLocalPart(kind, name.First, name.Last); synth != "" && synth == local {
				counts[kind]++
				observed++
			}
		}
	}

	prior := domain.GlobalPrior()
	posterior := make(map[domain.PatternKind]float64, len(domain.AllPatternKinds))
	var sum float64
	for _, kind := range domain.AllPatternKinds {
		p := counts[kind] + PriorWeight*prior[kind]
		posterior[kind] = p
		sum += p
	}
	for kind := range posterior {
		posterior[kind] /= sum
	}

	learned := &domain.DomainPattern{
		Domain:       mailDomain,
		Distribution: posterior,
		LastUpdated:  m.now(),
		TTL:          ttl,
	}

	if err := m.store.Put(ctx, learned); err != nil {
		m.log.Warn().Err(err).Str("domain", mailDomain).
			Msg("pattern store write failed; returning in-memory result")
	} else {
		m.log.Debug().Str("domain", mailDomain).Int("observations", observed).
			Int("pairs", len(pairs)).Msg("learned domain pattern")
	}

	return learned
}

// Guess synthesizes candidate emails for a name at a domain, ranked by
// descending pattern probability. An expired stored pattern falls back
// to the global prior, never silently served.
func (m *Model) Guess(ctx context.Context, mailDomain, name string, limit int) []domain.GuessResult {
	if limit <= 0 {
		limit = 3
	}
	mailDomain = strings.ToLower(strings.TrimSpace(mailDomain))

	normalized := NormalizeName(name)
	if normalized.First == "" || mailDomain == "" {
		return nil
	}

	dist := domain.GlobalPrior()
	provenance := "prior:" + mailDomain
	if stored, err := m.store.Get(ctx, mailDomain); err != nil {
		m.log.Warn().Err(err).Str("domain", mailDomain).Msg("pattern store read failed; using prior")
	} else if stored != nil && !stored.Expired(m.now()) {
		dist = stored.Distribution
		provenance = "learned:" + mailDomain
	}

	results := make([]domain.GuessResult, 0, len(domain.AllPatternKinds))
	seen := make(map[string]bool, len(domain.AllPatternKinds))
	for _, kind := range domain.AllPatternKinds {
		local := SynthesizeLocalPart(kind, normalized.First, normalized.Last)
		if local == "" || seen[local] {
			continue
		}
		seen[local] = true
		results = append(results, domain.GuessResult{
			Email:      local + "@" + mailDomain,
			Confidence: dist[kind],
			Pattern:    kind,
			Provenance: provenance,
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Confidence > results[j].Confidence
	})

	if len(results) > limit {
		results = results[:limit]
	}
	return results
}

func firstChar(s string) string {
	if s == "" {
		return ""
	}
	return string([]rune(s)[0])
}

func joinNonEmpty(a, sep, b string) string {
	if a == "" || b == "" {
		return ""
	}
	return a + sep + b
}
