package pattern

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"quality_server/core/domain"
)

// memStore is an in-memory PatternStore for tests.
type memStore struct {
	patterns map[string]*domain.DomainPattern
	puts     int
}

func newMemStore() *memStore {
	return &memStore{patterns: make(map[string]*domain.DomainPattern)}
}

func (s *memStore) Get(ctx context.Context, mailDomain string) (*domain.DomainPattern, error) {
	return s.patterns[mailDomain], nil
}

func (s *memStore) Put(ctx context.Context, p *domain.DomainPattern) error {
	s.patterns[p.Domain] = p
	s.puts++
	return nil
}

func TestNormalizeName(t *testing.T) {
	tests := []struct {
		input     string
		wantFirst string
		wantLast  string
	}{
		{"Jane Doe", "jane", "doe"},
		{"  jane   doe  ", "jane", "doe"},
		{"José García", "jose", "garcia"},
		{"Mary Jane Watson", "mary", "watson"},
		{"O'Brien", "o", "brien"},
		{"Jean-Claude Van Damme", "jean", "damme"},
		{"Cher", "cher", ""},
		{"", "", ""},
	}
	for _, tt := range tests {
		got := NormalizeName(tt.input)
		if got.First != tt.wantFirst || got.Last != tt.wantLast {
			t.Errorf("NormalizeName(%q) = (%q, %q), want (%q, %q)",
				tt.input, got.First, got.Last, tt.wantFirst, tt.wantLast)
		}
	}
}

func TestSynthesizeLocalPart(t *testing.T) {
	tests := []struct {
		kind  domain.PatternKind
		first string
		last  string
		want  string
	}{
		{domain.PatternFirstDotLast, "jane", "doe", "jane.doe"},
		{domain.PatternFDotLast, "jane", "doe", "j.doe"},
		{domain.PatternFLast, "jane", "doe", "jdoe"},
		{domain.PatternFirstL, "jane", "doe", "janed"},
		{domain.PatternFirst, "jane", "doe", "jane"},
		{domain.PatternLastF, "jane", "doe", "doej"},
		{domain.PatternLast, "jane", "doe", "doe"},
		{domain.PatternFirstUnderLast, "jane", "doe", "jane_doe"},
		{domain.PatternFirstDashLast, "jane", "doe", "jane-doe"},
		{domain.PatternFirstDotLast, "cher", "", ""},
		{domain.PatternFirst, "cher", "", "cher"},
		{domain.PatternKind("bogus"), "jane", "doe", ""},
	}
	for _, tt := range tests {
		if got := SynthesizeLocalPart(tt.kind, tt.first, tt.last); got != tt.want {
			t.Errorf("SynthesizeLocalPart(%s, %q, %q) = %q, want %q",
				tt.kind, tt.first, tt.last, got, tt.want)
		}
	}
}

func TestGlobalPriorSumsToOne(t *testing.T) {
	var sum float64
	for _, p := range domain.GlobalPrior() {
		sum += p
	}
	if math.Abs(sum-1.0) > 1e-9 {
		t.Errorf("prior sums to %f, want 1.0", sum)
	}
}

func TestGuessWithoutEvidenceUsesPrior(t *testing.T) {
	m := NewModel(newMemStore(), zerolog.Nop())

	guesses := m.Guess(context.Background(), "acme.com", "Jane Doe", 3)
	if len(guesses) != 3 {
		t.Fatalf("expected 3 guesses, got %d", len(guesses))
	}
	if guesses[0].Email != "jane.doe@acme.com" {
		t.Errorf("top guess = %s, want jane.doe@acme.com", guesses[0].Email)
	}
	if guesses[0].Pattern != domain.PatternFirstDotLast {
		t.Errorf("top pattern = %s, want first.last", guesses[0].Pattern)
	}
	for _, g := range guesses {
		if g.Provenance != "prior:acme.com" {
			t.Errorf("provenance = %q, want prior:acme.com", g.Provenance)
		}
	}
	// Descending confidence.
	for i := 1; i < len(guesses); i++ {
		if guesses[i].Confidence > guesses[i-1].Confidence {
			t.Errorf("guesses not sorted: %f > %f", guesses[i].Confidence, guesses[i-1].Confidence)
		}
	}
}

func TestGuessDedupesCollidingPatterns(t *testing.T) {
	m := NewModel(newMemStore(), zerolog.Nop())

	// Single-token name: f.last, flast, lastf, last, first_last, and
	// first-last all synthesize empty; first and firstl collapse.
	guesses := m.Guess(context.Background(), "acme.com", "Cher", 9)
	seen := make(map[string]bool)
	for _, g := range guesses {
		if seen[g.Email] {
			t.Errorf("duplicate guess %s", g.Email)
		}
		seen[g.Email] = true
	}
	if len(guesses) != 1 {
		t.Errorf("expected 1 distinct guess for single-token name, got %d", len(guesses))
	}
}

func TestGuessRequiresNameAndDomain(t *testing.T) {
	m := NewModel(newMemStore(), zerolog.Nop())
	if got := m.Guess(context.Background(), "acme.com", "", 3); got != nil {
		t.Errorf("expected nil for empty name, got %v", got)
	}
	if got := m.Guess(context.Background(), "", "Jane Doe", 3); got != nil {
		t.Errorf("expected nil for empty domain, got %v", got)
	}
}

func TestLearnRoundTrip(t *testing.T) {
	store := newMemStore()
	m := NewModel(store, zerolog.Nop())
	ctx := context.Background()

	pairs := []domain.NamePair{
		{Name: "Jane Doe", Email: "jane.doe@acme.com"},
		{Name: "John Smith", Email: "john.smith@acme.com"},
		{Name: "Ada Lovelace", Email: "ada.lovelace@acme.com"},
		{Name: "Alan Turing", Email: "alan.turing@acme.com"},
		{Name: "Grace Hopper", Email: "ghopper@acme.com"}, // flast outlier
	}

	learned := m.Learn(ctx, "acme.com", pairs, 0)
	if learned.Domain != "acme.com" {
		t.Fatalf("learned domain = %q", learned.Domain)
	}
	if learned.TTL != DefaultTTL {
		t.Errorf("TTL = %v, want default %v", learned.TTL, DefaultTTL)
	}

	// Four of five observations are first.last; posterior must be
	// dominated by it.
	if learned.Distribution[domain.PatternFirstDotLast] <= 0.5 {
		t.Errorf("first.last posterior = %f, want > 0.5",
			learned.Distribution[domain.PatternFirstDotLast])
	}
	if learned.Distribution[domain.PatternFLast] <= domain.GlobalPrior()[domain.PatternFLast]/3 {
		t.Errorf("flast evidence did not register: %f", learned.Distribution[domain.PatternFLast])
	}

	var sum float64
	for _, p := range learned.Distribution {
		sum += p
	}
	if math.Abs(sum-1.0) > 1e-9 {
		t.Errorf("posterior sums to %f, want 1.0", sum)
	}

	// Guesses now come from the learned distribution.
	guesses := m.Guess(ctx, "acme.com", "Tim Fielding", 3)
	if len(guesses) == 0 {
		t.Fatal("expected guesses")
	}
	if guesses[0].Email != "tim.fielding@acme.com" {
		t.Errorf("top guess = %s, want tim.fielding@acme.com", guesses[0].Email)
	}
	if guesses[0].Provenance != "learned:acme.com" {
		t.Errorf("provenance = %q, want learned:acme.com", guesses[0].Provenance)
	}
}

// Learn recomputes from scratch; feeding the same pairs twice must give
// the same distribution, not double counts.
func TestLearnIsIdempotent(t *testing.T) {
	store := newMemStore()
	m := NewModel(store, zerolog.Nop())
	ctx := context.Background()

	pairs := []domain.NamePair{
		{Name: "Jane Doe", Email: "jane.doe@acme.com"},
		{Name: "John Smith", Email: "jsmith@acme.com"},
	}

	first := m.Learn(ctx, "acme.com", pairs, time.Hour)
	second := m.Learn(ctx, "acme.com", pairs, time.Hour)

	for _, kind := range domain.AllPatternKinds {
		if math.Abs(first.Distribution[kind]-second.Distribution[kind]) > 1e-12 {
			t.Errorf("distribution for %s drifted: %f vs %f",
				kind, first.Distribution[kind], second.Distribution[kind])
		}
	}
	if store.puts != 2 {
		t.Errorf("expected 2 store writes, got %d", store.puts)
	}
}

func TestLearnSkipsNonPersonalEvidence(t *testing.T) {
	store := newMemStore()
	m := NewModel(store, zerolog.Nop())

	withNoise := m.Learn(context.Background(), "acme.com", []domain.NamePair{
		{Name: "Info Desk", Email: "info@acme.com"},
		{Name: "Jane Doe", Email: "jane.doe@acme.com"},
	}, time.Hour)

	clean := m.Learn(context.Background(), "other.com", []domain.NamePair{
		{Name: "Jane Doe", Email: "jane.doe@other.com"},
	}, time.Hour)

	for _, kind := range domain.AllPatternKinds {
		if math.Abs(withNoise.Distribution[kind]-clean.Distribution[kind]) > 1e-12 {
			t.Errorf("role email influenced the distribution for %s", kind)
		}
	}
}

func TestGuessFallsBackToPriorOnExpiry(t *testing.T) {
	store := newMemStore()
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	m := NewModel(store, zerolog.Nop()).WithClock(func() time.Time { return base })

	// Learn a distribution heavily skewed to flast.
	m.Learn(context.Background(), "acme.com", []domain.NamePair{
		{Name: "Jane Doe", Email: "jdoe@acme.com"},
		{Name: "John Smith", Email: "jsmith@acme.com"},
		{Name: "Ada Lovelace", Email: "alovelace@acme.com"},
		{Name: "Alan Turing", Email: "aturing@acme.com"},
		{Name: "Grace Hopper", Email: "ghopper@acme.com"},
		{Name: "Tim Fielding", Email: "tfielding@acme.com"},
	}, time.Hour)

	fresh := m.Guess(context.Background(), "acme.com", "Mary Watson", 1)
	if fresh[0].Email != "mwatson@acme.com" {
		t.Fatalf("fresh top guess = %s, want mwatson@acme.com", fresh[0].Email)
	}

	// Advance past the TTL; the stored pattern is stale.
	m.WithClock(func() time.Time { return base.Add(2 * time.Hour) })

	stale := m.Guess(context.Background(), "acme.com", "Mary Watson", 1)
	if stale[0].Email != "mary.watson@acme.com" {
		t.Errorf("stale top guess = %s, want prior-ranked mary.watson@acme.com", stale[0].Email)
	}
	if stale[0].Provenance != "prior:acme.com" {
		t.Errorf("provenance = %q, want prior:acme.com", stale[0].Provenance)
	}
}
