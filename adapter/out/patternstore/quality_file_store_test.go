package patternstore

import (
	"context"
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"quality_server/core/domain"
)

func samplePattern(mailDomain string) *domain.DomainPattern {
	return &domain.DomainPattern{
		Domain: mailDomain,
		Distribution: map[domain.PatternKind]float64{
			domain.PatternFirstDotLast: 0.7,
			domain.PatternFLast:        0.3,
		},
		LastUpdated: time.Date(2026, 3, 14, 9, 26, 53, 589793000, time.UTC),
		TTL:         30 * 24 * time.Hour,
	}
}

func TestFileStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "patterns.json")
	store := NewFileStore(path)
	ctx := context.Background()

	if err := store.Put(ctx, samplePattern("acme.com")); err != nil {
		t.Fatalf("Put: %v", err)
	}
	if err := store.Put(ctx, samplePattern("globex.com")); err != nil {
		t.Fatalf("Put: %v", err)
	}

	got, err := store.Get(ctx, "acme.com")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got == nil {
		t.Fatal("expected a pattern, got nil")
	}

	want := samplePattern("acme.com")
	if got.Domain != want.Domain {
		t.Errorf("domain = %q, want %q", got.Domain, want.Domain)
	}
	if !got.LastUpdated.Equal(want.LastUpdated) {
		t.Errorf("lastUpdated = %v, want %v", got.LastUpdated, want.LastUpdated)
	}
	if got.TTL != want.TTL {
		t.Errorf("ttl = %v, want %v", got.TTL, want.TTL)
	}
	for kind, prob := range want.Distribution {
		if math.Abs(got.Distribution[kind]-prob) > 1e-12 {
			t.Errorf("distribution[%s] = %f, want %f", kind, got.Distribution[kind], prob)
		}
	}
}

func TestFileStoreGetMissing(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "patterns.json"))

	got, err := store.Get(context.Background(), "nowhere.example")
	if err != nil {
		t.Fatalf("Get on missing file: %v", err)
	}
	if got != nil {
		t.Errorf("expected nil for unknown domain, got %+v", got)
	}
}

func TestFileStorePutOverwritesDomain(t *testing.T) {
	path := filepath.Join(t.TempDir(), "patterns.json")
	store := NewFileStore(path)
	ctx := context.Background()

	first := samplePattern("acme.com")
	if err := store.Put(ctx, first); err != nil {
		t.Fatalf("Put: %v", err)
	}

	second := samplePattern("acme.com")
	second.Distribution = map[domain.PatternKind]float64{domain.PatternFLast: 1.0}
	if err := store.Put(ctx, second); err != nil {
		t.Fatalf("Put: %v", err)
	}

	got, err := store.Get(ctx, "acme.com")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if len(got.Distribution) != 1 || got.Distribution[domain.PatternFLast] != 1.0 {
		t.Errorf("expected replaced distribution, got %v", got.Distribution)
	}
}

func TestFileStoreRejectsCorruptDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "patterns.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	store := NewFileStore(path)

	if _, err := store.Get(context.Background(), "acme.com"); err == nil {
		t.Error("expected an error for a corrupt document")
	}
}
