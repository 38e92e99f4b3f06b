package verify

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"quality_server/core/domain"
)

// fakeResolver counts calls and serves canned MX records per domain.
type fakeResolver struct {
	calls   int
	records map[string][]domain.MXRecord
	err     error
}

func (f *fakeResolver) ResolveMX(ctx context.Context, mailDomain string) ([]domain.MXRecord, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.records[mailDomain], nil
}

type fakeDetector struct {
	calls   int
	verdict domain.CatchAllVerdict
	err     error
}

func (f *fakeDetector) DetectCatchAll(ctx context.Context, mailDomain string) (domain.CatchAllVerdict, error) {
	f.calls++
	return f.verdict, f.err
}

type fakeProber struct {
	calls    int
	verdicts map[string]domain.ProbeVerdict
	err      error
}

func (f *fakeProber) SMTPProbe(ctx context.Context, email string) (domain.ProbeVerdict, error) {
	f.calls++
	if f.err != nil {
		return domain.ProbeUnknown, f.err
	}
	if v, ok := f.verdicts[email]; ok {
		return v, nil
	}
	return domain.ProbeUnknown, nil
}

func acmeMX() map[string][]domain.MXRecord {
	return map[string][]domain.MXRecord{
		"acme.com": {{Exchange: "mx2.acme.com", Priority: 20}, {Exchange: "mx1.acme.com", Priority: 10}},
	}
}

func allStages() []domain.VerificationStage {
	return []domain.VerificationStage{
		domain.StageSyntax, domain.StageMX, domain.StageCatchAll, domain.StageSMTP,
	}
}

func TestVerifySyntaxFailureIsTerminal(t *testing.T) {
	resolver := &fakeResolver{records: acmeMX()}
	p := NewPipeline(Adapters{ResolveMX: resolver}, zerolog.Nop())

	result := p.Verify(context.Background(), "not-an-email", Options{Stages: allStages()})

	if result.Status != domain.StatusInvalid {
		t.Errorf("status = %s, want invalid", result.Status)
	}
	if result.Steps.Syntax == nil || result.Steps.Syntax.OK {
		t.Error("expected a failed syntax step")
	}
	if result.Steps.MX != nil {
		t.Error("later stages must not run after a syntax failure")
	}
	if resolver.calls != 0 {
		t.Errorf("resolver called %d times after terminal syntax failure", resolver.calls)
	}
	if len(result.Reasons) == 0 {
		t.Error("expected a syntax reason")
	}
}

func TestVerifyDefaultStagesPass(t *testing.T) {
	p := NewPipeline(Adapters{ResolveMX: &fakeResolver{records: acmeMX()}}, zerolog.Nop())

	result := p.Verify(context.Background(), "jane.doe@acme.com", Options{})

	if result.Status != domain.StatusRisky {
		t.Errorf("status = %s, want risky (syntax+mx alone cannot prove deliverability)", result.Status)
	}
	if result.Steps.Syntax == nil || !result.Steps.Syntax.OK {
		t.Error("expected passing syntax step")
	}
	if result.Steps.MX == nil || !result.Steps.MX.OK {
		t.Error("expected passing mx step")
	}
	if result.Steps.CatchAll != nil || result.Steps.SMTP != nil {
		t.Error("default stage set must not include catchAll or smtp")
	}
	// Records come back sorted by priority.
	if result.Steps.MX.Records[0].Exchange != "mx1.acme.com" {
		t.Errorf("expected mx1 first, got %s", result.Steps.MX.Records[0].Exchange)
	}
}

func TestVerifyMXCachePreventsRepeatLookups(t *testing.T) {
	resolver := &fakeResolver{records: acmeMX()}
	p := NewPipeline(Adapters{ResolveMX: resolver}, zerolog.Nop())
	ctx := context.Background()

	p.Verify(ctx, "jane.doe@acme.com", Options{})
	p.Verify(ctx, "john.smith@acme.com", Options{})
	p.Verify(ctx, "ada.lovelace@acme.com", Options{})

	if resolver.calls != 1 {
		t.Errorf("resolver called %d times for one domain, want 1", resolver.calls)
	}
}

func TestVerifyMXCacheExpires(t *testing.T) {
	resolver := &fakeResolver{records: acmeMX()}
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	p := NewPipeline(Adapters{
		ResolveMX: resolver,
		Now:       func() time.Time { return now },
	}, zerolog.Nop())
	ctx := context.Background()
	opts := Options{DomainTTL: time.Hour}

	p.Verify(ctx, "jane.doe@acme.com", opts)
	now = now.Add(2 * time.Hour)
	p.Verify(ctx, "jane.doe@acme.com", opts)

	if resolver.calls != 2 {
		t.Errorf("resolver called %d times across TTL expiry, want 2", resolver.calls)
	}
}

func TestVerifyNoMXRecordsIsRisky(t *testing.T) {
	p := NewPipeline(Adapters{ResolveMX: &fakeResolver{}}, zerolog.Nop())

	result := p.Verify(context.Background(), "jane@nomx.example", Options{})

	if result.Status != domain.StatusRisky {
		t.Errorf("status = %s, want risky", result.Status)
	}
	if result.Steps.MX.OK {
		t.Error("mx step must not be ok without records")
	}
	if len(result.Reasons) == 0 {
		t.Error("expected an mx reason")
	}
}

func TestVerifyMXErrorLeavesUnknown(t *testing.T) {
	p := NewPipeline(Adapters{
		ResolveMX: &fakeResolver{err: errors.New("dns timeout")},
	}, zerolog.Nop())

	result := p.Verify(context.Background(), "jane@acme.com", Options{})

	if result.Status != domain.StatusUnknown {
		t.Errorf("status = %s, want unknown on resolver error", result.Status)
	}
}

func TestVerifyCatchAllDomainIsRisky(t *testing.T) {
	p := NewPipeline(Adapters{
		ResolveMX:      &fakeResolver{records: acmeMX()},
		DetectCatchAll: &fakeDetector{verdict: domain.CatchAllYes},
	}, zerolog.Nop())

	stages := []domain.VerificationStage{domain.StageSyntax, domain.StageMX, domain.StageCatchAll}
	result := p.Verify(context.Background(), "jane.doe@acme.com", Options{Stages: stages})

	if result.Status != domain.StatusRisky {
		t.Errorf("status = %s, want risky", result.Status)
	}
	if result.Steps.CatchAll.CatchAll != domain.CatchAllYes {
		t.Errorf("catchAll verdict = %s, want yes", result.Steps.CatchAll.CatchAll)
	}
}

func TestVerifySMTPAcceptUpgradesToValid(t *testing.T) {
	p := NewPipeline(Adapters{
		ResolveMX:      &fakeResolver{records: acmeMX()},
		DetectCatchAll: &fakeDetector{verdict: domain.CatchAllNo},
		SMTPProbe:      &fakeProber{verdicts: map[string]domain.ProbeVerdict{"jane.doe@acme.com": domain.ProbeAccept}},
	}, zerolog.Nop())

	result := p.Verify(context.Background(), "jane.doe@acme.com", Options{Stages: allStages()})

	if result.Status != domain.StatusValid {
		t.Errorf("status = %s, want valid on smtp accept", result.Status)
	}
	if !result.Steps.SMTP.OK || result.Steps.SMTP.Verdict != domain.ProbeAccept {
		t.Errorf("unexpected smtp step %+v", result.Steps.SMTP)
	}
}

func TestVerifySMTPAcceptAfterCatchAllStillValid(t *testing.T) {
	// Catch-all tightens to risky, but an affirmative accept with
	// passing syntax and MX is stronger evidence.
	p := NewPipeline(Adapters{
		ResolveMX:      &fakeResolver{records: acmeMX()},
		DetectCatchAll: &fakeDetector{verdict: domain.CatchAllYes},
		SMTPProbe:      &fakeProber{verdicts: map[string]domain.ProbeVerdict{"jane.doe@acme.com": domain.ProbeAccept}},
	}, zerolog.Nop())

	result := p.Verify(context.Background(), "jane.doe@acme.com", Options{Stages: allStages()})

	if result.Status != domain.StatusValid {
		t.Errorf("status = %s, want valid", result.Status)
	}
}

func TestVerifyStatusIndependentOfStageOrder(t *testing.T) {
	// An accept on a catch-all domain yields valid whichever of the two
	// stages runs first; the catch-all reason is recorded either way.
	orders := []struct {
		name   string
		stages []domain.VerificationStage
	}{
		{"catchAll before smtp", []domain.VerificationStage{domain.StageSyntax, domain.StageMX, domain.StageCatchAll, domain.StageSMTP}},
		{"smtp before catchAll", []domain.VerificationStage{domain.StageSyntax, domain.StageMX, domain.StageSMTP, domain.StageCatchAll}},
	}
	for _, tt := range orders {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPipeline(Adapters{
				ResolveMX:      &fakeResolver{records: acmeMX()},
				DetectCatchAll: &fakeDetector{verdict: domain.CatchAllYes},
				SMTPProbe:      &fakeProber{verdicts: map[string]domain.ProbeVerdict{"jane.doe@acme.com": domain.ProbeAccept}},
			}, zerolog.Nop())

			result := p.Verify(context.Background(), "jane.doe@acme.com", Options{Stages: tt.stages})

			if result.Status != domain.StatusValid {
				t.Errorf("status = %s, want valid", result.Status)
			}
			found := false
			for _, r := range result.Reasons {
				if r == "catchAll: domain accepts any local part" {
					found = true
				}
			}
			if !found {
				t.Error("expected the catch-all reason on the result")
			}
		})
	}
}

func TestVerifySMTPRejectIsInvalid(t *testing.T) {
	p := NewPipeline(Adapters{
		ResolveMX: &fakeResolver{records: acmeMX()},
		SMTPProbe: &fakeProber{verdicts: map[string]domain.ProbeVerdict{"gone@acme.com": domain.ProbeReject}},
	}, zerolog.Nop())

	stages := []domain.VerificationStage{domain.StageSyntax, domain.StageMX, domain.StageSMTP}
	result := p.Verify(context.Background(), "gone@acme.com", Options{Stages: stages})

	if result.Status != domain.StatusInvalid {
		t.Errorf("status = %s, want invalid on smtp reject", result.Status)
	}
}

func TestVerifySMTPCacheIsPerEmail(t *testing.T) {
	prober := &fakeProber{verdicts: map[string]domain.ProbeVerdict{"jane.doe@acme.com": domain.ProbeAccept}}
	p := NewPipeline(Adapters{
		ResolveMX: &fakeResolver{records: acmeMX()},
		SMTPProbe: prober,
	}, zerolog.Nop())
	ctx := context.Background()
	stages := []domain.VerificationStage{domain.StageSyntax, domain.StageMX, domain.StageSMTP}

	p.Verify(ctx, "jane.doe@acme.com", Options{Stages: stages})
	p.Verify(ctx, "jane.doe@acme.com", Options{Stages: stages})
	p.Verify(ctx, "john.smith@acme.com", Options{Stages: stages})

	if prober.calls != 2 {
		t.Errorf("prober called %d times, want 2 (one per distinct email)", prober.calls)
	}
}

func TestVerifyMissingAdaptersRecordReasons(t *testing.T) {
	p := NewPipeline(Adapters{}, zerolog.Nop())

	result := p.Verify(context.Background(), "jane.doe@acme.com", Options{Stages: allStages()})

	if result.Status != domain.StatusUnknown {
		t.Errorf("status = %s, want unknown with no adapters", result.Status)
	}
	if len(result.Reasons) < 3 {
		t.Errorf("expected a reason per unconfigured adapter, got %v", result.Reasons)
	}
}

type panickingResolver struct{}

func (panickingResolver) ResolveMX(ctx context.Context, mailDomain string) ([]domain.MXRecord, error) {
	panic("boom")
}

func TestVerifyContainsAdapterPanic(t *testing.T) {
	p := NewPipeline(Adapters{ResolveMX: panickingResolver{}}, zerolog.Nop())

	result := p.Verify(context.Background(), "jane.doe@acme.com", Options{})

	if result.Status != domain.StatusUnknown {
		t.Errorf("status = %s, want unknown after contained panic", result.Status)
	}
	found := false
	for _, r := range result.Reasons {
		if r == "mx: resolution failed: adapter panic: boom" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected panic reason, got %v", result.Reasons)
	}
}

func TestCachePurgeExpired(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	resolver := &fakeResolver{records: acmeMX()}
	p := NewPipeline(Adapters{
		ResolveMX: resolver,
		Now:       func() time.Time { return now },
	}, zerolog.Nop())
	ctx := context.Background()

	p.Verify(ctx, "jane@acme.com", Options{DomainTTL: time.Hour})
	if domains, _ := p.CacheStats(); domains != 1 {
		t.Fatalf("expected 1 cached domain, got %d", domains)
	}

	now = now.Add(2 * time.Hour)
	p.PurgeExpired()
	if domains, _ := p.CacheStats(); domains != 0 {
		t.Errorf("expected 0 cached domains after purge, got %d", domains)
	}
}
