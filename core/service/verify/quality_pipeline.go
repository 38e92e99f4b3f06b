// Package verify runs the multi-stage email verification pipeline.
package verify

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/rs/zerolog"

	"quality_server/core/domain"
	"quality_server/core/port/out"
	"quality_server/core/service/emailfilter"
)

// Default cache TTLs. Domain facts (MX, catch-all) move slowly; probe
// verdicts go stale faster.
const (
	DefaultDomainTTL = 7 * 24 * time.Hour
	DefaultEmailTTL  = 24 * time.Hour
)

// Adapters injects the only network-capable functions. Any of them may
// be nil; the corresponding stage records a reason and is treated as
// not-ok. Now defaults to wall-clock time.
type Adapters struct {
	ResolveMX      out.MXResolver
	DetectCatchAll out.CatchAllDetector
	SMTPProbe      out.SMTPProber
	Now            func() time.Time
}

// Options selects the stages to run and their cache TTLs.
type Options struct {
	Stages    []domain.VerificationStage // default {syntax, mx}
	DomainTTL time.Duration              // default 7 days
	EmailTTL  time.Duration              // default 1 day
}

// DefaultStages is the stage set used when Options.Stages is empty.
var DefaultStages = []domain.VerificationStage{domain.StageSyntax, domain.StageMX}

// domainFacts is the domain-level cache value: MX records plus the
// catch-all verdict, each populated by its own stage.
type domainFacts struct {
	mx          []domain.MXRecord
	mxResolved  bool
	catchAll    domain.CatchAllVerdict
	catchAllSet bool
}

// Pipeline verifies email addresses through syntax, MX, catch-all, and
// SMTP-probe stages with two-tier TTL caching. Caches are owned by the
// instance, not process-wide, so tests and concurrent pipelines never
// share state unintentionally. The core performs no direct I/O.
type Pipeline struct {
	adapters    Adapters
	domainCache *ttlCache[domainFacts]
	emailCache  *ttlCache[domain.ProbeVerdict]
	log         zerolog.Logger
}

// NewPipeline creates a verification pipeline with its own caches.
func NewPipeline(adapters Adapters, log zerolog.Logger) *Pipeline {
	if adapters.Now == nil {
		adapters.Now = time.Now
	}
	return &Pipeline{
		adapters:    adapters,
		domainCache: newTTLCache[domainFacts](),
		emailCache:  newTTLCache[domain.ProbeVerdict](),
		log:         log,
	}
}

// Verify runs the selected stages against one email. All failure is
// represented in the returned result; no error escapes under normal
// adapter contracts, and a panicking adapter is contained to its stage.
func (p *Pipeline) Verify(ctx context.Context, email string, opts Options) *domain.VerificationResult {
	stages := opts.Stages
	if len(stages) == 0 {
		stages = DefaultStages
	}
	domainTTL := opts.DomainTTL
	if domainTTL <= 0 {
		domainTTL = DefaultDomainTTL
	}
	emailTTL := opts.EmailTTL
	if emailTTL <= 0 {
		emailTTL = DefaultEmailTTL
	}

	now := p.adapters.Now()
	result := &domain.VerificationResult{
		Email:     email,
		Domain:    emailfilter.Domain(email),
		Status:    domain.StatusUnknown,
		CheckedAt: now,
		TTL:       emailTTL,
	}

	st := &stageState{result: result}

	for _, stage := range stages {
		switch stage {
		case domain.StageSyntax:
			if terminal := p.runSyntax(st); terminal {
				return result
			}
		case domain.StageMX:
			p.runMX(ctx, st, now, domainTTL)
		case domain.StageCatchAll:
			p.runCatchAll(ctx, st, now, domainTTL)
		case domain.StageSMTP:
			p.runSMTP(ctx, st, now, emailTTL)
		default:
			st.reason(fmt.Sprintf("unknown stage %q skipped", stage))
		}
	}

	// Nothing conclusive: risky when the basics passed, else unknown.
	if !st.statusSet {
		if st.syntaxOK && st.mxOK {
			result.Status = domain.StatusRisky
		} else {
			result.Status = domain.StatusUnknown
		}
	}
	return result
}

// stageState threads status accounting through the stages. Status only
// tightens: invalid/risky can be set but never silently cleared, with
// the single deliberate upgrade to valid on an affirmative SMTP accept
// when syntax and MX already passed.
type stageState struct {
	result    *domain.VerificationResult
	statusSet bool
	syntaxOK  bool
	syntaxRan bool
	mxOK      bool
	mxRan     bool
}

func (s *stageState) reason(msg string) {
	s.result.Reasons = append(s.result.Reasons, msg)
}

func (s *stageState) tighten(status domain.VerificationStatus) {
	if s.result.Status == domain.StatusInvalid {
		return // invalid is terminal
	}
	if status == domain.StatusRisky && s.result.Status == domain.StatusValid {
		// A recorded accept outranks domain-level doubt such as a
		// catch-all verdict. The same pair of facts already yields valid
		// in the catchAll-then-smtp order, so honoring it here keeps the
		// final status independent of stage ordering. The catch-all
		// reason stays on the result either way.
		return
	}
	s.result.Status = status
	s.statusSet = true
}

func (p *Pipeline) runSyntax(st *stageState) (terminal bool) {
	st.syntaxRan = true
	ok := emailfilter.IsValidFormat(st.result.Email) && st.result.Domain != ""
	st.result.Steps.Syntax = &domain.StageResult{OK: ok}
	st.syntaxOK = ok
	if !ok {
		st.reason("syntax: address is not local@domain shaped")
		st.result.Status = domain.StatusInvalid
		st.statusSet = true
		return true
	}
	return false
}

func (p *Pipeline) runMX(ctx context.Context, st *stageState, now time.Time, ttl time.Duration) {
	st.mxRan = true
	step := &domain.StageResult{}
	st.result.Steps.MX = step

	facts, cached := p.domainCache.get(st.result.Domain, now)
	if !cached || !facts.mxResolved {
		if p.adapters.ResolveMX == nil {
			st.reason("mx: no resolver adapter configured")
			return
		}
		records, err := p.safeResolveMX(ctx, st.result.Domain)
		if err != nil {
			st.reason("mx: resolution failed: " + err.Error())
			return
		}
		sort.Slice(records, func(i, j int) bool { return records[i].Priority < records[j].Priority })
		facts.mx = records
		facts.mxResolved = true
		p.domainCache.set(st.result.Domain, facts, now, ttl)
	}

	step.Records = facts.mx
	if len(facts.mx) == 0 {
		// Some providers omit MX yet still deliver via A records.
		st.reason("mx: no MX records for domain")
		st.tighten(domain.StatusRisky)
		return
	}
	step.OK = true
	st.mxOK = true
}

func (p *Pipeline) runCatchAll(ctx context.Context, st *stageState, now time.Time, ttl time.Duration) {
	step := &domain.StageResult{CatchAll: domain.CatchAllUnknown}
	st.result.Steps.CatchAll = step

	facts, cached := p.domainCache.get(st.result.Domain, now)
	if !cached || !facts.catchAllSet {
		if p.adapters.DetectCatchAll == nil {
			st.reason("catchAll: no detector adapter configured")
			return
		}
		verdict, err := p.safeDetectCatchAll(ctx, st.result.Domain)
		if err != nil {
			st.reason("catchAll: detection failed: " + err.Error())
			return
		}
		facts.catchAll = verdict
		facts.catchAllSet = true
		p.domainCache.set(st.result.Domain, facts, now, ttl)
	}

	step.CatchAll = facts.catchAll
	step.OK = facts.catchAll != ""
	if facts.catchAll == domain.CatchAllYes {
		// A catch-all domain makes a guessed address unverifiable by
		// bounce signal alone.
		st.reason("catchAll: domain accepts any local part")
		st.tighten(domain.StatusRisky)
	}
}

func (p *Pipeline) runSMTP(ctx context.Context, st *stageState, now time.Time, ttl time.Duration) {
	step := &domain.StageResult{Verdict: domain.ProbeUnknown}
	st.result.Steps.SMTP = step

	verdict, cached := p.emailCache.get(st.result.Email, now)
	if !cached {
		if p.adapters.SMTPProbe == nil {
			st.reason("smtp: no prober adapter configured")
			return
		}
		probed, err := p.safeSMTPProbe(ctx, st.result.Email)
		if err != nil {
			st.reason("smtp: probe failed: " + err.Error())
			return
		}
		verdict = probed
		p.emailCache.set(st.result.Email, verdict, now, ttl)
	}

	step.Verdict = verdict
	switch verdict {
	case domain.ProbeAccept:
		step.OK = true
		// Upgrade to valid only when the basics passed (or were skipped).
		if (st.syntaxOK || !st.syntaxRan) && (st.mxOK || !st.mxRan) {
			st.result.Status = domain.StatusValid
			st.statusSet = true
		} else {
			st.tighten(domain.StatusRisky)
		}
	case domain.ProbeReject:
		st.reason("smtp: recorded delivery rejection")
		st.result.Status = domain.StatusInvalid
		st.statusSet = true
	default:
		st.reason("smtp: no delivery intelligence for address")
	}
}

// Adapter calls are fenced so a panicking adapter degrades one stage of
// one verify call instead of the batch.

func (p *Pipeline) safeResolveMX(ctx context.Context, mailDomain string) (records []domain.MXRecord, err error) {
	defer func() {
		if r := recover(); r != nil {
			p.log.Error().Str("domain", mailDomain).Interface("panic", r).Msg("mx adapter panicked")
			err = fmt.Errorf("adapter panic: %v", r)
		}
	}()
	return p.adapters.ResolveMX.ResolveMX(ctx, mailDomain)
}

func (p *Pipeline) safeDetectCatchAll(ctx context.Context, mailDomain string) (verdict domain.CatchAllVerdict, err error) {
	defer func() {
		if r := recover(); r != nil {
			p.log.Error().Str("domain", mailDomain).Interface("panic", r).Msg("catch-all adapter panicked")
			err = fmt.Errorf("adapter panic: %v", r)
		}
	}()
	return p.adapters.DetectCatchAll.DetectCatchAll(ctx, mailDomain)
}

func (p *Pipeline) safeSMTPProbe(ctx context.Context, email string) (verdict domain.ProbeVerdict, err error) {
	defer func() {
		if r := recover(); r != nil {
			p.log.Error().Str("email", email).Interface("panic", r).Msg("smtp adapter panicked")
			err = fmt.Errorf("adapter panic: %v", r)
		}
	}()
	return p.adapters.SMTPProbe.SMTPProbe(ctx, email)
}

// CacheStats reports current cache sizes, for diagnostics.
func (p *Pipeline) CacheStats() (domains, emails int) {
	return p.domainCache.len(), p.emailCache.len()
}

// PurgeExpired drops stale cache entries from both tiers.
func (p *Pipeline) PurgeExpired() {
	now := p.adapters.Now()
	p.domainCache.purgeExpired(now)
	p.emailCache.purgeExpired(now)
}
