package worker

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"quality_server/core/domain"
	"quality_server/core/port/out"
	"quality_server/core/service/emailfilter"
	"quality_server/core/service/pattern"
	"quality_server/core/service/sanitize"
	"quality_server/core/service/verify"
)

// ContactProcessorConfig tunes the batch pipeline.
type ContactProcessorConfig struct {
	Sanitize   sanitize.Options
	Verify     verify.Options
	PatternTTL time.Duration
	GuessLimit int
}

func DefaultContactProcessorConfig() *ContactProcessorConfig {
	return &ContactProcessorConfig{
		Sanitize:   sanitize.Options{PreferUSPhones: true},
		PatternTTL: pattern.DefaultTTL,
		GuessLimit: 3,
	}
}

// ContactProcessor handles scraped contact batch jobs: sanitize, learn
// address patterns from observed pairs, guess missing emails, verify.
type ContactProcessor struct {
	sanitizer *sanitize.Sanitizer
	model     *pattern.Model
	verifier  *verify.BatchVerifier
	publisher out.ResultPublisher
	config    *ContactProcessorConfig
	log       zerolog.Logger
}

// NewContactProcessor creates a new contact processor.
func NewContactProcessor(
	sanitizer *sanitize.Sanitizer,
	model *pattern.Model,
	verifier *verify.BatchVerifier,
	publisher out.ResultPublisher,
	config *ContactProcessorConfig,
	log zerolog.Logger,
) *ContactProcessor {
	if config == nil {
		config = DefaultContactProcessorConfig()
	}
	return &ContactProcessor{
		sanitizer: sanitizer,
		model:     model,
		verifier:  verifier,
		publisher: publisher,
		config:    config,
		log:       log.With().Str("component", "contact_processor").Logger(),
	}
}

// ProcessBatch processes one contacts.sanitize job.
func (p *ContactProcessor) ProcessBatch(ctx context.Context, msg *Message) error {
	payload, err := ParsePayload[ContactBatchPayload](msg)
	if err != nil {
		return fmt.Errorf("failed to parse payload: %w", err)
	}
	batchID := payload.BatchID
	if batchID == "" {
		batchID = msg.ID
	}

	p.log.Info().
		Str("batch_id", batchID).
		Str("domain", payload.Domain).
		Int("contacts", len(payload.Contacts)).
		Msg("processing contact batch")

	p.setStatus(ctx, &out.BatchStatus{
		BatchID: batchID,
		Status:  "running",
		Total:   len(payload.Contacts),
	})

	kept, ignored := p.sanitizeAll(payload.Contacts)

	// Observed (name, email) pairs feed the per-domain pattern model.
	for mailDomain, pairs := range groupPairsByDomain(kept) {
		p.model.Learn(ctx, mailDomain, pairs, p.config.PatternTTL)
	}

	guesses := p.guessMissing(ctx, payload.Domain, kept)
	verified := p.verifyEmails(ctx, kept, guesses)
	p.promoteGuesses(kept, guesses, verified)

	job := &out.ContactResultJob{
		BatchID:     batchID,
		Domain:      payload.Domain,
		Contacts:    kept,
		Guesses:     guesses,
		Verified:    verified,
		Ignored:     ignored,
		ProcessedAt: time.Now(),
	}
	if err := p.publisher.PublishContactResult(ctx, job); err != nil {
		return fmt.Errorf("failed to publish contact result: %w", err)
	}

	p.setStatus(ctx, &out.BatchStatus{
		BatchID:   batchID,
		Status:    "done",
		Total:     len(payload.Contacts),
		Sanitized: len(kept),
		Ignored:   ignored,
		Verified:  len(verified),
	})
	return nil
}

func (p *ContactProcessor) sanitizeAll(raw []domain.RawContact) ([]*domain.SanitizedContact, int) {
	kept := make([]*domain.SanitizedContact, 0, len(raw))
	ignored := 0
	for i := range raw {
		c := p.sanitizer.Sanitize(&raw[i], p.config.Sanitize)
		if c == nil {
			ignored++
			continue
		}
		kept = append(kept, c)
	}
	return kept, ignored
}

// groupPairsByDomain collects personal (name, email) pairs keyed by the
// email's domain, so evidence from mixed batches lands on the right model.
func groupPairsByDomain(contacts []*domain.SanitizedContact) map[string][]domain.NamePair {
	grouped := make(map[string][]domain.NamePair)
	for _, c := range contacts {
		if c.Name == "" || c.Email == "" || c.EmailClass != domain.EmailClassPersonal {
			continue
		}
		d := emailfilter.Domain(c.Email)
		if d == "" {
			continue
		}
		grouped[d] = append(grouped[d], domain.NamePair{Name: c.Name, Email: c.Email})
	}
	return grouped
}

// guessMissing produces candidate emails for named contacts that came
// through sanitation without one. Needs the organization domain.
func (p *ContactProcessor) guessMissing(ctx context.Context, orgDomain string, contacts []*domain.SanitizedContact) map[string][]domain.GuessResult {
	if orgDomain == "" {
		return nil
	}
	guesses := make(map[string][]domain.GuessResult)
	for _, c := range contacts {
		if c.Name == "" || c.Email != "" {
			continue
		}
		if _, done := guesses[c.Name]; done {
			continue
		}
		if gs := p.model.Guess(ctx, orgDomain, c.Name, p.config.GuessLimit); len(gs) > 0 {
			guesses[c.Name] = gs
		}
	}
	if len(guesses) == 0 {
		return nil
	}
	return guesses
}

// verifyEmails runs the verification pipeline over every kept email plus
// the top guess for each missing one.
func (p *ContactProcessor) verifyEmails(ctx context.Context, contacts []*domain.SanitizedContact, guesses map[string][]domain.GuessResult) []*domain.VerificationResult {
	seen := make(map[string]bool)
	var emails []string
	for _, c := range contacts {
		if c.Email != "" && !seen[c.Email] {
			seen[c.Email] = true
			emails = append(emails, c.Email)
		}
	}
	for _, gs := range guesses {
		if len(gs) > 0 && !seen[gs[0].Email] {
			seen[gs[0].Email] = true
			emails = append(emails, gs[0].Email)
		}
	}
	if len(emails) == 0 {
		return nil
	}
	return p.verifier.VerifyAll(ctx, emails, p.config.Verify)
}

// promoteGuesses fills in a missing email when its top guess verified valid.
func (p *ContactProcessor) promoteGuesses(contacts []*domain.SanitizedContact, guesses map[string][]domain.GuessResult, verified []*domain.VerificationResult) {
	if len(guesses) == 0 {
		return
	}
	status := make(map[string]domain.VerificationStatus, len(verified))
	for _, r := range verified {
		status[r.Email] = r.Status
	}
	for _, c := range contacts {
		if c.Email != "" {
			continue
		}
		gs := guesses[c.Name]
		if len(gs) == 0 {
			continue
		}
		if status[gs[0].Email] == domain.StatusValid {
			c.Email = gs[0].Email
			c.EmailClass = domain.EmailClassPersonal
		}
	}
}

func (p *ContactProcessor) setStatus(ctx context.Context, status *out.BatchStatus) {
	if err := p.publisher.SetBatchStatus(ctx, status); err != nil {
		p.log.Warn().Err(err).Str("batch_id", status.BatchID).Msg("failed to set batch status")
	}
}
