package worker

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"quality_server/core/domain"
	"quality_server/core/port/out"
	"quality_server/core/service/verify"
)

// VerifyProcessor handles standalone verification jobs.
type VerifyProcessor struct {
	verifier  *verify.BatchVerifier
	publisher out.ResultPublisher
	base      verify.Options
	log       zerolog.Logger
}

// NewVerifyProcessor creates a new verify processor. base supplies the
// cache TTLs; the job payload may narrow the stage set.
func NewVerifyProcessor(verifier *verify.BatchVerifier, publisher out.ResultPublisher, base verify.Options, log zerolog.Logger) *VerifyProcessor {
	return &VerifyProcessor{
		verifier:  verifier,
		publisher: publisher,
		base:      base,
		log:       log.With().Str("component", "verify_processor").Logger(),
	}
}

// ProcessVerify processes one verify.email job.
func (p *VerifyProcessor) ProcessVerify(ctx context.Context, msg *Message) error {
	payload, err := ParsePayload[VerifyEmailPayload](msg)
	if err != nil {
		return fmt.Errorf("failed to parse payload: %w", err)
	}
	batchID := payload.BatchID
	if batchID == "" {
		batchID = msg.ID
	}
	if len(payload.Emails) == 0 {
		p.log.Warn().Str("batch_id", batchID).Msg("verify job with no emails")
		return nil
	}

	p.log.Info().
		Str("batch_id", batchID).
		Int("emails", len(payload.Emails)).
		Strs("stages", payload.Stages).
		Msg("processing verify batch")

	opts := p.base
	if stages := parseStages(payload.Stages); len(stages) > 0 {
		opts.Stages = stages
	}
	results := p.verifier.VerifyAll(ctx, payload.Emails, opts)

	job := &out.VerifyResultJob{
		BatchID:     batchID,
		Results:     results,
		ProcessedAt: time.Now(),
	}
	if err := p.publisher.PublishVerifyResult(ctx, job); err != nil {
		return fmt.Errorf("failed to publish verify result: %w", err)
	}
	return nil
}

// parseStages maps wire stage names onto pipeline stages, dropping
// anything unrecognized. An empty result means the pipeline default.
func parseStages(names []string) []domain.VerificationStage {
	var stages []domain.VerificationStage
	for _, n := range names {
		switch domain.VerificationStage(n) {
		case domain.StageSyntax, domain.StageMX, domain.StageCatchAll, domain.StageSMTP:
			stages = append(stages, domain.VerificationStage(n))
		}
	}
	return stages
}
