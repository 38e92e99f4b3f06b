package verify

import (
	"context"
	"sync"

	"github.com/go-pkgz/pool"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"quality_server/core/domain"
)

// BatchConfig sizes the batch verifier.
type BatchConfig struct {
	Workers           int     // concurrent verifications (default 8)
	RequestsPerSecond float64 // network pacing across the batch (default 10)
	Burst             int     // rate limiter burst (default 20)
}

// DefaultBatchConfig returns sensible defaults.
func DefaultBatchConfig() *BatchConfig {
	return &BatchConfig{
		Workers:           8,
		RequestsPerSecond: 10,
		Burst:             20,
	}
}

// BatchVerifier runs the pipeline over candidate lists concurrently.
// Results come back in candidate order regardless of completion order.
type BatchVerifier struct {
	pipeline *Pipeline
	config   *BatchConfig
	limiter  *rate.Limiter
	log      zerolog.Logger
}

// NewBatchVerifier wraps a pipeline for concurrent batch use.
func NewBatchVerifier(p *Pipeline, config *BatchConfig, log zerolog.Logger) *BatchVerifier {
	if config == nil {
		config = DefaultBatchConfig()
	}
	return &BatchVerifier{
		pipeline: p,
		config:   config,
		limiter:  rate.NewLimiter(rate.Limit(config.RequestsPerSecond), config.Burst),
		log:      log.With().Str("component", "batch_verifier").Logger(),
	}
}

type batchJob struct {
	index int
	email string
}

type batchWorker struct {
	b    *BatchVerifier
	opts Options

	mu      sync.Mutex
	results []*domain.VerificationResult
}

// Do implements pool.Worker.
func (w *batchWorker) Do(ctx context.Context, job batchJob) error {
	if err := w.b.limiter.Wait(ctx); err != nil {
		return err
	}
	result := w.b.pipeline.Verify(ctx, job.email, w.opts)

	w.mu.Lock()
	w.results[job.index] = result
	w.mu.Unlock()
	return nil
}

// VerifyAll verifies every candidate with the given options. A cancelled
// context leaves unprocessed slots as unknown-status placeholders so the
// result slice always lines up with the input.
func (b *BatchVerifier) VerifyAll(ctx context.Context, emails []string, opts Options) []*domain.VerificationResult {
	if len(emails) == 0 {
		return nil
	}

	worker := &batchWorker{
		b:       b,
		opts:    opts,
		results: make([]*domain.VerificationResult, len(emails)),
	}

	workers := b.config.Workers
	if workers > len(emails) {
		workers = len(emails)
	}

	wg := pool.New[batchJob](workers, worker).WithContinueOnError()
	if err := wg.Go(ctx); err != nil {
		b.log.Error().Err(err).Msg("failed to start batch pool")
		return worker.fillGaps(emails)
	}

	for i, email := range emails {
		wg.Submit(batchJob{index: i, email: email})
	}
	if err := wg.Close(ctx); err != nil {
		b.log.Warn().Err(err).Int("candidates", len(emails)).Msg("batch verification interrupted")
	}

	return worker.fillGaps(emails)
}

// fillGaps replaces never-processed slots with unknown placeholders.
func (w *batchWorker) fillGaps(emails []string) []*domain.VerificationResult {
	w.mu.Lock()
	defer w.mu.Unlock()
	for i, r := range w.results {
		if r == nil {
			w.results[i] = &domain.VerificationResult{
				Email:   emails[i],
				Status:  domain.StatusUnknown,
				Reasons: []string{"batch: verification not attempted"},
			}
		}
	}
	return w.results
}
