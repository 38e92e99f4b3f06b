package out

import (
	"context"
	"time"

	"quality_server/core/domain"
)

// ContactResultJob is the published outcome of one sanitized contact batch.
type ContactResultJob struct {
	BatchID     string                          `json:"batch_id"`
	Domain      string                          `json:"domain"`
	Contacts    []*domain.SanitizedContact      `json:"contacts"`
	Guesses     map[string][]domain.GuessResult `json:"guesses,omitempty"`
	Verified    []*domain.VerificationResult    `json:"verified,omitempty"`
	Ignored     int                             `json:"ignored"`
	ProcessedAt time.Time                       `json:"processed_at"`
}

// VerifyResultJob is the published outcome of one verification batch.
type VerifyResultJob struct {
	BatchID     string                       `json:"batch_id"`
	Results     []*domain.VerificationResult `json:"results"`
	ProcessedAt time.Time                    `json:"processed_at"`
}

// BatchStatus tracks in-flight batch progress.
type BatchStatus struct {
	BatchID   string `json:"batch_id"`
	Status    string `json:"status"` // running, done, failed
	Total     int    `json:"total"`
	Sanitized int    `json:"sanitized"`
	Ignored   int    `json:"ignored"`
	Verified  int    `json:"verified"`
}

// ResultPublisher defines the outbound port for publishing pipeline results.
type ResultPublisher interface {
	PublishContactResult(ctx context.Context, job *ContactResultJob) error
	PublishVerifyResult(ctx context.Context, job *VerifyResultJob) error

	SetBatchStatus(ctx context.Context, status *BatchStatus) error
	GetBatchStatus(ctx context.Context, batchID string) (*BatchStatus, error)
}
