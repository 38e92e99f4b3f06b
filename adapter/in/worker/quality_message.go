package worker

import (
	"time"

	"github.com/google/uuid"

	"quality_server/core/domain"
)

// JobType represents the type of a job.
type JobType = string

const (
	JobContactsSanitize JobType = "contacts.sanitize"
	JobVerifyEmail      JobType = "verify.email"
)

type Message struct {
	ID        string         `json:"id"`
	Type      string         `json:"type"`
	Payload   map[string]any `json:"payload"`
	CreatedAt time.Time      `json:"created_at"`
	Retries   int            `json:"retries"`
}

func NewMessage(jobType string, payload map[string]any) *Message {
	return &Message{
		ID:        uuid.New().String(),
		Type:      jobType,
		Payload:   payload,
		CreatedAt: time.Now(),
		Retries:   0,
	}
}

// ContactBatchPayload carries one scraped batch for a single organization.
type ContactBatchPayload struct {
	BatchID  string              `json:"batch_id"`
	Domain   string              `json:"domain"` // organization email domain, may be empty
	Contacts []domain.RawContact `json:"contacts"`
}

// VerifyEmailPayload carries a standalone verification request.
type VerifyEmailPayload struct {
	BatchID string   `json:"batch_id"`
	Emails  []string `json:"emails"`
	Stages  []string `json:"stages,omitempty"` // syntax, mx, catchAll, smtp
}
