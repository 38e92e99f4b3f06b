package stream

import (
	"context"
	"time"

	"github.com/google/uuid"

	"quality_server/core/domain"
)

type Producer struct {
	stream *RedisStream
}

func NewProducer(stream *RedisStream) *Producer {
	return &Producer{stream: stream}
}

type Job struct {
	ID        string         `json:"id"`
	Type      string         `json:"type"`
	Payload   map[string]any `json:"payload"`
	CreatedAt time.Time      `json:"created_at"`
	Retries   int            `json:"retries,omitempty"`
}

func (p *Producer) PublishContactBatch(ctx context.Context, orgDomain string, contacts []domain.RawContact) (string, error) {
	job := &Job{
		ID:   uuid.New().String(),
		Type: "contacts.sanitize",
		Payload: map[string]any{
			"batch_id": uuid.New().String(),
			"domain":   orgDomain,
			"contacts": contacts,
		},
		CreatedAt: time.Now(),
	}
	return p.stream.Publish(ctx, StreamContactsIngest, job)
}

func (p *Producer) PublishVerifyEmails(ctx context.Context, emails []string, stages []string) (string, error) {
	job := &Job{
		ID:   uuid.New().String(),
		Type: "verify.email",
		Payload: map[string]any{
			"batch_id": uuid.New().String(),
			"emails":   emails,
			"stages":   stages,
		},
		CreatedAt: time.Now(),
	}
	return p.stream.Publish(ctx, StreamVerifyEmail, job)
}

// Requeue puts a failed job back on its stream with the retry count bumped.
func (p *Producer) Requeue(ctx context.Context, stream string, job *Job) (string, error) {
	job.Retries++
	return p.stream.Publish(ctx, stream, job)
}
