package stream

import (
	"context"
	"log"

	"github.com/goccy/go-json"

	"quality_server/adapter/in/worker"
)

// maxRetries bounds how often a failed job is requeued before it is dropped.
const maxRetries = 3

type Consumer struct {
	stream   *RedisStream
	producer *Producer
	handler  *worker.Handler
	name     string
}

func NewConsumer(stream *RedisStream, handler *worker.Handler, name string) *Consumer {
	return &Consumer{
		stream:   stream,
		producer: NewProducer(stream),
		handler:  handler,
		name:     name,
	}
}

func (c *Consumer) Start(ctx context.Context) {
	// Create consumer groups
	streams := []string{StreamContactsIngest, StreamVerifyEmail}
	for _, s := range streams {
		if err := c.stream.CreateGroup(ctx, s); err != nil {
			log.Printf("Failed to create group for %s: %v", s, err)
		}
	}

	// Start consumers for each stream
	go c.consume(ctx, StreamContactsIngest)
	go c.consume(ctx, StreamVerifyEmail)
}

func (c *Consumer) consume(ctx context.Context, stream string) {
	c.stream.Consume(ctx, stream, c.name, func(id string, data []byte) error {
		var job Job
		if err := json.Unmarshal(data, &job); err != nil {
			log.Printf("Failed to unmarshal job: %v", err)
			return err
		}

		msg := &worker.Message{
			ID:        job.ID,
			Type:      job.Type,
			Payload:   job.Payload,
			CreatedAt: job.CreatedAt,
			Retries:   job.Retries,
		}

		if err := c.handler.Process(ctx, msg); err != nil {
			// Requeue transient failures; the original entry is acked so
			// the retry travels as a fresh stream entry.
			if job.Retries < maxRetries {
				if _, rerr := c.producer.Requeue(ctx, stream, &job); rerr != nil {
					log.Printf("Failed to requeue job %s: %v", job.ID, rerr)
					return err
				}
				log.Printf("Requeued job %s (retry %d): %v", job.ID, job.Retries, err)
				return nil
			}
			log.Printf("Dropping job %s after %d retries: %v", job.ID, job.Retries, err)
		}
		return nil
	})
}
