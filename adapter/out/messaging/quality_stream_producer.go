// Package messaging provides message queue adapters.
package messaging

import (
	"context"
	"fmt"
	"time"

	"github.com/goccy/go-json"

	"quality_server/core/port/out"

	"github.com/redis/go-redis/v9"
)

// Stream names
const (
	StreamContactsResults = "contacts:results"
	StreamVerifyResults   = "verify:results"
)

// RedisProducer implements out.ResultPublisher using Redis Streams.
type RedisProducer struct {
	client *redis.Client
}

// NewRedisProducer creates a new RedisProducer.
func NewRedisProducer(client *redis.Client) *RedisProducer {
	return &RedisProducer{client: client}
}

// PublishContactResult publishes the outcome of a sanitized contact batch.
func (p *RedisProducer) PublishContactResult(ctx context.Context, job *out.ContactResultJob) error {
	return p.publish(ctx, StreamContactsResults, job)
}

// PublishVerifyResult publishes the outcome of a verification batch.
func (p *RedisProducer) PublishVerifyResult(ctx context.Context, job *out.VerifyResultJob) error {
	return p.publish(ctx, StreamVerifyResults, job)
}

// =============================================================================
// Batch Status (Redis Hash)
// =============================================================================

const batchStatusKeyPrefix = "batch:status:"

// SetBatchStatus stores batch progress in Redis.
func (p *RedisProducer) SetBatchStatus(ctx context.Context, status *out.BatchStatus) error {
	key := batchStatusKeyPrefix + status.BatchID

	err := p.client.HSet(ctx, key,
		"status", status.Status,
		"total", status.Total,
		"sanitized", status.Sanitized,
		"ignored", status.Ignored,
		"verified", status.Verified,
	).Err()
	if err != nil {
		return fmt.Errorf("failed to set batch status: %w", err)
	}

	// Set expiry (24 hours)
	p.client.Expire(ctx, key, 24*time.Hour)

	return nil
}

// GetBatchStatus retrieves batch progress from Redis.
func (p *RedisProducer) GetBatchStatus(ctx context.Context, batchID string) (*out.BatchStatus, error) {
	key := batchStatusKeyPrefix + batchID

	result, err := p.client.HGetAll(ctx, key).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get batch status: %w", err)
	}

	if len(result) == 0 {
		return nil, nil
	}

	status := &out.BatchStatus{
		BatchID: batchID,
		Status:  result["status"],
	}

	if v, ok := result["total"]; ok {
		fmt.Sscanf(v, "%d", &status.Total)
	}
	if v, ok := result["sanitized"]; ok {
		fmt.Sscanf(v, "%d", &status.Sanitized)
	}
	if v, ok := result["ignored"]; ok {
		fmt.Sscanf(v, "%d", &status.Ignored)
	}
	if v, ok := result["verified"]; ok {
		fmt.Sscanf(v, "%d", &status.Verified)
	}

	return status, nil
}

// publish publishes a job to a stream using go-redis.
func (p *RedisProducer) publish(ctx context.Context, stream string, job interface{}) error {
	data, err := json.Marshal(job)
	if err != nil {
		return fmt.Errorf("failed to marshal job: %w", err)
	}

	err = p.client.XAdd(ctx, &redis.XAddArgs{
		Stream: stream,
		ID:     "*",
		Values: map[string]interface{}{
			"data": string(data),
		},
	}).Err()
	if err != nil {
		return fmt.Errorf("failed to publish to %s: %w", stream, err)
	}

	return nil
}

// Ensure RedisProducer implements out.ResultPublisher
var _ out.ResultPublisher = (*RedisProducer)(nil)
