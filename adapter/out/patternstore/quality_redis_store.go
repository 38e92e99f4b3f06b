package patternstore

import (
	"context"
	"fmt"
	"time"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"

	"quality_server/core/domain"
)

const redisKeyPrefix = "pattern:"

// RedisStore keeps one key per domain with a server-side TTL matching
// the pattern's own TTL. Single-key writes are atomic, so concurrent
// learns for different domains never contend.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore creates a Redis-backed pattern store.
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

// Get returns the stored pattern, or (nil, nil) when absent/expired.
func (s *RedisStore) Get(ctx context.Context, mailDomain string) (*domain.DomainPattern, error) {
	data, err := s.client.Get(ctx, redisKeyPrefix+mailDomain).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("redis get pattern %s: %w", mailDomain, err)
	}

	var stored storedPattern
	if err := json.Unmarshal(data, &stored); err != nil {
		return nil, fmt.Errorf("decode pattern %s: %w", mailDomain, err)
	}
	return fromStored(stored)
}

// Put overwrites the domain's pattern. The Redis TTL gets a grace
// margin past the logical TTL so the expiry fallback in the model stays
// observable rather than keys vanishing exactly at the boundary.
func (s *RedisStore) Put(ctx context.Context, pattern *domain.DomainPattern) error {
	data, err := json.Marshal(toStored(pattern))
	if err != nil {
		return fmt.Errorf("encode pattern %s: %w", pattern.Domain, err)
	}

	expiry := pattern.TTL + 24*time.Hour
	if err := s.client.Set(ctx, redisKeyPrefix+pattern.Domain, data, expiry).Err(); err != nil {
		return fmt.Errorf("redis set pattern %s: %w", pattern.Domain, err)
	}
	return nil
}
