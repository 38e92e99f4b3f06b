package verify

import (
	"sync"
	"time"
)

// ttlCache is a process-local key -> (value, expiry) map. Expired
// entries are logically absent on Get; nothing actively evicts them,
// which is fine for the bounded key space of domains and emails a
// worker sees. Concurrent population for the same key is
// last-writer-wins; entries are idempotent per input so duplicate
// network probes are tolerated, never a correctness hazard.
type ttlCache[V any] struct {
	mu      sync.RWMutex
	entries map[string]ttlEntry[V]
}

type ttlEntry[V any] struct {
	value     V
	expiresAt time.Time
}

func newTTLCache[V any]() *ttlCache[V] {
	return &ttlCache[V]{entries: make(map[string]ttlEntry[V])}
}

func (c *ttlCache[V]) get(key string, now time.Time) (V, bool) {
	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok || now.After(entry.expiresAt) {
		var zero V
		return zero, false
	}
	return entry.value, true
}

func (c *ttlCache[V]) set(key string, value V, now time.Time, ttl time.Duration) {
	c.mu.Lock()
	c.entries[key] = ttlEntry[V]{value: value, expiresAt: now.Add(ttl)}
	c.mu.Unlock()
}

// purgeExpired drops stale entries. Callers may run it periodically to
// bound memory on long-lived processes; correctness never depends on it.
func (c *ttlCache[V]) purgeExpired(now time.Time) {
	c.mu.Lock()
	for key, entry := range c.entries {
		if now.After(entry.expiresAt) {
			delete(c.entries, key)
		}
	}
	c.mu.Unlock()
}

func (c *ttlCache[V]) len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
