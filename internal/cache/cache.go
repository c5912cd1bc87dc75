package cache

import (
	"context"
	"encoding/json"
	"log"
	"time"
)

// Store is a TTL key-value store. Get returns (nil, nil) on a miss so
// callers can treat "absent" and "expired" uniformly.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Del(ctx context.Context, key string) error
	DelPattern(ctx context.Context, pattern string) error
	Ping(ctx context.Context) error
	Close() error
}

// GetJSON reads a cached value and decodes it into T. Store errors are
// logged and treated as a miss; the cache must never fail a request.
func GetJSON[T any](ctx context.Context, store Store, key string) (*T, bool) {
	data, err := store.Get(ctx, key)
	if err != nil {
		log.Printf("[cache] read failed for %s, treating as miss: %v", key, err)
		return nil, false
	}
	if data == nil {
		return nil, false
	}
	var value T
	if err := json.Unmarshal(data, &value); err != nil {
		log.Printf("[cache] corrupt entry at %s, treating as miss: %v", key, err)
		return nil, false
	}
	return &value, true
}

// SetJSON encodes a value and writes it with the given TTL. Failures are
// logged and absorbed; a missed write only costs a regeneration later.
func SetJSON(ctx context.Context, store Store, key string, value any, ttl time.Duration) {
	data, err := json.Marshal(value)
	if err != nil {
		log.Printf("[cache] encode failed for %s: %v", key, err)
		return
	}
	if err := store.Set(ctx, key, data, ttl); err != nil {
		log.Printf("[cache] write failed for %s: %v", key, err)
	}
}
