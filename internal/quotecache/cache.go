// Package quotecache caches computed cart prices in Redis. Entries are keyed
// by a digest of the canonical request payload, so identical carts priced
// with identical options share one entry.
package quotecache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "pricing:quote:"

// Cache wraps Redis helpers for cached quotes. A nil Cache or a Cache
// without a client is a no-op, so callers never need to branch.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

// New constructs a quote cache with the given TTL.
func New(client *redis.Client, ttl time.Duration) *Cache {
	return &Cache{client: client, ttl: ttl}
}

// Key derives the cache key for a canonical request payload.
func Key(payload []byte) string {
	digest := sha256.Sum256(payload)
	return keyPrefix + hex.EncodeToString(digest[:])
}

// Get unmarshals a cached quote into dst. It reports whether the key existed.
func (c *Cache) Get(ctx context.Context, key string, dst any) (bool, error) {
	if c == nil || c.client == nil || key == "" {
		return false, nil
	}
	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return false, nil
		}
		return false, err
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return false, err
	}
	return true, nil
}

// Set serialises the quote as JSON and stores it with the configured TTL.
func (c *Cache) Set(ctx context.Context, key string, v any) error {
	if c == nil || c.client == nil || key == "" || c.ttl <= 0 {
		return nil
	}
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, key, data, c.ttl).Err()
}
