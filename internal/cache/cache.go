package cache

import (
	"context"
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache provides Redis-backed caching for geo lookup results.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

// New connects to Redis at the given URL and returns a Cache.
// URL format: redis://localhost:6379
func New(redisURL string, ttl time.Duration) (*Cache, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("cache: invalid redis URL: %w", err)
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("cache: redis ping failed: %w", err)
	}

	return &Cache{client: client, ttl: ttl}, nil
}

// Get decodes the cached value for key into dst.
// Returns false on a miss or when the stored value cannot be decoded.
func (c *Cache) Get(ctx context.Context, key string, dst any) bool {
	data, err := c.client.Get(ctx, BuildKey(key)).Bytes()
	if err != nil {
		return false
	}
	return json.Unmarshal(data, dst) == nil
}

// Set stores v under key with the configured TTL.
func (c *Cache) Set(ctx context.Context, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("cache: marshal error: %w", err)
	}

	return c.client.Set(ctx, BuildKey(key), data, c.ttl).Err()
}

// Close closes the Redis connection.
func (c *Cache) Close() error {
	return c.client.Close()
}

// BuildKey namespaces and hashes a logical key such as "estados" or
// "municipios:29".
func BuildKey(key string) string {
	raw := strings.ToLower(strings.TrimSpace(key))
	prefix, _, _ := strings.Cut(raw, ":")
	hash := sha256.Sum256([]byte(raw))
	return fmt.Sprintf("ajudaja:%s:%x", prefix, hash[:8])
}
