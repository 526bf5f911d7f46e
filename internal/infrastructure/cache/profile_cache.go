package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/stayhub/backend/internal/infrastructure/config"
)

// ProfileCache caches serialized user profiles by user ID.
// A miss returns (nil, nil).
type ProfileCache interface {
	Get(ctx context.Context, userID uuid.UUID, dest interface{}) (bool, error)
	Set(ctx context.Context, userID uuid.UUID, value interface{}) error
	Invalidate(ctx context.Context, userID uuid.UUID) error
}

// RedisProfileCache stores profiles in Redis with a TTL
type RedisProfileCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisProfileCache creates a Redis-backed profile cache
func NewRedisProfileCache(cfg config.RedisConfig) *RedisProfileCache {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	return &RedisProfileCache{client: client, ttl: cfg.TTL}
}

func profileKey(userID uuid.UUID) string {
	return "stayhub:profile:" + userID.String()
}

// Get loads a cached profile into dest, reporting whether it was found
func (c *RedisProfileCache) Get(ctx context.Context, userID uuid.UUID, dest interface{}) (bool, error) {
	data, err := c.client.Get(ctx, profileKey(userID)).Bytes()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("cache get: %w", err)
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return false, fmt.Errorf("cache decode: %w", err)
	}
	return true, nil
}

// Set stores a profile with the configured TTL
func (c *RedisProfileCache) Set(ctx context.Context, userID uuid.UUID, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("cache encode: %w", err)
	}
	if err := c.client.Set(ctx, profileKey(userID), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("cache set: %w", err)
	}
	return nil
}

// Invalidate removes a cached profile
func (c *RedisProfileCache) Invalidate(ctx context.Context, userID uuid.UUID) error {
	if err := c.client.Del(ctx, profileKey(userID)).Err(); err != nil {
		return fmt.Errorf("cache invalidate: %w", err)
	}
	return nil
}

// Close releases the underlying Redis connection
func (c *RedisProfileCache) Close() error {
	return c.client.Close()
}

type memoryEntry struct {
	data      []byte
	expiresAt time.Time
}

// InMemoryProfileCache is a process-local cache used in development
// and tests when Redis is disabled
type InMemoryProfileCache struct {
	mu      sync.RWMutex
	entries map[uuid.UUID]memoryEntry
	ttl     time.Duration
}

// NewInMemoryProfileCache creates an in-memory profile cache
func NewInMemoryProfileCache(ttl time.Duration) *InMemoryProfileCache {
	return &InMemoryProfileCache{
		entries: make(map[uuid.UUID]memoryEntry),
		ttl:     ttl,
	}
}

// Get loads a cached profile into dest, reporting whether it was found
func (c *InMemoryProfileCache) Get(_ context.Context, userID uuid.UUID, dest interface{}) (bool, error) {
	c.mu.RLock()
	entry, ok := c.entries[userID]
	c.mu.RUnlock()
	if !ok || time.Now().After(entry.expiresAt) {
		return false, nil
	}
	if err := json.Unmarshal(entry.data, dest); err != nil {
		return false, err
	}
	return true, nil
}

// Set stores a profile with the configured TTL
func (c *InMemoryProfileCache) Set(_ context.Context, userID uuid.UUID, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.mu.Lock()
	c.entries[userID] = memoryEntry{data: data, expiresAt: time.Now().Add(c.ttl)}
	c.mu.Unlock()
	return nil
}

// Invalidate removes a cached profile
func (c *InMemoryProfileCache) Invalidate(_ context.Context, userID uuid.UUID) error {
	c.mu.Lock()
	delete(c.entries, userID)
	c.mu.Unlock()
	return nil
}
