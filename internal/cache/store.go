package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// Default TTLs for the content listings that get cached.
const (
	ListingTTL = 5 * time.Minute
	DetailTTL  = 15 * time.Minute
)

// Store wraps a Redis client with JSON serialization. A Store built from a
// nil client is valid and behaves as an always-miss cache.
type Store struct {
	client *redis.Client
}

// NewStore returns a Store over the given client. client may be nil.
func NewStore(client *redis.Client) *Store {
	return &Store{client: client}
}

// GetJSON looks up key and unmarshals it into dest. Returns (false, nil) on a
// cache miss or when no cache is configured.
func (s *Store) GetJSON(ctx context.Context, key string, dest any) (bool, error) {
	if s == nil || s.client == nil {
		return false, nil
	}
	val, err := s.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal([]byte(val), dest); err != nil {
		return false, err
	}
	return true, nil
}

// SetJSON marshals v and stores it under key with the given TTL.
func (s *Store) SetJSON(ctx context.Context, key string, v any, ttl time.Duration) error {
	if s == nil || s.client == nil {
		return nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, key, b, ttl).Err()
}

// Invalidate drops the given keys. Missing keys are not an error.
func (s *Store) Invalidate(ctx context.Context, keys ...string) error {
	if s == nil || s.client == nil || len(keys) == 0 {
		return nil
	}
	return s.client.Del(ctx, keys...).Err()
}

// ReadThrough tries the cache first, and on a miss runs fetch (which must
// populate dest) then stores the result best-effort. Cache read errors fall
// through to the source of truth.
func (s *Store) ReadThrough(ctx context.Context, key string, dest any, ttl time.Duration, fetch func() error) error {
	if found, err := s.GetJSON(ctx, key, dest); err == nil && found {
		return nil
	}

	if err := fetch(); err != nil {
		return err
	}

	_ = s.SetJSON(ctx, key, dest, ttl)
	return nil
}
