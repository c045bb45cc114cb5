package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/christopherstationary/website/core/preference"
)

// KV is the subset of redis.Cmdable used by PreferenceStore.
type KV interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
}

// PreferenceStore keeps preferences as plain string keys.
type PreferenceStore struct {
	kv     KV
	prefix string
	ttl    time.Duration
}

var _ preference.Store = (*PreferenceStore)(nil)

// PreferenceOption configures a PreferenceStore.
type PreferenceOption func(*PreferenceStore)

// WithKeyPrefix namespaces every key.
func WithKeyPrefix(prefix string) PreferenceOption {
	return func(s *PreferenceStore) {
		s.prefix = prefix
	}
}

// WithTTL expires entries after ttl. Zero keeps them forever.
func WithTTL(ttl time.Duration) PreferenceOption {
	return func(s *PreferenceStore) {
		s.ttl = ttl
	}
}

// NewPreferenceStore returns a preference.Store backed by kv.
func NewPreferenceStore(kv KV, opts ...PreferenceOption) *PreferenceStore {
	s := &PreferenceStore{kv: kv}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *PreferenceStore) Get(ctx context.Context, key string) (string, error) {
	val, err := s.kv.Get(ctx, s.prefix+key).Result()
	if errors.Is(err, redis.Nil) {
		return "", preference.ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("redis get %s: %w", key, err)
	}
	return val, nil
}

func (s *PreferenceStore) Set(ctx context.Context, key, value string) error {
	if err := s.kv.Set(ctx, s.prefix+key, value, s.ttl).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}
