package kv

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// RedisStore keeps blobs as plain Redis strings under Prefix+key with no
// expiry. SET replaces the value atomically.
type RedisStore struct {
	client redis.Cmdable
	prefix string
}

// NewRedisStore constructs a RedisStore. prefix namespaces the keys, e.g.
// "packlist:" stores the adventures blob at "packlist:adventures".
func NewRedisStore(client redis.Cmdable, prefix string) *RedisStore {
	return &RedisStore{client: client, prefix: prefix}
}

func (s *RedisStore) Get(ctx context.Context, key string) ([]byte, error) {
	value, err := s.client.Get(ctx, s.prefix+key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, fmt.Errorf("kv.RedisStore.Get: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("kv.RedisStore.Get: %w", err)
	}
	return value, nil
}

func (s *RedisStore) Put(ctx context.Context, key string, value []byte) error {
	if err := s.client.Set(ctx, s.prefix+key, value, 0).Err(); err != nil {
		return fmt.Errorf("kv.RedisStore.Put: %w", err)
	}
	return nil
}

func (s *RedisStore) Delete(ctx context.Context, key string) error {
	n, err := s.client.Del(ctx, s.prefix+key).Result()
	if err != nil {
		return fmt.Errorf("kv.RedisStore.Delete: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("kv.RedisStore.Delete: %w", ErrNotFound)
	}
	return nil
}
