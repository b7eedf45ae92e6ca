package repository

import (
	"context"
	"errors"
	"fmt"

	redis "github.com/redis/go-redis/v9"

	redisPkg "golang-stock-dashboard/pkg/redis"
)

// NewRedisStore creates a store backed by plain redis strings under keyPrefix.
func NewRedisStore(client *redisPkg.Client, keyPrefix string) KVStore {
	return &redisStore{client: client, prefix: keyPrefix}
}

type redisStore struct {
	client *redisPkg.Client
	prefix string
}

func (s *redisStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	b, err := s.client.Get(ctx, s.prefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to get %s from redis: %w", key, err)
	}
	return b, true, nil
}

func (s *redisStore) Set(ctx context.Context, key string, value []byte) error {
	if err := s.client.Set(ctx, s.prefix+key, value, 0).Err(); err != nil {
		return fmt.Errorf("failed to set %s in redis: %w", key, err)
	}
	return nil
}

func (s *redisStore) Delete(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, s.prefix+key).Err(); err != nil {
		return fmt.Errorf("failed to delete %s from redis: %w", key, err)
	}
	return nil
}
