package kv

import (
	"context"

	"colpa-mia/internal/infra"
	"colpa-mia/internal/pkg/config"

	"github.com/redis/go-redis/v9"
)

type RedisStore struct {
	client *redis.Client
}

func NewRedisClient(cfg config.RedisConfig) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Addr(),
		Password: cfg.Password,
		DB:       cfg.DB,
	})
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, infra.WrapStoreErr("key not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapStoreErr("failed to get key", err)
	}
	return val, nil
}

func (s *RedisStore) Put(ctx context.Context, key string, value []byte) error {
	// No TTL: processed markers and ledger records must survive arbitrarily
	// late duplicate deliveries.
	if err := s.client.Set(ctx, key, value, 0).Err(); err != nil {
		return infra.WrapStoreErr("failed to put key", err)
	}
	return nil
}

func (s *RedisStore) SetIfAbsent(ctx context.Context, key string, value []byte) (bool, error) {
	created, err := s.client.SetNX(ctx, key, value, 0).Result()
	if err != nil {
		return false, infra.WrapStoreErr("failed to set key if absent", err)
	}
	return created, nil
}
