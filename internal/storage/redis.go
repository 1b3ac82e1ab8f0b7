package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"soulforge/internal/middleware"

	"github.com/redis/go-redis/v9"
)

type redisStore struct {
	client *redis.Client
}

// OpenRedis opens a Redis-backed blob store. Unlike a cache, storage is
// essential, so an unreachable server is an error rather than a warning.
func OpenRedis(addr string) (Store, error) {
	var opts *redis.Options
	if strings.Contains(addr, "://") {
		parsed, err := redis.ParseURL(addr)
		if err != nil {
			return nil, fmt.Errorf("storage: invalid REDIS_URL %q: %w", addr, err)
		}
		opts = parsed
	} else {
		opts = &redis.Options{Addr: addr}
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("storage: redis unreachable: %w", err)
	}

	middleware.Logger.Info("Storage connected", "driver", "redis")
	return &redisStore{client: client}, nil
}

// NewRedisStore wraps an existing client, for tests.
func NewRedisStore(client *redis.Client) Store {
	return &redisStore{client: client}
}

func (s *redisStore) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := s.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	return val, err
}

func (s *redisStore) Set(ctx context.Context, key string, value []byte) error {
	return s.client.Set(ctx, key, value, 0).Err()
}

func (s *redisStore) Delete(ctx context.Context, key string) error {
	return s.client.Del(ctx, key).Err()
}

func (s *redisStore) Close() error {
	return s.client.Close()
}
