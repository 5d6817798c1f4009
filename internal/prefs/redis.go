package prefs

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const redisOpTimeout = 2 * time.Second

// RedisStore keeps the preference in redis with a native TTL.
type RedisStore struct {
	client *redis.Client
	key    string
}

// NewRedisStore connects to the given URL and verifies the server is
// reachable.
func NewRedisStore(redisURL string) (*RedisStore, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("connect to redis: %w", err)
	}

	return &RedisStore{client: client, key: "sidebar:" + Key}, nil
}

// NewRedisStoreWithClient wraps an existing client.
func NewRedisStoreWithClient(client *redis.Client) *RedisStore {
	return &RedisStore{client: client, key: "sidebar:" + Key}
}

// Read returns the stored value. redis.Nil and transport errors are
// both misses; expiry is handled server-side by the TTL.
func (s *RedisStore) Read() (bool, bool) {
	ctx, cancel := context.WithTimeout(context.Background(), redisOpTimeout)
	defer cancel()

	val, err := s.client.Get(ctx, s.key).Result()
	if err != nil {
		return false, false
	}
	return val == "1", true
}

// Write sets the value with the standard TTL.
func (s *RedisStore) Write(v bool) error {
	ctx, cancel := context.WithTimeout(context.Background(), redisOpTimeout)
	defer cancel()

	val := "0"
	if v {
		val = "1"
	}
	if err := s.client.Set(ctx, s.key, val, TTL).Err(); err != nil {
		return fmt.Errorf("save panel preference: %w", err)
	}
	return nil
}

// Close closes the underlying connection.
func (s *RedisStore) Close() error {
	return s.client.Close()
}
