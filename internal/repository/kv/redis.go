package kv

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// RedisStore implements Store on top of a Redis instance. Prefix scans use
// SCAN with a MATCH pattern, so they see whatever keys the server exposes at
// scan time; no snapshot isolation is provided.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore connects to Redis at addr and verifies the connection.
func NewRedisStore(ctx context.Context, addr string) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{Addr: addr})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}

	return &RedisStore{client: client}, nil
}

// Put upserts value under key with no expiry.
func (s *RedisStore) Put(ctx context.Context, key string, value []byte) error {
	if err := s.client.Set(ctx, key, value, 0).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

// ScanPrefix walks the keyspace with SCAN MATCH prefix* and fetches the
// matching values in one MGET per cursor page.
func (s *RedisStore) ScanPrefix(ctx context.Context, prefix string) ([][]byte, error) {
	var out [][]byte

	iter := s.client.Scan(ctx, 0, prefix+"*", 100).Iterator()
	var page []string
	flush := func() error {
		if len(page) == 0 {
			return nil
		}
		values, err := s.client.MGet(ctx, page...).Result()
		if err != nil {
			return fmt.Errorf("redis mget: %w", err)
		}
		for _, v := range values {
			if str, ok := v.(string); ok {
				out = append(out, []byte(str))
			}
		}
		page = page[:0]
		return nil
	}

	for iter.Next(ctx) {
		page = append(page, iter.Val())
		if len(page) >= 100 {
			if err := flush(); err != nil {
				return nil, err
			}
		}
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("redis scan %s*: %w", prefix, err)
	}
	if err := flush(); err != nil {
		return nil, err
	}

	return out, nil
}

// ScanPrefixKeys returns the keys matching prefix*.
func (s *RedisStore) ScanPrefixKeys(ctx context.Context, prefix string) ([]string, error) {
	var keys []string

	iter := s.client.Scan(ctx, 0, prefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("redis scan %s*: %w", prefix, err)
	}

	return keys, nil
}

// Delete removes key. Missing keys are ignored.
func (s *RedisStore) Delete(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("redis del %s: %w", key, err)
	}
	return nil
}

// Close releases the underlying connection pool.
func (s *RedisStore) Close(_ context.Context) error {
	return s.client.Close()
}
