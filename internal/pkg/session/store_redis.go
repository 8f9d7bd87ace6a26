package session

import (
	"context"
	goerrors "errors"
	"fmt"
	"time"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "session:"

type redisStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStore(client *redis.Client, ttl time.Duration) Store {
	return &redisStore{client: client, ttl: ttl}
}

func RedisKey(id string) string {
	return redisKeyPrefix + id
}

// Load implements Store.
func (s *redisStore) Load(ctx context.Context, id string) (Data, bool, error) {
	raw, err := s.client.Get(ctx, RedisKey(id)).Result()
	if goerrors.Is(err, redis.Nil) {
		return Data{}, false, nil
	}
	if err != nil {
		return Data{}, false, fmt.Errorf("error get session: %w", err)
	}

	var data Data
	if err := json.Unmarshal([]byte(raw), &data); err != nil {
		return Data{}, false, fmt.Errorf("error decode session: %w", err)
	}
	return data, true, nil
}

// Save implements Store.
func (s *redisStore) Save(ctx context.Context, id string, data Data) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("error encode session: %w", err)
	}
	if err := s.client.Set(ctx, RedisKey(id), string(raw), s.ttl).Err(); err != nil {
		return fmt.Errorf("error set session: %w", err)
	}
	return nil
}

// Delete implements Store.
func (s *redisStore) Delete(ctx context.Context, id string) error {
	if err := s.client.Del(ctx, RedisKey(id)).Err(); err != nil {
		return fmt.Errorf("error delete session: %w", err)
	}
	return nil
}
