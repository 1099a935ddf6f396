package session

import (
	"context"
	"encoding/json"
	"time"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"

	"github.com/autoparts/storefront/storefront"
)

const redisKeyPrefix = "session:"

// RedisStore keeps JSON-encoded session state in Redis with a sliding TTL.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

func (r *RedisStore) Get(ctx context.Context, id string) (storefront.State, error) {
	raw, err := r.client.GetEx(ctx, redisKeyPrefix+id, r.ttl).Bytes()
	if errors.Is(err, redis.Nil) {
		return storefront.State{}, ErrNotFound
	}
	if err != nil {
		return storefront.State{}, errors.Wrap(err, "redis get session")
	}
	var s storefront.State
	if err := json.Unmarshal(raw, &s); err != nil {
		return storefront.State{}, errors.Wrap(err, "decode session")
	}
	return s, nil
}

func (r *RedisStore) Save(ctx context.Context, id string, s storefront.State) error {
	raw, err := json.Marshal(s)
	if err != nil {
		return errors.Wrap(err, "encode session")
	}
	if err := r.client.Set(ctx, redisKeyPrefix+id, raw, r.ttl).Err(); err != nil {
		return errors.Wrap(err, "redis set session")
	}
	return nil
}

func (r *RedisStore) Delete(ctx context.Context, id string) error {
	if err := r.client.Del(ctx, redisKeyPrefix+id).Err(); err != nil {
		return errors.Wrap(err, "redis delete session")
	}
	return nil
}
