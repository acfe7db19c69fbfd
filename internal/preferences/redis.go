package preferences

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// RedisStore keeps the record as a Redis hash.
type RedisStore struct {
	client *redis.Client
	name   string
}

// NewRedisStore scopes a Redis client to the named store.
func NewRedisStore(client *redis.Client, name string) *RedisStore {
	if name == "" {
		name = DefaultName
	}
	return &RedisStore{client: client, name: name}
}

func hashKey(name string) string {
	return fmt.Sprintf("prefs:%s", name)
}

// Save queues one HSET per key on a plain (non MULTI) pipeline.
func (s *RedisStore) Save(ctx context.Context, name, phone, token string) error {
	key := hashKey(s.name)
	pipe := s.client.Pipeline()
	pipe.HSet(ctx, key, KeyName, name)
	pipe.HSet(ctx, key, KeyPhone, phone)
	pipe.HSet(ctx, key, KeyToken, token)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("save preferences: %w", err)
	}
	return nil
}

// Load reads the whole hash; fields never written stay absent.
func (s *RedisStore) Load(ctx context.Context) (Record, error) {
	data, err := s.client.HGetAll(ctx, hashKey(s.name)).Result()
	if err != nil {
		return Record{}, fmt.Errorf("load preferences: %w", err)
	}
	var rec Record
	for _, key := range keys() {
		if value, ok := data[key]; ok {
			rec.set(key, value)
		}
	}
	return rec, nil
}
