package repositories

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
)

// RedisDocumentRepo keeps each document as a plain string value.
type RedisDocumentRepo struct {
	client *redis.Client
	prefix string
}

// NewRedisDocumentRepo constructs a RedisDocumentRepo. Keys are stored as prefix+key.
func NewRedisDocumentRepo(client *redis.Client, prefix string) *RedisDocumentRepo {
	return &RedisDocumentRepo{client: client, prefix: prefix}
}

func (r *RedisDocumentRepo) GetDocument(ctx context.Context, key string) ([]byte, error) {
	val, err := r.client.Get(ctx, r.prefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrDocumentNotFound
	}
	return val, err
}

func (r *RedisDocumentRepo) PutDocument(ctx context.Context, key string, body []byte) error {
	return r.client.Set(ctx, r.prefix+key, body, 0).Err()
}

func (r *RedisDocumentRepo) DeleteDocument(ctx context.Context, key string) error {
	return r.client.Del(ctx, r.prefix+key).Err()
}

// Ping checks if Redis is alive.
func (r *RedisDocumentRepo) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

// Close closes the Redis connection.
func (r *RedisDocumentRepo) Close() error {
	return r.client.Close()
}
