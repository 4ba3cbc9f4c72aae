package contracts

import (
	"context"
	"time"
)

type RedisRepository interface {
	Delete(ctx context.Context, keys ...string) error
	Set(ctx context.Context, key string, value interface{}, exp time.Duration) error
	Get(ctx context.Context, key string) (string, error)
	TrySetNX(ctx context.Context, key string, value interface{}, exp time.Duration) (bool, error)
	GetField(ctx context.Context, key, field string) (string, error)
	SetField(ctx context.Context, key, field string, value interface{}, exp time.Duration) error
	DeleteFields(ctx context.Context, key string, fields ...string) error
}
