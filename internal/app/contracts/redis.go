package contracts

import (
	"context"
	"time"
)

type RedisRepository interface {
	Set(ctx context.Context, key string, value interface{}, exp time.Duration) error
	Get(ctx context.Context, key string) (string, error)
	Delete(ctx context.Context, key string) error
	AddToSet(ctx context.Context, key string, values ...interface{}) error
	IsSetMember(ctx context.Context, key string, value interface{}) (bool, error)
}
