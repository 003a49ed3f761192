package service

import (
	"context"
	"fmt"
	"time"
)

const docCacheTTL = 5 * time.Minute

// DocumentCache is the slice of cache behavior the services depend on. The
// redis-backed cache.Client satisfies it.
type DocumentCache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	DeleteMany(ctx context.Context, keys ...string) error
}

func userDocKey(id uint) string {
	return fmt.Sprintf("user:doc:%d", id)
}

func courseDocKey(id uint) string {
	return fmt.Sprintf("course:doc:%d", id)
}
