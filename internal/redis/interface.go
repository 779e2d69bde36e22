package redis

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// Client is the slice of go-redis the resource cache needs. *redis.Client
// satisfies it, and so does a miniredis-backed client in tests.
type Client interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
	Scan(ctx context.Context, cursor uint64, match string, count int64) *redis.ScanCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
	Ping(ctx context.Context) *redis.StatusCmd
	Close() error
}

var _ Client = (*redis.Client)(nil)
