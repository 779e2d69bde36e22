package resourcecache

import (
	"context"
	stderrors "errors"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/dex-api/internal/errors"
	redisclient "github.com/KirkDiggler/dex-api/internal/redis"
)

const (
	cacheKeyPrefix = "dex:cache:"
	scanBatch      = 200
)

type redisRepository struct {
	client redisclient.Client
}

var _ Repository = (*redisRepository)(nil)

// RedisConfig contains configuration for the Redis resource cache.
type RedisConfig struct {
	Client redisclient.Client
}

// Validate validates the RedisConfig.
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	return nil
}

// NewRedis creates a new Redis-backed resource cache
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &redisRepository{
		client: cfg.Client,
	}, nil
}

func namespacePrefix(namespace string) string {
	return cacheKeyPrefix + namespace + ":"
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if err := validateKey(input.Namespace, input.Key); err != nil {
		return nil, err
	}

	body, err := r.client.Get(ctx, namespacePrefix(input.Namespace)+input.Key).Bytes()
	if err != nil {
		if stderrors.Is(err, redis.Nil) {
			return nil, errors.NotFoundf("no cached resource for %s", input.Key)
		}
		return nil, errors.Wrapf(err, "failed to read cached resource %s", input.Key)
	}

	return &GetOutput{Body: body}, nil
}

func (r *redisRepository) Put(ctx context.Context, input PutInput) (*PutOutput, error) {
	if err := validateKey(input.Namespace, input.Key); err != nil {
		return nil, err
	}

	key := namespacePrefix(input.Namespace) + input.Key
	if err := r.client.Set(ctx, key, input.Body, input.TTL).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to cache resource %s", input.Key)
	}

	return &PutOutput{}, nil
}

func (r *redisRepository) Clear(ctx context.Context, input ClearInput) (*ClearOutput, error) {
	if input.Namespace == "" {
		return nil, errors.InvalidArgument(errNamespaceEmpty)
	}

	pattern := namespacePrefix(input.Namespace) + "*"
	deleted := 0
	var cursor uint64
	for {
		keys, next, err := r.client.Scan(ctx, cursor, pattern, scanBatch).Result()
		if err != nil {
			return nil, errors.Wrapf(err, "failed to scan namespace %s", input.Namespace)
		}
		if len(keys) > 0 {
			n, err := r.client.Del(ctx, keys...).Result()
			if err != nil {
				return nil, errors.Wrapf(err, "failed to clear namespace %s", input.Namespace)
			}
			deleted += int(n)
		}
		if next == 0 {
			break
		}
		cursor = next
	}

	return &ClearOutput{Deleted: deleted}, nil
}

func validateKey(namespace, key string) error {
	if namespace == "" {
		return errors.InvalidArgument(errNamespaceEmpty)
	}
	if key == "" {
		return errors.InvalidArgument(errKeyEmpty)
	}
	return nil
}
