package lock

import (
	"context"
	"errors"
	"fmt"
	"time"

	"storefront/pkg/logger"
	"storefront/pkg/serrors"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// releaseScript deletes the key only while it still holds our token, so a
// holder whose TTL expired cannot remove a lock taken over by someone else.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`) //nolint: gochecknoglobals

// RedisOptions configures the Redis connection of a RedisLocker.
type RedisOptions struct {
	Addr     string
	Password string
	DB       int
	// Prefix is prepended to every key.
	Prefix string
}

// RedisLocker implements Locker with SET NX PX and a token checked release.
type RedisLocker struct {
	client redis.UniversalClient
	prefix string
}

// NewRedis connects to Redis and verifies the connection with PING.
func NewRedis(ctx context.Context, options RedisOptions) (*RedisLocker, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     options.Addr,
		Password: options.Password,
		DB:       options.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()

		return nil, fmt.Errorf("could not connect to redis at %s: %w", options.Addr, err)
	}

	return NewRedisWithClient(client, options.Prefix), nil
}

// NewRedisWithClient builds a RedisLocker on an existing client.
func NewRedisWithClient(client redis.UniversalClient, prefix string) *RedisLocker {
	return &RedisLocker{client: client, prefix: prefix}
}

// Acquire implements Locker.
func (l *RedisLocker) Acquire(ctx context.Context, key string, ttl time.Duration) (Release, error) {
	key = l.prefix + key
	token := uuid.NewString()

	ok, err := l.client.SetNX(ctx, key, token, ttl).Result()
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrStorage, err, "could not acquire lock %s", key)
	}
	if !ok {
		return nil, serrors.With(serrors.ErrBusy, "operation already in progress")
	}

	logger.Debug(ctx, "lock acquired", zap.String("key", key), zap.Duration("ttl", ttl))

	return func(ctx context.Context) error {
		err := releaseScript.Run(ctx, l.client, []string{key}, token).Err()
		if err != nil && !errors.Is(err, redis.Nil) {
			return serrors.Wrap(serrors.ErrStorage, err, "could not release lock %s", key)
		}

		return nil
	}, nil
}

// Close closes the underlying client.
func (l *RedisLocker) Close() error {
	return l.client.Close()
}

// Ping reports whether the Redis server answers.
func (l *RedisLocker) Ping(ctx context.Context) error {
	if err := l.client.Ping(ctx).Err(); err != nil {
		return serrors.Wrap(serrors.ErrStorage, err, "redis is unreachable")
	}

	return nil
}
