package lock

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v9"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const redisKeyPrefix = "pix-ledger:lock:"

type RedisOptions struct {
	// Expiry bounds how long a crashed holder keeps a key.
	Expiry     time.Duration
	Tries      int
	RetryDelay time.Duration
}

func DefaultRedisOptions(expiry time.Duration) RedisOptions {
	return RedisOptions{
		Expiry:     expiry,
		Tries:      64,
		RetryDelay: 50 * time.Millisecond,
	}
}

// RedisLocker locks keys across processes sharing one redis.
type RedisLocker struct {
	rs      *redsync.Redsync
	options RedisOptions
	logger  *logrus.Logger
}

var _ Locker = (*RedisLocker)(nil)

func NewRedisLocker(client redis.UniversalClient, options RedisOptions, logger *logrus.Logger) *RedisLocker {
	return &RedisLocker{
		rs:      redsync.New(goredis.NewPool(client)),
		options: options,
		logger:  logger,
	}
}

func (l *RedisLocker) Lock(ctx context.Context, keys ...string) (func(), error) {
	keys = normalizeKeys(keys)
	held := make([]*redsync.Mutex, 0, len(keys))

	releaseAll := func() {
		for i := len(held) - 1; i >= 0; i-- {
			if _, err := held[i].UnlockContext(context.Background()); err != nil {
				l.logger.WithError(err).WithField("lockKey", held[i].Name()).Warn("RedisLocker.Unlock")
			}
		}
	}

	for _, key := range keys {
		mutex := l.rs.NewMutex(
			redisKeyPrefix+key,
			redsync.WithExpiry(l.options.Expiry),
			redsync.WithTries(l.options.Tries),
			redsync.WithRetryDelay(l.options.RetryDelay),
		)
		if err := mutex.LockContext(ctx); err != nil {
			releaseAll()
			return nil, fmt.Errorf("lock %s: %w", key, err)
		}
		held = append(held, mutex)
	}

	var once sync.Once
	return func() { once.Do(releaseAll) }, nil
}
