package lock

import (
	"context"
	"errors"
	"time"

	"outorga_monitor/internal/infrastructure/logging"
	"outorga_monitor/internal/usecase/interfaces"

	"github.com/bsm/redislock"
	"github.com/redis/go-redis/v9"
)

const (
	defaultLockTTL     = 30 * time.Second
	defaultLockRetries = 50
	lockRetryInterval  = 100 * time.Millisecond
)

// ErrLockNotObtained is returned when the key stays held by another process for the
// whole retry budget.
var ErrLockNotObtained = errors.New("could not obtain lock")

type obtainer interface {
	Obtain(ctx context.Context, key string, ttl time.Duration, opt *redislock.Options) (*redislock.Lock, error)
}

// RedisKeyLocker serializes work across API and intake replicas with a redis lock.
type RedisKeyLocker struct {
	client  obtainer
	ttl     time.Duration
	retries int
}

var _ interfaces.IKeyLocker = (*RedisKeyLocker)(nil)

func NewRedisKeyLocker(rdb redis.UniversalClient, ttl time.Duration) *RedisKeyLocker {
	if ttl <= 0 {
		ttl = defaultLockTTL
	}
	return &RedisKeyLocker{
		client:  redislock.New(rdb),
		ttl:     ttl,
		retries: defaultLockRetries,
	}
}

func (l *RedisKeyLocker) Lock(ctx context.Context, key string) (func(), error) {
	lk, err := l.client.Obtain(ctx, key, l.ttl, &redislock.Options{
		RetryStrategy: redislock.LimitRetry(redislock.LinearBackoff(lockRetryInterval), l.retries),
	})
	if errors.Is(err, redislock.ErrNotObtained) {
		logging.LogError("lock", "Lock", "lock held elsewhere", key, err)
		return nil, ErrLockNotObtained
	}
	if err != nil {
		logging.LogError("lock", "Lock", "obtain redis lock", key, err)
		return nil, err
	}

	return func() {
		// The request context may already be gone when the caller unwinds.
		if err := lk.Release(context.Background()); err != nil && !errors.Is(err, redislock.ErrLockNotHeld) {
			logging.LogError("lock", "Unlock", "release redis lock", key, err)
		}
	}, nil
}
