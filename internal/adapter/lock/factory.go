package lock

import (
	"time"

	"outorga_monitor/internal/usecase/interfaces"

	"github.com/redis/go-redis/v9"
)

// New picks the redis locker when a client is available, the in-process one otherwise.
func New(rdb *redis.Client, ttl time.Duration) interfaces.IKeyLocker {
	if rdb == nil {
		return NewLocalKeyLocker()
	}
	return NewRedisKeyLocker(rdb, ttl)
}
