package cache

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"outorga_monitor/internal/infrastructure/logging"

	"github.com/redis/go-redis/v9"
)

// RedisConfig is read from the environment:
//   - REDIS_ADDR (optional; empty disables redis)
//   - REDIS_PASSWORD
//   - REDIS_DB (default: 0)
//   - LOCK_TTL_SECONDS (default: 30)
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	LockTTL  time.Duration
}

func RedisConfigFromEnv() (RedisConfig, error) {
	cfg := RedisConfig{
		Addr:     os.Getenv("REDIS_ADDR"),
		Password: os.Getenv("REDIS_PASSWORD"),
		LockTTL:  30 * time.Second,
	}
	if v := os.Getenv("REDIS_DB"); v != "" {
		db, err := strconv.Atoi(v)
		if err != nil {
			return RedisConfig{}, fmt.Errorf("invalid REDIS_DB %q: %w", v, err)
		}
		cfg.DB = db
	}
	if v := os.Getenv("LOCK_TTL_SECONDS"); v != "" {
		secs, err := strconv.Atoi(v)
		if err != nil || secs <= 0 {
			return RedisConfig{}, fmt.Errorf("invalid LOCK_TTL_SECONDS %q", v)
		}
		cfg.LockTTL = time.Duration(secs) * time.Second
	}
	return cfg, nil
}

// ConnectRedis returns nil, nil when no address is configured.
func ConnectRedis(ctx context.Context, cfg RedisConfig) (*redis.Client, error) {
	if cfg.Addr == "" {
		logging.Module("cache", "infrastructure").Warn("REDIS_ADDR not set; period locks are process-local")
		return nil, nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("could not connect to redis at %s: %w", cfg.Addr, err)
	}
	logging.Module("cache", "infrastructure").WithField("addr", cfg.Addr).Info("connected to redis")
	return rdb, nil
}
