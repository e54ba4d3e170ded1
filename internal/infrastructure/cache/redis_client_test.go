package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisConfigFromEnv(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		t.Setenv("REDIS_ADDR", "")
		t.Setenv("REDIS_DB", "")
		t.Setenv("LOCK_TTL_SECONDS", "")

		cfg, err := RedisConfigFromEnv()
		require.NoError(t, err)
		assert.Empty(t, cfg.Addr)
		assert.Equal(t, 0, cfg.DB)
		assert.Equal(t, 30*time.Second, cfg.LockTTL)
	})

	t.Run("explicit", func(t *testing.T) {
		t.Setenv("REDIS_ADDR", "redis:6379")
		t.Setenv("REDIS_DB", "2")
		t.Setenv("LOCK_TTL_SECONDS", "5")

		cfg, err := RedisConfigFromEnv()
		require.NoError(t, err)
		assert.Equal(t, "redis:6379", cfg.Addr)
		assert.Equal(t, 2, cfg.DB)
		assert.Equal(t, 5*time.Second, cfg.LockTTL)
	})

	t.Run("invalid values", func(t *testing.T) {
		t.Setenv("REDIS_DB", "x")
		_, err := RedisConfigFromEnv()
		assert.Error(t, err)

		t.Setenv("REDIS_DB", "")
		t.Setenv("LOCK_TTL_SECONDS", "-1")
		_, err = RedisConfigFromEnv()
		assert.Error(t, err)
	})
}

func TestConnectRedis_Disabled(t *testing.T) {
	rdb, err := ConnectRedis(context.Background(), RedisConfig{})
	require.NoError(t, err)
	assert.Nil(t, rdb)
}
