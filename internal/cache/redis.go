package cache

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/oggyb/muzz-smartmatch/internal/config"
)

// RedisCache keeps short-lived matching state: presence heartbeats and
// refresh de-duplication locks.
type RedisCache struct {
	Client *redis.Client

	// ActivityTTL bounds how long a presence record lives. Past it the
	// relational last_active_at is the only source.
	ActivityTTL time.Duration
}

// NewRedisCache initializes Redis client from config.
// Only Addr is mandatory, Password/DB are optional.
func NewRedisCache(cfg *config.Config) *RedisCache {
	opts := &redis.Options{
		Addr: cfg.Redis.Addr,
	}
	if cfg.Redis.Password != "" {
		opts.Password = cfg.Redis.Password
	}
	if cfg.Redis.DB != 0 {
		opts.DB = cfg.Redis.DB
	}
	return &RedisCache{
		Client:      redis.NewClient(opts),
		ActivityTTL: cfg.Matching.InactiveCutoff,
	}
}

func (c *RedisCache) Ping(ctx context.Context) error {
	return c.Client.Ping(ctx).Err()
}

func (c *RedisCache) Close() error {
	return c.Client.Close()
}

// KeyForActivity generates Redis key for a user's presence heartbeat
func (c *RedisCache) KeyForActivity(userID uint64) string {
	return fmt.Sprintf("activity:last:%d", userID)
}

// KeyForRefreshLock generates Redis key for a user's refresh cooldown
func (c *RedisCache) KeyForRefreshLock(userID uint64) string {
	return fmt.Sprintf("scores:refresh:%d", userID)
}

// TouchActivity records at (unix millis) as the user's last activity.
// Always refreshes the TTL.
func (c *RedisCache) TouchActivity(ctx context.Context, userID uint64, at time.Time) error {
	return c.Client.Set(ctx, c.KeyForActivity(userID), at.UnixMilli(), c.ActivityTTL).Err()
}

// LastActivity returns the recorded heartbeat. ok is false on a cache miss.
func (c *RedisCache) LastActivity(ctx context.Context, userID uint64) (time.Time, bool, error) {
	val, err := c.Client.Get(ctx, c.KeyForActivity(userID)).Result()
	if errors.Is(err, redis.Nil) {
		return time.Time{}, false, nil // cache miss
	} else if err != nil {
		return time.Time{}, false, err
	}
	ms, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return time.Time{}, false, fmt.Errorf("corrupt activity record for user %d: %w", userID, err)
	}
	return time.UnixMilli(ms).UTC(), true, nil
}

// TryLockRefresh takes the refresh cooldown lock for userID.
// Returns false while a previous lock is still alive.
func (c *RedisCache) TryLockRefresh(ctx context.Context, userID uint64, ttl time.Duration) (bool, error) {
	return c.Client.SetNX(ctx, c.KeyForRefreshLock(userID), time.Now().UnixMilli(), ttl).Result()
}

// ReleaseRefresh drops the cooldown lock, e.g. when publishing failed.
func (c *RedisCache) ReleaseRefresh(ctx context.Context, userID uint64) error {
	return c.Client.Del(ctx, c.KeyForRefreshLock(userID)).Err()
}
