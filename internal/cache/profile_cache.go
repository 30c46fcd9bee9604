package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/Vengatesh521/student-teacher-booking/internal/model"
)

// ProfileCache keeps resolved profiles in Redis so the per-request principal
// lookup does not hit the database every time. A nil *ProfileCache is valid
// and turns every operation into a no-op, which is how the app runs when
// REDIS_ADDR is not configured.
type ProfileCache struct {
	rdb    *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

func NewProfileCache(addr string, logger *zap.Logger) *ProfileCache {
	if addr == "" {
		return nil
	}

	rdb := redis.NewClient(&redis.Options{Addr: addr})

	return &ProfileCache{
		rdb:    rdb,
		ttl:    10 * time.Minute,
		logger: logger,
	}
}

func profileKey(id string) string {
	return fmt.Sprintf("profile:%s", id)
}

// Get returns the cached profile or nil on miss. Cache failures degrade to a
// miss; the caller falls through to the database.
func (c *ProfileCache) Get(ctx context.Context, id string) *model.Profile {
	if c == nil {
		return nil
	}

	data, err := c.rdb.Get(ctx, profileKey(id)).Result()
	if err != nil {
		return nil
	}

	var profile model.Profile
	if err := json.Unmarshal([]byte(data), &profile); err != nil {
		c.logger.Warn("Dropping undecodable cached profile", zap.String("id", id), zap.Error(err))
		c.Invalidate(ctx, id)
		return nil
	}

	return &profile
}

// Set stores a profile for the TTL.
func (c *ProfileCache) Set(ctx context.Context, profile *model.Profile) {
	if c == nil || profile == nil {
		return
	}

	data, err := json.Marshal(profile)
	if err != nil {
		return
	}

	if err := c.rdb.Set(ctx, profileKey(profile.ID), data, c.ttl).Err(); err != nil {
		c.logger.Warn("Profile cache set failed", zap.String("id", profile.ID), zap.Error(err))
	}
}

// Invalidate drops a cached profile after a mutation.
func (c *ProfileCache) Invalidate(ctx context.Context, id string) {
	if c == nil {
		return
	}

	if err := c.rdb.Del(ctx, profileKey(id)).Err(); err != nil {
		c.logger.Warn("Profile cache invalidate failed", zap.String("id", id), zap.Error(err))
	}
}

// Close releases the Redis connection.
func (c *ProfileCache) Close() error {
	if c == nil {
		return nil
	}
	return c.rdb.Close()
}
