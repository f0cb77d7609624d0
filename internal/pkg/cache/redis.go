package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const keyPrefix = "rooms:filter:"

// NewRedisClient pings the server with a short timeout. It returns nil when the
// server is unreachable so callers can run without a cache.
func NewRedisClient(addr, password string, db int) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil
	}
	return client
}

// RoomCache keeps filter results as JSON encoded id lists.
// Failures are logged and treated as misses.
type RoomCache struct {
	rdb redis.Cmdable
	ttl time.Duration
	log logrus.FieldLogger
}

func NewRoomCache(rdb redis.Cmdable, ttl time.Duration, log logrus.FieldLogger) *RoomCache {
	return &RoomCache{rdb: rdb, ttl: ttl, log: log}
}

func (c *RoomCache) GetIDs(ctx context.Context, key string) ([]int64, bool) {
	raw, err := c.rdb.Get(ctx, keyPrefix+key).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.log.WithError(err).WithField("key", key).Warn("room cache read failed")
		}
		return nil, false
	}

	var ids []int64
	if err := json.Unmarshal(raw, &ids); err != nil {
		c.log.WithError(err).WithField("key", key).Warn("room cache entry is corrupt")
		return nil, false
	}
	return ids, true
}

func (c *RoomCache) SetIDs(ctx context.Context, key string, ids []int64) {
	raw, err := json.Marshal(ids)
	if err != nil {
		return
	}
	if err := c.rdb.Set(ctx, keyPrefix+key, raw, c.ttl).Err(); err != nil {
		c.log.WithError(err).WithField("key", key).Warn("room cache write failed")
	}
}
