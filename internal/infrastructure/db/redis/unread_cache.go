package redis

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	unreadCountKey = "notifications:unread_count"
	unreadCountTTL = 30 * time.Second
)

// UnreadCache caches the unread-notification count so the admin console's
// badge polling does not hit MongoDB on every request. Entries expire after
// a short TTL and are invalidated on every create and mark-read.
type UnreadCache struct {
	client *redis.Client
}

func NewUnreadCache(client *redis.Client) *UnreadCache {
	return &UnreadCache{client: client}
}

// Get returns the cached count and whether the cache was warm.
func (c *UnreadCache) Get(ctx context.Context) (int64, bool, error) {
	val, err := c.client.Get(ctx, unreadCountKey).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("unread cache get: %w", err)
	}
	count, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return 0, false, nil
	}
	return count, true, nil
}

func (c *UnreadCache) Set(ctx context.Context, count int64) error {
	return c.client.Set(ctx, unreadCountKey, strconv.FormatInt(count, 10), unreadCountTTL).Err()
}

func (c *UnreadCache) Invalidate(ctx context.Context) error {
	return c.client.Del(ctx, unreadCountKey).Err()
}
