package redis

import (
	"context"
	"encoding/json"
	"time"

	"skyhi-pos/internal/model"

	rd "github.com/redis/go-redis/v9"
)

// MenuCache caches the full menu listing as one JSON value with a TTL.
// Staff mutations invalidate it; a cold or broken cache falls back to the DB.
type MenuCache struct {
	rdb *rd.Client
	ttl time.Duration
}

func NewMenuCache(rdb *rd.Client, ttl time.Duration) *MenuCache {
	return &MenuCache{rdb: rdb, ttl: ttl}
}

// Get returns the cached listing. found=false means the key is absent.
func (c *MenuCache) Get(ctx context.Context) ([]model.MenuItem, bool, error) {
	raw, err := c.rdb.Get(ctx, MenuCacheKey()).Bytes()
	if err != nil {
		if err == rd.Nil {
			return nil, false, nil
		}
		return nil, false, err
	}
	var items []model.MenuItem
	if err := json.Unmarshal(raw, &items); err != nil {
		// Corrupt entry: treat as a miss so the next Set overwrites it.
		return nil, false, nil
	}
	return items, true, nil
}

// Set stores the listing and refreshes the TTL.
func (c *MenuCache) Set(ctx context.Context, items []model.MenuItem) error {
	raw, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, MenuCacheKey(), raw, c.ttl).Err()
}

// Invalidate drops the cached listing.
func (c *MenuCache) Invalidate(ctx context.Context) error {
	return c.rdb.Del(ctx, MenuCacheKey()).Err()
}
