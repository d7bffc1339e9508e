package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/pressroom/publishing-system/internal/api/metrics"
	"github.com/pressroom/publishing-system/internal/core/ports"
)

const (
	feedKey = "cache:articles:published"
	feedTTL = time.Minute
)

// FeedCache stores the rendered published-article feed in Redis. Entries
// expire after feedTTL and are dropped eagerly on publish and delete.
type FeedCache struct {
	client *redis.Client
}

// NewFeedCache creates a FeedCache wrapping the given Redis client.
func NewFeedCache(client *redis.Client) *FeedCache {
	return &FeedCache{client: client}
}

// Get returns the cached feed, or nil on a miss.
func (c *FeedCache) Get(ctx context.Context) ([]ports.ArticleView, error) {
	raw, err := c.client.Get(ctx, feedKey).Bytes()
	if errors.Is(err, redis.Nil) {
		metrics.FeedCacheTotal.WithLabelValues("miss").Inc()
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("feed cache get: %w", err)
	}

	var items []ports.ArticleView
	if err := json.Unmarshal(raw, &items); err != nil {
		// A corrupt entry is treated as a miss and overwritten by Set.
		metrics.FeedCacheTotal.WithLabelValues("miss").Inc()
		return nil, nil
	}
	metrics.FeedCacheTotal.WithLabelValues("hit").Inc()
	return items, nil
}

// Set replaces the cached feed.
func (c *FeedCache) Set(ctx context.Context, items []ports.ArticleView) error {
	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("feed cache encode: %w", err)
	}
	return c.client.Set(ctx, feedKey, raw, feedTTL).Err()
}

// Invalidate drops the cached feed.
func (c *FeedCache) Invalidate(ctx context.Context) error {
	return c.client.Del(ctx, feedKey).Err()
}
