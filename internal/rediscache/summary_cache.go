// Package rediscache caches computed activity summaries in Redis with a
// short TTL. The cache is an optimization only; callers treat every failure
// as a miss.
package rediscache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/solvedaily/backend/internal/analytics"
	"github.com/solvedaily/backend/internal/config"
)

// SummaryCache implements analytics.SummaryCache over a Redis client.
// Summaries are stored as: SET activity:summary:{userID}:{months} {json} EX ttl
type SummaryCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewClient creates a Redis client from configuration.
func NewClient(cfg config.RedisConfig) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
}

// NewSummaryCache creates a new SummaryCache.
func NewSummaryCache(client *redis.Client, ttl time.Duration) *SummaryCache {
	return &SummaryCache{client: client, ttl: ttl}
}

// GetSummary returns the cached summary for (user, window), or nil on a miss.
func (c *SummaryCache) GetSummary(ctx context.Context, userID string, months int) (*analytics.Summary, error) {
	raw, err := c.client.Get(ctx, c.key(userID, months)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("client.Get() > %w", err)
	}

	var summary analytics.Summary
	if err := json.Unmarshal(raw, &summary); err != nil {
		return nil, fmt.Errorf("json.Unmarshal() > %w", err)
	}
	return &summary, nil
}

// SetSummary stores the summary for (user, window) with the configured TTL.
func (c *SummaryCache) SetSummary(ctx context.Context, userID string, months int, summary analytics.Summary) error {
	raw, err := json.Marshal(summary)
	if err != nil {
		return fmt.Errorf("json.Marshal() > %w", err)
	}
	if err := c.client.Set(ctx, c.key(userID, months), raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("client.Set() > %w", err)
	}
	return nil
}

// InvalidateUser drops every cached window for one user. Called after writes
// that change the user's history, so dashboards do not serve stale numbers
// for a full TTL.
func (c *SummaryCache) InvalidateUser(ctx context.Context, userID string) error {
	iter := c.client.Scan(ctx, 0, fmt.Sprintf("activity:summary:%s:*", userID), 0).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("iter.Err() > %w", err)
	}
	if len(keys) == 0 {
		return nil
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("client.Del() > %w", err)
	}
	return nil
}

func (c *SummaryCache) key(userID string, months int) string {
	return fmt.Sprintf("activity:summary:%s:%d", userID, months)
}
