package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/salonelidia/salon-system/internal/api/metrics"
	"github.com/salonelidia/salon-system/internal/core/domain"
)

// StatsKey is where the admin aggregate is cached.
const StatsKey = "salon:admin:stats"

const defaultStatsTTL = 30 * time.Second

// StatsCache stores domain.AdminStats as JSON with a short TTL.
// Key format: salon:admin:stats
type StatsCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewStatsCache creates a StatsCache wrapping the given Redis client.
func NewStatsCache(client *redis.Client, ttl time.Duration) *StatsCache {
	if ttl <= 0 {
		ttl = defaultStatsTTL
	}
	return &StatsCache{client: client, ttl: ttl}
}

// Get returns the cached aggregate. ok is false on a miss.
func (c *StatsCache) Get(ctx context.Context) (domain.AdminStats, bool, error) {
	raw, err := c.client.Get(ctx, StatsKey).Bytes()
	if errors.Is(err, redis.Nil) {
		metrics.StatsCacheTotal.WithLabelValues("miss").Inc()
		return domain.AdminStats{}, false, nil
	}
	if err != nil {
		metrics.StatsCacheTotal.WithLabelValues("error").Inc()
		return domain.AdminStats{}, false, fmt.Errorf("stats cache get: %w", err)
	}

	stats, err := decodeStats(raw)
	if err != nil {
		metrics.StatsCacheTotal.WithLabelValues("error").Inc()
		return domain.AdminStats{}, false, err
	}

	metrics.StatsCacheTotal.WithLabelValues("hit").Inc()
	return stats, true, nil
}

// Set stores stats, replacing whatever was cached, and expires after the TTL.
func (c *StatsCache) Set(ctx context.Context, stats domain.AdminStats) error {
	raw, err := json.Marshal(stats)
	if err != nil {
		return fmt.Errorf("stats cache encode: %w", err)
	}
	if err := c.client.Set(ctx, StatsKey, raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("stats cache set: %w", err)
	}
	return nil
}

func decodeStats(raw []byte) (domain.AdminStats, error) {
	var stats domain.AdminStats
	if err := json.Unmarshal(raw, &stats); err != nil {
		return domain.AdminStats{}, fmt.Errorf("stats cache decode: %w", err)
	}
	return stats, nil
}
