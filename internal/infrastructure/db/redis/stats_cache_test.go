package redis

import (
	"context"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salonelidia/salon-system/internal/api/metrics"
	"github.com/salonelidia/salon-system/internal/core/domain"
)

// unreachableClient points at a port nothing listens on.
func unreachableClient(t *testing.T) *redis.Client {
	t.Helper()

	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func TestStatsCache_GetReportsConnectionError(t *testing.T) {
	cache := NewStatsCache(unreachableClient(t), time.Minute)
	before := testutil.ToFloat64(metrics.StatsCacheTotal.WithLabelValues("error"))

	_, ok, err := cache.Get(context.Background())
	require.Error(t, err)
	assert.False(t, ok)
	assert.Equal(t, before+1, testutil.ToFloat64(metrics.StatsCacheTotal.WithLabelValues("error")))
}

func TestStatsCache_SetReportsConnectionError(t *testing.T) {
	cache := NewStatsCache(unreachableClient(t), time.Minute)

	err := cache.Set(context.Background(), domain.AdminStats{TotalClients: 1})
	assert.Error(t, err)
}

func TestNewStatsCache_DefaultTTL(t *testing.T) {
	cache := NewStatsCache(unreachableClient(t), 0)
	assert.Equal(t, defaultStatsTTL, cache.ttl)
}

func TestDecodeStats(t *testing.T) {
	stats, err := decodeStats([]byte(`{"total_clients":2,"total_points":250,"total_appointments":3}`))
	require.NoError(t, err)
	assert.Equal(t, domain.AdminStats{TotalClients: 2, TotalPoints: 250, TotalAppointments: 3}, stats)

	_, err = decodeStats([]byte(`not json`))
	assert.Error(t, err)
}

func TestConfig_Enabled(t *testing.T) {
	assert.False(t, Config{}.Enabled())
	assert.True(t, Config{Addr: "localhost:6379"}.Enabled())
}
