//go:build !integration

package metrics_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/marcelsud/library-api/metrics"
	"github.com/marcelsud/library-api/metrics/mocks"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// unreachable points at a port nothing listens on, so every command fails fast
func unreachable(t *testing.T) *redis.Client {
	t.Helper()
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func TestRedisCache_FallsBackWhenRedisIsDown(t *testing.T) {
	next := mocks.NewCollector(t)
	snapshot := metrics.Metrics{OverdueBorrows: 2, Inventory: metrics.InventoryMetrics{Titles: 4}}
	next.On("Collect", mock.Anything).Return(snapshot, nil).Twice()

	cache := metrics.NewRedisCache(unreachable(t), next, time.Minute)

	m, err := cache.Collect(context.Background())
	require.NoError(t, err)
	assert.Equal(t, snapshot, m)

	overdue, err := cache.GetOverdueBorrows(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(2), overdue)
}

func TestRedisCache_PropagatesCollectorError(t *testing.T) {
	next := mocks.NewCollector(t)
	next.On("Collect", mock.Anything).Return(metrics.Metrics{}, errors.New("db down"))

	cache := metrics.NewRedisCache(unreachable(t), next, 0)

	_, err := cache.GetFines(context.Background())
	assert.EqualError(t, err, "db down")
}

func TestNewRedisClient_Unreachable(t *testing.T) {
	_, err := metrics.NewRedisClient("127.0.0.1:1", "", 0)
	assert.ErrorContains(t, err, "connecting to Redis")
}
