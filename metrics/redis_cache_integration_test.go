//go:build integration

package metrics_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/marcelsud/library-api/metrics"
	"github.com/marcelsud/library-api/metrics/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	testcontainersredis "github.com/testcontainers/testcontainers-go/modules/redis"
)

func setupRedis(t *testing.T, ctx context.Context) string {
	t.Helper()

	container, err := testcontainersredis.Run(ctx, "redis:7-alpine")
	require.NoError(t, err, "failed to start Redis container")
	t.Cleanup(func() {
		if err := container.Terminate(context.Background()); err != nil {
			t.Logf("failed to terminate Redis container: %v", err)
		}
	})

	addr, err := container.ConnectionString(ctx)
	require.NoError(t, err, "failed to get Redis connection string")
	return strings.TrimPrefix(addr, "redis://")
}

func TestRedisCache_Integration(t *testing.T) {
	ctx := context.Background()
	addr := setupRedis(t, ctx)

	client, err := metrics.NewRedisClient(addr, "", 0)
	require.NoError(t, err)

	snapshot := metrics.Metrics{
		Inventory:         metrics.InventoryMetrics{Titles: 3, TotalCopies: 9, AvailableCopies: 7, OnLoan: 2},
		BorrowCounts:      map[string]int64{"borrowed": 2, "returned": 5},
		ReservationCounts: map[string]int64{"pending": 1},
		Fines:             metrics.FineMetrics{Unpaid: 1, UnpaidAmount: 3000},
		Timestamp:         time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
	}

	t.Run("second read is served from Redis", func(t *testing.T) {
		next := mocks.NewCollector(t)
		next.On("Collect", mock.Anything).Return(snapshot, nil).Once()
		cache := metrics.NewRedisCache(client, next, time.Minute)
		require.NoError(t, cache.Invalidate(ctx))

		_, err := cache.Collect(ctx)
		require.NoError(t, err)

		counts, err := cache.GetBorrowCounts(ctx)
		require.NoError(t, err)
		assert.Equal(t, snapshot.BorrowCounts, counts)

		inventory, err := cache.GetInventory(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(2), inventory.OnLoan)
	})

	t.Run("invalidate forces a fresh collect", func(t *testing.T) {
		next := mocks.NewCollector(t)
		next.On("Collect", mock.Anything).Return(snapshot, nil).Twice()
		cache := metrics.NewRedisCache(client, next, time.Minute)
		require.NoError(t, cache.Invalidate(ctx))

		_, err := cache.Collect(ctx)
		require.NoError(t, err)
		require.NoError(t, cache.Invalidate(ctx))
		_, err = cache.Collect(ctx)
		require.NoError(t, err)
	})

	t.Run("snapshot expires", func(t *testing.T) {
		next := mocks.NewCollector(t)
		next.On("Collect", mock.Anything).Return(snapshot, nil).Twice()
		cache := metrics.NewRedisCache(client, next, time.Second)
		require.NoError(t, cache.Invalidate(ctx))

		_, err := cache.Collect(ctx)
		require.NoError(t, err)
		time.Sleep(1500 * time.Millisecond)
		_, err = cache.Collect(ctx)
		require.NoError(t, err)
	})
}
