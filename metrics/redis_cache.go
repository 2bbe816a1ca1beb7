package metrics

import (
	"context"
	"fmt"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/redis/go-redis/v9"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const snapshotKey = "library:stats"

/* RedisCache keeps the last snapshot of another Collector in Redis for ttl.
 * /api/stats and every Prometheus scrape share it, so the aggregate queries
 * run at most once per ttl across all API instances.
 * When Redis fails the wrapped collector answers directly.
 */
type RedisCache struct {
	client *redis.Client
	next   Collector
	ttl    time.Duration
}

// NewRedisClient connects to Redis and checks the connection
func NewRedisClient(addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("connecting to Redis: %w", err)
	}
	return client, nil
}

// NewRedisCache wraps next; a non-positive ttl means 30 seconds
func NewRedisCache(client *redis.Client, next Collector, ttl time.Duration) *RedisCache {
	if ttl <= 0 {
		ttl = 30 * time.Second
	}
	return &RedisCache{
		client: client,
		next:   next,
		ttl:    ttl,
	}
}

// Collect returns the cached snapshot, collecting and storing a fresh one on a miss
func (c *RedisCache) Collect(ctx context.Context) (Metrics, error) {
	if m, ok := c.cached(ctx); ok {
		return m, nil
	}

	m, err := c.next.Collect(ctx)
	if err != nil {
		return Metrics{}, err
	}

	if data, err := json.Marshal(m); err == nil {
		// a failed write only costs the next caller a fresh collect
		_ = c.client.Set(ctx, snapshotKey, data, c.ttl).Err()
	}
	return m, nil
}

func (c *RedisCache) cached(ctx context.Context) (Metrics, bool) {
	data, err := c.client.Get(ctx, snapshotKey).Bytes()
	if err != nil {
		return Metrics{}, false
	}
	var m Metrics
	if err := json.Unmarshal(data, &m); err != nil {
		return Metrics{}, false
	}
	return m, true
}

// Invalidate drops the snapshot so the next Collect reads the database
func (c *RedisCache) Invalidate(ctx context.Context) error {
	if err := c.client.Del(ctx, snapshotKey).Err(); err != nil {
		return fmt.Errorf("invalidating stats snapshot: %w", err)
	}
	return nil
}

// GetInventory returns title and copy counters from the snapshot
func (c *RedisCache) GetInventory(ctx context.Context) (InventoryMetrics, error) {
	m, err := c.Collect(ctx)
	return m.Inventory, err
}

// GetBorrowCounts returns the count of borrows by status from the snapshot
func (c *RedisCache) GetBorrowCounts(ctx context.Context) (map[string]int64, error) {
	m, err := c.Collect(ctx)
	return m.BorrowCounts, err
}

// GetOverdueBorrows returns how many open borrows were past due in the snapshot
func (c *RedisCache) GetOverdueBorrows(ctx context.Context) (int64, error) {
	m, err := c.Collect(ctx)
	return m.OverdueBorrows, err
}

// GetReservationCounts returns the count of reservations by status from the snapshot
func (c *RedisCache) GetReservationCounts(ctx context.Context) (map[string]int64, error) {
	m, err := c.Collect(ctx)
	return m.ReservationCounts, err
}

// GetFines returns fine counters and amounts from the snapshot
func (c *RedisCache) GetFines(ctx context.Context) (FineMetrics, error) {
	m, err := c.Collect(ctx)
	return m.Fines, err
}

// Close closes the Redis client
func (c *RedisCache) Close() error {
	return c.client.Close()
}
