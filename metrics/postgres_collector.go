package metrics

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/marcelsud/library-api/lending"
)

const (
	inventoryQuery = `SELECT COUNT(*) AS titles, COALESCE(SUM(total_copies), 0) AS total_copies,
		COALESCE(SUM(available_copies), 0) AS available_copies FROM books`

	borrowCountsQuery      = `SELECT status, COUNT(*) AS count FROM borrows GROUP BY status`
	overdueBorrowsQuery    = `SELECT COUNT(*) FROM borrows WHERE status = 'borrowed' AND due_date < CURRENT_DATE`
	reservationCountsQuery = `SELECT status, COUNT(*) AS count FROM reservations GROUP BY status`

	finesQuery = `SELECT
		COUNT(*) FILTER (WHERE NOT is_paid) AS unpaid,
		COALESCE(SUM(amount) FILTER (WHERE NOT is_paid), 0) AS unpaid_amount,
		COUNT(*) FILTER (WHERE is_paid) AS paid,
		COALESCE(SUM(amount) FILTER (WHERE is_paid), 0) AS paid_amount
		FROM fines`
)

type statusCount struct {
	Status string `db:"status"`
	Count  int64  `db:"count"`
}

type inventoryRow struct {
	Titles          int64 `db:"titles"`
	TotalCopies     int64 `db:"total_copies"`
	AvailableCopies int64 `db:"available_copies"`
}

type finesRow struct {
	Unpaid       int64 `db:"unpaid"`
	UnpaidAmount int64 `db:"unpaid_amount"`
	Paid         int64 `db:"paid"`
	PaidAmount   int64 `db:"paid_amount"`
}

// PostgresCollector implements the Collector interface with aggregate queries
type PostgresCollector struct {
	db *sqlx.DB
}

// NewPostgresCollector creates a new PostgreSQL metrics collector
func NewPostgresCollector(db *sqlx.DB) *PostgresCollector {
	return &PostgresCollector{
		db: db,
	}
}

// Collect gathers all metrics from the database
func (c *PostgresCollector) Collect(ctx context.Context) (Metrics, error) {
	inventory, err := c.GetInventory(ctx)
	if err != nil {
		return Metrics{}, fmt.Errorf("getting inventory: %w", err)
	}

	borrows, err := c.GetBorrowCounts(ctx)
	if err != nil {
		return Metrics{}, fmt.Errorf("getting borrow counts: %w", err)
	}

	overdue, err := c.GetOverdueBorrows(ctx)
	if err != nil {
		return Metrics{}, fmt.Errorf("getting overdue borrows: %w", err)
	}

	reservations, err := c.GetReservationCounts(ctx)
	if err != nil {
		return Metrics{}, fmt.Errorf("getting reservation counts: %w", err)
	}

	fines, err := c.GetFines(ctx)
	if err != nil {
		return Metrics{}, fmt.Errorf("getting fines: %w", err)
	}

	return Metrics{
		Inventory:         inventory,
		BorrowCounts:      borrows,
		OverdueBorrows:    overdue,
		ReservationCounts: reservations,
		Fines:             fines,
		Timestamp:         time.Now(),
	}, nil
}

// GetInventory returns title and copy counters of the catalog
func (c *PostgresCollector) GetInventory(ctx context.Context) (InventoryMetrics, error) {
	var row inventoryRow
	if err := c.db.GetContext(ctx, &row, inventoryQuery); err != nil {
		return InventoryMetrics{}, fmt.Errorf("querying inventory: %w", err)
	}
	return InventoryMetrics{
		Titles:          row.Titles,
		TotalCopies:     row.TotalCopies,
		AvailableCopies: row.AvailableCopies,
		OnLoan:          row.TotalCopies - row.AvailableCopies,
	}, nil
}

// GetBorrowCounts returns counts of borrows grouped by status
func (c *PostgresCollector) GetBorrowCounts(ctx context.Context) (map[string]int64, error) {
	counts := map[string]int64{
		lending.Borrowed.String(): 0,
		lending.Returned.String(): 0,
	}
	if err := c.countByStatus(ctx, borrowCountsQuery, counts); err != nil {
		return nil, fmt.Errorf("counting borrows: %w", err)
	}
	return counts, nil
}

// GetOverdueBorrows returns the number of open borrows whose due date has passed
func (c *PostgresCollector) GetOverdueBorrows(ctx context.Context) (int64, error) {
	var n int64
	if err := c.db.GetContext(ctx, &n, overdueBorrowsQuery); err != nil {
		return 0, fmt.Errorf("counting overdue borrows: %w", err)
	}
	return n, nil
}

// GetReservationCounts returns counts of reservations grouped by status
func (c *PostgresCollector) GetReservationCounts(ctx context.Context) (map[string]int64, error) {
	counts := map[string]int64{
		lending.Pending.String():   0,
		lending.Approved.String():  0,
		lending.Canceled.String():  0,
		lending.Completed.String(): 0,
	}
	if err := c.countByStatus(ctx, reservationCountsQuery, counts); err != nil {
		return nil, fmt.Errorf("counting reservations: %w", err)
	}
	return counts, nil
}

// GetFines returns fine counters split by payment
func (c *PostgresCollector) GetFines(ctx context.Context) (FineMetrics, error) {
	var row finesRow
	if err := c.db.GetContext(ctx, &row, finesQuery); err != nil {
		return FineMetrics{}, fmt.Errorf("querying fines: %w", err)
	}
	return FineMetrics(row), nil
}

func (c *PostgresCollector) countByStatus(ctx context.Context, query string, counts map[string]int64) error {
	var rows []statusCount
	if err := c.db.SelectContext(ctx, &rows, query); err != nil {
		return err
	}
	for _, r := range rows {
		counts[r.Status] = r.Count
	}
	return nil
}
