package metrics

import (
	"context"
	"time"
)

// Metrics represents the current state of the library.
type Metrics struct {
	// Inventory summarizes titles and copies on the shelves
	Inventory InventoryMetrics `json:"inventory"`

	// BorrowCounts maps borrow status to the number of borrows in that status
	BorrowCounts map[string]int64 `json:"borrow_counts"`

	// OverdueBorrows is the number of open borrows past their due date
	OverdueBorrows int64 `json:"overdue_borrows"`

	// ReservationCounts maps reservation status to the number of reservations in that status
	ReservationCounts map[string]int64 `json:"reservation_counts"`

	// Fines summarizes paid and unpaid fines
	Fines FineMetrics `json:"fines"`

	// Timestamp when metrics were collected
	Timestamp time.Time `json:"timestamp"`
}

// InventoryMetrics represents the copy counters of the catalog.
type InventoryMetrics struct {
	Titles          int64 `json:"titles"`
	TotalCopies     int64 `json:"total_copies"`
	AvailableCopies int64 `json:"available_copies"`
	OnLoan          int64 `json:"on_loan"`
}

// FineMetrics represents fines grouped by payment.
type FineMetrics struct {
	Unpaid       int64 `json:"unpaid"`
	UnpaidAmount int64 `json:"unpaid_amount"`
	Paid         int64 `json:"paid"`
	PaidAmount   int64 `json:"paid_amount"`
}

// Collector defines the interface for collecting metrics from the library.
type Collector interface {
	// Collect gathers current metrics from the system
	Collect(ctx context.Context) (Metrics, error)

	// GetInventory returns title and copy counters
	GetInventory(ctx context.Context) (InventoryMetrics, error)

	// GetBorrowCounts returns the count of borrows by status
	GetBorrowCounts(ctx context.Context) (map[string]int64, error)

	// GetOverdueBorrows returns how many open borrows are past due
	GetOverdueBorrows(ctx context.Context) (int64, error)

	// GetReservationCounts returns the count of reservations by status
	GetReservationCounts(ctx context.Context) (map[string]int64, error)

	// GetFines returns fine counters and amounts
	GetFines(ctx context.Context) (FineMetrics, error)
}
