package lending

import (
	"context"

	"github.com/marcelsud/library-api/internal/calendar"
)

// Reader loads loan records with their user and book attached
type Reader interface {
	SelectBorrow(ctx context.Context, id int64) (Borrow, error)
	SelectBorrows(ctx context.Context, filter BorrowFilter) ([]Borrow, int64, error)
	SelectReservation(ctx context.Context, id int64) (Reservation, error)
	SelectReservations(ctx context.Context, filter ReservationFilter) ([]Reservation, int64, error)
	SelectFine(ctx context.Context, id int64) (Fine, error)
	SelectFines(ctx context.Context, filter FineFilter) ([]Fine, int64, error)
}

/* Tx agrupa as escritas que precisam acontecer juntas.
 * Os métodos Lock* seguram a linha até o fim da transação.
 */
type Tx interface {
	UserExists(ctx context.Context, id int64) (bool, error)
	BookExists(ctx context.Context, id int64) (bool, error)

	// TakeCopy returns ErrNotAvailable when the book has no copy left
	TakeCopy(ctx context.Context, bookID int64) error
	ReleaseCopy(ctx context.Context, bookID int64) error

	InsertBorrow(ctx context.Context, borrow Borrow) (int64, error)
	LockBorrow(ctx context.Context, id int64) (Borrow, error)
	MarkReturned(ctx context.Context, id int64, returnDate calendar.Date, fineAmount int64) error
	// DeleteBorrow removes the borrow and its fine
	DeleteBorrow(ctx context.Context, id int64) error

	InsertFine(ctx context.Context, fine Fine) (int64, error)
	LockFine(ctx context.Context, id int64) (Fine, error)
	MarkPaid(ctx context.Context, id int64, paidDate calendar.Date) error

	// ActiveReservationExists ignores the reservation exceptID
	ActiveReservationExists(ctx context.Context, userID, bookID, exceptID int64) (bool, error)
	InsertReservation(ctx context.Context, reservation Reservation) (int64, error)
	LockReservation(ctx context.Context, id int64) (Reservation, error)
	UpdateReservationStatus(ctx context.Context, id int64, status ReservationStatus) error
	DeleteReservation(ctx context.Context, id int64) error
}

type Repository interface {
	Reader
	// WithinTx commits when fn returns nil and rolls back otherwise
	WithinTx(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	Close(ctx context.Context) error
}
