package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/marcelsud/library-api/catalog"
	"github.com/marcelsud/library-api/internal/calendar"
	"github.com/marcelsud/library-api/internal/database"
	"github.com/marcelsud/library-api/lending"
)

const (
	userExistsQuery = `SELECT EXISTS (SELECT 1 FROM users WHERE id = $1)`
	bookExistsQuery = `SELECT EXISTS (SELECT 1 FROM books WHERE id = $1)`

	takeCopyQuery = `
		UPDATE books
		SET available_copies = available_copies - 1, updated_at = NOW()
		WHERE id = $1 AND available_copies > 0
	`

	releaseCopyQuery = `
		UPDATE books
		SET available_copies = available_copies + 1, updated_at = NOW()
		WHERE id = $1
	`

	insertBorrowQuery = `
		INSERT INTO borrows (user_id, book_id, borrow_date, due_date, status, notes)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`

	lockBorrowQuery = `
		SELECT id, user_id, book_id, borrow_date, due_date, return_date, status, fine_amount, notes, created_at, updated_at
		FROM borrows
		WHERE id = $1
		FOR UPDATE
	`

	markReturnedQuery = `
		UPDATE borrows
		SET return_date = $2, fine_amount = $3, status = 'returned', updated_at = NOW()
		WHERE id = $1
	`

	deleteBorrowFineQuery = `DELETE FROM fines WHERE borrow_id = $1`
	deleteBorrowQuery     = `DELETE FROM borrows WHERE id = $1`

	insertFineQuery = `
		INSERT INTO fines (borrow_id, user_id, amount, reason)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	lockFineQuery = `
		SELECT id, borrow_id, user_id, amount, reason, is_paid, paid_date, created_at, updated_at
		FROM fines
		WHERE id = $1
		FOR UPDATE
	`

	markPaidQuery = `
		UPDATE fines
		SET is_paid = TRUE, paid_date = $2, updated_at = NOW()
		WHERE id = $1
	`

	activeReservationQuery = `
		SELECT EXISTS (
			SELECT 1 FROM reservations
			WHERE user_id = $1 AND book_id = $2 AND status IN ('pending', 'approved') AND id <> $3
		)
	`

	insertReservationQuery = `
		INSERT INTO reservations (user_id, book_id, reservation_date, expiry_date, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	lockReservationQuery = `
		SELECT id, user_id, book_id, reservation_date, expiry_date, status, created_at, updated_at
		FROM reservations
		WHERE id = $1
		FOR UPDATE
	`

	updateReservationStatusQuery = `UPDATE reservations SET status = $2, updated_at = NOW() WHERE id = $1`
	deleteReservationQuery       = `DELETE FROM reservations WHERE id = $1`
)

// activeReservationIndex backs the one-active-reservation rule
const activeReservationIndex = "reservations_one_active"

// Tx implements lending.Tx over a single sqlx transaction
type Tx struct {
	tx *sqlx.Tx
}

func (t *Tx) exists(ctx context.Context, query string, id int64) (bool, error) {
	var ok bool
	if err := t.tx.GetContext(ctx, &ok, query, id); err != nil {
		return false, err
	}
	return ok, nil
}

func (t *Tx) UserExists(ctx context.Context, id int64) (bool, error) {
	return t.exists(ctx, userExistsQuery, id)
}

func (t *Tx) BookExists(ctx context.Context, id int64) (bool, error) {
	return t.exists(ctx, bookExistsQuery, id)
}

// TakeCopy decrements the counter only while a copy is left, so concurrent borrows of the last copy cannot both win
func (t *Tx) TakeCopy(ctx context.Context, bookID int64) error {
	if err := t.exec(ctx, lending.ErrNotAvailable, takeCopyQuery, bookID); err != nil {
		return fmt.Errorf("taking copy: %w", err)
	}
	return nil
}

func (t *Tx) ReleaseCopy(ctx context.Context, bookID int64) error {
	if err := t.exec(ctx, catalog.ErrBookNotFound, releaseCopyQuery, bookID); err != nil {
		return fmt.Errorf("releasing copy: %w", err)
	}
	return nil
}

func (t *Tx) InsertBorrow(ctx context.Context, b lending.Borrow) (int64, error) {
	var id int64
	err := t.tx.QueryRowxContext(ctx, insertBorrowQuery,
		b.UserID, b.BookID, b.BorrowDate, b.DueDate, lending.Borrowed, b.Notes,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("inserting borrow: %w", err)
	}
	return id, nil
}

func (t *Tx) LockBorrow(ctx context.Context, id int64) (lending.Borrow, error) {
	var row borrowRow
	err := t.tx.GetContext(ctx, &row, lockBorrowQuery, id)
	if errors.Is(err, sql.ErrNoRows) {
		return lending.Borrow{}, lending.ErrBorrowNotFound
	}
	if err != nil {
		return lending.Borrow{}, fmt.Errorf("locking borrow: %w", err)
	}
	return row.toBorrow(), nil
}

func (t *Tx) MarkReturned(ctx context.Context, id int64, returnDate calendar.Date, fineAmount int64) error {
	if err := t.exec(ctx, lending.ErrBorrowNotFound, markReturnedQuery, id, returnDate, fineAmount); err != nil {
		return fmt.Errorf("marking borrow returned: %w", err)
	}
	return nil
}

func (t *Tx) DeleteBorrow(ctx context.Context, id int64) error {
	if _, err := t.tx.ExecContext(ctx, deleteBorrowFineQuery, id); err != nil {
		return fmt.Errorf("deleting borrow fine: %w", err)
	}
	if err := t.exec(ctx, lending.ErrBorrowNotFound, deleteBorrowQuery, id); err != nil {
		return fmt.Errorf("deleting borrow: %w", err)
	}
	return nil
}

func (t *Tx) InsertFine(ctx context.Context, f lending.Fine) (int64, error) {
	var id int64
	err := t.tx.QueryRowxContext(ctx, insertFineQuery, f.BorrowID, f.UserID, f.Amount, f.Reason).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("inserting fine: %w", err)
	}
	return id, nil
}

func (t *Tx) LockFine(ctx context.Context, id int64) (lending.Fine, error) {
	var row fineRow
	err := t.tx.GetContext(ctx, &row, lockFineQuery, id)
	if errors.Is(err, sql.ErrNoRows) {
		return lending.Fine{}, lending.ErrFineNotFound
	}
	if err != nil {
		return lending.Fine{}, fmt.Errorf("locking fine: %w", err)
	}
	return row.toFine(), nil
}

func (t *Tx) MarkPaid(ctx context.Context, id int64, paidDate calendar.Date) error {
	if err := t.exec(ctx, lending.ErrFineNotFound, markPaidQuery, id, paidDate); err != nil {
		return fmt.Errorf("marking fine paid: %w", err)
	}
	return nil
}

func (t *Tx) ActiveReservationExists(ctx context.Context, userID, bookID, exceptID int64) (bool, error) {
	var ok bool
	if err := t.tx.GetContext(ctx, &ok, activeReservationQuery, userID, bookID, exceptID); err != nil {
		return false, fmt.Errorf("checking active reservation: %w", err)
	}
	return ok, nil
}

// InsertReservation maps a race on the active reservation index to ErrActiveReservation
func (t *Tx) InsertReservation(ctx context.Context, r lending.Reservation) (int64, error) {
	var id int64
	err := t.tx.QueryRowxContext(ctx, insertReservationQuery,
		r.UserID, r.BookID, r.ReservationDate, r.ExpiryDate, lending.Pending,
	).Scan(&id)
	if isActiveReservation(err) {
		return 0, lending.ErrActiveReservation
	}
	if err != nil {
		return 0, fmt.Errorf("inserting reservation: %w", err)
	}
	return id, nil
}

func (t *Tx) LockReservation(ctx context.Context, id int64) (lending.Reservation, error) {
	var row reservationRow
	err := t.tx.GetContext(ctx, &row, lockReservationQuery, id)
	if errors.Is(err, sql.ErrNoRows) {
		return lending.Reservation{}, lending.ErrReservationNotFound
	}
	if err != nil {
		return lending.Reservation{}, fmt.Errorf("locking reservation: %w", err)
	}
	return row.toReservation(), nil
}

func (t *Tx) UpdateReservationStatus(ctx context.Context, id int64, status lending.ReservationStatus) error {
	err := t.exec(ctx, lending.ErrReservationNotFound, updateReservationStatusQuery, id, status)
	if isActiveReservation(err) {
		return lending.ErrActiveReservation
	}
	if err != nil {
		return fmt.Errorf("updating reservation status: %w", err)
	}
	return nil
}

func (t *Tx) DeleteReservation(ctx context.Context, id int64) error {
	if err := t.exec(ctx, lending.ErrReservationNotFound, deleteReservationQuery, id); err != nil {
		return fmt.Errorf("deleting reservation: %w", err)
	}
	return nil
}

// exec runs a statement that must touch exactly one row, returning notFound otherwise
func (t *Tx) exec(ctx context.Context, notFound error, query string, args ...any) error {
	result, err := t.tx.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("getting rows affected: %w", err)
	}

	if rows == 0 {
		return notFound
	}

	return nil
}

func isActiveReservation(err error) bool {
	constraint, ok := database.Violation(err, database.UniqueViolation)
	return ok && constraint == activeReservationIndex
}
