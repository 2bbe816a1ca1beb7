//go:build !integration

package postgres

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/marcelsud/library-api/internal/calendar"
	"github.com/marcelsud/library-api/internal/page"
	"github.com/marcelsud/library-api/lending"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMock(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewRepository(sqlx.NewDb(db, "postgres")), mock
}

var (
	borrowRowColumns = []string{
		"id", "user_id", "book_id", "borrow_date", "due_date", "return_date", "status", "fine_amount", "notes",
		"created_at", "updated_at",
	}
	partyRowColumns = []string{"user_name", "user_email", "user_role", "book_title", "book_isbn", "book_available_copies"}
	fineRowColumns  = []string{"id", "borrow_id", "user_id", "amount", "reason", "is_paid", "paid_date", "created_at", "updated_at"}
)

func TestRepository_WithinTx_Unit(t *testing.T) {
	ctx := context.Background()

	t.Run("commits", func(t *testing.T) {
		repo, mock := newMock(t)
		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta(takeCopyQuery)).WithArgs(int64(1)).WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		err := repo.WithinTx(ctx, func(ctx context.Context, tx lending.Tx) error {
			return tx.TakeCopy(ctx, 1)
		})

		require.NoError(t, err)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rolls back when no copy is left", func(t *testing.T) {
		repo, mock := newMock(t)
		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta(takeCopyQuery)).WithArgs(int64(1)).WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectRollback()

		err := repo.WithinTx(ctx, func(ctx context.Context, tx lending.Tx) error {
			return tx.TakeCopy(ctx, 1)
		})

		require.ErrorIs(t, err, lending.ErrNotAvailable)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rolls back on any error", func(t *testing.T) {
		repo, mock := newMock(t)
		mock.ExpectBegin()
		mock.ExpectRollback()
		boom := errors.New("boom")

		err := repo.WithinTx(ctx, func(ctx context.Context, tx lending.Tx) error { return boom })

		require.ErrorIs(t, err, boom)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestTx_LockBorrow_Unit(t *testing.T) {
	ctx := context.Background()
	now := time.Now()

	t.Run("locked row", func(t *testing.T) {
		repo, mock := newMock(t)
		mock.ExpectBegin()
		mock.ExpectQuery(regexp.QuoteMeta(lockBorrowQuery)).WithArgs(int64(5)).
			WillReturnRows(sqlmock.NewRows(borrowRowColumns).
				AddRow(5, 1, 2, "2024-01-01", "2024-01-10", nil, "borrowed", 0, "", now, now))
		mock.ExpectCommit()

		var got lending.Borrow
		err := repo.WithinTx(ctx, func(ctx context.Context, tx lending.Tx) error {
			var err error
			got, err = tx.LockBorrow(ctx, 5)
			return err
		})

		require.NoError(t, err)
		assert.Equal(t, lending.Borrowed, got.Status)
		assert.Equal(t, calendar.New(2024, 1, 10), got.DueDate)
		assert.True(t, got.ReturnDate.IsZero())
	})

	t.Run("missing borrow", func(t *testing.T) {
		repo, mock := newMock(t)
		mock.ExpectBegin()
		mock.ExpectQuery(regexp.QuoteMeta(lockBorrowQuery)).WillReturnRows(sqlmock.NewRows(borrowRowColumns))
		mock.ExpectRollback()

		err := repo.WithinTx(ctx, func(ctx context.Context, tx lending.Tx) error {
			_, err := tx.LockBorrow(ctx, 5)
			return err
		})

		require.ErrorIs(t, err, lending.ErrBorrowNotFound)
	})
}

func TestTx_InsertReservation_Unit(t *testing.T) {
	repo, mock := newMock(t)
	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(insertReservationQuery)).
		WillReturnError(&pq.Error{Code: "23505", Constraint: "reservations_one_active"})
	mock.ExpectRollback()

	err := repo.WithinTx(context.Background(), func(ctx context.Context, tx lending.Tx) error {
		_, err := tx.InsertReservation(ctx, lending.Reservation{
			UserID:          1,
			BookID:          2,
			ReservationDate: calendar.New(2024, 1, 1),
			ExpiryDate:      calendar.New(2024, 1, 8),
		})
		return err
	})

	require.ErrorIs(t, err, lending.ErrActiveReservation)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestTx_DeleteBorrow_Unit(t *testing.T) {
	repo, mock := newMock(t)
	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(deleteBorrowFineQuery)).WithArgs(int64(3)).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta(deleteBorrowQuery)).WithArgs(int64(3)).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.WithinTx(context.Background(), func(ctx context.Context, tx lending.Tx) error {
		return tx.DeleteBorrow(ctx, 3)
	})

	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_SelectBorrow_Unit(t *testing.T) {
	repo, mock := newMock(t)
	now := time.Now()

	columns := append(append([]string{}, borrowRowColumns...), partyRowColumns...)
	mock.ExpectQuery(`SELECT "br"."id".* FROM "borrows" AS "br" INNER JOIN "users" AS "u".* INNER JOIN "books" AS "b".* WHERE \("br"."id" = \$1\)`).
		WithArgs(int64(4)).
		WillReturnRows(sqlmock.NewRows(columns).AddRow(
			4, 1, 2, "2024-01-01", "2024-01-10", "2024-01-13", "returned", 3000, "", now, now,
			"Ana", "ana@example.com", "member", "Dom Casmurro", "978-85", 2,
		))
	mock.ExpectQuery(`SELECT "fines"."id".* FROM "fines" WHERE \("borrow_id" = \$1\)`).
		WithArgs(int64(4)).
		WillReturnRows(sqlmock.NewRows(fineRowColumns).
			AddRow(9, 4, 1, 3000, "Book returned 3 days late", false, nil, now, now))

	b, err := repo.SelectBorrow(context.Background(), 4)

	require.NoError(t, err)
	assert.Equal(t, lending.Returned, b.Status)
	require.NotNil(t, b.User)
	assert.Equal(t, "Ana", b.User.Name)
	require.NotNil(t, b.Book)
	assert.Equal(t, "Dom Casmurro", b.Book.Title)
	require.NotNil(t, b.Fine)
	assert.Equal(t, int64(3000), b.Fine.Amount)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_SelectBorrows_Unit(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM "borrows" AS "br" .* WHERE \(\("br"."user_id" = \$1\) AND \("br"."status" = \$2\) AND \("br"."borrow_date" BETWEEN \$3 AND \$4\)\)`).
		WithArgs(int64(1), "borrowed", "2024-01-01", "2024-01-31").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery(`SELECT "br"."id".* ORDER BY "br"."id" ASC LIMIT`).
		WillReturnRows(sqlmock.NewRows(append(append([]string{}, borrowRowColumns...), partyRowColumns...)))

	borrows, total, err := repo.SelectBorrows(context.Background(), lending.BorrowFilter{
		UserID: 1,
		Status: lending.Borrowed,
		From:   calendar.New(2024, 1, 1),
		To:     calendar.New(2024, 1, 31),
		Page:   page.New(1),
	})

	require.NoError(t, err)
	assert.Zero(t, total)
	assert.NotNil(t, borrows)
	assert.Empty(t, borrows)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_SelectFines_Unit(t *testing.T) {
	repo, mock := newMock(t)
	paid := true

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM "fines" AS "f" .* WHERE \("f"."is_paid" IS TRUE\)`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery(`SELECT "f"."id".* FROM "fines" AS "f"`).
		WillReturnRows(sqlmock.NewRows(fineRowColumns))

	_, total, err := repo.SelectFines(context.Background(), lending.FineFilter{IsPaid: &paid, Page: page.New(1)})

	require.NoError(t, err)
	assert.Zero(t, total)
	require.NoError(t, mock.ExpectationsWereMet())
}
