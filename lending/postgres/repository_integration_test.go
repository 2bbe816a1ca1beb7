//go:build integration

package postgres_test

import (
	"context"
	"sync"
	"testing"

	"github.com/marcelsud/library-api/internal/database/dbtest"
	"github.com/marcelsud/library-api/internal/page"
	"github.com/marcelsud/library-api/lending"
	"github.com/marcelsud/library-api/lending/postgres"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func borrowInput(userID, bookID int64, due string) lending.BorrowInput {
	return lending.BorrowInput{UserID: userID, BookID: bookID, BorrowDate: "2024-03-01", DueDate: due}
}

func TestLending_Integration(t *testing.T) {
	ctx := context.Background()
	pg, cleanup := dbtest.SetupPostgresContainer(t, ctx)
	defer cleanup()

	service := lending.NewService(postgres.NewRepository(pg.DB), lending.NewCalculator(1000))

	t.Run("borrow and late return", func(t *testing.T) {
		dbtest.Truncate(t, ctx, pg.DB)
		userID := dbtest.InsertUser(t, ctx, pg.DB, "Ana", "ana@example.com", "member")
		bookID := dbtest.InsertBook(t, ctx, pg.DB, "Iracema", "978-1", 2, 2)

		b, err := service.CreateBorrow(ctx, borrowInput(userID, bookID, "2024-03-10"))
		require.NoError(t, err)
		assert.Equal(t, lending.Borrowed, b.Status)
		assert.Equal(t, "Ana", b.User.Name)
		assert.Equal(t, 1, dbtest.AvailableCopies(t, ctx, pg.DB, bookID))

		returned, err := service.ReturnBook(ctx, b.ID, lending.ReturnInput{ReturnDate: "2024-03-13"})
		require.NoError(t, err)
		assert.Equal(t, lending.Returned, returned.Status)
		assert.Equal(t, int64(3000), returned.FineAmount)
		require.NotNil(t, returned.Fine)
		assert.Equal(t, "Book returned 3 days late", returned.Fine.Reason)
		assert.False(t, returned.Fine.IsPaid)
		assert.Equal(t, 2, dbtest.AvailableCopies(t, ctx, pg.DB, bookID))

		_, err = service.ReturnBook(ctx, b.ID, lending.ReturnInput{ReturnDate: "2024-03-14"})
		require.ErrorIs(t, err, lending.ErrAlreadyReturned)
		dbtest.AssertCount(t, ctx, pg.DB, "fines", 1)

		fine, err := service.PayFine(ctx, returned.Fine.ID, lending.PayInput{PaidDate: "2024-03-20"})
		require.NoError(t, err)
		assert.True(t, fine.IsPaid)
		assert.Equal(t, "2024-03-20", fine.PaidDate.String())
		require.NotNil(t, fine.Borrow)
		assert.Equal(t, b.ID, fine.Borrow.ID)

		_, err = service.PayFine(ctx, returned.Fine.ID, lending.PayInput{PaidDate: "2024-03-21"})
		require.ErrorIs(t, err, lending.ErrFineAlreadyPaid)

		require.NoError(t, service.DeleteBorrow(ctx, b.ID))
		dbtest.AssertCount(t, ctx, pg.DB, "fines", 0)
		assert.Equal(t, 2, dbtest.AvailableCopies(t, ctx, pg.DB, bookID))
	})

	t.Run("return on the due date is free", func(t *testing.T) {
		dbtest.Truncate(t, ctx, pg.DB)
		userID := dbtest.InsertUser(t, ctx, pg.DB, "Ana", "ana@example.com", "member")
		bookID := dbtest.InsertBook(t, ctx, pg.DB, "Iracema", "978-1", 1, 1)

		b, err := service.CreateBorrow(ctx, borrowInput(userID, bookID, "2024-03-10"))
		require.NoError(t, err)

		returned, err := service.ReturnBook(ctx, b.ID, lending.ReturnInput{ReturnDate: "2024-03-10T18:30:00Z"})
		require.NoError(t, err)
		assert.Zero(t, returned.FineAmount)
		assert.Nil(t, returned.Fine)
		dbtest.AssertCount(t, ctx, pg.DB, "fines", 0)
	})

	t.Run("no copy left", func(t *testing.T) {
		dbtest.Truncate(t, ctx, pg.DB)
		userID := dbtest.InsertUser(t, ctx, pg.DB, "Ana", "ana@example.com", "member")
		bookID := dbtest.InsertBook(t, ctx, pg.DB, "Iracema", "978-1", 1, 0)

		_, err := service.CreateBorrow(ctx, borrowInput(userID, bookID, "2024-03-10"))
		require.ErrorIs(t, err, lending.ErrNotAvailable)
		dbtest.AssertCount(t, ctx, pg.DB, "borrows", 0)
		assert.Zero(t, dbtest.AvailableCopies(t, ctx, pg.DB, bookID))
	})

	t.Run("deleting an open borrow puts the copy back", func(t *testing.T) {
		dbtest.Truncate(t, ctx, pg.DB)
		userID := dbtest.InsertUser(t, ctx, pg.DB, "Ana", "ana@example.com", "member")
		bookID := dbtest.InsertBook(t, ctx, pg.DB, "Iracema", "978-1", 1, 1)

		b, err := service.CreateBorrow(ctx, borrowInput(userID, bookID, "2024-03-10"))
		require.NoError(t, err)
		require.NoError(t, service.DeleteBorrow(ctx, b.ID))
		assert.Equal(t, 1, dbtest.AvailableCopies(t, ctx, pg.DB, bookID))
		require.ErrorIs(t, service.DeleteBorrow(ctx, b.ID), lending.ErrBorrowNotFound)
	})

	t.Run("concurrent borrows of the last copy", func(t *testing.T) {
		dbtest.Truncate(t, ctx, pg.DB)
		bookID := dbtest.InsertBook(t, ctx, pg.DB, "Iracema", "978-1", 1, 1)
		users := []int64{
			dbtest.InsertUser(t, ctx, pg.DB, "Ana", "ana@example.com", "member"),
			dbtest.InsertUser(t, ctx, pg.DB, "Bia", "bia@example.com", "member"),
			dbtest.InsertUser(t, ctx, pg.DB, "Caio", "caio@example.com", "member"),
			dbtest.InsertUser(t, ctx, pg.DB, "Duda", "duda@example.com", "member"),
		}

		var wg sync.WaitGroup
		errs := make([]error, len(users))
		for i, userID := range users {
			wg.Add(1)
			go func(i int, userID int64) {
				defer wg.Done()
				_, errs[i] = service.CreateBorrow(ctx, borrowInput(userID, bookID, "2024-03-10"))
			}(i, userID)
		}
		wg.Wait()

		succeeded := 0
		for _, err := range errs {
			if err == nil {
				succeeded++
				continue
			}
			require.ErrorIs(t, err, lending.ErrNotAvailable)
		}
		assert.Equal(t, 1, succeeded)
		assert.Zero(t, dbtest.AvailableCopies(t, ctx, pg.DB, bookID))
		dbtest.AssertCount(t, ctx, pg.DB, "borrows", 1)
	})

	t.Run("one active reservation per user and book", func(t *testing.T) {
		dbtest.Truncate(t, ctx, pg.DB)
		userID := dbtest.InsertUser(t, ctx, pg.DB, "Ana", "ana@example.com", "member")
		bookID := dbtest.InsertBook(t, ctx, pg.DB, "Iracema", "978-1", 1, 0)
		input := lending.ReservationInput{UserID: userID, BookID: bookID, ReservationDate: "2024-03-01", ExpiryDate: "2024-03-08"}

		first, err := service.CreateReservation(ctx, input)
		require.NoError(t, err)
		assert.Equal(t, lending.Pending, first.Status)

		_, err = service.CreateReservation(ctx, input)
		require.ErrorIs(t, err, lending.ErrActiveReservation)

		_, err = service.UpdateReservationStatus(ctx, first.ID, lending.StatusInput{Status: "canceled"})
		require.NoError(t, err)
		second, err := service.CreateReservation(ctx, input)
		require.NoError(t, err)

		_, err = service.UpdateReservationStatus(ctx, first.ID, lending.StatusInput{Status: "approved"})
		require.ErrorIs(t, err, lending.ErrActiveReservation)

		res, err := service.ListReservations(ctx, lending.ReservationFilter{UserID: userID, Status: lending.Pending, Page: page.New(1)})
		require.NoError(t, err)
		require.Len(t, res.Items, 1)
		assert.Equal(t, second.ID, res.Items[0].ID)
	})
}
