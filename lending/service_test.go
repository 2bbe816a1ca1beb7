package lending_test

import (
	"context"
	"testing"

	"github.com/marcelsud/library-api/catalog"
	"github.com/marcelsud/library-api/internal/calendar"
	"github.com/marcelsud/library-api/internal/failure"
	"github.com/marcelsud/library-api/internal/user"
	"github.com/marcelsud/library-api/lending"
	"github.com/marcelsud/library-api/lending/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// newService wires a repository whose WithinTx runs the callback against tx
func newService(t *testing.T) (*lending.Service, *mocks.Repository, *mocks.Tx) {
	repo := mocks.NewRepository(t)
	tx := mocks.NewTx(t)
	repo.On("WithinTx", mock.Anything, mock.Anything).
		Return(func(ctx context.Context, fn func(context.Context, lending.Tx) error) error {
			return fn(ctx, tx)
		}).Maybe()
	return lending.NewService(repo, lending.NewCalculator(1000)), repo, tx
}

func TestCreateBorrow(t *testing.T) {
	ctx := context.Background()
	input := lending.BorrowInput{UserID: 1, BookID: 2, BorrowDate: "2024-03-01", DueDate: "2024-03-10", Notes: "balcão"}

	t.Run("success", func(t *testing.T) {
		service, repo, tx := newService(t)

		tx.On("UserExists", ctx, int64(1)).Return(true, nil)
		tx.On("BookExists", ctx, int64(2)).Return(true, nil)
		tx.On("TakeCopy", ctx, int64(2)).Return(nil)
		tx.On("InsertBorrow", ctx, lending.Borrow{
			UserID:     1,
			BookID:     2,
			BorrowDate: calendar.New(2024, 3, 1),
			DueDate:    calendar.New(2024, 3, 10),
			Status:     lending.Borrowed,
			Notes:      "balcão",
		}).Return(int64(8), nil)
		repo.On("SelectBorrow", ctx, int64(8)).Return(lending.Borrow{ID: 8, Status: lending.Borrowed}, nil)

		b, err := service.CreateBorrow(ctx, input)

		require.NoError(t, err)
		assert.Equal(t, int64(8), b.ID)
	})

	t.Run("no copy left", func(t *testing.T) {
		service, _, tx := newService(t)

		tx.On("UserExists", ctx, int64(1)).Return(true, nil)
		tx.On("BookExists", ctx, int64(2)).Return(true, nil)
		tx.On("TakeCopy", ctx, int64(2)).Return(lending.ErrNotAvailable)

		_, err := service.CreateBorrow(ctx, input)

		require.ErrorIs(t, err, lending.ErrNotAvailable)
		tx.AssertNotCalled(t, "InsertBorrow", mock.Anything, mock.Anything)
	})

	t.Run("missing user", func(t *testing.T) {
		service, _, tx := newService(t)

		tx.On("UserExists", ctx, int64(1)).Return(false, nil)

		_, err := service.CreateBorrow(ctx, input)

		require.ErrorIs(t, err, user.ErrNotFound)
		assert.Equal(t, failure.NotFound, failure.KindOf(err))
	})

	t.Run("missing book", func(t *testing.T) {
		service, _, tx := newService(t)

		tx.On("UserExists", ctx, int64(1)).Return(true, nil)
		tx.On("BookExists", ctx, int64(2)).Return(false, nil)

		_, err := service.CreateBorrow(ctx, input)

		require.ErrorIs(t, err, catalog.ErrBookNotFound)
	})

	t.Run("due before borrow", func(t *testing.T) {
		service, _, _ := newService(t)
		bad := input
		bad.DueDate = "2024-02-28"

		_, err := service.CreateBorrow(ctx, bad)

		fe, ok := failure.As(err)
		require.True(t, ok)
		assert.Equal(t, []string{"The due date field must be a date after or equal to borrow date."}, fe.Fields["due_date"])
	})

	t.Run("unparseable date", func(t *testing.T) {
		service, _, _ := newService(t)
		bad := input
		bad.BorrowDate = "yesterday"

		_, err := service.CreateBorrow(ctx, bad)

		fe, ok := failure.As(err)
		require.True(t, ok)
		assert.Contains(t, fe.Fields, "borrow_date")
	})
}

func TestReturnBook(t *testing.T) {
	ctx := context.Background()
	open := lending.Borrow{ID: 4, UserID: 1, BookID: 2, DueDate: calendar.New(2024, 3, 10), Status: lending.Borrowed}

	t.Run("late return creates a fine", func(t *testing.T) {
		service, repo, tx := newService(t)

		tx.On("LockBorrow", ctx, int64(4)).Return(open, nil)
		tx.On("InsertFine", ctx, lending.Fine{BorrowID: 4, UserID: 1, Amount: 3000, Reason: "Book returned 3 days late"}).
			Return(int64(1), nil)
		tx.On("MarkReturned", ctx, int64(4), calendar.New(2024, 3, 13), int64(3000)).Return(nil)
		tx.On("ReleaseCopy", ctx, int64(2)).Return(nil)
		repo.On("SelectBorrow", ctx, int64(4)).Return(lending.Borrow{ID: 4, Status: lending.Returned, FineAmount: 3000}, nil)

		b, err := service.ReturnBook(ctx, 4, lending.ReturnInput{ReturnDate: "2024-03-13"})

		require.NoError(t, err)
		assert.Equal(t, int64(3000), b.FineAmount)
	})

	t.Run("on the due date", func(t *testing.T) {
		service, repo, tx := newService(t)

		tx.On("LockBorrow", ctx, int64(4)).Return(open, nil)
		tx.On("MarkReturned", ctx, int64(4), calendar.New(2024, 3, 10), int64(0)).Return(nil)
		tx.On("ReleaseCopy", ctx, int64(2)).Return(nil)
		repo.On("SelectBorrow", ctx, int64(4)).Return(lending.Borrow{ID: 4, Status: lending.Returned}, nil)

		_, err := service.ReturnBook(ctx, 4, lending.ReturnInput{ReturnDate: "2024-03-10"})

		require.NoError(t, err)
		tx.AssertNotCalled(t, "InsertFine", mock.Anything, mock.Anything)
	})

	t.Run("return before the borrow date is stored as given", func(t *testing.T) {
		service, repo, tx := newService(t)
		borrowed := open
		borrowed.BorrowDate = calendar.New(2024, 3, 5)

		tx.On("LockBorrow", ctx, int64(4)).Return(borrowed, nil)
		tx.On("MarkReturned", ctx, int64(4), calendar.New(2024, 3, 1), int64(0)).Return(nil)
		tx.On("ReleaseCopy", ctx, int64(2)).Return(nil)
		repo.On("SelectBorrow", ctx, int64(4)).Return(lending.Borrow{ID: 4, Status: lending.Returned}, nil)

		_, err := service.ReturnBook(ctx, 4, lending.ReturnInput{ReturnDate: "2024-03-01"})

		require.NoError(t, err)
		tx.AssertNotCalled(t, "InsertFine", mock.Anything, mock.Anything)
	})

	t.Run("already returned", func(t *testing.T) {
		service, _, tx := newService(t)
		closed := open
		closed.Status = lending.Returned

		tx.On("LockBorrow", ctx, int64(4)).Return(closed, nil)

		_, err := service.ReturnBook(ctx, 4, lending.ReturnInput{ReturnDate: "2024-03-13"})

		require.ErrorIs(t, err, lending.ErrAlreadyReturned)
	})

	t.Run("missing borrow wins over a bad date", func(t *testing.T) {
		service, _, tx := newService(t)

		tx.On("LockBorrow", ctx, int64(4)).Return(lending.Borrow{}, lending.ErrBorrowNotFound)

		_, err := service.ReturnBook(ctx, 4, lending.ReturnInput{})

		require.ErrorIs(t, err, lending.ErrBorrowNotFound)
	})

	t.Run("missing return date", func(t *testing.T) {
		service, _, tx := newService(t)

		tx.On("LockBorrow", ctx, int64(4)).Return(open, nil)

		_, err := service.ReturnBook(ctx, 4, lending.ReturnInput{})

		fe, ok := failure.As(err)
		require.True(t, ok)
		assert.Equal(t, []string{"The return date field is required."}, fe.Fields["return_date"])
	})
}

func TestDeleteBorrow(t *testing.T) {
	ctx := context.Background()

	t.Run("open borrow releases its copy", func(t *testing.T) {
		service, _, tx := newService(t)

		tx.On("LockBorrow", ctx, int64(4)).Return(lending.Borrow{ID: 4, BookID: 2, Status: lending.Borrowed}, nil)
		tx.On("ReleaseCopy", ctx, int64(2)).Return(nil)
		tx.On("DeleteBorrow", ctx, int64(4)).Return(nil)

		require.NoError(t, service.DeleteBorrow(ctx, 4))
	})

	t.Run("returned borrow keeps the counter", func(t *testing.T) {
		service, _, tx := newService(t)

		tx.On("LockBorrow", ctx, int64(4)).Return(lending.Borrow{ID: 4, BookID: 2, Status: lending.Returned}, nil)
		tx.On("DeleteBorrow", ctx, int64(4)).Return(nil)

		require.NoError(t, service.DeleteBorrow(ctx, 4))
		tx.AssertNotCalled(t, "ReleaseCopy", mock.Anything, mock.Anything)
	})
}

func TestCreateReservation(t *testing.T) {
	ctx := context.Background()
	input := lending.ReservationInput{UserID: 1, BookID: 2, ReservationDate: "2024-03-01", ExpiryDate: "2024-03-08"}

	t.Run("active reservation exists", func(t *testing.T) {
		service, _, tx := newService(t)

		tx.On("UserExists", ctx, int64(1)).Return(true, nil)
		tx.On("BookExists", ctx, int64(2)).Return(true, nil)
		tx.On("ActiveReservationExists", ctx, int64(1), int64(2), int64(0)).Return(true, nil)

		_, err := service.CreateReservation(ctx, input)

		require.ErrorIs(t, err, lending.ErrActiveReservation)
		assert.Equal(t, failure.Conflict, failure.KindOf(err))
	})

	t.Run("expiry must follow the reservation", func(t *testing.T) {
		service, _, _ := newService(t)
		bad := input
		bad.ExpiryDate = bad.ReservationDate

		_, err := service.CreateReservation(ctx, bad)

		fe, ok := failure.As(err)
		require.True(t, ok)
		assert.Equal(t, []string{"The expiry date field must be a date after reservation date."}, fe.Fields["expiry_date"])
	})

	t.Run("created as pending", func(t *testing.T) {
		service, repo, tx := newService(t)

		tx.On("UserExists", ctx, int64(1)).Return(true, nil)
		tx.On("BookExists", ctx, int64(2)).Return(true, nil)
		tx.On("ActiveReservationExists", ctx, int64(1), int64(2), int64(0)).Return(false, nil)
		tx.On("InsertReservation", ctx, mock.MatchedBy(func(r lending.Reservation) bool {
			return r.Status == lending.Pending && r.ExpiryDate.Equal(calendar.New(2024, 3, 8))
		})).Return(int64(3), nil)
		repo.On("SelectReservation", ctx, int64(3)).Return(lending.Reservation{ID: 3, Status: lending.Pending}, nil)

		r, err := service.CreateReservation(ctx, input)

		require.NoError(t, err)
		assert.Equal(t, lending.Pending, r.Status)
	})
}

func TestUpdateReservationStatus(t *testing.T) {
	ctx := context.Background()
	canceled := lending.Reservation{ID: 3, UserID: 1, BookID: 2, Status: lending.Canceled}

	t.Run("reactivation blocked by another active reservation", func(t *testing.T) {
		service, _, tx := newService(t)

		tx.On("LockReservation", ctx, int64(3)).Return(canceled, nil)
		tx.On("ActiveReservationExists", ctx, int64(1), int64(2), int64(3)).Return(true, nil)

		_, err := service.UpdateReservationStatus(ctx, 3, lending.StatusInput{Status: "pending"})

		require.ErrorIs(t, err, lending.ErrActiveReservation)
	})

	t.Run("any transition is accepted", func(t *testing.T) {
		service, repo, tx := newService(t)
		completed := canceled
		completed.Status = lending.Completed

		tx.On("LockReservation", ctx, int64(3)).Return(completed, nil)
		tx.On("UpdateReservationStatus", ctx, int64(3), lending.Canceled).Return(nil)
		repo.On("SelectReservation", ctx, int64(3)).Return(canceled, nil)

		r, err := service.UpdateReservationStatus(ctx, 3, lending.StatusInput{Status: "canceled"})

		require.NoError(t, err)
		assert.Equal(t, lending.Canceled, r.Status)
	})

	t.Run("unknown status", func(t *testing.T) {
		service, _, tx := newService(t)

		tx.On("LockReservation", ctx, int64(3)).Return(canceled, nil)

		_, err := service.UpdateReservationStatus(ctx, 3, lending.StatusInput{Status: "expired"})

		fe, ok := failure.As(err)
		require.True(t, ok)
		assert.Equal(t, []string{"The selected status is invalid."}, fe.Fields["status"])
	})
}

func TestPayFine(t *testing.T) {
	ctx := context.Background()

	t.Run("pays", func(t *testing.T) {
		service, repo, tx := newService(t)

		tx.On("LockFine", ctx, int64(6)).Return(lending.Fine{ID: 6}, nil)
		tx.On("MarkPaid", ctx, int64(6), calendar.New(2024, 3, 20)).Return(nil)
		repo.On("SelectFine", ctx, int64(6)).Return(lending.Fine{ID: 6, IsPaid: true}, nil)

		f, err := service.PayFine(ctx, 6, lending.PayInput{PaidDate: "2024-03-20"})

		require.NoError(t, err)
		assert.True(t, f.IsPaid)
	})

	t.Run("already paid", func(t *testing.T) {
		service, _, tx := newService(t)

		tx.On("LockFine", ctx, int64(6)).Return(lending.Fine{ID: 6, IsPaid: true}, nil)

		_, err := service.PayFine(ctx, 6, lending.PayInput{PaidDate: "2024-03-20"})

		require.ErrorIs(t, err, lending.ErrFineAlreadyPaid)
	})

	t.Run("missing fine", func(t *testing.T) {
		service, _, tx := newService(t)

		tx.On("LockFine", ctx, int64(6)).Return(lending.Fine{}, lending.ErrFineNotFound)

		_, err := service.PayFine(ctx, 6, lending.PayInput{PaidDate: "2024-03-20"})

		require.ErrorIs(t, err, lending.ErrFineNotFound)
	})
}
