package lending

import (
	"context"
	"fmt"

	"github.com/marcelsud/library-api/catalog"
	"github.com/marcelsud/library-api/internal/calendar"
	"github.com/marcelsud/library-api/internal/failure"
	"github.com/marcelsud/library-api/internal/page"
	"github.com/marcelsud/library-api/internal/user"
	"github.com/marcelsud/library-api/internal/validation"
)

type UseCase interface {
	ListBorrows(ctx context.Context, filter BorrowFilter) (page.Result[Borrow], error)
	GetBorrow(ctx context.Context, id int64) (Borrow, error)
	CreateBorrow(ctx context.Context, input BorrowInput) (Borrow, error)
	ReturnBook(ctx context.Context, id int64, input ReturnInput) (Borrow, error)
	DeleteBorrow(ctx context.Context, id int64) error

	ListReservations(ctx context.Context, filter ReservationFilter) (page.Result[Reservation], error)
	GetReservation(ctx context.Context, id int64) (Reservation, error)
	CreateReservation(ctx context.Context, input ReservationInput) (Reservation, error)
	UpdateReservationStatus(ctx context.Context, id int64, input StatusInput) (Reservation, error)
	DeleteReservation(ctx context.Context, id int64) error

	ListFines(ctx context.Context, filter FineFilter) (page.Result[Fine], error)
	GetFine(ctx context.Context, id int64) (Fine, error)
	PayFine(ctx context.Context, id int64, input PayInput) (Fine, error)
}

type Service struct {
	Repo  Repository
	Fines Calculator
}

func NewService(repo Repository, fines Calculator) *Service {
	return &Service{
		Repo:  repo,
		Fines: fines,
	}
}

func (s *Service) ListBorrows(ctx context.Context, filter BorrowFilter) (page.Result[Borrow], error) {
	borrows, total, err := s.Repo.SelectBorrows(ctx, filter)
	if err != nil {
		return page.Result[Borrow]{}, fmt.Errorf("selecting borrows: %w", err)
	}
	return page.NewResult(borrows, filter.Page, total), nil
}

func (s *Service) GetBorrow(ctx context.Context, id int64) (Borrow, error) {
	b, err := s.Repo.SelectBorrow(ctx, id)
	if err != nil {
		return Borrow{}, fmt.Errorf("selecting borrow: %w", err)
	}
	return b, nil
}

// CreateBorrow records the loan and takes one copy off the shelf in the same transaction
func (s *Service) CreateBorrow(ctx context.Context, input BorrowInput) (Borrow, error) {
	if err := validation.Struct(input); err != nil {
		return Borrow{}, err
	}
	borrow := input.Borrow()
	if borrow.DueDate.Before(borrow.BorrowDate) {
		return Borrow{}, failure.Field("due_date", validation.DateAfter("due_date", "borrow_date", true))
	}

	var id int64
	err := s.Repo.WithinTx(ctx, func(ctx context.Context, tx Tx) error {
		if err := requireParties(ctx, tx, borrow.UserID, borrow.BookID); err != nil {
			return err
		}
		if err := tx.TakeCopy(ctx, borrow.BookID); err != nil {
			return err
		}
		var err error
		id, err = tx.InsertBorrow(ctx, borrow)
		return err
	})
	if err != nil {
		return Borrow{}, fmt.Errorf("creating borrow: %w", err)
	}
	return s.GetBorrow(ctx, id)
}

/* ReturnBook fecha o empréstimo, gera a multa quando há atraso e devolve a cópia ao acervo.
 * O empréstimo fica bloqueado durante a transação, então duas devoluções simultâneas
 * não geram duas multas.
 */
func (s *Service) ReturnBook(ctx context.Context, id int64, input ReturnInput) (Borrow, error) {
	err := s.Repo.WithinTx(ctx, func(ctx context.Context, tx Tx) error {
		borrow, err := tx.LockBorrow(ctx, id)
		if err != nil {
			return err
		}
		if borrow.Status == Returned {
			return ErrAlreadyReturned
		}
		if err := validation.Struct(input); err != nil {
			return err
		}
		returned, _ := calendar.Parse(input.ReturnDate)

		days, amount := s.Fines.Calculate(borrow.DueDate, returned)
		if amount > 0 {
			_, err := tx.InsertFine(ctx, Fine{
				BorrowID: borrow.ID,
				UserID:   borrow.UserID,
				Amount:   amount,
				Reason:   Reason(days),
			})
			if err != nil {
				return err
			}
		}
		if err := tx.MarkReturned(ctx, borrow.ID, returned, amount); err != nil {
			return err
		}
		return tx.ReleaseCopy(ctx, borrow.BookID)
	})
	if err != nil {
		return Borrow{}, fmt.Errorf("returning book: %w", err)
	}
	return s.GetBorrow(ctx, id)
}

// DeleteBorrow puts an unreturned copy back before removing the borrow and its fine
func (s *Service) DeleteBorrow(ctx context.Context, id int64) error {
	err := s.Repo.WithinTx(ctx, func(ctx context.Context, tx Tx) error {
		borrow, err := tx.LockBorrow(ctx, id)
		if err != nil {
			return err
		}
		if borrow.Status != Returned {
			if err := tx.ReleaseCopy(ctx, borrow.BookID); err != nil {
				return err
			}
		}
		return tx.DeleteBorrow(ctx, id)
	})
	if err != nil {
		return fmt.Errorf("deleting borrow: %w", err)
	}
	return nil
}

func (s *Service) ListReservations(ctx context.Context, filter ReservationFilter) (page.Result[Reservation], error) {
	reservations, total, err := s.Repo.SelectReservations(ctx, filter)
	if err != nil {
		return page.Result[Reservation]{}, fmt.Errorf("selecting reservations: %w", err)
	}
	return page.NewResult(reservations, filter.Page, total), nil
}

func (s *Service) GetReservation(ctx context.Context, id int64) (Reservation, error) {
	r, err := s.Repo.SelectReservation(ctx, id)
	if err != nil {
		return Reservation{}, fmt.Errorf("selecting reservation: %w", err)
	}
	return r, nil
}

func (s *Service) CreateReservation(ctx context.Context, input ReservationInput) (Reservation, error) {
	if err := validation.Struct(input); err != nil {
		return Reservation{}, err
	}
	reservation := input.Reservation()
	if !reservation.ExpiryDate.After(reservation.ReservationDate) {
		return Reservation{}, failure.Field("expiry_date", validation.DateAfter("expiry_date", "reservation_date", false))
	}

	var id int64
	err := s.Repo.WithinTx(ctx, func(ctx context.Context, tx Tx) error {
		if err := requireParties(ctx, tx, reservation.UserID, reservation.BookID); err != nil {
			return err
		}
		active, err := tx.ActiveReservationExists(ctx, reservation.UserID, reservation.BookID, 0)
		if err != nil {
			return err
		}
		if active {
			return ErrActiveReservation
		}
		id, err = tx.InsertReservation(ctx, reservation)
		return err
	})
	if err != nil {
		return Reservation{}, fmt.Errorf("creating reservation: %w", err)
	}
	return s.GetReservation(ctx, id)
}

// UpdateReservationStatus accepts any status but never lets a pair hold two active reservations
func (s *Service) UpdateReservationStatus(ctx context.Context, id int64, input StatusInput) (Reservation, error) {
	err := s.Repo.WithinTx(ctx, func(ctx context.Context, tx Tx) error {
		current, err := tx.LockReservation(ctx, id)
		if err != nil {
			return err
		}
		if err := validation.Struct(input); err != nil {
			return err
		}
		status := NewReservationStatus(input.Status)

		if status.IsActive() && !current.Status.IsActive() {
			active, err := tx.ActiveReservationExists(ctx, current.UserID, current.BookID, current.ID)
			if err != nil {
				return err
			}
			if active {
				return ErrActiveReservation
			}
		}
		return tx.UpdateReservationStatus(ctx, id, status)
	})
	if err != nil {
		return Reservation{}, fmt.Errorf("updating reservation status: %w", err)
	}
	return s.GetReservation(ctx, id)
}

func (s *Service) DeleteReservation(ctx context.Context, id int64) error {
	err := s.Repo.WithinTx(ctx, func(ctx context.Context, tx Tx) error {
		return tx.DeleteReservation(ctx, id)
	})
	if err != nil {
		return fmt.Errorf("deleting reservation: %w", err)
	}
	return nil
}

func (s *Service) ListFines(ctx context.Context, filter FineFilter) (page.Result[Fine], error) {
	fines, total, err := s.Repo.SelectFines(ctx, filter)
	if err != nil {
		return page.Result[Fine]{}, fmt.Errorf("selecting fines: %w", err)
	}
	return page.NewResult(fines, filter.Page, total), nil
}

func (s *Service) GetFine(ctx context.Context, id int64) (Fine, error) {
	f, err := s.Repo.SelectFine(ctx, id)
	if err != nil {
		return Fine{}, fmt.Errorf("selecting fine: %w", err)
	}
	return f, nil
}

// PayFine marks an unpaid fine as paid on the given date
func (s *Service) PayFine(ctx context.Context, id int64, input PayInput) (Fine, error) {
	err := s.Repo.WithinTx(ctx, func(ctx context.Context, tx Tx) error {
		fine, err := tx.LockFine(ctx, id)
		if err != nil {
			return err
		}
		if fine.IsPaid {
			return ErrFineAlreadyPaid
		}
		if err := validation.Struct(input); err != nil {
			return err
		}
		paid, _ := calendar.Parse(input.PaidDate)
		return tx.MarkPaid(ctx, id, paid)
	})
	if err != nil {
		return Fine{}, fmt.Errorf("paying fine: %w", err)
	}
	return s.GetFine(ctx, id)
}

// requireParties reports a missing user or book as not found
func requireParties(ctx context.Context, tx Tx, userID, bookID int64) error {
	ok, err := tx.UserExists(ctx, userID)
	if err != nil {
		return fmt.Errorf("checking user: %w", err)
	}
	if !ok {
		return user.ErrNotFound
	}
	ok, err = tx.BookExists(ctx, bookID)
	if err != nil {
		return fmt.Errorf("checking book: %w", err)
	}
	if !ok {
		return catalog.ErrBookNotFound
	}
	return nil
}

