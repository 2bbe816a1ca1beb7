package lending

import "github.com/marcelsud/library-api/internal/failure"

var (
	ErrBorrowNotFound      = failure.NewNotFound("Borrow record not found")
	ErrReservationNotFound = failure.NewNotFound("Reservation not found")
	ErrFineNotFound        = failure.NewNotFound("Fine not found")

	ErrNotAvailable      = failure.NewConflict("Book is not available for borrow")
	ErrAlreadyReturned   = failure.NewConflict("Book already returned")
	ErrActiveReservation = failure.NewConflict("User already has an active reservation for this book")
	ErrFineAlreadyPaid   = failure.NewConflict("Fine already paid")
)
