package lending

import (
	"time"

	"github.com/marcelsud/library-api/catalog"
	"github.com/marcelsud/library-api/internal/calendar"
	"github.com/marcelsud/library-api/internal/page"
	"github.com/marcelsud/library-api/internal/user"
)

// Reservation holds a place for a user on a book until its expiry date
type Reservation struct {
	ID              int64
	UserID          int64
	BookID          int64
	ReservationDate calendar.Date
	ExpiryDate      calendar.Date
	Status          ReservationStatus
	User            *user.User
	Book            *catalog.BookRef
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type ReservationFilter struct {
	UserID int64
	BookID int64
	Status ReservationStatus
	Page   page.Request
}

// ReservationInput is also the body of the self-service reservation, whose user comes from the caller
type ReservationInput struct {
	UserID          int64  `json:"user_id" validate:"required"`
	BookID          int64  `json:"book_id" validate:"required"`
	ReservationDate string `json:"reservation_date" validate:"required,date"`
	ExpiryDate      string `json:"expiry_date" validate:"required,date"`
}

func (in ReservationInput) Reservation() Reservation {
	r := Reservation{
		UserID: in.UserID,
		BookID: in.BookID,
		Status: Pending,
	}
	r.ReservationDate, _ = calendar.Parse(in.ReservationDate)
	r.ExpiryDate, _ = calendar.Parse(in.ExpiryDate)
	return r
}

type StatusInput struct {
	Status string `json:"status" validate:"required,oneof=pending approved canceled completed"`
}
