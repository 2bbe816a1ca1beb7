package lending

import (
	"bytes"
	"database/sql/driver"
	"fmt"
)

/* BorrowStatus follows the lifecycle Borrowed -> Returned.
 * A borrow changes status exactly once.
 */
type BorrowStatus int

const (
	Borrowed BorrowStatus = iota + 1
	Returned
)

// String returns the string representation of the status
func (s BorrowStatus) String() string {
	switch s {
	case Borrowed:
		return "borrowed"
	case Returned:
		return "returned"
	default:
		return "unknown"
	}
}

// NewBorrowStatus creates a BorrowStatus from a string, zero when unknown
func NewBorrowStatus(str string) BorrowStatus {
	switch str {
	case "borrowed":
		return Borrowed
	case "returned":
		return Returned
	default:
		return 0
	}
}

func (s BorrowStatus) Validate() error {
	if s < Borrowed || s > Returned {
		return fmt.Errorf("invalid borrow status: %d", s)
	}
	return nil
}

func (s BorrowStatus) MarshalJSON() ([]byte, error) {
	return quote(s.String()), nil
}

func (s *BorrowStatus) Scan(src any) error {
	str, err := text(src)
	if err != nil {
		return fmt.Errorf("cannot scan %T into lending.BorrowStatus", src)
	}
	*s = NewBorrowStatus(str)
	return s.Validate()
}

func (s BorrowStatus) Value() (driver.Value, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s.String(), nil
}

/* ReservationStatus has no enforced lifecycle; any status may follow any other.
 * Pending and Approved are the active ones.
 */
type ReservationStatus int

const (
	Pending ReservationStatus = iota + 1
	Approved
	Canceled
	Completed
)

func (s ReservationStatus) String() string {
	switch s {
	case Pending:
		return "pending"
	case Approved:
		return "approved"
	case Canceled:
		return "canceled"
	case Completed:
		return "completed"
	default:
		return "unknown"
	}
}

// NewReservationStatus creates a ReservationStatus from a string, zero when unknown
func NewReservationStatus(str string) ReservationStatus {
	switch str {
	case "pending":
		return Pending
	case "approved":
		return Approved
	case "canceled":
		return Canceled
	case "completed":
		return Completed
	default:
		return 0
	}
}

func (s ReservationStatus) Validate() error {
	if s < Pending || s > Completed {
		return fmt.Errorf("invalid reservation status: %d", s)
	}
	return nil
}

// IsActive returns true while the reservation still holds its place
func (s ReservationStatus) IsActive() bool {
	return s == Pending || s == Approved
}

func (s ReservationStatus) MarshalJSON() ([]byte, error) {
	return quote(s.String()), nil
}

func (s *ReservationStatus) Scan(src any) error {
	str, err := text(src)
	if err != nil {
		return fmt.Errorf("cannot scan %T into lending.ReservationStatus", src)
	}
	*s = NewReservationStatus(str)
	return s.Validate()
}

func (s ReservationStatus) Value() (driver.Value, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s.String(), nil
}

func quote(s string) []byte {
	buffer := bytes.NewBufferString(`"`)
	buffer.WriteString(s)
	buffer.WriteString(`"`)
	return buffer.Bytes()
}

func text(src any) (string, error) {
	switch v := src.(type) {
	case string:
		return v, nil
	case []byte:
		return string(v), nil
	}
	return "", fmt.Errorf("unexpected %T", src)
}
