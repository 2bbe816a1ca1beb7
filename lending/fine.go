package lending

import (
	"fmt"
	"time"

	"github.com/marcelsud/library-api/internal/calendar"
	"github.com/marcelsud/library-api/internal/page"
	"github.com/marcelsud/library-api/internal/user"
)

// DefaultFinePerDay is charged for each calendar day a book is returned late
const DefaultFinePerDay int64 = 1000

// Calculator computes late fines. Its zero value charges DefaultFinePerDay.
type Calculator struct {
	PerDay int64
}

func NewCalculator(perDay int64) Calculator {
	return Calculator{PerDay: perDay}
}

func (c Calculator) rate() int64 {
	if c.PerDay <= 0 {
		return DefaultFinePerDay
	}
	return c.PerDay
}

// Calculate returns the days past due and the fine owed; returning on the due date is free
func (c Calculator) Calculate(due, returned calendar.Date) (int, int64) {
	if !returned.After(due) {
		return 0, 0
	}
	days := returned.DaysSince(due)
	return days, int64(days) * c.rate()
}

// Reason is the text stored on a fine for a late return
func Reason(daysLate int) string {
	return fmt.Sprintf("Book returned %d days late", daysLate)
}

/* Fine nasce apenas de uma devolução atrasada e só muda uma vez, quando é paga. */
type Fine struct {
	ID        int64
	BorrowID  int64
	UserID    int64
	Amount    int64
	Reason    string
	IsPaid    bool
	PaidDate  calendar.Date
	User      *user.User
	Borrow    *Borrow
	CreatedAt time.Time
	UpdatedAt time.Time
}

// FineFilter narrows a fine listing; nil IsPaid means both
type FineFilter struct {
	UserID   int64
	IsPaid   *bool
	PaidDate calendar.Date
	Page     page.Request
}

type PayInput struct {
	PaidDate string `json:"paid_date" validate:"required,date"`
}
