package lending

import (
	"time"

	"github.com/marcelsud/library-api/catalog"
	"github.com/marcelsud/library-api/internal/calendar"
	"github.com/marcelsud/library-api/internal/page"
	"github.com/marcelsud/library-api/internal/user"
)

/* Sem tags, representa um empréstimo em relação ao negócio.
 * ReturnDate fica zerado até a devolução.
 */
type Borrow struct {
	ID         int64
	UserID     int64
	BookID     int64
	BorrowDate calendar.Date
	DueDate    calendar.Date
	ReturnDate calendar.Date
	Status     BorrowStatus
	FineAmount int64
	Notes      string
	User       *user.User
	Book       *catalog.BookRef
	Fine       *Fine
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// BorrowFilter narrows a borrow listing; the date range applies only when both ends are set
type BorrowFilter struct {
	UserID int64
	BookID int64
	Status BorrowStatus
	From   calendar.Date
	To     calendar.Date
	Page   page.Request
}

type BorrowInput struct {
	UserID     int64  `json:"user_id" validate:"required"`
	BookID     int64  `json:"book_id" validate:"required"`
	BorrowDate string `json:"borrow_date" validate:"required,date"`
	DueDate    string `json:"due_date" validate:"required,date"`
	Notes      string `json:"notes"`
}

func (in BorrowInput) Borrow() Borrow {
	b := Borrow{
		UserID: in.UserID,
		BookID: in.BookID,
		Status: Borrowed,
		Notes:  in.Notes,
	}
	b.BorrowDate, _ = calendar.Parse(in.BorrowDate)
	b.DueDate, _ = calendar.Parse(in.DueDate)
	return b
}

type ReturnInput struct {
	ReturnDate string `json:"return_date" validate:"required,date"`
}
