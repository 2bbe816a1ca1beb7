package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/doug-martin/goqu/v9"
	"github.com/doug-martin/goqu/v9/exp"
	"github.com/marcelsud/library-api/internal/calendar"
	"github.com/marcelsud/library-api/internal/user"
	"github.com/marcelsud/library-api/lending"
)

func fineColumns(alias string) []any {
	return columns(alias, "id", "borrow_id", "user_id", "amount", "reason", "is_paid", "paid_date", "created_at", "updated_at")
}

type fineRow struct {
	ID        int64         `db:"id"`
	BorrowID  int64         `db:"borrow_id"`
	UserID    int64         `db:"user_id"`
	Amount    int64         `db:"amount"`
	Reason    string        `db:"reason"`
	IsPaid    bool          `db:"is_paid"`
	PaidDate  calendar.Date `db:"paid_date"`
	CreatedAt time.Time     `db:"created_at"`
	UpdatedAt time.Time     `db:"updated_at"`
}

func (r fineRow) toFine() lending.Fine {
	return lending.Fine{
		ID:        r.ID,
		BorrowID:  r.BorrowID,
		UserID:    r.UserID,
		Amount:    r.Amount,
		Reason:    r.Reason,
		IsPaid:    r.IsPaid,
		PaidDate:  r.PaidDate,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

// fineDetailRow carries the user and the borrow a fine belongs to
type fineDetailRow struct {
	fineRow
	UserName         string               `db:"user_name"`
	UserEmail        string               `db:"user_email"`
	UserRole         user.Role            `db:"user_role"`
	BorrowBookID     int64                `db:"borrow_book_id"`
	BorrowDate       calendar.Date        `db:"borrow_date"`
	BorrowDueDate    calendar.Date        `db:"borrow_due_date"`
	BorrowReturnDate calendar.Date        `db:"borrow_return_date"`
	BorrowStatus     lending.BorrowStatus `db:"borrow_status"`
}

func (r fineDetailRow) toFine() lending.Fine {
	f := r.fineRow.toFine()
	f.User = &user.User{ID: r.UserID, Name: r.UserName, Email: r.UserEmail, Role: r.UserRole}
	f.Borrow = &lending.Borrow{
		ID:         r.BorrowID,
		UserID:     r.UserID,
		BookID:     r.BorrowBookID,
		BorrowDate: r.BorrowDate,
		DueDate:    r.BorrowDueDate,
		ReturnDate: r.BorrowReturnDate,
		Status:     r.BorrowStatus,
		FineAmount: r.Amount,
	}
	return f
}

var fineDetailColumns = append(fineColumns("f"),
	goqu.I("u.name").As("user_name"),
	goqu.I("u.email").As("user_email"),
	goqu.I("u.role").As("user_role"),
	goqu.I("br.book_id").As("borrow_book_id"),
	goqu.I("br.borrow_date").As("borrow_date"),
	goqu.I("br.due_date").As("borrow_due_date"),
	goqu.I("br.return_date").As("borrow_return_date"),
	goqu.I("br.status").As("borrow_status"),
)

func finesFrom() *goqu.SelectDataset {
	return dialect.From(goqu.T("fines").As("f")).
		Join(goqu.T("users").As("u"), goqu.On(goqu.I("u.id").Eq(goqu.I("f.user_id")))).
		Join(goqu.T("borrows").As("br"), goqu.On(goqu.I("br.id").Eq(goqu.I("f.borrow_id"))))
}

func (r *Repository) SelectFine(ctx context.Context, id int64) (lending.Fine, error) {
	var row fineDetailRow
	err := r.selectOne(ctx, finesFrom().Select(fineDetailColumns...).Where(goqu.I("f.id").Eq(id)), &row)
	if errors.Is(err, sql.ErrNoRows) {
		return lending.Fine{}, lending.ErrFineNotFound
	}
	if err != nil {
		return lending.Fine{}, fmt.Errorf("selecting fine: %w", err)
	}
	return row.toFine(), nil
}

func (r *Repository) SelectFines(ctx context.Context, filter lending.FineFilter) ([]lending.Fine, int64, error) {
	var where []exp.Expression
	if filter.UserID > 0 {
		where = append(where, goqu.I("f.user_id").Eq(filter.UserID))
	}
	if filter.IsPaid != nil {
		where = append(where, goqu.I("f.is_paid").Eq(*filter.IsPaid))
	}
	if !filter.PaidDate.IsZero() {
		where = append(where, goqu.I("f.paid_date").Eq(filter.PaidDate.String()))
	}
	ds := finesFrom()
	if len(where) > 0 {
		ds = ds.Where(where...)
	}

	var rows []fineDetailRow
	total, err := r.paginate(ctx, ds, fineDetailColumns, goqu.I("f.id").Asc(), filter.Page, &rows)
	if err != nil {
		return nil, 0, fmt.Errorf("selecting fines: %w", err)
	}

	fines := make([]lending.Fine, 0, len(rows))
	for _, row := range rows {
		fines = append(fines, row.toFine())
	}
	return fines, total, nil
}
