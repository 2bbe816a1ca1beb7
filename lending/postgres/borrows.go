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
	"github.com/marcelsud/library-api/lending"
)

var borrowColumns = append(
	columns("br", "id", "user_id", "book_id", "borrow_date", "due_date", "return_date",
		"status", "fine_amount", "notes", "created_at", "updated_at"),
	partyColumns...,
)

type borrowRow struct {
	ID         int64                `db:"id"`
	UserID     int64                `db:"user_id"`
	BookID     int64                `db:"book_id"`
	BorrowDate calendar.Date        `db:"borrow_date"`
	DueDate    calendar.Date        `db:"due_date"`
	ReturnDate calendar.Date        `db:"return_date"`
	Status     lending.BorrowStatus `db:"status"`
	FineAmount int64                `db:"fine_amount"`
	Notes      string               `db:"notes"`
	CreatedAt  time.Time            `db:"created_at"`
	UpdatedAt  time.Time            `db:"updated_at"`
}

func (r borrowRow) toBorrow() lending.Borrow {
	return lending.Borrow{
		ID:         r.ID,
		UserID:     r.UserID,
		BookID:     r.BookID,
		BorrowDate: r.BorrowDate,
		DueDate:    r.DueDate,
		ReturnDate: r.ReturnDate,
		Status:     r.Status,
		FineAmount: r.FineAmount,
		Notes:      r.Notes,
		CreatedAt:  r.CreatedAt,
		UpdatedAt:  r.UpdatedAt,
	}
}

type borrowPartyRow struct {
	borrowRow
	partyRow
}

func (r borrowPartyRow) toBorrow() lending.Borrow {
	b := r.borrowRow.toBorrow()
	b.User = r.user(r.UserID)
	b.Book = r.book(r.BookID)
	return b
}

// SelectBorrow busca o empréstimo com usuário, livro e multa
func (r *Repository) SelectBorrow(ctx context.Context, id int64) (lending.Borrow, error) {
	var row borrowPartyRow
	ds := withParties("borrows", "br").Select(borrowColumns...).Where(goqu.I("br.id").Eq(id))
	err := r.selectOne(ctx, ds, &row)
	if errors.Is(err, sql.ErrNoRows) {
		return lending.Borrow{}, lending.ErrBorrowNotFound
	}
	if err != nil {
		return lending.Borrow{}, fmt.Errorf("selecting borrow: %w", err)
	}
	b := row.toBorrow()

	var fine fineRow
	err = r.selectOne(ctx, dialect.From("fines").Select(fineColumns("fines")...).Where(goqu.C("borrow_id").Eq(id)), &fine)
	switch {
	case errors.Is(err, sql.ErrNoRows):
	case err != nil:
		return lending.Borrow{}, fmt.Errorf("selecting borrow fine: %w", err)
	default:
		f := fine.toFine()
		b.Fine = &f
	}
	return b, nil
}

func (r *Repository) SelectBorrows(ctx context.Context, filter lending.BorrowFilter) ([]lending.Borrow, int64, error) {
	var where []exp.Expression
	if filter.UserID > 0 {
		where = append(where, goqu.I("br.user_id").Eq(filter.UserID))
	}
	if filter.BookID > 0 {
		where = append(where, goqu.I("br.book_id").Eq(filter.BookID))
	}
	if filter.Status != 0 {
		where = append(where, goqu.I("br.status").Eq(filter.Status.String()))
	}
	if !filter.From.IsZero() && !filter.To.IsZero() {
		where = append(where, goqu.I("br.borrow_date").Between(goqu.Range(filter.From.String(), filter.To.String())))
	}
	ds := withParties("borrows", "br")
	if len(where) > 0 {
		ds = ds.Where(where...)
	}

	var rows []borrowPartyRow
	total, err := r.paginate(ctx, ds, borrowColumns, goqu.I("br.id").Asc(), filter.Page, &rows)
	if err != nil {
		return nil, 0, fmt.Errorf("selecting borrows: %w", err)
	}

	borrows := make([]lending.Borrow, 0, len(rows))
	for _, row := range rows {
		borrows = append(borrows, row.toBorrow())
	}
	return borrows, total, nil
}
