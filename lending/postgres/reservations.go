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

var reservationColumns = append(
	columns("r", "id", "user_id", "book_id", "reservation_date", "expiry_date", "status", "created_at", "updated_at"),
	partyColumns...,
)

type reservationRow struct {
	ID              int64                     `db:"id"`
	UserID          int64                     `db:"user_id"`
	BookID          int64                     `db:"book_id"`
	ReservationDate calendar.Date             `db:"reservation_date"`
	ExpiryDate      calendar.Date             `db:"expiry_date"`
	Status          lending.ReservationStatus `db:"status"`
	CreatedAt       time.Time                 `db:"created_at"`
	UpdatedAt       time.Time                 `db:"updated_at"`
}

func (r reservationRow) toReservation() lending.Reservation {
	return lending.Reservation{
		ID:              r.ID,
		UserID:          r.UserID,
		BookID:          r.BookID,
		ReservationDate: r.ReservationDate,
		ExpiryDate:      r.ExpiryDate,
		Status:          r.Status,
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
	}
}

type reservationPartyRow struct {
	reservationRow
	partyRow
}

func (r reservationPartyRow) toReservation() lending.Reservation {
	res := r.reservationRow.toReservation()
	res.User = r.user(r.UserID)
	res.Book = r.book(r.BookID)
	return res
}

func (r *Repository) SelectReservation(ctx context.Context, id int64) (lending.Reservation, error) {
	var row reservationPartyRow
	ds := withParties("reservations", "r").Select(reservationColumns...).Where(goqu.I("r.id").Eq(id))
	err := r.selectOne(ctx, ds, &row)
	if errors.Is(err, sql.ErrNoRows) {
		return lending.Reservation{}, lending.ErrReservationNotFound
	}
	if err != nil {
		return lending.Reservation{}, fmt.Errorf("selecting reservation: %w", err)
	}
	return row.toReservation(), nil
}

func (r *Repository) SelectReservations(ctx context.Context, filter lending.ReservationFilter) ([]lending.Reservation, int64, error) {
	var where []exp.Expression
	if filter.UserID > 0 {
		where = append(where, goqu.I("r.user_id").Eq(filter.UserID))
	}
	if filter.BookID > 0 {
		where = append(where, goqu.I("r.book_id").Eq(filter.BookID))
	}
	if filter.Status != 0 {
		where = append(where, goqu.I("r.status").Eq(filter.Status.String()))
	}
	ds := withParties("reservations", "r")
	if len(where) > 0 {
		ds = ds.Where(where...)
	}

	var rows []reservationPartyRow
	total, err := r.paginate(ctx, ds, reservationColumns, goqu.I("r.id").Asc(), filter.Page, &rows)
	if err != nil {
		return nil, 0, fmt.Errorf("selecting reservations: %w", err)
	}

	reservations := make([]lending.Reservation, 0, len(rows))
	for _, row := range rows {
		reservations = append(reservations, row.toReservation())
	}
	return reservations, total, nil
}
