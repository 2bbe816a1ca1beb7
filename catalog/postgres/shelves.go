package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/doug-martin/goqu/v9"
	"github.com/marcelsud/library-api/catalog"
	"github.com/marcelsud/library-api/internal/database"
)

const (
	selectShelfQuery = `
		SELECT id, code, location, capacity, description, created_at, updated_at
		FROM book_shelves
		WHERE id = $1
	`

	insertShelfQuery = `
		INSERT INTO book_shelves (code, location, capacity, description)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	updateShelfQuery = `
		UPDATE book_shelves
		SET code = $2, location = $3, capacity = $4, description = $5, updated_at = NOW()
		WHERE id = $1
	`

	deleteShelfQuery = `DELETE FROM book_shelves WHERE id = $1`
)

var shelfColumns = []any{"id", "code", "location", "capacity", "description", "created_at", "updated_at"}

type shelfRow struct {
	ID          int64     `db:"id"`
	Code        string    `db:"code"`
	Location    string    `db:"location"`
	Capacity    int       `db:"capacity"`
	Description string    `db:"description"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

func (r shelfRow) toShelf() catalog.Shelf {
	return catalog.Shelf{
		ID:          r.ID,
		Code:        r.Code,
		Location:    r.Location,
		Capacity:    r.Capacity,
		Description: r.Description,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

func (r *Repository) SelectShelf(ctx context.Context, id int64) (catalog.Shelf, error) {
	var row shelfRow
	err := r.DB.GetContext(ctx, &row, selectShelfQuery, id)
	if errors.Is(err, sql.ErrNoRows) {
		return catalog.Shelf{}, catalog.ErrShelfNotFound
	}
	if err != nil {
		return catalog.Shelf{}, fmt.Errorf("selecting shelf: %w", err)
	}
	return row.toShelf(), nil
}

func (r *Repository) SelectShelves(ctx context.Context, filter catalog.ShelfFilter) ([]catalog.Shelf, int64, error) {
	ds := dialect.From("book_shelves")
	if filter.Search != "" {
		ds = ds.Where(goqu.Or(
			goqu.C("code").ILike(like(filter.Search)),
			goqu.C("location").ILike(like(filter.Search)),
			goqu.C("description").ILike(like(filter.Search)),
		))
	}

	var rows []shelfRow
	total, err := r.paginate(ctx, ds, shelfColumns, goqu.C("id").Asc(), filter.Page, &rows)
	if err != nil {
		return nil, 0, fmt.Errorf("selecting shelves: %w", err)
	}

	shelves := make([]catalog.Shelf, 0, len(rows))
	for _, row := range rows {
		shelves = append(shelves, row.toShelf())
	}
	return shelves, total, nil
}

func (r *Repository) InsertShelf(ctx context.Context, s catalog.Shelf) (int64, error) {
	var id int64
	err := r.DB.QueryRowxContext(ctx, insertShelfQuery, s.Code, s.Location, s.Capacity, s.Description).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("inserting shelf: %w", translate(err))
	}
	return id, nil
}

func (r *Repository) UpdateShelf(ctx context.Context, s catalog.Shelf) error {
	if err := exec(ctx, r.DB, catalog.ErrShelfNotFound, updateShelfQuery, s.ID, s.Code, s.Location, s.Capacity, s.Description); err != nil {
		return fmt.Errorf("updating shelf: %w", err)
	}
	return nil
}

// DeleteShelf relies on the foreign key to refuse shelves that still hold books
func (r *Repository) DeleteShelf(ctx context.Context, id int64) error {
	result, err := r.DB.ExecContext(ctx, deleteShelfQuery, id)
	if constraint, ok := database.Violation(err, database.ForeignKeyViolation); ok && constraint == "books_shelf_id_fkey" {
		return catalog.ErrShelfInUse
	}
	if err != nil {
		return fmt.Errorf("deleting shelf: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("getting rows affected: %w", err)
	}
	if rows == 0 {
		return catalog.ErrShelfNotFound
	}
	return nil
}
