package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/doug-martin/goqu/v9"
	"github.com/doug-martin/goqu/v9/exp"
	"github.com/marcelsud/library-api/catalog"
	"github.com/marcelsud/library-api/internal/calendar"
)

const (
	selectAuthorQuery = `
		SELECT id, name, biography, birth_date, created_at, updated_at
		FROM authors
		WHERE id = $1
	`

	insertAuthorQuery = `
		INSERT INTO authors (name, biography, birth_date)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	updateAuthorQuery = `
		UPDATE authors
		SET name = $2, biography = $3, birth_date = $4, updated_at = NOW()
		WHERE id = $1
	`

	detachAuthorQuery = `DELETE FROM book_author WHERE author_id = $1`
	deleteAuthorQuery = `DELETE FROM authors WHERE id = $1`
)

var authorColumns = []any{"id", "name", "biography", "birth_date", "created_at", "updated_at"}

type authorRow struct {
	ID        int64         `db:"id"`
	Name      string        `db:"name"`
	Biography string        `db:"biography"`
	BirthDate calendar.Date `db:"birth_date"`
	CreatedAt time.Time     `db:"created_at"`
	UpdatedAt time.Time     `db:"updated_at"`
}

func (r authorRow) toAuthor() catalog.Author {
	return catalog.Author{
		ID:        r.ID,
		Name:      r.Name,
		Biography: r.Biography,
		BirthDate: r.BirthDate,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

func (r *Repository) SelectAuthor(ctx context.Context, id int64) (catalog.Author, error) {
	var row authorRow
	err := r.DB.GetContext(ctx, &row, selectAuthorQuery, id)
	if errors.Is(err, sql.ErrNoRows) {
		return catalog.Author{}, catalog.ErrAuthorNotFound
	}
	if err != nil {
		return catalog.Author{}, fmt.Errorf("selecting author: %w", err)
	}
	return row.toAuthor(), nil
}

// SelectAuthors aplica busca por nome/biografia, nome exato e data de nascimento
func (r *Repository) SelectAuthors(ctx context.Context, filter catalog.AuthorFilter) ([]catalog.Author, int64, error) {
	ds := dialect.From("authors")
	var where []exp.Expression
	if filter.Search != "" {
		where = append(where, goqu.Or(
			goqu.C("name").ILike(like(filter.Search)),
			goqu.C("biography").ILike(like(filter.Search)),
		))
	}
	if filter.Name != "" {
		where = append(where, goqu.C("name").ILike(like(filter.Name)))
	}
	if !filter.BirthDate.IsZero() {
		where = append(where, goqu.C("birth_date").Eq(filter.BirthDate.String()))
	}
	if len(where) > 0 {
		ds = ds.Where(where...)
	}

	var rows []authorRow
	total, err := r.paginate(ctx, ds, authorColumns, goqu.C("id").Asc(), filter.Page, &rows)
	if err != nil {
		return nil, 0, fmt.Errorf("selecting authors: %w", err)
	}

	authors := make([]catalog.Author, 0, len(rows))
	for _, row := range rows {
		authors = append(authors, row.toAuthor())
	}
	return authors, total, nil
}

func (r *Repository) MissingAuthors(ctx context.Context, ids []int64) ([]int64, error) {
	return r.missing(ctx, "authors", ids)
}

func (r *Repository) InsertAuthor(ctx context.Context, a catalog.Author) (int64, error) {
	var id int64
	err := r.DB.QueryRowxContext(ctx, insertAuthorQuery, a.Name, a.Biography, a.BirthDate).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("inserting author: %w", err)
	}
	return id, nil
}

func (r *Repository) UpdateAuthor(ctx context.Context, a catalog.Author) error {
	if err := exec(ctx, r.DB, catalog.ErrAuthorNotFound, updateAuthorQuery, a.ID, a.Name, a.Biography, a.BirthDate); err != nil {
		return fmt.Errorf("updating author: %w", err)
	}
	return nil
}

// DeleteAuthor desvincula o autor dos livros e o remove na mesma transação
func (r *Repository) DeleteAuthor(ctx context.Context, id int64) error {
	tx, err := r.DB.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	if _, err := tx.ExecContext(ctx, detachAuthorQuery, id); err != nil {
		return rollback(tx, fmt.Errorf("detaching author: %w", err))
	}
	if err := exec(ctx, tx, catalog.ErrAuthorNotFound, deleteAuthorQuery, id); err != nil {
		return rollback(tx, fmt.Errorf("deleting author: %w", err))
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing author delete: %w", err)
	}
	return nil
}
