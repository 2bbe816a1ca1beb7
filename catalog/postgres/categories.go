package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/doug-martin/goqu/v9"
	"github.com/marcelsud/library-api/catalog"
)

const (
	selectCategoryQuery = `
		SELECT id, name, description, created_at, updated_at
		FROM categories
		WHERE id = $1
	`

	insertCategoryQuery = `
		INSERT INTO categories (name, description)
		VALUES ($1, $2)
		RETURNING id
	`

	updateCategoryQuery = `
		UPDATE categories
		SET name = $2, description = $3, updated_at = NOW()
		WHERE id = $1
	`

	detachCategoryQuery = `DELETE FROM book_category WHERE category_id = $1`
	deleteCategoryQuery = `DELETE FROM categories WHERE id = $1`
)

var categoryColumns = []any{"id", "name", "description", "created_at", "updated_at"}

type categoryRow struct {
	ID          int64     `db:"id"`
	Name        string    `db:"name"`
	Description string    `db:"description"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

func (r categoryRow) toCategory() catalog.Category {
	return catalog.Category{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

func (r *Repository) SelectCategory(ctx context.Context, id int64) (catalog.Category, error) {
	var row categoryRow
	err := r.DB.GetContext(ctx, &row, selectCategoryQuery, id)
	if errors.Is(err, sql.ErrNoRows) {
		return catalog.Category{}, catalog.ErrCategoryNotFound
	}
	if err != nil {
		return catalog.Category{}, fmt.Errorf("selecting category: %w", err)
	}
	return row.toCategory(), nil
}

func (r *Repository) SelectCategories(ctx context.Context, filter catalog.CategoryFilter) ([]catalog.Category, int64, error) {
	var rows []categoryRow
	total, err := r.paginate(ctx, dialect.From("categories"), categoryColumns, goqu.C("id").Asc(), filter.Page, &rows)
	if err != nil {
		return nil, 0, fmt.Errorf("selecting categories: %w", err)
	}

	categories := make([]catalog.Category, 0, len(rows))
	for _, row := range rows {
		categories = append(categories, row.toCategory())
	}
	return categories, total, nil
}

func (r *Repository) MissingCategories(ctx context.Context, ids []int64) ([]int64, error) {
	return r.missing(ctx, "categories", ids)
}

func (r *Repository) InsertCategory(ctx context.Context, c catalog.Category) (int64, error) {
	var id int64
	err := r.DB.QueryRowxContext(ctx, insertCategoryQuery, c.Name, c.Description).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("inserting category: %w", translate(err))
	}
	return id, nil
}

func (r *Repository) UpdateCategory(ctx context.Context, c catalog.Category) error {
	if err := exec(ctx, r.DB, catalog.ErrCategoryNotFound, updateCategoryQuery, c.ID, c.Name, c.Description); err != nil {
		return fmt.Errorf("updating category: %w", err)
	}
	return nil
}

// DeleteCategory desvincula a categoria dos livros e a remove na mesma transação
func (r *Repository) DeleteCategory(ctx context.Context, id int64) error {
	tx, err := r.DB.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	if _, err := tx.ExecContext(ctx, detachCategoryQuery, id); err != nil {
		return rollback(tx, fmt.Errorf("detaching category: %w", err))
	}
	if err := exec(ctx, tx, catalog.ErrCategoryNotFound, deleteCategoryQuery, id); err != nil {
		return rollback(tx, fmt.Errorf("deleting category: %w", err))
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing category delete: %w", err)
	}
	return nil
}
