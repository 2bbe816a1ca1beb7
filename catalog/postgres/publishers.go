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
	selectPublisherQuery = `
		SELECT id, name, address, phone, email, created_at, updated_at
		FROM publishers
		WHERE id = $1
	`

	insertPublisherQuery = `
		INSERT INTO publishers (name, address, phone, email)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	updatePublisherQuery = `
		UPDATE publishers
		SET name = $2, address = $3, phone = $4, email = $5, updated_at = NOW()
		WHERE id = $1
	`

	// books.publisher_id is ON DELETE SET NULL
	deletePublisherQuery = `DELETE FROM publishers WHERE id = $1`
)

var publisherColumns = []any{"id", "name", "address", "phone", "email", "created_at", "updated_at"}

type publisherRow struct {
	ID        int64     `db:"id"`
	Name      string    `db:"name"`
	Address   string    `db:"address"`
	Phone     string    `db:"phone"`
	Email     string    `db:"email"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

func (r publisherRow) toPublisher() catalog.Publisher {
	return catalog.Publisher{
		ID:        r.ID,
		Name:      r.Name,
		Address:   r.Address,
		Phone:     r.Phone,
		Email:     r.Email,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

func (r *Repository) SelectPublisher(ctx context.Context, id int64) (catalog.Publisher, error) {
	var row publisherRow
	err := r.DB.GetContext(ctx, &row, selectPublisherQuery, id)
	if errors.Is(err, sql.ErrNoRows) {
		return catalog.Publisher{}, catalog.ErrPublisherNotFound
	}
	if err != nil {
		return catalog.Publisher{}, fmt.Errorf("selecting publisher: %w", err)
	}
	return row.toPublisher(), nil
}

func (r *Repository) SelectPublishers(ctx context.Context, filter catalog.PublisherFilter) ([]catalog.Publisher, int64, error) {
	ds := dialect.From("publishers")
	if filter.Search != "" {
		ds = ds.Where(goqu.Or(
			goqu.C("name").ILike(like(filter.Search)),
			goqu.C("email").ILike(like(filter.Search)),
			goqu.C("address").ILike(like(filter.Search)),
		))
	}

	var rows []publisherRow
	total, err := r.paginate(ctx, ds, publisherColumns, goqu.C("id").Asc(), filter.Page, &rows)
	if err != nil {
		return nil, 0, fmt.Errorf("selecting publishers: %w", err)
	}

	publishers := make([]catalog.Publisher, 0, len(rows))
	for _, row := range rows {
		publishers = append(publishers, row.toPublisher())
	}
	return publishers, total, nil
}

func (r *Repository) InsertPublisher(ctx context.Context, p catalog.Publisher) (int64, error) {
	var id int64
	err := r.DB.QueryRowxContext(ctx, insertPublisherQuery, p.Name, p.Address, p.Phone, p.Email).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("inserting publisher: %w", translate(err))
	}
	return id, nil
}

func (r *Repository) UpdatePublisher(ctx context.Context, p catalog.Publisher) error {
	if err := exec(ctx, r.DB, catalog.ErrPublisherNotFound, updatePublisherQuery, p.ID, p.Name, p.Address, p.Phone, p.Email); err != nil {
		return fmt.Errorf("updating publisher: %w", err)
	}
	return nil
}

func (r *Repository) DeletePublisher(ctx context.Context, id int64) error {
	if err := exec(ctx, r.DB, catalog.ErrPublisherNotFound, deletePublisherQuery, id); err != nil {
		return fmt.Errorf("deleting publisher: %w", err)
	}
	return nil
}
