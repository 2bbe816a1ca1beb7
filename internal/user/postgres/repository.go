package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres" // dialect registration
	"github.com/jmoiron/sqlx"
	"github.com/marcelsud/library-api/internal/user"
)

const (
	selectUserQuery = `SELECT id, name, email, role, phone_number, address, created_at, updated_at
		FROM users WHERE id = $1`
	userExistsQuery = `SELECT EXISTS (SELECT 1 FROM users WHERE id = $1)`
	updateRoleQuery = `UPDATE users SET role = $1, updated_at = NOW() WHERE id = $2`
	dialectPostgres = "postgres"
)

var userColumns = []any{"id", "name", "email", "role", "phone_number", "address", "created_at", "updated_at"}

type Repository struct {
	DB *sqlx.DB
}

func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{DB: db}
}

type userRow struct {
	ID          int64     `db:"id"`
	Name        string    `db:"name"`
	Email       string    `db:"email"`
	Role        user.Role `db:"role"`
	PhoneNumber string    `db:"phone_number"`
	Address     string    `db:"address"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

func (r userRow) toUser() user.User {
	return user.User{
		ID:          r.ID,
		Name:        r.Name,
		Email:       r.Email,
		Role:        r.Role,
		PhoneNumber: r.PhoneNumber,
		Address:     r.Address,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

// Select busca um usuário por ID
func (r *Repository) Select(ctx context.Context, id int64) (user.User, error) {
	var row userRow
	err := r.DB.GetContext(ctx, &row, selectUserQuery, id)
	if errors.Is(err, sql.ErrNoRows) {
		return user.User{}, user.ErrNotFound
	}
	if err != nil {
		return user.User{}, fmt.Errorf("selecting user: %w", err)
	}
	return row.toUser(), nil
}

// SelectAll returns one page of users plus the total matching the filter
func (r *Repository) SelectAll(ctx context.Context, filter user.Filter) ([]user.User, int64, error) {
	ds := goqu.Dialect(dialectPostgres).From("users")
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		ds = ds.Where(goqu.Or(
			goqu.C("name").ILike(like),
			goqu.C("email").ILike(like),
		))
	}
	if filter.Role != 0 {
		ds = ds.Where(goqu.C("role").Eq(filter.Role.String()))
	}

	countSQL, countArgs, err := ds.Select(goqu.COUNT(goqu.Star())).Prepared(true).ToSQL()
	if err != nil {
		return nil, 0, fmt.Errorf("building count query: %w", err)
	}
	var total int64
	if err := r.DB.GetContext(ctx, &total, countSQL, countArgs...); err != nil {
		return nil, 0, fmt.Errorf("counting users: %w", err)
	}

	listSQL, listArgs, err := ds.Select(userColumns...).
		Order(goqu.I("id").Asc()).
		Limit(filter.Page.Limit()).
		Offset(filter.Page.Offset()).
		Prepared(true).
		ToSQL()
	if err != nil {
		return nil, 0, fmt.Errorf("building list query: %w", err)
	}
	var rows []userRow
	if err := r.DB.SelectContext(ctx, &rows, listSQL, listArgs...); err != nil {
		return nil, 0, fmt.Errorf("selecting users: %w", err)
	}

	users := make([]user.User, 0, len(rows))
	for _, row := range rows {
		users = append(users, row.toUser())
	}
	return users, total, nil
}

func (r *Repository) Exists(ctx context.Context, id int64) (bool, error) {
	var ok bool
	if err := r.DB.GetContext(ctx, &ok, userExistsQuery, id); err != nil {
		return false, fmt.Errorf("checking user: %w", err)
	}
	return ok, nil
}

// UpdateRole atualiza o papel de um usuário existente
func (r *Repository) UpdateRole(ctx context.Context, id int64, role user.Role) error {
	result, err := r.DB.ExecContext(ctx, updateRoleQuery, role, id)
	if err != nil {
		return fmt.Errorf("updating role: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("getting rows affected: %w", err)
	}

	if rows == 0 {
		return user.ErrNotFound
	}

	return nil
}

// Close fecha a conexão com o banco de dados
func (r *Repository) Close(ctx context.Context) error {
	if r.DB != nil {
		return r.DB.Close()
	}
	return nil
}
