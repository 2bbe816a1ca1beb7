package postgres

import (
	"context"
	"fmt"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres" // dialect registration
	"github.com/doug-martin/goqu/v9/exp"
	"github.com/jmoiron/sqlx"
	"github.com/marcelsud/library-api/catalog"
	"github.com/marcelsud/library-api/internal/page"
	"github.com/marcelsud/library-api/internal/user"
	"github.com/marcelsud/library-api/lending"
)

/*
PostgreSQL Repository de empréstimos, reservas e multas

- Leituras trazem usuário e livro via JOIN
- Escritas acontecem apenas dentro de WithinTx
- O contador available_copies só muda por UPDATE condicional
*/

var dialect = goqu.Dialect("postgres")

type Repository struct {
	DB *sqlx.DB
}

func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{DB: db}
}

func (r *Repository) Close(ctx context.Context) error {
	if r.DB != nil {
		return r.DB.Close()
	}
	return nil
}

// WithinTx runs fn in a transaction
func (r *Repository) WithinTx(ctx context.Context, fn func(ctx context.Context, tx lending.Tx) error) error {
	sqlTx, err := r.DB.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}

	if err := fn(ctx, &Tx{tx: sqlTx}); err != nil {
		if rbErr := sqlTx.Rollback(); rbErr != nil {
			return fmt.Errorf("%w (rollback: %v)", err, rbErr)
		}
		return err
	}

	if err := sqlTx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

// partyRow holds the user and book joined onto borrows and reservations
type partyRow struct {
	UserName      string    `db:"user_name"`
	UserEmail     string    `db:"user_email"`
	UserRole      user.Role `db:"user_role"`
	BookTitle     string    `db:"book_title"`
	BookISBN      string    `db:"book_isbn"`
	BookAvailable int       `db:"book_available_copies"`
}

func (p partyRow) user(id int64) *user.User {
	return &user.User{ID: id, Name: p.UserName, Email: p.UserEmail, Role: p.UserRole}
}

func (p partyRow) book(id int64) *catalog.BookRef {
	return &catalog.BookRef{ID: id, Title: p.BookTitle, ISBN: p.BookISBN, AvailableCopies: p.BookAvailable}
}

var partyColumns = []any{
	goqu.I("u.name").As("user_name"),
	goqu.I("u.email").As("user_email"),
	goqu.I("u.role").As("user_role"),
	goqu.I("b.title").As("book_title"),
	goqu.I("b.isbn").As("book_isbn"),
	goqu.I("b.available_copies").As("book_available_copies"),
}

// withParties joins users u and books b onto the table aliased as alias
func withParties(table, alias string) *goqu.SelectDataset {
	return dialect.From(goqu.T(table).As(alias)).
		Join(goqu.T("users").As("u"), goqu.On(goqu.I("u.id").Eq(goqu.I(alias+".user_id")))).
		Join(goqu.T("books").As("b"), goqu.On(goqu.I("b.id").Eq(goqu.I(alias+".book_id"))))
}

func columns(alias string, names ...string) []any {
	cols := make([]any, 0, len(names))
	for _, n := range names {
		cols = append(cols, goqu.I(alias+"."+n))
	}
	return cols
}

func (r *Repository) selectOne(ctx context.Context, ds *goqu.SelectDataset, dest any) error {
	query, args, err := ds.Prepared(true).ToSQL()
	if err != nil {
		return fmt.Errorf("building query: %w", err)
	}
	return r.DB.GetContext(ctx, dest, query, args...)
}

// paginate counts the rows of ds and loads one page of them into dest
func (r *Repository) paginate(ctx context.Context, ds *goqu.SelectDataset, cols []any, order exp.OrderedExpression, p page.Request, dest any) (int64, error) {
	countSQL, countArgs, err := ds.Select(goqu.COUNT(goqu.Star())).Prepared(true).ToSQL()
	if err != nil {
		return 0, fmt.Errorf("building count query: %w", err)
	}
	var total int64
	if err := r.DB.GetContext(ctx, &total, countSQL, countArgs...); err != nil {
		return 0, fmt.Errorf("counting rows: %w", err)
	}

	listSQL, listArgs, err := ds.Select(cols...).
		Order(order).
		Limit(p.Limit()).
		Offset(p.Offset()).
		Prepared(true).
		ToSQL()
	if err != nil {
		return 0, fmt.Errorf("building list query: %w", err)
	}
	if err := r.DB.SelectContext(ctx, dest, listSQL, listArgs...); err != nil {
		return 0, fmt.Errorf("selecting rows: %w", err)
	}
	return total, nil
}
