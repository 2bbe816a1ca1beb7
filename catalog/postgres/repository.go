package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres" // dialect registration
	"github.com/doug-martin/goqu/v9/exp"
	"github.com/jmoiron/sqlx"
	"github.com/marcelsud/library-api/internal/database"
	"github.com/marcelsud/library-api/internal/failure"
	"github.com/marcelsud/library-api/internal/page"
	"github.com/marcelsud/library-api/internal/validation"
)

/*
PostgreSQL Repository do acervo

- Consultas fixas ficam em constantes SQL
- Listagens com busca, filtros e paginação são montadas com goqu
- Relações (autores, categorias) são carregadas em lote com sqlx.In
*/

const dialectPostgres = "postgres"

var dialect = goqu.Dialect(dialectPostgres)

type Repository struct {
	DB *sqlx.DB
}

func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{DB: db}
}

// Close fecha a conexão com o banco de dados
func (r *Repository) Close(ctx context.Context) error {
	if r.DB != nil {
		return r.DB.Close()
	}
	return nil
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

// missing returns the ids absent from table
func (r *Repository) missing(ctx context.Context, table string, ids []int64) ([]int64, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	query, args, err := sqlx.In(fmt.Sprintf("SELECT id FROM %s WHERE id IN (?)", table), ids)
	if err != nil {
		return nil, fmt.Errorf("building %s lookup: %w", table, err)
	}
	var found []int64
	if err := r.DB.SelectContext(ctx, &found, r.DB.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("selecting %s: %w", table, err)
	}
	present := make(map[int64]bool, len(found))
	for _, id := range found {
		present[id] = true
	}
	var out []int64
	for _, id := range ids {
		if !present[id] {
			out = append(out, id)
		}
	}
	return out, nil
}

// exec runs a statement that must touch exactly one row, returning notFound otherwise
func exec(ctx context.Context, db sqlx.ExecerContext, notFound error, query string, args ...any) error {
	result, err := db.ExecContext(ctx, query, args...)
	if err != nil {
		return translate(err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("getting rows affected: %w", err)
	}

	if rows == 0 {
		return notFound
	}

	return nil
}

func rollback(tx *sqlx.Tx, err error) error {
	if rbErr := tx.Rollback(); rbErr != nil {
		return fmt.Errorf("%w (rollback: %v)", err, rbErr)
	}
	return err
}

// Violations of these constraints are reported on the request field that caused them
var (
	uniqueFields = map[string]string{
		"books_isbn_key":        "isbn",
		"categories_name_key":   "name",
		"publishers_name_key":   "name",
		"book_shelves_code_key": "code",
	}
	referenceFields = map[string]string{
		"books_publisher_id_fkey":        "publisher_id",
		"books_shelf_id_fkey":            "shelf_id",
		"book_author_author_id_fkey":     "author_ids",
		"book_category_category_id_fkey": "category_ids",
	}
)

func translate(err error) error {
	if constraint, ok := database.Violation(err, database.UniqueViolation); ok {
		if field, ok := uniqueFields[constraint]; ok {
			return failure.Field(field, validation.Taken(field))
		}
	}
	if constraint, ok := database.Violation(err, database.ForeignKeyViolation); ok {
		if field, ok := referenceFields[constraint]; ok {
			return failure.Field(field, validation.Invalid(field))
		}
	}
	return err
}

func nullID(id int64) sql.NullInt64 {
	return sql.NullInt64{Int64: id, Valid: id > 0}
}

func like(s string) string {
	return "%" + s + "%"
}
