//go:build integration

package dbtest

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/marcelsud/library-api/internal/database"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

/*
Test helpers com Testcontainers

- Sobe um container Docker do PostgreSQL
- Aplica o schema embarcado do pacote database
- Cleanup automático após os testes
*/

const (
	defaultDatabase = "librarydb"
	defaultUser     = "testuser"
	defaultPassword = "testpass"
)

// PostgresContainer holds the container and a migrated connection
type PostgresContainer struct {
	Container testcontainers.Container
	DB        *sqlx.DB
	ConnStr   string
}

// SetupPostgresContainer starts PostgreSQL and applies the schema
func SetupPostgresContainer(t *testing.T, ctx context.Context) (*PostgresContainer, func()) {
	t.Helper()

	pgContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase(defaultDatabase),
		postgres.WithUsername(defaultUser),
		postgres.WithPassword(defaultPassword),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	require.NoError(t, err)

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := database.Open(connStr)
	require.NoError(t, err)
	require.NoError(t, database.Migrate(ctx, db))

	cleanup := func() {
		_ = db.Close()
		_ = pgContainer.Terminate(ctx)
	}

	return &PostgresContainer{Container: pgContainer, DB: db, ConnStr: connStr}, cleanup
}

// Truncate empties every table and restarts the sequences
func Truncate(t *testing.T, ctx context.Context, db *sqlx.DB) {
	t.Helper()

	_, err := db.ExecContext(ctx, `TRUNCATE TABLE reservations, fines, borrows, book_author, book_category,
		books, book_shelves, publishers, categories, authors, users RESTART IDENTITY CASCADE`)
	require.NoError(t, err)
}

// InsertUser adds a user row and returns its id
func InsertUser(t *testing.T, ctx context.Context, db *sqlx.DB, name, email, role string) int64 {
	t.Helper()

	var id int64
	err := db.QueryRowxContext(ctx,
		`INSERT INTO users (name, email, role) VALUES ($1, $2, $3) RETURNING id`,
		name, email, role,
	).Scan(&id)
	require.NoError(t, err)
	return id
}

// InsertBook adds a bare book row and returns its id
func InsertBook(t *testing.T, ctx context.Context, db *sqlx.DB, title, isbn string, total, available int) int64 {
	t.Helper()

	var id int64
	err := db.QueryRowxContext(ctx,
		`INSERT INTO books (title, isbn, publication_year, total_copies, available_copies)
		VALUES ($1, $2, 2020, $3, $4) RETURNING id`,
		title, isbn, total, available,
	).Scan(&id)
	require.NoError(t, err)
	return id
}

// AvailableCopies reads the counter of a book
func AvailableCopies(t *testing.T, ctx context.Context, db *sqlx.DB, bookID int64) int {
	t.Helper()

	var n int
	err := db.GetContext(ctx, &n, "SELECT available_copies FROM books WHERE id = $1", bookID)
	require.NoError(t, err)
	return n
}

// AssertCount checks how many rows a table holds
func AssertCount(t *testing.T, ctx context.Context, db *sqlx.DB, table string, expected int) {
	t.Helper()

	var count int
	err := db.GetContext(ctx, &count, fmt.Sprintf("SELECT COUNT(*) FROM %s", table))
	require.NoError(t, err)
	require.Equal(t, expected, count)
}
