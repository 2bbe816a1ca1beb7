package database

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

//go:embed schema.sql
var schema string

// PostgreSQL error codes the repositories react to
const (
	UniqueViolation     pq.ErrorCode = "23505"
	ForeignKeyViolation pq.ErrorCode = "23503"
	CheckViolation      pq.ErrorCode = "23514"
)

// Open connects with the default pool (25, 5, 5 min)
func Open(connectionString string) (*sqlx.DB, error) {
	return OpenWithPoolConfig(connectionString, 25, 5, 5)
}

// OpenWithPoolConfig connects and tunes the pool
// maxOpenConns: maximum simultaneous connections (0 = unlimited)
// maxIdleConns: idle connections kept in the pool
// maxLifeMinutes: how long a connection may be reused
func OpenWithPoolConfig(connectionString string, maxOpenConns, maxIdleConns, maxLifeMinutes int) (*sqlx.DB, error) {
	db, err := sqlx.Open("postgres", connectionString)
	if err != nil {
		return nil, fmt.Errorf("opening postgres connection: %w", err)
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("pinging postgres: %w", err)
	}

	if maxOpenConns > 0 {
		db.SetMaxOpenConns(maxOpenConns)
	}
	if maxIdleConns > 0 {
		db.SetMaxIdleConns(maxIdleConns)
	}
	if maxLifeMinutes > 0 {
		db.SetConnMaxLifetime(time.Duration(maxLifeMinutes) * time.Minute)
	}

	return db, nil
}

// Schema returns the DDL applied by Migrate
func Schema() string {
	return schema
}

// Migrate applies the schema; every statement is idempotent
func Migrate(ctx context.Context, db *sqlx.DB) error {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("applying schema: %w", err)
	}
	return nil
}

// Violation reports the constraint name when err is a PostgreSQL error with the given code
func Violation(err error, code pq.ErrorCode) (string, bool) {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) || pqErr.Code != code {
		return "", false
	}
	return pqErr.Constraint, true
}
