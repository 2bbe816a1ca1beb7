//go:build !integration

package postgres

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/marcelsud/library-api/internal/page"
	"github.com/marcelsud/library-api/internal/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMock(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewRepository(sqlx.NewDb(db, "postgres")), mock
}

var userRowColumns = []string{"id", "name", "email", "role", "phone_number", "address", "created_at", "updated_at"}

func TestRepository_Select_Unit(t *testing.T) {
	ctx := context.Background()
	now := time.Now()

	t.Run("existing user", func(t *testing.T) {
		repo, mock := newMock(t)
		rows := sqlmock.NewRows(userRowColumns).
			AddRow(1, "Ana", "ana@example.com", "librarian", "555", "Rua A", now, now)
		mock.ExpectQuery(regexp.QuoteMeta(selectUserQuery)).WithArgs(int64(1)).WillReturnRows(rows)

		u, err := repo.Select(ctx, 1)

		require.NoError(t, err)
		assert.Equal(t, "Ana", u.Name)
		assert.Equal(t, user.Librarian, u.Role)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing user", func(t *testing.T) {
		repo, mock := newMock(t)
		mock.ExpectQuery(regexp.QuoteMeta(selectUserQuery)).WithArgs(int64(9)).
			WillReturnRows(sqlmock.NewRows(userRowColumns))

		_, err := repo.Select(ctx, 9)

		require.ErrorIs(t, err, user.ErrNotFound)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepository_SelectAll_Unit(t *testing.T) {
	repo, mock := newMock(t)
	now := time.Now()

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM "users" WHERE .*ILIKE.*"role" = `).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(11))
	mock.ExpectQuery(`SELECT "id", "name", "email".* FROM "users" WHERE .* ORDER BY "id" ASC LIMIT`).
		WillReturnRows(sqlmock.NewRows(userRowColumns).
			AddRow(11, "Bia", "bia@example.com", "member", "", "", now, now))

	users, total, err := repo.SelectAll(context.Background(), user.Filter{
		Search: "bia",
		Role:   user.Member,
		Page:   page.New(2),
	})

	require.NoError(t, err)
	assert.Equal(t, int64(11), total)
	require.Len(t, users, 1)
	assert.Equal(t, user.Member, users[0].Role)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_UpdateRole_Unit(t *testing.T) {
	ctx := context.Background()

	t.Run("updated", func(t *testing.T) {
		repo, mock := newMock(t)
		mock.ExpectExec(regexp.QuoteMeta(updateRoleQuery)).
			WithArgs(user.Admin, int64(3)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, repo.UpdateRole(ctx, 3, user.Admin))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing user", func(t *testing.T) {
		repo, mock := newMock(t)
		mock.ExpectExec(regexp.QuoteMeta(updateRoleQuery)).
			WithArgs(user.Admin, int64(3)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		require.ErrorIs(t, repo.UpdateRole(ctx, 3, user.Admin), user.ErrNotFound)
	})
}

func TestRepository_Exists_Unit(t *testing.T) {
	repo, mock := newMock(t)
	mock.ExpectQuery(regexp.QuoteMeta(userExistsQuery)).WithArgs(int64(4)).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	ok, err := repo.Exists(context.Background(), 4)

	require.NoError(t, err)
	assert.True(t, ok)
}
