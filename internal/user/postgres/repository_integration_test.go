//go:build integration

package postgres_test

import (
	"context"
	"testing"

	"github.com/marcelsud/library-api/internal/database/dbtest"
	"github.com/marcelsud/library-api/internal/page"
	"github.com/marcelsud/library-api/internal/user"
	"github.com/marcelsud/library-api/internal/user/postgres"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepository_Integration(t *testing.T) {
	ctx := context.Background()
	pg, cleanup := dbtest.SetupPostgresContainer(t, ctx)
	defer cleanup()

	repo := postgres.NewRepository(pg.DB)

	anaID := dbtest.InsertUser(t, ctx, pg.DB, "Ana Souza", "ana@example.com", "member")
	dbtest.InsertUser(t, ctx, pg.DB, "Bruno Lima", "bruno@example.com", "librarian")

	t.Run("search is case insensitive", func(t *testing.T) {
		users, total, err := repo.SelectAll(ctx, user.Filter{Search: "SOUZA", Page: page.New(1)})
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		require.Len(t, users, 1)
		assert.Equal(t, anaID, users[0].ID)
	})

	t.Run("role filter", func(t *testing.T) {
		users, total, err := repo.SelectAll(ctx, user.Filter{Role: user.Librarian, Page: page.New(1)})
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		assert.Equal(t, "Bruno Lima", users[0].Name)
	})

	t.Run("update role", func(t *testing.T) {
		require.NoError(t, repo.UpdateRole(ctx, anaID, user.Admin))

		u, err := repo.Select(ctx, anaID)
		require.NoError(t, err)
		assert.Equal(t, user.Admin, u.Role)

		require.ErrorIs(t, repo.UpdateRole(ctx, 999, user.Admin), user.ErrNotFound)
	})
}
