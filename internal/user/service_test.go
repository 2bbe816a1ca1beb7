package user_test

import (
	"context"
	"errors"
	"testing"

	"github.com/marcelsud/library-api/internal/failure"
	"github.com/marcelsud/library-api/internal/page"
	"github.com/marcelsud/library-api/internal/user"
	"github.com/marcelsud/library-api/internal/user/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestList(t *testing.T) {
	ctx := context.Background()

	t.Run("wraps the page", func(t *testing.T) {
		repo := mocks.NewRepository(t)
		service := user.NewService(repo)
		filter := user.Filter{Search: "ana", Page: page.New(2)}

		repo.On("SelectAll", ctx, filter).Return([]user.User{{ID: 11, Name: "Ana"}}, int64(11), nil)

		got, err := service.List(ctx, filter)

		require.NoError(t, err)
		assert.Equal(t, 2, got.CurrentPage)
		assert.Equal(t, 2, got.LastPage)
		assert.Len(t, got.Items, 1)
	})

	t.Run("rejects an unknown role", func(t *testing.T) {
		repo := mocks.NewRepository(t)
		service := user.NewService(repo)

		_, err := service.List(ctx, user.Filter{Role: user.Role(42)})

		assert.Equal(t, failure.Validation, failure.KindOf(err))
	})
}

func TestUpdateRole(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		repo := mocks.NewRepository(t)
		service := user.NewService(repo)

		repo.On("UpdateRole", ctx, int64(5), user.Librarian).Return(nil)
		repo.On("Select", ctx, int64(5)).Return(user.User{ID: 5, Role: user.Librarian}, nil)

		u, err := service.UpdateRole(ctx, 5, user.RoleInput{Role: "librarian"})

		require.NoError(t, err)
		assert.Equal(t, user.Librarian, u.Role)
	})

	t.Run("invalid role", func(t *testing.T) {
		repo := mocks.NewRepository(t)
		service := user.NewService(repo)

		_, err := service.UpdateRole(ctx, 5, user.RoleInput{Role: "owner"})

		fe, ok := failure.As(err)
		require.True(t, ok)
		assert.Equal(t, []string{"The selected role is invalid."}, fe.Fields["role"])
	})

	t.Run("missing user", func(t *testing.T) {
		repo := mocks.NewRepository(t)
		service := user.NewService(repo)

		repo.On("UpdateRole", ctx, int64(5), user.Admin).Return(user.ErrNotFound)

		_, err := service.UpdateRole(ctx, 5, user.RoleInput{Role: "admin"})

		require.ErrorIs(t, err, user.ErrNotFound)
		assert.Equal(t, failure.NotFound, failure.KindOf(err))
	})

	t.Run("storage failure", func(t *testing.T) {
		repo := mocks.NewRepository(t)
		service := user.NewService(repo)

		repo.On("UpdateRole", ctx, int64(5), user.Admin).Return(errors.New("connection reset"))

		_, err := service.UpdateRole(ctx, 5, user.RoleInput{Role: "admin"})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "updating role")
		assert.Equal(t, failure.Kind(0), failure.KindOf(err))
	})
}

func TestRole(t *testing.T) {
	for _, r := range user.Roles() {
		assert.Equal(t, r, user.NewRole(r.String()))
		require.NoError(t, r.Validate())
	}
	assert.Error(t, user.NewRole("owner").Validate())

	out, err := user.Member.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `"member"`, string(out))
}
