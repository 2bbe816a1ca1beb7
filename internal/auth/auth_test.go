package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/marcelsud/library-api/internal/auth"
	"github.com/marcelsud/library-api/internal/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const secret = "test-secret"

func sign(t *testing.T, claims jwt.MapClaims, method jwt.SigningMethod, key any) string {
	t.Helper()
	s, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)
	return s
}

func TestVerify(t *testing.T) {
	v := auth.NewVerifier(secret)

	t.Run("issued token", func(t *testing.T) {
		token, err := auth.Issue(secret, auth.Principal{UserID: 7, Role: user.Librarian}, time.Hour)
		require.NoError(t, err)

		p, err := v.Verify("Bearer " + token)

		require.NoError(t, err)
		assert.Equal(t, int64(7), p.UserID)
		assert.Equal(t, user.Librarian, p.Role)
	})

	t.Run("string subject", func(t *testing.T) {
		token := sign(t, jwt.MapClaims{"sub": "12", "role": "member"}, jwt.SigningMethodHS256, []byte(secret))

		p, err := v.Verify("bearer " + token)

		require.NoError(t, err)
		assert.Equal(t, int64(12), p.UserID)
		assert.Equal(t, user.Member, p.Role)
	})

	t.Run("missing", func(t *testing.T) {
		_, err := v.Verify("")
		require.ErrorIs(t, err, auth.ErrMissingToken)

		_, err = v.Verify("Bearer   ")
		require.ErrorIs(t, err, auth.ErrMissingToken)
	})

	t.Run("wrong secret", func(t *testing.T) {
		token := sign(t, jwt.MapClaims{"sub": 1, "role": "admin"}, jwt.SigningMethodHS256, []byte("other"))
		_, err := v.Verify("Bearer " + token)
		require.ErrorIs(t, err, auth.ErrInvalidToken)
	})

	t.Run("expired", func(t *testing.T) {
		token, err := auth.Issue(secret, auth.Principal{UserID: 1, Role: user.Admin}, -time.Hour)
		require.NoError(t, err)
		_, err = v.Verify("Bearer " + token)
		require.ErrorIs(t, err, auth.ErrInvalidToken)
	})

	t.Run("unknown role", func(t *testing.T) {
		token := sign(t, jwt.MapClaims{"sub": 1, "role": "owner"}, jwt.SigningMethodHS256, []byte(secret))
		_, err := v.Verify("Bearer " + token)
		require.ErrorIs(t, err, auth.ErrInvalidToken)
	})

	t.Run("bad subject", func(t *testing.T) {
		token := sign(t, jwt.MapClaims{"sub": "abc", "role": "admin"}, jwt.SigningMethodHS256, []byte(secret))
		_, err := v.Verify("Bearer " + token)
		require.ErrorIs(t, err, auth.ErrInvalidToken)
	})

	t.Run("other algorithm", func(t *testing.T) {
		token := sign(t, jwt.MapClaims{"sub": 1, "role": "admin"}, jwt.SigningMethodHS512, []byte(secret))
		_, err := v.Verify("Bearer " + token)
		require.ErrorIs(t, err, auth.ErrInvalidToken)
	})
}

func TestContext(t *testing.T) {
	_, ok := auth.FromContext(context.Background())
	assert.False(t, ok)

	ctx := auth.WithPrincipal(context.Background(), auth.Principal{UserID: 3, Role: user.Member})
	p, ok := auth.FromContext(ctx)
	require.True(t, ok)
	assert.Equal(t, int64(3), p.UserID)
	assert.True(t, p.Is(user.Admin, user.Member))
	assert.False(t, p.Is(user.Librarian))
}
