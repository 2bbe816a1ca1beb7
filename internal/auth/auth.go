package auth

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/marcelsud/library-api/internal/user"
)

var (
	ErrMissingToken = errors.New("missing token")
	ErrInvalidToken = errors.New("invalid token")
)

// Principal is the resolved caller of a request
type Principal struct {
	UserID int64
	Role   user.Role
}

// Is reports whether the caller holds one of roles
func (p Principal) Is(roles ...user.Role) bool {
	for _, r := range roles {
		if p.Role == r {
			return true
		}
	}
	return false
}

type principalKey struct{}

func WithPrincipal(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, p)
}

func FromContext(ctx context.Context) (Principal, bool) {
	p, ok := ctx.Value(principalKey{}).(Principal)
	return p, ok
}

/* Verifier checks bearer tokens issued by the identity service.
 * Tokens are HS256 with claims sub (user id) and role.
 */
type Verifier struct {
	secret []byte
	now    func() time.Time
}

func NewVerifier(secret string) *Verifier {
	return &Verifier{secret: []byte(secret), now: time.Now}
}

// Verify parses the value of an Authorization header
func (v *Verifier) Verify(header string) (Principal, error) {
	tokenStr := strings.TrimSpace(header)
	if scheme, rest, ok := strings.Cut(tokenStr, " "); ok && strings.EqualFold(scheme, "bearer") {
		tokenStr = strings.TrimSpace(rest)
	} else if strings.EqualFold(tokenStr, "bearer") {
		tokenStr = ""
	}
	if tokenStr == "" {
		return Principal{}, ErrMissingToken
	}

	tok, err := jwt.Parse(tokenStr, func(t *jwt.Token) (any, error) {
		return v.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(v.now))
	if err != nil {
		return Principal{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok || !tok.Valid {
		return Principal{}, ErrInvalidToken
	}

	id, err := subject(claims["sub"])
	if err != nil {
		return Principal{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	roleName, _ := claims["role"].(string)
	role := user.NewRole(roleName)
	if err := role.Validate(); err != nil {
		return Principal{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	return Principal{UserID: id, Role: role}, nil
}

func subject(v any) (int64, error) {
	switch s := v.(type) {
	case float64:
		if s > 0 && s == float64(int64(s)) {
			return int64(s), nil
		}
	case string:
		id, err := strconv.ParseInt(s, 10, 64)
		if err == nil && id > 0 {
			return id, nil
		}
	}
	return 0, fmt.Errorf("invalid subject: %v", v)
}

// Issue signs a token for p; the identity service owns issuance, this exists for tooling and tests
func Issue(secret string, p Principal, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"sub":  p.UserID,
		"role": p.Role.String(),
		"exp":  time.Now().Add(ttl).Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(secret))
}
