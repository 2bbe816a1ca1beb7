package chi

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httplog"
	"github.com/google/uuid"
	"github.com/marcelsud/library-api/access"
	"github.com/marcelsud/library-api/internal/auth"
)

const requestIDHeader = "X-Request-ID"

// requestID keeps a caller supplied X-Request-ID or generates one, so httplog can carry it
func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(requestIDHeader, id)
		ctx := context.WithValue(r.Context(), middleware.RequestIDKey, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// TokenVerifier resolves the caller from an Authorization header
type TokenVerifier interface {
	Verify(header string) (auth.Principal, error)
}

// authenticate rejects requests without a valid bearer token
func authenticate(verifier TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			p, err := verifier.Verify(r.Header.Get("Authorization"))
			if err != nil {
				errorResponse(w, http.StatusUnauthorized, "Unauthenticated.")
				return
			}
			httplog.LogEntrySetField(r.Context(), "user_id", strconv.FormatInt(p.UserID, 10))
			next.ServeHTTP(w, r.WithContext(auth.WithPrincipal(r.Context(), p)))
		})
	}
}

// authorize lets through callers whose role the policy grants permission to
func authorize(policy *access.Loader, permission access.Permission) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			p, ok := auth.FromContext(r.Context())
			if !ok {
				errorResponse(w, http.StatusUnauthorized, "Unauthenticated.")
				return
			}
			if !policy.Allows(permission, p.Role) {
				errorResponse(w, http.StatusForbidden, "Forbidden.")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// principal is only called behind authenticate
func principal(r *http.Request) auth.Principal {
	p, _ := auth.FromContext(r.Context())
	return p
}
