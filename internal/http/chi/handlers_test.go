package chi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/marcelsud/library-api/access"
	catalogmocks "github.com/marcelsud/library-api/catalog/mocks"
	"github.com/marcelsud/library-api/internal/auth"
	"github.com/marcelsud/library-api/internal/user"
	usermocks "github.com/marcelsud/library-api/internal/user/mocks"
	lendingmocks "github.com/marcelsud/library-api/lending/mocks"
	metricsmocks "github.com/marcelsud/library-api/metrics/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

/*
* Os testes usam mocks para simular os serviços; o roteamento, a autenticação e o envelope são reais.
* O repositório real é exercitado nos testes de integração de cada pacote postgres.
 */

const (
	testSecret = "test-secret"
	callerID   = int64(7)
)

type fixture struct {
	catalog *catalogmocks.UseCase
	lending *lendingmocks.UseCase
	users   *usermocks.UseCase
	stats   *metricsmocks.Collector
	handler http.Handler
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	policy, err := access.Default()
	require.NoError(t, err)

	f := &fixture{
		catalog: catalogmocks.NewUseCase(t),
		lending: lendingmocks.NewUseCase(t),
		users:   usermocks.NewUseCase(t),
		stats:   metricsmocks.NewCollector(t),
	}
	f.handler = Handlers(context.Background(), Services{
		Catalog:  f.catalog,
		Lending:  f.lending,
		Users:    f.users,
		Verifier: auth.NewVerifier(testSecret),
		Policy:   policy,
		Stats:    f.stats,
		Metrics: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("library_books_titles 3\n"))
		}),
	}, Options{LogLevel: "error"})
	return f
}

// do sends a request as a caller with role; a zero role sends no token
func (f *fixture) do(t *testing.T, method, path, body string, role user.Role) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	if role != 0 {
		token, err := auth.Issue(testSecret, auth.Principal{UserID: callerID, Role: role}, time.Hour)
		require.NoError(t, err)
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	f.handler.ServeHTTP(w, req)
	return w
}

type response struct {
	Status  bool                `json:"status"`
	Message string              `json:"message"`
	Data    map[string]any      `json:"data"`
	Errors  map[string][]string `json:"errors"`
}

func parse(t *testing.T, w *httptest.ResponseRecorder) response {
	t.Helper()
	var res response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res), w.Body.String())
	return res
}

func TestHealth(t *testing.T) {
	f := newFixture(t)

	w := f.do(t, http.MethodGet, "/health", "", 0)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"healthy"}`, w.Body.String())
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestRequestID_KeepsCallerValue(t *testing.T) {
	f := newFixture(t)
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	w := httptest.NewRecorder()

	f.handler.ServeHTTP(w, req)

	assert.Equal(t, "abc-123", w.Header().Get("X-Request-ID"))
}

func TestMetricsEndpoint(t *testing.T) {
	f := newFixture(t)

	w := f.do(t, http.MethodGet, "/metrics", "", 0)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "library_books_titles")
}

func TestAuthentication(t *testing.T) {
	f := newFixture(t)

	t.Run("missing token", func(t *testing.T) {
		w := f.do(t, http.MethodGet, "/api/profile", "", 0)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		res := parse(t, w)
		assert.False(t, res.Status)
		assert.Equal(t, "Unauthenticated.", res.Message)
	})

	t.Run("token signed with another secret", func(t *testing.T) {
		token, err := auth.Issue("other", auth.Principal{UserID: 1, Role: user.Admin}, time.Hour)
		require.NoError(t, err)
		req := httptest.NewRequest(http.MethodGet, "/api/borrows", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()

		f.handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("catalog reads are public", func(t *testing.T) {
		f.catalog.On("GetCategory", anyCtx, int64(3)).Return(catalogCategory(), nil).Once()

		w := f.do(t, http.MethodGet, "/api/categories/3", "", 0)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestAuthorization(t *testing.T) {
	tests := []struct {
		name   string
		method string
		path   string
		role   user.Role
	}{
		{"member on lending routes", http.MethodGet, "/api/borrows", user.Member},
		{"member on catalog writes", http.MethodPost, "/api/books", user.Member},
		{"member on shelves", http.MethodGet, "/api/book-shelves", user.Member},
		{"librarian on user management", http.MethodGet, "/api/users", user.Librarian},
		{"member on stats", http.MethodGet, "/api/stats", user.Member},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)

			w := f.do(t, tt.method, tt.path, `{}`, tt.role)

			assert.Equal(t, http.StatusForbidden, w.Code)
			assert.Equal(t, "Forbidden.", parse(t, w).Message)
		})
	}
}

func TestGetStats(t *testing.T) {
	f := newFixture(t)
	f.stats.On("Collect", anyCtx).Return(statsFixture(), nil)

	w := f.do(t, http.MethodGet, "/api/stats", "", user.Librarian)

	require.Equal(t, http.StatusOK, w.Code)
	res := parse(t, w)
	inventory := res.Data["inventory"].(map[string]any)
	assert.Equal(t, float64(2), inventory["on_loan"])
}
