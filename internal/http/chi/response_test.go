package chi

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/httplog"
	"github.com/marcelsud/library-api/internal/failure"
	"github.com/stretchr/testify/assert"
)

// failWith renders err through fail behind the request logger, as the router does
func failWith(err error) *httptest.ResponseRecorder {
	logger := httplog.NewLogger("library-api-test", httplog.Options{LogLevel: "error"})
	h := httplog.RequestLogger(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fail(w, r, err)
	}))
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/books", nil))
	return w
}

func TestFail(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		code    int
		message string
	}{
		{"unclassified error is logged as 500", errors.New("connection reset"), http.StatusInternalServerError, "Internal server error"},
		{"unknown kind is logged as 500", &failure.Error{Message: "odd"}, http.StatusInternalServerError, "Internal server error"},
		{"wrapped not found", fmt.Errorf("selecting book: %w", failure.NewNotFound("Book not found")), http.StatusNotFound, "Book not found"},
		{"conflict", failure.NewConflict("Fine already paid"), http.StatusBadRequest, "Fine already paid"},
		{"validation", failure.Field("isbn", "The isbn field is required."), http.StatusUnprocessableEntity, "Validation error"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := failWith(tt.err)

			assert.Equal(t, tt.code, w.Code)
			res := parse(t, w)
			assert.False(t, res.Status)
			assert.Equal(t, tt.message, res.Message)
		})
	}
}

func TestFail_WithoutRequestLogger(t *testing.T) {
	w := httptest.NewRecorder()

	fail(w, httptest.NewRequest(http.MethodGet, "/", nil), errors.New("boom"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
