package chi

import (
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/httplog"
	jsoniter "github.com/json-iterator/go"
	"github.com/marcelsud/library-api/internal/failure"
	"github.com/marcelsud/library-api/internal/page"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

/* envelope is the body of every API response.
 * Data and Errors are left out when empty.
 */
type envelope struct {
	Status  bool                `json:"status"`
	Message string              `json:"message,omitempty"`
	Data    any                 `json:"data,omitempty"`
	Errors  map[string][]string `json:"errors,omitempty"`
}

// pageResponse keeps the pagination keys clients already rely on
type pageResponse[T any] struct {
	CurrentPage int   `json:"current_page"`
	Data        []T   `json:"data"`
	PerPage     int   `json:"per_page"`
	Total       int64 `json:"total"`
	LastPage    int   `json:"last_page"`
}

func newPage[T, U any](res page.Result[T], fn func(T) U) pageResponse[U] {
	p := page.Map(res, fn)
	return pageResponse[U]{
		CurrentPage: p.CurrentPage,
		Data:        p.Items,
		PerPage:     p.PerPage,
		Total:       p.Total,
		LastPage:    p.LastPage,
	}
}

func writeJSON(w http.ResponseWriter, status int, body envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func ok(w http.ResponseWriter, data any) {
	writeJSON(w, http.StatusOK, envelope{Status: true, Data: data})
}

func created(w http.ResponseWriter, message string, data any) {
	writeJSON(w, http.StatusCreated, envelope{Status: true, Message: message, Data: data})
}

func done(w http.ResponseWriter, message string, data any) {
	writeJSON(w, http.StatusOK, envelope{Status: true, Message: message, Data: data})
}

func errorResponse(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, envelope{Message: message})
}

// fail renders err; anything not classified is a storage failure and gets logged
func fail(w http.ResponseWriter, r *http.Request, err error) {
	logger := httplog.LogEntry(r.Context())
	fe, classified := failure.As(err)
	if !classified {
		logger.Error().Err(err).Msg("request failed")
		errorResponse(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	switch fe.Kind {
	case failure.Validation:
		writeJSON(w, http.StatusUnprocessableEntity, envelope{Message: fe.Message, Errors: fe.Fields})
	case failure.NotFound:
		errorResponse(w, http.StatusNotFound, fe.Message)
	case failure.Conflict:
		errorResponse(w, http.StatusBadRequest, fe.Message)
	default:
		logger.Error().Err(err).Msg("unknown failure kind")
		errorResponse(w, http.StatusInternalServerError, "Internal server error")
	}
}

// decode reads a JSON body into dst; false means a 400 was already written. An empty body leaves dst untouched.
func decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	defer r.Body.Close()
	err := json.NewDecoder(r.Body).Decode(dst)
	if err != nil && !errors.Is(err, io.EOF) {
		errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return false
	}
	return true
}
