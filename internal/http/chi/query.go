package chi

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/marcelsud/library-api/internal/calendar"
	"github.com/marcelsud/library-api/internal/failure"
	"github.com/marcelsud/library-api/internal/page"
	"github.com/marcelsud/library-api/internal/validation"
)

// query reads optional listing parameters and collects what cannot be parsed
type query struct {
	values url.Values
	errs   *failure.Error
}

func newQuery(r *http.Request) *query {
	return &query{values: r.URL.Query(), errs: failure.NewValidation(nil)}
}

func (q *query) has(name string) bool {
	return strings.TrimSpace(q.values.Get(name)) != ""
}

func (q *query) str(name string) string {
	return strings.TrimSpace(q.values.Get(name))
}

func (q *query) integer(name string) int64 {
	if !q.has(name) {
		return 0
	}
	n, err := strconv.ParseInt(q.str(name), 10, 64)
	if err != nil {
		q.errs.Add(name, validation.Integer(name))
		return 0
	}
	return n
}

func (q *query) date(name string) calendar.Date {
	if !q.has(name) {
		return calendar.Date{}
	}
	d, err := calendar.Parse(q.str(name))
	if err != nil {
		q.errs.Add(name, validation.Date(name))
	}
	return d
}

// boolean returns nil when the parameter is absent
func (q *query) boolean(name string) *bool {
	if !q.has(name) {
		return nil
	}
	switch strings.ToLower(q.str(name)) {
	case "1", "true":
		v := true
		return &v
	case "0", "false":
		v := false
		return &v
	}
	q.errs.Add(name, validation.Boolean(name))
	return nil
}

// page never fails; garbage means the first page
func (q *query) page() page.Request {
	n, _ := strconv.Atoi(q.str("page"))
	return page.New(n)
}

func (q *query) err() error {
	if q.errs.Empty() {
		return nil
	}
	return q.errs
}

// idParam parses a positive path id; ok is false for anything else
func idParam(r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id < 1 {
		return 0, false
	}
	return id, true
}
