package chi

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httplog"
	"github.com/marcelsud/library-api/access"
	"github.com/marcelsud/library-api/catalog"
	"github.com/marcelsud/library-api/internal/user"
	"github.com/marcelsud/library-api/lending"
	"github.com/marcelsud/library-api/metrics"
)

// Services are the collaborators behind the routes
type Services struct {
	Catalog  catalog.UseCase
	Lending  lending.UseCase
	Users    user.UseCase
	Verifier TokenVerifier
	Policy   *access.Loader
	Stats    metrics.Collector
	// Metrics serves the Prometheus scrape endpoint; nil disables it
	Metrics http.Handler
}

type Options struct {
	LogJSON  bool
	LogLevel string
	Timeout  time.Duration
}

// Handlers sets up the library API routes
func Handlers(ctx context.Context, s Services, opts Options) *chi.Mux {
	logger := httplog.NewLogger("library-api", httplog.Options{
		JSON:     opts.LogJSON,
		LogLevel: opts.LogLevel,
	})
	if opts.Timeout <= 0 {
		opts.Timeout = 30 * time.Second
	}

	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(httplog.RequestLogger(logger))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(opts.Timeout))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"healthy"}`))
	})
	if s.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", s.Metrics)
	}

	r.Route("/api", func(r chi.Router) {
		// Public catalog reads
		r.Method(http.MethodGet, "/books", getBooks(s.Catalog))
		r.Method(http.MethodGet, "/books/{id}", getBook(s.Catalog))
		r.Method(http.MethodGet, "/authors", getAuthors(s.Catalog))
		r.Method(http.MethodGet, "/authors/{id}", getAuthor(s.Catalog))
		r.Method(http.MethodGet, "/categories", getCategories(s.Catalog))
		r.Method(http.MethodGet, "/categories/{id}", getCategory(s.Catalog))
		r.Method(http.MethodGet, "/publishers", getPublishers(s.Catalog))
		r.Method(http.MethodGet, "/publishers/{id}", getPublisher(s.Catalog))

		r.Group(func(r chi.Router) {
			r.Use(authenticate(s.Verifier))

			r.Group(func(r chi.Router) {
				r.Use(authorize(s.Policy, access.SelfService))
				r.Method(http.MethodGet, "/profile", getProfile(s.Users))
				r.Method(http.MethodGet, "/my-borrows", getMyBorrows(s.Lending))
				r.Method(http.MethodGet, "/my-reservations", getMyReservations(s.Lending))
				r.Method(http.MethodGet, "/my-fines", getMyFines(s.Lending))
				r.Method(http.MethodPost, "/reserve-book", postReserveBook(s.Lending))
			})

			r.Group(func(r chi.Router) {
				r.Use(authorize(s.Policy, access.CatalogManage))
				r.Method(http.MethodPost, "/books", postBook(s.Catalog))
				r.Method(http.MethodPut, "/books/{id}", putBook(s.Catalog))
				r.Method(http.MethodDelete, "/books/{id}", deleteBook(s.Catalog))
				r.Method(http.MethodGet, "/books/author/{author_id}", findBooks(s.Catalog, byAuthor))
				r.Method(http.MethodGet, "/books/category/{category_id}", findBooks(s.Catalog, byCategory))
				r.Method(http.MethodGet, "/books/name/{name}", findBooks(s.Catalog, byTitle))

				r.Method(http.MethodPost, "/authors", postAuthor(s.Catalog))
				r.Method(http.MethodPut, "/authors/{id}", putAuthor(s.Catalog))
				r.Method(http.MethodDelete, "/authors/{id}", deleteAuthor(s.Catalog))
				r.Method(http.MethodGet, "/authors/name/{name}", getAuthorsByName(s.Catalog))
				r.Method(http.MethodGet, "/authors/birth_date/{birth_date}", getAuthorsByBirthDate(s.Catalog))

				r.Method(http.MethodPost, "/categories", postCategory(s.Catalog))
				r.Method(http.MethodPut, "/categories/{id}", putCategory(s.Catalog))
				r.Method(http.MethodDelete, "/categories/{id}", deleteCategory(s.Catalog))

				r.Method(http.MethodPost, "/publishers", postPublisher(s.Catalog))
				r.Method(http.MethodPut, "/publishers/{id}", putPublisher(s.Catalog))
				r.Method(http.MethodDelete, "/publishers/{id}", deletePublisher(s.Catalog))

				r.Method(http.MethodGet, "/book-shelves", getShelves(s.Catalog))
				r.Method(http.MethodPost, "/book-shelves", postShelf(s.Catalog))
				r.Method(http.MethodGet, "/book-shelves/{id}", getShelf(s.Catalog))
				r.Method(http.MethodPut, "/book-shelves/{id}", putShelf(s.Catalog))
				r.Method(http.MethodDelete, "/book-shelves/{id}", deleteShelf(s.Catalog))
			})

			r.Group(func(r chi.Router) {
				r.Use(authorize(s.Policy, access.LendingManage))
				r.Method(http.MethodGet, "/borrows", getBorrows(s.Lending))
				r.Method(http.MethodPost, "/borrows", postBorrow(s.Lending))
				r.Method(http.MethodGet, "/borrows/{id}", getBorrow(s.Lending))
				r.Method(http.MethodPost, "/borrows/{id}/return", postReturn(s.Lending))
				r.Method(http.MethodDelete, "/borrows/{id}", deleteBorrow(s.Lending))

				r.Method(http.MethodGet, "/reservations", getReservations(s.Lending))
				r.Method(http.MethodPost, "/reservations", postReservation(s.Lending))
				r.Method(http.MethodGet, "/reservations/{id}", getReservation(s.Lending))
				r.Method(http.MethodPut, "/reservations/{id}/status", putReservationStatus(s.Lending))
				r.Method(http.MethodDelete, "/reservations/{id}", deleteReservation(s.Lending))

				r.Method(http.MethodGet, "/fines", getFines(s.Lending))
				r.Method(http.MethodGet, "/fines/{id}", getFine(s.Lending))
				r.Method(http.MethodPost, "/fines/{id}/pay", postPayFine(s.Lending))

				r.Method(http.MethodGet, "/stats", getStats(s.Stats))
			})

			r.Group(func(r chi.Router) {
				r.Use(authorize(s.Policy, access.UsersManage))
				r.Method(http.MethodGet, "/users", getUsers(s.Users))
				r.Method(http.MethodGet, "/users/{id}", getUser(s.Users))
				r.Method(http.MethodPut, "/users/{id}/role", putUserRole(s.Users))
			})
		})
	})

	return r
}
