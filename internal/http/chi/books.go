package chi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/marcelsud/library-api/catalog"
)

func bookFilter(r *http.Request) (catalog.BookFilter, error) {
	q := newQuery(r)
	filter := catalog.BookFilter{
		Search:      q.str("search"),
		AuthorID:    q.integer("author_id"),
		CategoryID:  q.integer("category_id"),
		PublisherID: q.integer("publisher_id"),
		ShelfID:     q.integer("shelf_id"),
		Page:        q.page(),
	}
	if available := q.boolean("available"); available != nil {
		filter.Available = *available
	}
	return filter, q.err()
}

func getBooks(catalogService catalog.UseCase) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		filter, err := bookFilter(r)
		if err != nil {
			fail(w, r, err)
			return
		}
		res, err := catalogService.ListBooks(r.Context(), filter)
		if err != nil {
			fail(w, r, err)
			return
		}
		ok(w, newPage(res, newBookResponse))
	})
}

// findBooks serves the lookups by author, category and name, which report an empty result as 404
func findBooks(catalogService catalog.UseCase, narrow func(r *http.Request, f *catalog.BookFilter) bool) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		filter := catalog.BookFilter{Page: newQuery(r).page()}
		if !narrow(r, &filter) {
			fail(w, r, catalog.ErrBookNotFound)
			return
		}
		res, err := catalogService.FindBooks(r.Context(), filter)
		if err != nil {
			fail(w, r, err)
			return
		}
		ok(w, newPage(res, newBookResponse))
	})
}

func byAuthor(r *http.Request, f *catalog.BookFilter) bool {
	id, valid := idParam(r, "author_id")
	f.AuthorID = id
	return valid
}

func byCategory(r *http.Request, f *catalog.BookFilter) bool {
	id, valid := idParam(r, "category_id")
	f.CategoryID = id
	return valid
}

func byTitle(r *http.Request, f *catalog.BookFilter) bool {
	f.Title = chi.URLParam(r, "name")
	return f.Title != ""
}

func getBook(catalogService catalog.UseCase) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, valid := idParam(r, "id")
		if !valid {
			fail(w, r, catalog.ErrBookNotFound)
			return
		}
		b, err := catalogService.GetBook(r.Context(), id)
		if err != nil {
			fail(w, r, err)
			return
		}
		ok(w, newBookResponse(b))
	})
}

func postBook(catalogService catalog.UseCase) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var input catalog.BookInput
		if !decode(w, r, &input) {
			return
		}
		b, err := catalogService.CreateBook(r.Context(), input)
		if err != nil {
			fail(w, r, err)
			return
		}
		created(w, "Book created successfully", newBookResponse(b))
	})
}

func putBook(catalogService catalog.UseCase) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, valid := idParam(r, "id")
		if !valid {
			fail(w, r, catalog.ErrBookNotFound)
			return
		}
		var patch catalog.BookPatch
		if !decode(w, r, &patch) {
			return
		}
		b, err := catalogService.UpdateBook(r.Context(), id, patch)
		if err != nil {
			fail(w, r, err)
			return
		}
		done(w, "Book updated successfully", newBookResponse(b))
	})
}

func deleteBook(catalogService catalog.UseCase) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, valid := idParam(r, "id")
		if !valid {
			fail(w, r, catalog.ErrBookNotFound)
			return
		}
		if err := catalogService.DeleteBook(r.Context(), id); err != nil {
			fail(w, r, err)
			return
		}
		done(w, "Book deleted successfully", nil)
	})
}
