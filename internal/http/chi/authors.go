package chi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/marcelsud/library-api/catalog"
	"github.com/marcelsud/library-api/internal/calendar"
)

func getAuthors(catalogService catalog.UseCase) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := newQuery(r)
		filter := catalog.AuthorFilter{
			Search:    q.str("search"),
			BirthDate: q.date("birth_date"),
			Page:      q.page(),
		}
		if err := q.err(); err != nil {
			fail(w, r, err)
			return
		}
		res, err := catalogService.ListAuthors(r.Context(), filter)
		if err != nil {
			fail(w, r, err)
			return
		}
		ok(w, newPage(res, newAuthorResponse))
	})
}

func getAuthorsByName(catalogService catalog.UseCase) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		filter := catalog.AuthorFilter{Name: chi.URLParam(r, "name"), Page: newQuery(r).page()}
		res, err := catalogService.FindAuthors(r.Context(), filter)
		if err != nil {
			fail(w, r, err)
			return
		}
		ok(w, newPage(res, newAuthorResponse))
	})
}

func getAuthorsByBirthDate(catalogService catalog.UseCase) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		birthDate, err := calendar.Parse(chi.URLParam(r, "birth_date"))
		if err != nil {
			fail(w, r, catalog.ErrAuthorNotFound)
			return
		}
		filter := catalog.AuthorFilter{BirthDate: birthDate, Page: newQuery(r).page()}
		res, err := catalogService.FindAuthors(r.Context(), filter)
		if err != nil {
			fail(w, r, err)
			return
		}
		ok(w, newPage(res, newAuthorResponse))
	})
}

func getAuthor(catalogService catalog.UseCase) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, valid := idParam(r, "id")
		if !valid {
			fail(w, r, catalog.ErrAuthorNotFound)
			return
		}
		a, err := catalogService.GetAuthor(r.Context(), id)
		if err != nil {
			fail(w, r, err)
			return
		}
		ok(w, newAuthorResponse(a))
	})
}

func postAuthor(catalogService catalog.UseCase) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var input catalog.AuthorInput
		if !decode(w, r, &input) {
			return
		}
		a, err := catalogService.CreateAuthor(r.Context(), input)
		if err != nil {
			fail(w, r, err)
			return
		}
		created(w, "Author created successfully", newAuthorResponse(a))
	})
}

func putAuthor(catalogService catalog.UseCase) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, valid := idParam(r, "id")
		if !valid {
			fail(w, r, catalog.ErrAuthorNotFound)
			return
		}
		var patch catalog.AuthorPatch
		if !decode(w, r, &patch) {
			return
		}
		a, err := catalogService.UpdateAuthor(r.Context(), id, patch)
		if err != nil {
			fail(w, r, err)
			return
		}
		done(w, "Author updated successfully", newAuthorResponse(a))
	})
}

func deleteAuthor(catalogService catalog.UseCase) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, valid := idParam(r, "id")
		if !valid {
			fail(w, r, catalog.ErrAuthorNotFound)
			return
		}
		if err := catalogService.DeleteAuthor(r.Context(), id); err != nil {
			fail(w, r, err)
			return
		}
		done(w, "Author deleted successfully", nil)
	})
}
