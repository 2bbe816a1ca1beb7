package chi

import (
	"net/http"

	"github.com/marcelsud/library-api/catalog"
)

func getShelves(catalogService catalog.UseCase) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := newQuery(r)
		filter := catalog.ShelfFilter{Search: q.str("search"), Page: q.page()}
		res, err := catalogService.ListShelves(r.Context(), filter)
		if err != nil {
			fail(w, r, err)
			return
		}
		ok(w, newPage(res, newShelfResponse))
	})
}

func getShelf(catalogService catalog.UseCase) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, valid := idParam(r, "id")
		if !valid {
			fail(w, r, catalog.ErrShelfNotFound)
			return
		}
		s, err := catalogService.GetShelf(r.Context(), id)
		if err != nil {
			fail(w, r, err)
			return
		}
		ok(w, newShelfResponse(s))
	})
}

func postShelf(catalogService catalog.UseCase) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var input catalog.ShelfInput
		if !decode(w, r, &input) {
			return
		}
		s, err := catalogService.CreateShelf(r.Context(), input)
		if err != nil {
			fail(w, r, err)
			return
		}
		created(w, "Book shelf created successfully", newShelfResponse(s))
	})
}

func putShelf(catalogService catalog.UseCase) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, valid := idParam(r, "id")
		if !valid {
			fail(w, r, catalog.ErrShelfNotFound)
			return
		}
		var patch catalog.ShelfPatch
		if !decode(w, r, &patch) {
			return
		}
		s, err := catalogService.UpdateShelf(r.Context(), id, patch)
		if err != nil {
			fail(w, r, err)
			return
		}
		done(w, "Book shelf updated successfully", newShelfResponse(s))
	})
}

// deleteShelf answers 400 while books are still assigned to the shelf
func deleteShelf(catalogService catalog.UseCase) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, valid := idParam(r, "id")
		if !valid {
			fail(w, r, catalog.ErrShelfNotFound)
			return
		}
		if err := catalogService.DeleteShelf(r.Context(), id); err != nil {
			fail(w, r, err)
			return
		}
		done(w, "Book shelf deleted successfully", nil)
	})
}
