package chi

import (
	"net/http"

	"github.com/marcelsud/library-api/catalog"
)

func getPublishers(catalogService catalog.UseCase) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := newQuery(r)
		filter := catalog.PublisherFilter{Search: q.str("search"), Page: q.page()}
		res, err := catalogService.ListPublishers(r.Context(), filter)
		if err != nil {
			fail(w, r, err)
			return
		}
		ok(w, newPage(res, newPublisherResponse))
	})
}

func getPublisher(catalogService catalog.UseCase) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, valid := idParam(r, "id")
		if !valid {
			fail(w, r, catalog.ErrPublisherNotFound)
			return
		}
		p, err := catalogService.GetPublisher(r.Context(), id)
		if err != nil {
			fail(w, r, err)
			return
		}
		ok(w, newPublisherResponse(p))
	})
}

func postPublisher(catalogService catalog.UseCase) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var input catalog.PublisherInput
		if !decode(w, r, &input) {
			return
		}
		p, err := catalogService.CreatePublisher(r.Context(), input)
		if err != nil {
			fail(w, r, err)
			return
		}
		created(w, "Publisher created successfully", newPublisherResponse(p))
	})
}

func putPublisher(catalogService catalog.UseCase) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, valid := idParam(r, "id")
		if !valid {
			fail(w, r, catalog.ErrPublisherNotFound)
			return
		}
		var patch catalog.PublisherPatch
		if !decode(w, r, &patch) {
			return
		}
		p, err := catalogService.UpdatePublisher(r.Context(), id, patch)
		if err != nil {
			fail(w, r, err)
			return
		}
		done(w, "Publisher updated successfully", newPublisherResponse(p))
	})
}

func deletePublisher(catalogService catalog.UseCase) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, valid := idParam(r, "id")
		if !valid {
			fail(w, r, catalog.ErrPublisherNotFound)
			return
		}
		if err := catalogService.DeletePublisher(r.Context(), id); err != nil {
			fail(w, r, err)
			return
		}
		done(w, "Publisher deleted successfully", nil)
	})
}
