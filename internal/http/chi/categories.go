package chi

import (
	"net/http"

	"github.com/marcelsud/library-api/catalog"
)

func getCategories(catalogService catalog.UseCase) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		filter := catalog.CategoryFilter{Page: newQuery(r).page()}
		res, err := catalogService.ListCategories(r.Context(), filter)
		if err != nil {
			fail(w, r, err)
			return
		}
		ok(w, newPage(res, newCategoryResponse))
	})
}

func getCategory(catalogService catalog.UseCase) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, valid := idParam(r, "id")
		if !valid {
			fail(w, r, catalog.ErrCategoryNotFound)
			return
		}
		c, err := catalogService.GetCategory(r.Context(), id)
		if err != nil {
			fail(w, r, err)
			return
		}
		ok(w, newCategoryResponse(c))
	})
}

func postCategory(catalogService catalog.UseCase) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var input catalog.CategoryInput
		if !decode(w, r, &input) {
			return
		}
		c, err := catalogService.CreateCategory(r.Context(), input)
		if err != nil {
			fail(w, r, err)
			return
		}
		created(w, "Category created successfully", newCategoryResponse(c))
	})
}

func putCategory(catalogService catalog.UseCase) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, valid := idParam(r, "id")
		if !valid {
			fail(w, r, catalog.ErrCategoryNotFound)
			return
		}
		var patch catalog.CategoryPatch
		if !decode(w, r, &patch) {
			return
		}
		c, err := catalogService.UpdateCategory(r.Context(), id, patch)
		if err != nil {
			fail(w, r, err)
			return
		}
		done(w, "Category updated successfully", newCategoryResponse(c))
	})
}

func deleteCategory(catalogService catalog.UseCase) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, valid := idParam(r, "id")
		if !valid {
			fail(w, r, catalog.ErrCategoryNotFound)
			return
		}
		if err := catalogService.DeleteCategory(r.Context(), id); err != nil {
			fail(w, r, err)
			return
		}
		done(w, "Category deleted successfully", nil)
	})
}
