package chi

import (
	"net/http"

	"github.com/marcelsud/library-api/internal/user"
	"github.com/marcelsud/library-api/internal/validation"
)

func getUsers(userService user.UseCase) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := newQuery(r)
		filter := user.Filter{Search: q.str("search"), Page: q.page()}
		if q.has("role") {
			filter.Role = user.NewRole(q.str("role"))
			if filter.Role == 0 {
				q.errs.Add("role", validation.Invalid("role"))
			}
		}
		if err := q.err(); err != nil {
			fail(w, r, err)
			return
		}
		res, err := userService.List(r.Context(), filter)
		if err != nil {
			fail(w, r, err)
			return
		}
		ok(w, newPage(res, newUserResponse))
	})
}

func getUser(userService user.UseCase) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, valid := idParam(r, "id")
		if !valid {
			fail(w, r, user.ErrNotFound)
			return
		}
		u, err := userService.Get(r.Context(), id)
		if err != nil {
			fail(w, r, err)
			return
		}
		ok(w, newUserResponse(u))
	})
}

func putUserRole(userService user.UseCase) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, valid := idParam(r, "id")
		if !valid {
			fail(w, r, user.ErrNotFound)
			return
		}
		var input user.RoleInput
		if !decode(w, r, &input) {
			return
		}
		u, err := userService.UpdateRole(r.Context(), id, input)
		if err != nil {
			fail(w, r, err)
			return
		}
		done(w, "User role updated successfully", newUserResponse(u))
	})
}
