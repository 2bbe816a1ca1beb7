package chi

import (
	"net/http"

	"github.com/marcelsud/library-api/lending"
)

func fineFilter(r *http.Request) (lending.FineFilter, error) {
	q := newQuery(r)
	filter := lending.FineFilter{
		UserID:   q.integer("user_id"),
		IsPaid:   q.boolean("is_paid"),
		PaidDate: q.date("paid_date"),
		Page:     q.page(),
	}
	return filter, q.err()
}

func getFines(lendingService lending.UseCase) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		filter, err := fineFilter(r)
		if err != nil {
			fail(w, r, err)
			return
		}
		res, err := lendingService.ListFines(r.Context(), filter)
		if err != nil {
			fail(w, r, err)
			return
		}
		ok(w, newPage(res, newFineResponse))
	})
}

func getFine(lendingService lending.UseCase) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, valid := idParam(r, "id")
		if !valid {
			fail(w, r, lending.ErrFineNotFound)
			return
		}
		f, err := lendingService.GetFine(r.Context(), id)
		if err != nil {
			fail(w, r, err)
			return
		}
		ok(w, newFineResponse(f))
	})
}

func postPayFine(lendingService lending.UseCase) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, valid := idParam(r, "id")
		if !valid {
			fail(w, r, lending.ErrFineNotFound)
			return
		}
		var input lending.PayInput
		if !decode(w, r, &input) {
			return
		}
		f, err := lendingService.PayFine(r.Context(), id, input)
		if err != nil {
			fail(w, r, err)
			return
		}
		done(w, "Fine paid successfully", newFineResponse(f))
	})
}
