package chi

import (
	"net/http"

	"github.com/marcelsud/library-api/internal/validation"
	"github.com/marcelsud/library-api/lending"
)

func reservationFilter(r *http.Request) (lending.ReservationFilter, error) {
	q := newQuery(r)
	filter := lending.ReservationFilter{
		UserID: q.integer("user_id"),
		BookID: q.integer("book_id"),
		Page:   q.page(),
	}
	if q.has("status") {
		filter.Status = lending.NewReservationStatus(q.str("status"))
		if filter.Status == 0 {
			q.errs.Add("status", validation.Invalid("status"))
		}
	}
	return filter, q.err()
}

func getReservations(lendingService lending.UseCase) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		filter, err := reservationFilter(r)
		if err != nil {
			fail(w, r, err)
			return
		}
		res, err := lendingService.ListReservations(r.Context(), filter)
		if err != nil {
			fail(w, r, err)
			return
		}
		ok(w, newPage(res, newReservationResponse))
	})
}

func getReservation(lendingService lending.UseCase) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, valid := idParam(r, "id")
		if !valid {
			fail(w, r, lending.ErrReservationNotFound)
			return
		}
		res, err := lendingService.GetReservation(r.Context(), id)
		if err != nil {
			fail(w, r, err)
			return
		}
		ok(w, newReservationResponse(res))
	})
}

func postReservation(lendingService lending.UseCase) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var input lending.ReservationInput
		if !decode(w, r, &input) {
			return
		}
		res, err := lendingService.CreateReservation(r.Context(), input)
		if err != nil {
			fail(w, r, err)
			return
		}
		created(w, "Reservation created successfully", newReservationResponse(res))
	})
}

func putReservationStatus(lendingService lending.UseCase) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, valid := idParam(r, "id")
		if !valid {
			fail(w, r, lending.ErrReservationNotFound)
			return
		}
		var input lending.StatusInput
		if !decode(w, r, &input) {
			return
		}
		res, err := lendingService.UpdateReservationStatus(r.Context(), id, input)
		if err != nil {
			fail(w, r, err)
			return
		}
		done(w, "Reservation status updated successfully", newReservationResponse(res))
	})
}

func deleteReservation(lendingService lending.UseCase) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, valid := idParam(r, "id")
		if !valid {
			fail(w, r, lending.ErrReservationNotFound)
			return
		}
		if err := lendingService.DeleteReservation(r.Context(), id); err != nil {
			fail(w, r, err)
			return
		}
		done(w, "Reservation deleted successfully", nil)
	})
}
