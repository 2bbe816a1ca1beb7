package chi

import (
	"net/http"

	"github.com/marcelsud/library-api/internal/user"
	"github.com/marcelsud/library-api/lending"
)

/*
* Rotas de autoatendimento: o usuário vem sempre do token, nunca da requisição.
 */

func getProfile(userService user.UseCase) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		u, err := userService.Get(r.Context(), principal(r).UserID)
		if err != nil {
			fail(w, r, err)
			return
		}
		ok(w, newUserResponse(u))
	})
}

func getMyBorrows(lendingService lending.UseCase) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		filter, err := borrowFilter(r)
		if err != nil {
			fail(w, r, err)
			return
		}
		filter.UserID = principal(r).UserID
		res, err := lendingService.ListBorrows(r.Context(), filter)
		if err != nil {
			fail(w, r, err)
			return
		}
		ok(w, newPage(res, newBorrowResponse))
	})
}

func getMyReservations(lendingService lending.UseCase) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		filter, err := reservationFilter(r)
		if err != nil {
			fail(w, r, err)
			return
		}
		filter.UserID = principal(r).UserID
		res, err := lendingService.ListReservations(r.Context(), filter)
		if err != nil {
			fail(w, r, err)
			return
		}
		ok(w, newPage(res, newReservationResponse))
	})
}

func getMyFines(lendingService lending.UseCase) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		filter, err := fineFilter(r)
		if err != nil {
			fail(w, r, err)
			return
		}
		filter.UserID = principal(r).UserID
		res, err := lendingService.ListFines(r.Context(), filter)
		if err != nil {
			fail(w, r, err)
			return
		}
		ok(w, newPage(res, newFineResponse))
	})
}

func postReserveBook(lendingService lending.UseCase) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var input lending.ReservationInput
		if !decode(w, r, &input) {
			return
		}
		input.UserID = principal(r).UserID
		res, err := lendingService.CreateReservation(r.Context(), input)
		if err != nil {
			fail(w, r, err)
			return
		}
		created(w, "Reservation created successfully", newReservationResponse(res))
	})
}
