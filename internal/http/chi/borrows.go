package chi

import (
	"net/http"

	"github.com/marcelsud/library-api/internal/validation"
	"github.com/marcelsud/library-api/lending"
)

func borrowFilter(r *http.Request) (lending.BorrowFilter, error) {
	q := newQuery(r)
	filter := lending.BorrowFilter{
		UserID: q.integer("user_id"),
		BookID: q.integer("book_id"),
		Page:   q.page(),
	}
	if q.has("status") {
		filter.Status = lending.NewBorrowStatus(q.str("status"))
		if filter.Status == 0 {
			q.errs.Add("status", validation.Invalid("status"))
		}
	}
	// the range applies only with both ends
	if q.has("from_date") && q.has("to_date") {
		filter.From = q.date("from_date")
		filter.To = q.date("to_date")
	}
	return filter, q.err()
}

func getBorrows(lendingService lending.UseCase) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		filter, err := borrowFilter(r)
		if err != nil {
			fail(w, r, err)
			return
		}
		res, err := lendingService.ListBorrows(r.Context(), filter)
		if err != nil {
			fail(w, r, err)
			return
		}
		ok(w, newPage(res, newBorrowResponse))
	})
}

func getBorrow(lendingService lending.UseCase) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, valid := idParam(r, "id")
		if !valid {
			fail(w, r, lending.ErrBorrowNotFound)
			return
		}
		b, err := lendingService.GetBorrow(r.Context(), id)
		if err != nil {
			fail(w, r, err)
			return
		}
		ok(w, newBorrowResponse(b))
	})
}

func postBorrow(lendingService lending.UseCase) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var input lending.BorrowInput
		if !decode(w, r, &input) {
			return
		}
		b, err := lendingService.CreateBorrow(r.Context(), input)
		if err != nil {
			fail(w, r, err)
			return
		}
		created(w, "Book borrowed successfully", newBorrowResponse(b))
	})
}

func postReturn(lendingService lending.UseCase) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, valid := idParam(r, "id")
		if !valid {
			fail(w, r, lending.ErrBorrowNotFound)
			return
		}
		var input lending.ReturnInput
		if !decode(w, r, &input) {
			return
		}
		b, err := lendingService.ReturnBook(r.Context(), id, input)
		if err != nil {
			fail(w, r, err)
			return
		}
		done(w, "Book returned successfully", newBorrowResponse(b))
	})
}

func deleteBorrow(lendingService lending.UseCase) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, valid := idParam(r, "id")
		if !valid {
			fail(w, r, lending.ErrBorrowNotFound)
			return
		}
		if err := lendingService.DeleteBorrow(r.Context(), id); err != nil {
			fail(w, r, err)
			return
		}
		done(w, "Borrow record deleted successfully", nil)
	})
}
