package chi

import (
	"errors"
	"net/http"
	"testing"

	"github.com/marcelsud/library-api/catalog"
	"github.com/marcelsud/library-api/internal/failure"
	"github.com/marcelsud/library-api/internal/page"
	"github.com/marcelsud/library-api/internal/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestGetBooks(t *testing.T) {
	t.Run("filters and paginates", func(t *testing.T) {
		f := newFixture(t)
		want := catalog.BookFilter{Search: "casmurro", AuthorID: 7, Available: true, Page: page.New(2)}
		f.catalog.On("ListBooks", anyCtx, want).Return(page.NewResult([]catalog.Book{catalogBook()}, page.New(2), 11), nil)

		w := f.do(t, http.MethodGet, "/api/books?search=casmurro&author_id=7&available=true&page=2", "", 0)

		require.Equal(t, http.StatusOK, w.Code)
		res := parse(t, w)
		assert.True(t, res.Status)
		assert.Equal(t, float64(2), res.Data["current_page"])
		assert.Equal(t, float64(10), res.Data["per_page"])
		assert.Equal(t, float64(11), res.Data["total"])
		assert.Equal(t, float64(2), res.Data["last_page"])

		books := res.Data["data"].([]any)
		require.Len(t, books, 1)
		b := books[0].(map[string]any)
		assert.Equal(t, "Dom Casmurro", b["title"])
		assert.Equal(t, float64(4), b["publisher_id"])
		assert.Nil(t, b["shelf_id"])
		assert.Equal(t, "Garnier", b["publisher"].(map[string]any)["name"])
		author := b["authors"].([]any)[0].(map[string]any)
		assert.Equal(t, "1839-06-21", author["birth_date"])
	})

	t.Run("rejects a malformed filter", func(t *testing.T) {
		f := newFixture(t)

		w := f.do(t, http.MethodGet, "/api/books?category_id=abc", "", 0)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		res := parse(t, w)
		assert.Equal(t, "Validation error", res.Message)
		assert.Equal(t, []string{"The category id field must be an integer."}, res.Errors["category_id"])
	})

	t.Run("storage failure", func(t *testing.T) {
		f := newFixture(t)
		f.catalog.On("ListBooks", anyCtx, mock.Anything).Return(page.Result[catalog.Book]{}, errors.New("connection reset"))

		w := f.do(t, http.MethodGet, "/api/books", "", 0)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, "Internal server error", parse(t, w).Message)
	})
}

func TestGetBook(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		f := newFixture(t)
		f.catalog.On("GetBook", anyCtx, int64(1)).Return(catalogBook(), nil)

		w := f.do(t, http.MethodGet, "/api/books/1", "", 0)

		require.Equal(t, http.StatusOK, w.Code)
		res := parse(t, w)
		assert.Equal(t, "978-8535910663", res.Data["isbn"])
		assert.Len(t, res.Data["categories"], 1)
	})

	t.Run("missing", func(t *testing.T) {
		f := newFixture(t)
		f.catalog.On("GetBook", anyCtx, int64(99)).Return(catalog.Book{}, catalog.ErrBookNotFound)

		w := f.do(t, http.MethodGet, "/api/books/99", "", 0)

		assert.Equal(t, http.StatusNotFound, w.Code)
		res := parse(t, w)
		assert.False(t, res.Status)
		assert.Equal(t, "Book not found", res.Message)
	})

	t.Run("non numeric id", func(t *testing.T) {
		f := newFixture(t)

		w := f.do(t, http.MethodGet, "/api/books/abc", "", 0)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestPostBook(t *testing.T) {
	body := `{"title":"Dom Casmurro","isbn":"978-8535910663","publication_year":1899,"total_copies":3,"author_ids":[7],"category_ids":[2]}`

	t.Run("created", func(t *testing.T) {
		f := newFixture(t)
		f.catalog.On("CreateBook", anyCtx, mock.MatchedBy(func(in catalog.BookInput) bool {
			return in.Title == "Dom Casmurro" && *in.TotalCopies == 3 && in.AvailableCopies == nil && len(in.AuthorIDs) == 1
		})).Return(catalogBook(), nil)

		w := f.do(t, http.MethodPost, "/api/books", body, user.Librarian)

		require.Equal(t, http.StatusCreated, w.Code)
		res := parse(t, w)
		assert.Equal(t, "Book created successfully", res.Message)
		assert.Equal(t, float64(1), res.Data["id"])
	})

	t.Run("validation errors", func(t *testing.T) {
		f := newFixture(t)
		verr := failure.NewValidation(map[string][]string{
			"isbn": {"The isbn has already been taken."},
		})
		f.catalog.On("CreateBook", anyCtx, mock.Anything).Return(catalog.Book{}, verr)

		w := f.do(t, http.MethodPost, "/api/books", body, user.Admin)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		res := parse(t, w)
		assert.False(t, res.Status)
		assert.Equal(t, []string{"The isbn has already been taken."}, res.Errors["isbn"])
	})

	t.Run("malformed body", func(t *testing.T) {
		f := newFixture(t)

		w := f.do(t, http.MethodPost, "/api/books", `{"title":`, user.Admin)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Invalid request body", parse(t, w).Message)
	})
}

func TestPutBook(t *testing.T) {
	t.Run("copies on loan", func(t *testing.T) {
		f := newFixture(t)
		f.catalog.On("UpdateBook", anyCtx, int64(1), mock.MatchedBy(func(p catalog.BookPatch) bool {
			return p.TotalCopies != nil && *p.TotalCopies == 0 && p.Title == nil
		})).Return(catalog.Book{}, catalog.ErrCopiesOnLoan)

		w := f.do(t, http.MethodPut, "/api/books/1", `{"total_copies":0}`, user.Librarian)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, catalog.ErrCopiesOnLoan.Message, parse(t, w).Message)
	})

	t.Run("clears the shelf", func(t *testing.T) {
		f := newFixture(t)
		f.catalog.On("UpdateBook", anyCtx, int64(1), mock.MatchedBy(func(p catalog.BookPatch) bool {
			return p.ShelfID != nil && *p.ShelfID == 0
		})).Return(catalogBook(), nil)

		w := f.do(t, http.MethodPut, "/api/books/1", `{"shelf_id":0}`, user.Librarian)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "Book updated successfully", parse(t, w).Message)
	})
}

func TestFindBooks(t *testing.T) {
	t.Run("by author", func(t *testing.T) {
		f := newFixture(t)
		f.catalog.On("FindBooks", anyCtx, catalog.BookFilter{AuthorID: 7, Page: page.New(1)}).Return(onePage(catalogBook()), nil)

		w := f.do(t, http.MethodGet, "/api/books/author/7", "", user.Librarian)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("by name without results", func(t *testing.T) {
		f := newFixture(t)
		f.catalog.On("FindBooks", anyCtx, catalog.BookFilter{Title: "dune", Page: page.New(1)}).
			Return(onePage[catalog.Book](), catalog.ErrBookNotFound)

		w := f.do(t, http.MethodGet, "/api/books/name/dune", "", user.Librarian)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "Book not found", parse(t, w).Message)
	})
}

func TestDeleteBook(t *testing.T) {
	f := newFixture(t)
	f.catalog.On("DeleteBook", anyCtx, int64(1)).Return(nil)

	w := f.do(t, http.MethodDelete, "/api/books/1", "", user.Admin)

	require.Equal(t, http.StatusOK, w.Code)
	res := parse(t, w)
	assert.True(t, res.Status)
	assert.Equal(t, "Book deleted successfully", res.Message)
	assert.Nil(t, res.Data)
}

func TestAuthorsByBirthDate(t *testing.T) {
	t.Run("invalid date", func(t *testing.T) {
		f := newFixture(t)

		w := f.do(t, http.MethodGet, "/api/authors/birth_date/someday", "", user.Librarian)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "Author not found", parse(t, w).Message)
	})

	t.Run("found", func(t *testing.T) {
		f := newFixture(t)
		f.catalog.On("FindAuthors", anyCtx, mock.MatchedBy(func(filter catalog.AuthorFilter) bool {
			return filter.BirthDate.String() == "1839-06-21"
		})).Return(onePage(catalog.Author{ID: 7, Name: "Machado de Assis"}), nil)

		w := f.do(t, http.MethodGet, "/api/authors/birth_date/1839-06-21", "", user.Librarian)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestGetCategory_ListsBooks(t *testing.T) {
	f := newFixture(t)
	f.catalog.On("GetCategory", anyCtx, int64(3)).Return(catalogCategory(), nil)

	w := f.do(t, http.MethodGet, "/api/categories/3", "", 0)

	require.Equal(t, http.StatusOK, w.Code)
	books := parse(t, w).Data["books"].([]any)
	assert.Equal(t, "Dom Casmurro", books[0].(map[string]any)["title"])
}

func TestPostPublisher_Invalid(t *testing.T) {
	f := newFixture(t)
	f.catalog.On("CreatePublisher", anyCtx, catalog.PublisherInput{Name: "Garnier", Email: "nope"}).
		Return(catalog.Publisher{}, failure.Field("email", "The email field must be a valid email address."))

	w := f.do(t, http.MethodPost, "/api/publishers", `{"name":"Garnier","email":"nope"}`, user.Librarian)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, parse(t, w).Errors, "email")
}

func TestDeleteShelf(t *testing.T) {
	t.Run("books assigned", func(t *testing.T) {
		f := newFixture(t)
		f.catalog.On("DeleteShelf", anyCtx, int64(5)).Return(catalog.ErrShelfInUse)

		w := f.do(t, http.MethodDelete, "/api/book-shelves/5", "", user.Librarian)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Cannot delete book shelf with assigned books", parse(t, w).Message)
	})

	t.Run("deleted", func(t *testing.T) {
		f := newFixture(t)
		f.catalog.On("DeleteShelf", anyCtx, int64(5)).Return(nil)

		w := f.do(t, http.MethodDelete, "/api/book-shelves/5", "", user.Admin)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "Book shelf deleted successfully", parse(t, w).Message)
	})
}

func TestPostShelf(t *testing.T) {
	f := newFixture(t)
	f.catalog.On("CreateShelf", anyCtx, mock.MatchedBy(func(in catalog.ShelfInput) bool {
		return in.Code == "A-01" && in.Capacity != nil && *in.Capacity == 40
	})).Return(catalog.Shelf{ID: 5, Code: "A-01", Location: "Hall", Capacity: 40}, nil)

	w := f.do(t, http.MethodPost, "/api/book-shelves", `{"code":"A-01","location":"Hall","capacity":40}`, user.Librarian)

	require.Equal(t, http.StatusCreated, w.Code)
	res := parse(t, w)
	assert.Equal(t, "Book shelf created successfully", res.Message)
	assert.Equal(t, "A-01", res.Data["code"])
}
