package catalog_test

import (
	"context"
	"errors"
	"testing"

	"github.com/marcelsud/library-api/catalog"
	"github.com/marcelsud/library-api/catalog/mocks"
	"github.com/marcelsud/library-api/internal/failure"
	"github.com/marcelsud/library-api/internal/page"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func intPtr(i int) *int       { return &i }
func strPtr(s string) *string { return &s }

func validBookInput() catalog.BookInput {
	return catalog.BookInput{
		Title:           "Vidas Secas",
		ISBN:            "978-8501",
		PublicationYear: intPtr(1938),
		TotalCopies:     intPtr(4),
		AuthorIDs:       []int64{1, 1, 2},
		CategoryIDs:     []int64{3},
	}
}

func TestCreateBook(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		repo := mocks.NewRepository(t)
		service := catalog.NewService(repo)

		repo.On("MissingAuthors", ctx, []int64{1, 2}).Return(nil, nil)
		repo.On("MissingCategories", ctx, []int64{3}).Return(nil, nil)
		repo.On("InsertBook", ctx, mock.MatchedBy(func(b catalog.Book) bool {
			return b.Title == "Vidas Secas" && b.TotalCopies == 4 && b.AvailableCopies == 4
		}), []int64{1, 2}, []int64{3}).Return(int64(7), nil)
		repo.On("SelectBook", ctx, int64(7)).Return(catalog.Book{ID: 7, Title: "Vidas Secas"}, nil)

		b, err := service.CreateBook(ctx, validBookInput())

		require.NoError(t, err)
		assert.Equal(t, int64(7), b.ID)
	})

	t.Run("required fields", func(t *testing.T) {
		repo := mocks.NewRepository(t)
		service := catalog.NewService(repo)

		_, err := service.CreateBook(ctx, catalog.BookInput{})

		fe, ok := failure.As(err)
		require.True(t, ok)
		assert.Equal(t, []string{"The title field is required."}, fe.Fields["title"])
		assert.Contains(t, fe.Fields, "isbn")
		assert.Contains(t, fe.Fields, "total_copies")
		assert.Contains(t, fe.Fields, "author_ids")
	})

	t.Run("available above total", func(t *testing.T) {
		repo := mocks.NewRepository(t)
		service := catalog.NewService(repo)
		input := validBookInput()
		input.AvailableCopies = intPtr(5)

		_, err := service.CreateBook(ctx, input)

		fe, ok := failure.As(err)
		require.True(t, ok)
		assert.Equal(t, []string{"The available copies field must be less than or equal to 4."}, fe.Fields["available_copies"])
	})

	t.Run("unknown references", func(t *testing.T) {
		repo := mocks.NewRepository(t)
		service := catalog.NewService(repo)
		input := validBookInput()
		input.ShelfID = 9

		repo.On("SelectShelf", ctx, int64(9)).Return(catalog.Shelf{}, catalog.ErrShelfNotFound)
		repo.On("MissingAuthors", ctx, []int64{1, 2}).Return([]int64{2}, nil)
		repo.On("MissingCategories", ctx, []int64{3}).Return(nil, nil)

		_, err := service.CreateBook(ctx, input)

		fe, ok := failure.As(err)
		require.True(t, ok)
		assert.Equal(t, []string{"The selected shelf id is invalid."}, fe.Fields["shelf_id"])
		assert.Equal(t, []string{"The selected author ids.1 is invalid."}, fe.Fields["author_ids.1"])
		repo.AssertNotCalled(t, "InsertBook", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestUpdateBook(t *testing.T) {
	ctx := context.Background()
	current := catalog.Book{ID: 3, Title: "Old", TotalCopies: 3, AvailableCopies: 1}

	t.Run("missing book is reported before validation", func(t *testing.T) {
		repo := mocks.NewRepository(t)
		service := catalog.NewService(repo)

		repo.On("SelectBook", ctx, int64(3)).Return(catalog.Book{}, catalog.ErrBookNotFound)

		_, err := service.UpdateBook(ctx, 3, catalog.BookPatch{Title: strPtr("")})

		require.ErrorIs(t, err, catalog.ErrBookNotFound)
	})

	t.Run("shifts available copies", func(t *testing.T) {
		repo := mocks.NewRepository(t)
		service := catalog.NewService(repo)

		repo.On("SelectBook", ctx, int64(3)).Return(current, nil).Once()
		repo.On("UpdateBook", ctx, mock.MatchedBy(func(b catalog.Book) bool {
			return b.TotalCopies == 5 && b.AvailableCopies == 3 && b.Title == "Old"
		}), []int64(nil), []int64(nil)).Return(nil)
		repo.On("SelectBook", ctx, int64(3)).Return(catalog.Book{ID: 3, TotalCopies: 5, AvailableCopies: 3}, nil).Once()

		b, err := service.UpdateBook(ctx, 3, catalog.BookPatch{TotalCopies: intPtr(5)})

		require.NoError(t, err)
		assert.Equal(t, 3, b.AvailableCopies)
	})

	t.Run("total below copies on loan", func(t *testing.T) {
		repo := mocks.NewRepository(t)
		service := catalog.NewService(repo)

		repo.On("SelectBook", ctx, int64(3)).Return(current, nil)

		_, err := service.UpdateBook(ctx, 3, catalog.BookPatch{TotalCopies: intPtr(1)})

		require.ErrorIs(t, err, catalog.ErrCopiesOnLoan)
		assert.Equal(t, failure.Conflict, failure.KindOf(err))
	})

	t.Run("blank title", func(t *testing.T) {
		repo := mocks.NewRepository(t)
		service := catalog.NewService(repo)

		repo.On("SelectBook", ctx, int64(3)).Return(current, nil)

		_, err := service.UpdateBook(ctx, 3, catalog.BookPatch{Title: strPtr("")})

		fe, ok := failure.As(err)
		require.True(t, ok)
		assert.Equal(t, []string{"The title field is required."}, fe.Fields["title"])
	})
}

func TestFindBooks(t *testing.T) {
	ctx := context.Background()
	repo := mocks.NewRepository(t)
	service := catalog.NewService(repo)
	filter := catalog.BookFilter{Title: "zzz", Page: page.New(1)}

	repo.On("SelectBooks", ctx, filter).Return([]catalog.Book{}, int64(0), nil)

	res, err := service.FindBooks(ctx, filter)

	require.ErrorIs(t, err, catalog.ErrBookNotFound)
	assert.Empty(t, res.Items)
}

func TestGetAuthor(t *testing.T) {
	ctx := context.Background()
	repo := mocks.NewRepository(t)
	service := catalog.NewService(repo)

	repo.On("SelectAuthor", ctx, int64(2)).Return(catalog.Author{ID: 2, Name: "Graciliano Ramos"}, nil)
	repo.On("SelectBookRefs", ctx, catalog.BookFilter{AuthorID: 2}).
		Return([]catalog.BookRef{{ID: 1, Title: "Vidas Secas"}}, nil)

	a, err := service.GetAuthor(ctx, 2)

	require.NoError(t, err)
	require.Len(t, a.Books, 1)
	assert.Equal(t, "Vidas Secas", a.Books[0].Title)
}

func TestCreateAuthor_InvalidDate(t *testing.T) {
	repo := mocks.NewRepository(t)
	service := catalog.NewService(repo)

	_, err := service.CreateAuthor(context.Background(), catalog.AuthorInput{Name: "X", BirthDate: "31/12/1900"})

	fe, ok := failure.As(err)
	require.True(t, ok)
	assert.Equal(t, []string{"The birth date field must be a valid date."}, fe.Fields["birth_date"])
}

func TestCreateShelf(t *testing.T) {
	ctx := context.Background()

	t.Run("capacity must be positive", func(t *testing.T) {
		repo := mocks.NewRepository(t)
		service := catalog.NewService(repo)

		_, err := service.CreateShelf(ctx, catalog.ShelfInput{Code: "A", Location: "B", Capacity: intPtr(0)})

		fe, ok := failure.As(err)
		require.True(t, ok)
		assert.Equal(t, []string{"The capacity field must be at least 1."}, fe.Fields["capacity"])
	})

	t.Run("duplicate code surfaces the repository error", func(t *testing.T) {
		repo := mocks.NewRepository(t)
		service := catalog.NewService(repo)
		taken := failure.Field("code", "The code has already been taken.")

		repo.On("InsertShelf", ctx, catalog.Shelf{Code: "A", Location: "B", Capacity: 10}).Return(int64(0), taken)

		_, err := service.CreateShelf(ctx, catalog.ShelfInput{Code: "A", Location: "B", Capacity: intPtr(10)})

		require.ErrorIs(t, err, taken)
	})
}

func TestDeleteShelf_InUse(t *testing.T) {
	ctx := context.Background()
	repo := mocks.NewRepository(t)
	service := catalog.NewService(repo)

	repo.On("DeleteShelf", ctx, int64(1)).Return(catalog.ErrShelfInUse)

	err := service.DeleteShelf(ctx, 1)

	require.ErrorIs(t, err, catalog.ErrShelfInUse)
	assert.Equal(t, failure.Conflict, failure.KindOf(err))
}

func TestListPublishers_RepositoryError(t *testing.T) {
	ctx := context.Background()
	repo := mocks.NewRepository(t)
	service := catalog.NewService(repo)
	boom := errors.New("connection refused")

	repo.On("SelectPublishers", ctx, catalog.PublisherFilter{}).Return(nil, int64(0), boom)

	_, err := service.ListPublishers(ctx, catalog.PublisherFilter{})

	require.ErrorIs(t, err, boom)
	assert.Zero(t, failure.KindOf(err))
}
