package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/marcelsud/library-api/internal/failure"
	"github.com/marcelsud/library-api/internal/page"
	"github.com/marcelsud/library-api/internal/validation"
)

type UseCase interface {
	ListBooks(ctx context.Context, filter BookFilter) (page.Result[Book], error)
	FindBooks(ctx context.Context, filter BookFilter) (page.Result[Book], error)
	GetBook(ctx context.Context, id int64) (Book, error)
	CreateBook(ctx context.Context, input BookInput) (Book, error)
	UpdateBook(ctx context.Context, id int64, patch BookPatch) (Book, error)
	DeleteBook(ctx context.Context, id int64) error

	ListAuthors(ctx context.Context, filter AuthorFilter) (page.Result[Author], error)
	FindAuthors(ctx context.Context, filter AuthorFilter) (page.Result[Author], error)
	GetAuthor(ctx context.Context, id int64) (Author, error)
	CreateAuthor(ctx context.Context, input AuthorInput) (Author, error)
	UpdateAuthor(ctx context.Context, id int64, patch AuthorPatch) (Author, error)
	DeleteAuthor(ctx context.Context, id int64) error

	ListCategories(ctx context.Context, filter CategoryFilter) (page.Result[Category], error)
	GetCategory(ctx context.Context, id int64) (Category, error)
	CreateCategory(ctx context.Context, input CategoryInput) (Category, error)
	UpdateCategory(ctx context.Context, id int64, patch CategoryPatch) (Category, error)
	DeleteCategory(ctx context.Context, id int64) error

	ListPublishers(ctx context.Context, filter PublisherFilter) (page.Result[Publisher], error)
	GetPublisher(ctx context.Context, id int64) (Publisher, error)
	CreatePublisher(ctx context.Context, input PublisherInput) (Publisher, error)
	UpdatePublisher(ctx context.Context, id int64, patch PublisherPatch) (Publisher, error)
	DeletePublisher(ctx context.Context, id int64) error

	ListShelves(ctx context.Context, filter ShelfFilter) (page.Result[Shelf], error)
	GetShelf(ctx context.Context, id int64) (Shelf, error)
	CreateShelf(ctx context.Context, input ShelfInput) (Shelf, error)
	UpdateShelf(ctx context.Context, id int64, patch ShelfPatch) (Shelf, error)
	DeleteShelf(ctx context.Context, id int64) error
}

type Service struct {
	Repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{
		Repo: repo,
	}
}

func (s *Service) ListBooks(ctx context.Context, filter BookFilter) (page.Result[Book], error) {
	books, total, err := s.Repo.SelectBooks(ctx, filter)
	if err != nil {
		return page.Result[Book]{}, fmt.Errorf("selecting books: %w", err)
	}
	return page.NewResult(books, filter.Page, total), nil
}

// FindBooks is ListBooks for lookups that report an empty result as not found
func (s *Service) FindBooks(ctx context.Context, filter BookFilter) (page.Result[Book], error) {
	res, err := s.ListBooks(ctx, filter)
	if err != nil {
		return res, err
	}
	if res.Total == 0 {
		return res, ErrBookNotFound
	}
	return res, nil
}

func (s *Service) GetBook(ctx context.Context, id int64) (Book, error) {
	b, err := s.Repo.SelectBook(ctx, id)
	if err != nil {
		return Book{}, fmt.Errorf("selecting book: %w", err)
	}
	return b, nil
}

func (s *Service) CreateBook(ctx context.Context, input BookInput) (Book, error) {
	if err := validation.Struct(input); err != nil {
		return Book{}, err
	}
	if in := input.AvailableCopies; in != nil && *in > *input.TotalCopies {
		return Book{}, failure.Field("available_copies", fmt.Sprintf(
			"The available copies field must be less than or equal to %d.", *input.TotalCopies))
	}

	authorIDs, categoryIDs := unique(input.AuthorIDs), unique(input.CategoryIDs)
	if err := s.checkReferences(ctx, input.PublisherID, input.ShelfID, authorIDs, categoryIDs); err != nil {
		return Book{}, err
	}

	id, err := s.Repo.InsertBook(ctx, input.Book(), authorIDs, categoryIDs)
	if err != nil {
		return Book{}, fmt.Errorf("inserting book: %w", err)
	}
	return s.GetBook(ctx, id)
}

func (s *Service) UpdateBook(ctx context.Context, id int64, patch BookPatch) (Book, error) {
	current, err := s.GetBook(ctx, id)
	if err != nil {
		return Book{}, err
	}
	if err := validation.Struct(patch); err != nil {
		return Book{}, err
	}

	var publisherID, shelfID int64
	if patch.PublisherID != nil {
		publisherID = *patch.PublisherID
	}
	if patch.ShelfID != nil {
		shelfID = *patch.ShelfID
	}
	authorIDs, categoryIDs := unique(patch.AuthorIDs), unique(patch.CategoryIDs)
	if err := s.checkReferences(ctx, publisherID, shelfID, authorIDs, categoryIDs); err != nil {
		return Book{}, err
	}

	updated, err := current.Apply(patch)
	if err != nil {
		return Book{}, err
	}
	if err := s.Repo.UpdateBook(ctx, updated, authorIDs, categoryIDs); err != nil {
		return Book{}, fmt.Errorf("updating book: %w", err)
	}
	return s.GetBook(ctx, id)
}

func (s *Service) DeleteBook(ctx context.Context, id int64) error {
	if err := s.Repo.DeleteBook(ctx, id); err != nil {
		return fmt.Errorf("deleting book: %w", err)
	}
	return nil
}

// checkReferences reports every referenced record that does not exist as a field error
func (s *Service) checkReferences(ctx context.Context, publisherID, shelfID int64, authorIDs, categoryIDs []int64) error {
	verr := failure.NewValidation(nil)

	if publisherID > 0 {
		_, err := s.Repo.SelectPublisher(ctx, publisherID)
		switch {
		case errors.Is(err, ErrPublisherNotFound):
			verr.Add("publisher_id", validation.Invalid("publisher_id"))
		case err != nil:
			return fmt.Errorf("selecting publisher: %w", err)
		}
	}
	if shelfID > 0 {
		_, err := s.Repo.SelectShelf(ctx, shelfID)
		switch {
		case errors.Is(err, ErrShelfNotFound):
			verr.Add("shelf_id", validation.Invalid("shelf_id"))
		case err != nil:
			return fmt.Errorf("selecting shelf: %w", err)
		}
	}
	if len(authorIDs) > 0 {
		missing, err := s.Repo.MissingAuthors(ctx, authorIDs)
		if err != nil {
			return fmt.Errorf("checking authors: %w", err)
		}
		addMissing(verr, "author_ids", authorIDs, missing)
	}
	if len(categoryIDs) > 0 {
		missing, err := s.Repo.MissingCategories(ctx, categoryIDs)
		if err != nil {
			return fmt.Errorf("checking categories: %w", err)
		}
		addMissing(verr, "category_ids", categoryIDs, missing)
	}

	if verr.Empty() {
		return nil
	}
	return verr
}

func addMissing(verr *failure.Error, field string, ids, missing []int64) {
	gone := make(map[int64]bool, len(missing))
	for _, id := range missing {
		gone[id] = true
	}
	for i, id := range ids {
		if gone[id] {
			key := fmt.Sprintf("%s.%d", field, i)
			verr.Add(key, validation.Invalid(key))
		}
	}
}

// unique keeps the first occurrence of every id; nil stays nil
func unique(ids []int64) []int64 {
	if ids == nil {
		return nil
	}
	seen := make(map[int64]bool, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	return out
}

func (s *Service) ListAuthors(ctx context.Context, filter AuthorFilter) (page.Result[Author], error) {
	authors, total, err := s.Repo.SelectAuthors(ctx, filter)
	if err != nil {
		return page.Result[Author]{}, fmt.Errorf("selecting authors: %w", err)
	}
	return page.NewResult(authors, filter.Page, total), nil
}

func (s *Service) FindAuthors(ctx context.Context, filter AuthorFilter) (page.Result[Author], error) {
	res, err := s.ListAuthors(ctx, filter)
	if err != nil {
		return res, err
	}
	if res.Total == 0 {
		return res, ErrAuthorNotFound
	}
	return res, nil
}

// GetAuthor returns the author with the books it wrote
func (s *Service) GetAuthor(ctx context.Context, id int64) (Author, error) {
	a, err := s.Repo.SelectAuthor(ctx, id)
	if err != nil {
		return Author{}, fmt.Errorf("selecting author: %w", err)
	}
	a.Books, err = s.Repo.SelectBookRefs(ctx, BookFilter{AuthorID: id})
	if err != nil {
		return Author{}, fmt.Errorf("selecting author books: %w", err)
	}
	return a, nil
}

func (s *Service) CreateAuthor(ctx context.Context, input AuthorInput) (Author, error) {
	if err := validation.Struct(input); err != nil {
		return Author{}, err
	}
	id, err := s.Repo.InsertAuthor(ctx, input.Author())
	if err != nil {
		return Author{}, fmt.Errorf("inserting author: %w", err)
	}
	return s.GetAuthor(ctx, id)
}

func (s *Service) UpdateAuthor(ctx context.Context, id int64, patch AuthorPatch) (Author, error) {
	current, err := s.Repo.SelectAuthor(ctx, id)
	if err != nil {
		return Author{}, fmt.Errorf("selecting author: %w", err)
	}
	if err := validation.Struct(patch); err != nil {
		return Author{}, err
	}
	if err := s.Repo.UpdateAuthor(ctx, current.Apply(patch)); err != nil {
		return Author{}, fmt.Errorf("updating author: %w", err)
	}
	return s.GetAuthor(ctx, id)
}

// DeleteAuthor detaches the author from its books before removing it
func (s *Service) DeleteAuthor(ctx context.Context, id int64) error {
	if err := s.Repo.DeleteAuthor(ctx, id); err != nil {
		return fmt.Errorf("deleting author: %w", err)
	}
	return nil
}

func (s *Service) ListCategories(ctx context.Context, filter CategoryFilter) (page.Result[Category], error) {
	categories, total, err := s.Repo.SelectCategories(ctx, filter)
	if err != nil {
		return page.Result[Category]{}, fmt.Errorf("selecting categories: %w", err)
	}
	return page.NewResult(categories, filter.Page, total), nil
}

func (s *Service) GetCategory(ctx context.Context, id int64) (Category, error) {
	c, err := s.Repo.SelectCategory(ctx, id)
	if err != nil {
		return Category{}, fmt.Errorf("selecting category: %w", err)
	}
	c.Books, err = s.Repo.SelectBookRefs(ctx, BookFilter{CategoryID: id})
	if err != nil {
		return Category{}, fmt.Errorf("selecting category books: %w", err)
	}
	return c, nil
}

func (s *Service) CreateCategory(ctx context.Context, input CategoryInput) (Category, error) {
	if err := validation.Struct(input); err != nil {
		return Category{}, err
	}
	id, err := s.Repo.InsertCategory(ctx, Category{Name: input.Name, Description: input.Description})
	if err != nil {
		return Category{}, fmt.Errorf("inserting category: %w", err)
	}
	return s.GetCategory(ctx, id)
}

func (s *Service) UpdateCategory(ctx context.Context, id int64, patch CategoryPatch) (Category, error) {
	current, err := s.Repo.SelectCategory(ctx, id)
	if err != nil {
		return Category{}, fmt.Errorf("selecting category: %w", err)
	}
	if err := validation.Struct(patch); err != nil {
		return Category{}, err
	}
	if err := s.Repo.UpdateCategory(ctx, current.Apply(patch)); err != nil {
		return Category{}, fmt.Errorf("updating category: %w", err)
	}
	return s.GetCategory(ctx, id)
}

func (s *Service) DeleteCategory(ctx context.Context, id int64) error {
	if err := s.Repo.DeleteCategory(ctx, id); err != nil {
		return fmt.Errorf("deleting category: %w", err)
	}
	return nil
}

func (s *Service) ListPublishers(ctx context.Context, filter PublisherFilter) (page.Result[Publisher], error) {
	publishers, total, err := s.Repo.SelectPublishers(ctx, filter)
	if err != nil {
		return page.Result[Publisher]{}, fmt.Errorf("selecting publishers: %w", err)
	}
	return page.NewResult(publishers, filter.Page, total), nil
}

func (s *Service) GetPublisher(ctx context.Context, id int64) (Publisher, error) {
	p, err := s.Repo.SelectPublisher(ctx, id)
	if err != nil {
		return Publisher{}, fmt.Errorf("selecting publisher: %w", err)
	}
	p.Books, err = s.Repo.SelectBookRefs(ctx, BookFilter{PublisherID: id})
	if err != nil {
		return Publisher{}, fmt.Errorf("selecting publisher books: %w", err)
	}
	return p, nil
}

func (s *Service) CreatePublisher(ctx context.Context, input PublisherInput) (Publisher, error) {
	if err := validation.Struct(input); err != nil {
		return Publisher{}, err
	}
	id, err := s.Repo.InsertPublisher(ctx, Publisher{
		Name:    input.Name,
		Address: input.Address,
		Phone:   input.Phone,
		Email:   input.Email,
	})
	if err != nil {
		return Publisher{}, fmt.Errorf("inserting publisher: %w", err)
	}
	return s.GetPublisher(ctx, id)
}

func (s *Service) UpdatePublisher(ctx context.Context, id int64, patch PublisherPatch) (Publisher, error) {
	current, err := s.Repo.SelectPublisher(ctx, id)
	if err != nil {
		return Publisher{}, fmt.Errorf("selecting publisher: %w", err)
	}
	if err := validation.Struct(patch); err != nil {
		return Publisher{}, err
	}
	if err := s.Repo.UpdatePublisher(ctx, current.Apply(patch)); err != nil {
		return Publisher{}, fmt.Errorf("updating publisher: %w", err)
	}
	return s.GetPublisher(ctx, id)
}

// DeletePublisher leaves its books without a publisher
func (s *Service) DeletePublisher(ctx context.Context, id int64) error {
	if err := s.Repo.DeletePublisher(ctx, id); err != nil {
		return fmt.Errorf("deleting publisher: %w", err)
	}
	return nil
}

func (s *Service) ListShelves(ctx context.Context, filter ShelfFilter) (page.Result[Shelf], error) {
	shelves, total, err := s.Repo.SelectShelves(ctx, filter)
	if err != nil {
		return page.Result[Shelf]{}, fmt.Errorf("selecting shelves: %w", err)
	}
	return page.NewResult(shelves, filter.Page, total), nil
}

func (s *Service) GetShelf(ctx context.Context, id int64) (Shelf, error) {
	sh, err := s.Repo.SelectShelf(ctx, id)
	if err != nil {
		return Shelf{}, fmt.Errorf("selecting shelf: %w", err)
	}
	sh.Books, err = s.Repo.SelectBookRefs(ctx, BookFilter{ShelfID: id})
	if err != nil {
		return Shelf{}, fmt.Errorf("selecting shelf books: %w", err)
	}
	return sh, nil
}

func (s *Service) CreateShelf(ctx context.Context, input ShelfInput) (Shelf, error) {
	if err := validation.Struct(input); err != nil {
		return Shelf{}, err
	}
	id, err := s.Repo.InsertShelf(ctx, input.Shelf())
	if err != nil {
		return Shelf{}, fmt.Errorf("inserting shelf: %w", err)
	}
	return s.GetShelf(ctx, id)
}

func (s *Service) UpdateShelf(ctx context.Context, id int64, patch ShelfPatch) (Shelf, error) {
	current, err := s.Repo.SelectShelf(ctx, id)
	if err != nil {
		return Shelf{}, fmt.Errorf("selecting shelf: %w", err)
	}
	if err := validation.Struct(patch); err != nil {
		return Shelf{}, err
	}
	if err := s.Repo.UpdateShelf(ctx, current.Apply(patch)); err != nil {
		return Shelf{}, fmt.Errorf("updating shelf: %w", err)
	}
	return s.GetShelf(ctx, id)
}

// DeleteShelf refuses while any book is assigned to the shelf
func (s *Service) DeleteShelf(ctx context.Context, id int64) error {
	if err := s.Repo.DeleteShelf(ctx, id); err != nil {
		return fmt.Errorf("deleting shelf: %w", err)
	}
	return nil
}
