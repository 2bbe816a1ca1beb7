package catalog

import "context"

/* Interfaces pequenas, compostas no Repository */

type BookReader interface {
	SelectBook(ctx context.Context, id int64) (Book, error)
	SelectBooks(ctx context.Context, filter BookFilter) ([]Book, int64, error)
	SelectBookRefs(ctx context.Context, filter BookFilter) ([]BookRef, error)
}

// BookWriter takes link ids separately; nil ids keep the current links on update
type BookWriter interface {
	InsertBook(ctx context.Context, book Book, authorIDs, categoryIDs []int64) (int64, error)
	UpdateBook(ctx context.Context, book Book, authorIDs, categoryIDs []int64) error
	DeleteBook(ctx context.Context, id int64) error
}

type AuthorReader interface {
	SelectAuthor(ctx context.Context, id int64) (Author, error)
	SelectAuthors(ctx context.Context, filter AuthorFilter) ([]Author, int64, error)
	MissingAuthors(ctx context.Context, ids []int64) ([]int64, error)
}

type AuthorWriter interface {
	InsertAuthor(ctx context.Context, author Author) (int64, error)
	UpdateAuthor(ctx context.Context, author Author) error
	DeleteAuthor(ctx context.Context, id int64) error
}

type CategoryReader interface {
	SelectCategory(ctx context.Context, id int64) (Category, error)
	SelectCategories(ctx context.Context, filter CategoryFilter) ([]Category, int64, error)
	MissingCategories(ctx context.Context, ids []int64) ([]int64, error)
}

type CategoryWriter interface {
	InsertCategory(ctx context.Context, category Category) (int64, error)
	UpdateCategory(ctx context.Context, category Category) error
	DeleteCategory(ctx context.Context, id int64) error
}

type PublisherReader interface {
	SelectPublisher(ctx context.Context, id int64) (Publisher, error)
	SelectPublishers(ctx context.Context, filter PublisherFilter) ([]Publisher, int64, error)
}

type PublisherWriter interface {
	InsertPublisher(ctx context.Context, publisher Publisher) (int64, error)
	UpdatePublisher(ctx context.Context, publisher Publisher) error
	DeletePublisher(ctx context.Context, id int64) error
}

type ShelfReader interface {
	SelectShelf(ctx context.Context, id int64) (Shelf, error)
	SelectShelves(ctx context.Context, filter ShelfFilter) ([]Shelf, int64, error)
}

// ShelfWriter.DeleteShelf returns ErrShelfInUse while a book references the shelf
type ShelfWriter interface {
	InsertShelf(ctx context.Context, shelf Shelf) (int64, error)
	UpdateShelf(ctx context.Context, shelf Shelf) error
	DeleteShelf(ctx context.Context, id int64) error
}

type Reader interface {
	BookReader
	AuthorReader
	CategoryReader
	PublisherReader
	ShelfReader
}

type Writer interface {
	BookWriter
	AuthorWriter
	CategoryWriter
	PublisherWriter
	ShelfWriter
}

type Repository interface {
	Reader
	Writer
	Close(ctx context.Context) error
}
