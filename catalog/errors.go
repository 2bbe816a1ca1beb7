package catalog

import "github.com/marcelsud/library-api/internal/failure"

var (
	ErrBookNotFound      = failure.NewNotFound("Book not found")
	ErrAuthorNotFound    = failure.NewNotFound("Author not found")
	ErrCategoryNotFound  = failure.NewNotFound("Category not found")
	ErrPublisherNotFound = failure.NewNotFound("Publisher not found")
	ErrShelfNotFound     = failure.NewNotFound("Book shelf not found")

	ErrShelfInUse   = failure.NewConflict("Cannot delete book shelf with assigned books")
	ErrCopiesOnLoan = failure.NewConflict("Total copies cannot be lower than the copies on loan")
)
