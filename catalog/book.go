package catalog

import (
	"time"

	"github.com/marcelsud/library-api/internal/page"
)

/* Sem tags, representa um livro em relação ao negócio.
 * AvailableCopies é alterado apenas pelo empréstimo/devolução; edições do acervo
 * deslocam o contador pela mesma diferença de TotalCopies.
 */
type Book struct {
	ID              int64
	Title           string
	ISBN            string
	Description     string
	PublicationYear int
	TotalCopies     int
	AvailableCopies int
	CoverImage      string
	PublisherID     int64
	ShelfID         int64
	Publisher       *Publisher
	Shelf           *Shelf
	Authors         []Author
	Categories      []Category
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// BookRef is the short form of a book listed under an author, category, publisher or shelf
type BookRef struct {
	ID              int64
	Title           string
	ISBN            string
	AvailableCopies int
}

// BookFilter narrows a book listing; zero values are ignored
type BookFilter struct {
	Search      string
	Title       string
	AuthorID    int64
	CategoryID  int64
	PublisherID int64
	ShelfID     int64
	Available   bool
	Page        page.Request
}

// BookInput is the body of a book creation
type BookInput struct {
	Title           string  `json:"title" validate:"required,max=255"`
	ISBN            string  `json:"isbn" validate:"required,max=255"`
	Description     string  `json:"description"`
	PublicationYear *int    `json:"publication_year" validate:"required"`
	TotalCopies     *int    `json:"total_copies" validate:"required,gte=0"`
	AvailableCopies *int    `json:"available_copies" validate:"omitnil,gte=0"`
	CoverImage      string  `json:"cover_image"`
	PublisherID     int64   `json:"publisher_id" validate:"gte=0"`
	ShelfID         int64   `json:"shelf_id" validate:"gte=0"`
	AuthorIDs       []int64 `json:"author_ids" validate:"required,min=1,dive,gt=0"`
	CategoryIDs     []int64 `json:"category_ids" validate:"required,min=1,dive,gt=0"`
}

// Book builds the record to insert; available copies default to the total
func (in BookInput) Book() Book {
	b := Book{
		Title:           in.Title,
		ISBN:            in.ISBN,
		Description:     in.Description,
		PublicationYear: *in.PublicationYear,
		TotalCopies:     *in.TotalCopies,
		AvailableCopies: *in.TotalCopies,
		CoverImage:      in.CoverImage,
		PublisherID:     in.PublisherID,
		ShelfID:         in.ShelfID,
	}
	if in.AvailableCopies != nil {
		b.AvailableCopies = *in.AvailableCopies
	}
	return b
}

/* BookPatch carries only the fields present in an update.
 * PublisherID or ShelfID set to 0 clears the reference.
 * AuthorIDs and CategoryIDs, when present, replace the current links.
 */
type BookPatch struct {
	Title           *string `json:"title" validate:"omitnil,filled,max=255"`
	ISBN            *string `json:"isbn" validate:"omitnil,filled,max=255"`
	Description     *string `json:"description"`
	PublicationYear *int    `json:"publication_year"`
	TotalCopies     *int    `json:"total_copies" validate:"omitnil,gte=0"`
	CoverImage      *string `json:"cover_image"`
	PublisherID     *int64  `json:"publisher_id" validate:"omitnil,gte=0"`
	ShelfID         *int64  `json:"shelf_id" validate:"omitnil,gte=0"`
	AuthorIDs       []int64 `json:"author_ids" validate:"omitnil,min=1,dive,gt=0"`
	CategoryIDs     []int64 `json:"category_ids" validate:"omitnil,min=1,dive,gt=0"`
}

// Apply returns b with the patch applied
func (b Book) Apply(p BookPatch) (Book, error) {
	if p.Title != nil {
		b.Title = *p.Title
	}
	if p.ISBN != nil {
		b.ISBN = *p.ISBN
	}
	if p.Description != nil {
		b.Description = *p.Description
	}
	if p.PublicationYear != nil {
		b.PublicationYear = *p.PublicationYear
	}
	if p.CoverImage != nil {
		b.CoverImage = *p.CoverImage
	}
	if p.PublisherID != nil {
		b.PublisherID = *p.PublisherID
	}
	if p.ShelfID != nil {
		b.ShelfID = *p.ShelfID
	}
	if p.TotalCopies != nil {
		delta := *p.TotalCopies - b.TotalCopies
		if b.AvailableCopies+delta < 0 {
			return b, ErrCopiesOnLoan
		}
		b.AvailableCopies += delta
		b.TotalCopies = *p.TotalCopies
	}
	return b, nil
}

// OnLoan is the number of copies currently borrowed
func (b Book) OnLoan() int {
	return b.TotalCopies - b.AvailableCopies
}
