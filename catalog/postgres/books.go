package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/doug-martin/goqu/v9"
	"github.com/doug-martin/goqu/v9/exp"
	"github.com/jmoiron/sqlx"
	"github.com/marcelsud/library-api/catalog"
	"github.com/marcelsud/library-api/internal/calendar"
)

const (
	insertBookQuery = `
		INSERT INTO books (title, isbn, description, publication_year, total_copies, available_copies,
			cover_image, publisher_id, shelf_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id
	`

	// available_copies moves by the same delta as total_copies and may never go negative
	updateBookQuery = `
		UPDATE books
		SET title = $2, isbn = $3, description = $4, publication_year = $5,
			available_copies = available_copies + ($6 - total_copies), total_copies = $6,
			cover_image = $7, publisher_id = $8, shelf_id = $9, updated_at = NOW()
		WHERE id = $1 AND available_copies + ($6 - total_copies) >= 0
	`

	bookExistsQuery     = `SELECT EXISTS (SELECT 1 FROM books WHERE id = $1)`
	deleteBookQuery     = `DELETE FROM books WHERE id = $1`
	clearBookAuthors    = `DELETE FROM book_author WHERE book_id = $1`
	clearBookCategories = `DELETE FROM book_category WHERE book_id = $1`

	selectBookAuthors = `
		SELECT ba.book_id, a.id, a.name, a.biography, a.birth_date, a.created_at, a.updated_at
		FROM book_author ba JOIN authors a ON a.id = ba.author_id
		WHERE ba.book_id IN (?)
		ORDER BY a.id
	`

	selectBookCategories = `
		SELECT bc.book_id, c.id, c.name, c.description, c.created_at, c.updated_at
		FROM book_category bc JOIN categories c ON c.id = bc.category_id
		WHERE bc.book_id IN (?)
		ORDER BY c.id
	`
)

var bookColumns = []any{
	goqu.I("b.id"),
	goqu.I("b.title"),
	goqu.I("b.isbn"),
	goqu.I("b.description"),
	goqu.I("b.publication_year"),
	goqu.I("b.total_copies"),
	goqu.I("b.available_copies"),
	goqu.I("b.cover_image"),
	goqu.I("b.publisher_id"),
	goqu.I("b.shelf_id"),
	goqu.I("b.created_at"),
	goqu.I("b.updated_at"),
	goqu.I("p.name").As("publisher_name"),
	goqu.I("p.address").As("publisher_address"),
	goqu.I("p.phone").As("publisher_phone"),
	goqu.I("p.email").As("publisher_email"),
	goqu.I("s.code").As("shelf_code"),
	goqu.I("s.location").As("shelf_location"),
	goqu.I("s.capacity").As("shelf_capacity"),
	goqu.I("s.description").As("shelf_description"),
}

type bookRow struct {
	ID               int64          `db:"id"`
	Title            string         `db:"title"`
	ISBN             string         `db:"isbn"`
	Description      string         `db:"description"`
	PublicationYear  int            `db:"publication_year"`
	TotalCopies      int            `db:"total_copies"`
	AvailableCopies  int            `db:"available_copies"`
	CoverImage       string         `db:"cover_image"`
	PublisherID      sql.NullInt64  `db:"publisher_id"`
	ShelfID          sql.NullInt64  `db:"shelf_id"`
	CreatedAt        time.Time      `db:"created_at"`
	UpdatedAt        time.Time      `db:"updated_at"`
	PublisherName    sql.NullString `db:"publisher_name"`
	PublisherAddress sql.NullString `db:"publisher_address"`
	PublisherPhone   sql.NullString `db:"publisher_phone"`
	PublisherEmail   sql.NullString `db:"publisher_email"`
	ShelfCode        sql.NullString `db:"shelf_code"`
	ShelfLocation    sql.NullString `db:"shelf_location"`
	ShelfCapacity    sql.NullInt64  `db:"shelf_capacity"`
	ShelfDescription sql.NullString `db:"shelf_description"`
}

func (r bookRow) toBook() catalog.Book {
	b := catalog.Book{
		ID:              r.ID,
		Title:           r.Title,
		ISBN:            r.ISBN,
		Description:     r.Description,
		PublicationYear: r.PublicationYear,
		TotalCopies:     r.TotalCopies,
		AvailableCopies: r.AvailableCopies,
		CoverImage:      r.CoverImage,
		PublisherID:     r.PublisherID.Int64,
		ShelfID:         r.ShelfID.Int64,
		Authors:         []catalog.Author{},
		Categories:      []catalog.Category{},
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
	}
	if r.PublisherID.Valid {
		b.Publisher = &catalog.Publisher{
			ID:      r.PublisherID.Int64,
			Name:    r.PublisherName.String,
			Address: r.PublisherAddress.String,
			Phone:   r.PublisherPhone.String,
			Email:   r.PublisherEmail.String,
		}
	}
	if r.ShelfID.Valid {
		b.Shelf = &catalog.Shelf{
			ID:          r.ShelfID.Int64,
			Code:        r.ShelfCode.String,
			Location:    r.ShelfLocation.String,
			Capacity:    int(r.ShelfCapacity.Int64),
			Description: r.ShelfDescription.String,
		}
	}
	return b
}

type bookAuthorRow struct {
	BookID    int64         `db:"book_id"`
	ID        int64         `db:"id"`
	Name      string        `db:"name"`
	Biography string        `db:"biography"`
	BirthDate calendar.Date `db:"birth_date"`
	CreatedAt time.Time     `db:"created_at"`
	UpdatedAt time.Time     `db:"updated_at"`
}

type bookCategoryRow struct {
	BookID      int64     `db:"book_id"`
	ID          int64     `db:"id"`
	Name        string    `db:"name"`
	Description string    `db:"description"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

func booksFrom() *goqu.SelectDataset {
	return dialect.From(goqu.T("books").As("b")).
		LeftJoin(goqu.T("publishers").As("p"), goqu.On(goqu.I("p.id").Eq(goqu.I("b.publisher_id")))).
		LeftJoin(goqu.T("book_shelves").As("s"), goqu.On(goqu.I("s.id").Eq(goqu.I("b.shelf_id"))))
}

func bookWhere(ds *goqu.SelectDataset, f catalog.BookFilter) *goqu.SelectDataset {
	var where []exp.Expression
	if f.Search != "" {
		where = append(where, goqu.Or(
			goqu.I("b.title").ILike(like(f.Search)),
			goqu.I("b.isbn").ILike(like(f.Search)),
			goqu.I("b.description").ILike(like(f.Search)),
		))
	}
	if f.Title != "" {
		where = append(where, goqu.I("b.title").ILike(like(f.Title)))
	}
	if f.AuthorID > 0 {
		where = append(where, goqu.I("b.id").In(
			dialect.From("book_author").Select("book_id").Where(goqu.C("author_id").Eq(f.AuthorID)),
		))
	}
	if f.CategoryID > 0 {
		where = append(where, goqu.I("b.id").In(
			dialect.From("book_category").Select("book_id").Where(goqu.C("category_id").Eq(f.CategoryID)),
		))
	}
	if f.PublisherID > 0 {
		where = append(where, goqu.I("b.publisher_id").Eq(f.PublisherID))
	}
	if f.ShelfID > 0 {
		where = append(where, goqu.I("b.shelf_id").Eq(f.ShelfID))
	}
	if f.Available {
		where = append(where, goqu.I("b.available_copies").Gt(0))
	}
	if len(where) == 0 {
		return ds
	}
	return ds.Where(where...)
}

// SelectBook busca um livro por ID com editora, estante, autores e categorias
func (r *Repository) SelectBook(ctx context.Context, id int64) (catalog.Book, error) {
	query, args, err := booksFrom().Select(bookColumns...).Where(goqu.I("b.id").Eq(id)).Prepared(true).ToSQL()
	if err != nil {
		return catalog.Book{}, fmt.Errorf("building book query: %w", err)
	}

	var row bookRow
	err = r.DB.GetContext(ctx, &row, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return catalog.Book{}, catalog.ErrBookNotFound
	}
	if err != nil {
		return catalog.Book{}, fmt.Errorf("selecting book: %w", err)
	}

	books := []catalog.Book{row.toBook()}
	if err := r.loadRelations(ctx, books); err != nil {
		return catalog.Book{}, err
	}
	return books[0], nil
}

// SelectBooks retorna uma página de livros e o total que atende ao filtro
func (r *Repository) SelectBooks(ctx context.Context, filter catalog.BookFilter) ([]catalog.Book, int64, error) {
	var rows []bookRow
	total, err := r.paginate(ctx, bookWhere(booksFrom(), filter), bookColumns, goqu.I("b.id").Asc(), filter.Page, &rows)
	if err != nil {
		return nil, 0, fmt.Errorf("selecting books: %w", err)
	}

	books := make([]catalog.Book, 0, len(rows))
	for _, row := range rows {
		books = append(books, row.toBook())
	}
	if err := r.loadRelations(ctx, books); err != nil {
		return nil, 0, err
	}
	return books, total, nil
}

func (r *Repository) SelectBookRefs(ctx context.Context, filter catalog.BookFilter) ([]catalog.BookRef, error) {
	ds := bookWhere(dialect.From(goqu.T("books").As("b")), filter).
		Select(goqu.I("b.id"), goqu.I("b.title"), goqu.I("b.isbn"), goqu.I("b.available_copies")).
		Order(goqu.I("b.id").Asc())
	query, args, err := ds.Prepared(true).ToSQL()
	if err != nil {
		return nil, fmt.Errorf("building book refs query: %w", err)
	}

	var rows []struct {
		ID              int64  `db:"id"`
		Title           string `db:"title"`
		ISBN            string `db:"isbn"`
		AvailableCopies int    `db:"available_copies"`
	}
	if err := r.DB.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("selecting book refs: %w", err)
	}

	refs := make([]catalog.BookRef, 0, len(rows))
	for _, row := range rows {
		refs = append(refs, catalog.BookRef{ID: row.ID, Title: row.Title, ISBN: row.ISBN, AvailableCopies: row.AvailableCopies})
	}
	return refs, nil
}

// loadRelations fills authors and categories with one query each, keyed by book id
func (r *Repository) loadRelations(ctx context.Context, books []catalog.Book) error {
	if len(books) == 0 {
		return nil
	}
	ids := make([]int64, 0, len(books))
	index := make(map[int64]int, len(books))
	for i, b := range books {
		ids = append(ids, b.ID)
		index[b.ID] = i
	}

	query, args, err := sqlx.In(selectBookAuthors, ids)
	if err != nil {
		return fmt.Errorf("building authors query: %w", err)
	}
	var authors []bookAuthorRow
	if err := r.DB.SelectContext(ctx, &authors, r.DB.Rebind(query), args...); err != nil {
		return fmt.Errorf("selecting book authors: %w", err)
	}
	for _, a := range authors {
		i := index[a.BookID]
		books[i].Authors = append(books[i].Authors, catalog.Author{
			ID:        a.ID,
			Name:      a.Name,
			Biography: a.Biography,
			BirthDate: a.BirthDate,
			CreatedAt: a.CreatedAt,
			UpdatedAt: a.UpdatedAt,
		})
	}

	query, args, err = sqlx.In(selectBookCategories, ids)
	if err != nil {
		return fmt.Errorf("building categories query: %w", err)
	}
	var categories []bookCategoryRow
	if err := r.DB.SelectContext(ctx, &categories, r.DB.Rebind(query), args...); err != nil {
		return fmt.Errorf("selecting book categories: %w", err)
	}
	for _, c := range categories {
		i := index[c.BookID]
		books[i].Categories = append(books[i].Categories, catalog.Category{
			ID:          c.ID,
			Name:        c.Name,
			Description: c.Description,
			CreatedAt:   c.CreatedAt,
			UpdatedAt:   c.UpdatedAt,
		})
	}
	return nil
}

// InsertBook insere o livro e seus vínculos em uma transação
func (r *Repository) InsertBook(ctx context.Context, b catalog.Book, authorIDs, categoryIDs []int64) (int64, error) {
	tx, err := r.DB.BeginTxx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("beginning transaction: %w", err)
	}

	var id int64
	err = tx.QueryRowxContext(ctx, insertBookQuery,
		b.Title, b.ISBN, b.Description, b.PublicationYear, b.TotalCopies, b.AvailableCopies,
		b.CoverImage, nullID(b.PublisherID), nullID(b.ShelfID),
	).Scan(&id)
	if err != nil {
		return 0, rollback(tx, translate(err))
	}

	if err := link(ctx, tx, "book_author", "author_id", id, authorIDs); err != nil {
		return 0, rollback(tx, err)
	}
	if err := link(ctx, tx, "book_category", "category_id", id, categoryIDs); err != nil {
		return 0, rollback(tx, err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing book: %w", err)
	}
	return id, nil
}

// UpdateBook atualiza os campos do livro e, quando informados, sincroniza os vínculos
func (r *Repository) UpdateBook(ctx context.Context, b catalog.Book, authorIDs, categoryIDs []int64) error {
	tx, err := r.DB.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}

	result, err := tx.ExecContext(ctx, updateBookQuery,
		b.ID, b.Title, b.ISBN, b.Description, b.PublicationYear, b.TotalCopies,
		b.CoverImage, nullID(b.PublisherID), nullID(b.ShelfID),
	)
	if err != nil {
		return rollback(tx, translate(err))
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return rollback(tx, fmt.Errorf("getting rows affected: %w", err))
	}
	if rows == 0 {
		var exists bool
		if err := tx.GetContext(ctx, &exists, bookExistsQuery, b.ID); err != nil {
			return rollback(tx, fmt.Errorf("checking book: %w", err))
		}
		if exists {
			return rollback(tx, catalog.ErrCopiesOnLoan)
		}
		return rollback(tx, catalog.ErrBookNotFound)
	}

	if authorIDs != nil {
		if _, err := tx.ExecContext(ctx, clearBookAuthors, b.ID); err != nil {
			return rollback(tx, fmt.Errorf("clearing book authors: %w", err))
		}
		if err := link(ctx, tx, "book_author", "author_id", b.ID, authorIDs); err != nil {
			return rollback(tx, err)
		}
	}
	if categoryIDs != nil {
		if _, err := tx.ExecContext(ctx, clearBookCategories, b.ID); err != nil {
			return rollback(tx, fmt.Errorf("clearing book categories: %w", err))
		}
		if err := link(ctx, tx, "book_category", "category_id", b.ID, categoryIDs); err != nil {
			return rollback(tx, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing book: %w", err)
	}
	return nil
}

// DeleteBook remove o livro; vínculos, empréstimos, multas e reservas caem em cascata
func (r *Repository) DeleteBook(ctx context.Context, id int64) error {
	if err := exec(ctx, r.DB, catalog.ErrBookNotFound, deleteBookQuery, id); err != nil {
		return fmt.Errorf("deleting book: %w", err)
	}
	return nil
}

// link inserts the pivot rows of a book
func link(ctx context.Context, tx *sqlx.Tx, table, column string, bookID int64, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}
	rows := make([][]any, 0, len(ids))
	for _, id := range ids {
		rows = append(rows, []any{bookID, id})
	}
	query, args, err := dialect.Insert(table).Cols("book_id", column).Vals(rows...).Prepared(true).ToSQL()
	if err != nil {
		return fmt.Errorf("building %s insert: %w", table, err)
	}
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return translate(err)
	}
	return nil
}
