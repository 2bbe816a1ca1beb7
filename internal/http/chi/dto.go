package chi

import (
	"time"

	"github.com/marcelsud/library-api/catalog"
	"github.com/marcelsud/library-api/internal/calendar"
	"github.com/marcelsud/library-api/internal/user"
	"github.com/marcelsud/library-api/lending"
)

/*
* Representam as entidades na camada web, por isso elas têm as tags json.
* As chaves seguem o contrato que os clientes da API já usam (snake_case).
 */

type bookResponse struct {
	ID              int64              `json:"id"`
	Title           string             `json:"title"`
	ISBN            string             `json:"isbn"`
	Description     string             `json:"description"`
	PublicationYear int                `json:"publication_year"`
	TotalCopies     int                `json:"total_copies"`
	AvailableCopies int                `json:"available_copies"`
	CoverImage      string             `json:"cover_image"`
	PublisherID     *int64             `json:"publisher_id"`
	ShelfID         *int64             `json:"shelf_id"`
	Publisher       *publisherResponse `json:"publisher"`
	Shelf           *shelfResponse     `json:"shelf"`
	Authors         []authorResponse   `json:"authors"`
	Categories      []categoryResponse `json:"categories"`
	CreatedAt       time.Time          `json:"created_at"`
	UpdatedAt       time.Time          `json:"updated_at"`
}

type bookRefResponse struct {
	ID              int64  `json:"id"`
	Title           string `json:"title"`
	ISBN            string `json:"isbn"`
	AvailableCopies int    `json:"available_copies"`
}

type authorResponse struct {
	ID        int64             `json:"id"`
	Name      string            `json:"name"`
	Biography string            `json:"biography"`
	BirthDate calendar.Date     `json:"birth_date"`
	Books     []bookRefResponse `json:"books,omitempty"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}

type categoryResponse struct {
	ID          int64             `json:"id"`
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Books       []bookRefResponse `json:"books,omitempty"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

type publisherResponse struct {
	ID        int64             `json:"id"`
	Name      string            `json:"name"`
	Address   string            `json:"address"`
	Phone     string            `json:"phone"`
	Email     string            `json:"email"`
	Books     []bookRefResponse `json:"books,omitempty"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}

type shelfResponse struct {
	ID          int64             `json:"id"`
	Code        string            `json:"code"`
	Location    string            `json:"location"`
	Capacity    int               `json:"capacity"`
	Description string            `json:"description"`
	Books       []bookRefResponse `json:"books,omitempty"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

type userResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Role        user.Role `json:"role"`
	PhoneNumber string    `json:"phone_number"`
	Address     string    `json:"address"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type borrowResponse struct {
	ID         int64                `json:"id"`
	UserID     int64                `json:"user_id"`
	BookID     int64                `json:"book_id"`
	BorrowDate calendar.Date        `json:"borrow_date"`
	DueDate    calendar.Date        `json:"due_date"`
	ReturnDate calendar.Date        `json:"return_date"`
	Status     lending.BorrowStatus `json:"status"`
	FineAmount int64                `json:"fine_amount"`
	Notes      string               `json:"notes"`
	User       *userResponse        `json:"user,omitempty"`
	Book       *bookRefResponse     `json:"book,omitempty"`
	Fine       *fineResponse        `json:"fine,omitempty"`
	CreatedAt  time.Time            `json:"created_at"`
	UpdatedAt  time.Time            `json:"updated_at"`
}

type reservationResponse struct {
	ID              int64                     `json:"id"`
	UserID          int64                     `json:"user_id"`
	BookID          int64                     `json:"book_id"`
	ReservationDate calendar.Date             `json:"reservation_date"`
	ExpiryDate      calendar.Date             `json:"expiry_date"`
	Status          lending.ReservationStatus `json:"status"`
	User            *userResponse             `json:"user,omitempty"`
	Book            *bookRefResponse          `json:"book,omitempty"`
	CreatedAt       time.Time                 `json:"created_at"`
	UpdatedAt       time.Time                 `json:"updated_at"`
}

type fineResponse struct {
	ID        int64           `json:"id"`
	BorrowID  int64           `json:"borrow_id"`
	UserID    int64           `json:"user_id"`
	Amount    int64           `json:"amount"`
	Reason    string          `json:"reason"`
	IsPaid    bool            `json:"is_paid"`
	PaidDate  calendar.Date   `json:"paid_date"`
	User      *userResponse   `json:"user,omitempty"`
	Borrow    *borrowResponse `json:"borrow,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// optionalID renders an unset reference as null
func optionalID(id int64) *int64 {
	if id == 0 {
		return nil
	}
	return &id
}

func newBookResponse(b catalog.Book) bookResponse {
	res := bookResponse{
		ID:              b.ID,
		Title:           b.Title,
		ISBN:            b.ISBN,
		Description:     b.Description,
		PublicationYear: b.PublicationYear,
		TotalCopies:     b.TotalCopies,
		AvailableCopies: b.AvailableCopies,
		CoverImage:      b.CoverImage,
		PublisherID:     optionalID(b.PublisherID),
		ShelfID:         optionalID(b.ShelfID),
		Authors:         make([]authorResponse, 0, len(b.Authors)),
		Categories:      make([]categoryResponse, 0, len(b.Categories)),
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}
	if b.Publisher != nil {
		p := newPublisherResponse(*b.Publisher)
		res.Publisher = &p
	}
	if b.Shelf != nil {
		s := newShelfResponse(*b.Shelf)
		res.Shelf = &s
	}
	for _, a := range b.Authors {
		res.Authors = append(res.Authors, newAuthorResponse(a))
	}
	for _, c := range b.Categories {
		res.Categories = append(res.Categories, newCategoryResponse(c))
	}
	return res
}

func newBookRefResponse(b catalog.BookRef) bookRefResponse {
	return bookRefResponse{
		ID:              b.ID,
		Title:           b.Title,
		ISBN:            b.ISBN,
		AvailableCopies: b.AvailableCopies,
	}
}

func bookRefs(books []catalog.BookRef) []bookRefResponse {
	if books == nil {
		return nil
	}
	out := make([]bookRefResponse, 0, len(books))
	for _, b := range books {
		out = append(out, newBookRefResponse(b))
	}
	return out
}

func newAuthorResponse(a catalog.Author) authorResponse {
	return authorResponse{
		ID:        a.ID,
		Name:      a.Name,
		Biography: a.Biography,
		BirthDate: a.BirthDate,
		Books:     bookRefs(a.Books),
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

func newCategoryResponse(c catalog.Category) categoryResponse {
	return categoryResponse{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		Books:       bookRefs(c.Books),
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

func newPublisherResponse(p catalog.Publisher) publisherResponse {
	return publisherResponse{
		ID:        p.ID,
		Name:      p.Name,
		Address:   p.Address,
		Phone:     p.Phone,
		Email:     p.Email,
		Books:     bookRefs(p.Books),
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

func newShelfResponse(s catalog.Shelf) shelfResponse {
	return shelfResponse{
		ID:          s.ID,
		Code:        s.Code,
		Location:    s.Location,
		Capacity:    s.Capacity,
		Description: s.Description,
		Books:       bookRefs(s.Books),
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}

func newUserResponse(u user.User) userResponse {
	return userResponse{
		ID:          u.ID,
		Name:        u.Name,
		Email:       u.Email,
		Role:        u.Role,
		PhoneNumber: u.PhoneNumber,
		Address:     u.Address,
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   u.UpdatedAt,
	}
}

func optionalUser(u *user.User) *userResponse {
	if u == nil {
		return nil
	}
	res := newUserResponse(*u)
	return &res
}

func optionalBookRef(b *catalog.BookRef) *bookRefResponse {
	if b == nil {
		return nil
	}
	res := newBookRefResponse(*b)
	return &res
}

func newBorrowResponse(b lending.Borrow) borrowResponse {
	res := borrowResponse{
		ID:         b.ID,
		UserID:     b.UserID,
		BookID:     b.BookID,
		BorrowDate: b.BorrowDate,
		DueDate:    b.DueDate,
		ReturnDate: b.ReturnDate,
		Status:     b.Status,
		FineAmount: b.FineAmount,
		Notes:      b.Notes,
		User:       optionalUser(b.User),
		Book:       optionalBookRef(b.Book),
		CreatedAt:  b.CreatedAt,
		UpdatedAt:  b.UpdatedAt,
	}
	if b.Fine != nil {
		f := newFineResponse(*b.Fine)
		res.Fine = &f
	}
	return res
}

func newReservationResponse(r lending.Reservation) reservationResponse {
	return reservationResponse{
		ID:              r.ID,
		UserID:          r.UserID,
		BookID:          r.BookID,
		ReservationDate: r.ReservationDate,
		ExpiryDate:      r.ExpiryDate,
		Status:          r.Status,
		User:            optionalUser(r.User),
		Book:            optionalBookRef(r.Book),
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
	}
}

func newFineResponse(f lending.Fine) fineResponse {
	res := fineResponse{
		ID:        f.ID,
		BorrowID:  f.BorrowID,
		UserID:    f.UserID,
		Amount:    f.Amount,
		Reason:    f.Reason,
		IsPaid:    f.IsPaid,
		PaidDate:  f.PaidDate,
		User:      optionalUser(f.User),
		CreatedAt: f.CreatedAt,
		UpdatedAt: f.UpdatedAt,
	}
	if f.Borrow != nil {
		b := newBorrowResponse(*f.Borrow)
		res.Borrow = &b
	}
	return res
}
