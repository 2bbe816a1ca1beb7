package chi

import (
	"time"

	"github.com/marcelsud/library-api/catalog"
	"github.com/marcelsud/library-api/internal/calendar"
	"github.com/marcelsud/library-api/internal/page"
	"github.com/marcelsud/library-api/internal/user"
	"github.com/marcelsud/library-api/lending"
	"github.com/marcelsud/library-api/metrics"
	"github.com/stretchr/testify/mock"
)

var (
	anyCtx = mock.Anything
	stamp  = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
)

func catalogBook() catalog.Book {
	return catalog.Book{
		ID:              1,
		Title:           "Dom Casmurro",
		ISBN:            "978-8535910663",
		PublicationYear: 1899,
		TotalCopies:     3,
		AvailableCopies: 2,
		PublisherID:     4,
		Publisher:       &catalog.Publisher{ID: 4, Name: "Garnier"},
		Authors:         []catalog.Author{{ID: 7, Name: "Machado de Assis", BirthDate: calendar.New(1839, time.June, 21)}},
		Categories:      []catalog.Category{{ID: 2, Name: "Romance"}},
		CreatedAt:       stamp,
		UpdatedAt:       stamp,
	}
}

func catalogCategory() catalog.Category {
	return catalog.Category{ID: 3, Name: "Poetry", Books: []catalog.BookRef{{ID: 1, Title: "Dom Casmurro"}}}
}

func onePage[T any](items ...T) page.Result[T] {
	return page.NewResult(items, page.New(1), int64(len(items)))
}

func member() *user.User {
	return &user.User{ID: callerID, Name: "Ana", Email: "ana@example.com", Role: user.Member}
}

func openBorrow() lending.Borrow {
	return lending.Borrow{
		ID:         10,
		UserID:     callerID,
		BookID:     1,
		BorrowDate: calendar.New(2024, time.March, 1),
		DueDate:    calendar.New(2024, time.March, 15),
		Status:     lending.Borrowed,
		User:       member(),
		Book:       &catalog.BookRef{ID: 1, Title: "Dom Casmurro", AvailableCopies: 1},
		CreatedAt:  stamp,
		UpdatedAt:  stamp,
	}
}

func pendingReservation() lending.Reservation {
	return lending.Reservation{
		ID:              20,
		UserID:          callerID,
		BookID:          1,
		ReservationDate: calendar.New(2024, time.March, 1),
		ExpiryDate:      calendar.New(2024, time.March, 8),
		Status:          lending.Pending,
	}
}

func statsFixture() metrics.Metrics {
	return metrics.Metrics{
		Inventory:    metrics.InventoryMetrics{Titles: 2, TotalCopies: 5, AvailableCopies: 3, OnLoan: 2},
		BorrowCounts: map[string]int64{"borrowed": 2, "returned": 4},
		Timestamp:    stamp,
	}
}
