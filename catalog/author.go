package catalog

import (
	"time"

	"github.com/marcelsud/library-api/internal/calendar"
	"github.com/marcelsud/library-api/internal/page"
)

type Author struct {
	ID        int64
	Name      string
	Biography string
	BirthDate calendar.Date
	Books     []BookRef
	CreatedAt time.Time
	UpdatedAt time.Time
}

type AuthorFilter struct {
	Search    string
	Name      string
	BirthDate calendar.Date
	Page      page.Request
}

type AuthorInput struct {
	Name      string `json:"name" validate:"required,max=255"`
	Biography string `json:"biography"`
	BirthDate string `json:"birth_date" validate:"date"`
}

func (in AuthorInput) Author() Author {
	a := Author{Name: in.Name, Biography: in.Biography}
	a.BirthDate, _ = calendar.Parse(in.BirthDate)
	return a
}

// AuthorPatch leaves nil fields unchanged; an empty birth_date clears it
type AuthorPatch struct {
	Name      *string `json:"name" validate:"omitnil,filled,max=255"`
	Biography *string `json:"biography"`
	BirthDate *string `json:"birth_date" validate:"omitnil,date"`
}

func (a Author) Apply(p AuthorPatch) Author {
	if p.Name != nil {
		a.Name = *p.Name
	}
	if p.Biography != nil {
		a.Biography = *p.Biography
	}
	if p.BirthDate != nil {
		a.BirthDate, _ = calendar.Parse(*p.BirthDate)
	}
	return a
}
