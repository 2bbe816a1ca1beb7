package catalog

import (
	"time"

	"github.com/marcelsud/library-api/internal/page"
)

// Shelf is a physical location books are assigned to
type Shelf struct {
	ID          int64
	Code        string
	Location    string
	Capacity    int
	Description string
	Books       []BookRef
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type ShelfFilter struct {
	Search string
	Page   page.Request
}

type ShelfInput struct {
	Code        string `json:"code" validate:"required,max=50"`
	Location    string `json:"location" validate:"required,max=255"`
	Capacity    *int   `json:"capacity" validate:"required,min=1"`
	Description string `json:"description"`
}

func (in ShelfInput) Shelf() Shelf {
	return Shelf{
		Code:        in.Code,
		Location:    in.Location,
		Capacity:    *in.Capacity,
		Description: in.Description,
	}
}

type ShelfPatch struct {
	Code        *string `json:"code" validate:"omitnil,filled,max=50"`
	Location    *string `json:"location" validate:"omitnil,filled,max=255"`
	Capacity    *int    `json:"capacity" validate:"omitnil,min=1"`
	Description *string `json:"description"`
}

func (s Shelf) Apply(p ShelfPatch) Shelf {
	if p.Code != nil {
		s.Code = *p.Code
	}
	if p.Location != nil {
		s.Location = *p.Location
	}
	if p.Capacity != nil {
		s.Capacity = *p.Capacity
	}
	if p.Description != nil {
		s.Description = *p.Description
	}
	return s
}
