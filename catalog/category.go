package catalog

import (
	"time"

	"github.com/marcelsud/library-api/internal/page"
)

type Category struct {
	ID          int64
	Name        string
	Description string
	Books       []BookRef
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type CategoryFilter struct {
	Page page.Request
}

type CategoryInput struct {
	Name        string `json:"name" validate:"required,max=255"`
	Description string `json:"description"`
}

type CategoryPatch struct {
	Name        *string `json:"name" validate:"omitnil,filled,max=255"`
	Description *string `json:"description"`
}

func (c Category) Apply(p CategoryPatch) Category {
	if p.Name != nil {
		c.Name = *p.Name
	}
	if p.Description != nil {
		c.Description = *p.Description
	}
	return c
}
