package catalog

import (
	"time"

	"github.com/marcelsud/library-api/internal/page"
)

type Publisher struct {
	ID        int64
	Name      string
	Address   string
	Phone     string
	Email     string
	Books     []BookRef
	CreatedAt time.Time
	UpdatedAt time.Time
}

type PublisherFilter struct {
	Search string
	Page   page.Request
}

type PublisherInput struct {
	Name    string `json:"name" validate:"required,max=255"`
	Address string `json:"address"`
	Phone   string `json:"phone" validate:"max=20"`
	Email   string `json:"email" validate:"omitempty,email"`
}

type PublisherPatch struct {
	Name    *string `json:"name" validate:"omitnil,filled,max=255"`
	Address *string `json:"address"`
	Phone   *string `json:"phone" validate:"omitnil,max=20"`
	Email   *string `json:"email" validate:"omitnil,email"`
}

func (p Publisher) Apply(patch PublisherPatch) Publisher {
	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.Address != nil {
		p.Address = *patch.Address
	}
	if patch.Phone != nil {
		p.Phone = *patch.Phone
	}
	if patch.Email != nil {
		p.Email = *patch.Email
	}
	return p
}
