package user

import (
	"time"

	"github.com/marcelsud/library-api/internal/failure"
	"github.com/marcelsud/library-api/internal/page"
)

/*
* Usar o pacote de negócio user dentro de internal garante que ele vai estar protegido pois arquivos dentro de um
* diretório `internal` só podem ser importados por pacotes ancestrais.
* Os usuários são provisionados pelo serviço de identidade; aqui apenas lemos e alteramos o papel (role).
 */

// User is a library patron or staff member
type User struct {
	ID          int64
	Name        string
	Email       string
	Role        Role
	PhoneNumber string
	Address     string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Filter narrows a user listing
type Filter struct {
	Search string
	Role   Role
	Page   page.Request
}

var ErrNotFound = failure.NewNotFound("User not found")
