package user

import (
	"bytes"
	"database/sql/driver"
	"fmt"
)

/* Role drives what a caller may do.
 * Stored as text so the database stays readable.
 */
type Role int

const (
	Admin Role = iota + 1
	Librarian
	Member
)

// String returns the string representation of the role
func (r Role) String() string {
	switch r {
	case Admin:
		return "admin"
	case Librarian:
		return "librarian"
	case Member:
		return "member"
	default:
		return "unknown"
	}
}

// NewRole creates a Role from a string, zero when unknown
func NewRole(str string) Role {
	switch str {
	case "admin":
		return Admin
	case "librarian":
		return Librarian
	case "member":
		return Member
	default:
		return 0
	}
}

// Validate checks if the role is valid
func (r Role) Validate() error {
	if r < Admin || r > Member {
		return fmt.Errorf("invalid role: %d", r)
	}
	return nil
}

// Roles lists every valid role
func Roles() []Role {
	return []Role{Admin, Librarian, Member}
}

func (r Role) MarshalJSON() ([]byte, error) {
	buffer := bytes.NewBufferString(`"`)
	buffer.WriteString(r.String())
	buffer.WriteString(`"`)
	return buffer.Bytes(), nil
}

func (r *Role) Scan(src any) error {
	switch v := src.(type) {
	case string:
		*r = NewRole(v)
	case []byte:
		*r = NewRole(string(v))
	default:
		return fmt.Errorf("cannot scan %T into user.Role", src)
	}
	return r.Validate()
}

func (r Role) Value() (driver.Value, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	return r.String(), nil
}
