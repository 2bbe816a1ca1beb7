package access

import (
	"fmt"

	"github.com/marcelsud/library-api/internal/user"
)

// Permission names a group of routes guarded together
type Permission string

const (
	CatalogManage Permission = "catalog.manage"
	LendingManage Permission = "lending.manage"
	UsersManage   Permission = "users.manage"
	SelfService   Permission = "self.service"
)

// Permissions lists every permission the API checks
func Permissions() []Permission {
	return []Permission{CatalogManage, LendingManage, UsersManage, SelfService}
}

func (p Permission) Validate() error {
	for _, known := range Permissions() {
		if p == known {
			return nil
		}
	}
	return fmt.Errorf("unknown permission: %q", string(p))
}

/* Rule maps a permission to the roles allowed to use it
 * Loaded from the policy YAML
 */
type Rule struct {
	Permission  Permission
	Description string
	Roles       []user.Role
}

// Validate checks if the rule is usable
func (r *Rule) Validate() error {
	if r.Permission == "" {
		return fmt.Errorf("permission cannot be empty")
	}
	if err := r.Permission.Validate(); err != nil {
		return err
	}
	if len(r.Roles) == 0 {
		return fmt.Errorf("permission %s must allow at least one role", r.Permission)
	}
	seen := make(map[user.Role]bool, len(r.Roles))
	for _, role := range r.Roles {
		if err := role.Validate(); err != nil {
			return fmt.Errorf("invalid role for permission %s: %w", r.Permission, err)
		}
		if seen[role] {
			return fmt.Errorf("role %s listed twice for permission %s", role, r.Permission)
		}
		seen[role] = true
	}
	return nil
}

// Allows reports whether role is granted by the rule
func (r *Rule) Allows(role user.Role) bool {
	for _, allowed := range r.Roles {
		if allowed == role {
			return true
		}
	}
	return false
}
