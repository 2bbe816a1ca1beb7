package user

import (
	"context"
	"fmt"

	"github.com/marcelsud/library-api/internal/failure"
	"github.com/marcelsud/library-api/internal/page"
	"github.com/marcelsud/library-api/internal/validation"
)

type UseCase interface {
	List(ctx context.Context, filter Filter) (page.Result[User], error)
	Get(ctx context.Context, id int64) (User, error)
	UpdateRole(ctx context.Context, id int64, input RoleInput) (User, error)
}

// RoleInput is the body of a role change
type RoleInput struct {
	Role string `json:"role" validate:"required,oneof=admin librarian member"`
}

type Service struct {
	Repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{
		Repo: repo,
	}
}

func (s *Service) List(ctx context.Context, filter Filter) (page.Result[User], error) {
	if filter.Role != 0 {
		if err := filter.Role.Validate(); err != nil {
			return page.Result[User]{}, failure.Field("role", validation.Invalid("role"))
		}
	}
	users, total, err := s.Repo.SelectAll(ctx, filter)
	if err != nil {
		return page.Result[User]{}, fmt.Errorf("selecting users: %w", err)
	}
	return page.NewResult(users, filter.Page, total), nil
}

func (s *Service) Get(ctx context.Context, id int64) (User, error) {
	u, err := s.Repo.Select(ctx, id)
	if err != nil {
		return User{}, fmt.Errorf("selecting user: %w", err)
	}
	return u, nil
}

// UpdateRole changes the role of a user and returns it refreshed
func (s *Service) UpdateRole(ctx context.Context, id int64, input RoleInput) (User, error) {
	if err := validation.Struct(input); err != nil {
		return User{}, err
	}
	if err := s.Repo.UpdateRole(ctx, id, NewRole(input.Role)); err != nil {
		return User{}, fmt.Errorf("updating role: %w", err)
	}
	return s.Get(ctx, id)
}
