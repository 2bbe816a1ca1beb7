package user

import "context"

type Reader interface {
	Select(ctx context.Context, id int64) (User, error)
	SelectAll(ctx context.Context, filter Filter) ([]User, int64, error)
	Exists(ctx context.Context, id int64) (bool, error)
}

type Writer interface {
	UpdateRole(ctx context.Context, id int64, role Role) error
}

type Repository interface {
	Reader
	Writer
	Close(ctx context.Context) error
}
