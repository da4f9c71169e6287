package users

import (
	"context"
)

// Repository stores accounts by username. Unknown users yield
// common.ErrNotFound and a taken username common.ErrAlreadyExists.
type Repository interface {
	Create(ctx context.Context, user *User) (*User, error)
	GetUserByLogin(ctx context.Context, login string) (*User, error)
	UpdateProfile(ctx context.Context, login string, upd ProfileUpdate) (*User, error)
}
