// Package users stores registered users keyed by their normalized login.
package users

import (
	"context"

	"github.com/dmitrijs2005/userholder/internal/users"
)

type Repository interface {
	// Create inserts user under user.Login(). It never overwrites: an existing
	// login yields common.ErrAlreadyExists.
	Create(ctx context.Context, user *users.User) (*users.User, error)
	// GetUserByLogin returns common.ErrorNotFound for unknown logins.
	GetUserByLogin(ctx context.Context, login string) (*users.User, error)
	Clear(ctx context.Context) error
}
