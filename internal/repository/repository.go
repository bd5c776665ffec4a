package repository

import (
	"context"
	"database/sql"
	"errors"

	um "user_management"
)

// ErrNotFound is returned when no row has the requested id.
var ErrNotFound = errors.New("user not found")

// UserStore persists the sandbox copy of the remote users collection.
type UserStore interface {
	List(ctx context.Context) ([]um.User, error)
	Create(ctx context.Context, f um.UserFields) (um.User, error)
	Update(ctx context.Context, u um.User) (um.User, error)
	Delete(ctx context.Context, id int) error
	Count(ctx context.Context) (int, error)
}

type Repository struct {
	Users UserStore
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		Users: NewUserSQLite(db),
	}
}
