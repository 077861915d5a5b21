package repositories

import (
	"context"

	"github.com/SscSPs/currency_board/internal/core/domain"
)

// UserReader defines read operations for user data
type UserReader interface {
	// FindUserByID retrieves a specific user, or apperrors.ErrNotFound.
	FindUserByID(ctx context.Context, id int64) (*domain.User, error)

	// ListUsers retrieves all users in insertion order.
	ListUsers(ctx context.Context) ([]domain.User, error)
}

// UserWriter defines write operations for user data
type UserWriter interface {
	// InsertUser persists a new user and returns its assigned ID.
	InsertUser(ctx context.Context, user domain.User) (int64, error)

	// InsertUsers persists users atomically; IDs follow input order.
	InsertUsers(ctx context.Context, users []domain.User) ([]int64, error)

	// UpdateUserName renames a user. A missing ID is not an error.
	UpdateUserName(ctx context.Context, id int64, name string) error

	// DeleteUser removes a user. Subscriptions are left in place.
	DeleteUser(ctx context.Context, id int64) error
}

// UserRepositoryFacade combines all user-related repository interfaces
type UserRepositoryFacade interface {
	UserReader
	UserWriter
}
