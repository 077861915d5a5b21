package services

import (
	"context"

	"github.com/SscSPs/currency_board/internal/core/domain"
)

// UserReaderSvc defines read operations for user data
type UserReaderSvc interface {
	// GetUserByID retrieves a user, or apperrors.ErrNotFound.
	GetUserByID(ctx context.Context, id int64) (*domain.User, error)

	// ListUsers retrieves all users.
	ListUsers(ctx context.Context) ([]domain.User, error)

	// GetUserCurrencies resolves the currencies a user is subscribed to, in subscription order.
	GetUserCurrencies(ctx context.Context, userID int64) ([]domain.Currency, error)
}

// UserSvcFacade combines all user-related service interfaces
type UserSvcFacade interface {
	UserReaderSvc
}
