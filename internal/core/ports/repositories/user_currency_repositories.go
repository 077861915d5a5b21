package repositories

import (
	"context"

	"github.com/SscSPs/currency_board/internal/core/domain"
)

// UserCurrencyReader defines read operations for subscriptions
type UserCurrencyReader interface {
	FindUserCurrencyByID(ctx context.Context, id int64) (*domain.UserCurrency, error)
	ListUserCurrencies(ctx context.Context) ([]domain.UserCurrency, error)

	// FindUserCurrenciesByUserID returns a user's subscriptions in insertion order.
	FindUserCurrenciesByUserID(ctx context.Context, userID int64) ([]domain.UserCurrency, error)
}

// UserCurrencyWriter defines write operations for subscriptions
type UserCurrencyWriter interface {
	InsertUserCurrency(ctx context.Context, uc domain.UserCurrency) (int64, error)
	InsertUserCurrencies(ctx context.Context, ucs []domain.UserCurrency) ([]int64, error)
	DeleteUserCurrency(ctx context.Context, id int64) error
}

// UserCurrencyRepositoryFacade combines all subscription repository interfaces
type UserCurrencyRepositoryFacade interface {
	UserCurrencyReader
	UserCurrencyWriter
}
