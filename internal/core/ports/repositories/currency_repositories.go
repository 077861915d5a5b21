package repositories

import (
	"context"

	"github.com/SscSPs/currency_board/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CurrencyReader defines read operations for currency data
type CurrencyReader interface {
	// FindCurrencyByID retrieves a specific currency, or apperrors.ErrNotFound.
	FindCurrencyByID(ctx context.Context, id int64) (*domain.Currency, error)

	// ListCurrencies retrieves all currencies in insertion order.
	ListCurrencies(ctx context.Context) ([]domain.Currency, error)
}

// CurrencyWriter defines write operations for currency data
type CurrencyWriter interface {
	// InsertCurrency persists a new currency and returns its assigned ID.
	InsertCurrency(ctx context.Context, currency domain.Currency) (int64, error)

	// InsertCurrencies persists currencies atomically; IDs follow input order.
	InsertCurrencies(ctx context.Context, currencies []domain.Currency) ([]int64, error)

	// UpdateCurrencyValueByCharCode sets the value of every currency with the given code.
	// A code matching no rows is not an error.
	UpdateCurrencyValueByCharCode(ctx context.Context, charCode string, value decimal.Decimal) (int64, error)

	// UpdateCurrencyCharCode changes the char code of a currency. A missing ID is not an error.
	UpdateCurrencyCharCode(ctx context.Context, id int64, charCode string) error

	// DeleteCurrency removes a currency. A missing ID is not an error.
	DeleteCurrency(ctx context.Context, id int64) error
}

// CurrencyRepositoryFacade combines all currency-related repository interfaces
type CurrencyRepositoryFacade interface {
	CurrencyReader
	CurrencyWriter
}
