package services

import (
	"context"

	"github.com/SscSPs/currency_board/internal/core/domain"
)

// CurrencyReaderSvc defines read operations for currency data
type CurrencyReaderSvc interface {
	// GetCurrencyByID retrieves a specific currency by its ID.
	GetCurrencyByID(ctx context.Context, id int64) (*domain.Currency, error)

	// ListCurrencies retrieves all available currencies.
	ListCurrencies(ctx context.Context) ([]domain.Currency, error)
}

// CurrencyWriterSvc defines write operations for currency data
type CurrencyWriterSvc interface {
	// DeleteCurrency removes a currency; deleting a missing currency succeeds.
	DeleteCurrency(ctx context.Context, id int64) error

	// UpdateCurrencyValues applies charCode → value pairs. Pairs whose value does not
	// parse or is rejected are skipped. It returns the number of rows changed.
	UpdateCurrencyValues(ctx context.Context, values map[string]string) (int, error)
}

// CurrencySvcFacade combines all currency-related service interfaces
type CurrencySvcFacade interface {
	CurrencyReaderSvc
	CurrencyWriterSvc
}
