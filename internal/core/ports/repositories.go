package ports

import (
	"context"

	"github.com/SscSPs/currency_board/internal/core/domain"
)

// RateSource provides the current exchange rates from an external feed.
// It is called once, while the store is being built.
type RateSource interface {
	FetchRates(ctx context.Context) ([]domain.Currency, error)
}

// RateSourceFunc adapts a plain function to RateSource.
type RateSourceFunc func(ctx context.Context) ([]domain.Currency, error)

// FetchRates calls f(ctx).
func (f RateSourceFunc) FetchRates(ctx context.Context) ([]domain.Currency, error) {
	return f(ctx)
}
