package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/SscSPs/currency_board/internal/apperrors"
	"github.com/SscSPs/currency_board/internal/core/domain"
	portsrepo "github.com/SscSPs/currency_board/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/currency_board/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

type currencyService struct {
	BaseService
	currencyRepo portsrepo.CurrencyRepositoryFacade
}

// NewCurrencyService creates the currency service.
func NewCurrencyService(currencyRepo portsrepo.CurrencyRepositoryFacade) portssvc.CurrencySvcFacade {
	return &currencyService{currencyRepo: currencyRepo}
}

func (s *currencyService) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	currencies, err := s.currencyRepo.ListCurrencies(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list currencies")
		return nil, fmt.Errorf("failed to list currencies in service: %w", err)
	}
	// Return empty slice if no currencies found, not nil
	if currencies == nil {
		return []domain.Currency{}, nil
	}
	return currencies, nil
}

func (s *currencyService) GetCurrencyByID(ctx context.Context, id int64) (*domain.Currency, error) {
	currency, err := s.currencyRepo.FindCurrencyByID(ctx, id)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to get currency", slog.Int64("currency_id", id))
		}
		return nil, fmt.Errorf("failed to get currency by ID in service: %w", err)
	}
	return currency, nil
}

func (s *currencyService) DeleteCurrency(ctx context.Context, id int64) error {
	if err := s.currencyRepo.DeleteCurrency(ctx, id); err != nil {
		s.LogError(ctx, err, "Failed to delete currency", slog.Int64("currency_id", id))
		return fmt.Errorf("failed to delete currency in service: %w", err)
	}
	s.LogInfo(ctx, "Currency deleted", slog.Int64("currency_id", id))
	return nil
}

// UpdateCurrencyValues applies each charCode=value pair independently. Values that do not
// parse as a decimal or are rejected by the currency rules are skipped; only storage
// failures abort the batch.
func (s *currencyService) UpdateCurrencyValues(ctx context.Context, values map[string]string) (int, error) {
	codes := make([]string, 0, len(values))
	for code := range values {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	updated := 0
	for _, code := range codes {
		raw := values[code]
		value, err := decimal.NewFromString(strings.TrimSpace(raw))
		if err != nil {
			s.LogDebug(ctx, "Skipping unparsable currency value", slog.String("char_code", code), slog.String("value", raw))
			continue
		}

		n, err := s.currencyRepo.UpdateCurrencyValueByCharCode(ctx, code, value)
		if err != nil {
			if errors.Is(err, apperrors.ErrValidation) {
				s.LogDebug(ctx, "Skipping rejected currency value", slog.String("char_code", code), slog.String("error", err.Error()))
				continue
			}
			s.LogError(ctx, err, "Failed to update currency value", slog.String("char_code", code))
			return updated, fmt.Errorf("failed to update currency %s in service: %w", code, err)
		}
		updated += int(n)
	}

	s.LogInfo(ctx, "Currency values updated", slog.Int("requested", len(values)), slog.Int("updated", updated))
	return updated, nil
}
