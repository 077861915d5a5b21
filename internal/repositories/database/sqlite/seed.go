package sqlite

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/currency_board/internal/core/domain"
	"github.com/SscSPs/currency_board/internal/core/ports"
)

// DemoUsers returns the users every fresh store starts with.
func DemoUsers() []domain.User {
	return []domain.User{
		{Name: "Vadim Kozakov"},
		{Name: "Vladimir Semenyuk"},
		{Name: "Maxim Popov"},
	}
}

// DemoSubscriptions returns the subscriptions of the demo users.
// Currency IDs follow the order of the rate feed.
func DemoSubscriptions() []domain.UserCurrency {
	return []domain.UserCurrency{
		{UserID: 1, CurrencyID: 2},
		{UserID: 1, CurrencyID: 5},
		{UserID: 1, CurrencyID: 10},

		{UserID: 2, CurrencyID: 10},
		{UserID: 2, CurrencyID: 23},
		{UserID: 2, CurrencyID: 12},

		{UserID: 3, CurrencyID: 42},
		{UserID: 3, CurrencyID: 34},
		{UserID: 3, CurrencyID: 19},
	}
}

func (s *Store) seed(ctx context.Context, logger *slog.Logger, source ports.RateSource, users []domain.User, subscriptions []domain.UserCurrency) error {
	rates, err := source.FetchRates(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch rates: %w", err)
	}

	ids, err := s.Currencies.InsertCurrencies(ctx, rates)
	if err != nil {
		return err
	}
	logger.Info("Currencies seeded from rate source", slog.Int("count", len(ids)))

	if _, err := s.Users.InsertUsers(ctx, users); err != nil {
		return err
	}
	if _, err := s.UserCurrencies.InsertUserCurrencies(ctx, subscriptions); err != nil {
		return err
	}
	logger.Debug("Demo data seeded", slog.Int("users", len(users)), slog.Int("subscriptions", len(subscriptions)))
	return nil
}
