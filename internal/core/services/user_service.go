package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SscSPs/currency_board/internal/apperrors"
	"github.com/SscSPs/currency_board/internal/core/domain"
	portsrepo "github.com/SscSPs/currency_board/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/currency_board/internal/core/ports/services"
)

type userService struct {
	BaseService
	userRepo         portsrepo.UserRepositoryFacade
	userCurrencyRepo portsrepo.UserCurrencyRepositoryFacade
	currencyRepo     portsrepo.CurrencyRepositoryFacade
}

// NewUserService creates the user service.
func NewUserService(
	userRepo portsrepo.UserRepositoryFacade,
	userCurrencyRepo portsrepo.UserCurrencyRepositoryFacade,
	currencyRepo portsrepo.CurrencyRepositoryFacade,
) portssvc.UserSvcFacade {
	return &userService{
		userRepo:         userRepo,
		userCurrencyRepo: userCurrencyRepo,
		currencyRepo:     currencyRepo,
	}
}

func (s *userService) GetUserByID(ctx context.Context, id int64) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, id)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to get user", slog.Int64("user_id", id))
		}
		return nil, fmt.Errorf("failed to get user by ID in service: %w", err)
	}
	return user, nil
}

func (s *userService) ListUsers(ctx context.Context) ([]domain.User, error) {
	users, err := s.userRepo.ListUsers(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list users")
		return nil, fmt.Errorf("failed to list users in service: %w", err)
	}
	if users == nil {
		return []domain.User{}, nil
	}
	return users, nil
}

// GetUserCurrencies resolves a user's subscriptions to currencies. Subscriptions pointing
// at a deleted currency are skipped.
func (s *userService) GetUserCurrencies(ctx context.Context, userID int64) ([]domain.Currency, error) {
	subs, err := s.userCurrencyRepo.FindUserCurrenciesByUserID(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list subscriptions", slog.Int64("user_id", userID))
		return nil, fmt.Errorf("failed to list subscriptions in service: %w", err)
	}

	currencies := make([]domain.Currency, 0, len(subs))
	for _, sub := range subs {
		currency, err := s.currencyRepo.FindCurrencyByID(ctx, sub.CurrencyID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				s.LogWarn(ctx, "Subscription references a missing currency",
					slog.Int64("user_id", userID),
					slog.Int64("subscription_id", sub.ID),
					slog.Int64("currency_id", sub.CurrencyID))
				continue
			}
			s.LogError(ctx, err, "Failed to resolve subscription", slog.Int64("subscription_id", sub.ID))
			return nil, fmt.Errorf("failed to resolve subscription %d in service: %w", sub.ID, err)
		}
		currencies = append(currencies, *currency)
	}
	return currencies, nil
}
