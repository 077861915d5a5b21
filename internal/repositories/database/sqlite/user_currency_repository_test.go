package sqlite_test

import (
	"context"
	"testing"

	"github.com/SscSPs/currency_board/internal/apperrors"
	"github.com/SscSPs/currency_board/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserCurrencyRepository_FindByUserID(t *testing.T) {
	ctx := context.Background()
	repo := newTestStore(t).UserCurrencies

	_, err := repo.InsertUserCurrencies(ctx, []domain.UserCurrency{
		{UserID: 1, CurrencyID: 7},
		{UserID: 2, CurrencyID: 3},
		{UserID: 1, CurrencyID: 4},
	})
	require.NoError(t, err)

	subs, err := repo.FindUserCurrenciesByUserID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, []domain.UserCurrency{
		{ID: 1, UserID: 1, CurrencyID: 7},
		{ID: 3, UserID: 1, CurrencyID: 4},
	}, subs)

	none, err := repo.FindUserCurrenciesByUserID(ctx, 99)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestUserCurrencyRepository_DeleteAndFind(t *testing.T) {
	ctx := context.Background()
	repo := newTestStore(t).UserCurrencies

	id, err := repo.InsertUserCurrency(ctx, domain.UserCurrency{UserID: 1, CurrencyID: 1})
	require.NoError(t, err)

	found, err := repo.FindUserCurrencyByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, int64(1), found.CurrencyID)

	require.NoError(t, repo.DeleteUserCurrency(ctx, id))
	require.NoError(t, repo.DeleteUserCurrency(ctx, id))

	_, err = repo.FindUserCurrencyByID(ctx, id)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	all, err := repo.ListUserCurrencies(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestUserCurrencyRepository_SubscriptionsOutliveReferencedRows(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t, testCurrency("USD", "1"), testCurrency("EUR", "2"))

	userID, err := s.Users.InsertUser(ctx, domain.User{Name: "Alice"})
	require.NoError(t, err)
	_, err = s.UserCurrencies.InsertUserCurrencies(ctx, []domain.UserCurrency{
		{UserID: userID, CurrencyID: 1},
		{UserID: userID, CurrencyID: 2},
	})
	require.NoError(t, err)

	// A subscription may reference ids that never existed.
	_, err = s.UserCurrencies.InsertUserCurrency(ctx, domain.UserCurrency{UserID: 500, CurrencyID: 600})
	require.NoError(t, err)

	require.NoError(t, s.Currencies.DeleteCurrency(ctx, 1))
	require.NoError(t, s.Users.DeleteUser(ctx, userID))

	subs, err := s.UserCurrencies.ListUserCurrencies(ctx)
	require.NoError(t, err)
	assert.Len(t, subs, 3)

	orphaned, err := s.UserCurrencies.FindUserCurrenciesByUserID(ctx, userID)
	require.NoError(t, err)
	assert.Len(t, orphaned, 2)
}
