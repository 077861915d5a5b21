package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/SscSPs/currency_board/internal/apperrors"
	"github.com/SscSPs/currency_board/internal/core/domain"
	portsrepo "github.com/SscSPs/currency_board/internal/core/ports/repositories"
	"github.com/SscSPs/currency_board/internal/models"
	"github.com/SscSPs/currency_board/internal/utils/mapping"
)

const (
	insertUserCurrencyQuery = `INSERT INTO user_currencies (user_id, currency_id) VALUES (:user_id, :currency_id);`
	selectUserCurrency      = `SELECT id, user_id, currency_id FROM user_currencies`
)

// UserCurrencyRepository stores subscriptions in the user_currencies table.
type UserCurrencyRepository struct {
	BaseRepository
}

var _ portsrepo.UserCurrencyRepositoryFacade = (*UserCurrencyRepository)(nil)

// InsertUserCurrency inserts a subscription and returns its new ID.
// Neither the user nor the currency has to exist.
func (r *UserCurrencyRepository) InsertUserCurrency(ctx context.Context, uc domain.UserCurrency) (int64, error) {
	defer r.lockWrite()()

	res, err := r.DB.NamedExecContext(ctx, insertUserCurrencyQuery, mapping.ToModelUserCurrency(uc))
	if err != nil {
		return 0, fmt.Errorf("failed to insert subscription of user %d to currency %d: %w", uc.UserID, uc.CurrencyID, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read subscription id: %w", err)
	}
	return id, nil
}

// InsertUserCurrencies inserts all subscriptions in one transaction.
func (r *UserCurrencyRepository) InsertUserCurrencies(ctx context.Context, ucs []domain.UserCurrency) ([]int64, error) {
	rows := make([]models.UserCurrency, len(ucs))
	for i, uc := range ucs {
		rows[i] = mapping.ToModelUserCurrency(uc)
	}

	defer r.lockWrite()()

	ids, err := insertMany(ctx, &r.BaseRepository, insertUserCurrencyQuery, rows)
	if err != nil {
		return nil, fmt.Errorf("failed to insert subscriptions: %w", err)
	}
	return ids, nil
}

// ListUserCurrencies returns all subscriptions ordered by ID.
func (r *UserCurrencyRepository) ListUserCurrencies(ctx context.Context) ([]domain.UserCurrency, error) {
	defer r.lockRead()()

	var rows []models.UserCurrency
	if err := r.DB.SelectContext(ctx, &rows, selectUserCurrency+` ORDER BY id;`); err != nil {
		return nil, fmt.Errorf("failed to query subscriptions: %w", err)
	}
	return mapping.ToDomainUserCurrencySlice(rows), nil
}

// FindUserCurrencyByID returns the subscription with the given ID or apperrors.ErrNotFound.
func (r *UserCurrencyRepository) FindUserCurrencyByID(ctx context.Context, id int64) (*domain.UserCurrency, error) {
	defer r.lockRead()()

	var row models.UserCurrency
	err := r.DB.GetContext(ctx, &row, selectUserCurrency+` WHERE id = ?;`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("subscription %d: %w", id, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to find subscription by id %d: %w", id, err)
	}

	uc := mapping.ToDomainUserCurrency(row)
	return &uc, nil
}

// FindUserCurrenciesByUserID returns the subscriptions of a user ordered by ID.
func (r *UserCurrencyRepository) FindUserCurrenciesByUserID(ctx context.Context, userID int64) ([]domain.UserCurrency, error) {
	defer r.lockRead()()

	var rows []models.UserCurrency
	if err := r.DB.SelectContext(ctx, &rows, selectUserCurrency+` WHERE user_id = ? ORDER BY id;`, userID); err != nil {
		return nil, fmt.Errorf("failed to query subscriptions of user %d: %w", userID, err)
	}
	return mapping.ToDomainUserCurrencySlice(rows), nil
}

// DeleteUserCurrency removes the subscription with the given ID, if any.
func (r *UserCurrencyRepository) DeleteUserCurrency(ctx context.Context, id int64) error {
	defer r.lockWrite()()

	if _, err := r.DB.ExecContext(ctx, `DELETE FROM user_currencies WHERE id = ?;`, id); err != nil {
		return fmt.Errorf("failed to delete subscription %d: %w", id, err)
	}
	return nil
}
