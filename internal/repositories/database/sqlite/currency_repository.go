package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/SscSPs/currency_board/internal/apperrors"
	"github.com/SscSPs/currency_board/internal/core/domain"
	portsrepo "github.com/SscSPs/currency_board/internal/core/ports/repositories"
	"github.com/SscSPs/currency_board/internal/models"
	"github.com/SscSPs/currency_board/internal/utils/mapping"
	"github.com/shopspring/decimal"
)

const (
	insertCurrencyQuery = `
		INSERT INTO currencies (num_code, char_code, name, value, nominal)
		VALUES (:num_code, :char_code, :name, :value, :nominal);
	`
	selectCurrencyColumns = `SELECT id, num_code, char_code, name, value, nominal FROM currencies`
)

// CurrencyRepository stores currencies in the currencies table.
type CurrencyRepository struct {
	BaseRepository
}

// Ensure implementation matches interface
var _ portsrepo.CurrencyRepositoryFacade = (*CurrencyRepository)(nil)

// InsertCurrency validates and inserts a currency, returning its new ID.
func (r *CurrencyRepository) InsertCurrency(ctx context.Context, currency domain.Currency) (int64, error) {
	if err := currency.Normalize(); err != nil {
		return 0, err
	}

	defer r.lockWrite()()

	res, err := r.DB.NamedExecContext(ctx, insertCurrencyQuery, mapping.ToModelCurrency(currency))
	if err != nil {
		return 0, fmt.Errorf("failed to insert currency %s: %w", currency.CharCode, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read id of currency %s: %w", currency.CharCode, err)
	}
	return id, nil
}

// InsertCurrencies validates every currency first, then inserts all of them in one transaction.
func (r *CurrencyRepository) InsertCurrencies(ctx context.Context, currencies []domain.Currency) ([]int64, error) {
	rows := make([]models.Currency, len(currencies))
	for i := range currencies {
		c := currencies[i]
		if err := c.Normalize(); err != nil {
			return nil, fmt.Errorf("currency #%d: %w", i, err)
		}
		rows[i] = mapping.ToModelCurrency(c)
	}

	defer r.lockWrite()()

	ids, err := insertMany(ctx, &r.BaseRepository, insertCurrencyQuery, rows)
	if err != nil {
		return nil, fmt.Errorf("failed to insert currencies: %w", err)
	}
	return ids, nil
}

// ListCurrencies returns all currencies ordered by ID.
func (r *CurrencyRepository) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	defer r.lockRead()()

	var rows []models.Currency
	if err := r.DB.SelectContext(ctx, &rows, selectCurrencyColumns+` ORDER BY id;`); err != nil {
		return nil, fmt.Errorf("failed to query currencies: %w", err)
	}
	return mapping.ToDomainCurrencySlice(rows), nil
}

// FindCurrencyByID returns the currency with the given ID or apperrors.ErrNotFound.
func (r *CurrencyRepository) FindCurrencyByID(ctx context.Context, id int64) (*domain.Currency, error) {
	defer r.lockRead()()

	var row models.Currency
	err := r.DB.GetContext(ctx, &row, selectCurrencyColumns+` WHERE id = ?;`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("currency %d: %w", id, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to find currency by id %d: %w", id, err)
	}

	currency := mapping.ToDomainCurrency(row)
	return &currency, nil
}

// UpdateCurrencyValueByCharCode sets the value of every currency with the given char code.
// The code is matched case-insensitively. Negative values are rejected without touching any row.
func (r *CurrencyRepository) UpdateCurrencyValueByCharCode(ctx context.Context, charCode string, value decimal.Decimal) (int64, error) {
	var probe domain.Currency
	if err := probe.SetValue(value); err != nil {
		return 0, err
	}

	defer r.lockWrite()()

	res, err := r.DB.ExecContext(ctx, `UPDATE currencies SET value = ? WHERE char_code = ?;`, value, strings.ToUpper(charCode))
	if err != nil {
		return 0, fmt.Errorf("failed to update currency %s: %w", charCode, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to read update result for currency %s: %w", charCode, err)
	}
	return n, nil
}

// UpdateCurrencyCharCode replaces the char code of a currency, upper-casing it.
func (r *CurrencyRepository) UpdateCurrencyCharCode(ctx context.Context, id int64, charCode string) error {
	var probe domain.Currency
	if err := probe.SetCharCode(charCode); err != nil {
		return err
	}

	defer r.lockWrite()()

	if _, err := r.DB.ExecContext(ctx, `UPDATE currencies SET char_code = ? WHERE id = ?;`, probe.CharCode, id); err != nil {
		return fmt.Errorf("failed to update char code of currency %d: %w", id, err)
	}
	return nil
}

// DeleteCurrency removes the currency with the given ID, if any.
func (r *CurrencyRepository) DeleteCurrency(ctx context.Context, id int64) error {
	defer r.lockWrite()()

	if _, err := r.DB.ExecContext(ctx, `DELETE FROM currencies WHERE id = ?;`, id); err != nil {
		return fmt.Errorf("failed to delete currency %d: %w", id, err)
	}
	return nil
}
