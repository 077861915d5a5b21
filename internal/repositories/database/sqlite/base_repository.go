package sqlite

import (
	"context"
	"net/http"
	"sync"

	"github.com/SscSPs/currency_board/internal/apperrors"
	"github.com/jmoiron/sqlx"
)

// BaseRepository provides common functionality for all repositories.
// All repositories of one Store share the same lock: writers are exclusive, readers
// run together, so a read never observes half of a write.
type BaseRepository struct {
	DB *sqlx.DB
	mu *sync.RWMutex
}

func (r *BaseRepository) lockWrite() func() {
	r.mu.Lock()
	return r.mu.Unlock
}

func (r *BaseRepository) lockRead() func() {
	r.mu.RLock()
	return r.mu.RUnlock
}

// withTx runs fn inside a transaction, rolling back if fn fails.
// Callers must already hold the write lock.
func (r *BaseRepository) withTx(ctx context.Context, fn func(tx *sqlx.Tx) error) error {
	tx, err := r.DB.BeginTxx(ctx, nil)
	if err != nil {
		return apperrors.NewAppError(http.StatusInternalServerError, "failed to begin transaction", err)
	}

	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}

	if err := tx.Commit(); err != nil {
		return apperrors.NewAppError(http.StatusInternalServerError, "failed to commit transaction", err)
	}
	return nil
}

// insertMany executes a named insert for every row in one transaction and returns the new IDs in order.
func insertMany[T any](ctx context.Context, r *BaseRepository, query string, rows []T) ([]int64, error) {
	ids := make([]int64, 0, len(rows))
	if len(rows) == 0 {
		return ids, nil
	}

	err := r.withTx(ctx, func(tx *sqlx.Tx) error {
		for _, row := range rows {
			res, err := tx.NamedExecContext(ctx, query, row)
			if err != nil {
				return err
			}
			id, err := res.LastInsertId()
			if err != nil {
				return err
			}
			ids = append(ids, id)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return ids, nil
}
