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

const insertUserQuery = `INSERT INTO users (name) VALUES (:name);`

// UserRepository stores users in the users table.
type UserRepository struct {
	BaseRepository
}

var _ portsrepo.UserRepositoryFacade = (*UserRepository)(nil)

// InsertUser inserts a user and returns its new ID.
func (r *UserRepository) InsertUser(ctx context.Context, user domain.User) (int64, error) {
	defer r.lockWrite()()

	res, err := r.DB.NamedExecContext(ctx, insertUserQuery, mapping.ToModelUser(user))
	if err != nil {
		return 0, fmt.Errorf("failed to insert user %q: %w", user.Name, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read id of user %q: %w", user.Name, err)
	}
	return id, nil
}

// InsertUsers inserts all users in one transaction.
func (r *UserRepository) InsertUsers(ctx context.Context, users []domain.User) ([]int64, error) {
	rows := make([]models.User, len(users))
	for i, u := range users {
		rows[i] = mapping.ToModelUser(u)
	}

	defer r.lockWrite()()

	ids, err := insertMany(ctx, &r.BaseRepository, insertUserQuery, rows)
	if err != nil {
		return nil, fmt.Errorf("failed to insert users: %w", err)
	}
	return ids, nil
}

// ListUsers returns all users ordered by ID.
func (r *UserRepository) ListUsers(ctx context.Context) ([]domain.User, error) {
	defer r.lockRead()()

	var rows []models.User
	if err := r.DB.SelectContext(ctx, &rows, `SELECT id, name FROM users ORDER BY id;`); err != nil {
		return nil, fmt.Errorf("failed to query users: %w", err)
	}
	return mapping.ToDomainUserSlice(rows), nil
}

// FindUserByID returns the user with the given ID or apperrors.ErrNotFound.
func (r *UserRepository) FindUserByID(ctx context.Context, id int64) (*domain.User, error) {
	defer r.lockRead()()

	var row models.User
	err := r.DB.GetContext(ctx, &row, `SELECT id, name FROM users WHERE id = ?;`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("user %d: %w", id, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to find user by id %d: %w", id, err)
	}

	user := mapping.ToDomainUser(row)
	return &user, nil
}

// UpdateUserName renames the user with the given ID, if any.
func (r *UserRepository) UpdateUserName(ctx context.Context, id int64, name string) error {
	defer r.lockWrite()()

	if _, err := r.DB.ExecContext(ctx, `UPDATE users SET name = ? WHERE id = ?;`, name, id); err != nil {
		return fmt.Errorf("failed to rename user %d: %w", id, err)
	}
	return nil
}

// DeleteUser removes the user with the given ID, if any. Subscriptions are not touched.
func (r *UserRepository) DeleteUser(ctx context.Context, id int64) error {
	defer r.lockWrite()()

	if _, err := r.DB.ExecContext(ctx, `DELETE FROM users WHERE id = ?;`, id); err != nil {
		return fmt.Errorf("failed to delete user %d: %w", id, err)
	}
	return nil
}
