package services_test

import (
	"context"

	"github.com/SscSPs/currency_board/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// --- Mock CurrencyRepository ---
type MockCurrencyRepository struct {
	mock.Mock
}

func (m *MockCurrencyRepository) FindCurrencyByID(ctx context.Context, id int64) (*domain.Currency, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Currency), args.Error(1)
}

func (m *MockCurrencyRepository) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Currency), args.Error(1)
}

func (m *MockCurrencyRepository) InsertCurrency(ctx context.Context, currency domain.Currency) (int64, error) {
	args := m.Called(ctx, currency)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCurrencyRepository) InsertCurrencies(ctx context.Context, currencies []domain.Currency) ([]int64, error) {
	args := m.Called(ctx, currencies)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int64), args.Error(1)
}

func (m *MockCurrencyRepository) UpdateCurrencyValueByCharCode(ctx context.Context, charCode string, value decimal.Decimal) (int64, error) {
	args := m.Called(ctx, charCode, value)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCurrencyRepository) UpdateCurrencyCharCode(ctx context.Context, id int64, charCode string) error {
	args := m.Called(ctx, id, charCode)
	return args.Error(0)
}

func (m *MockCurrencyRepository) DeleteCurrency(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// --- Mock UserRepository ---
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) ListUsers(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *MockUserRepository) InsertUser(ctx context.Context, user domain.User) (int64, error) {
	args := m.Called(ctx, user)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserRepository) InsertUsers(ctx context.Context, users []domain.User) ([]int64, error) {
	args := m.Called(ctx, users)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int64), args.Error(1)
}

func (m *MockUserRepository) UpdateUserName(ctx context.Context, id int64, name string) error {
	args := m.Called(ctx, id, name)
	return args.Error(0)
}

func (m *MockUserRepository) DeleteUser(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// --- Mock UserCurrencyRepository ---
type MockUserCurrencyRepository struct {
	mock.Mock
}

func (m *MockUserCurrencyRepository) FindUserCurrencyByID(ctx context.Context, id int64) (*domain.UserCurrency, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserCurrency), args.Error(1)
}

func (m *MockUserCurrencyRepository) ListUserCurrencies(ctx context.Context) ([]domain.UserCurrency, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.UserCurrency), args.Error(1)
}

func (m *MockUserCurrencyRepository) FindUserCurrenciesByUserID(ctx context.Context, userID int64) ([]domain.UserCurrency, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.UserCurrency), args.Error(1)
}

func (m *MockUserCurrencyRepository) InsertUserCurrency(ctx context.Context, uc domain.UserCurrency) (int64, error) {
	args := m.Called(ctx, uc)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserCurrencyRepository) InsertUserCurrencies(ctx context.Context, ucs []domain.UserCurrency) ([]int64, error) {
	args := m.Called(ctx, ucs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int64), args.Error(1)
}

func (m *MockUserCurrencyRepository) DeleteUserCurrency(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
