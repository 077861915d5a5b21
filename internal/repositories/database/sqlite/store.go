package sqlite

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/SscSPs/currency_board/internal/core/domain"
	"github.com/SscSPs/currency_board/internal/core/ports"
	portsrepo "github.com/SscSPs/currency_board/internal/core/ports/repositories"
	"github.com/SscSPs/currency_board/pkg/database"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// Store is the in-memory relational store holding currencies, users and their subscriptions.
// It is rebuilt on every start and dropped on Close.
type Store struct {
	db *sqlx.DB
	mu sync.RWMutex

	Currencies     *CurrencyRepository
	Users          *UserRepository
	UserCurrencies *UserCurrencyRepository
}

type storeOptions struct {
	logger        *slog.Logger
	users         []domain.User
	subscriptions []domain.UserCurrency
}

// Option customizes NewStore.
type Option func(*storeOptions)

// WithLogger sets the logger used while building the store.
func WithLogger(logger *slog.Logger) Option {
	return func(o *storeOptions) {
		o.logger = logger
	}
}

// WithDemoData replaces the users and subscriptions inserted at construction.
// Pass nil slices to start with empty tables.
func WithDemoData(users []domain.User, subscriptions []domain.UserCurrency) Option {
	return func(o *storeOptions) {
		o.users = users
		o.subscriptions = subscriptions
	}
}

// NewStore creates the tables, seeds currencies from source and inserts the demo users and
// subscriptions. If anything fails, including the rate fetch, no store is returned.
func NewStore(ctx context.Context, source ports.RateSource, opts ...Option) (*Store, error) {
	if source == nil {
		return nil, errors.New("rate source is required")
	}

	o := storeOptions{
		logger:        slog.Default(),
		users:         DemoUsers(),
		subscriptions: DemoSubscriptions(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	name := "currency_board_" + uuid.NewString()
	db, err := database.NewSQLiteMemory(ctx, name)
	if err != nil {
		return nil, err
	}

	if err := runMigrations(database.MemoryDSN(name)); err != nil {
		database.CloseDB(db)
		return nil, fmt.Errorf("failed to create store schema: %w", err)
	}

	s := newStore(db)
	if err := s.seed(ctx, o.logger, source, o.users, o.subscriptions); err != nil {
		s.Close()
		return nil, fmt.Errorf("failed to seed store: %w", err)
	}

	o.logger.Info("Store ready", slog.String("database", name))
	return s, nil
}

func newStore(db *sqlx.DB) *Store {
	s := &Store{db: db}
	base := BaseRepository{DB: db, mu: &s.mu}
	s.Currencies = &CurrencyRepository{BaseRepository: base}
	s.Users = &UserRepository{BaseRepository: base}
	s.UserCurrencies = &UserCurrencyRepository{BaseRepository: base}
	return s
}

// Repositories exposes the store through the repository ports.
func (s *Store) Repositories() portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		CurrencyRepo:     s.Currencies,
		UserRepo:         s.Users,
		UserCurrencyRepo: s.UserCurrencies,
	}
}

// Close drops the database.
func (s *Store) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	database.CloseDB(s.db)
}
