package services

import (
	portsrepo "github.com/SscSPs/currency_board/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/currency_board/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Currency: NewCurrencyService(repos.CurrencyRepo),
		User:     NewUserService(repos.UserRepo, repos.UserCurrencyRepo, repos.CurrencyRepo),
	}
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.CurrencySvcFacade = (*currencyService)(nil)
	_ portssvc.UserSvcFacade     = (*userService)(nil)
)
