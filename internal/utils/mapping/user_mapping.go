package mapping

import (
	"github.com/SscSPs/currency_board/internal/core/domain"
	"github.com/SscSPs/currency_board/internal/models"
)

// ToModelUser converts a domain User to a model User
func ToModelUser(d domain.User) models.User {
	return models.User{ID: d.ID, Name: d.Name}
}

// ToDomainUser converts a model User to a domain User
func ToDomainUser(m models.User) domain.User {
	return domain.User{ID: m.ID, Name: m.Name}
}

// ToDomainUserSlice converts a slice of model Users to a slice of domain Users
func ToDomainUserSlice(ms []models.User) []domain.User {
	ds := make([]domain.User, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainUser(m)
	}
	return ds
}

// ToModelUserCurrency converts a domain UserCurrency to a model UserCurrency
func ToModelUserCurrency(d domain.UserCurrency) models.UserCurrency {
	return models.UserCurrency{ID: d.ID, UserID: d.UserID, CurrencyID: d.CurrencyID}
}

// ToDomainUserCurrency converts a model UserCurrency to a domain UserCurrency
func ToDomainUserCurrency(m models.UserCurrency) domain.UserCurrency {
	return domain.UserCurrency{ID: m.ID, UserID: m.UserID, CurrencyID: m.CurrencyID}
}

// ToDomainUserCurrencySlice converts a slice of model UserCurrencies to domain UserCurrencies
func ToDomainUserCurrencySlice(ms []models.UserCurrency) []domain.UserCurrency {
	ds := make([]domain.UserCurrency, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainUserCurrency(m)
	}
	return ds
}
