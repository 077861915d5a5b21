package mapping

import (
	"github.com/SscSPs/currency_board/internal/core/domain"
	"github.com/SscSPs/currency_board/internal/models"
)

// ToModelCurrency converts a domain Currency to a model Currency
func ToModelCurrency(d domain.Currency) models.Currency {
	return models.Currency{
		ID:       d.ID,
		NumCode:  d.NumCode,
		CharCode: d.CharCode,
		Name:     d.Name,
		Value:    d.Value,
		Nominal:  d.Nominal,
	}
}

// ToDomainCurrency converts a model Currency to a domain Currency
func ToDomainCurrency(m models.Currency) domain.Currency {
	return domain.Currency{
		ID:       m.ID,
		NumCode:  m.NumCode,
		CharCode: m.CharCode,
		Name:     m.Name,
		Value:    m.Value,
		Nominal:  m.Nominal,
	}
}

// ToDomainCurrencySlice converts a slice of model Currencies to a slice of domain Currencies
func ToDomainCurrencySlice(ms []models.Currency) []domain.Currency {
	ds := make([]domain.Currency, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainCurrency(m)
	}
	return ds
}
