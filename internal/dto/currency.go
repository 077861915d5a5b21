package dto

import (
	"github.com/SscSPs/currency_board/internal/core/domain"
	"github.com/SscSPs/currency_board/internal/utils"
)

// RatePrecision is the number of decimals shown for rates, matching the feed.
const RatePrecision = 4

// CurrencyView is a currency as rendered on the pages.
type CurrencyView struct {
	ID       int64  `json:"id"`
	NumCode  string `json:"numCode"`
	CharCode string `json:"charCode"`
	Name     string `json:"name"`
	Value    string `json:"value"`
	Nominal  int    `json:"nominal"`
	// UnitRate is the price of a single unit, Value / Nominal.
	UnitRate string `json:"unitRate"`
}

// ToCurrencyView converts a domain.Currency to its view.
func ToCurrencyView(c domain.Currency) CurrencyView {
	return CurrencyView{
		ID:       c.ID,
		NumCode:  c.NumCode,
		CharCode: c.CharCode,
		Name:     c.Name,
		Value:    utils.FormatWithPrecision(c.Value, RatePrecision),
		Nominal:  c.Nominal,
		UnitRate: utils.FormatPerUnit(c.Value, c.Nominal, RatePrecision),
	}
}

// ToCurrencyViews converts a slice of domain.Currency, keeping order.
func ToCurrencyViews(currencies []domain.Currency) []CurrencyView {
	res := make([]CurrencyView, len(currencies))
	for i, c := range currencies {
		res[i] = ToCurrencyView(c)
	}
	return res
}
