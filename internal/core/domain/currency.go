package domain

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/SscSPs/currency_board/internal/apperrors"
	"github.com/shopspring/decimal"
)

// CharCodeLength is the required length of a currency char code (e.g. "USD").
const CharCodeLength = 3

// Currency represents an exchange rate record in the domain.
// Value is the price of Nominal units of the currency in the base currency.
type Currency struct {
	ID       int64           `json:"id"` // Assigned by the store on insert
	NumCode  string          `json:"numCode"`
	CharCode string          `json:"charCode"` // Always upper-case, 3 characters
	Name     string          `json:"name"`
	Value    decimal.Decimal `json:"value"`
	Nominal  int             `json:"nominal"`
}

// NewCurrency builds a validated Currency without an ID.
func NewCurrency(numCode, charCode, name string, value decimal.Decimal, nominal int) (*Currency, error) {
	c := &Currency{NumCode: numCode, Name: name, Nominal: nominal}
	if err := c.SetCharCode(charCode); err != nil {
		return nil, err
	}
	if err := c.SetValue(value); err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// SetCharCode sets the char code, upper-casing it. The length is checked before
// normalization; on error the previous value is kept.
func (c *Currency) SetCharCode(code string) error {
	if utf8.RuneCountInString(code) != CharCodeLength {
		return fmt.Errorf("%w: currency code must be %d characters, got %q", apperrors.ErrValidation, CharCodeLength, code)
	}
	c.CharCode = strings.ToUpper(code)
	return nil
}

// SetValue sets the rate value. Negative values are rejected and the previous value is kept.
func (c *Currency) SetValue(v decimal.Decimal) error {
	if v.IsNegative() {
		return fmt.Errorf("%w: currency value cannot be negative, got %s", apperrors.ErrValidation, v.String())
	}
	c.Value = v
	return nil
}

// Validate checks the invariants a currency must satisfy before it is stored.
func (c *Currency) Validate() error {
	if utf8.RuneCountInString(c.CharCode) != CharCodeLength {
		return fmt.Errorf("%w: currency code must be %d characters, got %q", apperrors.ErrValidation, CharCodeLength, c.CharCode)
	}
	if c.Value.IsNegative() {
		return fmt.Errorf("%w: currency value cannot be negative", apperrors.ErrValidation)
	}
	if c.Nominal <= 0 {
		return fmt.Errorf("%w: currency nominal must be positive, got %d", apperrors.ErrValidation, c.Nominal)
	}
	return nil
}

// Normalize validates the currency and upper-cases its char code in place.
func (c *Currency) Normalize() error {
	if err := c.Validate(); err != nil {
		return err
	}
	c.CharCode = strings.ToUpper(c.CharCode)
	return nil
}
