package models

import "github.com/shopspring/decimal"

// Currency is a row of the currencies table.
// Value is stored as TEXT so the decimal round-trips exactly.
type Currency struct {
	ID       int64           `db:"id"`
	NumCode  string          `db:"num_code"`
	CharCode string          `db:"char_code"`
	Name     string          `db:"name"`
	Value    decimal.Decimal `db:"value"`
	Nominal  int             `db:"nominal"`
}
