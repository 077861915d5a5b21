package models

// UserCurrency is a row of the user_currencies table.
type UserCurrency struct {
	ID         int64 `db:"id"`
	UserID     int64 `db:"user_id"`
	CurrencyID int64 `db:"currency_id"`
}
