package domain

// UserCurrency is a user's subscription to a currency.
// Neither reference is enforced by the store; rows may outlive the user or currency they point to.
type UserCurrency struct {
	ID         int64 `json:"id"`
	UserID     int64 `json:"userID"`
	CurrencyID int64 `json:"currencyID"`
}
