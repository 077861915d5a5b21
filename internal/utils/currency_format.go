package utils

import (
	"github.com/shopspring/decimal"
)

// FormatWithPrecision formats an amount with the given precision
// Example: 12.34567 with precision 4 returns "12.3457"
func FormatWithPrecision(amount decimal.Decimal, precision int) string {
	return amount.Round(int32(precision)).String()
}

// FormatPerUnit formats amount divided by nominal. A non-positive nominal yields the amount itself.
// Example: 70.1006 for 100 units with precision 4 returns "0.701"
func FormatPerUnit(amount decimal.Decimal, nominal int, precision int) string {
	if nominal <= 0 {
		return FormatWithPrecision(amount, precision)
	}
	return FormatWithPrecision(amount.Div(decimal.NewFromInt(int64(nominal))), precision)
}
