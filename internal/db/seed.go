package db

import "github.com/shopspring/decimal"

// DefaultPrices seeds a fresh install so the default label catalog is
// immediately sellable. Names must match catalog labels exactly
// (case-sensitive).
func DefaultPrices() map[string]decimal.Decimal {
	return map[string]decimal.Decimal{
		"Apple":  decimal.RequireFromString("0.75"),
		"Banana": decimal.RequireFromString("0.89"),
		"Orange": decimal.RequireFromString("0.69"),
		"Pear":   decimal.RequireFromString("0.79"),
		"Peach":  decimal.RequireFromString("1.09"),
	}
}
