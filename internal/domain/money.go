package domain

import "github.com/shopspring/decimal"

// Precision used for stored and displayed amounts
const (
	BalancePlaces = 4
	DepositPlaces = 2
)

func init() {
	// Amounts travel as JSON numbers, not strings
	decimal.MarshalJSONWithoutQuotes = true
}

// RoundMoney rounds an amount to balance precision
func RoundMoney(d decimal.Decimal) decimal.Decimal {
	return d.Round(BalancePlaces)
}

// FormatBalance renders a balance with 4 decimals
func FormatBalance(d decimal.Decimal) string {
	return d.StringFixed(BalancePlaces)
}

// FormatDepositInput renders a deposit input with 2 decimals
func FormatDepositInput(d decimal.Decimal) string {
	return d.StringFixed(DepositPlaces)
}
