package view

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// DefaultCurrency is the only currency the catalog prices in.
const DefaultCurrency = "USD"

// Money formats an amount with its currency symbol and two decimals.
// E.g., 20 USD -> "$20.00"
func Money(amount decimal.Decimal, currency string) string {
	return currencySymbol(currency) + amount.StringFixed(2)
}

// MoneyFromCents converts cents to a human-readable currency string.
func MoneyFromCents(cents int64, currency string) string {
	return Money(decimal.New(cents, -2), currency)
}

func currencySymbol(code string) string {
	switch code {
	case "EUR":
		return "€"
	case "USD":
		return "$"
	case "GBP":
		return "£"
	case "JPY":
		return "¥"
	case "TRY":
		return "₺"
	default:
		return fmt.Sprintf("%s ", code)
	}
}
