package output

import (
	"strconv"

	money "github.com/rpgo/wealth-planner/pkg/decimal"
	"github.com/shopspring/decimal"
)

// DefaultCurrencySymbol prefixes amounts unless Options override it.
const DefaultCurrencySymbol = "₹"

// FormatCurrency formats a decimal as whole rupees with Indian digit grouping.
func FormatCurrency(amount decimal.Decimal) string {
	return money.NewMoneyFromDecimal(amount).Format()
}

// FormatCurrencyWith formats like FormatCurrency with a custom symbol.
func FormatCurrencyWith(symbol string, amount decimal.Decimal) string {
	return money.NewMoneyFromDecimal(amount).FormatWith(symbol)
}

// FormatCompact formats large amounts with lakh/crore suffixes.
func FormatCompact(amount decimal.Decimal) string {
	return money.NewMoneyFromDecimal(amount).Compact()
}

// FormatPercentage formats a decimal as a percentage with 2 decimals.
func FormatPercentage(amount decimal.Decimal) string { return amount.StringFixed(2) + "%" }

func intToString(i int) string { return strconv.Itoa(i) }

func boolToString(b bool) string { return strconv.FormatBool(b) }
