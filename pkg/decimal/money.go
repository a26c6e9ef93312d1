package decimal

import (
	"strings"

	"github.com/shopspring/decimal"
)

// CurrencySymbol prefixes formatted amounts.
const CurrencySymbol = "₹"

var (
	twelve     = decimal.NewFromInt(12)
	hundred    = decimal.NewFromInt(100)
	lakh       = decimal.NewFromInt(100000)
	crore      = decimal.NewFromInt(10000000)
	compactCap = int32(2)
)

// Money represents a currency amount. Stored values keep full precision; rounding to
// whole units happens only when a value is recorded or displayed.
type Money struct {
	decimal.Decimal
}

// NewMoneyFromDecimal creates a new Money instance from a decimal.Decimal
func NewMoneyFromDecimal(d decimal.Decimal) Money {
	return Money{d}
}

// Whole rounds to the nearest whole currency unit, halves away from zero.
func (m Money) Whole() Money {
	return Money{m.Decimal.Round(0)}
}

// Monthly converts an annual amount to monthly
func (m Money) Monthly() Money {
	return Money{m.Decimal.Div(twelve)}
}

// PercentOf returns m as a percentage of base, unrounded. base must be non-zero.
func (m Money) PercentOf(base Money) decimal.Decimal {
	return m.Decimal.Mul(hundred).Div(base.Decimal)
}

// String returns the whole-unit representation.
func (m Money) String() string {
	return m.Decimal.StringFixed(0)
}

// Format renders whole units with Indian digit grouping, e.g. ₹30,00,000.
func (m Money) Format() string {
	return m.FormatWith(CurrencySymbol)
}

// FormatWith is Format with a caller supplied symbol.
func (m Money) FormatWith(symbol string) string {
	s := m.Whole().String()
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")
	out := symbol + groupIndian(s)
	if neg {
		return "-" + out
	}
	return out
}

// Compact renders lakh/crore short forms used on chart axes: ₹1.5Cr, ₹30L.
// Amounts below one lakh fall back to Format.
func (m Money) Compact() string {
	switch {
	case m.Decimal.GreaterThanOrEqual(crore):
		return CurrencySymbol + m.Decimal.Div(crore).Round(compactCap).String() + "Cr"
	case m.Decimal.GreaterThanOrEqual(lakh):
		return CurrencySymbol + m.Decimal.Div(lakh).Round(compactCap).String() + "L"
	default:
		return m.Format()
	}
}

// groupIndian groups the last three digits, then every two: 12345678 -> 1,23,45,678.
func groupIndian(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	head, tail := digits[:len(digits)-3], digits[len(digits)-3:]
	var parts []string
	for len(head) > 2 {
		parts = append([]string{head[len(head)-2:]}, parts...)
		head = head[:len(head)-2]
	}
	if head != "" {
		parts = append([]string{head}, parts...)
	}
	return strings.Join(parts, ",") + "," + tail
}
