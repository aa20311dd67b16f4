package decimal

import (
	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

// DefaultCurrencySymbol is the symbol used when none is configured
const DefaultCurrencySymbol = "₪"

// Money represents a monetary amount with proper financial precision
type Money struct {
	decimal.Decimal
}

// NewMoneyFromDecimal creates a new Money instance from a decimal.Decimal
func NewMoneyFromDecimal(d decimal.Decimal) Money {
	return Money{d}
}

// Round rounds the money amount to agorot (two decimal places)
func (m Money) Round() Money {
	return Money{m.Decimal.Round(2)}
}

// Whole rounds the money amount to whole currency units, half away from zero.
// Every displayed figure goes through here, the deduction cards included;
// the old dashboard truncated those cards and rounded only the net figure.
func (m Money) Whole() Money {
	return Money{m.Decimal.Round(0)}
}

// String returns the string representation with two decimals
func (m Money) String() string {
	return m.Decimal.StringFixed(2)
}

// Format formats the amount as whole currency units with the default symbol
func (m Money) Format() string {
	return m.FormatWith(DefaultCurrencySymbol)
}

// FormatWith formats the amount as whole currency units with the given symbol.
// Negative amounts put the sign before the symbol: "-₪1,200".
func (m Money) FormatWith(symbol string) string {
	whole := m.Whole().Decimal
	if whole.IsNegative() {
		return "-" + symbol + humanize.Comma(whole.Neg().IntPart())
	}
	return symbol + humanize.Comma(whole.IntPart())
}
