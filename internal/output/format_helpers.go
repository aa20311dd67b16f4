package output

import (
	"strconv"

	"github.com/lffinance/dashboard/internal/domain"
	money "github.com/lffinance/dashboard/pkg/decimal"
	"github.com/shopspring/decimal"
)

// FormatCurrency formats a decimal as whole shekels with thousands separators.
// Kept here so it can be reused by multiple formatters and unit tested in isolation.
func FormatCurrency(amount decimal.Decimal) string {
	return money.NewMoneyFromDecimal(amount).Format()
}

// FormatCurrencyWith formats a decimal as whole units of the given currency symbol.
func FormatCurrencyWith(symbol string, amount decimal.Decimal) string {
	if symbol == "" {
		symbol = money.DefaultCurrencySymbol
	}
	return money.NewMoneyFromDecimal(amount).FormatWith(symbol)
}

// FormatAgorot formats an amount with two decimals and no symbol, for CSV cells.
func FormatAgorot(amount decimal.Decimal) string {
	return money.NewMoneyFromDecimal(amount).Round().String()
}

// FormatPercentage formats a decimal as a percentage with 2 decimals.
func FormatPercentage(amount decimal.Decimal) string { return amount.StringFixed(2) + "%" }

// FormatRate formats a fractional rate such as 0.165 as "16.5%".
func FormatRate(rate decimal.Decimal) string { return rate.Mul(decimalHundred).String() + "%" }

// PeriodLabel is the English label of a period key
func PeriodLabel(period string) string {
	if period == "" || period == domain.PeriodAll {
		return "All periods"
	}
	return period
}

func intToString(i int) string { return strconv.Itoa(i) }
