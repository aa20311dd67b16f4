package output

import (
	"github.com/lffinance/dashboard/internal/domain"
	"github.com/shopspring/decimal"
)

// Insights are derived figures shown next to the raw breakdown.
type Insights struct {
	MonthlyNet        decimal.Decimal // net divided by the months in the period
	RemainingToTarget decimal.Decimal // zero once the target is met
	TaxShare          decimal.Decimal // income tax + BL as a percentage of profit
	SavingsShare      decimal.Decimal // pension + training as a percentage of profit
	TopClient         string
	TopClientShare    decimal.Decimal // percentage of the period's income
}

// AnalyzeSummary computes the insights for a summary.
// Extracted from the formatters for testability.
func AnalyzeSummary(s *domain.DashboardSummary) Insights {
	months := s.MonthsCount
	if months < 1 {
		months = 1
	}
	in := Insights{
		MonthlyNet:        s.Breakdown.Net.Div(decimal.NewFromInt(int64(months))),
		RemainingToTarget: decimal.Max(decimal.Zero, s.Progress.Target.Sub(s.Breakdown.Net)),
		TaxShare:          decimal.Zero,
		SavingsShare:      decimal.Zero,
		TopClientShare:    decimal.Zero,
	}
	if s.Profit.IsPositive() {
		in.TaxShare = s.Breakdown.TotalTaxes().Div(s.Profit).Mul(decimalHundred)
		in.SavingsShare = s.Breakdown.TotalSocial.Div(s.Profit).Mul(decimalHundred)
	}
	if len(s.Clients) > 0 {
		in.TopClient = s.Clients[0].Client
		if s.TotalIncome.IsPositive() {
			in.TopClientShare = s.Clients[0].Amount.Div(s.TotalIncome).Mul(decimalHundred)
		}
	}
	return in
}
