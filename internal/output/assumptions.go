package output

import (
	"fmt"

	"github.com/lffinance/dashboard/internal/domain"
	"github.com/shopspring/decimal"
)

// GenerateAssumptions creates the assumptions list from a tax year's parameters
func GenerateAssumptions(p domain.TaxYearParams) []string {
	return []string{
		fmt.Sprintf("Pension: %s of profit, uncapped", FormatRate(p.PensionRate)),
		fmt.Sprintf("Training fund: %s of profit, capped at %s per month", FormatRate(p.TrainingRate), FormatCurrency(p.TrainingCapMonthly)),
		fmt.Sprintf("Bituach Leumi: %s up to %s per month, %s above; %s deductible from taxable income",
			FormatRate(p.BLLowRate), FormatCurrency(p.BLLowBracketMonthly), FormatRate(p.BLHighRate), FormatRate(p.EmployerDeductibleShare)),
		fmt.Sprintf("Income tax: %s up to %s per month, %s above", FormatRate(p.TaxRate1), FormatCurrency(p.TaxBracket1Monthly), FormatRate(p.TaxRate2)),
		fmt.Sprintf("Credit points: %s points at %s per month", p.CreditPointsCount.String(), FormatCurrency(p.CreditPointValue)),
		fmt.Sprintf("Tax year %d parameters; monthly thresholds scale with the months in the period", p.Year),
	}
}

var decimalHundred = decimal.NewFromInt(100)
