package domain

import (
	"github.com/shopspring/decimal"
)

// TaxYearParams holds the policy parameters of one tax year. Monthly amounts
// are scaled by the number of months a profit figure covers.
type TaxYearParams struct {
	Year int `yaml:"year" json:"year"`

	// Pension and training fund contributions
	PensionRate        decimal.Decimal `yaml:"pension_rate" json:"pension_rate"`                 // Default: 0.165
	TrainingRate       decimal.Decimal `yaml:"training_rate" json:"training_rate"`               // Default: 0.045
	TrainingCapMonthly decimal.Decimal `yaml:"training_cap_monthly" json:"training_cap_monthly"` // Default: 1100

	// Social insurance (Bituach Leumi), two brackets
	BLLowBracketMonthly decimal.Decimal `yaml:"bl_low_bracket_monthly" json:"bl_low_bracket_monthly"` // Default: 7522
	BLLowRate           decimal.Decimal `yaml:"bl_low_rate" json:"bl_low_rate"`                       // Default: 0.0597
	BLHighRate          decimal.Decimal `yaml:"bl_high_rate" json:"bl_high_rate"`                     // Default: 0.1783

	// Share of the social insurance contribution deductible from taxable income
	EmployerDeductibleShare decimal.Decimal `yaml:"employer_deductible_share" json:"employer_deductible_share"` // Default: 0.52

	// Income tax, single bracket break
	TaxBracket1Monthly decimal.Decimal `yaml:"tax_bracket_1_monthly" json:"tax_bracket_1_monthly"` // Default: 7000
	TaxRate1           decimal.Decimal `yaml:"tax_rate_1" json:"tax_rate_1"`                       // Default: 0.10
	TaxRate2           decimal.Decimal `yaml:"tax_rate_2" json:"tax_rate_2"`                       // Default: 0.14

	// Credit points
	CreditPointValue  decimal.Decimal `yaml:"credit_point_value" json:"credit_point_value"`   // Default: 245 per point per month
	CreditPointsCount decimal.Decimal `yaml:"credit_points_count" json:"credit_points_count"` // Default: 4.25
}

// MonthlyCredit returns the tax credit for a single month.
func (p TaxYearParams) MonthlyCredit() decimal.Decimal {
	return p.CreditPointValue.Mul(p.CreditPointsCount)
}
