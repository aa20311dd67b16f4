package domain

import (
	"github.com/shopspring/decimal"
)

// Breakdown is the result of a net income calculation. All amounts are
// unrounded; rounding for display belongs to the formatters.
type Breakdown struct {
	Net         decimal.Decimal `json:"net" yaml:"net"`
	Tax         decimal.Decimal `json:"tax" yaml:"tax"`
	BL          decimal.Decimal `json:"bl" yaml:"bl"`
	Pension     decimal.Decimal `json:"pension" yaml:"pension"`
	Training    decimal.Decimal `json:"training" yaml:"training"`
	TotalSocial decimal.Decimal `json:"total_social" yaml:"total_social"`
}

// ZeroBreakdown returns a breakdown with every field set to zero.
func ZeroBreakdown() Breakdown {
	return Breakdown{
		Net:         decimal.Zero,
		Tax:         decimal.Zero,
		BL:          decimal.Zero,
		Pension:     decimal.Zero,
		Training:    decimal.Zero,
		TotalSocial: decimal.Zero,
	}
}

// TotalTaxes is income tax plus social insurance, as shown on the taxes card.
func (b Breakdown) TotalTaxes() decimal.Decimal {
	return b.Tax.Add(b.BL)
}

// TotalDeductions is everything taken out of profit on the way to net.
func (b Breakdown) TotalDeductions() decimal.Decimal {
	return b.BL.Add(b.Tax).Add(b.Pension).Add(b.Training)
}

// CalculationTrace records the intermediate values of one calculation, for
// the verbose reports.
type CalculationTrace struct {
	Profit       decimal.Decimal `json:"profit" yaml:"profit"`
	MonthsCount  int             `json:"months_count" yaml:"months_count"`
	TrainingCap  decimal.Decimal `json:"training_cap" yaml:"training_cap"`
	BLLowBracket decimal.Decimal `json:"bl_low_bracket" yaml:"bl_low_bracket"`
	BLDeductible decimal.Decimal `json:"bl_deductible" yaml:"bl_deductible"`
	Taxable      decimal.Decimal `json:"taxable" yaml:"taxable"`
	TaxBracket1  decimal.Decimal `json:"tax_bracket_1" yaml:"tax_bracket_1"`
	RawTax       decimal.Decimal `json:"raw_tax" yaml:"raw_tax"`
	Credit       decimal.Decimal `json:"credit" yaml:"credit"`
	Result       Breakdown       `json:"result" yaml:"result"`
}
