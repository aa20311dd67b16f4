package calculation

import (
	"github.com/lffinance/dashboard/internal/domain"
	"github.com/shopspring/decimal"
)

// NetIncomeCalculator turns a business profit into take-home pay for one tax year.
type NetIncomeCalculator struct {
	Params domain.TaxYearParams
	Logger Logger
}

// NewNetIncomeCalculator2025 creates a calculator with the built-in parameters
func NewNetIncomeCalculator2025() *NetIncomeCalculator {
	return &NetIncomeCalculator{
		Params: DefaultTaxYearParams(),
		Logger: NopLogger{},
	}
}

// NewNetIncomeCalculator creates a calculator with configurable parameters
func NewNetIncomeCalculator(params domain.TaxYearParams, logger Logger) *NetIncomeCalculator {
	if logger == nil {
		logger = NopLogger{}
	}
	return &NetIncomeCalculator{
		Params: params,
		Logger: logger,
	}
}

// SetLogger sets the logger for the calculator. If nil is provided, a no-op logger is used.
func (nc *NetIncomeCalculator) SetLogger(l Logger) {
	if l == nil {
		nc.Logger = NopLogger{}
		return
	}
	nc.Logger = l
}

// Calculate computes the deductions and net income for a profit covering monthsCount months.
func (nc *NetIncomeCalculator) Calculate(profit decimal.Decimal, monthsCount int) domain.Breakdown {
	return nc.Trace(profit, monthsCount).Result
}

// Trace is Calculate with the intermediate values kept.
func (nc *NetIncomeCalculator) Trace(profit decimal.Decimal, monthsCount int) domain.CalculationTrace {
	tr := TraceNet(nc.Params, profit, monthsCount)
	b := tr.Result
	if nc.Logger != nil {
		nc.Logger.Debugf("net income (year %d, %d months): profit=%s taxable=%s raw_tax=%s credit=%s bl=%s tax=%s pension=%s training=%s net=%s",
			nc.Params.Year, tr.MonthsCount, profit.StringFixed(2), tr.Taxable.StringFixed(2), tr.RawTax.StringFixed(2),
			tr.Credit.StringFixed(2), b.BL.StringFixed(2), b.Tax.StringFixed(2),
			b.Pension.StringFixed(2), b.Training.StringFixed(2), b.Net.StringFixed(2))
	}
	return tr
}

// CalculateNet applies the tax year parameters to a profit figure.
//
// Monthly thresholds (training cap, social insurance bracket, tax bracket,
// credit points) are multiplied by monthsCount. A monthsCount below 1 is
// treated as 1. Non-positive profit yields an all-zero breakdown. Net is not
// clamped and goes negative when deductions exceed profit.
func CalculateNet(p domain.TaxYearParams, profit decimal.Decimal, monthsCount int) domain.Breakdown {
	return TraceNet(p, profit, monthsCount).Result
}

// TraceNet is CalculateNet with the intermediate values kept.
func TraceNet(p domain.TaxYearParams, profit decimal.Decimal, monthsCount int) domain.CalculationTrace {
	n := normalizeMonths(monthsCount)
	months := decimal.NewFromInt(int64(n))
	trace := domain.CalculationTrace{
		Profit:       profit,
		MonthsCount:  n,
		TrainingCap:  p.TrainingCapMonthly.Mul(months),
		BLLowBracket: p.BLLowBracketMonthly.Mul(months),
		TaxBracket1:  p.TaxBracket1Monthly.Mul(months),
		Credit:       p.MonthlyCredit().Mul(months),
		BLDeductible: decimal.Zero,
		Taxable:      decimal.Zero,
		RawTax:       decimal.Zero,
		Result:       domain.ZeroBreakdown(),
	}
	if profit.LessThanOrEqual(decimal.Zero) {
		return trace
	}

	pension := profit.Mul(p.PensionRate)
	training := decimal.Min(profit.Mul(p.TrainingRate), trace.TrainingCap)
	bl := socialInsurance(p, profit, months)
	trace.BLDeductible = bl.Mul(p.EmployerDeductibleShare)

	// taxable can be negative when deductions exceed profit; the credit
	// floor below absorbs it.
	trace.Taxable = profit.Sub(pension).Sub(training).Sub(trace.BLDeductible)
	trace.RawTax = incomeTax(p, trace.Taxable, months)
	tax := decimal.Max(decimal.Zero, trace.RawTax.Sub(trace.Credit))

	net := profit.Sub(bl).Sub(tax).Sub(pension).Sub(training)

	trace.Result = domain.Breakdown{
		Net:         net,
		Tax:         tax,
		BL:          bl,
		Pension:     pension,
		Training:    training,
		TotalSocial: pension.Add(training),
	}
	return trace
}

func socialInsurance(p domain.TaxYearParams, profit, months decimal.Decimal) decimal.Decimal {
	lowBracket := p.BLLowBracketMonthly.Mul(months)
	if profit.GreaterThan(lowBracket) {
		return lowBracket.Mul(p.BLLowRate).Add(profit.Sub(lowBracket).Mul(p.BLHighRate))
	}
	return profit.Mul(p.BLLowRate)
}

func incomeTax(p domain.TaxYearParams, taxable, months decimal.Decimal) decimal.Decimal {
	bracket1 := p.TaxBracket1Monthly.Mul(months)
	if taxable.GreaterThan(bracket1) {
		return bracket1.Mul(p.TaxRate1).Add(taxable.Sub(bracket1).Mul(p.TaxRate2))
	}
	return taxable.Mul(p.TaxRate1)
}

func normalizeMonths(monthsCount int) int {
	if monthsCount < 1 {
		return 1
	}
	return monthsCount
}
