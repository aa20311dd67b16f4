package calculation

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/lffinance/dashboard/internal/domain"
	"github.com/shopspring/decimal"
)

// RATE ASSUMPTIONS:
//
// 1. Pension: 16.5% of profit, uncapped.
// 2. Training fund: 4.5% of profit, capped at 1,100 per month.
// 3. Social insurance: 5.97% up to 7,522 per month, 17.83% above.
//    52% of the contribution is deductible from taxable income.
// 4. Income tax: 10% up to 7,000 per month, 14% above. Higher brackets are
//    not modelled.
// 5. Credit points: 4.25 points at 245 per point per month.

// CurrentTaxYear is the year of the built-in parameters.
const CurrentTaxYear = 2025

// ErrUnknownTaxYear is returned when no parameters exist for a year.
var ErrUnknownTaxYear = errors.New("unknown tax year")

// DefaultTaxYearParams returns the built-in parameters for CurrentTaxYear.
func DefaultTaxYearParams() domain.TaxYearParams {
	return domain.TaxYearParams{
		Year:                    CurrentTaxYear,
		PensionRate:             decimal.RequireFromString("0.165"),
		TrainingRate:            decimal.RequireFromString("0.045"),
		TrainingCapMonthly:      decimal.NewFromInt(1100),
		BLLowBracketMonthly:     decimal.NewFromInt(7522),
		BLLowRate:               decimal.RequireFromString("0.0597"),
		BLHighRate:              decimal.RequireFromString("0.1783"),
		EmployerDeductibleShare: decimal.RequireFromString("0.52"),
		TaxBracket1Monthly:      decimal.NewFromInt(7000),
		TaxRate1:                decimal.RequireFromString("0.10"),
		TaxRate2:                decimal.RequireFromString("0.14"),
		CreditPointValue:        decimal.NewFromInt(245),
		CreditPointsCount:       decimal.RequireFromString("4.25"),
	}
}

// TaxYearTable resolves parameters by tax year.
type TaxYearTable struct {
	years map[int]domain.TaxYearParams
}

// NewTaxYearTable creates a table seeded with the built-in year. Configured
// years are layered on top and replace the built-in entry for the same year.
func NewTaxYearTable(configured []domain.TaxYearParams) *TaxYearTable {
	t := &TaxYearTable{years: make(map[int]domain.TaxYearParams)}
	def := DefaultTaxYearParams()
	t.years[def.Year] = def
	for _, p := range configured {
		t.years[p.Year] = p
	}
	return t
}

// Lookup returns the parameters for a year. Year 0 means CurrentTaxYear.
func (t *TaxYearTable) Lookup(year int) (domain.TaxYearParams, error) {
	if year == 0 {
		year = CurrentTaxYear
	}
	p, ok := t.years[year]
	if !ok {
		return domain.TaxYearParams{}, fmt.Errorf("%w: %d (known years: %s)", ErrUnknownTaxYear, year, joinYears(t.Years()))
	}
	return p, nil
}

// Years returns the known years in ascending order.
func (t *TaxYearTable) Years() []int {
	years := make([]int, 0, len(t.years))
	for y := range t.years {
		years = append(years, y)
	}
	sort.Ints(years)
	return years
}

func joinYears(years []int) string {
	parts := make([]string, len(years))
	for i, y := range years {
		parts[i] = strconv.Itoa(y)
	}
	return strings.Join(parts, ", ")
}
