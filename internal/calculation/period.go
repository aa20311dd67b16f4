package calculation

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/lffinance/dashboard/internal/domain"
	"github.com/lffinance/dashboard/pkg/dateutil"
	"github.com/shopspring/decimal"
)

// ErrUnknownPeriod is returned for a period that is neither "all" nor a valid MM/YYYY key.
var ErrUnknownPeriod = errors.New("unknown period")

var hundred = decimal.NewFromInt(100)

// PeriodData is the slice of records that belongs to one period selection.
type PeriodData struct {
	Period      string
	Income      []domain.IncomeRecord
	Expenses    []domain.ExpenseRecord
	MonthsCount int
}

// AvailablePeriods returns "all" followed by the distinct income months, newest first.
func AvailablePeriods(income []domain.IncomeRecord) []string {
	dates := make([]time.Time, len(income))
	for i, r := range income {
		dates[i] = r.Date
	}
	return append([]string{domain.PeriodAll}, dateutil.DistinctMonthKeys(dates)...)
}

// SelectPeriod filters the records for a period. "all" (or empty) keeps
// everything and counts the distinct income months, with a minimum of one.
// A month key keeps that month only and counts as one month.
func SelectPeriod(period string, income []domain.IncomeRecord, expenses []domain.ExpenseRecord) (PeriodData, error) {
	if period == "" || period == domain.PeriodAll {
		dates := make([]time.Time, len(income))
		for i, r := range income {
			dates[i] = r.Date
		}
		months := dateutil.CountDistinctMonths(dates)
		if months < 1 {
			months = 1
		}
		return PeriodData{Period: domain.PeriodAll, Income: income, Expenses: expenses, MonthsCount: months}, nil
	}

	month, err := dateutil.ParseMonthKey(period)
	if err != nil {
		return PeriodData{}, fmt.Errorf("%w: %v", ErrUnknownPeriod, err)
	}

	data := PeriodData{Period: period, MonthsCount: 1}
	for _, r := range income {
		if dateutil.SameMonth(r.Date, month) {
			data.Income = append(data.Income, r)
		}
	}
	for _, e := range expenses {
		if dateutil.SameMonth(e.Date, month) {
			data.Expenses = append(data.Expenses, e)
		}
	}
	return data, nil
}

// TotalIncome sums the pre-VAT income amounts
func TotalIncome(income []domain.IncomeRecord) decimal.Decimal {
	total := decimal.Zero
	for _, r := range income {
		total = total.Add(r.AmountPreVAT)
	}
	return total
}

// TotalExpenses sums the pre-VAT expense amounts
func TotalExpenses(expenses []domain.ExpenseRecord) decimal.Decimal {
	total := decimal.Zero
	for _, e := range expenses {
		total = total.Add(e.AmountPreVAT)
	}
	return total
}

// Profit is income minus expenses, both before VAT
func (pd PeriodData) Profit() decimal.Decimal {
	return TotalIncome(pd.Income).Sub(TotalExpenses(pd.Expenses))
}

// ClientRevenue totals income per client, largest first. Ties sort by client name.
func ClientRevenue(income []domain.IncomeRecord) []domain.ClientRevenue {
	totals := make(map[string]decimal.Decimal)
	for _, r := range income {
		totals[r.Client] = totals[r.Client].Add(r.AmountPreVAT)
	}
	out := make([]domain.ClientRevenue, 0, len(totals))
	for client, amount := range totals {
		out = append(out, domain.ClientRevenue{Client: client, Amount: amount})
	}
	sort.Slice(out, func(i, j int) bool {
		if c := out[i].Amount.Cmp(out[j].Amount); c != 0 {
			return c > 0
		}
		return out[i].Client < out[j].Client
	})
	return out
}

// TargetProgress measures net against the monthly target times the months
// covered. Percent is truncated and both values are clamped to the bar's
// range; a non-positive target yields zero progress.
func TargetProgress(net, targetMonthly decimal.Decimal, monthsCount int) domain.Progress {
	target := targetMonthly.Mul(decimal.NewFromInt(int64(normalizeMonths(monthsCount))))
	if target.LessThanOrEqual(decimal.Zero) {
		return domain.Progress{Target: target, Percent: 0, Fraction: decimal.Zero}
	}
	fraction := net.Div(target)
	fraction = decimal.Max(decimal.Zero, decimal.Min(decimal.NewFromInt(1), fraction))
	percent := net.Div(target).Mul(hundred).Truncate(0).IntPart()
	if percent > 100 {
		percent = 100
	}
	if percent < 0 {
		percent = 0
	}
	return domain.Progress{Target: target, Percent: int(percent), Fraction: fraction}
}
