package calculation

import (
	"errors"
	"testing"
	"time"

	"github.com/lffinance/dashboard/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func income(date string, desc string, amount int64) domain.IncomeRecord {
	d, _ := time.Parse("2006-01-02", date)
	return domain.IncomeRecord{
		Date:               d,
		ProjectDescription: desc,
		Client:             domain.ClientFromDescription(desc),
		AmountPreVAT:       decimal.NewFromInt(amount),
		PaymentStatus:      domain.PaymentStatusPaid,
	}
}

func expense(date string, amount int64) domain.ExpenseRecord {
	d, _ := time.Parse("2006-01-02", date)
	return domain.ExpenseRecord{Date: d, Description: "expense", AmountPreVAT: decimal.NewFromInt(amount)}
}

func fixtureRecords() ([]domain.IncomeRecord, []domain.ExpenseRecord) {
	inc := []domain.IncomeRecord{
		income("2025-11-03", "Acme - website", 12000),
		income("2025-11-20", "Globex - audit", 8000),
		income("2025-12-01", "Acme - maintenance", 5000),
		income("2026-01-15", "Initech", 15000),
	}
	exp := []domain.ExpenseRecord{
		expense("2025-11-10", 1500),
		expense("2025-12-05", 700),
		expense("2026-01-02", 300),
		expense("2026-02-01", 999),
	}
	return inc, exp
}

func TestAvailablePeriods(t *testing.T) {
	inc, _ := fixtureRecords()
	assert.Equal(t, []string{"all", "01/2026", "12/2025", "11/2025"}, AvailablePeriods(inc))
	assert.Equal(t, []string{"all"}, AvailablePeriods(nil))
}

func TestSelectPeriodAll(t *testing.T) {
	inc, exp := fixtureRecords()

	for _, period := range []string{"", "all"} {
		data, err := SelectPeriod(period, inc, exp)
		require.NoError(t, err)
		assert.Equal(t, domain.PeriodAll, data.Period)
		assert.Equal(t, 3, data.MonthsCount)
		assert.Len(t, data.Income, 4)
		assert.Len(t, data.Expenses, 4, "all expenses count, even months without income")
		// 40000 - 3499
		assert.True(t, data.Profit().Equal(decimal.NewFromInt(36501)), "profit %s", data.Profit())
	}
}

func TestSelectPeriodAllWithoutIncome(t *testing.T) {
	_, exp := fixtureRecords()
	data, err := SelectPeriod("all", nil, exp)
	require.NoError(t, err)
	assert.Equal(t, 1, data.MonthsCount, "months count never drops below one")
	assert.True(t, data.Profit().IsNegative())
}

func TestSelectPeriodMonth(t *testing.T) {
	inc, exp := fixtureRecords()

	data, err := SelectPeriod("11/2025", inc, exp)
	require.NoError(t, err)
	assert.Equal(t, "11/2025", data.Period)
	assert.Equal(t, 1, data.MonthsCount)
	assert.Len(t, data.Income, 2)
	assert.Len(t, data.Expenses, 1)
	assert.True(t, data.Profit().Equal(decimal.NewFromInt(18500)))

	data, err = SelectPeriod("02/2026", inc, exp)
	require.NoError(t, err)
	assert.Empty(t, data.Income)
	assert.True(t, data.Profit().Equal(decimal.NewFromInt(-999)))
}

func TestSelectPeriodInvalid(t *testing.T) {
	inc, exp := fixtureRecords()
	for _, period := range []string{"2025-11", "13/2025", "yearly", "11/25"} {
		_, err := SelectPeriod(period, inc, exp)
		assert.True(t, errors.Is(err, ErrUnknownPeriod), "period %q: %v", period, err)
	}
}

func TestClientRevenue(t *testing.T) {
	inc, _ := fixtureRecords()
	inc = append(inc, income("2026-01-20", "Globex - support", 7000))

	got := ClientRevenue(inc)
	require.Len(t, got, 3)
	assert.Equal(t, "Acme", got[0].Client)
	assert.True(t, got[0].Amount.Equal(decimal.NewFromInt(17000)))
	// Globex and Initech both total 15000; ties sort by name
	assert.Equal(t, "Globex", got[1].Client)
	assert.Equal(t, "Initech", got[2].Client)

	assert.Empty(t, ClientRevenue(nil))
}

func TestTargetProgress(t *testing.T) {
	tests := []struct {
		name            string
		net             decimal.Decimal
		target          decimal.Decimal
		months          int
		expectedPercent int
		expectedFrac    decimal.Decimal
	}{
		{"Partway", dec("17785.82"), dec("20000"), 1, 88, dec("0.889291")},
		{"Scaled by months", dec("30000"), dec("20000"), 3, 50, dec("0.5")},
		{"Over target", dec("50000"), dec("20000"), 1, 100, dec("1")},
		{"Negative net", dec("-100"), dec("20000"), 1, 0, decimal.Zero},
		{"No target", dec("1000"), decimal.Zero, 1, 0, decimal.Zero},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TargetProgress(tt.net, tt.target, tt.months)
			assert.Equal(t, tt.expectedPercent, got.Percent)
			assert.True(t, got.Fraction.Round(6).Equal(tt.expectedFrac), "fraction %s", got.Fraction)
		})
	}

	assert.True(t, TargetProgress(dec("1"), dec("20000"), 3).Target.Equal(dec("60000")))
}
