// Package dashboard assembles the summary shown on the dashboard from the
// record store and the net income calculator.
package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/lffinance/dashboard/internal/calculation"
	"github.com/lffinance/dashboard/internal/domain"
	"github.com/lffinance/dashboard/internal/storage"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// Service builds dashboard summaries. It holds no per-viewer state; every
// call receives the full selection.
type Service struct {
	store    storage.Reader
	years    *calculation.TaxYearTable
	defaults domain.DashboardConfig
	logger   calculation.Logger
	now      func() time.Time
}

// NewService creates a dashboard service. Zero-valued selection fields fall
// back to defaults.
func NewService(store storage.Reader, years *calculation.TaxYearTable, defaults domain.DashboardConfig, logger calculation.Logger) *Service {
	if logger == nil {
		logger = calculation.NopLogger{}
	}
	if years == nil {
		years = calculation.NewTaxYearTable(nil)
	}
	return &Service{store: store, years: years, defaults: defaults, logger: logger, now: time.Now}
}

// Defaults returns the presentation defaults the service was created with
func (s *Service) Defaults() domain.DashboardConfig { return s.defaults }

// Records fetches paid income and all expenses concurrently
func (s *Service) Records(ctx context.Context) ([]domain.IncomeRecord, []domain.ExpenseRecord, error) {
	var (
		income   []domain.IncomeRecord
		expenses []domain.ExpenseRecord
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		income, err = s.store.ListPaidIncome(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		expenses, err = s.store.ListExpenses(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, nil, fmt.Errorf("failed to load records: %w", err)
	}
	return income, expenses, nil
}

// Periods lists the selectable periods, "all" first and then months newest first
func (s *Service) Periods(ctx context.Context) ([]string, error) {
	income, _, err := s.Records(ctx)
	if err != nil {
		return nil, err
	}
	return calculation.AvailablePeriods(income), nil
}

// Summary computes the dashboard figures for a selection
func (s *Service) Summary(ctx context.Context, sel domain.Selection) (*domain.DashboardSummary, error) {
	sel = s.resolve(sel)

	params, err := s.years.Lookup(sel.TaxYear)
	if err != nil {
		return nil, err
	}

	income, expenses, err := s.Records(ctx)
	if err != nil {
		return nil, err
	}

	data, err := calculation.SelectPeriod(sel.Period, income, expenses)
	if err != nil {
		return nil, err
	}

	calc := calculation.NewNetIncomeCalculator(params, s.logger)
	profit := data.Profit()
	trace := calc.Trace(profit, data.MonthsCount)
	breakdown := trace.Result

	s.logger.Infof("summary period=%s months=%d income_rows=%d expense_rows=%d",
		data.Period, data.MonthsCount, len(data.Income), len(data.Expenses))

	return &domain.DashboardSummary{
		Period:        data.Period,
		Periods:       calculation.AvailablePeriods(income),
		MonthsCount:   data.MonthsCount,
		TaxYear:       params.Year,
		Currency:      s.defaults.CurrencySymbol,
		TotalIncome:   calculation.TotalIncome(data.Income),
		TotalExpenses: calculation.TotalExpenses(data.Expenses),
		Profit:        profit,
		Breakdown:     breakdown,
		Taxes:         breakdown.TotalTaxes(),
		Trace:         trace,
		Params:        params,
		Progress:      calculation.TargetProgress(breakdown.Net, sel.TargetNetMonthly, data.MonthsCount),
		Clients:       calculation.ClientRevenue(data.Income),
		GeneratedAt:   s.now(),
	}, nil
}

func (s *Service) resolve(sel domain.Selection) domain.Selection {
	if sel.Period == "" {
		sel.Period = domain.PeriodAll
	}
	if sel.TargetNetMonthly.Equal(decimal.Zero) {
		sel.TargetNetMonthly = s.defaults.TargetNetMonthly
	}
	if sel.TaxYear == 0 {
		sel.TaxYear = s.defaults.TaxYear
	}
	return sel
}

// PeriodManual labels summaries built from a profit given directly rather
// than from stored records.
const PeriodManual = "manual"

// ProfitSummary computes a summary for a profit entered by hand. Income is
// taken to be the profit and there are no clients.
func ProfitSummary(params domain.TaxYearParams, profit decimal.Decimal, monthsCount int, defaults domain.DashboardConfig, logger calculation.Logger) *domain.DashboardSummary {
	calc := calculation.NewNetIncomeCalculator(params, logger)
	trace := calc.Trace(profit, monthsCount)
	breakdown := trace.Result
	return &domain.DashboardSummary{
		Period:        PeriodManual,
		MonthsCount:   trace.MonthsCount,
		TaxYear:       params.Year,
		Currency:      defaults.CurrencySymbol,
		TotalIncome:   profit,
		TotalExpenses: decimal.Zero,
		Profit:        profit,
		Breakdown:     breakdown,
		Taxes:         breakdown.TotalTaxes(),
		Trace:         trace,
		Params:        params,
		Progress:      calculation.TargetProgress(breakdown.Net, defaults.TargetNetMonthly, trace.MonthsCount),
		GeneratedAt:   time.Now(),
	}
}
