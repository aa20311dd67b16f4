package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PeriodAll selects every month in the data.
const PeriodAll = "all"

// Selection is what the viewer asked for. It is passed explicitly through
// every layer; nothing keeps it between requests.
type Selection struct {
	Period           string          `json:"period" yaml:"period"`
	TargetNetMonthly decimal.Decimal `json:"target_net_monthly" yaml:"target_net_monthly"`
	TaxYear          int             `json:"tax_year" yaml:"tax_year"`
}

// ClientRevenue is the income total of one client in the selected period.
type ClientRevenue struct {
	Client string          `json:"client" yaml:"client"`
	Amount decimal.Decimal `json:"amount" yaml:"amount"`
}

// Progress tracks net income against the monthly target scaled by the
// number of months in the period.
type Progress struct {
	Target   decimal.Decimal `json:"target" yaml:"target"`
	Percent  int             `json:"percent" yaml:"percent"`
	Fraction decimal.Decimal `json:"fraction" yaml:"fraction"`
}

// DashboardSummary carries everything the dashboard shows for one selection.
type DashboardSummary struct {
	Period        string           `json:"period" yaml:"period"`
	Periods       []string         `json:"periods" yaml:"periods"`
	MonthsCount   int              `json:"months_count" yaml:"months_count"`
	TaxYear       int              `json:"tax_year" yaml:"tax_year"`
	Currency      string           `json:"currency" yaml:"currency"`
	TotalIncome   decimal.Decimal  `json:"total_income" yaml:"total_income"`
	TotalExpenses decimal.Decimal  `json:"total_expenses" yaml:"total_expenses"`
	Profit        decimal.Decimal  `json:"profit" yaml:"profit"`
	Breakdown     Breakdown        `json:"breakdown" yaml:"breakdown"`
	Taxes         decimal.Decimal  `json:"taxes" yaml:"taxes"` // income tax + social insurance
	Trace         CalculationTrace `json:"trace" yaml:"trace"`
	Params        TaxYearParams    `json:"tax_params" yaml:"tax_params"`
	Progress      Progress         `json:"progress" yaml:"progress"`
	Clients       []ClientRevenue  `json:"clients" yaml:"clients"`
	GeneratedAt   time.Time        `json:"generated_at" yaml:"generated_at"`
}

// IsAllPeriods reports whether the summary spans the whole data set.
func (s *DashboardSummary) IsAllPeriods() bool {
	return s.Period == PeriodAll
}
