package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/lffinance/dashboard/internal/domain"
)

// ConsoleVerboseFormatter renders the step-by-step calculation report.
type ConsoleVerboseFormatter struct{}

func (c ConsoleVerboseFormatter) Name() string { return "console-verbose" }

func (c ConsoleVerboseFormatter) Format(s *domain.DashboardSummary) ([]byte, error) {
	var buf bytes.Buffer
	sym := s.Currency

	fmt.Fprintln(&buf, "=================================================================================")
	fmt.Fprintln(&buf, "DETAILED NET INCOME ANALYSIS")
	fmt.Fprintln(&buf, "=================================================================================")
	fmt.Fprintln(&buf)
	fmt.Fprintln(&buf, "KEY ASSUMPTIONS:")
	for _, a := range GenerateAssumptions(s.Params) {
		fmt.Fprintf(&buf, "• %s\n", a)
	}
	fmt.Fprintln(&buf)

	tr := s.Trace
	fmt.Fprintf(&buf, "PERIOD: %s (%d months)\n", PeriodLabel(s.Period), tr.MonthsCount)
	fmt.Fprintln(&buf, strings.Repeat("=", 50))
	fmt.Fprintln(&buf, "INCOME:")
	fmt.Fprintf(&buf, "  Paid income (pre-VAT):  %s\n", FormatCurrencyWith(sym, s.TotalIncome))
	fmt.Fprintf(&buf, "  Expenses (pre-VAT):     %s\n", FormatCurrencyWith(sym, s.TotalExpenses))
	fmt.Fprintf(&buf, "  PROFIT:                 %s\n", FormatCurrencyWith(sym, s.Profit))
	fmt.Fprintln(&buf)

	b := s.Breakdown
	fmt.Fprintln(&buf, "CONTRIBUTIONS:")
	fmt.Fprintf(&buf, "  Pension:                %s\n", FormatCurrencyWith(sym, b.Pension))
	fmt.Fprintf(&buf, "  Training fund:          %s (cap %s)\n", FormatCurrencyWith(sym, b.Training), FormatCurrencyWith(sym, tr.TrainingCap))
	fmt.Fprintf(&buf, "  Bituach Leumi:          %s (low bracket up to %s)\n", FormatCurrencyWith(sym, b.BL), FormatCurrencyWith(sym, tr.BLLowBracket))
	fmt.Fprintf(&buf, "  Deductible BL share:    %s\n", FormatCurrencyWith(sym, tr.BLDeductible))
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, "INCOME TAX:")
	fmt.Fprintf(&buf, "  Taxable income:         %s\n", FormatCurrencyWith(sym, tr.Taxable))
	fmt.Fprintf(&buf, "  Tax before credits:     %s (first bracket up to %s)\n", FormatCurrencyWith(sym, tr.RawTax), FormatCurrencyWith(sym, tr.TaxBracket1))
	fmt.Fprintf(&buf, "  Credit points:          %s\n", FormatCurrencyWith(sym, tr.Credit))
	fmt.Fprintf(&buf, "  INCOME TAX:             %s\n", FormatCurrencyWith(sym, b.Tax))
	fmt.Fprintln(&buf)

	in := AnalyzeSummary(s)
	fmt.Fprintln(&buf, "NET INCOME:")
	fmt.Fprintln(&buf, "----------------------")
	fmt.Fprintf(&buf, "  Total deductions:       %s\n", FormatCurrencyWith(sym, b.TotalDeductions()))
	fmt.Fprintf(&buf, "  Net income:             %s\n", FormatCurrencyWith(sym, b.Net))
	fmt.Fprintf(&buf, "  Monthly average:        %s\n", FormatCurrencyWith(sym, in.MonthlyNet))
	fmt.Fprintf(&buf, "  Taxes (tax + BL):       %s (%s of profit)\n", FormatCurrencyWith(sym, s.Taxes), FormatPercentage(in.TaxShare))
	fmt.Fprintf(&buf, "  Savings (pension + fund): %s (%s of profit)\n", FormatCurrencyWith(sym, b.TotalSocial), FormatPercentage(in.SavingsShare))
	fmt.Fprintf(&buf, "  Target:                 %s, %d%% reached, %s to go\n",
		FormatCurrencyWith(sym, s.Progress.Target), s.Progress.Percent, FormatCurrencyWith(sym, in.RemainingToTarget))

	if len(s.Clients) > 0 {
		fmt.Fprintln(&buf)
		fmt.Fprintln(&buf, "REVENUE BY CLIENT:")
		for _, cl := range s.Clients {
			fmt.Fprintf(&buf, "  %-24s %s\n", clientName(cl.Client), FormatCurrencyWith(sym, cl.Amount))
		}
		if in.TopClient != "" {
			fmt.Fprintf(&buf, "  Largest client share:   %s (%s)\n", FormatPercentage(in.TopClientShare), clientName(in.TopClient))
		}
	}
	return buf.Bytes(), nil
}
