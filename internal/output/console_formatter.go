package output

import (
	"bytes"
	"fmt"

	"github.com/lffinance/dashboard/internal/domain"
)

// ConsoleFormatter provides a concise console summary via the formatter interface.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(s *domain.DashboardSummary) ([]byte, error) {
	var buf bytes.Buffer
	sym := s.Currency
	fmt.Fprintln(&buf, "NET INCOME SUMMARY")
	fmt.Fprintln(&buf, "================================")
	fmt.Fprintf(&buf, "Period: %s (%d months, tax year %d)\n", PeriodLabel(s.Period), s.MonthsCount, s.TaxYear)
	fmt.Fprintln(&buf)
	fmt.Fprintf(&buf, "%-18s %s\n", "Income:", FormatCurrencyWith(sym, s.TotalIncome))
	fmt.Fprintf(&buf, "%-18s %s\n", "Expenses:", FormatCurrencyWith(sym, s.TotalExpenses))
	fmt.Fprintf(&buf, "%-18s %s\n", "Profit:", FormatCurrencyWith(sym, s.Profit))
	fmt.Fprintln(&buf)
	fmt.Fprintf(&buf, "%-18s %s\n", "Income tax:", FormatCurrencyWith(sym, s.Breakdown.Tax))
	fmt.Fprintf(&buf, "%-18s %s\n", "Bituach Leumi:", FormatCurrencyWith(sym, s.Breakdown.BL))
	fmt.Fprintf(&buf, "%-18s %s\n", "Pension:", FormatCurrencyWith(sym, s.Breakdown.Pension))
	fmt.Fprintf(&buf, "%-18s %s\n", "Training fund:", FormatCurrencyWith(sym, s.Breakdown.Training))
	fmt.Fprintf(&buf, "%-18s %s\n", "Net income:", FormatCurrencyWith(sym, s.Breakdown.Net))
	fmt.Fprintf(&buf, "Target: %s (%d%% reached)\n", FormatCurrencyWith(sym, s.Progress.Target), s.Progress.Percent)

	if len(s.Clients) > 0 {
		fmt.Fprintln(&buf)
		fmt.Fprintln(&buf, "Revenue by client:")
		for _, c := range s.Clients {
			fmt.Fprintf(&buf, "  %-24s %s\n", clientName(c.Client), FormatCurrencyWith(sym, c.Amount))
		}
	}
	return buf.Bytes(), nil
}

func clientName(client string) string {
	if client == "" {
		return "(unnamed)"
	}
	return client
}
