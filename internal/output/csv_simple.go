package output

import (
	"bytes"
	"encoding/csv"

	"github.com/lffinance/dashboard/internal/domain"
)

// CSVSummarizer implements the summary CSV output (one row per period summary).
type CSVSummarizer struct{}

func (c CSVSummarizer) Name() string { return "csv" }

func (c CSVSummarizer) Format(s *domain.DashboardSummary) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Period", "Months", "TaxYear", "Income", "Expenses", "Profit", "IncomeTax", "BituachLeumi", "Pension", "TrainingFund", "TotalSocial", "NetIncome", "Target", "TargetPercent"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	b := s.Breakdown
	row := []string{
		s.Period,
		intToString(s.MonthsCount),
		intToString(s.TaxYear),
		FormatAgorot(s.TotalIncome),
		FormatAgorot(s.TotalExpenses),
		FormatAgorot(s.Profit),
		FormatAgorot(b.Tax),
		FormatAgorot(b.BL),
		FormatAgorot(b.Pension),
		FormatAgorot(b.Training),
		FormatAgorot(b.TotalSocial),
		FormatAgorot(b.Net),
		FormatAgorot(s.Progress.Target),
		intToString(s.Progress.Percent),
	}
	if err := w.Write(row); err != nil {
		return nil, err
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
