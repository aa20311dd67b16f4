package output

import (
	"bytes"
	"encoding/csv"

	"github.com/lffinance/dashboard/internal/domain"
	"github.com/shopspring/decimal"
)

// CSVClientExporter exports revenue per client for the selected period, largest first.
type CSVClientExporter struct{}

func (c CSVClientExporter) Name() string { return "clients-csv" }

func (c CSVClientExporter) Format(s *domain.DashboardSummary) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Period", "Client", "Revenue", "SharePercent"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, cl := range s.Clients {
		share := decimal.Zero
		if s.TotalIncome.IsPositive() {
			share = cl.Amount.Div(s.TotalIncome).Mul(decimalHundred)
		}
		row := []string{
			s.Period,
			cl.Client,
			FormatAgorot(cl.Amount),
			share.StringFixed(2),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
