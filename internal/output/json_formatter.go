package output

import (
	"encoding/json"

	"github.com/lffinance/dashboard/internal/domain"
)

// JSONFormatter serializes the summary as pretty-printed JSON. Amounts are
// exact decimal strings; no display rounding is applied.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string { return "json" }

func (j JSONFormatter) Format(s *domain.DashboardSummary) ([]byte, error) {
	return json.MarshalIndent(s, "", "  ")
}
