package output

import (
	"github.com/lffinance/dashboard/internal/domain"
	"gopkg.in/yaml.v3"
)

// YAMLFormatter serializes the summary as YAML, with the same exact amounts as JSON.
type YAMLFormatter struct{}

func (y YAMLFormatter) Name() string { return "yaml" }

func (y YAMLFormatter) Format(s *domain.DashboardSummary) ([]byte, error) {
	return yaml.Marshal(s)
}
