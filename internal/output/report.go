package output

import (
	"fmt"
	"strings"

	"github.com/lffinance/dashboard/internal/domain"
)

// Render resolves a format name (aliases included) and formats the summary.
func Render(summary *domain.DashboardSummary, format string) ([]byte, error) {
	f, err := lookup(format)
	if err != nil {
		return nil, err
	}
	return f.Format(summary)
}

// GenerateReport formats the summary and writes it to a timestamped file in dir.
// It returns the file name.
func GenerateReport(summary *domain.DashboardSummary, format, dir string) (string, error) {
	f, err := lookup(format)
	if err != nil {
		return "", err
	}
	return WriteFormatted(f, summary, dir, FileExtension(f))
}

func lookup(format string) (Formatter, error) {
	if f := GetFormatterByName(format); f != nil {
		return f, nil
	}
	// enrich error with available formatters and aliases
	return nil, fmt.Errorf("%w: %q. Try one of: %s (aliases: %s)", ErrUnsupportedFormat, format,
		strings.Join(AvailableFormatterNames(), ", "), strings.Join(AvailableFormatAliases(), ", "))
}
