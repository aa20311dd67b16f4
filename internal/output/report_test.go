package output_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	stddec "github.com/shopspring/decimal"

	"github.com/lffinance/dashboard/internal/domain"
	"github.com/lffinance/dashboard/internal/output"
)

func minimalSummary() *domain.DashboardSummary {
	return &domain.DashboardSummary{
		Period:      "all",
		MonthsCount: 1,
		Currency:    "₪",
		Profit:      stddec.NewFromInt(0),
		Breakdown:   domain.ZeroBreakdown(),
	}
}

func TestFormatters(t *testing.T) {
	if got := output.FormatCurrency(stddec.NewFromFloat(123.45)); got != "₪123" {
		t.Fatalf("FormatCurrency = %q", got)
	}
	if got := output.FormatPercentage(stddec.NewFromFloat(12.34)); got != "12.34%" {
		t.Fatalf("FormatPercentage = %q", got)
	}
}

func TestGenerateReport_AllFormats(t *testing.T) {
	dir := t.TempDir()
	for _, format := range output.AvailableFormatterNames() {
		name, err := output.GenerateReport(minimalSummary(), format, dir)
		if err != nil {
			t.Fatalf("GenerateReport %s error: %v", format, err)
		}
		if filepath.Dir(name) != dir {
			t.Fatalf("report %s written outside %s", name, dir)
		}
		if !strings.HasPrefix(filepath.Base(name), "net_income_all_") {
			t.Fatalf("unexpected file name %s", name)
		}
		data, err := os.ReadFile(name)
		if err != nil || len(data) == 0 {
			t.Fatalf("report %s empty or unreadable: %v", name, err)
		}
	}
}

func TestGenerateReport_Extensions(t *testing.T) {
	dir := t.TempDir()
	cases := map[string]string{"verbose": ".txt", "clients": ".csv", "yml": ".yaml", "dashboard": ".html"}
	for format, ext := range cases {
		name, err := output.GenerateReport(minimalSummary(), format, dir)
		if err != nil {
			t.Fatalf("GenerateReport %s error: %v", format, err)
		}
		if filepath.Ext(name) != ext {
			t.Fatalf("format %s wrote %s, want extension %s", format, name, ext)
		}
	}
}

func TestGenerateReport_Unknown(t *testing.T) {
	_, err := output.GenerateReport(minimalSummary(), "pdf", t.TempDir())
	if !errors.Is(err, output.ErrUnsupportedFormat) {
		t.Fatalf("expected ErrUnsupportedFormat, got %v", err)
	}
}

func TestGenerateReport_VariantsDoNotCollide(t *testing.T) {
	dir := t.TempDir()
	seen := map[string]bool{}
	for _, format := range []string{"console", "console-verbose", "csv", "clients-csv"} {
		name, err := output.GenerateReport(minimalSummary(), format, dir)
		if err != nil {
			t.Fatalf("GenerateReport %s error: %v", format, err)
		}
		if seen[name] {
			t.Fatalf("%s reused file name %s", format, name)
		}
		seen[name] = true
	}
}
