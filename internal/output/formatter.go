package output

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/lffinance/dashboard/internal/domain"
)

// ErrUnsupportedFormat is returned when a format name matches no formatter.
var ErrUnsupportedFormat = errors.New("unsupported report format")

// Formatter defines a pluggable output formatter that returns a byte slice.
// Implementations should be pure (no side effects besides deterministic formatting).
type Formatter interface {
	Format(summary *domain.DashboardSummary) ([]byte, error)
	// Name returns a short identifier for logging / debugging.
	Name() string
}

// FormatterFunc adapter to allow ordinary functions to act as a Formatter.
type FormatterFunc struct {
	ID string
	F  func(*domain.DashboardSummary) ([]byte, error)
}

func (ff FormatterFunc) Format(s *domain.DashboardSummary) ([]byte, error) { return ff.F(s) }
func (ff FormatterFunc) Name() string                                       { return ff.ID }

// WriteFormatted runs a formatter and writes output to a timestamped file with
// extension in dir. An empty dir means the working directory.
func WriteFormatted(f Formatter, summary *domain.DashboardSummary, dir, ext string) (string, error) {
	data, err := f.Format(summary)
	if err != nil {
		return "", err
	}
	filename := fmt.Sprintf("net_income_%s_%s%s.%s", periodSlug(summary), time.Now().Format("20060102_150405"), variantSuffix(f), ext)
	if dir != "" {
		filename = filepath.Join(dir, filename)
	}
	if err := os.WriteFile(filename, data, 0644); err != nil {
		return "", err
	}
	return filename, nil
}

// periodSlug turns "11/2025" into "2025-11" so it can sit in a file name
func periodSlug(s *domain.DashboardSummary) string {
	if s.Period == "" || s.IsAllPeriods() {
		return domain.PeriodAll
	}
	if parts := strings.SplitN(s.Period, "/", 2); len(parts) == 2 {
		return strings.ReplaceAll(parts[1], "/", "-") + "-" + parts[0]
	}
	return strings.ReplaceAll(s.Period, "/", "-")
}

// builtInFormatters stores available formatters.
var builtInFormatters = []Formatter{
	ConsoleFormatter{},
	ConsoleVerboseFormatter{},
	CSVSummarizer{},
	CSVClientExporter{},
	HTMLFormatter{},
	JSONFormatter{},
	YAMLFormatter{},
}

// GetFormatterByName fetches a registered formatter.
func GetFormatterByName(name string) Formatter {
	n := NormalizeFormatName(name)
	for _, f := range builtInFormatters {
		if f.Name() == name {
			return f
		}
	}
	// try normalized name
	for _, f := range builtInFormatters {
		if f.Name() == n {
			return f
		}
	}
	return nil
}

// aliasMap provides user-friendly synonyms for format names.
var aliasMap = map[string]string{
	"text":         "console",
	"txt":          "console",
	"console-lite": "console",
	"verbose":      "console-verbose",
	"csv-summary":  "csv",
	"csv-clients":  "clients-csv",
	"clients":      "clients-csv",
	"html-report":  "html",
	"dashboard":    "html",
	"json-pretty":  "json",
	"yml":          "yaml",
}

// NormalizeFormatName lowers and resolves aliases.
func NormalizeFormatName(name string) string {
	n := strings.ToLower(strings.TrimSpace(name))
	if mapped, ok := aliasMap[n]; ok {
		return mapped
	}
	return n
}

// AvailableFormatterNames returns the canonical formatter names.
func AvailableFormatterNames() []string {
	names := make([]string, 0, len(builtInFormatters))
	for _, f := range builtInFormatters {
		names = append(names, f.Name())
	}
	sort.Strings(names)
	return names
}

// AvailableFormatAliases returns the supported alias keys.
func AvailableFormatAliases() []string {
	keys := make([]string, 0, len(aliasMap))
	for k := range aliasMap {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// variantSuffix keeps formatters that share an extension from overwriting each other
func variantSuffix(f Formatter) string {
	switch f.Name() {
	case "console-verbose":
		return "_detailed"
	case "clients-csv":
		return "_clients"
	default:
		return ""
	}
}

// FileExtension returns the extension used when a formatter's output is saved
func FileExtension(f Formatter) string {
	switch f.Name() {
	case "console", "console-verbose":
		return "txt"
	case "clients-csv":
		return "csv"
	default:
		return f.Name()
	}
}
