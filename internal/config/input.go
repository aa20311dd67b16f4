package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/lffinance/dashboard/internal/calculation"
	"github.com/lffinance/dashboard/internal/domain"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// Environment variables that override the configuration file
const (
	EnvDBURI    = "DB_URI"
	EnvDBDriver = "DB_DRIVER"
	EnvAddr     = "LFF_ADDR"
	EnvLogLevel = "LOG_LEVEL"
)

// Defaults applied to fields the file leaves empty
const (
	DefaultAddr         = ":8080"
	DefaultDriver       = "postgres"
	DefaultQueryTimeout = 10 * time.Second
	DefaultReadTimeout  = 15 * time.Second
	DefaultWriteTimeout = 30 * time.Second
)

// DefaultTargetNetMonthly is the monthly net income goal shown on the dashboard
var DefaultTargetNetMonthly = decimal.NewFromInt(20000)

var supportedDrivers = map[string]bool{"postgres": true, "sqlite": true}

// driverAliases maps the extra names storage.Open accepts onto the canonical ones
var driverAliases = map[string]string{"postgresql": "postgres", "sqlite3": "sqlite"}

func normalizeDriver(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	if canonical, ok := driverAliases[name]; ok {
		return canonical
	}
	return name
}

// InputParser handles parsing of input configuration files
type InputParser struct {
	// EnvFiles are loaded with godotenv before overrides are applied.
	// Missing files are ignored.
	EnvFiles []string
	lookupEnv func(string) (string, bool)
}

// NewInputParser creates a new input parser that reads .env from the working directory
func NewInputParser() *InputParser {
	return &InputParser{EnvFiles: []string{".env"}, lookupEnv: os.LookupEnv}
}

// LoadFromFile loads configuration from a YAML file, applies defaults and
// environment overrides, then validates the result. An empty filename skips
// the file and builds the configuration from defaults and environment only.
func (ip *InputParser) LoadFromFile(filename string) (*domain.Configuration, error) {
	var config domain.Configuration

	if filename != "" {
		data, err := os.ReadFile(filename)
		if err != nil {
			return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
		}
		if err := yaml.Unmarshal(data, &config); err != nil {
			return nil, fmt.Errorf("failed to parse YAML: %w", err)
		}
	}

	ip.loadEnvFiles()
	ApplyDefaults(&config)
	ip.ApplyEnvOverrides(&config)

	if err := ip.ValidateConfiguration(&config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &config, nil
}

func (ip *InputParser) loadEnvFiles() {
	for _, f := range ip.EnvFiles {
		if _, err := os.Stat(f); err != nil {
			continue
		}
		// godotenv.Load never overwrites variables already set in the process
		_ = godotenv.Load(f)
	}
}

// ApplyDefaults fills in every field left empty by the file
func ApplyDefaults(config *domain.Configuration) {
	if config.Server.Addr == "" {
		config.Server.Addr = DefaultAddr
	}
	if config.Server.ReadTimeout == 0 {
		config.Server.ReadTimeout = DefaultReadTimeout
	}
	if config.Server.WriteTimeout == 0 {
		config.Server.WriteTimeout = DefaultWriteTimeout
	}
	config.Database.Driver = normalizeDriver(config.Database.Driver)
	if config.Database.Driver == "" {
		config.Database.Driver = DefaultDriver
	}
	if config.Database.QueryTimeout == 0 {
		config.Database.QueryTimeout = DefaultQueryTimeout
	}
	if config.Dashboard.TargetNetMonthly.IsZero() {
		config.Dashboard.TargetNetMonthly = DefaultTargetNetMonthly
	}
	if config.Dashboard.TaxYear == 0 {
		config.Dashboard.TaxYear = calculation.CurrentTaxYear
	}
	if config.Dashboard.CurrencySymbol == "" {
		config.Dashboard.CurrencySymbol = "₪"
	}
}

// ApplyEnvOverrides replaces file values with the environment variables that are set
func (ip *InputParser) ApplyEnvOverrides(config *domain.Configuration) {
	lookup := ip.lookupEnv
	if lookup == nil {
		lookup = os.LookupEnv
	}
	if v, ok := lookup(EnvDBURI); ok && v != "" {
		config.Database.URI = v
	}
	if v, ok := lookup(EnvDBDriver); ok && v != "" {
		config.Database.Driver = normalizeDriver(v)
	}
	if v, ok := lookup(EnvAddr); ok && v != "" {
		config.Server.Addr = v
	}
}

// LogLevel returns LOG_LEVEL from the environment (after .env loading), or "".
func (ip *InputParser) LogLevel() string {
	lookup := ip.lookupEnv
	if lookup == nil {
		lookup = os.LookupEnv
	}
	v, _ := lookup(EnvLogLevel)
	return strings.TrimSpace(v)
}

// ValidateConfiguration validates the loaded configuration and reports every problem found
func (ip *InputParser) ValidateConfiguration(config *domain.Configuration) error {
	var errs []error

	if !supportedDrivers[config.Database.Driver] {
		errs = append(errs, fmt.Errorf("database driver must be 'postgres' or 'sqlite', got %q", config.Database.Driver))
	}
	if config.Database.URI == "" {
		errs = append(errs, fmt.Errorf("database uri is required (set %s or database.uri)", EnvDBURI))
	}
	if config.Database.QueryTimeout < 0 {
		errs = append(errs, fmt.Errorf("database query timeout cannot be negative"))
	}
	if config.Server.Addr == "" {
		errs = append(errs, fmt.Errorf("server address is required"))
	}
	if config.Dashboard.TargetNetMonthly.LessThanOrEqual(decimal.Zero) {
		errs = append(errs, fmt.Errorf("dashboard target net monthly must be positive"))
	}

	seen := make(map[int]bool)
	for i, params := range config.TaxYears {
		if seen[params.Year] {
			errs = append(errs, fmt.Errorf("tax year %d is defined more than once", params.Year))
		}
		seen[params.Year] = true
		if err := ip.validateTaxYear(&params); err != nil {
			errs = append(errs, fmt.Errorf("tax_years[%d] validation failed: %w", i, err))
		}
	}

	if len(errs) == 0 {
		table := calculation.NewTaxYearTable(config.TaxYears)
		if _, err := table.Lookup(config.Dashboard.TaxYear); err != nil {
			errs = append(errs, fmt.Errorf("dashboard tax year: %w", err))
		}
	}

	return errors.Join(errs...)
}

// validateTaxYear validates a single year of tax parameters
func (ip *InputParser) validateTaxYear(p *domain.TaxYearParams) error {
	var errs []error
	if p.Year < 2000 || p.Year > 2100 {
		errs = append(errs, fmt.Errorf("year %d is out of range", p.Year))
	}

	rates := []struct {
		name  string
		value decimal.Decimal
	}{
		{"pension_rate", p.PensionRate},
		{"training_rate", p.TrainingRate},
		{"bl_low_rate", p.BLLowRate},
		{"bl_high_rate", p.BLHighRate},
		{"employer_deductible_share", p.EmployerDeductibleShare},
		{"tax_rate_1", p.TaxRate1},
		{"tax_rate_2", p.TaxRate2},
	}
	one := decimal.NewFromInt(1)
	for _, r := range rates {
		if r.value.IsNegative() || r.value.GreaterThan(one) {
			errs = append(errs, fmt.Errorf("%s must be between 0 and 1", r.name))
		}
	}

	amounts := []struct {
		name  string
		value decimal.Decimal
	}{
		{"training_cap_monthly", p.TrainingCapMonthly},
		{"bl_low_bracket_monthly", p.BLLowBracketMonthly},
		{"tax_bracket_1_monthly", p.TaxBracket1Monthly},
		{"credit_point_value", p.CreditPointValue},
		{"credit_points_count", p.CreditPointsCount},
	}
	for _, a := range amounts {
		if a.value.IsNegative() {
			errs = append(errs, fmt.Errorf("%s cannot be negative", a.name))
		}
	}

	return errors.Join(errs...)
}

// CreateExampleConfiguration creates an example configuration file
func (ip *InputParser) CreateExampleConfiguration() *domain.Configuration {
	return &domain.Configuration{
		Server: domain.ServerConfig{
			Addr:         DefaultAddr,
			ReadTimeout:  DefaultReadTimeout,
			WriteTimeout: DefaultWriteTimeout,
		},
		Database: domain.DatabaseConfig{
			Driver:       "sqlite",
			URI:          "data/lffinance.db",
			QueryTimeout: DefaultQueryTimeout,
		},
		Dashboard: domain.DashboardConfig{
			TargetNetMonthly: DefaultTargetNetMonthly,
			TaxYear:          calculation.CurrentTaxYear,
			CurrencySymbol:   "₪",
		},
		TaxYears: []domain.TaxYearParams{calculation.DefaultTaxYearParams()},
	}
}

// SaveConfiguration writes a configuration as YAML
func SaveConfiguration(config *domain.Configuration, filename string) error {
	b, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal configuration: %w", err)
	}
	if err := os.WriteFile(filename, b, 0644); err != nil {
		return fmt.Errorf("failed to write file %s: %w", filename, err)
	}
	return nil
}
