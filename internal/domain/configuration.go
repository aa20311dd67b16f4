package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Configuration represents the complete application configuration
type Configuration struct {
	Server    ServerConfig    `yaml:"server" json:"server"`
	Database  DatabaseConfig  `yaml:"database" json:"database"`
	Dashboard DashboardConfig `yaml:"dashboard" json:"dashboard"`
	TaxYears  []TaxYearParams `yaml:"tax_years" json:"tax_years"`
}

// ServerConfig configures the HTTP dashboard
type ServerConfig struct {
	Addr         string        `yaml:"addr" json:"addr"`
	ReadTimeout  time.Duration `yaml:"read_timeout" json:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout" json:"write_timeout"`
}

// DatabaseConfig selects the record store
type DatabaseConfig struct {
	Driver       string        `yaml:"driver" json:"driver"` // postgres or sqlite
	URI          string        `yaml:"uri" json:"-"`         // usually supplied through DB_URI
	QueryTimeout time.Duration `yaml:"query_timeout" json:"query_timeout"`
}

// DashboardConfig holds presentation defaults
type DashboardConfig struct {
	TargetNetMonthly decimal.Decimal `yaml:"target_net_monthly" json:"target_net_monthly"`
	TaxYear          int             `yaml:"tax_year" json:"tax_year"`
	CurrencySymbol   string          `yaml:"currency_symbol" json:"currency_symbol"`
}
