// Package storage reads paid income and expense records from the finance database.
package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/lffinance/dashboard/internal/domain"
)

// ErrUnsupportedDriver is returned by Open for drivers other than postgres and sqlite
var ErrUnsupportedDriver = errors.New("unsupported database driver")

// Reader is the read-only view of the records the dashboard needs
type Reader interface {
	ListPaidIncome(ctx context.Context) ([]domain.IncomeRecord, error)
	ListExpenses(ctx context.Context) ([]domain.ExpenseRecord, error)
	Close() error
}

// Options tune a store after it is opened
type Options struct {
	// QueryTimeout bounds each query. Zero leaves only the caller's context.
	QueryTimeout time.Duration
}

// Open connects to the store named by driver ("postgres" or "sqlite")
func Open(ctx context.Context, driver, uri string, opts Options) (*SQLStore, error) {
	switch strings.ToLower(driver) {
	case "postgres", "postgresql":
		return OpenPostgres(ctx, uri, opts)
	case "sqlite", "sqlite3":
		return OpenSQLite(ctx, uri, opts)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, driver)
	}
}
