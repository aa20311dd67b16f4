package storage

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/lffinance/dashboard/internal/domain"
	"github.com/shopspring/decimal"
)

const (
	// %s is the driver's first bind placeholder
	paidIncomeQuery = `
		SELECT date, project_description, amount_pre_vat, payment_status
		FROM income
		WHERE payment_status = %s
		ORDER BY date`

	expensesQuery = `
		SELECT date, description, amount_pre_vat
		FROM expenses
		ORDER BY date`
)

// dateLayouts are tried in order for dates that come back as text
var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05.999999999-07:00",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// SQLStore implements Reader on top of database/sql
type SQLStore struct {
	db      *sql.DB
	driver  string
	timeout time.Duration
}

func newSQLStore(db *sql.DB, driver string, opts Options) *SQLStore {
	return &SQLStore{db: db, driver: driver, timeout: opts.QueryTimeout}
}

// Driver returns the name of the backend, "postgres" or "sqlite"
func (s *SQLStore) Driver() string { return s.driver }

// Close closes the underlying connection pool
func (s *SQLStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// placeholder returns the first positional bind parameter for the driver
func (s *SQLStore) placeholder() string {
	if s.driver == "postgres" {
		return "$1"
	}
	return "?"
}

func (s *SQLStore) queryContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.timeout > 0 {
		return context.WithTimeout(ctx, s.timeout)
	}
	return context.WithCancel(ctx)
}

// ListPaidIncome returns every income row whose payment status is PaymentStatusPaid, oldest first
func (s *SQLStore) ListPaidIncome(ctx context.Context) ([]domain.IncomeRecord, error) {
	ctx, cancel := s.queryContext(ctx)
	defer cancel()

	query := fmt.Sprintf(paidIncomeQuery, s.placeholder())
	rows, err := s.db.QueryContext(ctx, query, domain.PaymentStatusPaid)
	if err != nil {
		return nil, fmt.Errorf("failed to query income: %w", err)
	}
	defer rows.Close()

	var records []domain.IncomeRecord
	for rows.Next() {
		var (
			rawDate any
			desc    sql.NullString
			amount  decimal.NullDecimal
			status  sql.NullString
		)
		if err := rows.Scan(&rawDate, &desc, &amount, &status); err != nil {
			return nil, fmt.Errorf("failed to scan income row: %w", err)
		}
		date, err := parseDate(rawDate)
		if err != nil {
			return nil, fmt.Errorf("income row %d: %w", len(records)+1, err)
		}
		records = append(records, domain.IncomeRecord{
			Date:               date,
			ProjectDescription: desc.String,
			Client:             domain.ClientFromDescription(desc.String),
			AmountPreVAT:       amountOrZero(amount),
			PaymentStatus:      status.String,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read income rows: %w", err)
	}
	return records, nil
}

// ListExpenses returns every expense row, oldest first
func (s *SQLStore) ListExpenses(ctx context.Context) ([]domain.ExpenseRecord, error) {
	ctx, cancel := s.queryContext(ctx)
	defer cancel()

	rows, err := s.db.QueryContext(ctx, expensesQuery)
	if err != nil {
		return nil, fmt.Errorf("failed to query expenses: %w", err)
	}
	defer rows.Close()

	var records []domain.ExpenseRecord
	for rows.Next() {
		var (
			rawDate any
			desc    sql.NullString
			amount  decimal.NullDecimal
		)
		if err := rows.Scan(&rawDate, &desc, &amount); err != nil {
			return nil, fmt.Errorf("failed to scan expense row: %w", err)
		}
		date, err := parseDate(rawDate)
		if err != nil {
			return nil, fmt.Errorf("expense row %d: %w", len(records)+1, err)
		}
		records = append(records, domain.ExpenseRecord{
			Date:         date,
			Description:  desc.String,
			AmountPreVAT: amountOrZero(amount),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read expense rows: %w", err)
	}
	return records, nil
}

func amountOrZero(n decimal.NullDecimal) decimal.Decimal {
	if !n.Valid {
		return decimal.Zero
	}
	return n.Decimal
}

// parseDate accepts the forms drivers hand back for a DATE column
func parseDate(v any) (time.Time, error) {
	switch d := v.(type) {
	case time.Time:
		return d, nil
	case string:
		return parseDateString(d)
	case []byte:
		return parseDateString(string(d))
	case nil:
		return time.Time{}, fmt.Errorf("date is NULL")
	default:
		return time.Time{}, fmt.Errorf("unsupported date type %T", v)
	}
}

func parseDateString(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognised date %q", s)
}
