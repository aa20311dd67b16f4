package storage

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/lffinance/dashboard/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *SQLStore {
	t.Helper()
	path := filepath.Join(t.TempDir(), "nested", "finance.db")
	store, err := Open(context.Background(), "sqlite", path, Options{QueryTimeout: 5 * time.Second})
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func seed(t *testing.T, store *SQLStore) {
	t.Helper()
	stmts := []string{
		`INSERT INTO income (date, project_description, amount_pre_vat, payment_status) VALUES
			('2025-12-01', 'Acme - maintenance', 5000, 'paid'),
			('2025-11-03', 'Acme - website', 12000.50, 'paid'),
			('2025-11-20', 'Globex', 8000, 'paid'),
			('2025-11-21', 'Globex - retainer', 9999, 'pending'),
			('2026-01-15', NULL, NULL, 'paid')`,
		`INSERT INTO expenses (date, description, amount_pre_vat) VALUES
			('2025-11-10', 'Laptop', 1500),
			('2025-12-05', NULL, 700.25),
			('2026-01-02', 'Hosting', NULL)`,
	}
	for _, stmt := range stmts {
		_, err := store.db.ExecContext(context.Background(), stmt)
		require.NoError(t, err)
	}
}

func TestOpenSQLiteRunsMigrations(t *testing.T) {
	store := openTestStore(t)
	assert.Equal(t, "sqlite", store.Driver())

	income, err := store.ListPaidIncome(context.Background())
	require.NoError(t, err)
	assert.Empty(t, income)

	expenses, err := store.ListExpenses(context.Background())
	require.NoError(t, err)
	assert.Empty(t, expenses)
}

func TestRunMigrationsIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "finance.db")
	require.NoError(t, RunMigrations(path))
	require.NoError(t, RunMigrations(path))
}

func TestListPaidIncome(t *testing.T) {
	store := openTestStore(t)
	seed(t, store)

	income, err := store.ListPaidIncome(context.Background())
	require.NoError(t, err)
	require.Len(t, income, 4, "pending rows are excluded")

	// ordered by date
	assert.Equal(t, "2025-11-03", income[0].Date.Format("2006-01-02"))
	assert.Equal(t, "2026-01-15", income[3].Date.Format("2006-01-02"))

	assert.Equal(t, "Acme - website", income[0].ProjectDescription)
	assert.Equal(t, "Acme", income[0].Client)
	assert.True(t, income[0].AmountPreVAT.Equal(decimal.RequireFromString("12000.5")), "got %s", income[0].AmountPreVAT)
	assert.Equal(t, domain.PaymentStatusPaid, income[0].PaymentStatus)

	assert.Equal(t, "Globex", income[1].Client, "no separator keeps the whole description")

	assert.Equal(t, "", income[3].Client, "NULL description gives an empty client")
	assert.True(t, income[3].AmountPreVAT.IsZero(), "NULL amount reads as zero")
}

func TestPlaceholder(t *testing.T) {
	assert.Equal(t, "$1", (&SQLStore{driver: "postgres"}).placeholder())
	assert.Equal(t, "?", (&SQLStore{driver: "sqlite"}).placeholder())
}

func TestListExpenses(t *testing.T) {
	store := openTestStore(t)
	seed(t, store)

	expenses, err := store.ListExpenses(context.Background())
	require.NoError(t, err)
	require.Len(t, expenses, 3)

	assert.Equal(t, "Laptop", expenses[0].Description)
	assert.True(t, expenses[1].AmountPreVAT.Equal(decimal.RequireFromString("700.25")))
	assert.Equal(t, "", expenses[1].Description)
	assert.True(t, expenses[2].AmountPreVAT.IsZero())
}

func TestListCanceledContext(t *testing.T) {
	store := openTestStore(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := store.ListPaidIncome(ctx)
	assert.Error(t, err)
}

func TestOpenUnsupportedDriver(t *testing.T) {
	_, err := Open(context.Background(), "mysql", "root@/finance", Options{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnsupportedDriver))
}

func TestParseDate(t *testing.T) {
	want := time.Date(2025, 11, 3, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		input any
		err   bool
	}{
		{"time value", want, false},
		{"date string", "2025-11-03", false},
		{"date bytes", []byte("2025-11-03"), false},
		{"timestamp string", "2025-11-03 00:00:00", false},
		{"rfc3339", "2025-11-03T00:00:00Z", false},
		{"null", nil, true},
		{"garbage", "03/11/2025", true},
		{"integer", int64(20251103), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseDate(tt.input)
			if tt.err {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, got.Equal(want), "got %v", got)
		})
	}
}
