package integration

import (
	"context"
	"database/sql"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lffinance/dashboard/internal/calculation"
	"github.com/lffinance/dashboard/internal/config"
	"github.com/lffinance/dashboard/internal/dashboard"
	"github.com/lffinance/dashboard/internal/domain"
	"github.com/lffinance/dashboard/internal/server"
	"github.com/lffinance/dashboard/internal/storage"
)

// setup writes a configuration pointing at a fresh SQLite file, seeds it and
// returns the loaded configuration together with an open store.
func setup(t *testing.T) (*domain.Configuration, *storage.SQLStore) {
	t.Helper()
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "finance.db")

	require.NoError(t, storage.RunMigrations(dbPath))
	db, err := sql.Open("sqlite", dbPath)
	require.NoError(t, err)
	for _, stmt := range []string{
		`INSERT INTO income (date, project_description, amount_pre_vat, payment_status) VALUES
			('2025-11-03', 'Acme - website', 20000, 'paid'),
			('2025-11-20', 'Globex - audit', 13000, 'paid'),
			('2025-11-25', 'Initech - draft', 50000, 'pending'),
			('2025-12-02', 'Acme - maintenance', 12000, 'paid')`,
		`INSERT INTO expenses (date, description, amount_pre_vat) VALUES
			('2025-11-10', 'Laptop', 3000),
			('2025-12-05', 'Hosting', 500)`,
	} {
		_, err := db.Exec(stmt)
		require.NoError(t, err)
	}
	require.NoError(t, db.Close())

	example := config.NewInputParser().CreateExampleConfiguration()
	example.Database.URI = dbPath
	cfgPath := filepath.Join(dir, "lffinance.yaml")
	require.NoError(t, config.SaveConfiguration(example, cfgPath))

	parser := config.NewInputParser()
	parser.EnvFiles = nil
	cfg, err := parser.LoadFromFile(cfgPath)
	require.NoError(t, err)

	store, err := storage.Open(context.Background(), cfg.Database.Driver, cfg.Database.URI, storage.Options{
		QueryTimeout: cfg.Database.QueryTimeout,
	})
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return cfg, store
}

func TestSummaryFromStore(t *testing.T) {
	cfg, store := setup(t)
	svc := dashboard.NewService(store, calculation.NewTaxYearTable(cfg.TaxYears), cfg.Dashboard, nil)

	summary, err := svc.Summary(context.Background(), domain.Selection{Period: "11/2025"})
	require.NoError(t, err)

	// pending income is excluded
	assert.True(t, summary.TotalIncome.Equal(decimal.NewFromInt(33000)))
	assert.True(t, summary.TotalExpenses.Equal(decimal.NewFromInt(3000)))
	assert.True(t, summary.Profit.Equal(decimal.NewFromInt(30000)))
	assert.Equal(t, "17785.82085024", summary.Breakdown.Net.String())
	assert.Equal(t, 88, summary.Progress.Percent)
	require.Len(t, summary.Clients, 2)
	assert.Equal(t, "Acme", summary.Clients[0].Client)

	all, err := svc.Summary(context.Background(), domain.Selection{})
	require.NoError(t, err)
	assert.Equal(t, 2, all.MonthsCount)
	assert.Equal(t, []string{"all", "12/2025", "11/2025"}, all.Periods)
	assert.True(t, all.Profit.Equal(decimal.NewFromInt(41500)))
}

func TestServerAgainstStore(t *testing.T) {
	cfg, store := setup(t)
	logger := log.New(io.Discard)
	years := calculation.NewTaxYearTable(cfg.TaxYears)
	svc := dashboard.NewService(store, years, cfg.Dashboard, logger)
	ts := httptest.NewServer(server.New(svc, years, cfg.Server, logger).Handler())
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/api/summary?period=11/2025")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Breakdown map[string]string `json:"breakdown"`
		Taxes     string            `json:"taxes"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "17785.82085024", body.Breakdown["net"])
	assert.Equal(t, "6164.17914976", body.Taxes)

	page, err := http.Get(ts.URL + "/?period=12/2025")
	require.NoError(t, err)
	defer page.Body.Close()
	assert.Equal(t, http.StatusOK, page.StatusCode)

	chart, err := http.Get(ts.URL + "/charts/clients.png")
	require.NoError(t, err)
	defer chart.Body.Close()
	assert.Equal(t, "image/png", chart.Header.Get("Content-Type"))
}
