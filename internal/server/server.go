// Package server serves the dashboard page and its JSON API.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/mux"
	"github.com/lffinance/dashboard/internal/calculation"
	"github.com/lffinance/dashboard/internal/chart"
	"github.com/lffinance/dashboard/internal/dashboard"
	"github.com/lffinance/dashboard/internal/domain"
	"github.com/lffinance/dashboard/internal/output"
)

const shutdownTimeout = 10 * time.Second

// Server handles HTTP requests for the dashboard
type Server struct {
	svc    *dashboard.Service
	years  *calculation.TaxYearTable
	cfg    domain.ServerConfig
	logger *log.Logger
	router *mux.Router
}

// New creates a new HTTP server with its routes registered
func New(svc *dashboard.Service, years *calculation.TaxYearTable, cfg domain.ServerConfig, logger *log.Logger) *Server {
	if years == nil {
		years = calculation.NewTaxYearTable(nil)
	}
	// A nil *log.Logger would still pass the calculator's interface nil check.
	if logger == nil {
		logger = log.Default()
	}
	s := &Server{
		svc:    svc,
		years:  years,
		cfg:    cfg,
		logger: logger,
		router: mux.NewRouter(),
	}
	s.setupRoutes()
	return s
}

// Handler returns the routed handler, for tests and embedding
func (s *Server) Handler() http.Handler { return s.router }

func (s *Server) setupRoutes() {
	s.router.Use(s.withLogging)

	s.router.HandleFunc("/", s.handleDashboard).Methods(http.MethodGet)
	s.router.HandleFunc("/charts/clients.png", s.handleClientChart).Methods(http.MethodGet)

	api := s.router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/summary", s.handleSummary).Methods(http.MethodGet)
	api.HandleFunc("/periods", s.handlePeriods).Methods(http.MethodGet)
	api.HandleFunc("/calculate", s.handleCalculate).Methods(http.MethodGet)

	s.router.HandleFunc("/healthz", s.handleHealth).Methods(http.MethodGet)
}

// Run listens on the configured address until ctx is cancelled, then shuts
// down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:         s.cfg.Addr,
		Handler:      s.router,
		ReadTimeout:  s.cfg.ReadTimeout,
		WriteTimeout: s.cfg.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("starting server", "addr", s.cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	return nil
}

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page := output.DashboardPage{Target: s.svc.Defaults().TargetNetMonthly}

	sel, err := dashboard.ParseSelection(q.Get("period"), q.Get("target"), q.Get("year"))
	if err != nil {
		page.Error = err.Error()
		s.renderPage(w, r, http.StatusBadRequest, page)
		return
	}

	summary, err := s.svc.Summary(r.Context(), sel)
	if err != nil {
		s.logger.Error("dashboard summary failed", "err", err, "period", sel.Period)
		page.Error = err.Error()
		s.renderPage(w, r, statusFor(err), page)
		return
	}

	f := output.HTMLFormatter{ChartURL: chartURL(sel)}
	page, err = f.Page(summary)
	if err != nil {
		page.Error = err.Error()
		s.renderPage(w, r, http.StatusInternalServerError, page)
		return
	}
	s.renderPage(w, r, http.StatusOK, page)
}

func (s *Server) renderPage(w http.ResponseWriter, r *http.Request, status int, page output.DashboardPage) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := output.RenderPage(w, page); err != nil {
		s.logger.Warn("failed to render page", "err", err, "path", r.URL.Path)
	}
}

func chartURL(sel domain.Selection) string {
	v := url.Values{}
	if sel.Period != "" {
		v.Set("period", sel.Period)
	}
	if sel.TaxYear != 0 {
		v.Set("year", fmt.Sprint(sel.TaxYear))
	}
	if len(v) == 0 {
		return "/charts/clients.png"
	}
	return "/charts/clients.png?" + v.Encode()
}

func (s *Server) handleClientChart(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	sel, err := dashboard.ParseSelection(q.Get("period"), "", q.Get("year"))
	if err != nil {
		s.respondError(w, r, http.StatusBadRequest, err.Error(), nil)
		return
	}
	summary, err := s.svc.Summary(r.Context(), sel)
	if err != nil {
		s.respondError(w, r, statusFor(err), "failed to load summary", err)
		return
	}
	img, err := chart.RenderClientRevenue(summary.Clients)
	if errors.Is(err, chart.ErrNoChartData) {
		s.respondError(w, r, http.StatusNotFound, "no income in this period", nil)
		return
	}
	if err != nil {
		s.respondError(w, r, http.StatusInternalServerError, "failed to render chart", err)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(img); err != nil {
		s.logger.Warn("failed to write chart", "err", err)
	}
}

func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	sel, err := dashboard.ParseSelection(q.Get("period"), q.Get("target"), q.Get("year"))
	if err != nil {
		s.respondError(w, r, http.StatusBadRequest, err.Error(), nil)
		return
	}
	summary, err := s.svc.Summary(r.Context(), sel)
	if err != nil {
		s.respondError(w, r, statusFor(err), err.Error(), err)
		return
	}
	if err := s.writeJSON(w, http.StatusOK, summary); err != nil {
		s.logger.Warn("failed to write json response", "err", err)
	}
}

func (s *Server) handlePeriods(w http.ResponseWriter, r *http.Request) {
	periods, err := s.svc.Periods(r.Context())
	if err != nil {
		s.respondError(w, r, statusFor(err), "failed to load periods", err)
		return
	}
	if err := s.writeJSON(w, http.StatusOK, map[string]any{
		"periods":   periods,
		"tax_years": s.years.Years(),
	}); err != nil {
		s.logger.Warn("failed to write json response", "err", err)
	}
}

// calculateResponse echoes the inputs next to the breakdown
type calculateResponse struct {
	Profit      string           `json:"profit"`
	MonthsCount int              `json:"months_count"`
	TaxYear     int              `json:"tax_year"`
	Breakdown   domain.Breakdown `json:"breakdown"`
}

func (s *Server) handleCalculate(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	profit, err := dashboard.ParseAmount("profit", q.Get("profit"))
	if err != nil {
		s.respondError(w, r, http.StatusBadRequest, err.Error(), nil)
		return
	}
	months, err := dashboard.ParseMonths(q.Get("months"))
	if err != nil {
		s.respondError(w, r, http.StatusBadRequest, err.Error(), nil)
		return
	}
	year, err := dashboard.ParseYear(q.Get("year"))
	if err != nil {
		s.respondError(w, r, http.StatusBadRequest, err.Error(), nil)
		return
	}
	if year == 0 {
		year = s.svc.Defaults().TaxYear
	}
	params, err := s.years.Lookup(year)
	if err != nil {
		s.respondError(w, r, http.StatusBadRequest, err.Error(), nil)
		return
	}

	calc := calculation.NewNetIncomeCalculator(params, s.logger)
	resp := calculateResponse{
		Profit:      profit.String(),
		MonthsCount: months,
		TaxYear:     params.Year,
		Breakdown:   calc.Calculate(profit, months),
	}
	if err := s.writeJSON(w, http.StatusOK, resp); err != nil {
		s.logger.Warn("failed to write json response", "err", err)
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	_ = s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// statusFor maps service errors to HTTP status codes
func statusFor(err error) int {
	switch {
	case errors.Is(err, dashboard.ErrInvalidInput),
		errors.Is(err, calculation.ErrUnknownPeriod),
		errors.Is(err, calculation.ErrUnknownTaxYear):
		return http.StatusBadRequest
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v interface{}) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(v)
}

// respondError logs the error and returns a minimal JSON error body.
func (s *Server) respondError(w http.ResponseWriter, r *http.Request, status int, message string, err error) {
	if err != nil {
		s.logger.Warn("request error", "status", status, "msg", message, "err", err, "method", r.Method, "path", r.URL.Path)
	} else {
		s.logger.Warn("request error", "status", status, "msg", message, "method", r.Method, "path", r.URL.Path)
	}
	_ = s.writeJSON(w, status, map[string]string{
		"status": "error",
		"error":  message,
	})
}
