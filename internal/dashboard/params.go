package dashboard

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/lffinance/dashboard/internal/domain"
	"github.com/lffinance/dashboard/pkg/dateutil"
	"github.com/shopspring/decimal"
)

// ErrInvalidInput marks a request value rejected before any calculation runs
var ErrInvalidInput = errors.New("invalid input")

// Input bounds. The calculator accepts any decimal; these keep user input sane.
const (
	MaxMonths = 120
)

// MaxAmount bounds profit and target values given by users
var MaxAmount = decimal.NewFromInt(1_000_000_000)

// ParseAmount parses a signed decimal amount. Empty input is an error.
func ParseAmount(field, raw string) (decimal.Decimal, error) {
	raw = strings.TrimSpace(strings.ReplaceAll(raw, ",", ""))
	if raw == "" {
		return decimal.Zero, fmt.Errorf("%w: %s is required", ErrInvalidInput, field)
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %s must be a number, got %q", ErrInvalidInput, field, raw)
	}
	if d.Abs().GreaterThan(MaxAmount) {
		return decimal.Zero, fmt.Errorf("%w: %s is out of range", ErrInvalidInput, field)
	}
	return d, nil
}

// ParseMonths parses a months count in [1, MaxMonths]. Empty input means 1.
func ParseMonths(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 1, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: months must be a whole number, got %q", ErrInvalidInput, raw)
	}
	if n < 1 || n > MaxMonths {
		return 0, fmt.Errorf("%w: months must be between 1 and %d", ErrInvalidInput, MaxMonths)
	}
	return n, nil
}

// ParseYear parses an optional tax year. Empty input means 0 (the default year).
func ParseYear(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 2000 || n > 2100 {
		return 0, fmt.Errorf("%w: year must be a four-digit tax year, got %q", ErrInvalidInput, raw)
	}
	return n, nil
}

// ParseSelection builds a selection from raw period, target and year values.
// Empty values keep the service defaults.
func ParseSelection(period, target, year string) (domain.Selection, error) {
	var sel domain.Selection

	period = strings.TrimSpace(period)
	if period != "" && period != domain.PeriodAll {
		if _, err := dateutil.ParseMonthKey(period); err != nil {
			return sel, fmt.Errorf("%w: period must be %q or MM/YYYY, got %q", ErrInvalidInput, domain.PeriodAll, period)
		}
	}
	sel.Period = period

	if strings.TrimSpace(target) != "" {
		t, err := ParseAmount("target", target)
		if err != nil {
			return sel, err
		}
		if !t.IsPositive() {
			return sel, fmt.Errorf("%w: target must be positive", ErrInvalidInput)
		}
		sel.TargetNetMonthly = t
	}

	y, err := ParseYear(year)
	if err != nil {
		return sel, err
	}
	sel.TaxYear = y
	return sel, nil
}
