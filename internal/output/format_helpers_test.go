//go:build unit

package output

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestFormatCurrency(t *testing.T) {
	v := decimal.NewFromFloat(1234.567)
	got := FormatCurrency(v)
	want := "₪1,235"
	if got != want {
		t.Errorf("FormatCurrency(%v) = %q, want %q", v, got, want)
	}
}

func TestFormatCurrencyWith(t *testing.T) {
	if got, want := FormatCurrencyWith("NIS ", decimal.NewFromInt(-1200)), "-NIS 1,200"; got != want {
		t.Errorf("FormatCurrencyWith = %q, want %q", got, want)
	}
	if got, want := FormatCurrencyWith("", decimal.NewFromInt(5)), "₪5"; got != want {
		t.Errorf("FormatCurrencyWith empty symbol = %q, want %q", got, want)
	}
}

func TestFormatPercentage(t *testing.T) {
	v := decimal.NewFromFloat(12.3456)
	got := FormatPercentage(v)
	want := "12.35%"
	if got != want {
		t.Errorf("FormatPercentage(%v) = %q, want %q", v, got, want)
	}
}

func TestFormatRate(t *testing.T) {
	cases := map[string]string{"0.165": "16.5%", "0.0597": "5.97%", "0.10": "10%", "0": "0%"}
	for in, want := range cases {
		if got := FormatRate(decimal.RequireFromString(in)); got != want {
			t.Errorf("FormatRate(%s) = %q, want %q", in, got, want)
		}
	}
}

func TestFormatAgorot(t *testing.T) {
	cases := map[string]string{"1707.28834976": "1707.29", "30000": "30000.00", "-0.005": "-0.01", "4456.8908": "4456.89"}
	for in, want := range cases {
		if got := FormatAgorot(decimal.RequireFromString(in)); got != want {
			t.Errorf("FormatAgorot(%s) = %q, want %q", in, got, want)
		}
	}
}
