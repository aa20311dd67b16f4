package chart

import (
	"bytes"
	"errors"
	"image/png"
	"testing"

	"github.com/lffinance/dashboard/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngMagic = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

func TestRenderClientRevenue(t *testing.T) {
	tests := []struct {
		name    string
		clients []domain.ClientRevenue
	}{
		{"Several clients", []domain.ClientRevenue{
			{Client: "Acme", Amount: decimal.NewFromInt(17000)},
			{Client: "Globex", Amount: decimal.NewFromInt(8000)},
			{Client: "Initech", Amount: decimal.RequireFromString("1500.75")},
		}},
		{"Single client", []domain.ClientRevenue{
			{Client: "Acme", Amount: decimal.NewFromInt(12000)},
		}},
		{"All zero", []domain.ClientRevenue{
			{Client: "Acme", Amount: decimal.Zero},
			{Client: "Globex", Amount: decimal.Zero},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img, err := RenderClientRevenue(tt.clients)
			require.NoError(t, err)
			require.True(t, bytes.HasPrefix(img, pngMagic), "output is not a PNG")

			cfg, err := png.DecodeConfig(bytes.NewReader(img))
			require.NoError(t, err)
			assert.Equal(t, height, cfg.Height)
			assert.GreaterOrEqual(t, cfg.Width, minWidth)
		})
	}
}

func TestRenderClientRevenueWidensForManyClients(t *testing.T) {
	clients := make([]domain.ClientRevenue, 20)
	for i := range clients {
		clients[i] = domain.ClientRevenue{Client: string(rune('A' + i)), Amount: decimal.NewFromInt(int64(1000 * (20 - i)))}
	}
	img, err := RenderClientRevenue(clients)
	require.NoError(t, err)

	cfg, err := png.DecodeConfig(bytes.NewReader(img))
	require.NoError(t, err)
	assert.Greater(t, cfg.Width, minWidth)
}

func TestRenderClientRevenueEmpty(t *testing.T) {
	_, err := RenderClientRevenue(nil)
	assert.True(t, errors.Is(err, ErrNoChartData))
}

func TestShortLabel(t *testing.T) {
	assert.Equal(t, "(unnamed)", shortLabel(""))
	assert.Equal(t, "Acme", shortLabel("Acme"))
	assert.Equal(t, "Very Long Clien…", shortLabel("Very Long Client Name Ltd"))
	assert.Len(t, []rune(shortLabel("לקוח עם שם ארוך במיוחד מאוד")), maxLabelRunes)
}
