// Package chart renders the dashboard's charts as PNG images.
package chart

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/lffinance/dashboard/internal/domain"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// ErrNoChartData is returned when there is nothing to plot
var ErrNoChartData = errors.New("no chart data")

// BarColor is the fill used for revenue bars
const BarColor = "0071e3"

const (
	minWidth      = 600
	height        = 380
	barWidth      = 48
	barSpacing    = 24
	maxLabelRunes = 16
)

// RenderClientRevenue renders a bar chart of revenue per client, in the order
// given (the dashboard passes them largest first). Returns raw PNG bytes.
func RenderClientRevenue(clients []domain.ClientRevenue) ([]byte, error) {
	if len(clients) == 0 {
		return nil, ErrNoChartData
	}

	fill := drawing.ColorFromHex(BarColor)
	bars := make([]chart.Value, len(clients))
	lo, hi := 0.0, 0.0
	for i, c := range clients {
		v := c.Amount.InexactFloat64()
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
		bars[i] = chart.Value{
			Label: shortLabel(c.Client),
			Value: v,
			Style: chart.Style{FillColor: fill, StrokeColor: fill, StrokeWidth: 1},
		}
	}
	// go-chart refuses a zero-height range, e.g. a single client
	if hi == lo {
		hi = lo + 1
	}

	width := len(clients)*(barWidth+barSpacing) + 120
	if width < minWidth {
		width = minWidth
	}

	graph := chart.BarChart{
		Title:      "Revenue by client",
		Width:      width,
		Height:     height,
		BarWidth:   barWidth,
		BarSpacing: barSpacing,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 10, Right: 20, Bottom: 10},
		},
		YAxis: chart.YAxis{
			Range: &chart.ContinuousRange{Min: lo, Max: hi * 1.1},
			ValueFormatter: func(v interface{}) string {
				if f, ok := v.(float64); ok {
					return humanize.Comma(int64(f))
				}
				return ""
			},
		},
		Bars: bars,
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("chart render failed: %w", err)
	}
	return buf.Bytes(), nil
}

func shortLabel(client string) string {
	if client == "" {
		return "(unnamed)"
	}
	r := []rune(client)
	if len(r) <= maxLabelRunes {
		return client
	}
	return string(r[:maxLabelRunes-1]) + "…"
}
