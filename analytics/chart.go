package analytics

import (
	"bytes"
	"fmt"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/rustyeddy/axon/format"
)

// RenderEquityChart renders the equity curve as a PNG line chart.
// Needs at least 2 points.
func RenderEquityChart(points []EquityPoint) ([]byte, error) {
	if len(points) < 2 {
		return nil, fmt.Errorf("need at least 2 data points, got %d", len(points))
	}

	xValues := make([]float64, len(points))
	yValues := make([]float64, len(points))
	for i, p := range points {
		xValues[i] = float64(p.Index)
		yValues[i] = p.Equity
	}

	series := chart.ContinuousSeries{
		Name: "Equity",
		Style: chart.Style{
			StrokeColor: drawing.ColorFromHex("0ea5e9"), // sky-500
			StrokeWidth: 2.5,
		},
		XValues: xValues,
		YValues: yValues,
	}

	graph := chart.Chart{
		Title:  "Equity Trajectory",
		Width:  900,
		Height: 400,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 10, Right: 20, Bottom: 10},
		},
		XAxis: chart.XAxis{
			ValueFormatter: func(v interface{}) string {
				if f, ok := v.(float64); ok {
					return fmt.Sprintf("#%d", int(f))
				}
				return ""
			},
		},
		YAxis: chart.YAxis{
			ValueFormatter: func(v interface{}) string {
				if f, ok := v.(float64); ok {
					return format.Currency(f)
				}
				return ""
			},
		},
		Series: []chart.Series{series},
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("chart render failed: %w", err)
	}
	return buf.Bytes(), nil
}
