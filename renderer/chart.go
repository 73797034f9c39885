package renderer

import (
	"fmt"
	"io"
	"strconv"

	"github.com/etnz/stockplan"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// ProjectionChart writes a PNG line chart of a projection: the gross and net
// value of the shares every year, and the loans still outstanding.
func ProjectionChart(w io.Writer, years []stockplan.YearProjection) error {
	if len(years) < 2 {
		return fmt.Errorf("need at least 2 projected years, got %d", len(years))
	}

	xValues := make([]float64, len(years))
	gross := make([]float64, len(years))
	net := make([]float64, len(years))
	loans := make([]float64, len(years))
	for i, y := range years {
		xValues[i] = float64(y.Year)
		gross[i] = y.GrossValue.AsFloat()
		net[i] = y.NetValue.AsFloat()
		loans[i] = y.LoansOutstanding.AsFloat()
	}

	graph := chart.Chart{
		Title:  fmt.Sprintf("Projection %d-%d", years[0].Year, years[len(years)-1].Year),
		Width:  900,
		Height: 400,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 10, Right: 20, Bottom: 10},
		},
		XAxis: chart.XAxis{
			ValueFormatter: func(v interface{}) string {
				if f, ok := v.(float64); ok {
					return strconv.Itoa(int(f))
				}
				return ""
			},
		},
		YAxis: chart.YAxis{
			ValueFormatter: func(v interface{}) string {
				if f, ok := v.(float64); ok {
					return fmt.Sprintf("%.0fk", f/1000)
				}
				return ""
			},
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    "Gross Value",
				Style:   chart.Style{StrokeColor: drawing.ColorFromHex("2563eb"), StrokeWidth: 2.5},
				XValues: xValues,
				YValues: gross,
			},
			chart.ContinuousSeries{
				Name:    "Net Value",
				Style:   chart.Style{StrokeColor: drawing.ColorFromHex("16a34a"), StrokeWidth: 2.5},
				XValues: xValues,
				YValues: net,
			},
			chart.ContinuousSeries{
				Name: "Loans",
				Style: chart.Style{
					StrokeColor:     drawing.ColorFromHex("9ca3af"),
					StrokeWidth:     1.5,
					StrokeDashArray: []float64{5.0, 3.0},
				},
				XValues: xValues,
				YValues: loans,
			},
		},
	}
	graph.Elements = []chart.Renderable{
		chart.LegendLeft(&graph),
	}

	if err := graph.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("chart render failed: %w", err)
	}
	return nil
}
