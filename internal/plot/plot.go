// Package plot renders the COP-versus-load curve as a PNG line chart.
package plot

import (
	"errors"
	"io"

	"github.com/wcharczuk/go-chart/v2"

	"Kelvin/internal/calc/copcurve"
)

// ErrTooFewPoints rejects curves the renderer cannot scale an axis around.
var ErrTooFewPoints = errors.New("curve needs at least two points")

// WritePNG draws the curve as a line with dot markers, load on X, COP on Y.
func WritePNG(w io.Writer, points []copcurve.Point) error {
	if len(points) < 2 {
		return ErrTooFewPoints
	}

	xs := make([]float64, len(points))
	ys := make([]float64, len(points))
	for i, p := range points {
		xs[i] = float64(p.LoadPercent)
		ys[i] = p.COP
	}

	ch := chart.Chart{
		Title:      "Chiller COP vs Load",
		Width:      800,
		Height:     480,
		Background: chart.Style{Padding: chart.Box{Top: 24, Left: 16, Right: 16, Bottom: 16}},
		XAxis:      chart.XAxis{Name: "Load (%)"},
		YAxis:      chart.YAxis{Name: "COP"},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    "COP",
				XValues: xs,
				YValues: ys,
				Style: chart.Style{
					StrokeWidth: 2,
					DotWidth:    4,
					DotColor:    chart.ColorBlue,
				},
			},
		},
	}
	return ch.Render(chart.PNG, w)
}
