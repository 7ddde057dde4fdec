// Package chart renders simulation results for the terminal and as images.
package chart

import (
	"errors"
	"fmt"
	"io"

	gochart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/sherine-k/episim/pkg/simulation"
)

// MinPNGDays is the number of recorded days RenderPNG needs to draw a curve
const MinPNGDays = 2

// ErrTooFewDays is returned by RenderPNG when a run is too short to plot
var ErrTooFewDays = errors.New("at least two days are needed to render a chart")

var (
	colorSusceptible = drawing.Color{R: 31, G: 119, B: 180, A: 255}
	colorInfected    = drawing.Color{R: 255, G: 165, B: 0, A: 255}
	colorDead        = drawing.Color{R: 64, G: 64, B: 64, A: 255}
)

// RenderPNG draws the S/E/I/R/D curves of a run as a PNG image
func (g *Generator) RenderPNG(w io.Writer, days []simulation.Census) error {
	if len(days) < MinPNGDays {
		return ErrTooFewDays
	}

	xs := make([]float64, len(days))
	series := map[string][]float64{}
	names := []string{"Susceptible", "Incubating", "Infectious", "Recovered", "Dead"}
	for _, name := range names {
		series[name] = make([]float64, len(days))
	}

	for i, d := range days {
		xs[i] = float64(d.Day)
		series["Susceptible"][i] = float64(d.Susceptible)
		series["Incubating"][i] = float64(d.Infected)
		series["Infectious"][i] = float64(d.Infectious)
		series["Recovered"][i] = float64(d.Recovered)
		series["Dead"][i] = float64(d.Dead)
	}

	colors := map[string]drawing.Color{
		"Susceptible": colorSusceptible,
		"Incubating":  colorInfected,
		"Infectious":  gochart.ColorRed,
		"Recovered":   gochart.ColorGreen,
		"Dead":        colorDead,
	}

	graph := gochart.Chart{
		Width:  g.width * 12,
		Height: g.height * 24,
		XAxis: gochart.XAxis{
			Name:  "Day",
			Style: gochart.Style{FontSize: 10.0},
			ValueFormatter: func(v interface{}) string {
				return fmt.Sprintf("%d", int(v.(float64)))
			},
		},
		YAxis: gochart.YAxis{
			Name:  "People",
			Style: gochart.Style{FontSize: 10.0},
		},
	}

	for _, name := range names {
		graph.Series = append(graph.Series, gochart.ContinuousSeries{
			Name:    name,
			XValues: xs,
			YValues: series[name],
			Style:   gochart.Style{StrokeColor: colors[name], StrokeWidth: 3.0},
		})
	}
	graph.Elements = []gochart.Renderable{gochart.Legend(&graph)}

	if err := graph.Render(gochart.PNG, w); err != nil {
		return fmt.Errorf("failed to render chart: %w", err)
	}
	return nil
}
