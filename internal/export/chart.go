package export

import (
	"errors"
	"fmt"
	"io"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

var ErrTooFewPoints = errors.New("export: need at least two points")

func intFormatter(v interface{}) string {
	if f, ok := v.(float64); ok {
		return fmt.Sprintf("%d", int(f))
	}
	return ""
}

// PopulationChart renders values as a PNG line chart, the first value
// belonging to firstGeneration.
func PopulationChart(w io.Writer, values []float64, firstGeneration, width, height int) error {
	if len(values) < 2 {
		return ErrTooFewPoints
	}

	xs := make([]float64, len(values))
	maxY := 1.0
	for i, v := range values {
		xs[i] = float64(firstGeneration + i)
		maxY = max(maxY, v)
	}

	graph := chart.Chart{
		Width:  width,
		Height: height,
		XAxis: chart.XAxis{
			Name:           "generation",
			Style:          chart.Style{FontSize: 10.0},
			ValueFormatter: intFormatter,
		},
		YAxis: chart.YAxis{
			Name:           "alive",
			Style:          chart.Style{FontSize: 10.0},
			Range:          &chart.ContinuousRange{Min: 0, Max: maxY},
			ValueFormatter: intFormatter,
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    "population",
				XValues: xs,
				YValues: values,
				Style:   chart.Style{StrokeColor: drawing.ColorFromHex("f46d43"), StrokeWidth: 2.0},
			},
		},
	}
	return graph.Render(chart.PNG, w)
}
