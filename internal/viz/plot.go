package viz

import (
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/nants/internal/dynamo"
)

const (
	DefaultWidth  = 80
	DefaultHeight = 15
)

var seriesColors = []asciigraph.AnsiColor{
	asciigraph.Cyan, asciigraph.Yellow, asciigraph.Green, asciigraph.Red,
	asciigraph.Magenta, asciigraph.Blue, asciigraph.White,
}

// Downsample keeps at most n evenly spaced values, always including the last.
func Downsample(data []float64, n int) []float64 {
	if n <= 0 || len(data) <= n {
		return data
	}
	if n == 1 {
		return data[len(data)-1:]
	}
	out := make([]float64, n)
	for i := range out {
		out[i] = data[i*(len(data)-1)/(n-1)]
	}
	return out
}

// PlotTrail plots component k of sol against its sample index.
func PlotTrail(sol *dynamo.Solution, k int, caption string, width, height int) (string, error) {
	xs, err := sol.Dimension(k)
	if err != nil {
		return "", err
	}
	return Plot(xs, caption, width, height), nil
}

func Plot(data []float64, caption string, width, height int) string {
	return asciigraph.Plot(Downsample(data, width),
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption(caption),
	)
}

// PlotMany overlays several series, each in its own colour.
func PlotMany(series [][]float64, caption string, width, height int) string {
	data := make([][]float64, len(series))
	colors := make([]asciigraph.AnsiColor, len(series))
	for i, s := range series {
		data[i] = Downsample(s, width)
		colors[i] = seriesColors[i%len(seriesColors)]
	}
	return asciigraph.PlotMany(data,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption(caption),
		asciigraph.SeriesColors(colors...),
	)
}
