package viz

import (
	"math"
	"strings"

	"github.com/san-kum/nants/internal/dynamo"
)

func finite(p dynamo.Point) bool {
	return !math.IsNaN(p.X) && !math.IsNaN(p.Y) && !math.IsInf(p.X, 0) && !math.IsInf(p.Y, 0)
}

// Bounds is a plotting window.
type Bounds struct {
	MinX, MaxX, MinY, MaxY float64
}

// BoundsOf returns the extent of the finite points padded by 10% per side.
// ok is false when no point is finite.
func BoundsOf(points []dynamo.Point) (b Bounds, ok bool) {
	b = Bounds{math.Inf(1), math.Inf(-1), math.Inf(1), math.Inf(-1)}
	for _, p := range points {
		if !finite(p) {
			continue
		}
		b.MinX, b.MaxX = min(b.MinX, p.X), max(b.MaxX, p.X)
		b.MinY, b.MaxY = min(b.MinY, p.Y), max(b.MaxY, p.Y)
		ok = true
	}
	if !ok {
		return Bounds{}, false
	}

	rangeX, rangeY := b.MaxX-b.MinX, b.MaxY-b.MinY
	if rangeX == 0 {
		rangeX = 1
	}
	if rangeY == 0 {
		rangeY = 1
	}
	b.MinX -= rangeX * 0.1
	b.MaxX += rangeX * 0.1
	b.MinY -= rangeY * 0.1
	b.MaxY += rangeY * 0.1
	return b, true
}

// PhaseASCII plots points as dots on a width x height grid, drawing the axes
// where they cross the window.
func PhaseASCII(points []dynamo.Point, width, height int) string {
	b, ok := BoundsOf(points)
	if !ok || width <= 0 || height <= 0 {
		return ""
	}
	rangeX, rangeY := b.MaxX-b.MinX, b.MaxY-b.MinY

	canvas := make([][]rune, height)
	for i := range canvas {
		canvas[i] = []rune(strings.Repeat(" ", width))
	}
	toCol := func(x float64) int { return int((x - b.MinX) / rangeX * float64(width-1)) }
	toRow := func(y float64) int { return height - 1 - int((y-b.MinY)/rangeY*float64(height-1)) }

	for _, p := range points {
		if !finite(p) {
			continue
		}
		row, col := toRow(p.Y), toCol(p.X)
		if row >= 0 && row < height && col >= 0 && col < width {
			canvas[row][col] = '•'
		}
	}

	if b.MinX <= 0 && b.MaxX >= 0 {
		col := toCol(0)
		for row := 0; row < height; row++ {
			if canvas[row][col] == ' ' {
				canvas[row][col] = '│'
			}
		}
	}
	if b.MinY <= 0 && b.MaxY >= 0 {
		row := toRow(0)
		for col := 0; col < width; col++ {
			if canvas[row][col] == ' ' {
				canvas[row][col] = '─'
			}
		}
	}

	var sb strings.Builder
	for _, row := range canvas {
		sb.WriteString(string(row))
		sb.WriteByte('\n')
	}
	return sb.String()
}

// PhaseBraille traces the portrait as a connected curve on a Braille canvas
// of width x height cells.
func PhaseBraille(points []dynamo.Point, width, height int) string {
	b, ok := BoundsOf(points)
	if !ok || width <= 0 || height <= 0 {
		return ""
	}
	c := NewCanvas(width, height)
	c.Trace(points, b)
	return c.String()
}
