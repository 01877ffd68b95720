package viz

import (
	"strings"

	"github.com/san-kum/nants/internal/dynamo"
)

// Braille Patterns: 2x4 dots
// 1 4
// 2 5
// 3 6
// 7 8
//
// Unicode offset 0x2800
var pixelMap = [4][2]rune{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

const brailleBlank = 0x2800

// Canvas is a Width x Height grid of Braille cells, so its pixel resolution
// is (2*Width) x (4*Height).
type Canvas struct {
	Width, Height int
	Grid          [][]rune
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{Width: w, Height: h, Grid: make([][]rune, h)}
	for i := range c.Grid {
		c.Grid[i] = []rune(strings.Repeat(string(rune(brailleBlank)), w))
	}
	return c
}

// Set lights pixel (x, y), with y growing downwards. Out of range is ignored.
func (c *Canvas) Set(x, y int) {
	if x < 0 || y < 0 {
		return
	}
	col, row := x/2, y/4
	if col >= c.Width || row >= c.Height {
		return
	}
	c.Grid[row][col] |= pixelMap[y%4][x%2]
}

// DrawLine draws a line using Bresenham's algorithm
func (c *Canvas) DrawLine(x0, y0, x1, y1 int) {
	dx, dy := absInt(x1-x0), absInt(y1-y0)
	sx, sy := -1, -1
	if x0 < x1 {
		sx = 1
	}
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy

	for {
		c.Set(x0, y0)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

// Trace maps points into the canvas using b and joins consecutive points.
// Non-finite points break the curve.
func (c *Canvas) Trace(points []dynamo.Point, b Bounds) {
	pw, ph := 2*c.Width-1, 4*c.Height-1
	var x0, y0 int
	joined := false
	for _, p := range points {
		if !finite(p) {
			joined = false
			continue
		}
		x := int((p.X - b.MinX) / (b.MaxX - b.MinX) * float64(pw))
		y := ph - int((p.Y-b.MinY)/(b.MaxY-b.MinY)*float64(ph))
		if joined {
			c.DrawLine(x0, y0, x, y)
		} else {
			c.Set(x, y)
		}
		x0, y0, joined = x, y, true
	}
}

func (c *Canvas) String() string {
	var b strings.Builder
	for _, row := range c.Grid {
		b.WriteString(string(row))
		b.WriteByte('\n')
	}
	return b.String()
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
