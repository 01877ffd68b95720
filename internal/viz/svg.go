package viz

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/san-kum/nants/internal/dynamo"
)

const svgBackground = "#0a0a0a"

var ErrNoPoints = errors.New("viz: no finite points to draw")

// CanvasSVG writes every lit Braille dot of c as a circle. scale is the pixel
// pitch in SVG units.
func CanvasSVG(w io.Writer, c *Canvas, scale float64) error {
	if c == nil {
		return nil
	}
	bw := bufio.NewWriter(w)
	width := float64(c.Width) * scale * 2
	height := float64(c.Height) * scale * 4
	fmt.Fprintf(bw, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="%s"/>
<g fill="#00ff00">
`, width, height, width, height, svgBackground)

	r := scale * 0.4
	for row := 0; row < c.Height; row++ {
		for col := 0; col < c.Width; col++ {
			cell := c.Grid[row][col]
			if cell <= brailleBlank {
				continue
			}
			for dy := 0; dy < 4; dy++ {
				for dx := 0; dx < 2; dx++ {
					if (cell-brailleBlank)&pixelMap[dy][dx] == 0 {
						continue
					}
					cx := (float64(col*2+dx) + 0.5) * scale
					cy := (float64(row*4+dy) + 0.5) * scale
					fmt.Fprintf(bw, "<circle cx=\"%.1f\" cy=\"%.1f\" r=\"%.1f\"/>\n", cx, cy, r)
				}
			}
		}
	}
	bw.WriteString("</g>\n</svg>\n")
	return bw.Flush()
}

// PhaseSVG writes points as a single polyline path on a width x height image.
// Non-finite points break the path.
func PhaseSVG(w io.Writer, points []dynamo.Point, width, height int, stroke string) error {
	b, ok := BoundsOf(points)
	if !ok {
		return ErrNoPoints
	}
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="%s"/>
<path fill="none" stroke="%s" stroke-width="1.5" d="`, width, height, width, height, svgBackground, stroke)

	rangeX, rangeY := b.MaxX-b.MinX, b.MaxY-b.MinY
	move := true
	for _, p := range points {
		if !finite(p) {
			move = true
			continue
		}
		x := (p.X - b.MinX) / rangeX * float64(width)
		y := float64(height) - (p.Y-b.MinY)/rangeY*float64(height)
		if move {
			fmt.Fprintf(bw, "M%.1f,%.1f", x, y)
			move = false
		} else {
			fmt.Fprintf(bw, " L%.1f,%.1f", x, y)
		}
	}
	bw.WriteString("\"/>\n</svg>\n")
	return bw.Flush()
}
