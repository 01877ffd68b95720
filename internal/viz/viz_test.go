package viz

import (
	"bytes"
	"errors"
	"math"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/san-kum/nants/internal/dynamo"
)

func circle(n int) []dynamo.Point {
	pts := make([]dynamo.Point, n)
	for i := range pts {
		a := 2 * math.Pi * float64(i) / float64(n)
		pts[i] = dynamo.Point{X: math.Cos(a), Y: math.Sin(a)}
	}
	return pts
}

func TestDownsample(t *testing.T) {
	data := []float64{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}
	got := Downsample(data, 4)
	want := []float64{0, 3, 6, 9}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("got %v, want %v", got, want)
			break
		}
	}
	if len(Downsample(data, 20)) != 10 {
		t.Error("short series should be returned unchanged")
	}
	if got := Downsample(data, 1); len(got) != 1 || got[0] != 9 {
		t.Errorf("Downsample(data, 1) = %v, want [9]", got)
	}
}

func TestPlotTrail(t *testing.T) {
	tr := dynamo.NewTrajectory(dynamo.Grid{Dt: 0.1, N: 50}, dynamo.State{0, 1})
	for i := 1; i < 50; i++ {
		tr.Record(i, dynamo.State{math.Sin(float64(i) / 5), 1})
	}
	sol := tr.Solution()

	out, err := PlotTrail(sol, 0, "x0", 40, 8)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "x0") {
		t.Error("caption missing from plot")
	}
	if _, err := PlotTrail(sol, 2, "", 40, 8); err == nil {
		t.Error("expected error for missing dimension")
	}
}

func TestPlotMany(t *testing.T) {
	out := PlotMany([][]float64{{1, 2, 3}, {3, 2, 1}}, "compare", 20, 5)
	if !strings.Contains(out, "compare") {
		t.Error("caption missing from plot")
	}
}

func TestPhaseASCII(t *testing.T) {
	out := PhaseASCII(circle(200), 40, 20)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 20 {
		t.Fatalf("expected 20 rows, got %d", len(lines))
	}
	for i, l := range lines {
		if n := utf8.RuneCountInString(l); n != 40 {
			t.Errorf("row %d has %d runes", i, n)
		}
	}
	if !strings.Contains(out, "•") || !strings.Contains(out, "│") || !strings.Contains(out, "─") {
		t.Error("expected dots and both axes")
	}

	if PhaseASCII(nil, 10, 10) != "" {
		t.Error("empty portrait should render empty")
	}
	if PhaseASCII([]dynamo.Point{{X: math.NaN(), Y: 1}}, 10, 10) != "" {
		t.Error("non-finite portrait should render empty")
	}
}

func TestBoundsOf(t *testing.T) {
	b, ok := BoundsOf([]dynamo.Point{{X: 0, Y: 5}, {X: 10, Y: 5}, {X: math.Inf(1), Y: 0}})
	if !ok {
		t.Fatal("expected bounds")
	}
	if b.MinX != -1 || b.MaxX != 11 {
		t.Errorf("x bounds %v..%v, want -1..11", b.MinX, b.MaxX)
	}
	if math.Abs(b.MinY-4.9) > 1e-12 || math.Abs(b.MaxY-5.1) > 1e-12 {
		t.Errorf("flat y should widen to unit range, got %v..%v", b.MinY, b.MaxY)
	}
}

func TestCanvas(t *testing.T) {
	c := NewCanvas(2, 1)
	c.Set(0, 0)
	c.Set(3, 3)
	c.Set(-1, 0)
	c.Set(100, 0)
	if c.Grid[0][0] != 0x2801 {
		t.Errorf("cell 0 = %U, want U+2801", c.Grid[0][0])
	}
	if c.Grid[0][1] != 0x2880 {
		t.Errorf("cell 1 = %U, want U+2880", c.Grid[0][1])
	}

	c = NewCanvas(3, 1)
	c.DrawLine(0, 0, 5, 0)
	for i, r := range c.Grid[0] {
		if r != 0x2809 {
			t.Errorf("cell %d = %U, want top row lit", i, r)
		}
	}
}

func TestPhaseBraille(t *testing.T) {
	pts := circle(100)
	pts = append(pts[:50], append([]dynamo.Point{{X: math.NaN(), Y: 0}}, pts[50:]...)...)
	out := PhaseBraille(pts, 20, 10)
	if strings.Count(out, "\n") != 10 {
		t.Errorf("expected 10 rows, got %d", strings.Count(out, "\n"))
	}
	if strings.Trim(out, "⠀\n") == "" {
		t.Error("nothing drawn")
	}
}

func TestSparklineChart(t *testing.T) {
	if got := SparklineChart(nil, 5); got != "─────" {
		t.Errorf("empty sparkline = %q", got)
	}
	out := SparklineChart([]float64{0, 1, 2, 3, 4, 5, 6, 7}, 8)
	if !strings.Contains(out, "▁") || !strings.Contains(out, "█") {
		t.Errorf("expected lowest and highest bars in %q", out)
	}
}

func TestMetricTable(t *testing.T) {
	out := MetricTable(map[string]float64{"stability": 1, "peak": 2.5})
	if strings.Index(out, "peak") > strings.Index(out, "stability") {
		t.Error("metrics should be sorted by name")
	}
	if !strings.Contains(out, "2.5") {
		t.Error("value missing")
	}
}

func TestPhaseSVG(t *testing.T) {
	var buf bytes.Buffer
	pts := circle(40)
	pts = append(pts[:20], append([]dynamo.Point{{X: math.Inf(1), Y: 0}}, pts[20:]...)...)
	if err := PhaseSVG(&buf, pts, 200, 100, "#ff0000"); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.HasPrefix(out, "<?xml") || !strings.HasSuffix(out, "</svg>\n") {
		t.Errorf("not an svg document: %q", out[:min(len(out), 40)])
	}
	if strings.Count(out, "M") != 2 {
		t.Errorf("non-finite point should split the path into 2, got %d moves", strings.Count(out, "M"))
	}
	if strings.Count(out, " L") != 38 {
		t.Errorf("expected 38 line segments, got %d", strings.Count(out, " L"))
	}

	if err := PhaseSVG(&buf, []dynamo.Point{{X: math.NaN(), Y: 1}}, 10, 10, "#fff"); !errors.Is(err, ErrNoPoints) {
		t.Errorf("expected ErrNoPoints, got %v", err)
	}
}

func TestCanvasSVG(t *testing.T) {
	c := NewCanvas(2, 1)
	c.Set(0, 0)
	c.Set(3, 3)
	var buf bytes.Buffer
	if err := CanvasSVG(&buf, c, 2); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if n := strings.Count(out, "<circle"); n != 2 {
		t.Errorf("expected 2 dots, got %d", n)
	}
	if !strings.Contains(out, `cx="1.0" cy="1.0"`) || !strings.Contains(out, `cx="7.0" cy="7.0"`) {
		t.Errorf("dot positions wrong:\n%s", out)
	}
}

func TestTable(t *testing.T) {
	out := Table([]string{"NAME", "VALUE"}, [][]string{{"alpha", "1"}, {"beta", "22"}})
	for _, want := range []string{"NAME", "VALUE", "alpha", "beta", "22"} {
		if !strings.Contains(out, want) {
			t.Errorf("table missing %q:\n%s", want, out)
		}
	}
	if n := strings.Count(out, "\n"); n < 4 {
		t.Errorf("expected header, separator and two rows, got %d lines", n+1)
	}
}
