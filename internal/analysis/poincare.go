package analysis

import "github.com/san-kum/nants/internal/dynamo"

// PoincareSection records (x[recordX], x[recordY]) each time component
// crossIdx crosses threshold upwards, linearly interpolated to the crossing.
func PoincareSection(sol *dynamo.Solution, crossIdx int, threshold float64, recordX, recordY int) ([]dynamo.Point, error) {
	cross, err := sol.Dimension(crossIdx)
	if err != nil {
		return nil, err
	}
	xs, err := sol.Dimension(recordX)
	if err != nil {
		return nil, err
	}
	ys, err := sol.Dimension(recordY)
	if err != nil {
		return nil, err
	}

	points := make([]dynamo.Point, 0)
	for i := 1; i < sol.N; i++ {
		prev, curr := cross[i-1], cross[i]
		if prev < threshold && curr >= threshold {
			frac := (threshold - prev) / (curr - prev)
			points = append(points, dynamo.Point{
				X: xs[i-1] + frac*(xs[i]-xs[i-1]),
				Y: ys[i-1] + frac*(ys[i]-ys[i-1]),
			})
		}
	}
	return points, nil
}
