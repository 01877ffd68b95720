package storage

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

// Non-finite floats are written as the strings "NaN", "+Inf" and "-Inf",
// which strconv.ParseFloat reads back. Diverging runs stay storable.

func appendFloat(b []byte, v float64) []byte {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return strconv.AppendQuote(b, strconv.FormatFloat(v, 'g', -1, 64))
	}
	return strconv.AppendFloat(b, v, 'g', -1, 64)
}

func parseFloat(raw json.RawMessage) (float64, error) {
	if len(raw) > 0 && raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return 0, err
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil || !(math.IsNaN(v) || math.IsInf(v, 0)) {
			return 0, fmt.Errorf("%w: float %q", ErrCorrupt, s)
		}
		return v, nil
	}
	var v float64
	err := json.Unmarshal(raw, &v)
	return v, err
}

// Metrics holds the named run metrics.
type Metrics map[string]float64

func (m Metrics) MarshalJSON() ([]byte, error) {
	if m == nil {
		return []byte("null"), nil
	}
	raw := make(map[string]json.RawMessage, len(m))
	for k, v := range m {
		raw[k] = appendFloat(nil, v)
	}
	return json.Marshal(raw)
}

func (m *Metrics) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw == nil {
		*m = nil
		return nil
	}
	out := make(Metrics, len(raw))
	for k, r := range raw {
		v, err := parseFloat(r)
		if err != nil {
			return fmt.Errorf("metric %s: %w", k, err)
		}
		out[k] = v
	}
	*m = out
	return nil
}

// Row is one exported state vector.
type Row []float64

func (r Row) MarshalJSON() ([]byte, error) {
	b := []byte{'['}
	for i, v := range r {
		if i > 0 {
			b = append(b, ',')
		}
		b = appendFloat(b, v)
	}
	return append(b, ']'), nil
}

func (r *Row) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	out := make(Row, len(raw))
	for i, e := range raw {
		v, err := parseFloat(e)
		if err != nil {
			return err
		}
		out[i] = v
	}
	*r = out
	return nil
}
