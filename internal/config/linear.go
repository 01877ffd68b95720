package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/nants/internal/algebra"
)

// LinearSystem is a dense system A*x = b read from YAML:
//
//	a: [[4, 1], [1, 3]]
//	b: [1, 2]
type LinearSystem struct {
	A [][]float64 `yaml:"a"`
	B []float64   `yaml:"b"`
}

func LoadLinearSystem(path string) (*LinearSystem, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var sys LinearSystem
	if err := yaml.Unmarshal(data, &sys); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &sys, nil
}

// Matrices returns A and b as a column vector.
func (s *LinearSystem) Matrices() (*algebra.Matrix, *algebra.Matrix, error) {
	a, err := algebra.FromRows(s.A)
	if err != nil {
		return nil, nil, err
	}
	if len(s.B) == 0 {
		return nil, nil, fmt.Errorf("%w: empty right-hand side", ErrInvalid)
	}
	return a, algebra.Vector(s.B...), nil
}
