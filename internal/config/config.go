package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/nants/internal/models"
)

const (
	DefaultDt       = 0.01
	DefaultDuration = 10.0
	DefaultSeed     = 42
	DefaultSigma    = 1.0
	DefaultTau      = 0.5
)

// Methods lists the integrator names a config may select.
var Methods = []string{"euler", "leapfrog", "ab2", "heun", "rk4", "euler-maruyama", "milstein", "coloured"}

var stochasticMethods = []string{"euler-maruyama", "milstein", "coloured"}

var ErrInvalid = errors.New("config: invalid")

type Config struct {
	Model    string      `yaml:"model"`
	Method   string      `yaml:"method"`
	Dt       float64     `yaml:"dt"`
	Duration float64     `yaml:"duration"`
	Seed     int64       `yaml:"seed"`
	Initial  []float64   `yaml:"initial,omitempty"`
	Params   []float64   `yaml:"params,omitempty"`
	Noise    NoiseConfig `yaml:"noise"`
}

// NoiseConfig is only read by the stochastic methods.
type NoiseConfig struct {
	Diffusion string    `yaml:"diffusion"`
	Params    []float64 `yaml:"params,omitempty"`
	Sigma     float64   `yaml:"sigma"`
	Tau       float64   `yaml:"tau"`
	Mode      string    `yaml:"mode"`
}

func DefaultConfig() *Config {
	return &Config{
		Model:    "harmonic",
		Method:   "heun",
		Dt:       DefaultDt,
		Duration: DefaultDuration,
		Seed:     DefaultSeed,
		Noise: NoiseConfig{
			Diffusion: "additive",
			Sigma:     DefaultSigma,
			Tau:       DefaultTau,
			Mode:      "shared",
		},
	}
}

func Load(path string) (*Config, error) {
	return LoadOver(path, DefaultConfig())
}

// LoadOver decodes the file at path over base. Fields the file omits keep
// their base values.
func LoadOver(path string, base *Config) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, base); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return base, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// IsStochastic reports whether the selected method integrates a Langevin
// equation.
func (c *Config) IsStochastic() bool {
	return slices.Contains(stochasticMethods, c.Method)
}

// Validate reports every invalid field, joined.
func (c *Config) Validate() error {
	var errs []error
	bad := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
	}

	if !(c.Dt > 0) || math.IsInf(c.Dt, 0) {
		bad("dt must be positive, got %v", c.Dt)
	}
	if !(c.Duration > 0) || math.IsInf(c.Duration, 0) {
		bad("duration must be positive, got %v", c.Duration)
	}
	if !slices.Contains(Methods, c.Method) {
		bad("unknown method %q", c.Method)
	}

	m, err := models.Lookup(c.Model)
	if err != nil {
		bad("unknown model %q", c.Model)
	} else {
		if c.Initial != nil && len(c.Initial) != m.Dim() {
			bad("model %s needs %d initial values, got %d", c.Model, m.Dim(), len(c.Initial))
		}
		if c.Params != nil && len(c.Params) != len(m.Params) {
			bad("model %s needs %d params, got %d", c.Model, len(m.Params), len(c.Params))
		}
	}

	if c.IsStochastic() {
		if _, err := models.LookupDiffusion(c.Noise.Diffusion); err != nil {
			bad("unknown diffusion %q", c.Noise.Diffusion)
		}
		if c.Noise.Mode != "shared" && c.Noise.Mode != "independent" {
			bad("noise mode must be shared or independent, got %q", c.Noise.Mode)
		}
		// Euler-Maruyama scales the noise by sqrt(D*dt), so the diffusion
		// term must stay non-negative along the whole trajectory.
		if c.Method == "euler-maruyama" {
			if c.Noise.Diffusion == "multiplicative" {
				bad("euler-maruyama needs a non-negative diffusion; multiplicative changes sign with the state (use milstein or coloured)")
			}
			for _, p := range c.Noise.Params {
				if p < 0 {
					bad("euler-maruyama needs non-negative noise params, got %v", c.Noise.Params)
					break
				}
			}
		}
		if c.Method == "coloured" {
			if !(c.Noise.Tau > 0) {
				bad("noise tau must be positive, got %v", c.Noise.Tau)
			}
			if !(c.Noise.Sigma >= 0) {
				bad("noise sigma must be non-negative, got %v", c.Noise.Sigma)
			}
		}
	}
	return errors.Join(errs...)
}

// InitialState returns the configured initial state or the model default.
func (c *Config) InitialState(m models.Model) []float64 {
	if c.Initial != nil {
		return append([]float64(nil), c.Initial...)
	}
	return m.Initial.Clone()
}

func (c *Config) ModelParams(m models.Model) []float64 {
	if c.Params != nil {
		return append([]float64(nil), c.Params...)
	}
	return append([]float64(nil), m.Params...)
}

// Steps is the number of samples the run will produce.
func (c *Config) Steps() int {
	return int(math.Floor(c.Duration / c.Dt))
}
