package config

import "sort"

var Presets = map[string]map[string]*Config{
	"harmonic": {
		"undamped": {
			Model: "harmonic", Method: "leapfrog", Dt: 0.01, Duration: 20.0,
			Initial: []float64{1, 0}, Params: []float64{1, 0},
		},
		"damped": {
			Model: "harmonic", Method: "heun", Dt: 0.01, Duration: 30.0,
			Initial: []float64{1, 0}, Params: []float64{4, 0.4},
		},
		"thermal": {
			Model: "harmonic", Method: "euler-maruyama", Dt: 0.005, Duration: 20.0, Seed: 1,
			Initial: []float64{0, 0}, Params: []float64{1, 0.2},
			Noise: NoiseConfig{Diffusion: "additive", Params: []float64{0.4}, Mode: "shared"},
		},
		"coloured": {
			Model: "harmonic", Method: "coloured", Dt: 0.01, Duration: 20.0, Seed: 1,
			Initial: []float64{1, 0}, Params: []float64{1, 0.1},
			Noise: NoiseConfig{Diffusion: "additive", Params: []float64{1}, Sigma: 0.5, Tau: 0.2, Mode: "shared"},
		},
	},
	"vanderpol": {
		"classic": {
			Model: "vanderpol", Method: "rk4", Dt: 0.01, Duration: 40.0,
			Initial: []float64{2, 0}, Params: []float64{1},
		},
		"relaxation": {
			Model: "vanderpol", Method: "rk4", Dt: 0.005, Duration: 60.0,
			Initial: []float64{2, 0}, Params: []float64{5},
		},
	},
	"doublewell": {
		"hopping": {
			Model: "doublewell", Method: "milstein", Dt: 0.005, Duration: 100.0, Seed: 3,
			Initial: []float64{1, 0}, Params: []float64{1, 1, 0.5},
			Noise: NoiseConfig{Diffusion: "additive", Params: []float64{0.6}, Mode: "shared"},
		},
		"settle": {
			Model: "doublewell", Method: "heun", Dt: 0.01, Duration: 30.0,
			Initial: []float64{0.1, 1.5}, Params: []float64{1, 1, 0.3},
		},
	},
	"lorenz": {
		"butterfly": {
			Model: "lorenz", Method: "rk4", Dt: 0.005, Duration: 40.0,
			Initial: []float64{1, 1, 1}, Params: []float64{10, 28, 8.0 / 3.0},
		},
	},
	"duffing": {
		"chaotic": {
			Model: "duffing", Method: "rk4", Dt: 0.01, Duration: 100.0,
			Initial: []float64{1, 0}, Params: []float64{-1, 1, 0.3, 0.5, 1.2},
		},
		"periodic": {
			Model: "duffing", Method: "rk4", Dt: 0.01, Duration: 100.0,
			Initial: []float64{1, 0}, Params: []float64{-1, 1, 0.3, 0.2, 1.2},
		},
	},
	"rossler": {
		"attractor": {
			Model: "rossler", Method: "rk4", Dt: 0.01, Duration: 200.0,
			Initial: []float64{1, 1, 1}, Params: []float64{0.2, 0.2, 5.7},
		},
	},
	"pendulum": {
		"swing": {
			Model: "pendulum", Method: "leapfrog", Dt: 0.005, Duration: 20.0,
			Initial: []float64{2.5, 0}, Params: []float64{1, 1, 0, 9.81},
		},
		"thermal": {
			Model: "pendulum", Method: "euler-maruyama", Dt: 0.005, Duration: 30.0, Seed: 7,
			Initial: []float64{0.5, 0}, Params: []float64{1, 1, 0.2, 9.81},
			Noise: NoiseConfig{Diffusion: "additive", Params: []float64{0.5}, Mode: "independent"},
		},
	},
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(model, preset string) *Config {
	modelPresets, ok := Presets[model]
	if !ok {
		return nil
	}
	cfg, ok := modelPresets[preset]
	if !ok {
		return nil
	}
	c := *cfg
	c.Initial = append([]float64(nil), cfg.Initial...)
	c.Params = append([]float64(nil), cfg.Params...)
	if c.Noise.Diffusion == "" {
		c.Noise = DefaultConfig().Noise
	}
	c.Noise.Params = append([]float64(nil), cfg.Noise.Params...)
	if c.Noise.Tau == 0 {
		c.Noise.Tau = DefaultTau
	}
	return &c
}

func ListPresets(model string) []string {
	modelPresets, ok := Presets[model]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(modelPresets))
	for name := range modelPresets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
