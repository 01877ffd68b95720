package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/nants/internal/config"
	"github.com/san-kum/nants/internal/experiment"
	"github.com/san-kum/nants/internal/optim"
	"github.com/san-kum/nants/internal/viz"
)

// parseGrid reads entries of the form "index=v1,v2,...".
func parseGrid(entries []string) ([]int, [][]float64, error) {
	indices := make([]int, 0, len(entries))
	values := make([][]float64, 0, len(entries))
	for _, entry := range entries {
		idx, list, ok := strings.Cut(entry, "=")
		if !ok {
			return nil, nil, fmt.Errorf("grid entry %q: want index=v1,v2,...", entry)
		}
		i, err := strconv.Atoi(strings.TrimSpace(idx))
		if err != nil {
			return nil, nil, fmt.Errorf("grid entry %q: %w", entry, err)
		}
		var vs []float64
		for _, field := range strings.Split(list, ",") {
			v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
			if err != nil {
				return nil, nil, fmt.Errorf("grid entry %q: %w", entry, err)
			}
			vs = append(vs, v)
		}
		indices = append(indices, i)
		values = append(values, vs)
	}
	return indices, values, nil
}

func tuneModel(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args[0])
	if err != nil {
		return err
	}
	indices, values, err := parseGrid(grid)
	if err != nil {
		return err
	}
	g, err := optim.NewGridSearch(indices, values)
	if err != nil {
		return err
	}

	best, score, err := g.Search(cmd.Context(), experiment.New(nil, logger), cfg, metric)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, viz.Header("tuned %s for minimum %s", cfg.Model, metric))
	fmt.Fprintf(out, "params: %s\n", formatState(best))
	fmt.Fprintf(out, "%s: %s\n", metric, viz.MetricValue.Render(fmt.Sprintf("%.6g", score)))
	return nil
}

func writeConfig(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args[0])
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if cfgOut != "" {
		return config.Save(cfgOut, cfg)
	}
	enc := yaml.NewEncoder(cmd.OutOrStdout())
	defer enc.Close()
	return enc.Encode(cfg)
}
