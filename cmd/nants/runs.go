package main

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/san-kum/nants/internal/analysis"
	"github.com/san-kum/nants/internal/dynamo"
	"github.com/san-kum/nants/internal/storage"
	"github.com/san-kum/nants/internal/viz"
)

const maxPlottedDims = 6

func listRuns(cmd *cobra.Command, args []string) error {
	list, err := storage.New(dataDir).List()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(list) == 0 {
		fmt.Fprintln(out, "no runs found")
		return nil
	}

	rows := make([][]string, 0, len(list))
	for _, r := range list {
		rows = append(rows, []string{
			r.ID, r.Model, r.Method, r.Timestamp.Format("2006-01-02 15:04:05"),
			fmt.Sprintf("%.1fs", r.Duration), fmt.Sprintf("%g", r.Dt), fmt.Sprintf("%d", r.Seed),
		})
	}
	fmt.Fprintln(out, viz.Table([]string{"ID", "MODEL", "METHOD", "TIME", "DURATION", "DT", "SEED"}, rows))
	return nil
}

func loadRun(runID string) (*storage.RunMetadata, *dynamo.Solution, error) {
	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load run %s: %w", runID, err)
	}
	sol, err := st.LoadSolution(runID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load states of %s: %w", runID, err)
	}
	return meta, sol, nil
}

func runLabel(meta *storage.RunMetadata, k int) string {
	if k < len(meta.Labels) {
		return meta.Labels[k]
	}
	return fmt.Sprintf("x%d", k)
}

func plotRun(cmd *cobra.Command, args []string) error {
	meta, sol, err := loadRun(args[0])
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, viz.Header("%s (%s, seed %d)", meta.Model, meta.Method, meta.Seed))
	for k := 0; k < min(sol.Dims(), maxPlottedDims); k++ {
		graph, err := viz.PlotTrail(sol, k, runLabel(meta, k), viz.DefaultWidth, viz.DefaultHeight)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, graph)
		fmt.Fprintln(out)
	}
	return nil
}

func phasePlot(cmd *cobra.Command, args []string) error {
	meta, sol, err := loadRun(args[0])
	if err != nil {
		return err
	}
	points, err := sol.Phase(xAxis, yAxis)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, viz.Header("phase: %s vs %s", runLabel(meta, yAxis), runLabel(meta, xAxis)))
	if braille {
		fmt.Fprint(out, viz.PhaseBraille(points, viz.DefaultWidth, 2*viz.DefaultHeight))
	} else {
		fmt.Fprint(out, viz.PhaseASCII(points, viz.DefaultWidth, 2*viz.DefaultHeight))
	}
	return nil
}

func poincare(cmd *cobra.Command, args []string) error {
	meta, sol, err := loadRun(args[0])
	if err != nil {
		return err
	}
	points, err := analysis.PoincareSection(sol, crossIdx, threshold, xAxis, yAxis)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, viz.Header("poincare section %s = %g: %d crossings", runLabel(meta, crossIdx), threshold, len(points)))
	if len(points) == 0 {
		return nil
	}
	fmt.Fprint(out, viz.PhaseASCII(points, viz.DefaultWidth, 2*viz.DefaultHeight))
	return nil
}

func exportRun(cmd *cobra.Command, args []string) error {
	meta, err := storage.New(dataDir).Load(args[0])
	if err != nil {
		return err
	}
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(meta)
}

func exportCSV(cmd *cobra.Command, args []string) error {
	meta, sol, err := loadRun(args[0])
	if err != nil {
		return err
	}
	w := csv.NewWriter(cmd.OutOrStdout())
	if err := storage.WriteCSV(w, sol, meta.Labels); err != nil {
		return err
	}
	w.Flush()
	return w.Error()
}

func exportJSON(cmd *cobra.Command, args []string) error {
	meta, sol, err := loadRun(args[0])
	if err != nil {
		return err
	}
	if jsonOut != "" {
		return storage.ExportJSONFile(jsonOut, *meta, sol)
	}
	return storage.ExportJSON(cmd.OutOrStdout(), *meta, sol)
}

func exportSVG(cmd *cobra.Command, args []string) error {
	_, sol, err := loadRun(args[0])
	if err != nil {
		return err
	}
	points, err := sol.Phase(xAxis, yAxis)
	if err != nil {
		return err
	}

	var w io.Writer = cmd.OutOrStdout()
	if svgOut != "" {
		f, err := os.Create(svgOut)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}
	if err := viz.PhaseSVG(w, points, 800, 600, "#00ff88"); err != nil {
		return err
	}
	logger.Infof("wrote phase portrait of %s", args[0])
	return nil
}

func analyzeRun(cmd *cobra.Command, args []string) error {
	meta, sol, err := loadRun(args[0])
	if err != nil {
		return err
	}
	xs, err := sol.Dimension(0)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, viz.Header("frequency analysis of %s (%s)", runLabel(meta, 0), meta.ID))

	freq, err := analysis.DominantFrequency(xs, meta.Dt)
	if err != nil {
		return err
	}
	spectrum := analysis.PowerSpectrum(xs)
	fmt.Fprintln(out, viz.Plot(spectrum, "power spectrum", viz.DefaultWidth, viz.DefaultHeight))
	fmt.Fprintln(out)

	values := map[string]float64{"dominant_frequency": freq}
	if freq > 0 {
		values["period"] = 1 / freq
	}
	fmt.Fprint(out, viz.MetricTable(values))
	return nil
}
