package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/san-kum/nants/internal/analysis"
	"github.com/san-kum/nants/internal/config"
	"github.com/san-kum/nants/internal/dynamo"
	"github.com/san-kum/nants/internal/experiment"
	"github.com/san-kum/nants/internal/models"
	"github.com/san-kum/nants/internal/storage"
	"github.com/san-kum/nants/internal/viz"
)

func runSimulation(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args[0])
	if err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "running %s with %s...\n", cfg.Model, cfg.Method)

	res, err := experiment.Run(cmd.Context(), cfg, logger)
	if err != nil {
		return err
	}

	runID, err := st.Save(res.Meta, res.Solution)
	if err != nil {
		return err
	}
	logger.Infof("stored %s in %s", runID, st.Dir())

	fmt.Fprintf(out, "completed in %v\n", res.Elapsed)
	fmt.Fprintf(out, "run id: %s\n", runID)
	fmt.Fprintf(out, "steps: %d\n", res.Solution.N)
	fmt.Fprintf(out, "final: %v\n", formatState(res.Solution.Final()))
	fmt.Fprintln(out, "\nmetrics:")
	fmt.Fprint(out, viz.MetricTable(res.Meta.Metrics))
	return nil
}

func compareMethods(cmd *cobra.Command, args []string) error {
	model := args[0]
	methods := args[1:]
	exp := experiment.New(nil, logger)
	out := cmd.OutOrStdout()

	base, err := resolveConfig(cmd, model)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "comparing methods for %s (dt=%.4f, duration=%.1fs)\n\n", model, base.Dt, base.Duration)
	fmt.Fprintf(out, "%-16s  %-12s  %-12s  %-12s\n", "method", "final_x0", "energy_drift", "time_ms")
	fmt.Fprintln(out, strings.Repeat("-", 58))

	trails := make([][]float64, 0, len(methods))
	legend := make([]string, 0, len(methods))
	for _, m := range methods {
		cfg := *base
		cfg.Method = m
		res, err := exp.Run(cmd.Context(), &cfg)
		if err != nil {
			fmt.Fprintf(out, "%-16s  error: %v\n", m, err)
			continue
		}

		drift, ok := res.Meta.Metrics["energy_drift"]
		driftText := "-"
		if ok {
			driftText = fmt.Sprintf("%.2e", drift)
		}
		fmt.Fprintf(out, "%-16s  %12.6f  %12s  %12.2f\n", m, res.Solution.Final()[0], driftText, float64(res.Elapsed.Microseconds())/1000)

		xs, _ := res.Solution.Dimension(0)
		trails = append(trails, xs)
		legend = append(legend, m)
	}

	if len(trails) > 0 {
		fmt.Fprintln(out)
		fmt.Fprintln(out, viz.PlotMany(trails, "x0: "+strings.Join(legend, ", "), viz.DefaultWidth, viz.DefaultHeight))
	}
	return nil
}

func runEnsemble(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args[0])
	if err != nil {
		return err
	}
	if !cmd.Flags().Changed("method") && !cfg.IsStochastic() {
		cfg.Method = "euler-maruyama"
	}

	exp := experiment.New(nil, logger)
	start := time.Now()
	results, err := experiment.Ensemble{Runs: runs, SeedStart: seedStart, Workers: workers}.Run(cmd.Context(), exp, cfg)
	if err != nil {
		return err
	}

	sols := make([]*dynamo.Solution, len(results))
	for i, r := range results {
		sols[i] = r.Solution
	}
	m, err := analysis.EnsembleStats(sols, 0)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	label := results[0].Model.Label(0)
	last := len(m.Mean) - 1
	fmt.Fprintln(out, viz.Header("ensemble %s/%s: %d runs from seed %d in %v", cfg.Model, cfg.Method, runs, seedStart, time.Since(start)))
	fmt.Fprintf(out, "final %s: mean %.6g, variance %.6g\n\n", label, m.Mean[last], m.Variance[last])
	fmt.Fprintln(out, viz.Plot(m.Mean, "mean "+label, viz.DefaultWidth, viz.DefaultHeight))
	fmt.Fprintln(out)
	fmt.Fprintln(out, viz.MetricLabel.Render("variance ")+viz.SparklineChart(m.Variance, viz.DefaultWidth-9))
	return nil
}

func benchModel(cmd *cobra.Command, args []string) error {
	model := args[0]
	exp := experiment.New(nil, logger)
	out := cmd.OutOrStdout()

	dts := []float64{0.001, 0.01, 0.1}
	const dur = 10.0

	fmt.Fprintf(out, "benchmarking %s\n\n", model)
	var rows [][]string

	for _, m := range []string{"euler", "leapfrog", "ab2", "heun", "rk4"} {
		for _, step := range dts {
			cfg := config.DefaultConfig()
			cfg.Model, cfg.Method, cfg.Dt, cfg.Duration = model, m, step, dur

			res, err := exp.Run(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			stepsPerSec := float64(res.Solution.N) / res.Elapsed.Seconds()
			rows = append(rows, []string{
				m, fmt.Sprintf("%.4fs", step), fmt.Sprintf("%d", res.Solution.N),
				res.Elapsed.String(), fmt.Sprintf("%.0f", stepsPerSec),
			})
		}
	}
	fmt.Fprintln(out, viz.Table([]string{"METHOD", "DT", "STEPS", "TIME", "STEPS/SEC"}, rows))
	return nil
}

func lyapunov(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args[0])
	if err != nil {
		return err
	}
	if !cmd.Flags().Changed("method") {
		cfg.Method = "rk4"
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	reg := experiment.NewRegistry()
	in, err := reg.GetIntegrator(cfg.Method)
	if err != nil {
		return err
	}
	m, err := reg.GetModel(cfg.Model)
	if err != nil {
		return err
	}

	lambda, err := analysis.LyapunovExponent(in, m.Derive, cfg.InitialState(m), cfg.ModelParams(m), cfg.Dt, cfg.Duration, 1e-8)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "largest lyapunov exponent (%s, %s): %s\n", cfg.Model, cfg.Method, viz.MetricValue.Render(fmt.Sprintf("%.4f", lambda)))
	if lambda > 0.01 {
		fmt.Fprintln(out, "trajectories diverge: the system is chaotic")
	}
	return nil
}

func bifurcation(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args[0])
	if err != nil {
		return err
	}
	if !cmd.Flags().Changed("method") {
		cfg.Method = "rk4"
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	reg := experiment.NewRegistry()
	in, err := reg.GetIntegrator(cfg.Method)
	if err != nil {
		return err
	}
	m, err := reg.GetModel(cfg.Model)
	if err != nil {
		return err
	}

	sw := analysis.Sweep{Index: sweepIndex, Min: sweepMin, Max: sweepMax, Steps: sweepSteps}
	points, err := analysis.BifurcationDiagram(in, m.Derive, cfg.InitialState(m), cfg.ModelParams(m), sw, stateIndex, cfg.Dt, transient, cfg.Duration)
	if err != nil {
		return err
	}

	scatter := make([]dynamo.Point, 0)
	for _, p := range points {
		for _, v := range p.Values {
			scatter = append(scatter, dynamo.Point{X: p.Param, Y: v})
		}
	}
	name := fmt.Sprintf("p%d", sweepIndex)
	if sweepIndex < len(m.ParamNames) {
		name = m.ParamNames[sweepIndex]
	}
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, viz.Header("bifurcation of %s: %s in [%g, %g]", m.Label(stateIndex), name, sweepMin, sweepMax))
	fmt.Fprint(out, viz.PhaseASCII(scatter, viz.DefaultWidth, 2*viz.DefaultHeight))
	return nil
}

func listModels(cmd *cobra.Command, args []string) error {
	reg := experiment.NewRegistry()
	out := cmd.OutOrStdout()

	rows := make([][]string, 0)
	for _, name := range reg.ListModels() {
		m, err := reg.GetModel(name)
		if err != nil {
			return err
		}
		rows = append(rows, []string{name, strings.Join(m.Labels, ", "), strings.Join(m.ParamNames, ", ")})
	}
	fmt.Fprintln(out, viz.Table([]string{"MODEL", "STATE", "PARAMS"}, rows))

	var det, sto []string
	for _, m := range reg.ListMethods() {
		if reg.IsStochastic(m) {
			sto = append(sto, m)
		} else {
			det = append(det, m)
		}
	}
	fmt.Fprintf(out, "ode methods: %s
", strings.Join(det, ", "))
	fmt.Fprintf(out, "sde methods: %s
", strings.Join(sto, ", "))
	fmt.Fprintf(out, "diffusion terms: %s
", strings.Join(models.DiffusionNames(), ", "))
	return nil
}

func formatState(x dynamo.State) string {
	parts := make([]string, len(x))
	for i, v := range x {
		parts[i] = fmt.Sprintf("%.6g", v)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
