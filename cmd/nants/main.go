package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/san-kum/nants/internal/config"
	"github.com/san-kum/nants/internal/dynamo"
)

var (
	dataDir string
	verbose bool
	logger  dynamo.Logger = dynamo.NopLogger{}

	// run configuration, shared by run, compare, ensemble, lyapunov and bifurcation
	configFile  string
	preset      string
	method      string
	dt          float64
	duration    float64
	seed        int64
	initial     []float64
	params      []float64
	diffusion   string
	noiseParams []float64
	sigma       float64
	tau         float64
	noiseMode   string

	// phase plot axes
	xAxis   int
	yAxis   int
	braille bool
	svgOut  string
	jsonOut string
	cfgOut  string

	// poincare section
	crossIdx  int
	threshold float64

	// ensemble
	runs      int
	seedStart int64
	workers   int

	// bifurcation sweep
	sweepIndex int
	sweepMin   float64
	sweepMax   float64
	sweepSteps int
	transient  float64
	stateIndex int

	// tune
	grid   []string
	metric string
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "nants",
		Short:         "numerical analysis toolkit: LU solver, ODE and SDE integrators",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger = newSlogLogger(cmd.ErrOrStderr(), verbose)
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".nants", "data directory")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	runCmd := &cobra.Command{
		Use:   "run [model]",
		Short: "run simulation",
		Args:  cobra.ExactArgs(1),
		RunE:  runSimulation,
	}
	addRunFlags(runCmd)

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list runs",
		Args:  cobra.NoArgs,
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot run results",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	phaseCmd := &cobra.Command{
		Use:   "phase [run_id]",
		Short: "phase space plot",
		Args:  cobra.ExactArgs(1),
		RunE:  phasePlot,
	}
	phaseCmd.Flags().IntVar(&xAxis, "x-axis", 0, "state index for x-axis")
	phaseCmd.Flags().IntVar(&yAxis, "y-axis", 1, "state index for y-axis")
	phaseCmd.Flags().BoolVar(&braille, "braille", false, "draw a connected braille curve")

	poincareCmd := &cobra.Command{
		Use:   "poincare [run_id]",
		Short: "poincare section of a run",
		Args:  cobra.ExactArgs(1),
		RunE:  poincare,
	}
	poincareCmd.Flags().IntVar(&crossIdx, "cross", 2, "state index whose upward crossing defines the section")
	poincareCmd.Flags().Float64Var(&threshold, "threshold", 25, "crossing value")
	poincareCmd.Flags().IntVar(&xAxis, "x-axis", 0, "state index for x-axis")
	poincareCmd.Flags().IntVar(&yAxis, "y-axis", 1, "state index for y-axis")

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export run metadata",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export run data to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export run data to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}
	exportJSONCmd.Flags().StringVarP(&jsonOut, "output", "o", "", "output file (default stdout)")

	configCmd := &cobra.Command{
		Use:   "config [model]",
		Short: "write the resolved run configuration as YAML",
		Args:  cobra.ExactArgs(1),
		RunE:  writeConfig,
	}
	addRunFlags(configCmd)
	configCmd.Flags().StringVarP(&cfgOut, "output", "o", "", "output file (default stdout)")

	exportSVGCmd := &cobra.Command{
		Use:   "export-svg [run_id]",
		Short: "export the phase portrait of a run to SVG",
		Args:  cobra.ExactArgs(1),
		RunE:  exportSVG,
	}
	exportSVGCmd.Flags().IntVar(&xAxis, "x-axis", 0, "state index for x-axis")
	exportSVGCmd.Flags().IntVar(&yAxis, "y-axis", 1, "state index for y-axis")
	exportSVGCmd.Flags().StringVarP(&svgOut, "output", "o", "", "output file (default stdout)")

	analyzeCmd := &cobra.Command{
		Use:   "analyze [run_id]",
		Short: "frequency analysis",
		Args:  cobra.ExactArgs(1),
		RunE:  analyzeRun,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets [model]",
		Short: "list available presets for a model",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			presets := config.ListPresets(args[0])
			if len(presets) == 0 {
				fmt.Fprintf(out, "no presets for model: %s\n", args[0])
				return nil
			}
			fmt.Fprintf(out, "presets for %s:\n", args[0])
			for _, p := range presets {
				c := config.GetPreset(args[0], p)
				fmt.Fprintf(out, "  %-12s %s dt=%g duration=%g\n", p, c.Method, c.Dt, c.Duration)
			}
			return nil
		},
	}

	modelsCmd := &cobra.Command{
		Use:   "models",
		Short: "list models, integration methods and diffusion terms",
		Args:  cobra.NoArgs,
		RunE:  listModels,
	}

	compareCmd := &cobra.Command{
		Use:   "compare [model] [method1] [method2] ...",
		Short: "compare methods on the same model",
		Args:  cobra.MinimumNArgs(2),
		RunE:  compareMethods,
	}
	addRunFlags(compareCmd)

	ensembleCmd := &cobra.Command{
		Use:   "ensemble [model]",
		Short: "repeat a stochastic run over consecutive seeds",
		Args:  cobra.ExactArgs(1),
		RunE:  runEnsemble,
	}
	addRunFlags(ensembleCmd)
	ensembleCmd.Flags().IntVar(&runs, "runs", 32, "number of runs")
	ensembleCmd.Flags().Int64Var(&seedStart, "seed-start", 1, "seed of the first run")
	ensembleCmd.Flags().IntVar(&workers, "workers", 0, "concurrent runs (0 = unbounded)")

	benchCmd := &cobra.Command{
		Use:   "bench [model]",
		Short: "benchmark every deterministic method on a model",
		Args:  cobra.ExactArgs(1),
		RunE:  benchModel,
	}

	lyapunovCmd := &cobra.Command{
		Use:   "lyapunov [model]",
		Short: "estimate the largest Lyapunov exponent",
		Args:  cobra.ExactArgs(1),
		RunE:  lyapunov,
	}
	addRunFlags(lyapunovCmd)

	bifurcationCmd := &cobra.Command{
		Use:   "bifurcation [model]",
		Short: "sweep one parameter and plot long-run maxima",
		Args:  cobra.ExactArgs(1),
		RunE:  bifurcation,
	}
	addRunFlags(bifurcationCmd)
	bifurcationCmd.Flags().IntVar(&sweepIndex, "param-index", 0, "index of the swept parameter")
	bifurcationCmd.Flags().Float64Var(&sweepMin, "min", 0, "first parameter value")
	bifurcationCmd.Flags().Float64Var(&sweepMax, "max", 1, "last parameter value")
	bifurcationCmd.Flags().IntVar(&sweepSteps, "steps", 40, "number of parameter values")
	bifurcationCmd.Flags().Float64Var(&transient, "transient", 20, "time discarded before recording")
	bifurcationCmd.Flags().IntVar(&stateIndex, "state", 0, "state index to record")

	tuneCmd := &cobra.Command{
		Use:   "tune [model]",
		Short: "grid search model parameters minimising a run metric",
		Args:  cobra.ExactArgs(1),
		RunE:  tuneModel,
	}
	addRunFlags(tuneCmd)
	tuneCmd.Flags().StringArrayVar(&grid, "grid", nil, "parameter grid as index=v1,v2,... (repeatable)")
	tuneCmd.Flags().StringVar(&metric, "metric", "energy_drift", "metric to minimise")

	solveCmd := &cobra.Command{
		Use:   "solve [file]",
		Short: "solve a dense linear system a*x = b read from YAML",
		Args:  cobra.ExactArgs(1),
		RunE:  solveSystem,
	}

	rootCmd.AddCommand(runCmd, listCmd, plotCmd, phaseCmd, poincareCmd, exportCmd, exportCSVCmd, exportJSONCmd,
		exportSVGCmd, analyzeCmd, presetsCmd, configCmd, modelsCmd, compareCmd, ensembleCmd, benchCmd, lyapunovCmd, bifurcationCmd, tuneCmd, solveCmd)
	return rootCmd
}

func addRunFlags(cmd *cobra.Command) {
	def := config.DefaultConfig()
	f := cmd.Flags()
	f.StringVar(&configFile, "config", "", "config file path (yaml)")
	f.StringVar(&preset, "preset", "", "use preset configuration")
	f.StringVar(&method, "method", def.Method, "integration method")
	f.Float64Var(&dt, "dt", def.Dt, "timestep")
	f.Float64Var(&duration, "time", def.Duration, "duration")
	f.Int64Var(&seed, "seed", def.Seed, "random seed")
	f.Float64SliceVar(&initial, "init", nil, "initial state (default: model default)")
	f.Float64SliceVar(&params, "params", nil, "model parameters (default: model default)")
	f.StringVar(&diffusion, "diffusion", def.Noise.Diffusion, "diffusion term for stochastic methods")
	f.Float64SliceVar(&noiseParams, "noise-params", nil, "diffusion parameters")
	f.Float64Var(&sigma, "sigma", def.Noise.Sigma, "coloured noise standard deviation")
	f.Float64Var(&tau, "tau", def.Noise.Tau, "coloured noise correlation time")
	f.StringVar(&noiseMode, "noise-mode", def.Noise.Mode, "euler-maruyama noise: shared or independent")
}

// resolveConfig layers defaults, preset, config file and flags, in increasing
// precedence.
func resolveConfig(cmd *cobra.Command, model string) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if preset != "" {
		cfg = config.GetPreset(model, preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets(model))
		}
	}
	if configFile != "" {
		var err error
		cfg, err = config.LoadOver(configFile, cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
	}
	cfg.Model = model

	changed := cmd.Flags().Changed
	if changed("method") {
		cfg.Method = method
	}
	if changed("dt") {
		cfg.Dt = dt
	}
	if changed("time") {
		cfg.Duration = duration
	}
	if changed("seed") {
		cfg.Seed = seed
	}
	if changed("init") {
		cfg.Initial = initial
	}
	if changed("params") {
		cfg.Params = params
	}
	if changed("diffusion") {
		cfg.Noise.Diffusion = diffusion
	}
	if changed("noise-params") {
		cfg.Noise.Params = noiseParams
	}
	if changed("sigma") {
		cfg.Noise.Sigma = sigma
	}
	if changed("tau") {
		cfg.Noise.Tau = tau
	}
	if changed("noise-mode") {
		cfg.Noise.Mode = noiseMode
	}
	return cfg, nil
}
