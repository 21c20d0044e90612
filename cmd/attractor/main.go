package main

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"

	"github.com/mstolbov/attractor/internal/analysis"
	"github.com/mstolbov/attractor/internal/chaos"
	"github.com/mstolbov/attractor/internal/config"
	"github.com/mstolbov/attractor/internal/export"
	"github.com/mstolbov/attractor/internal/integrate"
	"github.com/mstolbov/attractor/internal/storage"
	"github.com/mstolbov/attractor/internal/viz"
)

var (
	dataDir    string
	step       float64
	iterations int
	method     string
	params     []float64
	initX      float64
	initY      float64
	initZ      float64
	configFile string
	preset     string
	plane      string
	variable   string
	maxPoints  int
	outFile    string
)

var varPositions = map[string]int{"x": 0, "y": 1, "z": 2}

func main() {
	slog.SetDefault(slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      slog.LevelInfo,
		TimeFormat: time.Kitchen,
	})))

	rootCmd := &cobra.Command{
		Use:   "attractor",
		Short: "strange attractor trajectory lab",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".attractor", "data directory")

	runCmd := &cobra.Command{
		Use:   "run [family]",
		Short: "integrate an attractor and store the trajectory",
		Args:  cobra.ExactArgs(1),
		RunE:  runAttractor,
	}
	runCmd.Flags().Float64Var(&step, "step", config.DefaultStep, "step size")
	runCmd.Flags().IntVar(&iterations, "iterations", config.DefaultIterations, "number of integration steps")
	runCmd.Flags().StringVar(&method, "method", "runge-kutta", "integration method (euler, runge-kutta)")
	runCmd.Flags().Float64SliceVar(&params, "params", nil, "family parameters, in formula order")
	runCmd.Flags().Float64Var(&initX, "x", 1, "initial x")
	runCmd.Flags().Float64Var(&initY, "y", 1, "initial y")
	runCmd.Flags().Float64Var(&initZ, "z", 1, "initial z")
	runCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	runCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot one coordinate against iteration number",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}
	plotCmd.Flags().StringVar(&variable, "var", "x", "coordinate to plot (x, y, z)")
	plotCmd.Flags().IntVar(&maxPoints, "n", 0, "plot only the first n iterations (0 = all)")

	renderCmd := &cobra.Command{
		Use:   "render [run_id]",
		Short: "render a 2D projection to PNG or SVG",
		Args:  cobra.ExactArgs(1),
		RunE:  renderRun,
	}
	renderCmd.Flags().StringVar(&plane, "plane", "xoy", "projection plane (xoy, xoz, yoz)")
	renderCmd.Flags().StringVar(&outFile, "out", "", "output file (.png or .svg)")

	projectCmd := &cobra.Command{
		Use:   "project [run_id]",
		Short: "write a 2D projection as CSV to stdout",
		Args:  cobra.ExactArgs(1),
		RunE:  projectRun,
	}
	projectCmd.Flags().StringVar(&plane, "plane", "xoy", "projection plane (xoy, xoz, yoz)")

	analyzeCmd := &cobra.Command{
		Use:   "analyze [run_id]",
		Short: "frequency analysis of one coordinate",
		Args:  cobra.ExactArgs(1),
		RunE:  analyzeRun,
	}
	analyzeCmd.Flags().StringVar(&variable, "var", "x", "coordinate to analyze (x, y, z)")

	compareCmd := &cobra.Command{
		Use:   "compare [family]",
		Short: "compare euler and runge-kutta over step sizes",
		Args:  cobra.ExactArgs(1),
		RunE:  compareMethods,
	}
	compareCmd.Flags().IntVar(&iterations, "iterations", 2000, "number of integration steps")
	compareCmd.Flags().Float64SliceVar(&params, "params", nil, "family parameters, in formula order")

	presetsCmd := &cobra.Command{
		Use:   "presets [family]",
		Short: "list available presets for a family",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			names := config.ListPresets(args[0])
			if len(names) == 0 {
				fmt.Printf("no presets for family: %s\n", args[0])
				return nil
			}
			fmt.Printf("presets for %s:\n", args[0])
			for _, p := range names {
				cfg := config.GetPreset(args[0], p)
				fmt.Printf("  %-10s step=%-8g iterations=%-7d params=%v\n", p, cfg.Step, cfg.Iterations, cfg.Params)
			}
			return nil
		},
	}

	liveCmd := &cobra.Command{
		Use:   "live [family]",
		Short: "watch the orbit live in the terminal",
		Args:  cobra.ExactArgs(1),
		RunE:  runLive,
	}
	liveCmd.Flags().Float64Var(&step, "step", config.DefaultStep, "step size")
	liveCmd.Flags().StringVar(&method, "method", "runge-kutta", "integration method (euler, runge-kutta)")
	liveCmd.Flags().Float64SliceVar(&params, "params", nil, "family parameters, in formula order")
	liveCmd.Flags().Float64Var(&initX, "x", 1, "initial x")
	liveCmd.Flags().Float64Var(&initY, "y", 1, "initial y")
	liveCmd.Flags().Float64Var(&initZ, "z", 1, "initial z")
	liveCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")

	rootCmd.AddCommand(runCmd, listCmd, plotCmd, renderCmd, projectCmd, analyzeCmd, compareCmd, presetsCmd, liveCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// resolveRunConfig layers preset < config file < explicit flags into one
// run configuration, the same precedence the flags help implies.
func resolveRunConfig(cmd *cobra.Command, family string) (*config.Config, error) {
	cfg := config.DefaultConfig()
	cfg.Family = family
	cfg.Method = method
	cfg.Step = step
	cfg.Iterations = iterations
	cfg.Params = params
	cfg.Initial = []float64{initX, initY, initZ}

	if preset != "" {
		p := config.GetPreset(family, preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets(family))
		}
		cfg.Method = p.Method
		cfg.Step = p.Step
		cfg.Iterations = p.Iterations
		cfg.Params = p.Params
		cfg.Initial = p.Initial
	}

	if configFile != "" {
		fileCfg, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = fileCfg
		cfg.Family = family
	}

	// Explicit flags win over preset and file.
	if cmd.Flags().Changed("method") {
		cfg.Method = method
	}
	if cmd.Flags().Changed("step") {
		cfg.Step = step
	}
	if cmd.Flags().Changed("iterations") {
		cfg.Iterations = iterations
	}
	if cmd.Flags().Changed("params") {
		cfg.Params = params
	}
	if cmd.Flags().Changed("x") || cmd.Flags().Changed("y") || cmd.Flags().Changed("z") {
		cfg.Initial = []float64{initX, initY, initZ}
	}

	if cfg.Params == nil {
		if p := config.GetPreset(family, "classic"); p != nil {
			cfg.Params = p.Params
		}
	}

	return cfg, nil
}

func buildIntegrator(cfg *config.Config) (*integrate.Integrator, chaos.Params, error) {
	family, err := chaos.ParseFamily(cfg.Family)
	if err != nil {
		return nil, nil, err
	}

	var initial chaos.State
	if len(cfg.Initial) != 3 {
		return nil, nil, fmt.Errorf("%w: initial state must have 3 coordinates, got %d",
			chaos.ErrConfiguration, len(cfg.Initial))
	}
	copy(initial[:], cfg.Initial)

	in, err := integrate.New(integrate.Config{
		Family:     family,
		Method:     integrate.Method(cfg.Method),
		Step:       cfg.Step,
		Iterations: cfg.Iterations,
		Initial:    initial,
	})
	if err != nil {
		return nil, nil, err
	}
	return in, chaos.Params(cfg.Params), nil
}

func runAttractor(cmd *cobra.Command, args []string) error {
	cfg, err := resolveRunConfig(cmd, args[0])
	if err != nil {
		return err
	}

	in, p, err := buildIntegrator(cfg)
	if err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	slog.Info("integrating", "family", cfg.Family, "method", cfg.Method,
		"step", cfg.Step, "iterations", cfg.Iterations)
	start := time.Now()

	tr, err := in.Compute(p)
	if err != nil {
		return err
	}

	elapsed := time.Since(start)

	runID, err := st.Save(storage.RunMetadata{
		Family:     cfg.Family,
		Method:     cfg.Method,
		Step:       cfg.Step,
		Iterations: cfg.Iterations,
		Params:     cfg.Params,
		Initial:    cfg.Initial,
	}, tr)
	if err != nil {
		return err
	}

	slog.Info("completed", "elapsed", elapsed, "rows", len(tr))
	final := tr[len(tr)-1]
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("rows: %d\n", len(tr))
	fmt.Printf("final: (%.6f, %.6f, %.6f)\n", final[0], final[1], final[2])
	if !final.IsValid() {
		fmt.Println("note: trajectory left the finite range (unstable step/parameter combination)")
	}
	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tFAMILY\tTIME\tMETHOD\tSTEP\tITER\tPARAMS")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%g\t%d\t%v\n",
			run.ID,
			run.Family,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Method,
			run.Step,
			run.Iterations,
			run.Params,
		)
	}

	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	pos, ok := varPositions[strings.ToLower(variable)]
	if !ok {
		return fmt.Errorf("unknown variable %q (want x, y or z)", variable)
	}

	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	tr, err := st.LoadTrajectory(args[0])
	if err != nil {
		return err
	}
	if len(tr) == 0 {
		return fmt.Errorf("no data to plot")
	}

	data := tr.Column(pos)
	if maxPoints > 0 && maxPoints < len(data) {
		data = data[:maxPoints]
	}

	fmt.Printf("run: %s (%s, %s)\n\n", meta.ID, meta.Family, meta.Method)
	graph := asciigraph.Plot(data,
		asciigraph.Height(12),
		asciigraph.Width(80),
		asciigraph.Caption(fmt.Sprintf("%s vs iteration", strings.ToLower(variable))),
	)
	fmt.Println(graph)
	return nil
}

func renderRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	tr, err := st.LoadTrajectory(args[0])
	if err != nil {
		return err
	}

	proj, err := chaos.Project(tr, plane)
	if err != nil {
		return err
	}

	out := outFile
	if out == "" {
		out = fmt.Sprintf("%s_%s.png", meta.ID, strings.ToLower(plane))
	}

	title := fmt.Sprintf("%s attractor (%s)",
		strings.ReplaceAll(meta.Family, "_", " "), strings.ToLower(plane))

	switch {
	case strings.HasSuffix(out, ".svg"):
		svg := export.ProjectionToSVG(proj, 800, 800, "#00ff00")
		if err := os.WriteFile(out, []byte(svg), 0644); err != nil {
			return err
		}
	case strings.HasSuffix(out, ".png"):
		if err := export.ProjectionToPNG(proj, title, out); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unsupported output format: %s (want .png or .svg)", out)
	}

	slog.Info("rendered", "file", out, "points", len(proj.Points))
	return nil
}

func projectRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	tr, err := st.LoadTrajectory(args[0])
	if err != nil {
		return err
	}

	proj, err := chaos.Project(tr, plane)
	if err != nil {
		return err
	}

	w := csv.NewWriter(os.Stdout)
	defer w.Flush()

	if err := w.Write([]string{proj.XLabel, proj.YLabel}); err != nil {
		return err
	}
	for _, p := range proj.Points {
		rec := []string{
			strconv.FormatFloat(p[0], 'f', 6, 64),
			strconv.FormatFloat(p[1], 'f', 6, 64),
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	return nil
}

func analyzeRun(cmd *cobra.Command, args []string) error {
	pos, ok := varPositions[strings.ToLower(variable)]
	if !ok {
		return fmt.Errorf("unknown variable %q (want x, y or z)", variable)
	}

	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	tr, err := st.LoadTrajectory(args[0])
	if err != nil {
		return err
	}
	if len(tr) == 0 {
		return fmt.Errorf("no data")
	}

	ps := analysis.PowerSpectrum(tr.Column(pos))
	plotData := ps[:len(ps)/4]

	fmt.Printf("frequency analysis: %s (%s)\n\n", meta.ID, strings.ToLower(variable))
	graph := asciigraph.Plot(plotData,
		asciigraph.Height(15),
		asciigraph.Width(80),
		asciigraph.Caption(fmt.Sprintf("power spectrum (%s)", strings.ToLower(variable))),
	)
	fmt.Println(graph)
	fmt.Println()

	idx := analysis.DominantIndex(plotData)
	span := meta.Step * float64(meta.Iterations)
	if idx > 0 && span > 0 {
		freq := float64(idx) / span
		fmt.Printf("dominant frequency: %.3f hz\n", freq)
		fmt.Printf("period: %.3f s\n", 1.0/freq)
	}
	return nil
}

func compareMethods(cmd *cobra.Command, args []string) error {
	family, err := chaos.ParseFamily(args[0])
	if err != nil {
		return err
	}

	p := chaos.Params(params)
	if p == nil {
		preset := config.GetPreset(string(family), "classic")
		if preset == nil {
			return fmt.Errorf("no default params for family %s, pass --params", family)
		}
		p = preset.Params
	}

	initial := chaos.State{1, 1, 1}
	steps := []float64{0.0001, 0.001, 0.01, 0.02}

	fmt.Printf("euler vs runge-kutta on %s (%d iterations)\n\n", family, iterations)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "STEP\tFINAL DISTANCE\tMAX DISTANCE")

	for _, dt := range steps {
		dist, err := analysis.MethodDivergence(family, p, initial, dt, iterations)
		if err != nil {
			return err
		}
		maxDist := 0.0
		for _, d := range dist {
			if d > maxDist {
				maxDist = d
			}
		}
		fmt.Fprintf(w, "%g\t%.6e\t%.6e\n", dt, dist[len(dist)-1], maxDist)
	}

	return w.Flush()
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := resolveRunConfig(cmd, args[0])
	if err != nil {
		return err
	}

	family, err := chaos.ParseFamily(cfg.Family)
	if err != nil {
		return err
	}
	if err := family.ValidateParams(cfg.Params); err != nil {
		return err
	}
	stepper, err := integrate.NewStepper(integrate.Method(cfg.Method))
	if err != nil {
		return err
	}

	var initial chaos.State
	copy(initial[:], cfg.Initial)

	return viz.RunLive(family, stepper, cfg.Params, initial, cfg.Step)
}
