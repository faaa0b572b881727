package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/charmbracelet/log"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/heatlife/internal/config"
	"github.com/san-kum/heatlife/internal/export"
	"github.com/san-kum/heatlife/internal/metrics"
	"github.com/san-kum/heatlife/internal/sim"
	"github.com/san-kum/heatlife/internal/tui"
	"github.com/san-kum/heatlife/internal/viz"
)

var (
	configFile string
	preset     string
	logLevel   string
	size       int
	width      int
	cellSize   int
	maxGen     int
	prob       float64
	seed       int64
	tick       time.Duration
	paletteArg string
	gamma      float64
	mode       string
	persistHue bool
	pattern    string
	// run only
	svgPath   string
	popSVG    string
	popPNG    string
	runs      int
	frameRate int
	threshold int
	// config init
	force bool
)

var logger = log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: true, Prefix: "heatlife"})

func main() {
	if err := newRootCmd().Execute(); err != nil {
		logger.Error(err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "heatlife",
		Short:         "game of life with a heat trail",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			lvl, err := log.ParseLevel(logLevel)
			if err != nil {
				return err
			}
			logger.SetLevel(lvl)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().NFlag() == 0 {
				return viz.RunInteractive()
			}
			return runLive(cmd, args)
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configFile, "config", "", "config file path (yaml)")
	pf.StringVar(&preset, "preset", "", "use preset configuration")
	pf.StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	pf.IntVar(&size, "size", 0, "grid size in cells (overrides width / cell-size)")
	pf.IntVar(&width, "width", config.DefaultViewportWidth, "viewport width in pixels")
	pf.IntVar(&cellSize, "cell-size", config.DefaultCellSize, "cell size in pixels")
	pf.IntVar(&maxGen, "max-gen", config.DefaultMaxGenerations, "generation ceiling")
	pf.Float64Var(&prob, "prob", 0.71, "initial live probability")
	pf.Int64Var(&seed, "seed", 0, "random seed (0 picks one)")
	pf.DurationVar(&tick, "tick", config.DefaultTick, "interval between generations")
	pf.StringVar(&paletteArg, "palette", "Spectral", "color palette")
	pf.Float64Var(&gamma, "gamma", 6, "palette gamma")
	pf.StringVar(&mode, "mode", "lrgb", "interpolation mode (lrgb, lab, rgb)")
	pf.BoolVar(&persistHue, "persist-hue", false, "store each cell's color for blending")
	pf.StringVar(&pattern, "pattern", "", "seed pattern placed at the center (empty grid unless --prob is set)")

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "run simulation with live visualization",
		Args:  cobra.NoArgs,
		RunE:  runLive,
	}

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run headless to the generation ceiling",
		Args:  cobra.NoArgs,
		RunE:  runHeadless,
	}
	runCmd.Flags().StringVar(&svgPath, "svg", "", "write the final frame as svg")
	runCmd.Flags().StringVar(&popSVG, "population-svg", "", "write the population curve as svg")
	runCmd.Flags().StringVar(&popPNG, "population-png", "", "write the population chart as png")
	runCmd.Flags().IntVar(&runs, "runs", 1, "independent runs with consecutive seeds")
	runCmd.Flags().IntVar(&frameRate, "fps", 30, "progress redraw rate")
	runCmd.Flags().IntVar(&threshold, "stability-threshold", 0, "population change tolerated as stable")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Args:  cobra.NoArgs,
		RunE:  listPresets,
	}

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "manage config files",
	}
	initCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "write the default config",
		Args:  cobra.MaximumNArgs(1),
		RunE:  initConfig,
	}
	initCmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")
	configCmd.AddCommand(initCmd)

	rootCmd.AddCommand(liveCmd, runCmd, presetsCmd, configCmd)
	return rootCmd
}

// resolveConfig layers preset, config file and explicitly set flags, in
// that order.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if preset != "" {
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
	}
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	f := cmd.Flags()
	if f.Changed("size") {
		cfg.Size = size
	}
	if f.Changed("width") {
		cfg.ViewportWidth = width
	}
	if f.Changed("cell-size") {
		cfg.CellSize = cellSize
	}
	if f.Changed("max-gen") {
		cfg.MaxGenerations = maxGen
	}
	if f.Changed("prob") {
		cfg.LiveProbability = prob
	}
	if f.Changed("seed") {
		cfg.Seed = seed
	}
	if f.Changed("tick") {
		cfg.Tick = tick
	}
	if f.Changed("palette") {
		cfg.Palette.Name = paletteArg
	}
	if f.Changed("gamma") {
		cfg.Palette.Gamma = gamma
	}
	if f.Changed("mode") {
		cfg.Palette.Mode = mode
	}
	if f.Changed("persist-hue") {
		cfg.PersistHue = persistHue
	}
	if f.Changed("pattern") {
		cfg.Pattern = pattern
		// A pattern on a mostly live grid is lost in the noise.
		if !f.Changed("prob") {
			cfg.LiveProbability = 0
		}
	}

	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
		logger.Debug("picked seed", "seed", cfg.Seed)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func title() string {
	if preset != "" {
		return preset
	}
	return "heatlife"
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	s, err := cfg.NewSimulation()
	if err != nil {
		return err
	}
	return viz.RunLive(s, cfg.Tick, title(), cfg.Theme)
}

func runHeadless(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if runs > 1 {
		return runEnsemble(ctx, cfg)
	}

	s, err := cfg.NewSimulation()
	if err != nil {
		return err
	}
	s.SetLogger(logger)

	pop := metrics.NewPopulation()
	s.AddMetric(pop)
	s.AddMetric(metrics.NewDeathRatio())
	s.AddMetric(metrics.NewStability(threshold))

	progress := tui.NewProgressRenderer(os.Stderr, cfg.MaxGenerations, frameRate)
	s.AddObserver(progress)

	logger.Info("running", "size", s.Size(), "max", cfg.MaxGenerations, "seed", cfg.Seed, "palette", cfg.Palette.Name)
	start := time.Now()

	var last sim.Frame
	progress.Start()
	err = s.Run(ctx, sim.NewTicker(cfg.Tick), func(f sim.Frame) { last = f })
	progress.Finish(s.Generation(), s.Grid())
	progress.Stop()
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	if err != nil {
		logger.Warn("interrupted", "generation", s.Generation())
	}
	if last.Size == 0 {
		last = s.Frame()
	}

	sum := s.Summary()
	rows := [][]string{
		{"generations", strconv.Itoa(sum.Generations)},
		{"alive", strconv.Itoa(sum.Alive)},
		{"elapsed", time.Since(start).Round(time.Millisecond).String()},
	}
	for _, name := range []string{"population", "death_ratio", "stability"} {
		rows = append(rows, []string{name, fmt.Sprintf("%.4f", sum.Metrics[name])})
	}
	fmt.Println(newTable("metric", "value").Rows(rows...))

	if hist := pop.History(); len(hist) > 1 {
		fmt.Println(asciigraph.Plot(hist, asciigraph.Height(10), asciigraph.Width(60), asciigraph.Precision(0), asciigraph.Caption("population")))
	}

	if svgPath != "" {
		if err := export.WriteFile(svgPath, export.FrameToSVG(last, cfg.CellSize)); err != nil {
			return err
		}
		logger.Info("wrote frame", "path", svgPath, "generation", last.Generation)
	}
	if popSVG != "" {
		if err := export.WriteFile(popSVG, export.SeriesToSVG(pop.History(), 600, 200, "#f46d43")); err != nil {
			return err
		}
		logger.Info("wrote population curve", "path", popSVG)
	}
	if popPNG != "" {
		if err := writeChart(popPNG, pop.History()); err != nil {
			return err
		}
		logger.Info("wrote population chart", "path", popPNG)
	}
	return nil
}

func writeChart(path string, values []float64) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := export.PopulationChart(f, values, 2, 800, 300); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func runEnsemble(ctx context.Context, cfg *config.Config) error {
	sc, err := cfg.SimConfig()
	if err != nil {
		return err
	}
	g, err := cfg.Gradient()
	if err != nil {
		return err
	}

	logger.Info("running ensemble", "runs", runs, "size", sc.Size, "first_seed", sc.Seed)
	e := sim.NewEnsemble(sc, g, runs, sc.Seed, func() []sim.Metric {
		return []sim.Metric{metrics.NewPopulation(), metrics.NewDeathRatio(), metrics.NewStability(threshold)}
	})
	results, err := e.Run(ctx)
	if err != nil {
		return err
	}

	t := newTable("seed", "generations", "alive", "death_ratio", "stability")
	for _, r := range results {
		t.Row(
			strconv.FormatInt(r.Seed, 10),
			strconv.Itoa(r.Generations),
			strconv.Itoa(r.Alive),
			fmt.Sprintf("%.4f", r.Metrics["death_ratio"]),
			fmt.Sprintf("%.4f", r.Metrics["stability"]),
		)
	}
	fmt.Println(t)
	return nil
}

func listPresets(cmd *cobra.Command, args []string) error {
	t := newTable("preset", "size", "max gen", "prob", "palette", "gamma", "mode", "theme")
	for _, name := range config.ListPresets() {
		p := config.GetPreset(name)
		g, err := p.Gradient()
		if err != nil {
			return fmt.Errorf("preset %s: %w", name, err)
		}
		t.Row(name, strconv.Itoa(p.GridSize()), strconv.Itoa(p.MaxGenerations),
			strconv.FormatFloat(p.LiveProbability, 'f', 2, 64),
			g.Name(), strconv.FormatFloat(g.Gamma(), 'f', 1, 64), string(g.Mode()), p.Theme)
	}
	fmt.Println(t)
	return nil
}

func initConfig(cmd *cobra.Command, args []string) error {
	path := "heatlife.yaml"
	if len(args) > 0 {
		path = args[0]
	}
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}
	if err := config.Save(path, config.DefaultConfig()); err != nil {
		return err
	}
	logger.Info("wrote config", "path", path)
	return nil
}

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("240"))).
		Headers(headers...)
}
