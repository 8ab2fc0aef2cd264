package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/psyops/internal/assess"
	"github.com/san-kum/psyops/internal/config"
	"github.com/san-kum/psyops/internal/export"
	"github.com/san-kum/psyops/internal/report"
	"github.com/san-kum/psyops/internal/ring"
	"github.com/san-kum/psyops/internal/tui"
	"github.com/san-kum/psyops/internal/viz"
	"github.com/spf13/cobra"
)

var version = "0.1.0"

var (
	configFile string
	preset     string
	widget     string
	theme      string
	easing     string
	fontDir    string
	// Non-interactive input
	answersFile string
	output      string
	plot        bool
	// Ring preview
	value   float64
	svgFile string
	// Easing preview
	from      float64
	to        float64
	maxFrames int
)

var logger = log.New(os.Stderr, "psyops: ", 0)

// main wires the psyops CLI. With no subcommand it opens the interactive form.
func main() {
	if err := newRootCmd().Execute(); err != nil {
		logger.Println(err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "psyops",
		Short:         "PSYOPS likelihood assessment",
		Version:       version,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			return tui.Run(tui.OptionsFrom(cfg))
		},
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "use preset configuration")
	rootCmd.PersistentFlags().StringVar(&widget, "widget", string(config.DefaultWidget), "score widget (slider, selector)")
	rootCmd.PersistentFlags().StringVar(&theme, "theme", config.DefaultTheme, "color theme (dark, light)")
	rootCmd.PersistentFlags().StringVar(&easing, "easing", string(config.DefaultEasing), "ring easing (exponential, spring)")
	rootCmd.PersistentFlags().StringVar(&fontDir, "fonts", "", "directory with TTF fonts for the PDF")
	rootCmd.PersistentFlags().StringVarP(&output, "output", "o", config.DefaultOutput, "PDF output path")

	scoreCmd := &cobra.Command{
		Use:   "score",
		Short: "score a pre-filled answers file",
		Args:  cobra.NoArgs,
		RunE:  runScore,
	}
	scoreCmd.Flags().StringVar(&answersFile, "answers", "", "answers file (yaml)")
	scoreCmd.Flags().BoolVar(&plot, "plot", false, "plot the per-question scores")
	scoreCmd.MarkFlagRequired("answers")

	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "write the PDF report for an answers file",
		Args:  cobra.NoArgs,
		RunE:  runExport,
	}
	exportCmd.Flags().StringVar(&answersFile, "answers", "", "answers file (yaml)")
	exportCmd.MarkFlagRequired("answers")

	questionsCmd := &cobra.Command{
		Use:   "questions",
		Short: "list the questions",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for _, q := range assess.Questions() {
				fmt.Fprintln(cmd.OutOrStdout(), q)
			}
		},
	}

	ringCmd := &cobra.Command{
		Use:   "ring",
		Short: "draw the score ring for a value",
		Args:  cobra.NoArgs,
		RunE:  runRing,
	}
	ringCmd.Flags().Float64Var(&value, "value", float64(assess.MinTotal), "score to draw")
	ringCmd.Flags().StringVar(&svgFile, "svg", "", "also write the ring as SVG")

	easeCmd := &cobra.Command{
		Use:   "ease",
		Short: "show the ring animation between two scores",
		Args:  cobra.NoArgs,
		RunE:  runEase,
	}
	easeCmd.Flags().Float64Var(&from, "from", 0, "starting value")
	easeCmd.Flags().Float64Var(&to, "to", float64(assess.MaxTotal), "target value")
	easeCmd.Flags().IntVar(&maxFrames, "frames", 1000, "maximum frames")

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "manage the config file",
	}
	configCmd.AddCommand(&cobra.Command{
		Use:   "init [path]",
		Short: "write the default config",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "psyops.yaml"
			if len(args) > 0 {
				path = args[0]
			}
			if _, err := os.Stat(path); err == nil {
				return fmt.Errorf("%s already exists", path)
			}
			if err := config.Save(path, config.DefaultConfig()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
			return nil
		},
	})

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "presets:")
			for _, p := range config.ListPresets() {
				fmt.Fprintf(cmd.OutOrStdout(), "  %s\n", p)
			}
		},
	}

	rootCmd.AddCommand(scoreCmd, exportCmd, questionsCmd, ringCmd, easeCmd, configCmd, presetsCmd)
	return rootCmd
}

// loadConfig layers defaults, config file, preset and explicit flags, in
// that order.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if preset != "" && !cfg.ApplyPreset(preset) {
		return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
	}

	flags := cmd.Flags()
	if flags.Changed("widget") {
		cfg.Widget = config.Widget(widget)
	}
	if flags.Changed("theme") {
		cfg.Theme = theme
	}
	if flags.Changed("easing") {
		cfg.Easing = ring.Easing(easing)
	}
	if flags.Changed("fonts") {
		cfg.FontDir = fontDir
	}
	if flags.Changed("output") {
		cfg.Output = output
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func loadSheet() (*assess.Sheet, error) {
	a, err := config.LoadAnswers(answersFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load answers: %w", err)
	}
	return a.Sheet()
}

func runScore(cmd *cobra.Command, args []string) error {
	sheet, err := loadSheet()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	doc := report.Build(sheet, time.Now())
	for _, it := range doc.Items {
		fmt.Fprintln(out, it.Line())
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out, doc.TotalLine())
	fmt.Fprintln(out, doc.InterpretationLine())

	if plot {
		data := make([]float64, 0, assess.NumQuestions)
		for _, v := range sheet.Scores() {
			data = append(data, float64(v))
		}
		graph := asciigraph.Plot(data,
			asciigraph.Height(8),
			asciigraph.Width(60),
			asciigraph.LowerBound(assess.MinScore),
			asciigraph.UpperBound(assess.MaxScore),
			asciigraph.Caption("score per question"),
		)
		fmt.Fprintf(out, "\n%s\n", graph)
	}
	return nil
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	sheet, err := loadSheet()
	if err != nil {
		return err
	}
	err = report.WritePDF(report.Build(sheet, time.Now()), cfg.Output, cfg.ReportOptions())
	fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", cfg.Output, report.Status(err))
	return err
}

func runRing(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	c := viz.NewCanvas(20, 10)
	f := ring.CanvasGeometry(c, cfg.Segments).Frame(value)
	f.DrawTrack(c)
	f.DrawArc(c)
	fmt.Fprintln(out, c.String())
	fmt.Fprintf(out, "%s  %s\n", f.Label, ring.Band(value).Label)

	if svgFile == "" {
		return nil
	}
	th := viz.GetTheme(cfg.Theme)
	svg := export.RingSVG(export.SquareGeometry(200, cfg.Segments).Frame(value), 200,
		string(th.BandColor(f.Color)), string(th.Track))
	if err := os.WriteFile(svgFile, []byte(svg), 0644); err != nil {
		return err
	}
	fmt.Fprintf(out, "wrote %s\n", svgFile)
	return nil
}

func runEase(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	a := ring.NewAnimator(cfg.Easing, cfg.Smoothing, cfg.FPS)
	a.Jump(from)
	a.SetTarget(to)
	values := a.Run(maxFrames)
	printTrajectory(cmd.OutOrStdout(), values, a)
	return nil
}

func printTrajectory(out io.Writer, values []float64, a *ring.Animator) {
	fmt.Fprintf(out, "easing: %s  frames: %d  state: %s\n", a.Easing(), len(values)-1, a.State())
	if len(values) < 2 {
		return
	}
	graph := asciigraph.Plot(values,
		asciigraph.Height(10),
		asciigraph.Width(60),
		asciigraph.Caption("displayed value per frame"),
	)
	fmt.Fprintf(out, "\n%s\n", graph)
}
