package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"algoeconomics/internal/analysis"
	"algoeconomics/internal/config"
	"algoeconomics/internal/display"
	"algoeconomics/internal/model"
	"algoeconomics/internal/scenario"
	"algoeconomics/internal/ticker"

	"github.com/spf13/cobra"
)

var presetsFile string

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:           "cli",
	Short:         "Run the AlgoEconomics economic model from the terminal",
	SilenceUsage:  true,
	SilenceErrors: true,
}

var computeCmd = &cobra.Command{
	Use:   "compute",
	Short: "Derive GDP growth, trade balance and climate score for one set of inputs",
	Long: `Start from a preset (base by default) and override any input with its flag.
Out-of-range values are clamped to the slider bounds.`,
	RunE: runCompute,
}

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List presets with their derived metrics",
	RunE:  runPresets,
}

var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Sweep one input across its slider range and write the rows as CSV",
	RunE:  runSweep,
}

var tickerCmd = &cobra.Command{
	Use:   "ticker",
	Short: "Print the simulated FX and stock exchange quotes",
	RunE:  runTicker,
}

var (
	computePreset string
	inputFlags    = map[model.Param]*float64{}

	rankBy string

	sweepParam  string
	sweepSteps  int
	sweepPreset string
	sweepOut    string

	tickerWatch    bool
	tickerInterval time.Duration
)

func init() {
	rootCmd.PersistentFlags().StringVar(&presetsFile, "presets-file", "", "YAML preset file layered over the built-in presets")

	computeCmd.Flags().StringVar(&computePreset, "preset", model.PresetBase, "Preset to start from")
	for _, p := range model.Params {
		inputFlags[p] = computeCmd.Flags().Float64(string(p), 0, fmt.Sprintf("Override %s", p))
	}

	presetsCmd.Flags().StringVar(&rankBy, "rank-by", "", "Order by gdp, trade or climate (default: preset order)")

	sweepCmd.Flags().StringVar(&sweepParam, "param", "", "Input to sweep (inflation, interest, commodity, stability, fdi)")
	sweepCmd.Flags().IntVar(&sweepSteps, "steps", scenario.DefaultSteps, "Number of points, endpoints included")
	sweepCmd.Flags().StringVar(&sweepPreset, "preset", model.PresetBase, "Preset holding the other inputs")
	sweepCmd.Flags().StringVar(&sweepOut, "out", "results/sweep.csv", "Output CSV path")
	_ = sweepCmd.MarkFlagRequired("param")

	tickerCmd.Flags().BoolVar(&tickerWatch, "watch", false, "Keep refreshing until interrupted")
	tickerCmd.Flags().DurationVar(&tickerInterval, "interval", ticker.DefaultInterval, "Refresh interval with --watch")

	rootCmd.AddCommand(computeCmd, presetsCmd, sweepCmd, tickerCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func loadPresets() (*model.PresetSet, error) {
	if presetsFile == "" {
		return model.DefaultPresets(), nil
	}
	return config.LoadPresetSet(presetsFile)
}

func runCompute(cmd *cobra.Command, _ []string) error {
	set, err := loadPresets()
	if err != nil {
		return err
	}
	p, err := set.Get(computePreset)
	if err != nil {
		return fmt.Errorf("%w (available: %v)", err, set.Names())
	}

	in := p.Inputs
	for _, param := range model.Params {
		if !cmd.Flags().Changed(string(param)) {
			continue
		}
		if in, err = in.With(param, *inputFlags[param]); err != nil {
			return err
		}
	}
	in = in.Clamp()
	u := display.Compute(in)

	fmt.Printf("preset: %s\n\n", p.Name)
	labels := display.Labels(in)
	for _, param := range model.Params {
		fmt.Printf("  %-10s %s\n", param, labels[param])
	}
	fmt.Println()
	fmt.Printf("  %-14s %-8s %s\n", "GDP growth", u.GDP.Value, u.GDP.Delta)
	fmt.Printf("  %-14s %-8s %s\n", "trade balance", u.Trade.Value, u.Trade.Delta)
	fmt.Printf("  %-14s %-8s %s\n", "climate score", u.Climate.Value, u.Climate.Delta)
	return nil
}

func runPresets(_ *cobra.Command, _ []string) error {
	set, err := loadPresets()
	if err != nil {
		return err
	}
	summaries, err := analysis.Compare(set, nil)
	if err != nil {
		return err
	}
	if rankBy != "" {
		by, err := analysis.ParseMetric(rankBy)
		if err != nil {
			return err
		}
		summaries = analysis.Rank(summaries, by)
	}

	fmt.Printf("%-12s %-8s %-9s %-8s %s\n", "preset", "gdp", "trade", "climate", "description")
	for _, s := range summaries {
		fmt.Printf("%-12s %-8s %-9s %-8s %s\n",
			s.Name, s.Display.GDP.Value, s.Display.Trade.Value, s.Display.Climate.Value, s.Description)
	}
	return nil
}

func runSweep(_ *cobra.Command, _ []string) error {
	set, err := loadPresets()
	if err != nil {
		return err
	}
	param, err := model.ParseParam(sweepParam)
	if err != nil {
		return err
	}
	p, err := set.Get(sweepPreset)
	if err != nil {
		return err
	}

	res, err := scenario.New().Sweep(p.Inputs, param, sweepSteps)
	if err != nil {
		return err
	}

	if sweepOut == "-" {
		return scenario.WriteRowsCSV(os.Stdout, res.Rows)
	}
	if err := os.MkdirAll(filepath.Dir(sweepOut), 0o755); err != nil {
		return err
	}
	if err := scenario.WriteRowsCSVFile(sweepOut, res.Rows); err != nil {
		return err
	}

	fmt.Printf("Wrote %d rows to %s\n", len(res.Rows), sweepOut)
	best, worst := res.MaxGDP(), res.MinGDP()
	fmt.Printf("Best GDP %.2f%% at %s=%g, worst %.2f%% at %s=%g\n",
		best.GDPGrowth, param, best.Value, worst.GDPGrowth, param, worst.Value)
	return nil
}

func runTicker(_ *cobra.Command, _ []string) error {
	feed := ticker.NewFeed(ticker.WithInterval(tickerInterval))
	if !tickerWatch {
		printSnapshot(feed.Snapshot())
		return nil
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	printSnapshot(feed.Snapshot())
	feed.Run(ctx, printSnapshot)
	return nil
}

func printSnapshot(s ticker.Snapshot) {
	fmt.Printf("-- %s (v%d)\n", s.UpdatedAt.Format(time.TimeOnly), s.Version)
	for _, q := range append(append([]ticker.Quote(nil), s.FX...), s.Stocks...) {
		fmt.Printf("%-10s %14s %9s\n", q.Symbol, ticker.FormatValue(q.Value), ticker.FormatPercent(q.ChangePercent))
	}
}
