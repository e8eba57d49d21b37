package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spboyer/evalreport/internal/loader"
	"github.com/spboyer/evalreport/internal/pipeline"
	"github.com/spboyer/evalreport/internal/projectconfig"
	"github.com/spboyer/evalreport/internal/reporting"
	"github.com/spboyer/evalreport/internal/writer"
	"github.com/spf13/cobra"
)

var version = "dev"

// rootFlags holds values bound to the root command's flags. Only flags the
// user explicitly set override the project configuration.
type rootFlags struct {
	configPath string
	input      string
	output     string
	junit      string
	title      string
	scale      float64
	gzip       bool
	strict     bool
	interpret  bool
}

func newRootCommand() *cobra.Command {
	var flags rootFlags

	cmd := &cobra.Command{
		Use:   "evalreport",
		Short: "evalreport - HTML reports for AI evaluation results",
		Long: `evalreport turns an evaluation results file into a static HTML report.

With no flags it reads ai-evaluation/promptfoo-results.json and writes
ai-evaluation/report.html, printing progress and a summary of total,
passed, failed and pass rate.`,
		Version:      version,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		// main prints the error with the exit code it maps to.
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReport(cmd, &flags)
		},
	}

	debugLogging := cmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
	cmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		if *debugLogging {
			slog.SetLogLoggerLevel(slog.LevelDebug)
		}
	}
	cmd.PersistentFlags().StringVar(&flags.configPath, "config", "", "Path to a .evalreport.yaml or .evalreport.toml file (default: search upward from the working directory)")

	cmd.Flags().StringVarP(&flags.input, "input", "i", "", "Results file to read (default "+projectconfig.DefaultInputPath+")")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "HTML report to write (default "+projectconfig.DefaultOutputPath+")")
	cmd.Flags().StringVar(&flags.junit, "junit", "", "Also write a JUnit XML file to this path")
	cmd.Flags().StringVar(&flags.title, "title", "", "Report title")
	cmd.Flags().Float64Var(&flags.scale, "scale", reporting.DefaultScoreScale, "Maximum value of a metric score")
	cmd.Flags().BoolVar(&flags.gzip, "gzip", false, "Also write a gzip-compressed copy of the report")
	cmd.Flags().BoolVar(&flags.strict, "strict", false, "Validate the results file against the schema before loading")
	cmd.Flags().BoolVar(&flags.interpret, "interpret", false, "Print a plain-language interpretation of the metrics")

	cmd.AddCommand(newValidateCommand(&flags))

	return cmd
}

func execute() error {
	rootCmd := newRootCommand()
	return rootCmd.Execute()
}

// loadConfig reads the explicit config file when one is given, otherwise
// searches upward from the working directory.
func loadConfig(configPath string) (*projectconfig.ProjectConfig, error) {
	if configPath != "" {
		return projectconfig.LoadFile(configPath)
	}
	wd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("getting working directory: %w", err)
	}
	return projectconfig.Load(wd)
}

// applyFlags overlays explicitly-set flags onto cfg.
func applyFlags(cmd *cobra.Command, flags *rootFlags, cfg *projectconfig.ProjectConfig) error {
	f := cmd.Flags()
	if f.Changed("input") {
		cfg.Paths.Input = flags.input
	}
	if f.Changed("output") {
		cfg.Paths.Output = flags.output
	}
	if f.Changed("junit") {
		cfg.Paths.JUnit = flags.junit
	}
	if f.Changed("title") {
		cfg.Report.Title = flags.title
	}
	if f.Changed("scale") {
		if flags.scale <= 0 {
			return fmt.Errorf("--scale must be positive, got %g", flags.scale)
		}
		cfg.Report.ScoreScale = flags.scale
	}
	if f.Changed("gzip") {
		cfg.Options.Gzip = &flags.gzip
	}
	if f.Changed("strict") {
		cfg.Options.Strict = &flags.strict
	}
	return nil
}

func runReport(cmd *cobra.Command, flags *rootFlags) error {
	cfg, err := loadConfig(flags.configPath)
	if err != nil {
		return err
	}
	if err := applyFlags(cmd, flags, cfg); err != nil {
		return err
	}
	if cfg.Source != "" {
		slog.Debug("loaded project config", "path", cfg.Source)
	}

	out := cmd.OutOrStdout()
	progress := newProgressPrinter(out, isTerminal(out))
	progress.header()

	renderer := reporting.NewRenderer(cfg.RenderOptions())
	p := &pipeline.Pipeline{
		Loader: loader.FileLoader{Options: loader.Options{
			Strict: boolValue(cfg.Options.Strict),
			Hint:   loader.DefaultHint,
		}},
		Renderer: renderer,
		Writer:   writer.FileWriter{Options: writer.Options{Gzip: boolValue(cfg.Options.Gzip)}},
		Progress: progress.stage(cfg.Paths.Output),
	}

	res, err := p.Run(cfg.Paths.Input, cfg.Paths.Output)
	if err != nil {
		return err
	}
	if boolValue(cfg.Options.Gzip) {
		progress.saved(cfg.Paths.Output + writer.GzipSuffix)
	}

	if cfg.Paths.JUnit != "" {
		suites := reporting.ConvertToJUnit(cfg.Report.Title, res.Stats, res.Document.Results, res.Report.GeneratedAt)
		if err := reporting.WriteJUnitXML(cfg.Paths.JUnit, suites); err != nil {
			return fmt.Errorf("writing JUnit report: %w", err)
		}
		progress.saved(cfg.Paths.JUnit)
	}

	scale := renderer.Options().ScoreScale
	if err := printSummary(out, progress.fancy, res.Stats, scale); err != nil {
		return err
	}
	if flags.interpret {
		fmt.Fprintln(out, reporting.FormatSummaryReport(res.Stats, scale)) //nolint:errcheck
	}
	return nil
}

func boolValue(b *bool) bool {
	return b != nil && *b
}
