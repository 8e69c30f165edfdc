package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/e-Spirit/FSDevTools-sub000/internal/changeset"
	"github.com/e-Spirit/FSDevTools-sub000/internal/config"
	"github.com/e-Spirit/FSDevTools-sub000/internal/report"
	"github.com/e-Spirit/FSDevTools-sub000/internal/sync"
)

var (
	// Set by goreleaser
	version = "dev"
	commit  = "none"
	date    = "unknown"

	// Global flags
	cfgFile    string
	logLevel   string
	logFormat  string
	logBackend string
	noColor    bool

	// Report command flags
	summaryOnly bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "fsdevtools",
	Short: "Report the outcome of content export and import operations",
	Long: `fsdevtools renders the change set of a content synchronization operation
(export or import) as a grouped report: project properties, store elements per
store and entity types per schema, with the touched files at debug level.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if noColor {
			color.NoColor = true
		}
	},
}

var reportCmd = &cobra.Command{
	Use:   "report <result-document>",
	Short: "Render the detail report and summary of an operation result",
	Long: `Report loads a result document written by an export or import operation and
renders one detail tree per status bucket (created, updated, deleted, moved and,
when present, lost and found) through the configured logger.

The combined one-line summaries are printed to standard output afterwards. The
command fails when the operation itself reported an error.`,
	Args: cobra.ExactArgs(1),
	RunE: runReport,
}

var summaryCmd = &cobra.Command{
	Use:   "summary <result-document>",
	Short: "Print the one-line summaries of an operation result",
	Args:  cobra.ExactArgs(1),
	RunE:  runSummary,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("fsdevtools %s\n", version)
		fmt.Printf("  commit: %s\n", commit)
		fmt.Printf("  built:  %s\n", date)
	},
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/fsdevtools/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text", "log format (text, json)")
	rootCmd.PersistentFlags().StringVar(&logBackend, "log-backend", "slog", "logger for report lines (slog, zap)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")

	// Report command flags
	reportCmd.Flags().BoolVar(&summaryOnly, "summary-only", false, "skip the detail report and print only the summaries")

	// Add commands
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(summaryCmd)
	rootCmd.AddCommand(versionCmd)
}

func runReport(cmd *cobra.Command, args []string) error {
	ctx, cancel := setupSignalHandler()
	defer cancel()

	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyFlags(cmd, cfg)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logger := setupLogger(cmd.ErrOrStderr(), cfg.Logging.Level, cfg.Logging.Format)

	result, err := loadResult(logger, args[0])
	if err != nil {
		return err
	}

	sink, closeSink, err := setupSink(ctx, cfg.Logging, logger)
	if err != nil {
		return fmt.Errorf("failed to set up report logger: %w", err)
	}
	defer closeSink()

	engine := sync.NewEngine(cfg, sink, logger)
	outcome, runErr := engine.Run(ctx, result)
	if outcome != nil {
		printSummary(cmd.OutOrStdout(), outcome)
	}
	return runErr
}

func runSummary(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyFlags(cmd, cfg)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logger := setupLogger(cmd.ErrOrStderr(), cfg.Logging.Level, cfg.Logging.Format)

	result, err := loadResult(logger, args[0])
	if err != nil {
		return err
	}

	engine := sync.NewEngine(cfg, report.NewRecorder(report.LevelOff), logger)
	for _, line := range engine.Summarize(result) {
		fmt.Fprintln(cmd.OutOrStdout(), line)
	}
	return sync.Failure(result)
}

// applyFlags lets explicitly set command line flags override the config file
func applyFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.Logging.Level = logLevel
	}
	if flags.Changed("log-format") {
		cfg.Logging.Format = logFormat
	}
	if flags.Changed("log-backend") {
		cfg.Logging.Backend = config.Backend(logBackend)
	}
	if flags.Lookup("summary-only") != nil && flags.Changed("summary-only") {
		cfg.Report.SummaryOnly = summaryOnly
	}
}

func parseLevel(name string) slog.Level {
	switch name {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func setupLogger(w io.Writer, level, format string) *slog.Logger {
	var handler slog.Handler
	opts := &slog.HandlerOptions{Level: parseLevel(level)}

	if format == "json" {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(handler)
}

// setupSink returns the sink report lines are written to and a function
// flushing it
func setupSink(ctx context.Context, cfg config.LoggingConfig, logger *slog.Logger) (report.Sink, func(), error) {
	if cfg.Backend != config.BackendZap {
		return report.NewSlogSink(ctx, logger), func() {}, nil
	}

	zcfg := zap.NewDevelopmentConfig()
	if cfg.Format == "json" {
		zcfg = zap.NewProductionConfig()
	}
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, nil, err
	}
	zcfg.Level = zap.NewAtomicLevelAt(level)
	zcfg.OutputPaths = []string{"stderr"}

	z, err := zcfg.Build()
	if err != nil {
		return nil, nil, err
	}
	return report.NewZapSink(z), func() { _ = z.Sync() }, nil
}

func loadConfig() (*config.Config, error) {
	if cfgFile != "" {
		return config.Load(cfgFile)
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return config.Default(), nil
	}
	return config.LoadOrDefault(filepath.Join(home, ".config", "fsdevtools", "config.yaml"))
}

func loadResult(logger *slog.Logger, path string) (*changeset.Result, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read result document: %w", err)
	}

	logger.Debug("loading result document", "path", path, "size", humanize.Bytes(uint64(info.Size())))

	result, err := changeset.LoadDocument(path)
	if err != nil {
		return nil, err
	}

	logger.Debug("result document loaded", "operation", result.Operation, "failed", result.Failed())
	return result, nil
}

func printSummary(w io.Writer, outcome *sync.Outcome) {
	title := "Operation"
	if outcome.Operation != "" {
		title = outcome.Operation
	}

	_, _ = color.New(color.Bold).Fprintf(w, "%s summary:\n", title)
	for _, line := range outcome.Lines() {
		fmt.Fprintf(w, "  %s\n", line)
	}
	if outcome.Error != "" {
		_, _ = color.New(color.FgRed).Fprintf(w, "Error: %s\n", outcome.Error)
	}
}

func setupSignalHandler() (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigCh
		cancel()
	}()

	return ctx, cancel
}
