package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Tiliavir/timebox-tracker/internal/config"
)

// LogEnv overrides the configured log level.
const LogEnv = "TBT_LOG"

var (
	outputDir  string
	jsonFormat string
	logLevel   string
	backend    string
)

// cfg is loaded once per invocation before any command runs.
var cfg config.Config

var rootCmd = &cobra.Command{
	Use:   "tbt",
	Short: "Time Box Tracker – track work as a series of timestamped notes",
	Long: `tbt is a single-binary, file-based command-line time tracker.
A time box starts with "begin", collects notes while you work and closes with
"end". All data is stored as human-readable JSON in ~/.tbt/ (or $TBT_HOME).`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

// Execute is the entry point called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCode(err))
	}
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&outputDir, "output", "o", "", "Data directory (default from config, else ~/.tbt)")
	flags.StringVarP(&jsonFormat, "json-format", "j", "", "Layout of the data file: pretty, compact")
	flags.StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error (overrides $"+LogEnv+")")
	flags.StringVar(&backend, "backend", "", "Storage backend: json, sqlite")

	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(beginCmd)
	rootCmd.AddCommand(noteCmd)
	rootCmd.AddCommand(amendCmd)
	rootCmd.AddCommand(endCmd)
	rootCmd.AddCommand(resumeCmd)
	rootCmd.AddCommand(cancelCmd)
	rootCmd.AddCommand(clearCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(reportCmd)
}

// setup loads the config and configures logging. Flags win over the
// environment, which wins over the config file.
func setup(cmd *cobra.Command, args []string) error {
	loaded, err := config.Load()
	if err != nil {
		return storageFailure(err)
	}
	cfg = loaded

	level := cfg.Log.Level
	if env := os.Getenv(LogEnv); env != "" {
		level = env
	}
	if logLevel != "" {
		level = logLevel
	}
	lvl, err := parseLevel(level)
	if err != nil {
		return err
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: lvl})))

	if backend != "" {
		cfg.Storage.Backend = backend
	}
	if jsonFormat != "" {
		cfg.Storage.JSONFormat = jsonFormat
	}
	switch cfg.Storage.Backend {
	case config.BackendJSON, config.BackendSQLite:
	default:
		return fmt.Errorf("unknown backend %q: use json or sqlite", cfg.Storage.Backend)
	}
	switch cfg.Storage.JSONFormat {
	case config.FormatPretty, config.FormatCompact:
	default:
		return fmt.Errorf("unknown json format %q: use pretty or compact", cfg.Storage.JSONFormat)
	}
	return nil
}

func parseLevel(s string) (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid log level %q: use debug, info, warn or error", s)
	}
	return lvl, nil
}

// storageError marks failures of the data or config files. They exit with
// code 2, everything else with 1.
type storageError struct {
	err error
}

func (e *storageError) Error() string { return e.err.Error() }

func (e *storageError) Unwrap() error { return e.err }

func storageFailure(err error) error {
	if err == nil {
		return nil
	}
	return &storageError{err: err}
}

func exitCode(err error) int {
	var se *storageError
	if errors.As(err, &se) {
		return 2
	}
	return 1
}
