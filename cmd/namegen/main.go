package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"better-naming/internal/config"
	"better-naming/internal/logging"
	"better-naming/internal/sqlutil"
	"better-naming/naming"

	"github.com/spf13/pflag"
)

var (
	// Version is set at build time via -ldflags "-X main.Version=...".
	Version = "dev"
	Commit  = "none"
)

var errUsage = errors.New("usage error")

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		slog.Error("namegen failed", slog.String("error", err.Error()))
		if errors.Is(err, errUsage) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := pflag.NewFlagSet("namegen", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	config.DefineFlags(fs)
	showVersion := fs.Bool("version", false, "Print version and exit")
	quote := fs.String("quote", "", "Quote the result for a SQL dialect (mysql, ansi)")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: namegen [flags] <operation> [args...]\n\nOperations:\n")
		for _, op := range operations {
			fmt.Fprintf(stderr, "  %s\n", op.usage)
		}
		fmt.Fprintf(stderr, "\nLists are comma separated.\n\nFlags:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}

	if *showVersion {
		fmt.Fprintf(stdout, "namegen %s (%s)\n", Version, Commit)
		return nil
	}

	cfg, err := config.Load(fs)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logCfg := cfg.LoggerConfig()
	logCfg.Output = stderr
	logger := logging.NewLogger(logCfg)

	validationResult := cfg.Validate()
	for _, warn := range validationResult.Warnings {
		logger.Warn("configuration warning",
			slog.String("field", warn.Field),
			slog.String("message", warn.Message),
			slog.String("hint", warn.Hint),
		)
	}
	if validationResult.HasErrors() {
		for _, err := range validationResult.Errors {
			logger.Error("configuration error",
				slog.String("field", err.Field),
				slog.String("message", err.Message),
				slog.String("hint", err.Hint),
			)
		}
		return fmt.Errorf("configuration validation failed")
	}

	strategy := naming.New(cfg.NamingOptions(), nil, logger.Logger)

	name, err := evaluate(strategy, fs.Args())
	if err != nil {
		fs.Usage()
		return err
	}

	if *quote != "" {
		dialect, err := sqlutil.ParseDialect(*quote)
		if err != nil {
			return fmt.Errorf("%w: %v", errUsage, err)
		}
		name = sqlutil.QuoteIdentifier(name, dialect)
	}

	fmt.Fprintln(stdout, name)
	return nil
}
