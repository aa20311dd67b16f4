package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/lffinance/dashboard/internal/config"
	"github.com/lffinance/dashboard/internal/domain"
)

// options are the persistent flags shared by every command
type options struct {
	configFile string
	logLevel   string
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:           "lffinance",
		Short:         "Net income dashboard for self-employed income in Israel",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
	root.PersistentFlags().StringVarP(&opts.configFile, "config", "c", "", "configuration file (YAML)")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "log level: debug, info, warn, error (default from LOG_LEVEL or info)")

	root.AddCommand(
		newServeCmd(opts),
		newCalcCmd(opts),
		newSummaryCmd(opts),
		newExampleConfigCmd(),
	)
	return root
}

// loadConfig reads the configuration file, .env and environment overrides
func (o *options) loadConfig() (*domain.Configuration, *config.InputParser, error) {
	parser := config.NewInputParser()
	cfg, err := parser.LoadFromFile(o.configFile)
	if err != nil {
		return nil, nil, err
	}
	return cfg, parser, nil
}

// newLogger builds the process logger. The --log-level flag wins over LOG_LEVEL.
func (o *options) newLogger(parser *config.InputParser) (*log.Logger, error) {
	level := log.InfoLevel
	raw := o.logLevel
	if raw == "" && parser != nil {
		raw = parser.LogLevel()
	}
	if raw != "" {
		l, err := log.ParseLevel(strings.ToLower(raw))
		if err != nil {
			return nil, fmt.Errorf("invalid log level %q: %w", raw, err)
		}
		level = l
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "lffinance",
		Level:           level,
	}), nil
}
