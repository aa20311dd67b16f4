package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lffinance/dashboard/internal/calculation"
	"github.com/lffinance/dashboard/internal/config"
	"github.com/lffinance/dashboard/internal/dashboard"
	"github.com/lffinance/dashboard/internal/domain"
	"github.com/lffinance/dashboard/internal/output"
	"github.com/lffinance/dashboard/internal/storage"
)

func newCalcCmd(opts *options) *cobra.Command {
	var (
		profit string
		months int
		year   int
		format string
	)

	cmd := &cobra.Command{
		Use:   "calc",
		Short: "Calculate net income for a profit amount",
		Example: `  lffinance calc --profit 30000
  lffinance calc --profit 90000 --months 3 --format verbose`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			amount, err := dashboard.ParseAmount("profit", profit)
			if err != nil {
				return err
			}
			if months < 1 || months > dashboard.MaxMonths {
				return fmt.Errorf("%w: months must be between 1 and %d", dashboard.ErrInvalidInput, dashboard.MaxMonths)
			}

			// The store is not needed here, so a configuration file is optional.
			var parser *config.InputParser
			cfg := &domain.Configuration{}
			if opts.configFile != "" {
				if cfg, parser, err = opts.loadConfig(); err != nil {
					return err
				}
			} else {
				config.ApplyDefaults(cfg)
			}
			logger, err := opts.newLogger(parser)
			if err != nil {
				return err
			}

			if year == 0 {
				year = cfg.Dashboard.TaxYear
			}
			params, err := calculation.NewTaxYearTable(cfg.TaxYears).Lookup(year)
			if err != nil {
				return err
			}

			summary := dashboard.ProfitSummary(params, amount, months, cfg.Dashboard, logger)
			out, err := output.Render(summary, format)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}
	cmd.Flags().StringVarP(&profit, "profit", "p", "", "profit before tax for the whole period (required)")
	cmd.Flags().IntVarP(&months, "months", "m", 1, "number of months the profit covers")
	cmd.Flags().IntVar(&year, "year", 0, "tax year (default from configuration)")
	cmd.Flags().StringVarP(&format, "format", "f", "console", "output format")
	_ = cmd.MarkFlagRequired("profit")
	return cmd
}

func newSummaryCmd(opts *options) *cobra.Command {
	var (
		period string
		target string
		year   string
		format string
		outDir string
	)

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Summarize stored income and expenses for a period",
		Example: `  lffinance summary --period 11/2025
  lffinance summary --format html --out reports`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sel, err := dashboard.ParseSelection(period, target, year)
			if err != nil {
				return err
			}
			cfg, parser, err := opts.loadConfig()
			if err != nil {
				return err
			}
			logger, err := opts.newLogger(parser)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			store, err := storage.Open(ctx, cfg.Database.Driver, cfg.Database.URI, storage.Options{
				QueryTimeout: cfg.Database.QueryTimeout,
			})
			if err != nil {
				return fmt.Errorf("failed to open %s store: %w", cfg.Database.Driver, err)
			}
			defer store.Close()

			svc := dashboard.NewService(store, calculation.NewTaxYearTable(cfg.TaxYears), cfg.Dashboard, logger)
			summary, err := svc.Summary(ctx, sel)
			if err != nil {
				return err
			}

			if outDir == "" {
				out, err := output.Render(summary, format)
				if err != nil {
					return err
				}
				_, err = cmd.OutOrStdout().Write(out)
				return err
			}
			filename, err := output.GenerateReport(summary, format, outDir)
			if err != nil {
				return err
			}
			logger.Info("report written", "file", filename)
			return nil
		},
	}
	cmd.Flags().StringVar(&period, "period", "", `"all" or MM/YYYY (default all)`)
	cmd.Flags().StringVar(&target, "target", "", "monthly net income target (default from configuration)")
	cmd.Flags().StringVar(&year, "year", "", "tax year (default from configuration)")
	cmd.Flags().StringVarP(&format, "format", "f", "console", "output format")
	cmd.Flags().StringVarP(&outDir, "out", "o", "", "write the report to a file in this directory instead of stdout")
	return cmd
}

func newExampleConfigCmd() *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "example-config",
		Short: "Write an example configuration file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			example := config.NewInputParser().CreateExampleConfiguration()
			if err := config.SaveConfiguration(example, out); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Example configuration written to %s\n", out)
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "lffinance.yaml", "destination file")
	return cmd
}
