package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lffinance/dashboard/internal/calculation"
	"github.com/lffinance/dashboard/internal/dashboard"
	"github.com/lffinance/dashboard/internal/server"
	"github.com/lffinance/dashboard/internal/storage"
)

func newServeCmd(opts *options) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the dashboard web server",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, parser, err := opts.loadConfig()
			if err != nil {
				return err
			}
			logger, err := opts.newLogger(parser)
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.Server.Addr = addr
			}

			ctx := cmd.Context()
			store, err := storage.Open(ctx, cfg.Database.Driver, cfg.Database.URI, storage.Options{
				QueryTimeout: cfg.Database.QueryTimeout,
			})
			if err != nil {
				return fmt.Errorf("failed to open %s store: %w", cfg.Database.Driver, err)
			}
			defer func() {
				if err := store.Close(); err != nil {
					logger.Warn("failed to close store", "err", err)
				}
			}()
			logger.Info("connected to store", "driver", store.Driver())

			years := calculation.NewTaxYearTable(cfg.TaxYears)
			svc := dashboard.NewService(store, years, cfg.Dashboard, logger)
			return server.New(svc, years, cfg.Server, logger).Run(ctx)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides configuration and LFF_ADDR)")
	return cmd
}
