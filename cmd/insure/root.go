package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"insurance/internal/config"
	"insurance/internal/domain/vehicle"
	"insurance/internal/logger"
	"insurance/internal/repository/memory"
	"insurance/internal/services"
	"insurance/pkg/insurance"
)

// app is the dependency graph shared by every subcommand.
type app struct {
	cfg          *config.Config
	logger       *zap.Logger
	quoteService *services.QuoteService
}

func newApp(cfg *config.Config, log *zap.Logger) *app {
	return &app{
		cfg:    cfg,
		logger: log,
		quoteService: services.NewQuoteService(
			memory.NewVehicleRepository(),
			vehicle.DefaultCatalog(),
			insurance.NewCalculator(),
			cfg,
			log,
		),
	}
}

func (a *app) reporter(out io.Writer) *services.Reporter {
	return services.NewReporter(out, a.logger)
}

// newRootCmd builds the command tree. The returned func yields the app once
// PersistentPreRunE has built it, and nil before that.
func newRootCmd() (*cobra.Command, func() *app) {
	var (
		logLevel string
		a        *app
	)

	root := &cobra.Command{
		Use:           "insure",
		Short:         "Quote vehicle insurance premiums",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			if cmd.Flags().Changed("log-level") {
				cfg.Log.Level = logLevel
			}

			log, err := logger.New(cfg.Log.Level)
			if err != nil {
				return err
			}
			a = newApp(cfg, log)
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a != nil {
				_ = a.logger.Sync()
			}
		},
	}
	root.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")

	appFn := func() *app { return a }
	root.AddCommand(
		newServeCmd(appFn),
		newDemoCmd(appFn),
		newQuoteCmd(appFn),
	)
	return root, appFn
}
