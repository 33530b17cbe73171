package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"insurance/internal/services"
)

// demoFleet mirrors the classic teaching examples: a five-year-old car and
// an older truck.
var demoFleet = []services.VehicleSpec{
	{Kind: "car", Make: "Tata", Model: "Tiago", Year: 2020},
	{Kind: "truck", Make: "AL", Model: "AL-150", Year: 2012},
}

func newDemoCmd(appFn func() *app) *cobra.Command {
	var (
		asOf   int
		format string
	)

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Register sample vehicles and print their records and quotes",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(cmd.Context(), appFn(), cmd.OutOrStdout(), asOf, format)
		},
	}
	cmd.Flags().IntVar(&asOf, "as-of", 0, "quote year (default: configured year or current year)")
	cmd.Flags().StringVar(&format, "format", "json", "record format (json, yaml)")
	return cmd
}

// runDemo stops at the first failure; a demo that swallows errors would hide
// exactly the behavior it exists to show.
func runDemo(ctx context.Context, a *app, out io.Writer, asOf int, format string) error {
	reporter := a.reporter(out)

	for _, spec := range demoFleet {
		reg, err := a.quoteService.RegisterVehicle(ctx, spec)
		if err != nil {
			return fmt.Errorf("register %s %s: %w", spec.Make, spec.Model, err)
		}

		quote, err := a.quoteService.QuoteVehicle(ctx, reg.ID, asOf)
		if err != nil {
			return fmt.Errorf("quote %s: %w", reg.ID, err)
		}

		v, err := a.quoteService.Build(spec)
		if err != nil {
			return err
		}
		if err := reporter.ReportRecord(v, format); err != nil {
			return err
		}
		if err := reporter.ReportQuote(quote); err != nil {
			return err
		}
		if err := reporter.ReportAcceleration(v); err != nil {
			return err
		}
	}
	return nil
}
