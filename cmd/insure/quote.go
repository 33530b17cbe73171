package main

import (
	"github.com/spf13/cobra"
	"insurance/internal/services"
)

func newQuoteCmd(appFn func() *app) *cobra.Command {
	var (
		req    services.QuoteRequest
		format string
	)

	cmd := &cobra.Command{
		Use:   "quote",
		Short: "Quote a single vehicle",
		Example: "  insure quote --kind car --make Tata --model Tiago --year 2020 --as-of 2025\n" +
			"  insure quote --kind truck --make AL --model AL-150 --year 2012 --format yaml",
		RunE: func(cmd *cobra.Command, args []string) error {
			a := appFn()
			quote, err := a.quoteService.Quote(cmd.Context(), req)
			if err != nil {
				return err
			}
			v, err := a.quoteService.Build(req.VehicleSpec)
			if err != nil {
				return err
			}

			reporter := a.reporter(cmd.OutOrStdout())
			if err := reporter.ReportRecord(v, format); err != nil {
				return err
			}
			return reporter.ReportQuote(quote)
		},
	}

	cmd.Flags().StringVar(&req.Kind, "kind", "car", "vehicle kind")
	cmd.Flags().StringVar(&req.Make, "make", "", "vehicle make")
	cmd.Flags().StringVar(&req.Model, "model", "", "vehicle model")
	cmd.Flags().IntVar(&req.Year, "year", 0, "model year")
	cmd.Flags().IntVar(&req.AsOfYear, "as-of", 0, "quote year (default: configured year or current year)")
	cmd.Flags().StringVar(&format, "format", "json", "record format (json, yaml)")
	_ = cmd.MarkFlagRequired("make")
	_ = cmd.MarkFlagRequired("model")
	_ = cmd.MarkFlagRequired("year")
	return cmd
}
