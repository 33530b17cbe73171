package services

import (
	"fmt"
	"io"

	"go.uber.org/zap"
	"insurance/internal/domain/vehicle"
	"insurance/pkg/formatter"
)

// Reporter is the only place that prints. The domain, the calculator and the
// service return values; the CLI hands those values to a Reporter at the
// outermost layer.
type Reporter struct {
	out    io.Writer
	logger *zap.Logger
}

func NewReporter(out io.Writer, logger *zap.Logger) *Reporter {
	return &Reporter{
		out:    out,
		logger: logger.Named("reporter"),
	}
}

// ReportQuote prints one quote line.
func (r *Reporter) ReportQuote(q *QuoteResponse) error {
	_, err := fmt.Fprintf(r.out, "%s %s (%d) [%s]: insurance cost as of %d is %.2f\n",
		q.Record.Make, q.Record.Model, q.Record.Year, q.Kind, q.AsOfYear, q.Cost)
	if err != nil {
		return fmt.Errorf("write quote: %w", err)
	}
	r.logger.Debug("quote reported", zap.String("kind", q.Kind), zap.Float64("cost", q.Cost))
	return nil
}

// ReportRecord prints the formatted record of v.
func (r *Reporter) ReportRecord(v vehicle.Identified, format string) error {
	text, err := formatter.Format(v, format)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintln(r.out, text); err != nil {
		return fmt.Errorf("write record: %w", err)
	}
	return nil
}

// ReportAcceleration prints how v accelerates, if it knows how.
func (r *Reporter) ReportAcceleration(v vehicle.Vehicle) error {
	acc, ok := v.(vehicle.Accelerator)
	if !ok {
		r.logger.Debug("vehicle has no acceleration capability", zap.String("kind", v.Kind()))
		return nil
	}
	if _, err := fmt.Fprintln(r.out, acc.Accelerate()); err != nil {
		return fmt.Errorf("write acceleration: %w", err)
	}
	return nil
}
