// Package insurance quotes insurance premiums for any vehicle.
//
// Go Learning Note — Open-Closed via Interfaces:
// Calculator never asks which concrete variant it was given. It calls the
// InsuranceCost method that every Vehicle carries, so adding a Bus or a
// Motorcycle means writing a new type, not editing this file. Compare with
// TypeSwitchQuote in legacy.go, which has to be edited for every new variant.
package insurance

import (
	"insurance/internal/domain/vehicle"
	"time"
)

// Calculator quotes premiums. The zero value is not usable; use NewCalculator.
type Calculator struct {
	now func() time.Time
}

// Option configures a Calculator.
type Option func(*Calculator)

// WithClock injects the clock used by QuoteCurrent. Tests pin it so quotes
// do not drift as the calendar year changes.
func WithClock(now func() time.Time) Option {
	return func(c *Calculator) {
		if now != nil {
			c.now = now
		}
	}
}

// NewCalculator returns a Calculator using the system clock unless overridden.
func NewCalculator(opts ...Option) *Calculator {
	c := &Calculator{now: time.Now}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Quote returns the premium for v as of asOfYear. A nil or zero-value
// vehicle fails with *vehicle.InvalidVehicleError.
func (c *Calculator) Quote(v vehicle.Vehicle, asOfYear int) (float64, error) {
	if err := vehicle.Check(v); err != nil {
		return 0, err
	}
	if asOfYear < v.Year() {
		return 0, &vehicle.InvalidYearError{Year: v.Year(), AsOfYear: asOfYear}
	}
	return v.InsuranceCost(asOfYear), nil
}

// QuoteAny accepts a value of unknown type and quotes it if it satisfies the
// Vehicle capability set.
func (c *Calculator) QuoteAny(x any, asOfYear int) (float64, error) {
	v, err := vehicle.As(x)
	if err != nil {
		return 0, err
	}
	return c.Quote(v, asOfYear)
}

// QuoteCurrent quotes v as of the calculator clock's current year.
func (c *Calculator) QuoteCurrent(v vehicle.Vehicle) (float64, error) {
	return c.Quote(v, c.CurrentYear())
}

// CurrentYear returns the calendar year of the calculator clock.
func (c *Calculator) CurrentYear() int {
	return c.now().Year()
}
