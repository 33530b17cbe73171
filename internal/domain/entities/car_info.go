package entities

import (
	"fmt"
	"insurance/internal/domain/validation"
	"strings"
)

// CarInfo is a descriptive car record whose year may not lie in the future.
// Unlike vehicle.Identity, which accepts any plausible model year, CarInfo is
// checked against the caller's current year.
type CarInfo struct {
	brand string
	model string
	year  int
}

type carInfoParams struct {
	Brand       string `json:"brand" validate:"required"`
	Model       string `json:"model" validate:"required"`
	Year        int    `json:"year" validate:"gte=1886,ltefield=CurrentYear"`
	CurrentYear int    `json:"current_year"`
}

// NewCarInfo fails with *validation.ValidationError when year is after
// currentYear. currentYear is passed in so tests do not depend on the clock.
func NewCarInfo(brand, model string, year, currentYear int) (*CarInfo, error) {
	p := carInfoParams{
		Brand:       strings.TrimSpace(brand),
		Model:       strings.TrimSpace(model),
		Year:        year,
		CurrentYear: currentYear,
	}
	if err := validation.Struct(p); err != nil {
		return nil, err
	}
	return &CarInfo{brand: p.Brand, model: p.Model, year: p.Year}, nil
}

func (c *CarInfo) Info() string {
	return fmt.Sprintf("car name is %s, model %s and published year %d", c.brand, c.model, c.year)
}
