package insurance

import "insurance/internal/domain/vehicle"

// Premiums of the type-switch design.
const (
	LegacyCarPremium     = 1000.0
	LegacyTruckPremium   = 2000.0
	LegacyDefaultPremium = 100.0
)

// TypeSwitchQuote prices a vehicle by inspecting its concrete type.
//
// Deprecated: every new variant silently falls through to
// LegacyDefaultPremium until someone edits this switch. It is kept only as a
// regression fixture for that failure mode; use Calculator.Quote.
func TypeSwitchQuote(v vehicle.Vehicle) float64 {
	switch v.(type) {
	case vehicle.Car:
		return LegacyCarPremium
	case vehicle.Truck:
		return LegacyTruckPremium
	default:
		return LegacyDefaultPremium
	}
}
