package entities

import (
	"insurance/internal/domain/vehicle"
	"time"
)

// Registration is a vehicle entered into the registry under a generated ID.
// The vehicle itself is immutable; the registration only adds bookkeeping.
type Registration struct {
	ID           string          `json:"id"`
	Vehicle      vehicle.Vehicle `json:"-"`
	RegisteredAt time.Time       `json:"registered_at"`
}

func NewRegistration(id string, v vehicle.Vehicle) *Registration {
	return &Registration{
		ID:           id,
		Vehicle:      v,
		RegisteredAt: time.Now(),
	}
}

// Kind is shorthand for the registered vehicle's kind.
func (r *Registration) Kind() string {
	return r.Vehicle.Kind()
}
