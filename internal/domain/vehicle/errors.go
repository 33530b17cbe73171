package vehicle

import (
	"errors"
	"fmt"
)

var (
	ErrDuplicateKind = errors.New("vehicle kind already registered")
	ErrInvalidKind   = errors.New("vehicle kind must not be empty")
	ErrNilFactory    = errors.New("vehicle factory must not be nil")
)

// InvalidVehicleError means a value does not satisfy the Vehicle capability set.
type InvalidVehicleError struct {
	Reason string
}

func (e *InvalidVehicleError) Error() string {
	return "invalid vehicle: " + e.Reason
}

// InvalidYearError means a quote was requested for a year before the vehicle
// was built.
type InvalidYearError struct {
	Year     int
	AsOfYear int
}

func (e *InvalidYearError) Error() string {
	return fmt.Sprintf("invalid year: as-of year %d precedes model year %d", e.AsOfYear, e.Year)
}

// UnknownKindError is returned by Catalog.Build for unregistered kinds.
type UnknownKindError struct {
	Kind string
}

func (e *UnknownKindError) Error() string {
	return fmt.Sprintf("unknown vehicle kind %q", e.Kind)
}
