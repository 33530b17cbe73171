// Package vehicle defines the vehicle capability set and its variants.
// Like the rest of internal/domain, it has no dependencies on HTTP, storage
// or logging; everything here is an immutable value with pure methods.
//
// Go Learning Note — Interfaces Are Satisfied Implicitly:
// Car and Truck never declare "implements Vehicle". Any type with the right
// method set is a Vehicle. This is what keeps the insurance calculator closed
// for modification: a variant defined in another package, even one written
// after the calculator shipped, is priced without touching calculator code.
package vehicle

import (
	"fmt"
	"insurance/internal/domain/validation"
	"reflect"
	"strings"
)

// Plausible model-year bounds. 1886 is the first production automobile.
const (
	MinYear = 1886
	MaxYear = 9999
)

// Identified is the identity subset of the capability set. Formatting only
// needs this much, so it asks for no more.
type Identified interface {
	Make() string
	Model() string
	Year() int
}

// Vehicle is the full capability set every variant must expose.
type Vehicle interface {
	Identified
	Kind() string
	InsuranceCost(asOfYear int) float64
}

// Accelerator is an optional capability. Callers discover it with a type
// assertion instead of every variant being forced to implement it.
type Accelerator interface {
	Accelerate() string
}

// Identity is the shared base record embedded by every variant.
//
// Go Learning Note — Unexported Fields for Immutability:
// make, model and year are lowercase, so code outside this package can only
// read them through the accessor methods. There is no setter, which makes an
// Identity immutable once built. Embedding Identity in Car promotes these
// accessors onto Car; this is composition, not inheritance.
type Identity struct {
	make  string
	model string
	year  int
}

type identityParams struct {
	Make  string `json:"make" validate:"required"`
	Model string `json:"model" validate:"required"`
	Year  int    `json:"year" validate:"gte=1886,lte=9999"`
}

// New builds a bare Identity. It carries no pricing rule, so it is not a
// Vehicle and the calculator will reject it.
func New(makeName, model string, year int) (Identity, error) {
	p := identityParams{
		Make:  strings.TrimSpace(makeName),
		Model: strings.TrimSpace(model),
		Year:  year,
	}
	if err := validation.Struct(p); err != nil {
		return Identity{}, err
	}
	return Identity{make: p.Make, model: p.Model, year: p.Year}, nil
}

func (i Identity) Make() string  { return i.make }
func (i Identity) Model() string { return i.model }
func (i Identity) Year() int     { return i.year }

// Age returns how many years old the vehicle is in asOfYear.
func (i Identity) Age(asOfYear int) int {
	return asOfYear - i.year
}

// IsNil reports whether v is nil or an interface holding a nil pointer.
//
// Go Learning Note — Typed Nil:
// An interface value is only == nil when both its type and value are nil.
// `var c *Car; var v Vehicle = c` gives a non-nil v wrapping a nil pointer,
// and calling a method on it may panic. Reflection is the portable way to
// detect that case.
func IsNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}

// Check reports whether v carries a usable identity: it must be non-nil, have
// a non-empty make and model, and a year inside [MinYear, MaxYear]. Values
// built through New or a variant constructor always pass. A zero-value Car{}
// bypasses construction and fails here.
func Check(v Identified) error {
	if IsNil(v) {
		return &InvalidVehicleError{Reason: "vehicle is nil"}
	}
	switch {
	case strings.TrimSpace(v.Make()) == "":
		return &InvalidVehicleError{Reason: "make is empty"}
	case strings.TrimSpace(v.Model()) == "":
		return &InvalidVehicleError{Reason: "model is empty"}
	case v.Year() < MinYear || v.Year() > MaxYear:
		return &InvalidVehicleError{Reason: fmt.Sprintf("year %d is outside [%d, %d]", v.Year(), MinYear, MaxYear)}
	}
	return nil
}

// As resolves an arbitrary value to the Vehicle capability set.
func As(x any) (Vehicle, error) {
	if IsNil(x) {
		return nil, &InvalidVehicleError{Reason: "vehicle is nil"}
	}
	v, ok := x.(Vehicle)
	if !ok {
		return nil, &InvalidVehicleError{Reason: reflect.TypeOf(x).String() + " does not implement InsuranceCost"}
	}
	return v, nil
}
