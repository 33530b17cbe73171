package vehicle

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"insurance/internal/domain/validation"
)

func TestNew_ValidIdentity(t *testing.T) {
	id, err := New("  Tata ", "Tiago", 2020)
	require.NoError(t, err)

	assert.Equal(t, "Tata", id.Make())
	assert.Equal(t, "Tiago", id.Model())
	assert.Equal(t, 2020, id.Year())
	assert.Equal(t, 5, id.Age(2025))
}

func TestNew_Validation(t *testing.T) {
	tests := []struct {
		name      string
		makeName  string
		model     string
		year      int
		wantField string
	}{
		{name: "empty make", makeName: "", model: "Tiago", year: 2020, wantField: "make"},
		{name: "blank make", makeName: "   ", model: "Tiago", year: 2020, wantField: "make"},
		{name: "empty model", makeName: "Tata", model: "", year: 2020, wantField: "model"},
		{name: "year too early", makeName: "Tata", model: "Tiago", year: 1885, wantField: "year"},
		{name: "five digit year", makeName: "Tata", model: "Tiago", year: 10000, wantField: "year"},
		{name: "negative year", makeName: "Tata", model: "Tiago", year: -1, wantField: "year"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.makeName, tt.model, tt.year)

			var ve *validation.ValidationError
			require.True(t, errors.As(err, &ve), "expected ValidationError, got %v", err)
			assert.Equal(t, tt.wantField, ve.Field)
		})
	}
}

func TestNew_YearBoundsInclusive(t *testing.T) {
	_, err := New("Benz", "Patent-Motorwagen", MinYear)
	assert.NoError(t, err)

	_, err = New("Future", "Concept", MaxYear)
	assert.NoError(t, err)
}

func TestCar_InsuranceCost(t *testing.T) {
	tests := []struct {
		name     string
		year     int
		asOf     int
		expected float64
	}{
		{name: "brand new", year: 2025, asOf: 2025, expected: 500},
		{name: "age five is still new", year: 2020, asOf: 2025, expected: 500},
		{name: "age six", year: 2019, asOf: 2025, expected: 800},
		{name: "age ten", year: 2015, asOf: 2025, expected: 800},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			car, err := NewCar("Tata", "Tiago", tt.year)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, car.InsuranceCost(tt.asOf))
		})
	}
}

func TestTruck_InsuranceCost(t *testing.T) {
	truck, err := NewTruck("AL", "AL-150", 2022)
	require.NoError(t, err)
	assert.Equal(t, TruckPremiumNew, truck.InsuranceCost(2025))

	old, err := NewTruck("AL", "AL-150", 2012)
	require.NoError(t, err)
	assert.Equal(t, TruckPremiumOld, old.InsuranceCost(2025))
}

func TestVariants_PropagateValidationErrors(t *testing.T) {
	_, err := NewCar("", "Tiago", 2020)
	var ve *validation.ValidationError
	assert.True(t, errors.As(err, &ve))

	_, err = NewTruck("AL", "AL-150", 1200)
	assert.True(t, errors.As(err, &ve))
	assert.Equal(t, "year", ve.Field)
}

func TestAccelerator_OptionalCapability(t *testing.T) {
	car, _ := NewCar("Tata", "Tiago", 2020)
	truck, _ := NewTruck("AL", "AL-150", 2012)

	for _, v := range []Vehicle{car, truck} {
		acc, ok := v.(Accelerator)
		require.True(t, ok)
		assert.Contains(t, acc.Accelerate(), v.Model())
	}
}

func TestAs(t *testing.T) {
	car, _ := NewCar("Tata", "Tiago", 2020)
	v, err := As(car)
	require.NoError(t, err)
	assert.Equal(t, KindCar, v.Kind())

	var ive *InvalidVehicleError

	_, err = As(nil)
	assert.True(t, errors.As(err, &ive))

	var nilCar *Car
	_, err = As(nilCar)
	assert.True(t, errors.As(err, &ive))

	// A bare Identity has make/model/year but no pricing rule.
	id, _ := New("Tata", "Tiago", 2020)
	_, err = As(id)
	require.True(t, errors.As(err, &ive))
	assert.Contains(t, ive.Reason, "InsuranceCost")
}

func TestCheck(t *testing.T) {
	car, err := NewCar("Tata", "Tiago", 2020)
	require.NoError(t, err)
	assert.NoError(t, Check(car))

	tests := []struct {
		name       string
		v          Identified
		wantReason string
	}{
		{name: "nil", v: nil, wantReason: "nil"},
		{name: "zero car", v: Car{}, wantReason: "make"},
		{name: "missing model", v: Identity{make: "Tata", year: 2020}, wantReason: "model"},
		{name: "year below range", v: Identity{make: "Tata", model: "Tiago", year: 1200}, wantReason: "year"},
		{name: "year above range", v: Identity{make: "Tata", model: "Tiago", year: MaxYear + 1}, wantReason: "year"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var ive *InvalidVehicleError
			require.True(t, errors.As(Check(tt.v), &ive))
			assert.Contains(t, ive.Reason, tt.wantReason)
		})
	}
}
