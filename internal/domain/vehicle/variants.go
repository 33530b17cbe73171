package vehicle

// Kinds of the built-in variants, as registered in DefaultCatalog.
const (
	KindCar   = "car"
	KindTruck = "truck"
)

// Flat illustrative premiums. A vehicle is "new" while its age is at most
// NewVehicleMaxAge years.
const (
	NewVehicleMaxAge = 5

	CarPremiumNew   = 500.0
	CarPremiumOld   = 800.0
	TruckPremiumNew = 1000.0
	TruckPremiumOld = 2000.0
)

func ageBanded(age int, newPremium, oldPremium float64) float64 {
	if age > NewVehicleMaxAge {
		return oldPremium
	}
	return newPremium
}

// Car is a passenger car. It owns its pricing rule.
type Car struct {
	Identity
}

// NewCar validates the identity and returns a Car.
func NewCar(makeName, model string, year int) (Car, error) {
	id, err := New(makeName, model, year)
	if err != nil {
		return Car{}, err
	}
	return Car{Identity: id}, nil
}

func (c Car) Kind() string { return KindCar }

// InsuranceCost is 500 for a car up to five years old and 800 after that.
func (c Car) InsuranceCost(asOfYear int) float64 {
	return ageBanded(c.Age(asOfYear), CarPremiumNew, CarPremiumOld)
}

func (c Car) Accelerate() string {
	return "The " + c.make + " " + c.model + " car accelerates"
}

// Truck is a goods vehicle priced on its own, higher table.
type Truck struct {
	Identity
}

// NewTruck validates the identity and returns a Truck.
func NewTruck(makeName, model string, year int) (Truck, error) {
	id, err := New(makeName, model, year)
	if err != nil {
		return Truck{}, err
	}
	return Truck{Identity: id}, nil
}

func (t Truck) Kind() string { return KindTruck }

func (t Truck) InsuranceCost(asOfYear int) float64 {
	return ageBanded(t.Age(asOfYear), TruckPremiumNew, TruckPremiumOld)
}

func (t Truck) Accelerate() string {
	return "The " + t.make + " " + t.model + " truck accelerates slowly under load"
}

// Compile-time checks that the variants satisfy the capability sets.
var (
	_ Vehicle     = Car{}
	_ Vehicle     = Truck{}
	_ Accelerator = Car{}
	_ Accelerator = Truck{}
)
