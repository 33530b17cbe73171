package entities

import "fmt"

// DefaultCoffeePrice is charged for every order regardless of drink or size.
const DefaultCoffeePrice = 5.0

// CoffeeOrder keeps its price unexported; callers read it only through Price.
//
// Go Learning Note — Package-Level Encapsulation:
// Go has no "private" keyword. Any identifier starting with a lowercase
// letter is visible only inside its package. That is the whole mechanism:
// there is no name mangling and no per-type privacy.
type CoffeeOrder struct {
	CustomerName string `json:"customer_name"`
	DrinkType    string `json:"drink_type"`
	Size         string `json:"size"`
	price        float64
}

func NewCoffeeOrder(customerName, drinkType, size string) *CoffeeOrder {
	return &CoffeeOrder{
		CustomerName: customerName,
		DrinkType:    drinkType,
		Size:         size,
		price:        DefaultCoffeePrice,
	}
}

func (o *CoffeeOrder) Summary() string {
	return fmt.Sprintf("%s ordered a %s %s.", o.CustomerName, o.DrinkType, o.Size)
}

func (o *CoffeeOrder) Price() float64 {
	return o.price
}

// Total formats the price for display.
func (o *CoffeeOrder) Total() string {
	return fmt.Sprintf("Total : $%.2f", o.price)
}
