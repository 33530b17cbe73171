package entities

import (
	"errors"
	"fmt"
	"insurance/internal/domain/validation"
	"sync"
)

var (
	ErrNonPositiveQuantity = errors.New("quantity must be positive")
	ErrOutOfStock          = errors.New("not enough stock")
)

// Product is an inventory item. Price never goes negative and stock never
// drops below zero.
type Product struct {
	mu       sync.Mutex
	name     string
	price    float64
	quantity int
}

type productParams struct {
	Name     string  `json:"name" validate:"required"`
	Price    float64 `json:"price" validate:"gte=0"`
	Quantity int     `json:"quantity" validate:"gte=0"`
}

func NewProduct(name string, price float64, quantity int) (*Product, error) {
	p := productParams{Name: name, Price: price, Quantity: quantity}
	if err := validation.Struct(p); err != nil {
		return nil, err
	}
	return &Product{name: p.Name, price: p.Price, quantity: p.Quantity}, nil
}

// Buy removes count units from stock.
func (p *Product) Buy(count int) error {
	if count <= 0 {
		return ErrNonPositiveQuantity
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	if count > p.quantity {
		return fmt.Errorf("%w: %d requested, %d available", ErrOutOfStock, count, p.quantity)
	}
	p.quantity -= count
	return nil
}

func (p *Product) Restock(count int) error {
	if count <= 0 {
		return ErrNonPositiveQuantity
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	p.quantity += count
	return nil
}

func (p *Product) Price() float64 { return p.price }

func (p *Product) Quantity() int {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.quantity
}

// Info describes the product and its current stock.
func (p *Product) Info() string {
	return fmt.Sprintf("%s costs $%.2f with %d in stock", p.name, p.price, p.Quantity())
}
