package entities

import "fmt"

// Device is the base record every device has.
type Device struct {
	Brand string  `json:"brand"`
	Price float64 `json:"price"`
}

func (d Device) Info() string {
	return fmt.Sprintf("This is a %s device and priced at $%.2f.", d.Brand, d.Price)
}

// Camera and Stylus are optional capability extensions a device may carry.
type Camera struct {
	Megapixels int `json:"megapixels"`
}

type Stylus struct {
	Model string `json:"model"`
}

// SmartPhone composes a Device with optional extensions instead of
// inheriting through a Device -> SmartPhone -> ProSmartPhone chain. A "pro"
// phone is simply one that also has a Stylus.
//
// Go Learning Note — Composition Over Inheritance:
// Embedding Device promotes Brand, Price and Info() onto SmartPhone, so
// phone.Info() works without any forwarding code. The nil-able pointer
// fields model "has this feature or not" without a new type per combination.
type SmartPhone struct {
	Device
	Camera *Camera `json:"camera,omitempty"`
	Stylus *Stylus `json:"stylus,omitempty"`
}

// PhoneOption adds an extension to a SmartPhone.
type PhoneOption func(*SmartPhone)

func WithCamera(megapixels int) PhoneOption {
	return func(p *SmartPhone) { p.Camera = &Camera{Megapixels: megapixels} }
}

func WithStylus(model string) PhoneOption {
	return func(p *SmartPhone) { p.Stylus = &Stylus{Model: model} }
}

func NewSmartPhone(brand string, price float64, opts ...PhoneOption) *SmartPhone {
	p := &SmartPhone{Device: Device{Brand: brand, Price: price}}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// IsPro reports whether the phone carries a stylus.
func (p *SmartPhone) IsPro() bool {
	return p.Stylus != nil
}

func (p *SmartPhone) Details() string {
	if p.Camera == nil {
		return fmt.Sprintf("%s smart phone priced at $%.2f.", p.Brand, p.Price)
	}
	return fmt.Sprintf("%s smart phone with a %dMP camera priced at $%.2f.", p.Brand, p.Camera.Megapixels, p.Price)
}

// ProDetails describes the stylus as well. It returns Details for phones
// without one.
func (p *SmartPhone) ProDetails() string {
	if !p.IsPro() || p.Camera == nil {
		return p.Details()
	}
	return fmt.Sprintf("%s pro model with a %dMP camera, %s enabled stylus and priced at $%.2f.",
		p.Brand, p.Camera.Megapixels, p.Stylus.Model, p.Price)
}
