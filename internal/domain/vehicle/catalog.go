package vehicle

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// Factory builds one variant from validated identity fields.
type Factory func(makeName, model string, year int) (Vehicle, error)

// Catalog maps a kind name ("car", "truck") to the factory that builds it.
// New variants are added with Register; nothing in the catalog, the service
// or the calculator changes when they are.
//
// Go Learning Note — sync.RWMutex:
// Registrations are rare and lookups are frequent, so readers take RLock and
// can proceed in parallel. Only Register takes the exclusive Lock.
type Catalog struct {
	mu        sync.RWMutex
	factories map[string]Factory
}

// NewCatalog returns an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{
		factories: make(map[string]Factory),
	}
}

// DefaultCatalog returns a catalog with the built-in Car and Truck variants.
func DefaultCatalog() *Catalog {
	c := NewCatalog()
	// Registering the built-ins into a fresh catalog cannot fail.
	_ = c.Register(KindCar, func(makeName, model string, year int) (Vehicle, error) {
		return NewCar(makeName, model, year)
	})
	_ = c.Register(KindTruck, func(makeName, model string, year int) (Vehicle, error) {
		return NewTruck(makeName, model, year)
	})
	return c
}

// NormalizeKind folds a kind to the form the catalog stores: trimmed and
// lower-case.
func NormalizeKind(kind string) string {
	return strings.ToLower(strings.TrimSpace(kind))
}

// Register adds a factory under kind. Kinds are case-insensitive.
func (c *Catalog) Register(kind string, f Factory) error {
	kind = NormalizeKind(kind)
	if kind == "" {
		return ErrInvalidKind
	}
	if f == nil {
		return ErrNilFactory
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.factories[kind]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateKind, kind)
	}
	c.factories[kind] = f
	return nil
}

// Build constructs a vehicle of the given kind.
func (c *Catalog) Build(kind, makeName, model string, year int) (Vehicle, error) {
	kind = NormalizeKind(kind)

	c.mu.RLock()
	f, exists := c.factories[kind]
	c.mu.RUnlock()

	if !exists {
		return nil, &UnknownKindError{Kind: kind}
	}
	return f(makeName, model, year)
}

// Has reports whether kind is registered.
func (c *Catalog) Has(kind string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	_, exists := c.factories[NormalizeKind(kind)]
	return exists
}

// Kinds returns the registered kinds in sorted order.
func (c *Catalog) Kinds() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	kinds := make([]string, 0, len(c.factories))
	for k := range c.factories {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)
	return kinds
}
