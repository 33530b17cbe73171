package memory

import (
	"context"
	"errors"
	"insurance/internal/domain/entities"
	"insurance/internal/repository"
	"sort"
	"sync"
)

var (
	ErrVehicleNotFound = errors.New("vehicle not found")
	ErrVehicleExists   = errors.New("vehicle already registered")
)

// VehicleRepository stores registrations in memory. Registrations are never
// mutated after Create, so there is no Update; re-registering means Delete
// then Create.
type VehicleRepository struct {
	mu       sync.RWMutex
	vehicles map[string]*entities.Registration
}

func NewVehicleRepository() *VehicleRepository {
	return &VehicleRepository{
		vehicles: make(map[string]*entities.Registration),
	}
}

func (r *VehicleRepository) Create(ctx context.Context, reg *entities.Registration) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.vehicles[reg.ID]; exists {
		return ErrVehicleExists
	}
	r.vehicles[reg.ID] = reg
	return nil
}

func (r *VehicleRepository) GetByID(ctx context.Context, id string) (*entities.Registration, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	reg, exists := r.vehicles[id]
	if !exists {
		return nil, ErrVehicleNotFound
	}
	return reg, nil
}

func (r *VehicleRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.vehicles[id]; !exists {
		return ErrVehicleNotFound
	}
	delete(r.vehicles, id)
	return nil
}

// List returns every registration, oldest first.
func (r *VehicleRepository) List(ctx context.Context) ([]*entities.Registration, error) {
	return r.filter(func(*entities.Registration) bool { return true }), nil
}

// ListByKind returns registrations of one kind. This is an O(n) scan; an
// index by kind is not worth it at in-memory sizes.
func (r *VehicleRepository) ListByKind(ctx context.Context, kind string) ([]*entities.Registration, error) {
	return r.filter(func(reg *entities.Registration) bool { return reg.Kind() == kind }), nil
}

func (r *VehicleRepository) filter(keep func(*entities.Registration) bool) []*entities.Registration {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var regs []*entities.Registration
	for _, reg := range r.vehicles {
		if keep(reg) {
			regs = append(regs, reg)
		}
	}
	sort.Slice(regs, func(i, j int) bool {
		if regs[i].RegisteredAt.Equal(regs[j].RegisteredAt) {
			return regs[i].ID < regs[j].ID
		}
		return regs[i].RegisteredAt.Before(regs[j].RegisteredAt)
	})
	return regs
}

var _ repository.VehicleRepository = (*VehicleRepository)(nil)
