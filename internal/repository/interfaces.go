package repository

import (
	"context"
	"insurance/internal/domain/entities"
)

// VehicleRepository stores registered vehicles. The in-memory implementation
// lives in the memory package; a database-backed one would satisfy the same
// interface.
type VehicleRepository interface {
	Create(ctx context.Context, reg *entities.Registration) error
	GetByID(ctx context.Context, id string) (*entities.Registration, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]*entities.Registration, error)
	ListByKind(ctx context.Context, kind string) ([]*entities.Registration, error)
}
