package services

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"insurance/internal/config"
	"insurance/internal/domain/entities"
	"insurance/internal/domain/vehicle"
	"insurance/internal/repository"
	"insurance/internal/repository/memory"
	"insurance/pkg/formatter"
	"insurance/pkg/insurance"
	"insurance/pkg/utils"
)

var ErrVehicleNotFound = errors.New("vehicle not found")

// QuoteService registers vehicles and quotes their insurance. It depends on
// the catalog for construction and on the calculator for pricing; it never
// names a concrete variant.
type QuoteService struct {
	repo       repository.VehicleRepository
	catalog    *vehicle.Catalog
	calculator *insurance.Calculator
	config     *config.Config
	logger     *zap.Logger
}

func NewQuoteService(
	repo repository.VehicleRepository,
	catalog *vehicle.Catalog,
	calculator *insurance.Calculator,
	cfg *config.Config,
	logger *zap.Logger,
) *QuoteService {
	return &QuoteService{
		repo:       repo,
		catalog:    catalog,
		calculator: calculator,
		config:     cfg,
		logger:     logger.Named("quote_service"),
	}
}

// VehicleSpec identifies a vehicle to build.
type VehicleSpec struct {
	Kind  string `json:"kind"`
	Make  string `json:"make"`
	Model string `json:"model"`
	Year  int    `json:"year"`
}

// QuoteRequest asks for a quote without registering the vehicle. AsOfYear 0
// uses the configured default.
type QuoteRequest struct {
	VehicleSpec
	AsOfYear int `json:"as_of"`
}

type VehicleResponse struct {
	ID           string           `json:"id"`
	Kind         string           `json:"kind"`
	Record       formatter.Record `json:"record"`
	RegisteredAt time.Time        `json:"registered_at"`
}

type QuoteResponse struct {
	VehicleID string           `json:"vehicle_id,omitempty"`
	Kind      string           `json:"kind"`
	Record    formatter.Record `json:"record"`
	AsOfYear  int              `json:"as_of"`
	Cost      float64          `json:"cost"`
}

// Kinds lists the vehicle kinds that can be registered.
func (s *QuoteService) Kinds() []string {
	return s.catalog.Kinds()
}

// Build constructs a vehicle through the catalog without storing it.
func (s *QuoteService) Build(spec VehicleSpec) (vehicle.Vehicle, error) {
	return s.catalog.Build(spec.Kind, spec.Make, spec.Model, spec.Year)
}

// RegisterVehicle builds a vehicle through the catalog and stores it.
func (s *QuoteService) RegisterVehicle(ctx context.Context, spec VehicleSpec) (*VehicleResponse, error) {
	v, err := s.Build(spec)
	if err != nil {
		return nil, err
	}

	reg := entities.NewRegistration(utils.NewVehicleID(), v)
	if err := s.repo.Create(ctx, reg); err != nil {
		return nil, err
	}

	s.logger.Info("vehicle registered",
		zap.String("vehicle_id", reg.ID),
		zap.String("kind", v.Kind()),
		zap.Int("year", v.Year()),
	)
	return toVehicleResponse(reg)
}

// GetVehicle retrieves a registered vehicle by ID.
func (s *QuoteService) GetVehicle(ctx context.Context, id string) (*VehicleResponse, error) {
	reg, err := s.lookup(ctx, id)
	if err != nil {
		return nil, err
	}
	return toVehicleResponse(reg)
}

// ListVehicles returns registered vehicles, optionally filtered by kind.
// The filter is case-insensitive, like the catalog.
func (s *QuoteService) ListVehicles(ctx context.Context, kind string) ([]*VehicleResponse, error) {
	var (
		regs []*entities.Registration
		err  error
	)
	kind = vehicle.NormalizeKind(kind)
	if kind == "" {
		regs, err = s.repo.List(ctx)
	} else {
		regs, err = s.repo.ListByKind(ctx, kind)
	}
	if err != nil {
		return nil, err
	}

	out := make([]*VehicleResponse, 0, len(regs))
	for _, reg := range regs {
		resp, err := toVehicleResponse(reg)
		if err != nil {
			return nil, err
		}
		out = append(out, resp)
	}
	return out, nil
}

// DeleteVehicle removes a registered vehicle.
func (s *QuoteService) DeleteVehicle(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, memory.ErrVehicleNotFound) {
			return ErrVehicleNotFound
		}
		return err
	}
	s.logger.Info("vehicle deleted", zap.String("vehicle_id", id))
	return nil
}

// QuoteVehicle quotes a registered vehicle. asOfYear 0 uses the default year.
func (s *QuoteService) QuoteVehicle(ctx context.Context, id string, asOfYear int) (*QuoteResponse, error) {
	reg, err := s.lookup(ctx, id)
	if err != nil {
		return nil, err
	}

	resp, err := s.quote(reg.Vehicle, asOfYear)
	if err != nil {
		return nil, err
	}
	resp.VehicleID = reg.ID
	return resp, nil
}

// Quote prices a vehicle described inline, without registering it.
func (s *QuoteService) Quote(ctx context.Context, req QuoteRequest) (*QuoteResponse, error) {
	v, err := s.Build(req.VehicleSpec)
	if err != nil {
		return nil, err
	}
	return s.quote(v, req.AsOfYear)
}

// DefaultAsOfYear is the year used when a request leaves it unset.
func (s *QuoteService) DefaultAsOfYear() int {
	if s.config.Quote.AsOfYear != 0 {
		return s.config.Quote.AsOfYear
	}
	return s.calculator.CurrentYear()
}

func (s *QuoteService) quote(v vehicle.Vehicle, asOfYear int) (*QuoteResponse, error) {
	if asOfYear == 0 {
		asOfYear = s.DefaultAsOfYear()
	}

	cost, err := s.calculator.Quote(v, asOfYear)
	if err != nil {
		return nil, err
	}

	rec, err := formatter.ToRecord(v)
	if err != nil {
		return nil, err
	}

	s.logger.Debug("vehicle quoted",
		zap.String("kind", v.Kind()),
		zap.Int("as_of", asOfYear),
		zap.Float64("cost", cost),
	)
	return &QuoteResponse{
		Kind:     v.Kind(),
		Record:   rec,
		AsOfYear: asOfYear,
		Cost:     cost,
	}, nil
}

func (s *QuoteService) lookup(ctx context.Context, id string) (*entities.Registration, error) {
	reg, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, memory.ErrVehicleNotFound) {
			return nil, ErrVehicleNotFound
		}
		return nil, err
	}
	return reg, nil
}

func toVehicleResponse(reg *entities.Registration) (*VehicleResponse, error) {
	rec, err := formatter.ToRecord(reg.Vehicle)
	if err != nil {
		return nil, err
	}
	return &VehicleResponse{
		ID:           reg.ID,
		Kind:         reg.Kind(),
		Record:       rec,
		RegisteredAt: reg.RegisteredAt,
	}, nil
}
