package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"insurance/internal/config"
	"insurance/internal/domain/validation"
	"insurance/internal/domain/vehicle"
	"insurance/internal/repository/memory"
	"insurance/pkg/insurance"
	"insurance/pkg/utils"
)

func setupQuoteService(clockYear int) (*QuoteService, *config.Config) {
	cfg := config.NewDefaultConfig()
	calc := insurance.NewCalculator(insurance.WithClock(func() time.Time {
		return time.Date(clockYear, time.March, 1, 0, 0, 0, 0, time.UTC)
	}))

	service := NewQuoteService(memory.NewVehicleRepository(), vehicle.DefaultCatalog(), calc, cfg, zap.NewNop())
	return service, cfg
}

func TestQuoteService_RegisterAndGet(t *testing.T) {
	service, _ := setupQuoteService(2025)
	ctx := context.Background()

	created, err := service.RegisterVehicle(ctx, VehicleSpec{Kind: "car", Make: "Tata", Model: "Tiago", Year: 2020})
	require.NoError(t, err)

	assert.True(t, utils.IsVehicleID(created.ID))
	assert.Equal(t, vehicle.KindCar, created.Kind)
	assert.Equal(t, "Tiago", created.Record.Model)

	got, err := service.GetVehicle(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)
}

func TestQuoteService_RegisterRejectsInvalid(t *testing.T) {
	service, _ := setupQuoteService(2025)
	ctx := context.Background()

	_, err := service.RegisterVehicle(ctx, VehicleSpec{Kind: "car", Make: "", Model: "Tiago", Year: 2020})
	var ve *validation.ValidationError
	assert.True(t, errors.As(err, &ve))

	_, err = service.RegisterVehicle(ctx, VehicleSpec{Kind: "blimp", Make: "X", Model: "Y", Year: 2020})
	var uke *vehicle.UnknownKindError
	assert.True(t, errors.As(err, &uke))

	all, err := service.ListVehicles(ctx, "")
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestQuoteService_QuoteVehicle(t *testing.T) {
	service, _ := setupQuoteService(2025)
	ctx := context.Background()

	truck, err := service.RegisterVehicle(ctx, VehicleSpec{Kind: "truck", Make: "AL", Model: "AL-150", Year: 2012})
	require.NoError(t, err)

	q, err := service.QuoteVehicle(ctx, truck.ID, 2025)
	require.NoError(t, err)
	assert.Equal(t, truck.ID, q.VehicleID)
	assert.Equal(t, vehicle.TruckPremiumOld, q.Cost)
	assert.Equal(t, 2025, q.AsOfYear)
}

func TestQuoteService_QuoteDefaultsToClockYear(t *testing.T) {
	service, _ := setupQuoteService(2026)

	q, err := service.Quote(context.Background(), QuoteRequest{
		VehicleSpec: VehicleSpec{Kind: "car", Make: "Tata", Model: "Tiago", Year: 2020},
	})
	require.NoError(t, err)
	assert.Equal(t, 2026, q.AsOfYear)
	assert.Equal(t, vehicle.CarPremiumOld, q.Cost)
}

func TestQuoteService_QuoteDefaultsToConfiguredYear(t *testing.T) {
	service, cfg := setupQuoteService(2030)
	cfg.Quote.AsOfYear = 2025

	q, err := service.Quote(context.Background(), QuoteRequest{
		VehicleSpec: VehicleSpec{Kind: "car", Make: "Tata", Model: "Tiago", Year: 2020},
	})
	require.NoError(t, err)
	assert.Equal(t, 2025, q.AsOfYear)
	assert.Equal(t, vehicle.CarPremiumNew, q.Cost)
}

func TestQuoteService_QuoteInvalidYear(t *testing.T) {
	service, _ := setupQuoteService(2025)

	_, err := service.Quote(context.Background(), QuoteRequest{
		VehicleSpec: VehicleSpec{Kind: "car", Make: "Tata", Model: "Tiago", Year: 2020},
		AsOfYear:    2010,
	})

	var iye *vehicle.InvalidYearError
	assert.True(t, errors.As(err, &iye))
}

func TestQuoteService_NotFound(t *testing.T) {
	service, _ := setupQuoteService(2025)
	ctx := context.Background()

	_, err := service.GetVehicle(ctx, "veh_missing")
	assert.ErrorIs(t, err, ErrVehicleNotFound)

	_, err = service.QuoteVehicle(ctx, "veh_missing", 2025)
	assert.ErrorIs(t, err, ErrVehicleNotFound)

	assert.ErrorIs(t, service.DeleteVehicle(ctx, "veh_missing"), ErrVehicleNotFound)
}

func TestQuoteService_ListAndDelete(t *testing.T) {
	service, _ := setupQuoteService(2025)
	ctx := context.Background()

	car, err := service.RegisterVehicle(ctx, VehicleSpec{Kind: "car", Make: "Tata", Model: "Tiago", Year: 2020})
	require.NoError(t, err)
	_, err = service.RegisterVehicle(ctx, VehicleSpec{Kind: "truck", Make: "AL", Model: "AL-150", Year: 2012})
	require.NoError(t, err)

	all, err := service.ListVehicles(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	cars, err := service.ListVehicles(ctx, "car")
	require.NoError(t, err)
	require.Len(t, cars, 1)
	assert.Equal(t, car.ID, cars[0].ID)

	for _, filter := range []string{"Car", " CAR "} {
		mixed, err := service.ListVehicles(ctx, filter)
		require.NoError(t, err)
		require.Len(t, mixed, 1, "filter %q", filter)
		assert.Equal(t, car.ID, mixed[0].ID)
	}

	require.NoError(t, service.DeleteVehicle(ctx, car.ID))
	_, err = service.GetVehicle(ctx, car.ID)
	assert.ErrorIs(t, err, ErrVehicleNotFound)
}

func TestQuoteService_NewKindNeedsNoServiceChange(t *testing.T) {
	service, _ := setupQuoteService(2025)
	err := service.catalog.Register("van", func(makeName, model string, year int) (vehicle.Vehicle, error) {
		id, err := vehicle.New(makeName, model, year)
		if err != nil {
			return nil, err
		}
		return van{Identity: id}, nil
	})
	require.NoError(t, err)

	assert.Contains(t, service.Kinds(), "van")

	q, err := service.Quote(context.Background(), QuoteRequest{
		VehicleSpec: VehicleSpec{Kind: "van", Make: "Ford", Model: "Transit", Year: 2022},
		AsOfYear:    2025,
	})
	require.NoError(t, err)
	assert.Equal(t, 1200.0, q.Cost)
	assert.Equal(t, "van", q.Kind)
}

type van struct {
	vehicle.Identity
}

func (v van) Kind() string { return "van" }

func (v van) InsuranceCost(int) float64 { return 1200 }
