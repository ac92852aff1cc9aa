package vehicle

import (
	"context"
	"errors"

	vehicleRepo "github.com/SSMShehan/serendibgo-v2-sub005/database/repository/vehicle"
	"github.com/SSMShehan/serendibgo-v2-sub005/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrVehicleNotFound is returned when no vehicle matches the given ID.
var ErrVehicleNotFound = errors.New("vehicle not found")

// ErrDriverNotFound is returned when no driver matches the given ID.
var ErrDriverNotFound = errors.New("driver not found")

// ErrDriverUnavailable is returned when assigning a driver who is not available.
var ErrDriverUnavailable = errors.New("driver is not available")

// VehicleService defines vehicle and driver management operations.
type VehicleService interface {
	CreateVehicle(ctx context.Context, v *models.Vehicle) (*models.Vehicle, error)
	GetVehicle(ctx context.Context, id string) (*models.Vehicle, error)
	SearchVehicles(ctx context.Context, vehicleType string) ([]models.Vehicle, error)
	UpdateVehicle(ctx context.Context, v *models.Vehicle) (*models.Vehicle, error)
	DeleteVehicle(ctx context.Context, id string) error

	RegisterDriver(ctx context.Context, d *models.Driver) (*models.Driver, error)
	ListAvailableDrivers(ctx context.Context) ([]models.Driver, error)
	AssignDriver(ctx context.Context, vehicleID, driverID string) (*models.Vehicle, error)
}

// DefaultVehicleService implements VehicleService.
type DefaultVehicleService struct {
	Repo   vehicleRepo.VehicleRepository
	Logger *zap.Logger
}

// CreateVehicle lists a new vehicle.
func (s *DefaultVehicleService) CreateVehicle(ctx context.Context, v *models.Vehicle) (*models.Vehicle, error) {
	if v.ID == "" {
		v.ID = uuid.New().String()
	}
	v.Available = true
	if err := s.Repo.CreateVehicle(ctx, v); err != nil {
		return nil, err
	}
	s.Logger.Info("vehicle created", zap.String("id", v.ID), zap.String("type", v.Type))
	return v, nil
}

// GetVehicle fetches a single vehicle.
func (s *DefaultVehicleService) GetVehicle(ctx context.Context, id string) (*models.Vehicle, error) {
	v, err := s.Repo.GetVehicleByID(ctx, id)
	if err != nil {
		if errors.Is(err, vehicleRepo.ErrNotFound) {
			return nil, ErrVehicleNotFound
		}
		return nil, err
	}
	return v, nil
}

// SearchVehicles lists available vehicles, optionally filtered by type.
func (s *DefaultVehicleService) SearchVehicles(ctx context.Context, vehicleType string) ([]models.Vehicle, error) {
	return s.Repo.ListAvailableVehicles(ctx, vehicleType)
}

// UpdateVehicle modifies a vehicle listing.
func (s *DefaultVehicleService) UpdateVehicle(ctx context.Context, v *models.Vehicle) (*models.Vehicle, error) {
	if err := s.Repo.UpdateVehicle(ctx, v); err != nil {
		if errors.Is(err, vehicleRepo.ErrNotFound) {
			return nil, ErrVehicleNotFound
		}
		return nil, err
	}
	return v, nil
}

// DeleteVehicle removes a vehicle listing.
func (s *DefaultVehicleService) DeleteVehicle(ctx context.Context, id string) error {
	if err := s.Repo.DeleteVehicle(ctx, id); err != nil {
		if errors.Is(err, vehicleRepo.ErrNotFound) {
			return ErrVehicleNotFound
		}
		return err
	}
	return nil
}

// RegisterDriver adds a driver to the pool.
func (s *DefaultVehicleService) RegisterDriver(ctx context.Context, d *models.Driver) (*models.Driver, error) {
	if d.ID == "" {
		d.ID = uuid.New().String()
	}
	d.Available = true
	if err := s.Repo.CreateDriver(ctx, d); err != nil {
		return nil, err
	}
	return d, nil
}

// ListAvailableDrivers lists drivers who can currently take assignments.
func (s *DefaultVehicleService) ListAvailableDrivers(ctx context.Context) ([]models.Driver, error) {
	return s.Repo.ListAvailableDrivers(ctx)
}

// AssignDriver pairs an available driver with a vehicle.
func (s *DefaultVehicleService) AssignDriver(ctx context.Context, vehicleID, driverID string) (*models.Vehicle, error) {
	v, err := s.GetVehicle(ctx, vehicleID)
	if err != nil {
		return nil, err
	}

	d, err := s.Repo.GetDriverByID(ctx, driverID)
	if err != nil {
		if errors.Is(err, vehicleRepo.ErrNotFound) {
			return nil, ErrDriverNotFound
		}
		return nil, err
	}
	if !d.Available {
		return nil, ErrDriverUnavailable
	}

	v.DriverID = d.ID
	if err := s.Repo.UpdateVehicle(ctx, v); err != nil {
		return nil, err
	}

	d.Available = false
	if err := s.Repo.UpdateDriver(ctx, d); err != nil {
		return nil, err
	}

	s.Logger.Info("driver assigned", zap.String("vehicle", v.ID), zap.String("driver", d.ID))
	return v, nil
}
