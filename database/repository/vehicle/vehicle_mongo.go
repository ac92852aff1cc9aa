package vehicleRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/SSMShehan/serendibgo-v2-sub005/database"
	"github.com/SSMShehan/serendibgo-v2-sub005/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrNotFound is returned when no vehicle or driver matches the given filter.
var ErrNotFound = errors.New("vehicle record not found")

// VehicleRepository defines methods for vehicle and driver data access.
type VehicleRepository interface {
	CreateVehicle(ctx context.Context, v *models.Vehicle) error
	GetVehicleByID(ctx context.Context, id string) (*models.Vehicle, error)
	ListAvailableVehicles(ctx context.Context, vehicleType string) ([]models.Vehicle, error)
	UpdateVehicle(ctx context.Context, v *models.Vehicle) error
	DeleteVehicle(ctx context.Context, id string) error

	CreateDriver(ctx context.Context, d *models.Driver) error
	GetDriverByID(ctx context.Context, id string) (*models.Driver, error)
	ListAvailableDrivers(ctx context.Context) ([]models.Driver, error)
	UpdateDriver(ctx context.Context, d *models.Driver) error
}

// MongoVehicleRepo implements VehicleRepository using MongoDB, spanning the
// vehicles and drivers collections.
type MongoVehicleRepo struct {
	vehicles *mongo.Collection
	drivers  *mongo.Collection
}

// NewMongoVehicleRepo creates a new instance of VehicleRepository using MongoDB.
func NewMongoVehicleRepo() VehicleRepository {
	repo := &MongoVehicleRepo{
		vehicles: database.Collection("vehicles"),
		drivers:  database.Collection("drivers"),
	}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(parent context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(parent, timeout)
}

func (r *MongoVehicleRepo) ensureIndexes() error {
	ctx, cancel := newContext(context.Background(), 10*time.Second)
	defer cancel()

	if _, err := r.vehicles.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "type", Value: 1}, {Key: "available", Value: 1}}},
	}); err != nil {
		return fmt.Errorf("failed to create vehicle indexes: %w", err)
	}

	if _, err := r.drivers.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "license_number", Value: 1}}, Options: options.Index().SetUnique(true)},
	}); err != nil {
		return fmt.Errorf("failed to create driver indexes: %w", err)
	}
	return nil
}

// CreateVehicle inserts a new vehicle document.
func (r *MongoVehicleRepo) CreateVehicle(ctx context.Context, v *models.Vehicle) error {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	now := time.Now()
	v.CreatedAt = now
	v.UpdatedAt = now
	if _, err := r.vehicles.InsertOne(ctx, v); err != nil {
		return fmt.Errorf("failed to create vehicle: %w", err)
	}
	return nil
}

// GetVehicleByID retrieves a vehicle by its unique ID.
func (r *MongoVehicleRepo) GetVehicleByID(ctx context.Context, id string) (*models.Vehicle, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	var v models.Vehicle
	if err := r.vehicles.FindOne(ctx, bson.M{"id": id}).Decode(&v); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch vehicle %s: %w", id, err)
	}
	return &v, nil
}

// ListAvailableVehicles retrieves available vehicles, optionally by type.
func (r *MongoVehicleRepo) ListAvailableVehicles(ctx context.Context, vehicleType string) ([]models.Vehicle, error) {
	ctx, cancel := newContext(ctx, 10*time.Second)
	defer cancel()

	filter := bson.M{"available": true}
	if vehicleType != "" {
		filter["type"] = vehicleType
	}

	cursor, err := r.vehicles.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve vehicles: %w", err)
	}
	defer cursor.Close(ctx)

	var vehicles []models.Vehicle
	for cursor.Next(ctx) {
		var v models.Vehicle
		if err := cursor.Decode(&v); err != nil {
			return nil, fmt.Errorf("failed to decode vehicle: %w", err)
		}
		vehicles = append(vehicles, v)
	}
	return vehicles, nil
}

// UpdateVehicle modifies an existing vehicle document.
func (r *MongoVehicleRepo) UpdateVehicle(ctx context.Context, v *models.Vehicle) error {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	v.UpdatedAt = time.Now()
	res, err := r.vehicles.UpdateOne(ctx, bson.M{"id": v.ID}, bson.M{"$set": v})
	if err != nil {
		return fmt.Errorf("failed to update vehicle %s: %w", v.ID, err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteVehicle removes a vehicle document by its ID.
func (r *MongoVehicleRepo) DeleteVehicle(ctx context.Context, id string) error {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	res, err := r.vehicles.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete vehicle %s: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// CreateDriver inserts a new driver document.
func (r *MongoVehicleRepo) CreateDriver(ctx context.Context, d *models.Driver) error {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	now := time.Now()
	d.CreatedAt = now
	d.UpdatedAt = now
	if _, err := r.drivers.InsertOne(ctx, d); err != nil {
		return fmt.Errorf("failed to create driver: %w", err)
	}
	return nil
}

// GetDriverByID retrieves a driver by its unique ID.
func (r *MongoVehicleRepo) GetDriverByID(ctx context.Context, id string) (*models.Driver, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	var d models.Driver
	if err := r.drivers.FindOne(ctx, bson.M{"id": id}).Decode(&d); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch driver %s: %w", id, err)
	}
	return &d, nil
}

// ListAvailableDrivers retrieves drivers currently available for assignment.
func (r *MongoVehicleRepo) ListAvailableDrivers(ctx context.Context) ([]models.Driver, error) {
	ctx, cancel := newContext(ctx, 10*time.Second)
	defer cancel()

	cursor, err := r.drivers.Find(ctx, bson.M{"available": true})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve drivers: %w", err)
	}
	defer cursor.Close(ctx)

	var drivers []models.Driver
	for cursor.Next(ctx) {
		var d models.Driver
		if err := cursor.Decode(&d); err != nil {
			return nil, fmt.Errorf("failed to decode driver: %w", err)
		}
		drivers = append(drivers, d)
	}
	return drivers, nil
}

// UpdateDriver modifies an existing driver document.
func (r *MongoVehicleRepo) UpdateDriver(ctx context.Context, d *models.Driver) error {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	d.UpdatedAt = time.Now()
	res, err := r.drivers.UpdateOne(ctx, bson.M{"id": d.ID}, bson.M{"$set": d})
	if err != nil {
		return fmt.Errorf("failed to update driver %s: %w", d.ID, err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
