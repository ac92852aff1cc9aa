package tourRepo

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

// ErrNotFound is returned when no tour matches the given filter.
var ErrNotFound = errors.New("tour record not found")

// TourRepository defines methods for tour data access.
type TourRepository interface {
	Create(ctx context.Context, t *models.Tour) error
	GetByID(ctx context.Context, id string) (*models.Tour, error)
	ListByCategory(ctx context.Context, category string) ([]models.Tour, error)
	ListByGuide(ctx context.Context, guideID string) ([]models.Tour, error)
	Update(ctx context.Context, t *models.Tour) error
	Delete(ctx context.Context, id string) error
}

// MongoTourRepo implements TourRepository using MongoDB.
type MongoTourRepo struct {
	coll *mongo.Collection
}

// NewMongoTourRepo creates a new instance of TourRepository using MongoDB.
func NewMongoTourRepo() TourRepository {
	repo := &MongoTourRepo{coll: database.Collection("tours")}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(parent context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(parent, timeout)
}

func (r *MongoTourRepo) ensureIndexes() error {
	ctx, cancel := newContext(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "category", Value: 1}}},
		{Keys: bson.D{{Key: "guide_id", Value: 1}}},
	}
	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a new tour document.
func (r *MongoTourRepo) Create(ctx context.Context, t *models.Tour) error {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	now := time.Now()
	t.CreatedAt = now
	t.UpdatedAt = now
	if _, err := r.coll.InsertOne(ctx, t); err != nil {
		return fmt.Errorf("failed to create tour: %w", err)
	}
	return nil
}

// GetByID retrieves a tour by its unique ID.
func (r *MongoTourRepo) GetByID(ctx context.Context, id string) (*models.Tour, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	var t models.Tour
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&t); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch tour %s: %w", id, err)
	}
	return &t, nil
}

// ListByCategory retrieves active tours in the given category.
func (r *MongoTourRepo) ListByCategory(ctx context.Context, category string) ([]models.Tour, error) {
	return r.list(ctx, bson.M{"category": category, "active": true})
}

// ListByGuide retrieves all tours run by a guide.
func (r *MongoTourRepo) ListByGuide(ctx context.Context, guideID string) ([]models.Tour, error) {
	return r.list(ctx, bson.M{"guide_id": guideID})
}

func (r *MongoTourRepo) list(ctx context.Context, filter bson.M) ([]models.Tour, error) {
	ctx, cancel := newContext(ctx, 10*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve tours: %w", err)
	}
	defer cursor.Close(ctx)

	var tours []models.Tour
	for cursor.Next(ctx) {
		var t models.Tour
		if err := cursor.Decode(&t); err != nil {
			return nil, fmt.Errorf("failed to decode tour: %w", err)
		}
		tours = append(tours, t)
	}
	return tours, nil
}

// Update modifies an existing tour document.
func (r *MongoTourRepo) Update(ctx context.Context, t *models.Tour) error {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	t.UpdatedAt = time.Now()
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": t.ID}, bson.M{"$set": t})
	if err != nil {
		return fmt.Errorf("failed to update tour %s: %w", t.ID, err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a tour document by its ID.
func (r *MongoTourRepo) Delete(ctx context.Context, id string) error {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete tour %s: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
