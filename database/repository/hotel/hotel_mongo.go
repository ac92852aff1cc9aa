package hotelRepo

import (
	"context"
	"fmt"
	"time"

	"github.com/SSMShehan/serendibgo-v2-sub005/database"
	"github.com/SSMShehan/serendibgo-v2-sub005/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoHotelRepo implements HotelRepository using MongoDB, spanning the hotels
// and rooms collections.
type MongoHotelRepo struct {
	hotels *mongo.Collection
	rooms  *mongo.Collection
}

// NewMongoHotelRepo creates a new instance of HotelRepository using MongoDB.
func NewMongoHotelRepo() HotelRepository {
	repo := &MongoHotelRepo{
		hotels: database.Collection("hotels"),
		rooms:  database.Collection("rooms"),
	}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(parent context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(parent, timeout)
}

func (r *MongoHotelRepo) ensureIndexes() error {
	ctx, cancel := newContext(context.Background(), 10*time.Second)
	defer cancel()

	if _, err := r.hotels.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "location.city", Value: 1}}},
		{Keys: bson.D{{Key: "owner_id", Value: 1}}},
	}); err != nil {
		return fmt.Errorf("failed to create hotel indexes: %w", err)
	}

	if _, err := r.rooms.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "hotel_id", Value: 1}}},
	}); err != nil {
		return fmt.Errorf("failed to create room indexes: %w", err)
	}
	return nil
}

// CreateHotel inserts a new hotel document.
func (r *MongoHotelRepo) CreateHotel(ctx context.Context, h *models.Hotel) error {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	now := time.Now()
	h.CreatedAt = now
	h.UpdatedAt = now
	if _, err := r.hotels.InsertOne(ctx, h); err != nil {
		return fmt.Errorf("failed to create hotel: %w", err)
	}
	return nil
}

// GetHotelByID retrieves a hotel by its unique ID.
func (r *MongoHotelRepo) GetHotelByID(ctx context.Context, id string) (*models.Hotel, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	var h models.Hotel
	if err := r.hotels.FindOne(ctx, bson.M{"id": id}).Decode(&h); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch hotel %s: %w", id, err)
	}
	return &h, nil
}

// ListHotelsByCity retrieves approved hotels in the given city.
func (r *MongoHotelRepo) ListHotelsByCity(ctx context.Context, city string) ([]models.Hotel, error) {
	return r.listHotels(ctx, bson.M{"location.city": city, "approved": true})
}

// ListHotelsByOwner retrieves all hotels belonging to an owner.
func (r *MongoHotelRepo) ListHotelsByOwner(ctx context.Context, ownerID string) ([]models.Hotel, error) {
	return r.listHotels(ctx, bson.M{"owner_id": ownerID})
}

func (r *MongoHotelRepo) listHotels(ctx context.Context, filter bson.M) ([]models.Hotel, error) {
	ctx, cancel := newContext(ctx, 10*time.Second)
	defer cancel()

	cursor, err := r.hotels.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve hotels: %w", err)
	}
	defer cursor.Close(ctx)

	var hotels []models.Hotel
	for cursor.Next(ctx) {
		var h models.Hotel
		if err := cursor.Decode(&h); err != nil {
			return nil, fmt.Errorf("failed to decode hotel: %w", err)
		}
		hotels = append(hotels, h)
	}
	return hotels, nil
}

// UpdateHotel modifies an existing hotel document.
func (r *MongoHotelRepo) UpdateHotel(ctx context.Context, h *models.Hotel) error {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	h.UpdatedAt = time.Now()
	res, err := r.hotels.UpdateOne(ctx, bson.M{"id": h.ID}, bson.M{"$set": h})
	if err != nil {
		return fmt.Errorf("failed to update hotel %s: %w", h.ID, err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteHotel removes a hotel document by its ID.
func (r *MongoHotelRepo) DeleteHotel(ctx context.Context, id string) error {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	res, err := r.hotels.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete hotel %s: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// CreateRoom inserts a new room document.
func (r *MongoHotelRepo) CreateRoom(ctx context.Context, room *models.Room) error {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	now := time.Now()
	room.CreatedAt = now
	room.UpdatedAt = now
	if _, err := r.rooms.InsertOne(ctx, room); err != nil {
		return fmt.Errorf("failed to create room: %w", err)
	}
	return nil
}

// GetRoomByID retrieves a room by its unique ID.
func (r *MongoHotelRepo) GetRoomByID(ctx context.Context, id string) (*models.Room, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	var room models.Room
	if err := r.rooms.FindOne(ctx, bson.M{"id": id}).Decode(&room); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch room %s: %w", id, err)
	}
	return &room, nil
}

// ListRoomsByHotel retrieves all rooms for a hotel.
func (r *MongoHotelRepo) ListRoomsByHotel(ctx context.Context, hotelID string) ([]models.Room, error) {
	ctx, cancel := newContext(ctx, 10*time.Second)
	defer cancel()

	cursor, err := r.rooms.Find(ctx, bson.M{"hotel_id": hotelID})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve rooms: %w", err)
	}
	defer cursor.Close(ctx)

	var rooms []models.Room
	for cursor.Next(ctx) {
		var room models.Room
		if err := cursor.Decode(&room); err != nil {
			return nil, fmt.Errorf("failed to decode room: %w", err)
		}
		rooms = append(rooms, room)
	}
	return rooms, nil
}

// UpdateRoom modifies an existing room document.
func (r *MongoHotelRepo) UpdateRoom(ctx context.Context, room *models.Room) error {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	room.UpdatedAt = time.Now()
	res, err := r.rooms.UpdateOne(ctx, bson.M{"id": room.ID}, bson.M{"$set": room})
	if err != nil {
		return fmt.Errorf("failed to update room %s: %w", room.ID, err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteRoom removes a room document by its ID.
func (r *MongoHotelRepo) DeleteRoom(ctx context.Context, id string) error {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	res, err := r.rooms.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete room %s: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
