package bookingRepo

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

// MongoBookingRepo implements BookingRepository using MongoDB.
type MongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo creates a new instance of BookingRepository using MongoDB.
func NewMongoBookingRepo() BookingRepository {
	repo := &MongoBookingRepo{coll: database.Collection("bookings")}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(parent context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(parent, timeout)
}

// ensureIndexes creates indexes for fields frequently used in queries.
// The unique index on booking_reference is the at-most-once guarantee the
// reference generator relies on.
func (r *MongoBookingRepo) ensureIndexes() error {
	ctx, cancel := newContext(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "booking_reference", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "guest_id", Value: 1}, {Key: "created_at", Value: -1}}},
		{Keys: bson.D{{Key: "hotel_id", Value: 1}, {Key: "created_at", Value: -1}}},
		{Keys: bson.D{{Key: "room_id", Value: 1}, {Key: "check_in", Value: 1}}},
		{Keys: bson.D{{Key: "status", Value: 1}, {Key: "check_out", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a new booking document.
func (r *MongoBookingRepo) Create(ctx context.Context, b *models.Booking) error {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, b); err != nil {
		return fmt.Errorf("failed to create booking: %w", err)
	}
	return nil
}

// GetByID retrieves a booking by its unique ID.
func (r *MongoBookingRepo) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	var b models.Booking
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&b); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch booking %s: %w", id, err)
	}
	return &b, nil
}

// GetByReference retrieves a booking by its booking reference.
func (r *MongoBookingRepo) GetByReference(ctx context.Context, ref string) (*models.Booking, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	var b models.Booking
	if err := r.coll.FindOne(ctx, bson.M{"booking_reference": ref}).Decode(&b); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch booking %s: %w", ref, err)
	}
	return &b, nil
}

// ListByGuest retrieves all bookings made by a guest, newest first.
func (r *MongoBookingRepo) ListByGuest(ctx context.Context, guestID string) ([]models.Booking, error) {
	return r.list(ctx, bson.M{"guest_id": guestID})
}

// ListByHotel retrieves all bookings for a hotel, newest first.
func (r *MongoBookingRepo) ListByHotel(ctx context.Context, hotelID string) ([]models.Booking, error) {
	return r.list(ctx, bson.M{"hotel_id": hotelID})
}

func (r *MongoBookingRepo) list(ctx context.Context, filter bson.M) ([]models.Booking, error) {
	ctx, cancel := newContext(ctx, 10*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve bookings: %w", err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	for cursor.Next(ctx) {
		var b models.Booking
		if err := cursor.Decode(&b); err != nil {
			return nil, fmt.Errorf("failed to decode booking: %w", err)
		}
		bookings = append(bookings, b)
	}
	return bookings, nil
}

// Update replaces the stored fields of an existing booking.
func (r *MongoBookingRepo) Update(ctx context.Context, b *models.Booking) error {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	b.UpdatedAt = time.Now()
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": b.ID}, bson.M{"$set": b})
	if err != nil {
		return fmt.Errorf("failed to update booking %s: %w", b.ID, err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// ReplaceIfStatus replaces the booking only if its stored status still equals
// expect. A zero MatchedCount means either the record vanished or a concurrent
// transition won; both surface as ErrNotFound for the caller to re-read.
func (r *MongoBookingRepo) ReplaceIfStatus(ctx context.Context, b *models.Booking, expect models.BookingStatus) error {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	b.UpdatedAt = time.Now()
	filter := bson.M{"id": b.ID, "status": expect}
	res, err := r.coll.UpdateOne(ctx, filter, bson.M{"$set": b})
	if err != nil {
		return fmt.Errorf("failed to transition booking %s: %w", b.ID, err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// FindOverlapping returns bookings for the room whose stay overlaps [from, to)
// and whose status still blocks the room.
func (r *MongoBookingRepo) FindOverlapping(ctx context.Context, roomID string, from, to time.Time) ([]models.Booking, error) {
	filter := bson.M{
		"room_id":   roomID,
		"status":    bson.M{"$in": []models.BookingStatus{models.BookingPending, models.BookingConfirmed, models.BookingModified}},
		"check_in":  bson.M{"$lt": to},
		"check_out": bson.M{"$gt": from},
	}
	return r.list(ctx, filter)
}

// FindSweepable returns confirmed bookings whose check-out has passed.
func (r *MongoBookingRepo) FindSweepable(ctx context.Context, before time.Time) ([]models.Booking, error) {
	filter := bson.M{
		"status":    models.BookingConfirmed,
		"check_out": bson.M{"$lte": before},
	}
	return r.list(ctx, filter)
}

// FindDueReminders returns confirmed bookings with check-in inside the window
// that have not had a reminder sent yet.
func (r *MongoBookingRepo) FindDueReminders(ctx context.Context, from, to time.Time) ([]models.Booking, error) {
	filter := bson.M{
		"status":                      models.BookingConfirmed,
		"communication.reminder_sent": false,
		"check_in":                    bson.M{"$gt": from, "$lte": to},
	}
	return r.list(ctx, filter)
}
