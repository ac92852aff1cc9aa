package bookingRepo

import (
	"context"
	"errors"
	"time"

	"github.com/SSMShehan/serendibgo-v2-sub005/models"
)

// ErrNotFound is returned when no booking matches the given filter.
var ErrNotFound = errors.New("booking record not found")

// BookingRepository defines methods for booking data access.
type BookingRepository interface {
	// Create inserts a new booking record. The unique index on booking_reference
	// surfaces reference collisions as a duplicate-key error.
	Create(ctx context.Context, b *models.Booking) error
	// GetByID retrieves a booking by its unique ID.
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	// GetByReference retrieves a booking by its booking reference.
	GetByReference(ctx context.Context, ref string) (*models.Booking, error)
	// ListByGuest retrieves all bookings made by a guest, newest first.
	ListByGuest(ctx context.Context, guestID string) ([]models.Booking, error)
	// ListByHotel retrieves all bookings for a hotel, newest first.
	ListByHotel(ctx context.Context, hotelID string) ([]models.Booking, error)
	// Update replaces the stored fields of an existing booking.
	Update(ctx context.Context, b *models.Booking) error
	// ReplaceIfStatus replaces the booking only if its stored status still equals
	// expect, serializing concurrent status transitions. Returns ErrNotFound when
	// the booking is missing or the status check lost the race.
	ReplaceIfStatus(ctx context.Context, b *models.Booking, expect models.BookingStatus) error
	// FindOverlapping returns bookings for the room whose stay overlaps [from, to)
	// and whose status still blocks the room.
	FindOverlapping(ctx context.Context, roomID string, from, to time.Time) ([]models.Booking, error)
	// FindSweepable returns confirmed bookings whose check-out has passed.
	FindSweepable(ctx context.Context, before time.Time) ([]models.Booking, error)
	// FindDueReminders returns confirmed bookings with check-in inside the window
	// that have not had a reminder sent yet.
	FindDueReminders(ctx context.Context, from, to time.Time) ([]models.Booking, error)
}
