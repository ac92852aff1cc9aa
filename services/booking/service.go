package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	bookingRepo "github.com/SSMShehan/serendibgo-v2-sub005/database/repository/booking"
	"github.com/SSMShehan/serendibgo-v2-sub005/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// How many times the create path regenerates the reference after a unique-index
// collision before giving up.
const maxReferenceAttempts = 3

// DefaultBookingService implements BookingService.
type DefaultBookingService struct {
	Repo      bookingRepo.BookingRepository
	Payments  PaymentProcessor
	Reminders ReminderScheduler // optional; nil disables reminder scheduling
	Logger    *zap.Logger
}

// CreateBooking validates the incoming record, assigns the reference, freezes the
// total, and persists it. The order mirrors the creation contract: validate,
// generateBookingReference, computeTotalAmount, persist.
func (s *DefaultBookingService) CreateBooking(ctx context.Context, b *models.Booking) (*models.Booking, error) {
	if fieldErrs := ValidateBooking(b); len(fieldErrs) > 0 {
		return nil, &ValidationError{Fields: fieldErrs}
	}

	now := time.Now()
	if b.ID == "" {
		b.ID = uuid.New().String()
	}
	if b.Status == "" {
		b.Status = models.BookingPending
	}
	if b.Payment.Status == "" {
		b.Payment.Status = models.PaymentPending
	}
	b.CreatedAt = now
	b.UpdatedAt = now

	// Freeze-on-first-write: the total is derived exactly once, at creation, and
	// only when the caller did not supply one. Later edits to the component
	// prices never touch it.
	if b.Pricing.TotalAmount == 0 {
		b.Pricing.TotalAmount = ComputeTotalAmount(b.Pricing)
	}

	generated := b.BookingReference == ""
	if generated {
		b.BookingReference = GenerateBookingReference()
	}

	for attempt := 1; ; attempt++ {
		err := s.Repo.Create(ctx, b)
		if err == nil {
			break
		}
		if generated && mongo.IsDuplicateKeyError(err) && attempt < maxReferenceAttempts {
			s.Logger.Warn("booking reference collision, regenerating",
				zap.String("reference", b.BookingReference), zap.Int("attempt", attempt))
			b.BookingReference = GenerateBookingReference()
			continue
		}
		return nil, fmt.Errorf("failed to persist booking: %w", err)
	}

	s.Logger.Info("booking created",
		zap.String("id", b.ID),
		zap.String("reference", b.BookingReference),
		zap.Float64("total", b.Pricing.TotalAmount))
	return b, nil
}

// GetBooking returns a booking with its derived display fields.
func (s *DefaultBookingService) GetBooking(ctx context.Context, id string, now time.Time) (*BookingView, error) {
	b, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, mapRepoErr(err)
	}
	view := NewBookingView(b, now)
	return &view, nil
}

// GetBookingByReference returns a booking looked up by its reference.
func (s *DefaultBookingService) GetBookingByReference(ctx context.Context, ref string, now time.Time) (*BookingView, error) {
	b, err := s.Repo.GetByReference(ctx, ref)
	if err != nil {
		return nil, mapRepoErr(err)
	}
	view := NewBookingView(b, now)
	return &view, nil
}

// ListGuestBookings returns a guest's bookings with display fields.
func (s *DefaultBookingService) ListGuestBookings(ctx context.Context, guestID string, now time.Time) ([]BookingView, error) {
	bookings, err := s.Repo.ListByGuest(ctx, guestID)
	if err != nil {
		return nil, err
	}
	return toViews(bookings, now), nil
}

// ListHotelBookings returns a hotel's bookings with display fields.
func (s *DefaultBookingService) ListHotelBookings(ctx context.Context, hotelID string, now time.Time) ([]BookingView, error) {
	bookings, err := s.Repo.ListByHotel(ctx, hotelID)
	if err != nil {
		return nil, err
	}
	return toViews(bookings, now), nil
}

func toViews(bookings []models.Booking, now time.Time) []BookingView {
	views := make([]BookingView, 0, len(bookings))
	for i := range bookings {
		views = append(views, NewBookingView(&bookings[i], now))
	}
	return views
}

func mapRepoErr(err error) error {
	if errors.Is(err, bookingRepo.ErrNotFound) {
		return ErrBookingNotFound
	}
	return err
}
