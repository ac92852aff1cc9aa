package booking

import (
	"context"
	"time"

	"github.com/SSMShehan/serendibgo-v2-sub005/models"
)

// BookingService defines the interface for managing booking records.
// Every time-dependent operation takes the current time from the caller so the
// underlying rules stay deterministic and testable.
type BookingService interface {
	CreateBooking(ctx context.Context, b *models.Booking) (*models.Booking, error)
	GetBooking(ctx context.Context, id string, now time.Time) (*BookingView, error)
	GetBookingByReference(ctx context.Context, ref string, now time.Time) (*BookingView, error)
	ListGuestBookings(ctx context.Context, guestID string, now time.Time) ([]BookingView, error)
	ListHotelBookings(ctx context.Context, hotelID string, now time.Time) ([]BookingView, error)

	ConfirmBooking(ctx context.Context, id string, now time.Time) (*models.Booking, error)
	QuoteCancellation(ctx context.Context, id string, now time.Time) (*CancellationQuote, error)
	CancelBooking(ctx context.Context, id, cancelledBy, reason string, now time.Time) (*models.Booking, error)
	RecordCheckIn(ctx context.Context, id, notes string, now time.Time) (*models.Booking, error)
	RecordCheckOut(ctx context.Context, id, notes string, now time.Time) (*models.Booking, error)
	UpdateStatus(ctx context.Context, id string, to models.BookingStatus, now time.Time) (*models.Booking, error)

	CreatePaymentIntent(ctx context.Context, id string) (string, error)
	MarkReminderSent(ctx context.Context, id string, now time.Time) error
	SendDueReminders(ctx context.Context, now time.Time) (int, error)
	SweepEndedStays(ctx context.Context, now time.Time) (completed, noShows int, err error)
}

// PaymentProcessor abstracts the payment provider used for intents and refunds.
type PaymentProcessor interface {
	CreateIntent(ctx context.Context, b *models.Booking) (string, error)
	Refund(ctx context.Context, b *models.Booking, amount float64) (string, error)
}

// ReminderScheduler schedules a check-in reminder for a confirmed booking.
// Delivery itself belongs to the external notification collaborator.
type ReminderScheduler interface {
	ScheduleReminder(ctx context.Context, b *models.Booking) error
}

// CancellationQuote is the answer to "what would cancelling now cost".
type CancellationQuote struct {
	BookingID    string  `json:"bookingId"`
	Cancellable  bool    `json:"cancellable"`
	Fee          float64 `json:"fee"`
	RefundAmount float64 `json:"refundAmount"`
}

// BookingView is a booking snapshot plus the derived display fields the UI
// renders: nights, labels, and the lifecycle booleans at the supplied instant.
type BookingView struct {
	models.Booking
	Nights             int    `json:"nights"`
	StatusLabel        string `json:"statusLabel"`
	PaymentStatusLabel string `json:"paymentStatusLabel"`
	Active             bool   `json:"active"`
	Upcoming           bool   `json:"upcoming"`
	Completed          bool   `json:"completed"`
}

// NewBookingView derives the display fields for a booking at the given instant.
func NewBookingView(b *models.Booking, now time.Time) BookingView {
	return BookingView{
		Booking:            *b,
		Nights:             Nights(b.CheckIn, b.CheckOut),
		StatusLabel:        StatusLabel(b.Status),
		PaymentStatusLabel: PaymentStatusLabel(b.Payment.Status),
		Active:             IsActive(b, now),
		Upcoming:           IsUpcoming(b, now),
		Completed:          IsCompleted(b, now),
	}
}
