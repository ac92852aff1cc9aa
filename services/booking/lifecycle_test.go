package booking

import (
	"strings"
	"testing"
	"time"

	"github.com/SSMShehan/serendibgo-v2-sub005/models"

	"github.com/stretchr/testify/assert"
)

func confirmedBooking(checkIn time.Time, total float64) *models.Booking {
	return &models.Booking{
		ID:       "b-1",
		Status:   models.BookingConfirmed,
		CheckIn:  checkIn,
		CheckOut: checkIn.Add(48 * time.Hour),
		Pricing:  models.Pricing{TotalAmount: total, Currency: models.CurrencyUSD},
	}
}

func TestGenerateBookingReference(t *testing.T) {
	ref := GenerateBookingReference()
	assert.True(t, strings.HasPrefix(ref, "SG"))
	assert.Equal(t, strings.ToUpper(ref), ref)
	assert.Greater(t, len(ref), 6)
}

func TestGenerateBookingReference_NoDuplicates(t *testing.T) {
	seen := make(map[string]bool, 1000)
	for i := 0; i < 1000; i++ {
		ref := GenerateBookingReference()
		assert.False(t, seen[ref], "duplicate reference %s", ref)
		seen[ref] = true
	}
}

func TestComputeTotalAmount(t *testing.T) {
	total := ComputeTotalAmount(models.Pricing{
		RoomPrice:      200,
		Taxes:          30,
		ServiceCharge:  20,
		AdditionalFees: 10,
		Discounts:      60,
	})
	assert.Equal(t, 200.0, total)
}

func TestComputeTotalAmount_DiscountsCanExceedCharges(t *testing.T) {
	total := ComputeTotalAmount(models.Pricing{RoomPrice: 100, Discounts: 150})
	assert.Equal(t, -50.0, total)
}

func TestCanBeCancelled(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	b := confirmedBooking(now.Add(25*time.Hour), 1000)
	assert.True(t, CanBeCancelled(b, now))

	// Exactly 24 hours out is too late: the comparison is strict.
	b = confirmedBooking(now.Add(24*time.Hour), 1000)
	assert.False(t, CanBeCancelled(b, now))

	b = confirmedBooking(now.Add(23*time.Hour), 1000)
	assert.False(t, CanBeCancelled(b, now))
}

func TestCanBeCancelled_StatusGate(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	farOut := now.Add(100 * time.Hour)

	for _, status := range []models.BookingStatus{
		models.BookingPending,
		models.BookingCancelled,
		models.BookingNoShow,
		models.BookingCompleted,
		models.BookingModified,
		models.BookingRefunded,
		models.BookingDisputed,
	} {
		b := confirmedBooking(farOut, 1000)
		b.Status = status
		assert.False(t, CanBeCancelled(b, now), "status %s must not be cancellable", status)
	}
}

func TestCancellationFee_Tiers(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		name  string
		until time.Duration
		want  float64
	}{
		{"more than 48h is free", 49 * time.Hour, 0},
		{"exactly 48h charges 25%", 48 * time.Hour, 250},
		{"between 24h and 48h charges 25%", 30 * time.Hour, 250},
		{"exactly 24h charges 50%", 24 * time.Hour, 500},
		{"under 24h charges 50%", 10 * time.Hour, 500},
		{"at check-in charges everything", 0, 1000},
		{"after check-in charges everything", -5 * time.Hour, 1000},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := confirmedBooking(now.Add(tc.until), 1000)
			fee, err := CancellationFee(b, now)
			assert.NoError(t, err)
			assert.Equal(t, tc.want, fee)
		})
	}
}

func TestCancellationFee_MissingCheckIn(t *testing.T) {
	b := &models.Booking{Status: models.BookingConfirmed}
	_, err := CancellationFee(b, time.Now())
	var inputErr *InvalidInputError
	assert.ErrorAs(t, err, &inputErr)
}

func TestLifecycleQueries(t *testing.T) {
	checkIn := time.Date(2026, 3, 10, 14, 0, 0, 0, time.UTC)
	b := confirmedBooking(checkIn, 1000) // checkOut = checkIn + 48h

	before := checkIn.Add(-time.Hour)
	during := checkIn.Add(time.Hour)
	after := b.CheckOut.Add(time.Hour)

	assert.True(t, IsUpcoming(b, before))
	assert.False(t, IsActive(b, before))
	assert.False(t, IsCompleted(b, before))

	assert.False(t, IsUpcoming(b, during))
	assert.True(t, IsActive(b, during))
	assert.False(t, IsCompleted(b, during))

	assert.False(t, IsUpcoming(b, after))
	assert.False(t, IsActive(b, after))
	assert.True(t, IsCompleted(b, after))
}

func TestLifecycleQueries_Boundaries(t *testing.T) {
	checkIn := time.Date(2026, 3, 10, 14, 0, 0, 0, time.UTC)
	b := confirmedBooking(checkIn, 1000)

	// At the check-in instant the stay is active, not upcoming.
	assert.True(t, IsActive(b, checkIn))
	assert.False(t, IsUpcoming(b, checkIn))

	// At the check-out instant the stay is completed, not active.
	assert.False(t, IsActive(b, b.CheckOut))
	assert.True(t, IsCompleted(b, b.CheckOut))
}

func TestLifecycleQueries_CompletedStatusWins(t *testing.T) {
	checkIn := time.Date(2026, 3, 10, 14, 0, 0, 0, time.UTC)
	b := confirmedBooking(checkIn, 1000)
	b.Status = models.BookingCompleted

	// An explicitly completed booking reads as completed regardless of the dates.
	assert.True(t, IsCompleted(b, checkIn.Add(-time.Hour)))
	assert.False(t, IsActive(b, checkIn.Add(time.Hour)))
	assert.False(t, IsUpcoming(b, checkIn.Add(-time.Hour)))
}

func TestNights(t *testing.T) {
	checkIn := time.Date(2026, 3, 10, 14, 0, 0, 0, time.UTC)

	assert.Equal(t, 2, Nights(checkIn, checkIn.Add(48*time.Hour)))
	// Partial days round up.
	assert.Equal(t, 2, Nights(checkIn, checkIn.Add(25*time.Hour)))
	assert.Equal(t, 1, Nights(checkIn, checkIn.Add(24*time.Hour)))
	assert.Equal(t, 1, Nights(checkIn, checkIn.Add(time.Hour)))
}

func TestStatusLabels(t *testing.T) {
	assert.Equal(t, "Confirmed", StatusLabel(models.BookingConfirmed))
	assert.Equal(t, "No Show", StatusLabel(models.BookingNoShow))
	// Unknown values pass through as-is.
	assert.Equal(t, "archived", StatusLabel(models.BookingStatus("archived")))

	assert.Equal(t, "Partially Refunded", PaymentStatusLabel(models.PaymentPartiallyRefunded))
	assert.Equal(t, "chargeback", PaymentStatusLabel(models.PaymentStatus("chargeback")))
}
