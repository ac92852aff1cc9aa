package booking

import (
	"math"
	"math/rand/v2"
	"strconv"
	"strings"
	"time"

	"github.com/SSMShehan/serendibgo-v2-sub005/models"
)

// Every function in this file is a pure computation over a booking snapshot and a
// caller-supplied current time. Handlers read the clock once per request; nothing
// here reads it back, except reference generation which stamps creation time.

const refAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// GenerateBookingReference returns an upper-cased reference of the form
// SG<base36 timestamp><4 base36 random chars>. The random suffix only gives
// collision resistance; global uniqueness is enforced by the storage layer's
// unique index and the create path's retry loop.
func GenerateBookingReference() string {
	ts := strconv.FormatInt(time.Now().UnixNano(), 36)
	suffix := make([]byte, 4)
	for i := range suffix {
		suffix[i] = refAlphabet[rand.IntN(len(refAlphabet))]
	}
	return strings.ToUpper("SG" + ts + string(suffix))
}

// ComputeTotalAmount derives the booking total from its pricing components.
// Applied only when the incoming total is absent/zero at creation time and never
// recomputed afterwards, even if component fields are edited later. The result is
// not clamped at zero: discounts larger than the remaining components yield a
// negative total, which the caller decides to reject or accept.
func ComputeTotalAmount(p models.Pricing) float64 {
	return p.RoomPrice + p.Taxes + p.ServiceCharge + p.AdditionalFees - p.Discounts
}

// CanBeCancelled reports whether the guest may still cancel: only confirmed
// bookings more than 24 hours before check-in. Pending bookings are deliberately
// not cancellable under this rule.
func CanBeCancelled(b *models.Booking, now time.Time) bool {
	return b.Status == models.BookingConfirmed && b.CheckIn.Sub(now) > 24*time.Hour
}

// CancellationFee returns the fee charged when cancelling at the given instant,
// tiered by hours remaining until check-in:
//
//	h > 48  free cancellation
//	h > 24  25% of the total
//	h > 0   50% of the total
//	h <= 0  100% of the total (no refund)
//
// Comparisons are strict at every boundary: exactly 48h falls into the 25% tier,
// exactly 24h into the 50% tier, exactly 0h into the no-refund tier.
func CancellationFee(b *models.Booking, now time.Time) (float64, error) {
	if b.CheckIn.IsZero() {
		return 0, &InvalidInputError{Reason: "booking has no check-in date"}
	}
	h := b.CheckIn.Sub(now).Hours()
	total := b.Pricing.TotalAmount
	switch {
	case h > 48:
		return 0, nil
	case h > 24:
		return total * 0.25, nil
	case h > 0:
		return total * 0.50, nil
	default:
		return total, nil
	}
}

// IsActive reports whether the guest is currently staying: confirmed and
// checkIn <= now < checkOut.
func IsActive(b *models.Booking, now time.Time) bool {
	return b.Status == models.BookingConfirmed && !now.Before(b.CheckIn) && now.Before(b.CheckOut)
}

// IsUpcoming reports whether a confirmed stay has not started yet.
func IsUpcoming(b *models.Booking, now time.Time) bool {
	return b.Status == models.BookingConfirmed && b.CheckIn.After(now)
}

// IsCompleted reports whether the stay is over: explicitly completed, or
// confirmed with checkOut <= now.
func IsCompleted(b *models.Booking, now time.Time) bool {
	if b.Status == models.BookingCompleted {
		return true
	}
	return b.Status == models.BookingConfirmed && !b.CheckOut.After(now)
}

// Nights returns the number of billable nights, rounding partial days up.
func Nights(checkIn, checkOut time.Time) int {
	return int(math.Ceil(checkOut.Sub(checkIn).Hours() / 24))
}

var statusLabels = map[models.BookingStatus]string{
	models.BookingPending:   "Pending",
	models.BookingConfirmed: "Confirmed",
	models.BookingCancelled: "Cancelled",
	models.BookingNoShow:    "No Show",
	models.BookingCompleted: "Completed",
	models.BookingModified:  "Modified",
	models.BookingRefunded:  "Refunded",
	models.BookingDisputed:  "Disputed",
}

var paymentStatusLabels = map[models.PaymentStatus]string{
	models.PaymentPending:           "Payment Pending",
	models.PaymentPaid:              "Paid",
	models.PaymentFailed:            "Payment Failed",
	models.PaymentRefunded:          "Refunded",
	models.PaymentPartiallyRefunded: "Partially Refunded",
}

// StatusLabel returns the human-readable label for a booking status.
// Unknown values pass through unchanged.
func StatusLabel(s models.BookingStatus) string {
	if label, ok := statusLabels[s]; ok {
		return label
	}
	return string(s)
}

// PaymentStatusLabel returns the human-readable label for a payment status.
// Unknown values pass through unchanged.
func PaymentStatusLabel(s models.PaymentStatus) string {
	if label, ok := paymentStatusLabels[s]; ok {
		return label
	}
	return string(s)
}
