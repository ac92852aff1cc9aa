package booking

import (
	"regexp"

	"github.com/SSMShehan/serendibgo-v2-sub005/models"
)

// Basic RFC-like pattern; full address validation belongs to the mail provider.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

var validCurrencies = map[models.Currency]bool{
	models.CurrencyLKR: true,
	models.CurrencyUSD: true,
	models.CurrencyEUR: true,
	models.CurrencyGBP: true,
}

var validPaymentStatuses = map[models.PaymentStatus]bool{
	models.PaymentPending:           true,
	models.PaymentPaid:              true,
	models.PaymentFailed:            true,
	models.PaymentRefunded:          true,
	models.PaymentPartiallyRefunded: true,
}

var validPaymentMethods = map[models.PaymentMethod]bool{
	models.MethodCard:         true,
	models.MethodBankTransfer: true,
	models.MethodCash:         true,
	models.MethodOnline:       true,
}

var validStatuses = map[models.BookingStatus]bool{
	models.BookingPending:   true,
	models.BookingConfirmed: true,
	models.BookingCancelled: true,
	models.BookingNoShow:    true,
	models.BookingCompleted: true,
	models.BookingModified:  true,
	models.BookingRefunded:  true,
	models.BookingDisputed:  true,
}

// ValidateBooking runs the schema rules over an incoming booking and returns one
// FieldError per violation. An empty result means the booking is well-formed.
func ValidateBooking(b *models.Booking) []FieldError {
	var errs []FieldError

	if b.GuestID == "" {
		errs = append(errs, FieldError{"guestId", "required"})
	}
	if b.HotelID == "" {
		errs = append(errs, FieldError{"hotelId", "required"})
	}
	if b.RoomID == "" {
		errs = append(errs, FieldError{"roomId", "required"})
	}

	if b.CheckIn.IsZero() {
		errs = append(errs, FieldError{"checkIn", "required"})
	}
	if b.CheckOut.IsZero() {
		errs = append(errs, FieldError{"checkOut", "required"})
	}
	if !b.CheckIn.IsZero() && !b.CheckOut.IsZero() && !b.CheckOut.After(b.CheckIn) {
		errs = append(errs, FieldError{"checkOut", "must be after check-in"})
	}

	if b.GuestDetails.FirstName == "" {
		errs = append(errs, FieldError{"guestDetails.firstName", "required"})
	}
	if b.GuestDetails.LastName == "" {
		errs = append(errs, FieldError{"guestDetails.lastName", "required"})
	}
	if b.GuestDetails.Email == "" {
		errs = append(errs, FieldError{"guestDetails.email", "required"})
	} else if !emailPattern.MatchString(b.GuestDetails.Email) {
		errs = append(errs, FieldError{"guestDetails.email", "malformed email address"})
	}
	if b.GuestDetails.Phone == "" {
		errs = append(errs, FieldError{"guestDetails.phone", "required"})
	}

	if b.Occupancy.Adults < 1 || b.Occupancy.Adults > 10 {
		errs = append(errs, FieldError{"occupancy.adults", "must be between 1 and 10"})
	}
	if b.Occupancy.Children < 0 || b.Occupancy.Children > 8 {
		errs = append(errs, FieldError{"occupancy.children", "must be between 0 and 8"})
	}
	if b.Occupancy.Infants < 0 || b.Occupancy.Infants > 4 {
		errs = append(errs, FieldError{"occupancy.infants", "must be between 0 and 4"})
	}

	errs = append(errs, validatePricing(b.Pricing)...)

	if b.Payment.Status != "" && !validPaymentStatuses[b.Payment.Status] {
		errs = append(errs, FieldError{"payment.status", "unknown payment status"})
	}
	if b.Payment.Method != "" && !validPaymentMethods[b.Payment.Method] {
		errs = append(errs, FieldError{"payment.method", "unknown payment method"})
	}
	if b.Status != "" && !validStatuses[b.Status] {
		errs = append(errs, FieldError{"status", "unknown booking status"})
	}

	return errs
}

func validatePricing(p models.Pricing) []FieldError {
	var errs []FieldError
	if p.RoomPrice < 0 {
		errs = append(errs, FieldError{"pricing.roomPrice", "must not be negative"})
	}
	if p.Taxes < 0 {
		errs = append(errs, FieldError{"pricing.taxes", "must not be negative"})
	}
	if p.ServiceCharge < 0 {
		errs = append(errs, FieldError{"pricing.serviceCharge", "must not be negative"})
	}
	if p.AdditionalFees < 0 {
		errs = append(errs, FieldError{"pricing.additionalFees", "must not be negative"})
	}
	if p.Discounts < 0 {
		errs = append(errs, FieldError{"pricing.discounts", "must not be negative"})
	}
	if p.TotalAmount < 0 {
		errs = append(errs, FieldError{"pricing.totalAmount", "must not be negative"})
	}
	if !validCurrencies[p.Currency] {
		errs = append(errs, FieldError{"pricing.currency", "unsupported currency"})
	}
	return errs
}
