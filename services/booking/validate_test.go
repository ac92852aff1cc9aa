package booking

import (
	"testing"
	"time"

	"github.com/SSMShehan/serendibgo-v2-sub005/models"

	"github.com/stretchr/testify/assert"
)

func validBooking() *models.Booking {
	checkIn := time.Date(2026, 4, 1, 14, 0, 0, 0, time.UTC)
	return &models.Booking{
		GuestID:  "guest-1",
		HotelID:  "hotel-1",
		RoomID:   "room-1",
		CheckIn:  checkIn,
		CheckOut: checkIn.Add(72 * time.Hour),
		GuestDetails: models.GuestDetails{
			FirstName: "Nimal",
			LastName:  "Perera",
			Email:     "nimal@example.com",
			Phone:     "+94771234567",
		},
		Occupancy: models.Occupancy{Adults: 2, Children: 1},
		Pricing: models.Pricing{
			RoomPrice: 300,
			Taxes:     45,
			Currency:  models.CurrencyLKR,
		},
	}
}

func fieldsOf(errs []FieldError) []string {
	fields := make([]string, 0, len(errs))
	for _, e := range errs {
		fields = append(fields, e.Field)
	}
	return fields
}

func TestValidateBooking_Valid(t *testing.T) {
	assert.Empty(t, ValidateBooking(validBooking()))
}

func TestValidateBooking_RequiredFields(t *testing.T) {
	b := validBooking()
	b.GuestID = ""
	b.RoomID = ""
	b.GuestDetails.Phone = ""

	fields := fieldsOf(ValidateBooking(b))
	assert.Contains(t, fields, "guestId")
	assert.Contains(t, fields, "roomId")
	assert.Contains(t, fields, "guestDetails.phone")
}

func TestValidateBooking_Email(t *testing.T) {
	b := validBooking()
	b.GuestDetails.Email = "not-an-email"
	assert.Contains(t, fieldsOf(ValidateBooking(b)), "guestDetails.email")

	b.GuestDetails.Email = "has space@example.com"
	assert.Contains(t, fieldsOf(ValidateBooking(b)), "guestDetails.email")

	b.GuestDetails.Email = "fine@example.co.uk"
	assert.NotContains(t, fieldsOf(ValidateBooking(b)), "guestDetails.email")
}

func TestValidateBooking_DateOrder(t *testing.T) {
	b := validBooking()
	b.CheckOut = b.CheckIn
	assert.Contains(t, fieldsOf(ValidateBooking(b)), "checkOut")

	b.CheckOut = b.CheckIn.Add(-time.Hour)
	assert.Contains(t, fieldsOf(ValidateBooking(b)), "checkOut")
}

func TestValidateBooking_Occupancy(t *testing.T) {
	cases := []struct {
		name  string
		occ   models.Occupancy
		field string
	}{
		{"no adults", models.Occupancy{Adults: 0}, "occupancy.adults"},
		{"too many adults", models.Occupancy{Adults: 11}, "occupancy.adults"},
		{"too many children", models.Occupancy{Adults: 2, Children: 9}, "occupancy.children"},
		{"negative children", models.Occupancy{Adults: 2, Children: -1}, "occupancy.children"},
		{"too many infants", models.Occupancy{Adults: 2, Infants: 5}, "occupancy.infants"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := validBooking()
			b.Occupancy = tc.occ
			assert.Contains(t, fieldsOf(ValidateBooking(b)), tc.field)
		})
	}
}

func TestValidateBooking_Pricing(t *testing.T) {
	b := validBooking()
	b.Pricing.RoomPrice = -1
	b.Pricing.Discounts = -5
	fields := fieldsOf(ValidateBooking(b))
	assert.Contains(t, fields, "pricing.roomPrice")
	assert.Contains(t, fields, "pricing.discounts")

	b = validBooking()
	b.Pricing.Currency = "JPY"
	assert.Contains(t, fieldsOf(ValidateBooking(b)), "pricing.currency")

	b = validBooking()
	b.Pricing.Currency = ""
	assert.Contains(t, fieldsOf(ValidateBooking(b)), "pricing.currency")
}

func TestValidateBooking_Enums(t *testing.T) {
	b := validBooking()
	b.Payment.Status = "settled"
	b.Payment.Method = "crypto"
	b.Status = "archived"

	fields := fieldsOf(ValidateBooking(b))
	assert.Contains(t, fields, "payment.status")
	assert.Contains(t, fields, "payment.method")
	assert.Contains(t, fields, "status")

	// Empty enum fields are allowed; the create path fills the defaults.
	b = validBooking()
	b.Payment.Status = ""
	b.Status = ""
	assert.Empty(t, ValidateBooking(b))
}
