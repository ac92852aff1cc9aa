package models

import "time"

// BookingStatus enumerates the lifecycle states of a booking.
type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
	BookingNoShow    BookingStatus = "no_show"
	BookingCompleted BookingStatus = "completed"
	BookingModified  BookingStatus = "modified"
	BookingRefunded  BookingStatus = "refunded"
	BookingDisputed  BookingStatus = "disputed"
)

// PaymentStatus enumerates the states of a booking payment.
type PaymentStatus string

const (
	PaymentPending           PaymentStatus = "pending"
	PaymentPaid              PaymentStatus = "paid"
	PaymentFailed            PaymentStatus = "failed"
	PaymentRefunded          PaymentStatus = "refunded"
	PaymentPartiallyRefunded PaymentStatus = "partially_refunded"
)

// PaymentMethod enumerates the supported payment methods.
type PaymentMethod string

const (
	MethodCard         PaymentMethod = "card"
	MethodBankTransfer PaymentMethod = "bank_transfer"
	MethodCash         PaymentMethod = "cash"
	MethodOnline       PaymentMethod = "online"
)

// Currency enumerates the supported billing currencies.
type Currency string

const (
	CurrencyLKR Currency = "LKR"
	CurrencyUSD Currency = "USD"
	CurrencyEUR Currency = "EUR"
	CurrencyGBP Currency = "GBP"
)

// GuestDetails holds the lead guest's contact and travel-document information.
type GuestDetails struct {
	FirstName      string `bson:"first_name" json:"firstName"`
	LastName       string `bson:"last_name" json:"lastName"`
	Email          string `bson:"email" json:"email"`
	Phone          string `bson:"phone" json:"phone"`
	Country        string `bson:"country,omitempty" json:"country,omitempty"`
	PassportNumber string `bson:"passport_number,omitempty" json:"passportNumber,omitempty"` // Optional travel document
}

// Occupancy holds the guest counts for a booking.
type Occupancy struct {
	Adults   int `bson:"adults" json:"adults"`     // 1-10, at least one required
	Children int `bson:"children" json:"children"` // 0-8
	Infants  int `bson:"infants" json:"infants"`   // 0-4
}

// Pricing holds the monetary breakdown of a booking.
// TotalAmount is derived once at creation when absent and never recomputed.
type Pricing struct {
	RoomPrice      float64  `bson:"room_price" json:"roomPrice"`
	Taxes          float64  `bson:"taxes" json:"taxes"`
	ServiceCharge  float64  `bson:"service_charge" json:"serviceCharge"`
	AdditionalFees float64  `bson:"additional_fees" json:"additionalFees"`
	Discounts      float64  `bson:"discounts" json:"discounts"`
	TotalAmount    float64  `bson:"total_amount" json:"totalAmount"`
	Currency       Currency `bson:"currency" json:"currency"`
	ExchangeRate   float64  `bson:"exchange_rate,omitempty" json:"exchangeRate,omitempty"`
}

// Payment tracks the payment state of a booking.
type Payment struct {
	Status        PaymentStatus `bson:"status" json:"status"`
	Method        PaymentMethod `bson:"method,omitempty" json:"method,omitempty"`
	TransactionID string        `bson:"transaction_id,omitempty" json:"transactionId,omitempty"`
	RefundID      string        `bson:"refund_id,omitempty" json:"refundId,omitempty"`
	RefundAmount  float64       `bson:"refund_amount,omitempty" json:"refundAmount,omitempty"`
	RefundedAt    *time.Time    `bson:"refunded_at,omitempty" json:"refundedAt,omitempty"`
}

// SpecialRequirements holds optional guest preferences for the stay.
type SpecialRequirements struct {
	EarlyCheckIn  bool   `bson:"early_check_in" json:"earlyCheckIn"`
	LateCheckOut  bool   `bson:"late_check_out" json:"lateCheckOut"`
	AirportPickup bool   `bson:"airport_pickup" json:"airportPickup"`
	DietaryNeeds  string `bson:"dietary_needs,omitempty" json:"dietaryNeeds,omitempty"`
	Accessibility string `bson:"accessibility,omitempty" json:"accessibility,omitempty"`
}

// Communication tracks which automated messages have been sent for a booking.
type Communication struct {
	ConfirmationSent   bool       `bson:"confirmation_sent" json:"confirmationSent"`
	ConfirmationSentAt *time.Time `bson:"confirmation_sent_at,omitempty" json:"confirmationSentAt,omitempty"`
	ReminderSent       bool       `bson:"reminder_sent" json:"reminderSent"`
	ReminderSentAt     *time.Time `bson:"reminder_sent_at,omitempty" json:"reminderSentAt,omitempty"`
}

// StayEvent records an actual check-in or check-out at the property.
type StayEvent struct {
	Done  bool       `bson:"done" json:"done"`
	At    *time.Time `bson:"at,omitempty" json:"at,omitempty"`
	Notes string     `bson:"notes,omitempty" json:"notes,omitempty"`
}

// Cancellation records the details of a cancelled booking.
// Cancellation is a status change plus these fields, never a hard delete.
type Cancellation struct {
	CancelledAt  *time.Time `bson:"cancelled_at,omitempty" json:"cancelledAt,omitempty"`
	CancelledBy  string     `bson:"cancelled_by,omitempty" json:"cancelledBy,omitempty"` // "guest", "hotel", "system"
	Reason       string     `bson:"reason,omitempty" json:"reason,omitempty"`
	Fee          float64    `bson:"fee" json:"fee"`
	RefundAmount float64    `bson:"refund_amount" json:"refundAmount"`
}

// Booking represents one reservation of a room by a guest for a date range.
type Booking struct {
	ID               string              `bson:"id" json:"id"`
	BookingReference string              `bson:"booking_reference" json:"bookingReference"` // Unique, immutable after creation
	GuestID          string              `bson:"guest_id" json:"guestId"`
	HotelID          string              `bson:"hotel_id" json:"hotelId"`
	RoomID           string              `bson:"room_id" json:"roomId"`
	CheckIn          time.Time           `bson:"check_in" json:"checkIn"`
	CheckOut         time.Time           `bson:"check_out" json:"checkOut"`
	GuestDetails     GuestDetails        `bson:"guest_details" json:"guestDetails"`
	Occupancy        Occupancy           `bson:"occupancy" json:"occupancy"`
	Pricing          Pricing             `bson:"pricing" json:"pricing"`
	Payment          Payment             `bson:"payment" json:"payment"`
	Status           BookingStatus       `bson:"status" json:"status"`
	Requirements     SpecialRequirements `bson:"requirements,omitempty" json:"requirements,omitempty"`
	Communication    Communication       `bson:"communication" json:"communication"`
	CheckInInfo      StayEvent           `bson:"check_in_info" json:"checkInInfo"`
	CheckOutInfo     StayEvent           `bson:"check_out_info" json:"checkOutInfo"`
	Cancellation     Cancellation        `bson:"cancellation,omitempty" json:"cancellation,omitempty"`
	Notes            string              `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt        time.Time           `bson:"created_at" json:"createdAt"`
	UpdatedAt        time.Time           `bson:"updated_at" json:"updatedAt"`
}
