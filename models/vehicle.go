package models

import "time"

// Vehicle represents a rentable vehicle listed on the platform.
type Vehicle struct {
	ID          string    `bson:"id" json:"id"`
	OwnerID     string    `bson:"owner_id" json:"ownerId"`
	Type        string    `bson:"type" json:"type"` // e.g. "car", "van", "tuk-tuk"
	Make        string    `bson:"make,omitempty" json:"make,omitempty"`
	Model       string    `bson:"model,omitempty" json:"model,omitempty"`
	Year        int       `bson:"year,omitempty" json:"year,omitempty"`
	Seats       int       `bson:"seats" json:"seats"`
	PricePerDay float64   `bson:"price_per_day" json:"pricePerDay"`
	Currency    Currency  `bson:"currency" json:"currency"`
	DriverID    string    `bson:"driver_id,omitempty" json:"driverId,omitempty"` // Assigned driver, if any
	Available   bool      `bson:"available" json:"available"`
	CreatedAt   time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt   time.Time `bson:"updated_at" json:"updatedAt"`
}

// Driver represents a chauffeur who can be assigned to vehicles.
type Driver struct {
	ID            string    `bson:"id" json:"id"`
	UserID        string    `bson:"user_id,omitempty" json:"userId,omitempty"`
	Name          string    `bson:"name" json:"name"`
	LicenseNumber string    `bson:"license_number" json:"licenseNumber"`
	Languages     []string  `bson:"languages,omitempty" json:"languages,omitempty"`
	Rating        float64   `bson:"rating,omitempty" json:"rating,omitempty"`
	Available     bool      `bson:"available" json:"available"`
	CreatedAt     time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt     time.Time `bson:"updated_at" json:"updatedAt"`
}
