package models

import "time"

// Tour represents a guided tour offered on the platform.
type Tour struct {
	ID             string    `bson:"id" json:"id"`
	GuideID        string    `bson:"guide_id" json:"guideId"`
	Title          string    `bson:"title" json:"title"`
	Description    string    `bson:"description,omitempty" json:"description,omitempty"`
	Category       string    `bson:"category,omitempty" json:"category,omitempty"` // e.g. "wildlife", "cultural"
	DurationDays   int       `bson:"duration_days" json:"durationDays"`
	PricePerPerson float64   `bson:"price_per_person" json:"pricePerPerson"`
	Currency       Currency  `bson:"currency" json:"currency"`
	MaxGroupSize   int       `bson:"max_group_size,omitempty" json:"maxGroupSize,omitempty"`
	Locations      []string  `bson:"locations,omitempty" json:"locations,omitempty"`
	Active         bool      `bson:"active" json:"active"`
	CreatedAt      time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt      time.Time `bson:"updated_at" json:"updatedAt"`
}
