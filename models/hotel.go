package models

import "time"

// Location describes where a hotel or tour is situated.
type Location struct {
	Address  string  `bson:"address,omitempty" json:"address,omitempty"`
	City     string  `bson:"city" json:"city"`
	District string  `bson:"district,omitempty" json:"district,omitempty"`
	Lat      float64 `bson:"lat,omitempty" json:"lat,omitempty"`
	Lng      float64 `bson:"lng,omitempty" json:"lng,omitempty"`
}

// Hotel represents a property listed on the platform.
type Hotel struct {
	ID          string    `bson:"id" json:"id"`
	OwnerID     string    `bson:"owner_id" json:"ownerId"`
	Name        string    `bson:"name" json:"name"`
	Description string    `bson:"description,omitempty" json:"description,omitempty"`
	Location    Location  `bson:"location" json:"location"`
	StarRating  int       `bson:"star_rating,omitempty" json:"starRating,omitempty"`
	Amenities   []string  `bson:"amenities,omitempty" json:"amenities,omitempty"`
	Approved    bool      `bson:"approved" json:"approved"`
	CreatedAt   time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt   time.Time `bson:"updated_at" json:"updatedAt"`
}

// Room represents a bookable room type within a hotel.
type Room struct {
	ID            string    `bson:"id" json:"id"`
	HotelID       string    `bson:"hotel_id" json:"hotelId"`
	Name          string    `bson:"name" json:"name"`
	Type          string    `bson:"type,omitempty" json:"type,omitempty"` // e.g. "double", "suite"
	PricePerNight float64   `bson:"price_per_night" json:"pricePerNight"`
	Currency      Currency  `bson:"currency" json:"currency"`
	MaxOccupancy  int       `bson:"max_occupancy" json:"maxOccupancy"`
	Amenities     []string  `bson:"amenities,omitempty" json:"amenities,omitempty"`
	Available     bool      `bson:"available" json:"available"`
	CreatedAt     time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt     time.Time `bson:"updated_at" json:"updatedAt"`
}
