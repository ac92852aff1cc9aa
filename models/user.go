package models

import "time"

// Role enumerates platform account roles.
type Role string

const (
	RoleTourist    Role = "tourist"
	RoleHotelOwner Role = "hotel_owner"
	RoleGuide      Role = "guide"
	RoleDriver     Role = "driver"
	RoleStaff      Role = "staff"
	RoleAdmin      Role = "admin"
)

// User represents a platform account (tourist, supplier staff, or admin).
type User struct {
	ID           string    `bson:"id" json:"id"`
	FirstName    string    `bson:"first_name" json:"firstName"`
	LastName     string    `bson:"last_name" json:"lastName"`
	Email        string    `bson:"email" json:"email"`
	Phone        string    `bson:"phone,omitempty" json:"phone,omitempty"`
	PasswordHash string    `bson:"password_hash" json:"-"`
	Role         Role      `bson:"role" json:"role"`
	// TokenHash stores the SHA-256 hash of the currently valid auth token.
	TokenHash string    `bson:"token_hash,omitempty" json:"-"`
	Active    bool      `bson:"active" json:"active"`
	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}
