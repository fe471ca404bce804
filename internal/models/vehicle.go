package models

import "time"

// Vehicle represents a car owned by one identity.
type Vehicle struct {
	ID           string    `bson:"_id,omitempty" json:"id"`
	UserID       string    `bson:"user_id" json:"user_id"`
	Nickname     string    `bson:"nickname" json:"nickname"`
	LicensePlate string    `bson:"license_plate" json:"license_plate"`
	Brand        string    `bson:"brand,omitempty" json:"brand,omitempty"`
	Model        string    `bson:"model,omitempty" json:"model,omitempty"`
	Year         *int      `bson:"year,omitempty" json:"year,omitempty"`
	CreatedAt    time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time `bson:"updated_at" json:"updated_at"`
}
