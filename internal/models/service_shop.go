package models

import "time"

// ServiceShop represents a garage where maintenance is performed.
type ServiceShop struct {
	ID        string    `bson:"_id,omitempty" json:"id"`
	UserID    string    `bson:"user_id" json:"user_id"`
	Name      string    `bson:"name" json:"name"`
	Address   string    `bson:"address,omitempty" json:"address,omitempty"`
	Phone     string    `bson:"phone,omitempty" json:"phone,omitempty"`
	Notes     string    `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
