package models

import (
	"time"

	"github.com/samber/lo"
)

// MaintenanceLineItem is one serviced item inside a maintenance record.
type MaintenanceLineItem struct {
	Category   string  `bson:"category" json:"category"`
	Name       string  `bson:"name" json:"name"`
	Note       string  `bson:"note,omitempty" json:"note,omitempty"`
	Quantity   float64 `bson:"quantity" json:"quantity"`
	UnitPrice  float64 `bson:"unit_price" json:"unit_price"`
	TotalPrice float64 `bson:"total_price" json:"total_price"`
}

// MaintenanceRecord represents a single visit to a service shop.
// It is always stored and replaced as a whole document.
type MaintenanceRecord struct {
	ID            string                `bson:"_id,omitempty" json:"id"`
	UserID        string                `bson:"user_id" json:"user_id"`
	VehicleID     string                `bson:"vehicle_id" json:"vehicle_id"`
	ServiceShopID string                `bson:"service_shop_id,omitempty" json:"service_shop_id,omitempty"`
	Date          time.Time             `bson:"date" json:"date"`
	Mileage       int                   `bson:"mileage" json:"mileage"` // in kilometers
	Items         []MaintenanceLineItem `bson:"items" json:"items"`
	TotalAmount   float64               `bson:"total_amount" json:"total_amount"`
	Notes         string                `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt     time.Time             `bson:"created_at" json:"created_at"`
	UpdatedAt     time.Time             `bson:"updated_at" json:"updated_at"`
}

// Recalculate derives every line total and the record total from quantities
// and unit prices, discarding whatever totals the caller supplied.
func (r *MaintenanceRecord) Recalculate() {
	for i := range r.Items {
		r.Items[i].TotalPrice = r.Items[i].Quantity * r.Items[i].UnitPrice
	}
	r.TotalAmount = lo.SumBy(r.Items, func(item MaintenanceLineItem) float64 {
		return item.TotalPrice
	})
}

// MaintenanceFilter narrows a maintenance record listing.
// Zero values mean "no constraint".
type MaintenanceFilter struct {
	VehicleID string
	From      time.Time
	To        time.Time
	Limit     int
}
