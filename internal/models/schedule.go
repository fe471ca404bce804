package models

import "time"

// Status is the urgency tier of a maintenance item.
type Status string

const (
	StatusNormal  Status = "normal"
	StatusDueSoon Status = "due_soon"
	StatusOverdue Status = "overdue"
)

// ScheduleSummaryEntry is the derived due status of one item on one vehicle.
type ScheduleSummaryEntry struct {
	ItemName            string    `json:"item_name"`
	Category            string    `json:"category"`
	LastMileage         int       `json:"last_mileage"`
	LastDate            time.Time `json:"last_date"`
	IntervalKm          int       `json:"interval_km"`
	NextDueMileage      int       `json:"next_due_mileage"`
	MileageSinceService int       `json:"mileage_since_service"` // negative when data is inconsistent
	Status              Status    `json:"status"`
}
