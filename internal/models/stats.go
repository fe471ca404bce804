package models

// CategoryStats accumulates line items that resolve to one catalog category.
type CategoryStats struct {
	Count  int     `json:"count"`
	Amount float64 `json:"amount"`
}

// MonthlyStats accumulates records that fall in one calendar month.
type MonthlyStats struct {
	Count  int     `json:"count"`
	Amount float64 `json:"amount"`
}

// Statistics is the dashboard summary for one identity. Never persisted.
type Statistics struct {
	TotalVehicles int                      `json:"total_vehicles"`
	TotalRecords  int                      `json:"total_records"`
	TotalCost     float64                  `json:"total_cost"`
	AvgCost       float64                  `json:"avg_cost"`
	MonthlyStats  map[string]MonthlyStats  `json:"monthly_stats"`  // keyed by "YYYY-MM"
	CategoryStats map[string]CategoryStats `json:"category_stats"` // keyed by category key
}
