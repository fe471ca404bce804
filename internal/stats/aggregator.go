// Package stats derives dashboard figures from an in-memory record snapshot.
// Every function is pure and safe to call concurrently.
package stats

import (
	"fmt"
	"time"

	"github.com/samber/lo"
	"github.com/ukydev/car-maintenance/internal/catalog"
	"github.com/ukydev/car-maintenance/internal/models"
)

// TotalCost sums the total amount of every record.
func TotalCost(records []models.MaintenanceRecord) float64 {
	return lo.SumBy(records, func(r models.MaintenanceRecord) float64 {
		return r.TotalAmount
	})
}

// AvgCost is TotalCost divided by the record count, or 0 for no records.
func AvgCost(records []models.MaintenanceRecord) float64 {
	if len(records) == 0 {
		return 0
	}
	return TotalCost(records) / float64(len(records))
}

// MonthKey formats the local calendar month of t as "YYYY-MM".
func MonthKey(t time.Time) string {
	local := t.Local()
	return fmt.Sprintf("%04d-%02d", local.Year(), int(local.Month()))
}

// Monthly groups record counts and amounts by local calendar month.
func Monthly(records []models.MaintenanceRecord) map[string]models.MonthlyStats {
	out := make(map[string]models.MonthlyStats)
	for _, r := range records {
		key := MonthKey(r.Date)
		s := out[key]
		s.Count++
		s.Amount += r.TotalAmount
		out[key] = s
	}
	return out
}

// ByCategory groups every line item by its catalog category.
func ByCategory(records []models.MaintenanceRecord) map[string]models.CategoryStats {
	out := make(map[string]models.CategoryStats)
	for _, r := range records {
		for _, item := range r.Items {
			key := catalog.LookupCategory(item.Name)
			s := out[key]
			s.Count++
			s.Amount += item.TotalPrice
			out[key] = s
		}
	}
	return out
}

// Compute builds the full statistics view for a record set.
func Compute(records []models.MaintenanceRecord, vehicleCount int) models.Statistics {
	return models.Statistics{
		TotalVehicles: vehicleCount,
		TotalRecords:  len(records),
		TotalCost:     TotalCost(records),
		AvgCost:       AvgCost(records),
		MonthlyStats:  Monthly(records),
		CategoryStats: ByCategory(records),
	}
}
