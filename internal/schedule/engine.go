// Package schedule derives per-item due status from a vehicle's maintenance
// history. It performs no I/O and never fails; malformed input flows through
// to the output unchanged.
package schedule

import (
	"sort"
	"time"

	"github.com/ukydev/car-maintenance/internal/catalog"
	"github.com/ukydev/car-maintenance/internal/models"
)

const (
	dueSoonPercent = 80
	overduePercent = 100
)

// Summary is the schedule of one vehicle.
type Summary struct {
	VehicleID      string                        `json:"vehicle_id"`
	CurrentMileage int                           `json:"current_mileage"`
	Entries        []models.ScheduleSummaryEntry `json:"entries"`
}

// Engine computes schedule summaries against a fixed interval policy.
type Engine struct {
	policy map[string]int
}

// New creates an engine. A nil policy selects catalog.DefaultIntervalPolicy.
func New(policy map[string]int) *Engine {
	if policy == nil {
		policy = catalog.DefaultIntervalPolicy()
	}
	return &Engine{policy: policy}
}

// Interval returns the replacement interval for an item name.
func (e *Engine) Interval(name string) int {
	if km, ok := e.policy[name]; ok {
		return km
	}
	return catalog.DefaultIntervalKm
}

type occurrence struct {
	mileage int
	date    time.Time
}

// Summarize reports one entry per distinct item name serviced in records,
// sorted by item name. Records are expected to belong to vehicleID.
func (e *Engine) Summarize(vehicleID string, records []models.MaintenanceRecord) Summary {
	summary := Summary{VehicleID: vehicleID, Entries: []models.ScheduleSummaryEntry{}}
	if len(records) == 0 {
		return summary
	}

	current := CurrentMileage(records)
	summary.CurrentMileage = current

	latest := make(map[string]occurrence)
	for _, r := range records {
		for _, item := range r.Items {
			prev, seen := latest[item.Name]
			if !seen || r.Date.After(prev.date) {
				latest[item.Name] = occurrence{mileage: r.Mileage, date: r.Date}
			}
		}
	}

	for name, occ := range latest {
		interval := e.Interval(name)
		since := current - occ.mileage
		summary.Entries = append(summary.Entries, models.ScheduleSummaryEntry{
			ItemName:            name,
			Category:            catalog.LookupCategory(name),
			LastMileage:         occ.mileage,
			LastDate:            occ.date,
			IntervalKm:          interval,
			NextDueMileage:      occ.mileage + interval,
			MileageSinceService: since,
			Status:              Classify(since, interval),
		})
	}
	sort.Slice(summary.Entries, func(i, j int) bool {
		return summary.Entries[i].ItemName < summary.Entries[j].ItemName
	})
	return summary
}

// CurrentMileage is the mileage of the latest-dated record, 0 for none.
// Equal dates keep the record seen first.
func CurrentMileage(records []models.MaintenanceRecord) int {
	if len(records) == 0 {
		return 0
	}
	latest := records[0]
	for _, r := range records[1:] {
		if r.Date.After(latest.Date) {
			latest = r
		}
	}
	return latest.Mileage
}

// Classify maps elapsed mileage against an interval to an urgency tier:
// at least 100% of the interval is overdue, at least 80% is due soon.
// Non-positive intervals are always overdue.
func Classify(mileageSinceService, interval int) models.Status {
	if interval <= 0 {
		return models.StatusOverdue
	}
	// Compare percentages as integers so the tier boundaries are exact.
	elapsed := int64(mileageSinceService) * 100
	switch {
	case elapsed >= overduePercent*int64(interval):
		return models.StatusOverdue
	case elapsed >= dueSoonPercent*int64(interval):
		return models.StatusDueSoon
	default:
		return models.StatusNormal
	}
}
