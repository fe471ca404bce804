package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/ukydev/car-maintenance/internal/catalog"
	"github.com/ukydev/car-maintenance/internal/models"
	"pgregory.net/rapid"
)

var itemNames = []string{"機油", "機油芯", "雨刷片", "煞車來令片", "工資", "電瓶", "不存在項目", "輪胎更換"}

func genRecord() *rapid.Generator[models.MaintenanceRecord] {
	return rapid.Custom(func(t *rapid.T) models.MaintenanceRecord {
		items := rapid.SliceOfN(rapid.Custom(func(t *rapid.T) models.MaintenanceLineItem {
			return models.MaintenanceLineItem{
				Name:      rapid.SampledFrom(itemNames).Draw(t, "name"),
				Quantity:  float64(rapid.IntRange(1, 10).Draw(t, "qty")),
				UnitPrice: float64(rapid.IntRange(0, 50000).Draw(t, "price")),
			}
		}), 1, 5).Draw(t, "items")

		rec := models.MaintenanceRecord{
			Date:    time.Date(rapid.IntRange(2020, 2025).Draw(t, "year"), time.Month(rapid.IntRange(1, 12).Draw(t, "month")), rapid.IntRange(1, 28).Draw(t, "day"), 12, 0, 0, 0, time.Local),
			Mileage: rapid.IntRange(0, 300000).Draw(t, "mileage"),
			Items:   items,
		}
		rec.Recalculate()
		return rec
	})
}

func record(date time.Time, items ...models.MaintenanceLineItem) models.MaintenanceRecord {
	rec := models.MaintenanceRecord{Date: date, Items: items}
	rec.Recalculate()
	return rec
}

func TestAvgCost_Empty(t *testing.T) {
	assert.Equal(t, 0.0, AvgCost(nil))
	assert.Equal(t, 0.0, TotalCost(nil))
}

func TestCompute(t *testing.T) {
	jan := time.Date(2024, time.January, 15, 10, 0, 0, 0, time.Local)
	feb := time.Date(2024, time.February, 3, 10, 0, 0, 0, time.Local)
	records := []models.MaintenanceRecord{
		record(jan, models.MaintenanceLineItem{Name: "機油", Quantity: 1, UnitPrice: 1000}),
		record(jan, models.MaintenanceLineItem{Name: "雨刷片", Quantity: 2, UnitPrice: 300}, models.MaintenanceLineItem{Name: "不存在項目", Quantity: 1, UnitPrice: 50}),
		record(feb, models.MaintenanceLineItem{Name: "機油芯", Quantity: 1, UnitPrice: 350}),
	}

	got := Compute(records, 2)

	assert.Equal(t, 2, got.TotalVehicles)
	assert.Equal(t, 3, got.TotalRecords)
	assert.Equal(t, 2000.0, got.TotalCost)
	assert.InDelta(t, 666.666, got.AvgCost, 0.001)
	assert.Equal(t, map[string]models.MonthlyStats{
		"2024-01": {Count: 2, Amount: 1650},
		"2024-02": {Count: 1, Amount: 350},
	}, got.MonthlyStats)
	assert.Equal(t, map[string]models.CategoryStats{
		"engine":         {Count: 2, Amount: 1350},
		"body":           {Count: 1, Amount: 600},
		catalog.OtherKey: {Count: 1, Amount: 50},
	}, got.CategoryStats)
}

func TestMonthKey(t *testing.T) {
	assert.Equal(t, "2024-03", MonthKey(time.Date(2024, time.March, 31, 23, 59, 0, 0, time.Local)))
	assert.Equal(t, "0999-12", MonthKey(time.Date(999, time.December, 1, 0, 0, 0, 0, time.Local)))
}

func TestAvgCostProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		records := rapid.SliceOf(genRecord()).Draw(t, "records")
		want := 0.0
		if len(records) > 0 {
			want = TotalCost(records) / float64(len(records))
		}
		if AvgCost(records) != want {
			t.Fatalf("avg %v != %v", AvgCost(records), want)
		}
	})
}

func TestMonthlySumsToTotalProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		records := rapid.SliceOf(genRecord()).Draw(t, "records")

		var sum float64
		count := 0
		for _, m := range Monthly(records) {
			sum += m.Amount
			count += m.Count
		}
		if sum != TotalCost(records) {
			t.Fatalf("monthly sum %v != total %v", sum, TotalCost(records))
		}
		if count != len(records) {
			t.Fatalf("monthly count %d != %d", count, len(records))
		}
	})
}

func TestCategorySumsToLineTotalProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		records := rapid.SliceOf(genRecord()).Draw(t, "records")

		var lines float64
		lineCount := 0
		for _, r := range records {
			for _, item := range r.Items {
				lines += item.TotalPrice
				lineCount++
			}
		}

		var sum float64
		count := 0
		for _, c := range ByCategory(records) {
			sum += c.Amount
			count += c.Count
		}
		if sum != lines || count != lineCount {
			t.Fatalf("category totals %v/%d != line totals %v/%d", sum, count, lines, lineCount)
		}
	})
}

func TestComputeIsDeterministicProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		records := rapid.SliceOf(genRecord()).Draw(t, "records")
		a := Compute(records, 1)
		b := Compute(records, 1)
		if !assert.ObjectsAreEqual(a, b) {
			t.Fatalf("compute not deterministic: %+v vs %+v", a, b)
		}
	})
}
