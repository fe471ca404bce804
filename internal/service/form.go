package service

import (
	"context"

	"github.com/ukydev/car-maintenance/internal/catalog"
	"github.com/ukydev/car-maintenance/internal/models"
)

const formDateLayout = "2006-01-02"

// FormItem is one line of a record form with its catalog context resolved.
type FormItem struct {
	Category     string   `json:"category"`
	CategoryName string   `json:"category_name"`
	Name         string   `json:"name"`
	Note         string   `json:"note"`
	Quantity     float64  `json:"quantity"`
	UnitPrice    float64  `json:"unit_price"`
	TotalPrice   float64  `json:"total_price"`
	CommonNotes  []string `json:"common_notes"`
}

// RecordForm is the full edit state of an existing maintenance record.
type RecordForm struct {
	RecordID      string     `json:"record_id"`
	VehicleID     string     `json:"vehicle_id"`
	ServiceShopID string     `json:"service_shop_id"`
	Date          string     `json:"date"`
	Mileage       int        `json:"mileage"`
	Notes         string     `json:"notes"`
	Items         []FormItem `json:"items"`
	TotalAmount   float64    `json:"total_amount"`
}

// HydrateForm builds the edit form of record in one pass. The category of an
// item is resolved from its name; the stored category is only a fallback.
func HydrateForm(record models.MaintenanceRecord) RecordForm {
	form := RecordForm{
		RecordID:      record.ID,
		VehicleID:     record.VehicleID,
		ServiceShopID: record.ServiceShopID,
		Date:          record.Date.Local().Format(formDateLayout),
		Mileage:       record.Mileage,
		Notes:         record.Notes,
		Items:         make([]FormItem, 0, len(record.Items)),
	}
	for _, item := range record.Items {
		category := catalog.LookupCategory(item.Name)
		if category == catalog.OtherKey && item.Category != "" {
			category = item.Category
		}
		line := FormItem{
			Category:     category,
			CategoryName: catalog.CategoryName(category),
			Name:         item.Name,
			Note:         item.Note,
			Quantity:     item.Quantity,
			UnitPrice:    item.UnitPrice,
			TotalPrice:   item.Quantity * item.UnitPrice,
			CommonNotes:  catalog.LookupCommonNotes(item.Name),
		}
		form.TotalAmount += line.TotalPrice
		form.Items = append(form.Items, line)
	}
	return form
}

// RecordForm loads a record and hydrates its edit form.
func (s *Service) RecordForm(ctx context.Context, id string) (*RecordForm, error) {
	record, err := s.GetRecord(ctx, id)
	if err != nil {
		return nil, err
	}
	form := HydrateForm(*record)
	return &form, nil
}
