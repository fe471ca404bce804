package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/ukydev/car-maintenance/internal/models"
)

// recordRequest is the body of record create and update calls. Totals are
// always recomputed server side, so none are accepted.
type recordRequest struct {
	VehicleID     string        `json:"vehicle_id"`
	ServiceShopID string        `json:"service_shop_id"`
	Date          string        `json:"date"`
	Mileage       int           `json:"mileage"`
	Notes         string        `json:"notes"`
	Items         []itemRequest `json:"items"`
}

type itemRequest struct {
	Category  string  `json:"category"`
	Name      string  `json:"name"`
	Note      string  `json:"note"`
	Quantity  float64 `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
}

func (req recordRequest) toRecord() (models.MaintenanceRecord, error) {
	record := models.MaintenanceRecord{
		VehicleID:     req.VehicleID,
		ServiceShopID: req.ServiceShopID,
		Mileage:       req.Mileage,
		Notes:         req.Notes,
		Items:         make([]models.MaintenanceLineItem, 0, len(req.Items)),
	}
	if req.Date != "" {
		date, _, err := parseDate(req.Date)
		if err != nil {
			return record, err
		}
		record.Date = date
	}
	for _, item := range req.Items {
		record.Items = append(record.Items, models.MaintenanceLineItem{
			Category:  item.Category,
			Name:      item.Name,
			Note:      item.Note,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		})
	}
	return record, nil
}

func (h *MaintenanceHandler) decodeRecord(w http.ResponseWriter, r *http.Request) (models.MaintenanceRecord, error) {
	var req recordRequest
	if err := decodeJSON(w, r, &req); err != nil {
		return models.MaintenanceRecord{}, err
	}
	return req.toRecord()
}

// ListRecords handles GET /api/records.
func (h *MaintenanceHandler) ListRecords(w http.ResponseWriter, r *http.Request) {
	filter, err := parseFilter(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	records, err := h.svc.History(r.Context(), filter)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, records)
}

// RecentRecords handles GET /api/records/recent.
func (h *MaintenanceHandler) RecentRecords(w http.ResponseWriter, r *http.Request) {
	records, err := h.svc.RecentRecords(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, records)
}

// GetRecord handles GET /api/records/{id}.
func (h *MaintenanceHandler) GetRecord(w http.ResponseWriter, r *http.Request) {
	record, err := h.svc.GetRecord(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, record)
}

// RecordForm handles GET /api/records/{id}/form.
func (h *MaintenanceHandler) RecordForm(w http.ResponseWriter, r *http.Request) {
	form, err := h.svc.RecordForm(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, form)
}

// CreateRecord handles POST /api/records.
func (h *MaintenanceHandler) CreateRecord(w http.ResponseWriter, r *http.Request) {
	record, err := h.decodeRecord(w, r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	created, err := h.svc.CreateRecord(r.Context(), record)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// UpdateRecord handles PUT /api/records/{id}.
func (h *MaintenanceHandler) UpdateRecord(w http.ResponseWriter, r *http.Request) {
	record, err := h.decodeRecord(w, r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	updated, err := h.svc.UpdateRecord(r.Context(), chi.URLParam(r, "id"), record)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// DeleteRecord handles DELETE /api/records/{id}.
func (h *MaintenanceHandler) DeleteRecord(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteRecord(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.fail(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
