package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
	"github.com/ukydev/car-maintenance/internal/models"
	"github.com/ukydev/car-maintenance/internal/schedule"
	"github.com/ukydev/car-maintenance/internal/service"
)

// MaintenanceService is the application layer behind the maintenance routes.
type MaintenanceService interface {
	ListVehicles(ctx context.Context) ([]models.Vehicle, error)
	CreateVehicle(ctx context.Context, vehicle models.Vehicle) (*models.Vehicle, error)
	UpdateVehicle(ctx context.Context, id string, vehicle models.Vehicle) (*models.Vehicle, error)
	DeleteVehicle(ctx context.Context, id string) error

	ListServiceShops(ctx context.Context) ([]models.ServiceShop, error)
	CreateServiceShop(ctx context.Context, shop models.ServiceShop) (*models.ServiceShop, error)
	UpdateServiceShop(ctx context.Context, id string, shop models.ServiceShop) (*models.ServiceShop, error)
	DeleteServiceShop(ctx context.Context, id string) error

	History(ctx context.Context, filter models.MaintenanceFilter) ([]models.MaintenanceRecord, error)
	RecentRecords(ctx context.Context) ([]models.MaintenanceRecord, error)
	GetRecord(ctx context.Context, id string) (*models.MaintenanceRecord, error)
	CreateRecord(ctx context.Context, record models.MaintenanceRecord) (*models.MaintenanceRecord, error)
	UpdateRecord(ctx context.Context, id string, record models.MaintenanceRecord) (*models.MaintenanceRecord, error)
	DeleteRecord(ctx context.Context, id string) error
	RecordForm(ctx context.Context, id string) (*service.RecordForm, error)

	Statistics(ctx context.Context) (models.Statistics, error)
	Schedule(ctx context.Context, vehicleID string) (schedule.Summary, error)
}

// MaintenanceHandler serves vehicles, service shops, records and the views
// derived from them.
type MaintenanceHandler struct {
	svc    MaintenanceService
	logger logrus.FieldLogger
}

// NewMaintenanceHandler creates a new maintenance handler
func NewMaintenanceHandler(svc MaintenanceService, logger logrus.FieldLogger) *MaintenanceHandler {
	return &MaintenanceHandler{svc: svc, logger: logger}
}

func (h *MaintenanceHandler) fail(w http.ResponseWriter, r *http.Request, err error) {
	writeServiceError(w, r, h.logger, err)
}

// ListVehicles handles GET /api/vehicles.
func (h *MaintenanceHandler) ListVehicles(w http.ResponseWriter, r *http.Request) {
	vehicles, err := h.svc.ListVehicles(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, vehicles)
}

// CreateVehicle handles POST /api/vehicles.
func (h *MaintenanceHandler) CreateVehicle(w http.ResponseWriter, r *http.Request) {
	var vehicle models.Vehicle
	if err := decodeJSON(w, r, &vehicle); err != nil {
		h.fail(w, r, err)
		return
	}
	created, err := h.svc.CreateVehicle(r.Context(), vehicle)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// UpdateVehicle handles PUT /api/vehicles/{id}.
func (h *MaintenanceHandler) UpdateVehicle(w http.ResponseWriter, r *http.Request) {
	var vehicle models.Vehicle
	if err := decodeJSON(w, r, &vehicle); err != nil {
		h.fail(w, r, err)
		return
	}
	updated, err := h.svc.UpdateVehicle(r.Context(), chi.URLParam(r, "id"), vehicle)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// DeleteVehicle handles DELETE /api/vehicles/{id}. The vehicle's records go with it.
func (h *MaintenanceHandler) DeleteVehicle(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteVehicle(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.fail(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// VehicleSchedule handles GET /api/vehicles/{id}/schedule.
func (h *MaintenanceHandler) VehicleSchedule(w http.ResponseWriter, r *http.Request) {
	summary, err := h.svc.Schedule(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

// ListServiceShops handles GET /api/shops.
func (h *MaintenanceHandler) ListServiceShops(w http.ResponseWriter, r *http.Request) {
	shops, err := h.svc.ListServiceShops(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, shops)
}

// CreateServiceShop handles POST /api/shops.
func (h *MaintenanceHandler) CreateServiceShop(w http.ResponseWriter, r *http.Request) {
	var shop models.ServiceShop
	if err := decodeJSON(w, r, &shop); err != nil {
		h.fail(w, r, err)
		return
	}
	created, err := h.svc.CreateServiceShop(r.Context(), shop)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// UpdateServiceShop handles PUT /api/shops/{id}.
func (h *MaintenanceHandler) UpdateServiceShop(w http.ResponseWriter, r *http.Request) {
	var shop models.ServiceShop
	if err := decodeJSON(w, r, &shop); err != nil {
		h.fail(w, r, err)
		return
	}
	updated, err := h.svc.UpdateServiceShop(r.Context(), chi.URLParam(r, "id"), shop)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// DeleteServiceShop handles DELETE /api/shops/{id}.
func (h *MaintenanceHandler) DeleteServiceShop(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteServiceShop(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.fail(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Statistics handles GET /api/stats.
func (h *MaintenanceHandler) Statistics(w http.ResponseWriter, r *http.Request) {
	statistics, err := h.svc.Statistics(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, statistics)
}
