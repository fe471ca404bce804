package db

import (
	"context"

	"github.com/ukydev/car-maintenance/internal/models"
)

// Every method is scoped to the owning identity. Entities that exist but
// belong to another identity are reported as models.ErrNotFound.

// VehicleCollection defines the interface for vehicle data operations.
type VehicleCollection interface {
	InsertVehicle(ctx context.Context, vehicle models.Vehicle) (*models.Vehicle, error)
	FindVehicles(ctx context.Context, userID string) ([]models.Vehicle, error)
	FindVehicleByID(ctx context.Context, userID, id string) (*models.Vehicle, error)
	UpdateVehicle(ctx context.Context, userID, id string, vehicle models.Vehicle) (*models.Vehicle, error)
	DeleteVehicle(ctx context.Context, userID, id string) error
}

// ServiceShopCollection defines the interface for service shop data operations.
type ServiceShopCollection interface {
	InsertServiceShop(ctx context.Context, shop models.ServiceShop) (*models.ServiceShop, error)
	FindServiceShops(ctx context.Context, userID string) ([]models.ServiceShop, error)
	FindServiceShopByID(ctx context.Context, userID, id string) (*models.ServiceShop, error)
	UpdateServiceShop(ctx context.Context, userID, id string, shop models.ServiceShop) (*models.ServiceShop, error)
	DeleteServiceShop(ctx context.Context, userID, id string) error
}

// MaintenanceCollection defines the interface for maintenance record operations.
// Records are only ever replaced as a whole.
type MaintenanceCollection interface {
	InsertMaintenance(ctx context.Context, record models.MaintenanceRecord) (*models.MaintenanceRecord, error)
	FindMaintenance(ctx context.Context, userID string, filter models.MaintenanceFilter) ([]models.MaintenanceRecord, error)
	FindMaintenanceByID(ctx context.Context, userID, id string) (*models.MaintenanceRecord, error)
	ReplaceMaintenance(ctx context.Context, userID, id string, record models.MaintenanceRecord) (*models.MaintenanceRecord, error)
	DeleteMaintenance(ctx context.Context, userID, id string) error
}

// Store is the record store used by the service layer. Inserts keep a
// non-empty ID and CreatedAt so that deleted entities can be restored.
type Store interface {
	VehicleCollection
	ServiceShopCollection
	MaintenanceCollection
}
