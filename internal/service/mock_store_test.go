package service

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/ukydev/car-maintenance/internal/models"
)

// mockStore is a testify mock of db.Store.
type mockStore struct {
	mock.Mock
}

func (m *mockStore) InsertVehicle(ctx context.Context, vehicle models.Vehicle) (*models.Vehicle, error) {
	args := m.Called(ctx, vehicle)
	v, _ := args.Get(0).(*models.Vehicle)
	return v, args.Error(1)
}

func (m *mockStore) FindVehicles(ctx context.Context, userID string) ([]models.Vehicle, error) {
	args := m.Called(ctx, userID)
	v, _ := args.Get(0).([]models.Vehicle)
	return v, args.Error(1)
}

func (m *mockStore) FindVehicleByID(ctx context.Context, userID, id string) (*models.Vehicle, error) {
	args := m.Called(ctx, userID, id)
	v, _ := args.Get(0).(*models.Vehicle)
	return v, args.Error(1)
}

func (m *mockStore) UpdateVehicle(ctx context.Context, userID, id string, vehicle models.Vehicle) (*models.Vehicle, error) {
	args := m.Called(ctx, userID, id, vehicle)
	v, _ := args.Get(0).(*models.Vehicle)
	return v, args.Error(1)
}

func (m *mockStore) DeleteVehicle(ctx context.Context, userID, id string) error {
	return m.Called(ctx, userID, id).Error(0)
}

func (m *mockStore) InsertServiceShop(ctx context.Context, shop models.ServiceShop) (*models.ServiceShop, error) {
	args := m.Called(ctx, shop)
	s, _ := args.Get(0).(*models.ServiceShop)
	return s, args.Error(1)
}

func (m *mockStore) FindServiceShops(ctx context.Context, userID string) ([]models.ServiceShop, error) {
	args := m.Called(ctx, userID)
	s, _ := args.Get(0).([]models.ServiceShop)
	return s, args.Error(1)
}

func (m *mockStore) FindServiceShopByID(ctx context.Context, userID, id string) (*models.ServiceShop, error) {
	args := m.Called(ctx, userID, id)
	s, _ := args.Get(0).(*models.ServiceShop)
	return s, args.Error(1)
}

func (m *mockStore) UpdateServiceShop(ctx context.Context, userID, id string, shop models.ServiceShop) (*models.ServiceShop, error) {
	args := m.Called(ctx, userID, id, shop)
	s, _ := args.Get(0).(*models.ServiceShop)
	return s, args.Error(1)
}

func (m *mockStore) DeleteServiceShop(ctx context.Context, userID, id string) error {
	return m.Called(ctx, userID, id).Error(0)
}

func (m *mockStore) InsertMaintenance(ctx context.Context, record models.MaintenanceRecord) (*models.MaintenanceRecord, error) {
	args := m.Called(ctx, record)
	r, _ := args.Get(0).(*models.MaintenanceRecord)
	return r, args.Error(1)
}

func (m *mockStore) FindMaintenance(ctx context.Context, userID string, filter models.MaintenanceFilter) ([]models.MaintenanceRecord, error) {
	args := m.Called(ctx, userID, filter)
	r, _ := args.Get(0).([]models.MaintenanceRecord)
	return r, args.Error(1)
}

func (m *mockStore) FindMaintenanceByID(ctx context.Context, userID, id string) (*models.MaintenanceRecord, error) {
	args := m.Called(ctx, userID, id)
	r, _ := args.Get(0).(*models.MaintenanceRecord)
	return r, args.Error(1)
}

func (m *mockStore) ReplaceMaintenance(ctx context.Context, userID, id string, record models.MaintenanceRecord) (*models.MaintenanceRecord, error) {
	args := m.Called(ctx, userID, id, record)
	r, _ := args.Get(0).(*models.MaintenanceRecord)
	return r, args.Error(1)
}

func (m *mockStore) DeleteMaintenance(ctx context.Context, userID, id string) error {
	return m.Called(ctx, userID, id).Error(0)
}

// mockPublisher is a testify mock of notify.Publisher.
type mockPublisher struct {
	mock.Mock
}

func (m *mockPublisher) Publish(ctx context.Context, vehicleID string, entries []models.ScheduleSummaryEntry) error {
	return m.Called(ctx, vehicleID, entries).Error(0)
}
