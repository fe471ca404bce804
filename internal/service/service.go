// Package service orchestrates the record store, the pure aggregation
// components and reminder delivery on behalf of the current identity.
package service

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
	"github.com/ukydev/car-maintenance/internal/catalog"
	"github.com/ukydev/car-maintenance/internal/db"
	"github.com/ukydev/car-maintenance/internal/models"
	"github.com/ukydev/car-maintenance/internal/notify"
	"github.com/ukydev/car-maintenance/internal/schedule"
	"github.com/ukydev/car-maintenance/internal/stats"
)

// RecentLimit is how many records RecentRecords returns.
const RecentLimit = 10

// IdentityProvider reports the identity a request acts for.
type IdentityProvider interface {
	CurrentIdentity(ctx context.Context) (string, bool)
}

// Service is the application layer used by the HTTP handlers.
type Service struct {
	store     db.Store
	identity  IdentityProvider
	engine    *schedule.Engine
	publisher notify.Publisher
	logger    logrus.FieldLogger
}

// New wires a Service. A nil engine uses the default interval policy and a
// nil publisher drops reminders.
func New(store db.Store, identity IdentityProvider, engine *schedule.Engine, publisher notify.Publisher, logger logrus.FieldLogger) *Service {
	if engine == nil {
		engine = schedule.New(nil)
	}
	if publisher == nil {
		publisher = notify.NopPublisher{}
	}
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &Service{
		store:     store,
		identity:  identity,
		engine:    engine,
		publisher: publisher,
		logger:    logger,
	}
}

func (s *Service) requireIdentity(ctx context.Context) (string, error) {
	userID, ok := s.identity.CurrentIdentity(ctx)
	if !ok {
		return "", models.ErrNotAuthenticated
	}
	return userID, nil
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", models.ErrValidation, fmt.Sprintf(format, args...))
}

// ListVehicles returns the identity's vehicles. Without an identity the list is empty.
func (s *Service) ListVehicles(ctx context.Context) ([]models.Vehicle, error) {
	userID, ok := s.identity.CurrentIdentity(ctx)
	if !ok {
		return []models.Vehicle{}, nil
	}
	return s.store.FindVehicles(ctx, userID)
}

func validateVehicle(v *models.Vehicle) error {
	v.Nickname = strings.TrimSpace(v.Nickname)
	v.LicensePlate = strings.TrimSpace(v.LicensePlate)
	if v.Nickname == "" {
		return invalid("vehicle nickname is required")
	}
	if v.LicensePlate == "" {
		return invalid("vehicle license plate is required")
	}
	return nil
}

// CreateVehicle stores a new vehicle for the identity.
func (s *Service) CreateVehicle(ctx context.Context, vehicle models.Vehicle) (*models.Vehicle, error) {
	userID, err := s.requireIdentity(ctx)
	if err != nil {
		return nil, err
	}
	if err := validateVehicle(&vehicle); err != nil {
		return nil, err
	}
	vehicle.ID = ""
	vehicle.UserID = userID
	vehicle.CreatedAt = time.Time{}
	created, err := s.store.InsertVehicle(ctx, vehicle)
	if err != nil {
		return nil, fmt.Errorf("insert vehicle: %w", err)
	}
	s.logger.WithFields(logrus.Fields{"user_id": userID, "vehicle_id": created.ID}).Info("vehicle created")
	return created, nil
}

// UpdateVehicle changes an existing vehicle.
func (s *Service) UpdateVehicle(ctx context.Context, id string, vehicle models.Vehicle) (*models.Vehicle, error) {
	userID, err := s.requireIdentity(ctx)
	if err != nil {
		return nil, err
	}
	if err := validateVehicle(&vehicle); err != nil {
		return nil, err
	}
	return s.store.UpdateVehicle(ctx, userID, id, vehicle)
}

// DeleteVehicle removes a vehicle together with its maintenance records.
// Records are deleted one by one before the vehicle; if any step fails the
// records already deleted are inserted again.
func (s *Service) DeleteVehicle(ctx context.Context, id string) error {
	userID, err := s.requireIdentity(ctx)
	if err != nil {
		return err
	}
	if _, err := s.store.FindVehicleByID(ctx, userID, id); err != nil {
		return err
	}
	records, err := s.store.FindMaintenance(ctx, userID, models.MaintenanceFilter{VehicleID: id})
	if err != nil {
		return fmt.Errorf("list records of vehicle %s: %w", id, err)
	}

	deleted := make([]models.MaintenanceRecord, 0, len(records))
	for _, r := range records {
		if err := s.store.DeleteMaintenance(ctx, userID, r.ID); err != nil {
			s.restore(ctx, userID, deleted)
			return fmt.Errorf("delete record %s: %w", r.ID, err)
		}
		deleted = append(deleted, r)
	}
	if err := s.store.DeleteVehicle(ctx, userID, id); err != nil {
		s.restore(ctx, userID, deleted)
		return fmt.Errorf("delete vehicle %s: %w", id, err)
	}

	s.logger.WithFields(logrus.Fields{
		"user_id":         userID,
		"vehicle_id":      id,
		"deleted_records": len(deleted),
	}).Info("vehicle deleted")
	return nil
}

// restore re-inserts records removed by an aborted cascading delete.
func (s *Service) restore(ctx context.Context, userID string, records []models.MaintenanceRecord) {
	ctx = context.WithoutCancel(ctx)
	for _, r := range records {
		if _, err := s.store.InsertMaintenance(ctx, r); err != nil {
			s.logger.WithError(err).WithFields(logrus.Fields{
				"user_id":   userID,
				"record_id": r.ID,
			}).Error("failed to restore maintenance record")
		}
	}
}

// ListServiceShops returns the identity's shops. Without an identity the list is empty.
func (s *Service) ListServiceShops(ctx context.Context) ([]models.ServiceShop, error) {
	userID, ok := s.identity.CurrentIdentity(ctx)
	if !ok {
		return []models.ServiceShop{}, nil
	}
	return s.store.FindServiceShops(ctx, userID)
}

func validateShop(shop *models.ServiceShop) error {
	shop.Name = strings.TrimSpace(shop.Name)
	if shop.Name == "" {
		return invalid("service shop name is required")
	}
	return nil
}

// CreateServiceShop stores a new service shop for the identity.
func (s *Service) CreateServiceShop(ctx context.Context, shop models.ServiceShop) (*models.ServiceShop, error) {
	userID, err := s.requireIdentity(ctx)
	if err != nil {
		return nil, err
	}
	if err := validateShop(&shop); err != nil {
		return nil, err
	}
	shop.ID = ""
	shop.UserID = userID
	shop.CreatedAt = time.Time{}
	created, err := s.store.InsertServiceShop(ctx, shop)
	if err != nil {
		return nil, fmt.Errorf("insert service shop: %w", err)
	}
	return created, nil
}

// UpdateServiceShop changes an existing service shop.
func (s *Service) UpdateServiceShop(ctx context.Context, id string, shop models.ServiceShop) (*models.ServiceShop, error) {
	userID, err := s.requireIdentity(ctx)
	if err != nil {
		return nil, err
	}
	if err := validateShop(&shop); err != nil {
		return nil, err
	}
	return s.store.UpdateServiceShop(ctx, userID, id, shop)
}

// DeleteServiceShop removes a service shop. Records keep their reference.
func (s *Service) DeleteServiceShop(ctx context.Context, id string) error {
	userID, err := s.requireIdentity(ctx)
	if err != nil {
		return err
	}
	return s.store.DeleteServiceShop(ctx, userID, id)
}

// History lists maintenance records, latest first.
func (s *Service) History(ctx context.Context, filter models.MaintenanceFilter) ([]models.MaintenanceRecord, error) {
	userID, ok := s.identity.CurrentIdentity(ctx)
	if !ok {
		return []models.MaintenanceRecord{}, nil
	}
	if !filter.From.IsZero() && !filter.To.IsZero() && filter.From.After(filter.To) {
		return nil, invalid("from is after to")
	}
	return s.store.FindMaintenance(ctx, userID, filter)
}

// RecentRecords returns the newest records for the dashboard.
func (s *Service) RecentRecords(ctx context.Context) ([]models.MaintenanceRecord, error) {
	return s.History(ctx, models.MaintenanceFilter{Limit: RecentLimit})
}

// GetRecord returns one record. Without an identity nothing is visible.
func (s *Service) GetRecord(ctx context.Context, id string) (*models.MaintenanceRecord, error) {
	userID, ok := s.identity.CurrentIdentity(ctx)
	if !ok {
		return nil, fmt.Errorf("maintenance record %s: %w", id, models.ErrNotFound)
	}
	return s.store.FindMaintenanceByID(ctx, userID, id)
}

// prepareRecord normalises and validates a record before it is stored.
// Unnamed items and items without a positive quantity are dropped.
func (s *Service) prepareRecord(ctx context.Context, userID string, record *models.MaintenanceRecord) error {
	if record.VehicleID == "" {
		return invalid("vehicle is required")
	}
	if record.Date.IsZero() {
		return invalid("date is required")
	}
	if record.Mileage < 0 {
		return invalid("mileage must not be negative")
	}

	record.Items = lo.FilterMap(record.Items, func(item models.MaintenanceLineItem, _ int) (models.MaintenanceLineItem, bool) {
		item.Name = strings.TrimSpace(item.Name)
		if item.Name == "" || !(item.Quantity > 0) {
			return item, false
		}
		if item.Category == "" {
			item.Category = catalog.LookupCategory(item.Name)
		}
		return item, true
	})
	if len(record.Items) == 0 {
		return invalid("at least one maintenance item is required")
	}
	for _, item := range record.Items {
		if !(item.UnitPrice >= 0) || math.IsInf(item.UnitPrice, 0) || math.IsInf(item.Quantity, 0) {
			return invalid("item %q has an invalid price or quantity", item.Name)
		}
	}

	if _, err := s.store.FindVehicleByID(ctx, userID, record.VehicleID); err != nil {
		return fmt.Errorf("vehicle %s: %w", record.VehicleID, err)
	}
	if record.ServiceShopID != "" {
		if _, err := s.store.FindServiceShopByID(ctx, userID, record.ServiceShopID); err != nil {
			return fmt.Errorf("service shop %s: %w", record.ServiceShopID, err)
		}
	}

	record.UserID = userID
	record.Recalculate()
	return nil
}

// CreateRecord stores a new maintenance record and sends reminders for the
// vehicle's items that need attention.
func (s *Service) CreateRecord(ctx context.Context, record models.MaintenanceRecord) (*models.MaintenanceRecord, error) {
	userID, err := s.requireIdentity(ctx)
	if err != nil {
		return nil, err
	}
	record.ID = ""
	record.CreatedAt = time.Time{}
	if err := s.prepareRecord(ctx, userID, &record); err != nil {
		return nil, err
	}
	created, err := s.store.InsertMaintenance(ctx, record)
	if err != nil {
		return nil, fmt.Errorf("insert maintenance record: %w", err)
	}
	s.logger.WithFields(logrus.Fields{
		"user_id":    userID,
		"record_id":  created.ID,
		"vehicle_id": created.VehicleID,
		"total":      created.TotalAmount,
	}).Info("maintenance record created")
	s.publishReminders(ctx, userID, created.VehicleID)
	return created, nil
}

// UpdateRecord replaces an existing record as a whole.
func (s *Service) UpdateRecord(ctx context.Context, id string, record models.MaintenanceRecord) (*models.MaintenanceRecord, error) {
	userID, err := s.requireIdentity(ctx)
	if err != nil {
		return nil, err
	}
	existing, err := s.store.FindMaintenanceByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if err := s.prepareRecord(ctx, userID, &record); err != nil {
		return nil, err
	}
	record.ID = id
	record.CreatedAt = existing.CreatedAt
	replaced, err := s.store.ReplaceMaintenance(ctx, userID, id, record)
	if err != nil {
		return nil, err
	}
	s.publishReminders(ctx, userID, replaced.VehicleID)
	return replaced, nil
}

// DeleteRecord removes a maintenance record.
func (s *Service) DeleteRecord(ctx context.Context, id string) error {
	userID, err := s.requireIdentity(ctx)
	if err != nil {
		return err
	}
	return s.store.DeleteMaintenance(ctx, userID, id)
}

// Statistics aggregates every record of the identity.
func (s *Service) Statistics(ctx context.Context) (models.Statistics, error) {
	userID, ok := s.identity.CurrentIdentity(ctx)
	if !ok {
		return stats.Compute(nil, 0), nil
	}
	vehicles, err := s.store.FindVehicles(ctx, userID)
	if err != nil {
		return models.Statistics{}, fmt.Errorf("list vehicles: %w", err)
	}
	records, err := s.store.FindMaintenance(ctx, userID, models.MaintenanceFilter{})
	if err != nil {
		return models.Statistics{}, fmt.Errorf("list records: %w", err)
	}
	return stats.Compute(records, len(vehicles)), nil
}

// Schedule summarises the due status of every item serviced on a vehicle.
func (s *Service) Schedule(ctx context.Context, vehicleID string) (schedule.Summary, error) {
	userID, ok := s.identity.CurrentIdentity(ctx)
	if !ok {
		return s.engine.Summarize(vehicleID, nil), nil
	}
	if _, err := s.store.FindVehicleByID(ctx, userID, vehicleID); err != nil {
		return schedule.Summary{}, err
	}
	return s.summarize(ctx, userID, vehicleID)
}

func (s *Service) summarize(ctx context.Context, userID, vehicleID string) (schedule.Summary, error) {
	records, err := s.store.FindMaintenance(ctx, userID, models.MaintenanceFilter{VehicleID: vehicleID})
	if err != nil {
		return schedule.Summary{}, fmt.Errorf("list records of vehicle %s: %w", vehicleID, err)
	}
	return s.engine.Summarize(vehicleID, records), nil
}

// publishReminders is best effort: failures are logged and swallowed.
func (s *Service) publishReminders(ctx context.Context, userID, vehicleID string) {
	log := s.logger.WithFields(logrus.Fields{"user_id": userID, "vehicle_id": vehicleID})

	summary, err := s.summarize(ctx, userID, vehicleID)
	if err != nil {
		log.WithError(err).Warn("failed to compute schedule for reminders")
		return
	}
	pending := lo.Filter(summary.Entries, func(e models.ScheduleSummaryEntry, _ int) bool {
		return e.Status != models.StatusNormal
	})
	if len(pending) == 0 {
		return
	}
	if err := s.publisher.Publish(ctx, vehicleID, pending); err != nil {
		log.WithError(err).Warn("failed to publish maintenance reminders")
		return
	}
	log.WithField("items", len(pending)).Info("maintenance reminders published")
}
