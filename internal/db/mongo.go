package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ukydev/car-maintenance/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	VehiclesCollection     = "vehicles"
	ServiceShopsCollection = "service_shops"
	RecordsCollection      = "maintenance_records"
	UsersCollection        = "users"
)

// ConnectMongo connects to MongoDB and verifies the connection with a ping.
func ConnectMongo(ctx context.Context, uri string) (*mongo.Client, error) {
	if uri == "" {
		return nil, fmt.Errorf("mongo uri is empty")
	}
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("mongo.Connect error: %w", err)
	}
	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("mongo.Ping error: %w", err)
	}
	return client, nil
}

// MongoStore implements Store on top of three MongoDB collections.
type MongoStore struct {
	Vehicles     *mongo.Collection
	ServiceShops *mongo.Collection
	Records      *mongo.Collection
}

// NewMongoStore binds a store to the standard collections of database.
func NewMongoStore(database *mongo.Database) *MongoStore {
	return &MongoStore{
		Vehicles:     database.Collection(VehiclesCollection),
		ServiceShops: database.Collection(ServiceShopsCollection),
		Records:      database.Collection(RecordsCollection),
	}
}

// EnsureIndexes creates the per-identity lookup indexes.
func (s *MongoStore) EnsureIndexes(ctx context.Context) error {
	byOwner := mongo.IndexModel{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "created_at", Value: -1}}}
	if _, err := s.Vehicles.Indexes().CreateOne(ctx, byOwner); err != nil {
		return fmt.Errorf("vehicles index: %w", err)
	}
	if _, err := s.ServiceShops.Indexes().CreateOne(ctx, byOwner); err != nil {
		return fmt.Errorf("service shops index: %w", err)
	}
	byVehicle := mongo.IndexModel{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "vehicle_id", Value: 1}, {Key: "date", Value: -1}}}
	if _, err := s.Records.Indexes().CreateOne(ctx, byVehicle); err != nil {
		return fmt.Errorf("maintenance index: %w", err)
	}
	return nil
}

func newID() string {
	return primitive.NewObjectID().Hex()
}

func owned(userID, id string) bson.M {
	return bson.M{"_id": id, "user_id": userID}
}

func stamp(id *string, created, updated *time.Time) {
	now := time.Now()
	if *id == "" {
		*id = newID()
	}
	if created.IsZero() {
		*created = now
	}
	*updated = now
}

func notFound(kind, id string, err error) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return fmt.Errorf("%s %s: %w", kind, id, models.ErrNotFound)
	}
	return err
}

var afterUpdate = options.FindOneAndUpdate().SetReturnDocument(options.After)

// InsertVehicle inserts a vehicle record into the collection.
func (s *MongoStore) InsertVehicle(ctx context.Context, vehicle models.Vehicle) (*models.Vehicle, error) {
	if s.Vehicles == nil {
		return nil, fmt.Errorf("mongo collection is nil")
	}
	stamp(&vehicle.ID, &vehicle.CreatedAt, &vehicle.UpdatedAt)
	if _, err := s.Vehicles.InsertOne(ctx, vehicle); err != nil {
		return nil, err
	}
	return &vehicle, nil
}

// FindVehicles lists the identity's vehicles, newest first.
func (s *MongoStore) FindVehicles(ctx context.Context, userID string) ([]models.Vehicle, error) {
	if s.Vehicles == nil {
		return nil, fmt.Errorf("mongo collection is nil")
	}
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := s.Vehicles.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	vehicles := []models.Vehicle{}
	if err := cursor.All(ctx, &vehicles); err != nil {
		return nil, err
	}
	return vehicles, nil
}

// FindVehicleByID finds a vehicle by its ID.
func (s *MongoStore) FindVehicleByID(ctx context.Context, userID, id string) (*models.Vehicle, error) {
	if s.Vehicles == nil {
		return nil, fmt.Errorf("mongo collection is nil")
	}
	var vehicle models.Vehicle
	if err := s.Vehicles.FindOne(ctx, owned(userID, id)).Decode(&vehicle); err != nil {
		return nil, notFound("vehicle", id, err)
	}
	return &vehicle, nil
}

// UpdateVehicle overwrites the mutable fields of a vehicle.
func (s *MongoStore) UpdateVehicle(ctx context.Context, userID, id string, vehicle models.Vehicle) (*models.Vehicle, error) {
	if s.Vehicles == nil {
		return nil, fmt.Errorf("mongo collection is nil")
	}
	update := bson.M{"$set": bson.M{
		"nickname":      vehicle.Nickname,
		"license_plate": vehicle.LicensePlate,
		"brand":         vehicle.Brand,
		"model":         vehicle.Model,
		"year":          vehicle.Year,
		"updated_at":    time.Now(),
	}}
	var updated models.Vehicle
	if err := s.Vehicles.FindOneAndUpdate(ctx, owned(userID, id), update, afterUpdate).Decode(&updated); err != nil {
		return nil, notFound("vehicle", id, err)
	}
	return &updated, nil
}

// DeleteVehicle deletes a vehicle by its ID.
func (s *MongoStore) DeleteVehicle(ctx context.Context, userID, id string) error {
	if s.Vehicles == nil {
		return fmt.Errorf("mongo collection is nil")
	}
	result, err := s.Vehicles.DeleteOne(ctx, owned(userID, id))
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("vehicle %s: %w", id, models.ErrNotFound)
	}
	return nil
}

// InsertServiceShop inserts a service shop into the collection.
func (s *MongoStore) InsertServiceShop(ctx context.Context, shop models.ServiceShop) (*models.ServiceShop, error) {
	if s.ServiceShops == nil {
		return nil, fmt.Errorf("mongo collection is nil")
	}
	stamp(&shop.ID, &shop.CreatedAt, &shop.UpdatedAt)
	if _, err := s.ServiceShops.InsertOne(ctx, shop); err != nil {
		return nil, err
	}
	return &shop, nil
}

// FindServiceShops lists the identity's service shops, newest first.
func (s *MongoStore) FindServiceShops(ctx context.Context, userID string) ([]models.ServiceShop, error) {
	if s.ServiceShops == nil {
		return nil, fmt.Errorf("mongo collection is nil")
	}
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := s.ServiceShops.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	shops := []models.ServiceShop{}
	if err := cursor.All(ctx, &shops); err != nil {
		return nil, err
	}
	return shops, nil
}

// FindServiceShopByID finds a service shop by its ID.
func (s *MongoStore) FindServiceShopByID(ctx context.Context, userID, id string) (*models.ServiceShop, error) {
	if s.ServiceShops == nil {
		return nil, fmt.Errorf("mongo collection is nil")
	}
	var shop models.ServiceShop
	if err := s.ServiceShops.FindOne(ctx, owned(userID, id)).Decode(&shop); err != nil {
		return nil, notFound("service shop", id, err)
	}
	return &shop, nil
}

// UpdateServiceShop overwrites the mutable fields of a service shop.
func (s *MongoStore) UpdateServiceShop(ctx context.Context, userID, id string, shop models.ServiceShop) (*models.ServiceShop, error) {
	if s.ServiceShops == nil {
		return nil, fmt.Errorf("mongo collection is nil")
	}
	update := bson.M{"$set": bson.M{
		"name":       shop.Name,
		"address":    shop.Address,
		"phone":      shop.Phone,
		"notes":      shop.Notes,
		"updated_at": time.Now(),
	}}
	var updated models.ServiceShop
	if err := s.ServiceShops.FindOneAndUpdate(ctx, owned(userID, id), update, afterUpdate).Decode(&updated); err != nil {
		return nil, notFound("service shop", id, err)
	}
	return &updated, nil
}

// DeleteServiceShop deletes a service shop by its ID.
func (s *MongoStore) DeleteServiceShop(ctx context.Context, userID, id string) error {
	if s.ServiceShops == nil {
		return fmt.Errorf("mongo collection is nil")
	}
	result, err := s.ServiceShops.DeleteOne(ctx, owned(userID, id))
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("service shop %s: %w", id, models.ErrNotFound)
	}
	return nil
}

// InsertMaintenance inserts a maintenance record into the collection.
func (s *MongoStore) InsertMaintenance(ctx context.Context, record models.MaintenanceRecord) (*models.MaintenanceRecord, error) {
	if s.Records == nil {
		return nil, fmt.Errorf("mongo collection is nil")
	}
	stamp(&record.ID, &record.CreatedAt, &record.UpdatedAt)
	if _, err := s.Records.InsertOne(ctx, record); err != nil {
		return nil, err
	}
	return &record, nil
}

// MaintenanceQuery translates a filter into a Mongo query and find options.
func MaintenanceQuery(userID string, filter models.MaintenanceFilter) (bson.M, *options.FindOptions) {
	query := bson.M{"user_id": userID}
	if filter.VehicleID != "" {
		query["vehicle_id"] = filter.VehicleID
	}
	dateRange := bson.M{}
	if !filter.From.IsZero() {
		dateRange["$gte"] = filter.From
	}
	if !filter.To.IsZero() {
		dateRange["$lte"] = filter.To
	}
	if len(dateRange) > 0 {
		query["date"] = dateRange
	}

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}, {Key: "created_at", Value: -1}})
	if filter.Limit > 0 {
		opts.SetLimit(int64(filter.Limit))
	}
	return query, opts
}

// FindMaintenance lists the identity's maintenance records, latest date first.
func (s *MongoStore) FindMaintenance(ctx context.Context, userID string, filter models.MaintenanceFilter) ([]models.MaintenanceRecord, error) {
	if s.Records == nil {
		return nil, fmt.Errorf("mongo collection is nil")
	}
	query, opts := MaintenanceQuery(userID, filter)
	cursor, err := s.Records.Find(ctx, query, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	records := []models.MaintenanceRecord{}
	if err := cursor.All(ctx, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// FindMaintenanceByID finds a maintenance record by its ID.
func (s *MongoStore) FindMaintenanceByID(ctx context.Context, userID, id string) (*models.MaintenanceRecord, error) {
	if s.Records == nil {
		return nil, fmt.Errorf("mongo collection is nil")
	}
	var record models.MaintenanceRecord
	if err := s.Records.FindOne(ctx, owned(userID, id)).Decode(&record); err != nil {
		return nil, notFound("maintenance record", id, err)
	}
	return &record, nil
}

// ReplaceMaintenance swaps the whole stored document for record.
func (s *MongoStore) ReplaceMaintenance(ctx context.Context, userID, id string, record models.MaintenanceRecord) (*models.MaintenanceRecord, error) {
	if s.Records == nil {
		return nil, fmt.Errorf("mongo collection is nil")
	}
	record.ID = id
	record.UserID = userID
	record.UpdatedAt = time.Now()

	opts := options.FindOneAndReplace().SetReturnDocument(options.After)
	var replaced models.MaintenanceRecord
	if err := s.Records.FindOneAndReplace(ctx, owned(userID, id), record, opts).Decode(&replaced); err != nil {
		return nil, notFound("maintenance record", id, err)
	}
	return &replaced, nil
}

// DeleteMaintenance deletes a maintenance record by its ID.
func (s *MongoStore) DeleteMaintenance(ctx context.Context, userID, id string) error {
	if s.Records == nil {
		return fmt.Errorf("mongo collection is nil")
	}
	result, err := s.Records.DeleteOne(ctx, owned(userID, id))
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("maintenance record %s: %w", id, models.ErrNotFound)
	}
	return nil
}
