package db

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukydev/car-maintenance/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

func TestConnectMongo_BadURI(t *testing.T) {
	client, err := ConnectMongo(context.Background(), "mongodb://bad:uri")
	if err == nil {
		t.Error("expected error for bad URI, got nil")
	}
	if client != nil {
		t.Error("expected nil client on error")
	}
}

func TestMongoStore_NilCollections(t *testing.T) {
	store := &MongoStore{}
	ctx := context.Background()

	_, err := store.InsertVehicle(ctx, models.Vehicle{UserID: "u1", Nickname: "a"})
	assert.Error(t, err)
	_, err = store.InsertServiceShop(ctx, models.ServiceShop{UserID: "u1", Name: "a"})
	assert.Error(t, err)
	_, err = store.InsertMaintenance(ctx, models.MaintenanceRecord{UserID: "u1"})
	assert.Error(t, err)
	_, err = store.FindMaintenance(ctx, "u1", models.MaintenanceFilter{})
	assert.Error(t, err)
}

func TestNotFound(t *testing.T) {
	err := notFound("vehicle", "v1", mongo.ErrNoDocuments)
	assert.True(t, errors.Is(err, models.ErrNotFound))

	other := errors.New("connection reset")
	err = notFound("vehicle", "v1", other)
	assert.False(t, errors.Is(err, models.ErrNotFound))
	assert.True(t, errors.Is(err, other))
}

func TestStamp_KeepsExistingIdentity(t *testing.T) {
	created := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	id := "keep-me"
	var updated time.Time
	stamp(&id, &created, &updated)

	assert.Equal(t, "keep-me", id)
	assert.Equal(t, 2024, created.Year())
	assert.False(t, updated.IsZero())

	var freshID string
	var freshCreated time.Time
	stamp(&freshID, &freshCreated, &updated)
	assert.Len(t, freshID, 24)
	assert.False(t, freshCreated.IsZero())
}

func TestMaintenanceQuery(t *testing.T) {
	t.Run("identity only", func(t *testing.T) {
		query, opts := MaintenanceQuery("u1", models.MaintenanceFilter{})
		assert.Equal(t, bson.M{"user_id": "u1"}, query)
		assert.Nil(t, opts.Limit)
		assert.Equal(t, bson.D{{Key: "date", Value: -1}, {Key: "created_at", Value: -1}}, opts.Sort)
	})

	t.Run("all constraints", func(t *testing.T) {
		from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
		to := time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC)
		query, opts := MaintenanceQuery("u1", models.MaintenanceFilter{
			VehicleID: "v1",
			From:      from,
			To:        to,
			Limit:     10,
		})
		assert.Equal(t, "v1", query["vehicle_id"])
		assert.Equal(t, bson.M{"$gte": from, "$lte": to}, query["date"])
		require.NotNil(t, opts.Limit)
		assert.Equal(t, int64(10), *opts.Limit)
	})

	t.Run("open ended range", func(t *testing.T) {
		from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
		query, _ := MaintenanceQuery("u1", models.MaintenanceFilter{From: from})
		assert.Equal(t, bson.M{"$gte": from}, query["date"])
	})
}

// testDatabase connects to MONGO_URI and returns a freshly dropped database.
func testDatabase(t *testing.T) (*mongo.Database, error) {
	t.Helper()
	uri := os.Getenv("MONGO_URI")
	if uri == "" || uri == "uri" {
		return nil, errors.New("MONGO_URI not set or invalid")
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	client, err := ConnectMongo(ctx, uri)
	if err != nil {
		return nil, err
	}
	t.Cleanup(func() { _ = client.Disconnect(context.Background()) })

	database := client.Database("test_car_maintenance")
	if err := database.Drop(ctx); err != nil {
		return nil, err
	}
	return database, nil
}

// integrationStore connects to MONGO_URI or skips the test.
func integrationStore(t *testing.T) (*MongoStore, *mongo.Database) {
	t.Helper()
	database, err := testDatabase(t)
	if err != nil {
		t.Skipf("%v, skipping integration test", err)
	}
	return NewMongoStore(database), database
}

func TestMongoStore_Integration(t *testing.T) {
	store, _ := integrationStore(t)
	ctx := context.Background()
	require.NoError(t, store.EnsureIndexes(ctx))

	vehicle, err := store.InsertVehicle(ctx, models.Vehicle{UserID: "u1", Nickname: "Daily", LicensePlate: "ABC-1234"})
	require.NoError(t, err)
	assert.NotEmpty(t, vehicle.ID)

	_, err = store.FindVehicleByID(ctx, "u2", vehicle.ID)
	assert.ErrorIs(t, err, models.ErrNotFound)

	updated, err := store.UpdateVehicle(ctx, "u1", vehicle.ID, models.Vehicle{Nickname: "Weekend", LicensePlate: "ABC-1234"})
	require.NoError(t, err)
	assert.Equal(t, "Weekend", updated.Nickname)

	for i, day := range []int{3, 1, 2} {
		_, err := store.InsertMaintenance(ctx, models.MaintenanceRecord{
			UserID:    "u1",
			VehicleID: vehicle.ID,
			Date:      time.Date(2024, 5, day, 0, 0, 0, 0, time.UTC),
			Mileage:   1000 * (i + 1),
			Items:     []models.MaintenanceLineItem{{Name: "機油", Quantity: 1, UnitPrice: 100}},
		})
		require.NoError(t, err)
	}
	records, err := store.FindMaintenance(ctx, "u1", models.MaintenanceFilter{VehicleID: vehicle.ID, Limit: 2})
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, 3, records[0].Date.Day())
	assert.Equal(t, 2, records[1].Date.Day())

	require.NoError(t, store.DeleteVehicle(ctx, "u1", vehicle.ID))
	assert.ErrorIs(t, store.DeleteVehicle(ctx, "u1", vehicle.ID), models.ErrNotFound)
}
