package main

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukydev/car-maintenance/internal/config"
	"github.com/ukydev/car-maintenance/internal/db"
	"github.com/ukydev/car-maintenance/internal/notify"
)

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func testConfig(t *testing.T) *config.Config {
	return &config.Config{
		Port:        "0",
		StorageMode: config.StorageLocal,
		MongoURI:    "mongodb://bad:uri",
		MongoDB:     "car_maintenance_test",
		LocalPath:   filepath.Join(t.TempDir(), "store.json"),
		JWTSecret:   "test-secret",
		JWTExpiry:   time.Hour,
		RateLimit:   100,
		RateBurst:   100,
	}
}

func TestOpenStorage_Local(t *testing.T) {
	cfg := testConfig(t)
	st, err := openStorage(context.Background(), cfg, quietLogger())
	require.NoError(t, err)
	defer st.close()
	assert.Equal(t, config.StorageLocal, st.mode)
	assert.IsType(t, &db.LocalStore{}, st.store)
}

func TestOpenStorage_FallsBackWhenMongoUnreachable(t *testing.T) {
	cfg := testConfig(t)
	cfg.StorageMode = config.StorageMongo

	st, err := openStorage(context.Background(), cfg, quietLogger())
	require.NoError(t, err)
	defer st.close()
	assert.Equal(t, config.StorageLocal, st.mode)
	assert.Same(t, st.store, st.users)
}

func TestOpenStorage_LogsLocalPath(t *testing.T) {
	cfg := testConfig(t)
	logger, hook := test.NewNullLogger()

	st, err := openStorage(context.Background(), cfg, logger)
	require.NoError(t, err)
	defer st.close()

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, "Using local storage", entry.Message)
	assert.Equal(t, cfg.LocalPath, entry.Data["path"])
}

func TestWarnInsecureDefaults(t *testing.T) {
	logger, hook := test.NewNullLogger()

	cfg := testConfig(t)
	warnInsecureDefaults(cfg, logger)
	assert.Empty(t, hook.AllEntries())

	cfg.JWTSecret = config.DefaultJWTSecret
	warnInsecureDefaults(cfg, logger)
	require.Len(t, hook.AllEntries(), 1)
	assert.Equal(t, logrus.WarnLevel, hook.LastEntry().Level)
	assert.Contains(t, hook.LastEntry().Message, "JWT_SECRET")
}

func TestNewPublisher_NoBroker(t *testing.T) {
	publisher, closeFn := newPublisher(testConfig(t), quietLogger())
	defer closeFn()
	assert.IsType(t, notify.NopPublisher{}, publisher)
}

func TestNewServer_ServesHealth(t *testing.T) {
	cfg := testConfig(t)
	st, err := openStorage(context.Background(), cfg, quietLogger())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	srv, err := newServer(ctx, cfg, st, notify.NopPublisher{}, nil, quietLogger())
	require.NoError(t, err)

	w := httptest.NewRecorder()
	srv.Handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	srv.Handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/stats", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
