package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, "8081", cfg.Port)
	assert.Equal(t, StorageMongo, cfg.StorageMode)
	assert.Equal(t, 24*time.Hour, cfg.JWTExpiry)
	assert.Equal(t, "car-maintenance", cfg.MQTTTopicPrefix)
	assert.Empty(t, cfg.MQTTBroker)
}

func TestLoad_Environment(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("STORAGE_MODE", " LOCAL ")
	t.Setenv("JWT_EXPIRY", "90m")
	t.Setenv("RATE_LIMIT", "2.5")
	t.Setenv("MQTT_BROKER", "tcp://localhost:1883")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, StorageLocal, cfg.StorageMode)
	assert.Equal(t, 90*time.Minute, cfg.JWTExpiry)
	assert.Equal(t, 2.5, cfg.RateLimit)
	assert.Equal(t, "tcp://localhost:1883", cfg.MQTTBroker)
}

func TestLoad_DotenvFile(t *testing.T) {
	path := writeFile(t, ".env", "LOCAL_STORE_PATH=/tmp/dotenv-store.json\n")
	t.Setenv("LOCAL_STORE_PATH", "")
	os.Unsetenv("LOCAL_STORE_PATH")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/dotenv-store.json", cfg.LocalPath)
}

func TestLoad_DefaultSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	os.Unsetenv("JWT_SECRET")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, DefaultJWTSecret, cfg.JWTSecret)
	assert.True(t, cfg.UsesDefaultSecret())

	t.Setenv("JWT_SECRET", "a-real-secret")
	cfg, err = Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.False(t, cfg.UsesDefaultSecret())
}

func TestLoad_Invalid(t *testing.T) {
	t.Run("storage mode", func(t *testing.T) {
		t.Setenv("STORAGE_MODE", "firebase")
		_, err := Load(filepath.Join(t.TempDir(), "missing.env"))
		assert.ErrorContains(t, err, "STORAGE_MODE")
	})
	t.Run("expiry", func(t *testing.T) {
		t.Setenv("JWT_EXPIRY", "tomorrow")
		_, err := Load(filepath.Join(t.TempDir(), "missing.env"))
		assert.Error(t, err)
	})
	t.Run("rate limit", func(t *testing.T) {
		t.Setenv("RATE_LIMIT", "0")
		_, err := Load(filepath.Join(t.TempDir(), "missing.env"))
		assert.ErrorContains(t, err, "RATE_LIMIT")
	})
}

func TestNewLogger(t *testing.T) {
	cfg := &Config{LogLevel: "debug", LogFormat: "json"}
	logger := cfg.NewLogger()
	assert.Equal(t, logrus.DebugLevel, logger.GetLevel())
	assert.IsType(t, &logrus.JSONFormatter{}, logger.Formatter)

	cfg = &Config{LogLevel: "loud", LogFormat: "text"}
	logger = cfg.NewLogger()
	assert.Equal(t, logrus.InfoLevel, logger.GetLevel())
	assert.IsType(t, &logrus.TextFormatter{}, logger.Formatter)
}

func TestLoadIntervalPolicy(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		policy, err := LoadIntervalPolicy("")
		require.NoError(t, err)
		assert.Equal(t, 5000, policy["機油"])
	})

	t.Run("yaml overrides", func(t *testing.T) {
		path := writeFile(t, "policy.yaml", "intervals:\n  - item: 機油\n    km: 7500\n  - item: ATF\n    km: 45000\n")
		policy, err := LoadIntervalPolicy(path)
		require.NoError(t, err)
		assert.Equal(t, 7500, policy["機油"])
		assert.Equal(t, 45000, policy["ATF"])
		assert.Equal(t, 5000, policy["機油芯"])
	})

	t.Run("json overrides", func(t *testing.T) {
		path := writeFile(t, "policy.json", `{"intervals": [{"item": "雨刷片", "km": 15000}]}`)
		policy, err := LoadIntervalPolicy(path)
		require.NoError(t, err)
		assert.Equal(t, 15000, policy["雨刷片"])
	})

	t.Run("non positive interval", func(t *testing.T) {
		path := writeFile(t, "policy.yaml", "intervals:\n  - item: 機油\n    km: 0\n")
		_, err := LoadIntervalPolicy(path)
		assert.ErrorContains(t, err, "must be positive")
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadIntervalPolicy(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})
}
