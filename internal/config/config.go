// Package config loads runtime settings from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/ukydev/car-maintenance/internal/catalog"
)

const (
	StorageMongo = "mongo"
	StorageLocal = "local"
)

// DefaultJWTSecret signs tokens when JWT_SECRET is unset. It is public, so
// deployments must override it.
const DefaultJWTSecret = "default-secret-key-change-in-production"

// Config holds every setting of the API server.
type Config struct {
	Port            string        `env:"PORT" envDefault:"8081"`
	StorageMode     string        `env:"STORAGE_MODE" envDefault:"mongo"`
	MongoURI        string        `env:"MONGO_URI" envDefault:"mongodb://localhost:27017"`
	MongoDB         string        `env:"MONGO_DB" envDefault:"car_maintenance"`
	LocalPath       string        `env:"LOCAL_STORE_PATH" envDefault:"data/car-maintenance.json"`
	JWTSecret       string        `env:"JWT_SECRET" envDefault:"default-secret-key-change-in-production"`
	JWTExpiry       time.Duration `env:"JWT_EXPIRY" envDefault:"24h"`
	MQTTBroker      string        `env:"MQTT_BROKER"`
	MQTTTopicPrefix string        `env:"MQTT_TOPIC_PREFIX" envDefault:"car-maintenance"`
	PolicyFile      string        `env:"INTERVAL_POLICY_FILE"`
	RateLimit       float64       `env:"RATE_LIMIT" envDefault:"10"`
	RateBurst       int           `env:"RATE_BURST" envDefault:"20"`
	TrustProxy      bool          `env:"TRUST_PROXY" envDefault:"false"`
	LogLevel        string        `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat       string        `env:"LOG_FORMAT" envDefault:"text"`
}

// Load reads an optional .env file and then the environment. Variables
// already set in the environment win over the .env file.
func Load(dotenv ...string) (*Config, error) {
	if err := godotenv.Load(dotenv...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("config.Load: load .env: %w", err)
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("config.Load: %w", err)
	}
	cfg.StorageMode = strings.ToLower(strings.TrimSpace(cfg.StorageMode))
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// UsesDefaultSecret reports whether tokens would be signed with DefaultJWTSecret.
func (c *Config) UsesDefaultSecret() bool {
	return c.JWTSecret == DefaultJWTSecret
}

// Validate rejects settings the server cannot start with.
func (c *Config) Validate() error {
	switch c.StorageMode {
	case StorageMongo, StorageLocal:
	default:
		return fmt.Errorf("config: unknown STORAGE_MODE %q", c.StorageMode)
	}
	if c.JWTSecret == "" {
		return errors.New("config: JWT_SECRET is empty")
	}
	if c.RateLimit <= 0 {
		return fmt.Errorf("config: RATE_LIMIT must be positive, got %v", c.RateLimit)
	}
	return nil
}

// NewLogger builds the process logger from LOG_LEVEL and LOG_FORMAT.
func (c *Config) NewLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stdout)
	if strings.EqualFold(c.LogFormat, "json") {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
		logger.WithField("log_level", c.LogLevel).Warn("unknown log level, using info")
	}
	logger.SetLevel(level)
	return logger
}

type intervalOverride struct {
	Item string `mapstructure:"item"`
	Km   int    `mapstructure:"km"`
}

type policyFile struct {
	Intervals []intervalOverride `mapstructure:"intervals"`
}

// LoadIntervalPolicy returns the default interval policy with the overrides
// found in path merged over it. An empty path returns the defaults.
//
// The file lists overrides rather than mapping names to kilometers because
// viper folds map keys to lower case:
//
//	intervals:
//	  - item: 機油
//	    km: 7500
func LoadIntervalPolicy(path string) (map[string]int, error) {
	policy := catalog.DefaultIntervalPolicy()
	if path == "" {
		return policy, nil
	}

	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read interval policy %s: %w", path, err)
	}

	var file policyFile
	if err := v.Unmarshal(&file); err != nil {
		return nil, fmt.Errorf("decode interval policy %s: %w", path, err)
	}
	for _, o := range file.Intervals {
		name := strings.TrimSpace(o.Item)
		if name == "" {
			return nil, fmt.Errorf("interval policy %s: entry without item name", path)
		}
		if o.Km <= 0 {
			return nil, fmt.Errorf("interval policy %s: %q must be positive, got %d", path, name, o.Km)
		}
		policy[name] = o.Km
	}
	return policy, nil
}
