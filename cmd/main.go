package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/ukydev/car-maintenance/internal/auth"
	"github.com/ukydev/car-maintenance/internal/config"
	"github.com/ukydev/car-maintenance/internal/db"
	"github.com/ukydev/car-maintenance/internal/handlers"
	"github.com/ukydev/car-maintenance/internal/middleware"
	"github.com/ukydev/car-maintenance/internal/notify"
	"github.com/ukydev/car-maintenance/internal/schedule"
	"github.com/ukydev/car-maintenance/internal/service"
)

// storage bundles the record store and identity storage of one backend.
type storage struct {
	mode  string
	store db.Store
	users db.UserCollection
	close func()
}

// warnInsecureDefaults flags settings that are only fit for local development.
func warnInsecureDefaults(cfg *config.Config, logger logrus.FieldLogger) {
	if cfg.UsesDefaultSecret() {
		logger.Warn("JWT_SECRET is not set; tokens are signed with the public default secret")
	}
}

// openStorage connects the configured backend. When the remote store cannot
// be reached the local file store is used instead.
func openStorage(ctx context.Context, cfg *config.Config, logger logrus.FieldLogger) (*storage, error) {
	if cfg.StorageMode == config.StorageMongo {
		s, err := openMongo(ctx, cfg)
		if err == nil {
			return s, nil
		}
		logger.WithError(err).WithField("local_path", cfg.LocalPath).Warn("MongoDB unavailable, falling back to local storage")
	}

	local, err := db.OpenLocalStore(cfg.LocalPath)
	if err != nil {
		return nil, err
	}
	logger.WithField("path", local.Path()).Info("Using local storage")
	return &storage{mode: config.StorageLocal, store: local, users: local, close: func() {}}, nil
}

func openMongo(ctx context.Context, cfg *config.Config) (*storage, error) {
	connectCtx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()

	client, err := db.ConnectMongo(connectCtx, cfg.MongoURI)
	if err != nil {
		return nil, err
	}
	database := client.Database(cfg.MongoDB)
	store := db.NewMongoStore(database)
	users := &db.MongoUserCollection{Collection: database.Collection(db.UsersCollection)}

	if err := store.EnsureIndexes(connectCtx); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}
	if err := users.EnsureIndexes(connectCtx); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}
	return &storage{
		mode:  config.StorageMongo,
		store: store,
		users: users,
		close: func() { _ = client.Disconnect(context.Background()) },
	}, nil
}

// newPublisher returns an MQTT publisher, or a no-op one when no broker is
// configured or it cannot be reached.
func newPublisher(cfg *config.Config, logger logrus.FieldLogger) (notify.Publisher, func()) {
	if cfg.MQTTBroker == "" {
		return notify.NopPublisher{}, func() {}
	}
	client, err := notify.ConnectMQTT(cfg.MQTTBroker, "car-maintenance-"+uuid.NewString()[:8])
	if err != nil {
		logger.WithError(err).WithField("broker", cfg.MQTTBroker).Warn("MQTT unavailable, reminders disabled")
		return notify.NopPublisher{}, func() {}
	}
	logger.WithField("broker", cfg.MQTTBroker).Info("Connected to MQTT broker")
	return notify.NewMQTTPublisher(client, cfg.MQTTTopicPrefix), func() { client.Disconnect(250) }
}

func newServer(ctx context.Context, cfg *config.Config, st *storage, publisher notify.Publisher, policy map[string]int, logger *logrus.Logger) (*http.Server, error) {
	authService, err := auth.NewService(cfg.JWTSecret, cfg.JWTExpiry)
	if err != nil {
		return nil, err
	}
	svc := service.New(st.store, middleware.ContextIdentity{}, schedule.New(policy), publisher, logger)
	limiter := middleware.NewRateLimitMiddleware(cfg.RateLimit, cfg.RateBurst)
	go limiter.PruneEvery(ctx, time.Minute)

	router := handlers.NewRouter(handlers.RouterConfig{
		Auth:        handlers.NewAuthHandler(authService, st.users, logger),
		Maintenance: handlers.NewMaintenanceHandler(svc, logger),
		AuthMW:      middleware.NewAuthMiddleware(authService, logger),
		RateLimit:   limiter,
		Logger:      logger,
		TrustProxy:  cfg.TrustProxy,
	})

	return &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}, nil
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("Failed to load configuration")
	}
	logger := cfg.NewLogger()
	warnInsecureDefaults(cfg, logger)

	policy, err := config.LoadIntervalPolicy(cfg.PolicyFile)
	if err != nil {
		logger.WithError(err).Fatal("Failed to load interval policy")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	st, err := openStorage(ctx, cfg, logger)
	if err != nil {
		logger.WithError(err).Fatal("Failed to open storage")
	}
	defer st.close()

	publisher, closePublisher := newPublisher(cfg, logger)
	defer closePublisher()

	srv, err := newServer(ctx, cfg, st, publisher, policy, logger)
	if err != nil {
		logger.WithError(err).Fatal("Failed to build server")
	}

	go func() {
		logger.WithFields(logrus.Fields{
			"port":    cfg.Port,
			"storage": st.mode,
		}).Info("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.WithError(err).Fatal("HTTP server failed")
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.WithError(err).Error("Graceful shutdown failed")
	}
}
