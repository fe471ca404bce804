package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"
	"github.com/ukydev/car-maintenance/internal/middleware"
)

// RouterConfig carries everything the HTTP routes are built from.
type RouterConfig struct {
	Auth        *AuthHandler
	Maintenance *MaintenanceHandler
	AuthMW      *middleware.AuthMiddleware
	RateLimit   *middleware.RateLimitMiddleware
	Logger      logrus.FieldLogger
	// TrustProxy takes the client address from X-Forwarded-For / X-Real-IP.
	// Only enable it behind a proxy that sets those headers.
	TrustProxy  bool
}

// NewRouter wires every route of the API.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	if cfg.TrustProxy {
		r.Use(chimw.RealIP)
	}
	r.Use(chimw.Recoverer)
	r.Use(middleware.RequestLogger(cfg.Logger))
	if cfg.RateLimit != nil {
		r.Use(cfg.RateLimit.RateLimit)
	}

	r.Get("/health", Health)

	r.Route("/api", func(r chi.Router) {
		r.Use(cfg.AuthMW.Authenticate)

		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", cfg.Auth.Register)
			r.Post("/login", cfg.Auth.Login)
			r.Post("/refresh", cfg.Auth.Refresh)
			r.Post("/logout", cfg.Auth.Logout)
			r.Get("/profile", cfg.Auth.GetProfile)
		})

		r.Get("/catalog", Catalog)
		r.Get("/catalog/notes", CatalogNotes)

		m := cfg.Maintenance
		r.Route("/vehicles", func(r chi.Router) {
			r.Get("/", m.ListVehicles)
			r.Post("/", m.CreateVehicle)
			r.Put("/{id}", m.UpdateVehicle)
			r.Delete("/{id}", m.DeleteVehicle)
			r.Get("/{id}/schedule", m.VehicleSchedule)
		})
		r.Route("/shops", func(r chi.Router) {
			r.Get("/", m.ListServiceShops)
			r.Post("/", m.CreateServiceShop)
			r.Put("/{id}", m.UpdateServiceShop)
			r.Delete("/{id}", m.DeleteServiceShop)
		})
		r.Route("/records", func(r chi.Router) {
			r.Get("/", m.ListRecords)
			r.Post("/", m.CreateRecord)
			r.Get("/recent", m.RecentRecords)
			r.Get("/{id}", m.GetRecord)
			r.Put("/{id}", m.UpdateRecord)
			r.Delete("/{id}", m.DeleteRecord)
			r.Get("/{id}/form", m.RecordForm)
		})
		r.Get("/stats", m.Statistics)
	})

	return r
}
