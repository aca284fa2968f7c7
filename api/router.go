package api

import (
	"net/http"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
	chiware "github.com/go-chi/chi/v5/middleware"

	"dulcetienda_server/api/health"
	"dulcetienda_server/api/middleware"
	"dulcetienda_server/api/products"
	"dulcetienda_server/config"
	"dulcetienda_server/database"
	"dulcetienda_server/lib"
	"dulcetienda_server/services"
	"dulcetienda_server/structs"
)

// App assembles the HTTP surface around the injected configuration, logger
// and database handle.
func App(logger *gecho.Logger, cfg *structs.Config, db *database.DB) chi.Router {
	r := chi.NewRouter()

	mwLogger := config.NewMiddlewareLogger(cfg)

	svc := services.NewServiceManager(logger, cfg, db)
	mw := middleware.NewMiddleware(cfg, mwLogger)

	// Core infra
	r.Use(chiware.RequestID)
	r.Use(chiware.RealIP)
	r.Use(chiware.Recoverer)

	// Limits & security
	r.Use(mw.BodyLimit(cfg.Server.MaxBodyBytes))
	r.Use(mw.SecurityHeaders())

	// Observability
	r.Use(middleware.MetricsMiddleware)
	r.Use(gecho.Handlers.CreateLoggingMiddleware(mwLogger))

	// CORS
	r.Use(mw.SetupCORS().Handler)

	// Register all routes
	NewRouterManager(
		products.NewProductRoutesManager(logger, svc.ProductService, svc.OrderService),
		health.NewHealthRoutesManager(svc.HealthService),
	).RegisterRoutes(r)

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		lib.WriteJSON(w, http.StatusOK, map[string]string{
			"message": "API is working",
		})
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		gecho.NotFound(w,
			gecho.Send(),
		)
	})

	return r
}
