package api

import (
	"github.com/go-chi/chi/v5"

	"dulcetienda_server/api/health"
	"dulcetienda_server/api/products"
)

type routerManager struct {
	productRoutes *products.ProductRoutesManager
	healthRoutes  *health.HealthRoutesManager
}

func NewRouterManager(
	productRoutes *products.ProductRoutesManager,
	healthRoutes *health.HealthRoutesManager,
) *routerManager {
	return &routerManager{
		productRoutes: productRoutes,
		healthRoutes:  healthRoutes,
	}
}

func (rm *routerManager) RegisterRoutes(r chi.Router) {
	rm.productRoutes.RegisterRoutes(r)
	rm.healthRoutes.RegisterRoutes(r)
}
