package products

import (
	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"

	"dulcetienda_server/services"
)

type ProductRoutesManager struct {
	logger         *gecho.Logger
	productService *services.ProductService
	orderService   *services.OrderService
}

func NewProductRoutesManager(
	logger *gecho.Logger,
	productService *services.ProductService,
	orderService *services.OrderService,
) *ProductRoutesManager {
	return &ProductRoutesManager{
		logger:         logger,
		productService: productService,
		orderService:   orderService,
	}
}

func (prm *ProductRoutesManager) RegisterRoutes(r chi.Router) {
	r.Route("/api/products", func(r chi.Router) {
		r.Get("/", prm.FetchProducts)
		r.Post("/order", prm.CreateOrder)
		r.Get("/{id}", prm.FetchProductByID)
	})
}
