package services

import (
	"github.com/MonkyMars/gecho"

	"dulcetienda_server/database"
	"dulcetienda_server/structs"
)

type ServiceManager struct {
	EmailService   *EmailService
	HealthService  *HealthService
	ProductService *ProductService
	OrderService   *OrderService
}

func NewServiceManager(logger *gecho.Logger, cfg *structs.Config, db *database.DB) *ServiceManager {
	emailService := NewEmailService(logger, cfg)
	healthService := NewHealthService(logger, db)
	productService := NewProductService(logger, db)
	orderService := NewOrderService(logger, cfg, db, emailService)

	return &ServiceManager{
		EmailService:   emailService,
		HealthService:  healthService,
		ProductService: productService,
		OrderService:   orderService,
	}
}
