package services

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/MonkyMars/gecho"
	"github.com/uptrace/bun"

	"dulcetienda_server/database"
	"dulcetienda_server/lib"
	"dulcetienda_server/structs"
	"dulcetienda_server/structs/tables"
)

type OrderService struct {
	logger       *gecho.Logger
	cfg          *structs.Config
	db           *database.DB
	emailService *EmailService
}

func NewOrderService(
	logger *gecho.Logger,
	cfg *structs.Config,
	db *database.DB,
	emailService *EmailService,
) *OrderService {
	return &OrderService{
		logger:       logger,
		cfg:          cfg,
		db:           db,
		emailService: emailService,
	}
}

// CreateOrder persists a purchase submission: it finds or creates the customer
// by phone, snapshots the product price, and writes the order together with
// its single line item and its creation history entry. All writes share one
// transaction; any failure rolls the whole sequence back.
//
// Returns the new order id, or lib.ErrProductUnavailable when the requested
// product does not exist or is inactive.
func (osvc *OrderService) CreateOrder(ctx context.Context, req *structs.OrderRequest) (int64, error) {
	var productName string

	orderID, err := database.TransactionWithResult(ctx, osvc.db, func(ctx context.Context, tx bun.Tx) (int64, error) {
		customerID, err := osvc.findOrCreateCustomer(ctx, tx, req)
		if err != nil {
			return 0, err
		}

		product := new(tables.Product)
		err = tx.NewSelect().
			Model(product).
			Column("id", "nombre", "precio").
			Where("p.id = ?", req.ProductID).
			Where("p.activo = ?", true).
			Limit(1).
			Scan(ctx)
		if errors.Is(err, sql.ErrNoRows) {
			return 0, lib.ErrProductUnavailable
		}
		if err != nil {
			return 0, lib.MapPgError(err)
		}
		productName = product.Nombre

		order := &tables.Order{
			ClienteID:        customerID,
			Subtotal:         product.Precio,
			Total:            product.Precio,
			MetodoPago:       req.PaymentMethod,
			FechaEntrega:     req.DeliveryDate,
			DireccionEntrega: req.Address,
			Notas:            req.Note,
			FechaCreacion:    time.Now(),
		}
		if _, err := tx.NewInsert().Model(order).Exec(ctx); err != nil {
			return 0, lib.MapPgError(err)
		}

		line := &tables.OrderLine{
			PedidoID:       order.ID,
			ProductoID:     product.ID,
			Cantidad:       1,
			PrecioUnitario: product.Precio,
			Subtotal:       product.Precio,
		}
		if _, err := tx.NewInsert().Model(line).Exec(ctx); err != nil {
			return 0, lib.MapPgError(err)
		}

		history := &tables.OrderHistory{
			PedidoID:   order.ID,
			EstadoID:   tables.EstadoCreado,
			Comentario: tables.ComentarioPedidoCreado,
		}
		if _, err := tx.NewInsert().Model(history).Exec(ctx); err != nil {
			return 0, lib.MapPgError(err)
		}

		return order.ID, nil
	})
	if err != nil {
		if !errors.Is(err, lib.ErrProductUnavailable) {
			osvc.logger.Error("Failed to create order",
				gecho.Field("error", err),
				gecho.Field("product_id", req.ProductID))
		}
		return 0, err
	}

	osvc.logger.Info("Order created successfully",
		gecho.Field("order_id", orderID),
		gecho.Field("product_id", req.ProductID))

	// Confirmation mail is best effort and must not delay the response.
	if req.Email != "" && osvc.emailService.Enabled() {
		go func() {
			if err := osvc.emailService.SendOrderConfirmation(req.Email, req.CustomerName, orderID, productName); err != nil {
				osvc.logger.Error("Failed to send order confirmation email",
					gecho.Field("error", err),
					gecho.Field("order_id", orderID))
			}
		}()
	}

	return orderID, nil
}

// findOrCreateCustomer looks a customer up by phone and lazily creates one on
// first contact. An existing customer's stored name, email and address are
// left untouched on repeat orders.
func (osvc *OrderService) findOrCreateCustomer(ctx context.Context, tx bun.Tx, req *structs.OrderRequest) (int64, error) {
	customer := new(tables.Customer)
	err := tx.NewSelect().
		Model(customer).
		Column("id").
		Where("cl.telefono = ?", req.Phone).
		Limit(1).
		Scan(ctx)
	if err == nil {
		return customer.ID, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return 0, lib.MapPgError(err)
	}

	name := req.CustomerName
	if name == "" {
		name = "Cliente"
	}

	customer = &tables.Customer{
		Nombre:    name,
		Telefono:  req.Phone,
		Email:     req.Email,
		Direccion: req.Address,
	}
	if _, err := tx.NewInsert().Model(customer).Exec(ctx); err != nil {
		return 0, lib.MapPgError(err)
	}

	osvc.logger.Debug("Customer created", gecho.Field("customer_id", customer.ID))

	return customer.ID, nil
}
