package tables

import (
	"time"

	"github.com/uptrace/bun"
)

type Order struct {
	bun.BaseModel `bun:"table:pedidos,alias:o"`

	ID        int64 `bun:"id,pk,autoincrement" json:"id"`
	ClienteID int64 `bun:"cliente_id,notnull" json:"cliente_id"`

	// Snapshot of the product price at order time. With a single line of
	// quantity 1 both values equal the unit price.
	Subtotal float64 `bun:"subtotal,notnull" json:"subtotal"`
	Total    float64 `bun:"total,notnull" json:"total"`

	MetodoPago       string    `bun:"metodo_pago" json:"metodo_pago"`
	FechaEntrega     string    `bun:"fecha_entrega,nullzero" json:"fecha_entrega,omitempty"` // YYYY-MM-DD
	DireccionEntrega string    `bun:"direccion_entrega" json:"direccion_entrega"`
	Notas            string    `bun:"notas" json:"notas,omitempty"`
	FechaCreacion    time.Time `bun:"fecha_creacion,notnull" json:"fecha_creacion"`
}

type OrderLine struct {
	bun.BaseModel `bun:"table:pedidos_detalle,alias:od"`

	ID             int64   `bun:"id,pk,autoincrement" json:"id"`
	PedidoID       int64   `bun:"pedido_id,notnull" json:"pedido_id"`
	ProductoID     int64   `bun:"producto_id,notnull" json:"producto_id"`
	Cantidad       int     `bun:"cantidad,notnull" json:"cantidad"`
	PrecioUnitario float64 `bun:"precio_unitario,notnull" json:"precio_unitario"`
	Subtotal       float64 `bun:"subtotal,notnull" json:"subtotal"`
}

// OrderHistory is an append-only status record attached to an order. This
// core only ever writes the creation entry; later lifecycle transitions are
// managed elsewhere.
type OrderHistory struct {
	bun.BaseModel `bun:"table:pedidos_historial,alias:oh"`

	ID         int64  `bun:"id,pk,autoincrement" json:"id"`
	PedidoID   int64  `bun:"pedido_id,notnull" json:"pedido_id"`
	EstadoID   int64  `bun:"estado_id,notnull" json:"estado_id"`
	Comentario string `bun:"comentario" json:"comentario,omitempty"`
}

// EstadoCreado is the pedidos_historial.estado_id written at order creation.
const EstadoCreado int64 = 1

// ComentarioPedidoCreado is the comment written on the creation history entry.
const ComentarioPedidoCreado = "Pedido creado desde formulario web"
