package tables

import "github.com/uptrace/bun"

// Customer is a row of the `clientes` table. Telefono is the natural lookup
// key: a customer is created on the first order from a phone number and the
// stored name/email/address are not refreshed on repeat orders.
type Customer struct {
	bun.BaseModel `bun:"table:clientes,alias:cl"`

	ID        int64  `bun:"id,pk,autoincrement" json:"id"`
	Nombre    string `bun:"nombre,notnull" json:"nombre"`
	Telefono  string `bun:"telefono,notnull,unique" json:"telefono"`
	Email     string `bun:"email" json:"email,omitempty"`
	Direccion string `bun:"direccion" json:"direccion,omitempty"`
}
