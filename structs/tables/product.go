package tables

import "github.com/uptrace/bun"

// Product is a row of the `productos` table. Categoria is filled by the
// category join on read paths and never written back.
type Product struct {
	bun.BaseModel `bun:"table:productos,alias:p"`

	ID          int64   `bun:"id,pk,autoincrement" json:"id"`
	Nombre      string  `bun:"nombre,notnull" json:"nombre"`
	Descripcion string  `bun:"descripcion" json:"descripcion"`
	Precio      float64 `bun:"precio,notnull" json:"precio"` // DECIMAL(10,2) in the schema
	Imagen      string  `bun:"imagen" json:"imagen"`
	CategoriaID int64   `bun:"categoria_id,notnull" json:"categoria_id"`
	Destacado   bool    `bun:"destacado,notnull,default:false" json:"destacado"`
	Activo      bool    `bun:"activo,notnull,default:true" json:"activo"`
	Categoria   string  `bun:"categoria,scanonly" json:"categoria"`
}

type Category struct {
	bun.BaseModel `bun:"table:categorias,alias:c"`

	ID     int64  `bun:"id,pk,autoincrement" json:"id"`
	Nombre string `bun:"nombre,notnull" json:"nombre"`
}
