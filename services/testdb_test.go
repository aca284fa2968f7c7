package services_test

import (
	"database/sql"
	"testing"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	_ "modernc.org/sqlite" // pure-Go SQLite driver

	"dulcetienda_server/database"
)

// memdb spins up an in-memory store with the storefront schema and a small
// catalog. Single connection so every query sees the same memory database.
func memdb(t *testing.T) *database.DB {
	t.Helper()

	sqldb, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatal(err)
	}
	sqldb.SetMaxOpenConns(1)

	db := &database.DB{DB: bun.NewDB(sqldb, sqlitedialect.New())}

	schema := `
	CREATE TABLE categorias(
	  id INTEGER PRIMARY KEY AUTOINCREMENT,
	  nombre TEXT NOT NULL
	);
	CREATE TABLE productos(
	  id INTEGER PRIMARY KEY AUTOINCREMENT,
	  nombre TEXT NOT NULL,
	  descripcion TEXT,
	  precio REAL NOT NULL,
	  imagen TEXT,
	  categoria_id INTEGER NOT NULL REFERENCES categorias(id),
	  destacado INTEGER NOT NULL DEFAULT 0,
	  activo INTEGER NOT NULL DEFAULT 1
	);
	CREATE TABLE clientes(
	  id INTEGER PRIMARY KEY AUTOINCREMENT,
	  nombre TEXT NOT NULL,
	  telefono TEXT NOT NULL UNIQUE,
	  email TEXT,
	  direccion TEXT
	);
	CREATE TABLE pedidos(
	  id INTEGER PRIMARY KEY AUTOINCREMENT,
	  cliente_id INTEGER NOT NULL REFERENCES clientes(id),
	  subtotal REAL NOT NULL,
	  total REAL NOT NULL,
	  metodo_pago TEXT,
	  fecha_entrega TEXT,
	  direccion_entrega TEXT,
	  notas TEXT,
	  fecha_creacion TEXT
	);
	CREATE TABLE pedidos_detalle(
	  id INTEGER PRIMARY KEY AUTOINCREMENT,
	  pedido_id INTEGER NOT NULL REFERENCES pedidos(id),
	  producto_id INTEGER NOT NULL REFERENCES productos(id),
	  cantidad INTEGER NOT NULL,
	  precio_unitario REAL NOT NULL,
	  subtotal REAL NOT NULL
	);
	CREATE TABLE pedidos_historial(
	  id INTEGER PRIMARY KEY AUTOINCREMENT,
	  pedido_id INTEGER NOT NULL REFERENCES pedidos(id),
	  estado_id INTEGER NOT NULL,
	  comentario TEXT
	);

	INSERT INTO categorias(id,nombre) VALUES (1,'Tortas');
	INSERT INTO productos(id,nombre,descripcion,precio,imagen,categoria_id,destacado,activo) VALUES
	  (2,'Brownie','Brownie de nuez',4.75,'brownie.jpg',1,0,1),
	  (5,'Torta de Chocolate','Torta húmeda de chocolate',12.50,'torta-choco.jpg',1,0,1),
	  (7,'Torta Tres Leches','La especialidad de la casa',15.00,'tres-leches.jpg',1,1,1),
	  (9,'Torta de Vainilla','Descontinuada',10.00,'vainilla.jpg',1,0,0);
	`
	if _, err := db.Exec(schema); err != nil {
		t.Fatal(err)
	}

	return db
}
