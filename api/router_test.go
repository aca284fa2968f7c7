package api_test

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	_ "modernc.org/sqlite"

	"dulcetienda_server/api"
	"dulcetienda_server/config"
	"dulcetienda_server/database"
)

func testApp(t *testing.T) http.Handler {
	t.Helper()

	sqldb, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatal(err)
	}
	sqldb.SetMaxOpenConns(1)

	db := &database.DB{DB: bun.NewDB(sqldb, sqlitedialect.New())}
	t.Cleanup(func() { db.Close() })

	schema := `
	CREATE TABLE categorias(id INTEGER PRIMARY KEY AUTOINCREMENT, nombre TEXT NOT NULL);
	CREATE TABLE productos(
	  id INTEGER PRIMARY KEY AUTOINCREMENT, nombre TEXT NOT NULL, descripcion TEXT,
	  precio REAL NOT NULL, imagen TEXT, categoria_id INTEGER NOT NULL,
	  destacado INTEGER NOT NULL DEFAULT 0, activo INTEGER NOT NULL DEFAULT 1
	);
	CREATE TABLE clientes(
	  id INTEGER PRIMARY KEY AUTOINCREMENT, nombre TEXT NOT NULL,
	  telefono TEXT NOT NULL UNIQUE, email TEXT, direccion TEXT
	);
	CREATE TABLE pedidos(
	  id INTEGER PRIMARY KEY AUTOINCREMENT, cliente_id INTEGER NOT NULL,
	  subtotal REAL NOT NULL, total REAL NOT NULL, metodo_pago TEXT,
	  fecha_entrega TEXT, direccion_entrega TEXT, notas TEXT, fecha_creacion TEXT
	);
	CREATE TABLE pedidos_detalle(
	  id INTEGER PRIMARY KEY AUTOINCREMENT, pedido_id INTEGER NOT NULL,
	  producto_id INTEGER NOT NULL, cantidad INTEGER NOT NULL,
	  precio_unitario REAL NOT NULL, subtotal REAL NOT NULL
	);
	CREATE TABLE pedidos_historial(
	  id INTEGER PRIMARY KEY AUTOINCREMENT, pedido_id INTEGER NOT NULL,
	  estado_id INTEGER NOT NULL, comentario TEXT
	);

	INSERT INTO categorias(id,nombre) VALUES (1,'Tortas');
	INSERT INTO productos(id,nombre,descripcion,precio,imagen,categoria_id,destacado,activo) VALUES
	  (5,'Torta de Chocolate','Torta húmeda de chocolate',12.50,'torta-choco.jpg',1,0,1),
	  (7,'Torta Tres Leches','La especialidad de la casa',15.00,'tres-leches.jpg',1,1,1),
	  (9,'Torta de Vainilla','Descontinuada',10.00,'vainilla.jpg',1,0,0);
	`
	if _, err := db.Exec(schema); err != nil {
		t.Fatal(err)
	}

	cfg := config.Load()
	return api.App(config.NewLogger(cfg), cfg, db)
}

func doJSON(t *testing.T, app http.Handler, method, target, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	rec := httptest.NewRecorder()
	app.ServeHTTP(rec, req)

	decoded := map[string]any{}
	if rec.Body.Len() > 0 {
		if err := json.Unmarshal(rec.Body.Bytes(), &decoded); err != nil {
			t.Fatalf("%s %s: invalid JSON response %q: %v", method, target, rec.Body.String(), err)
		}
	}
	return rec, decoded
}

func TestRootMessage(t *testing.T) {
	app := testApp(t)

	rec, body := doJSON(t, app, http.MethodGet, "/", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if body["message"] != "API is working" {
		t.Errorf("unexpected root message %q", body["message"])
	}
}

func TestFetchProducts(t *testing.T) {
	app := testApp(t)

	rec, body := doJSON(t, app, http.MethodGet, "/api/products", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if body["success"] != true {
		t.Error("expected success true")
	}

	items, ok := body["items"].([]any)
	if !ok {
		t.Fatalf("expected items array, got %T", body["items"])
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 active products, got %d", len(items))
	}

	first, _ := items[0].(map[string]any)
	if first["id"] != float64(7) {
		t.Errorf("expected featured product first, got id %v", first["id"])
	}
	if first["categoria"] != "Tortas" {
		t.Errorf("expected categoria 'Tortas', got %v", first["categoria"])
	}
}

func TestFetchProductByID(t *testing.T) {
	app := testApp(t)

	rec, body := doJSON(t, app, http.MethodGet, "/api/products/5", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if body["nombre"] != "Torta de Chocolate" {
		t.Errorf("unexpected nombre %v", body["nombre"])
	}
	if body["precio"] != 12.50 {
		t.Errorf("unexpected precio %v", body["precio"])
	}
	if body["categoria"] != "Tortas" {
		t.Errorf("unexpected categoria %v", body["categoria"])
	}
}

func TestFetchProductByIDNotFound(t *testing.T) {
	app := testApp(t)

	for _, target := range []string{"/api/products/99999", "/api/products/9"} {
		rec, body := doJSON(t, app, http.MethodGet, target, "")
		if rec.Code != http.StatusNotFound {
			t.Errorf("%s: expected 404, got %d", target, rec.Code)
		}
		if body["success"] != false {
			t.Errorf("%s: expected success false", target)
		}
	}
}

func TestFetchProductByIDInvalid(t *testing.T) {
	app := testApp(t)

	rec, body := doJSON(t, app, http.MethodGet, "/api/products/abc", "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if body["success"] != false {
		t.Error("expected success false")
	}
}

func TestCreateOrderEndpoint(t *testing.T) {
	app := testApp(t)

	rec, body := doJSON(t, app, http.MethodPost, "/api/products/order",
		`{"productId":5,"phone":"555-0001","address":"Av. Siempre Viva 742","paymentMethod":"efectivo"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	if body["success"] != true {
		t.Error("expected success true")
	}
	id, ok := body["id"].(float64)
	if !ok || id < 1 {
		t.Errorf("expected a positive order id, got %v", body["id"])
	}

	// Ordering a product must not change the catalog.
	rec, _ = doJSON(t, app, http.MethodGet, "/api/products/5", "")
	if rec.Code != http.StatusOK {
		t.Errorf("product should still be available after ordering, got %d", rec.Code)
	}
}

func TestCreateOrderValidation(t *testing.T) {
	app := testApp(t)

	cases := []struct {
		name string
		body string
	}{
		{"missing phone", `{"productId":5,"address":"Calle 1","paymentMethod":"efectivo"}`},
		{"missing product", `{"phone":"555-0001","address":"Calle 1","paymentMethod":"efectivo"}`},
		{"bad email", `{"productId":5,"phone":"555-0001","address":"Calle 1","paymentMethod":"efectivo","email":"nope"}`},
		{"malformed json", `{"productId":`},
		{"unknown field", `{"productId":5,"phone":"555-0001","address":"Calle 1","paymentMethod":"efectivo","extra":true}`},
	}

	for _, tc := range cases {
		rec, body := doJSON(t, app, http.MethodPost, "/api/products/order", tc.body)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("%s: expected 400, got %d: %s", tc.name, rec.Code, rec.Body.String())
			continue
		}
		if body["success"] != false {
			t.Errorf("%s: expected success false", tc.name)
		}
	}
}

func TestCreateOrderUnavailableProduct(t *testing.T) {
	app := testApp(t)

	rec, body := doJSON(t, app, http.MethodPost, "/api/products/order",
		`{"productId":99999,"phone":"555-0001","address":"Calle 1","paymentMethod":"efectivo"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
	}
	if body["error"] != "producto no disponible" {
		t.Errorf("unexpected error message %v", body["error"])
	}
}

func TestHealthEndpoints(t *testing.T) {
	app := testApp(t)

	for _, target := range []string{"/health/server", "/health/database"} {
		rec, _ := doJSON(t, app, http.MethodGet, target, "")
		if rec.Code != http.StatusOK {
			t.Errorf("%s: expected 200, got %d: %s", target, rec.Code, rec.Body.String())
		}
	}
}

func TestBodyLimit(t *testing.T) {
	t.Setenv("SERVER_MAX_BODY_BYTES", "64")
	app := testApp(t)

	oversized := `{"productId":5,"phone":"555-0001","address":"` +
		strings.Repeat("x", 200) + `","paymentMethod":"efectivo"}`

	rec, body := doJSON(t, app, http.MethodPost, "/api/products/order", oversized)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for oversized body, got %d: %s", rec.Code, rec.Body.String())
	}
	if body["success"] != false {
		t.Error("expected success false")
	}
}

func TestUnknownRoute(t *testing.T) {
	app := testApp(t)

	rec, _ := doJSON(t, app, http.MethodGet, "/nope", "")
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
}
