package products

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"

	"dulcetienda_server/lib"
	"dulcetienda_server/structs/tables"
)

// FetchProducts handles GET /api/products. An empty catalog is a 200 with an
// empty items array, not an error.
func (prm *ProductRoutesManager) FetchProducts(w http.ResponseWriter, r *http.Request) {
	products, err := prm.productService.ListActive(r.Context())
	if err != nil {
		prm.logger.Error("Failed to fetch products", gecho.Field("error", err))
		lib.WriteJSON(w, http.StatusInternalServerError, lib.MessageEnvelope{
			Success: false,
			Message: "no se pudieron obtener los productos",
		})
		return
	}

	if products == nil {
		products = []tables.Product{}
	}

	lib.WriteJSON(w, http.StatusOK, lib.ListEnvelope{
		Success: true,
		Items:   products,
	})
}

// FetchProductByID handles GET /api/products/{id}. The detail response is the
// bare product object, which the storefront page consumes as-is.
func (prm *ProductRoutesManager) FetchProductByID(w http.ResponseWriter, r *http.Request) {
	idStr := chi.URLParam(r, "id")

	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil || id < 1 {
		prm.logger.Warn("Invalid product ID format", gecho.Field("id", idStr))
		lib.WriteJSON(w, http.StatusBadRequest, lib.MessageEnvelope{
			Success: false,
			Message: "id de producto inválido",
		})
		return
	}

	product, err := prm.productService.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, lib.ErrNotFound) {
			lib.WriteJSON(w, http.StatusNotFound, lib.MessageEnvelope{
				Success: false,
				Message: "producto no encontrado",
			})
			return
		}

		prm.logger.Error("Failed to fetch product by ID", gecho.Field("id", id), gecho.Field("error", err))
		lib.WriteJSON(w, http.StatusInternalServerError, lib.MessageEnvelope{
			Success: false,
			Message: "no se pudo obtener el producto",
		})
		return
	}

	lib.WriteJSON(w, http.StatusOK, product)
}
