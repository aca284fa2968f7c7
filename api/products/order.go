package products

import (
	"errors"
	"net/http"

	"github.com/MonkyMars/gecho"

	"dulcetienda_server/lib"
	"dulcetienda_server/structs"
)

// CreateOrder handles POST /api/products/order.
func (prm *ProductRoutesManager) CreateOrder(w http.ResponseWriter, r *http.Request) {
	body, err := lib.ExtractAndValidateBody[structs.OrderRequest](r)
	if err != nil {
		var ve *lib.ValidationError
		if errors.As(err, &ve) {
			lib.WriteJSON(w, http.StatusBadRequest, lib.ErrorEnvelope{
				Success: false,
				Error:   ve,
			})
			return
		}

		lib.WriteJSON(w, http.StatusBadRequest, lib.ErrorEnvelope{
			Success: false,
			Error:   "cuerpo de la solicitud inválido",
		})
		return
	}

	orderID, err := prm.orderService.CreateOrder(r.Context(), body)
	if err != nil {
		if errors.Is(err, lib.ErrProductUnavailable) {
			lib.WriteJSON(w, http.StatusBadRequest, lib.ErrorEnvelope{
				Success: false,
				Error:   "producto no disponible",
			})
			return
		}

		// The cause is logged by the service; clients get a fixed message.
		lib.WriteJSON(w, http.StatusInternalServerError, lib.ErrorEnvelope{
			Success: false,
			Error:   "no se pudo crear el pedido",
		})
		return
	}

	prm.logger.Debug("Order accepted", gecho.Field("order_id", orderID))

	lib.WriteJSON(w, http.StatusCreated, lib.CreatedEnvelope{
		Success: true,
		Message: "Pedido creado",
		ID:      orderID,
	})
}
