package structs

// OrderRequest is the payload of POST /api/products/order as submitted by the
// storefront page. Phone doubles as the customer lookup key.
type OrderRequest struct {
	ProductID     int64  `json:"productId" validate:"required,gt=0"`
	Phone         string `json:"phone" validate:"required,min=5,max=20"`
	Address       string `json:"address" validate:"required,max=255"`
	Note          string `json:"note" validate:"omitempty,max=500"`
	DeliveryDate  string `json:"deliveryDate" validate:"omitempty,datetime=2006-01-02"`
	Email         string `json:"email" validate:"omitempty,email"`
	PaymentMethod string `json:"paymentMethod" validate:"required,max=50"`
	CustomerName  string `json:"customerName" validate:"omitempty,max=100"`
}
