package dto

import "github.com/partsbaypro/baypro-api/internal/model"

type CheckoutItem struct {
	ProductID int64 `json:"product_id"`
	Quantity  int   `json:"quantity"`
}

type CheckoutInput struct {
	Items           []CheckoutItem        `json:"items"`
	ShippingAddress model.ShippingAddress `json:"shipping_address"`
	Notes           *string               `json:"notes"`
}

// CheckoutResult is the order summary handed back to the client, with a
// payment URL slot filled once the gateway redirect is requested.
type CheckoutResult struct {
	Order      OrderSummary `json:"order"`
	PaymentURL *string      `json:"payment_url"`
}

type OrderSummary struct {
	ID          int64   `json:"id"`
	OrderNumber string  `json:"order_number"`
	Total       float64 `json:"total"`
	Status      string  `json:"status"`
}
