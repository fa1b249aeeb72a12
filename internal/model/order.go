package model

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/pkg/errors"
)

type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderConfirmed OrderStatus = "confirmed"
	OrderShipped   OrderStatus = "shipped"
	OrderDelivered OrderStatus = "delivered"
	OrderCancelled OrderStatus = "cancelled"
)

type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentPaid    PaymentStatus = "paid"
	PaymentFailed  PaymentStatus = "failed"
)

// ShippingAddress is the structured snapshot embedded on an order. It is a
// copy, not a reference: later edits to the customer's address book do not
// touch past orders.
type ShippingAddress struct {
	Name         string `json:"name"`
	Phone        string `json:"phone"`
	AddressLine1 string `json:"address_line1"`
	AddressLine2 string `json:"address_line2,omitempty"`
	City         string `json:"city"`
	State        string `json:"state"`
	PostalCode   string `json:"postal_code"`
	Country      string `json:"country"`
}

func (a ShippingAddress) Value() (driver.Value, error) {
	b, err := json.Marshal(a)
	if err != nil {
		return nil, errors.Wrap(err, "marshal shipping address")
	}
	return string(b), nil
}

func (a *ShippingAddress) Scan(src interface{}) error {
	*a = ShippingAddress{}
	b, ok := jsonBytes(src)
	if !ok || len(b) == 0 {
		return nil
	}
	var out ShippingAddress
	if err := json.Unmarshal(b, &out); err != nil {
		return nil
	}
	*a = out
	return nil
}

type Order struct {
	BaseModel
	OrderNumber      string          `db:"order_number" json:"order_number"`
	CustomerID       int64           `db:"customer_id" json:"customer_id"`
	Subtotal         float64         `db:"subtotal" json:"subtotal"`
	Shipping         float64         `db:"shipping" json:"shipping"`
	Tax              float64         `db:"tax" json:"tax"`
	Total            float64         `db:"total" json:"total"`
	Status           OrderStatus     `db:"status" json:"status"`
	PaymentStatus    PaymentStatus   `db:"payment_status" json:"payment_status"`
	PaymentMethod    string          `db:"payment_method" json:"payment_method"`
	PaymentReference *string         `db:"payment_reference" json:"payment_reference,omitempty"`
	ShippingAddress  ShippingAddress `db:"shipping_address" json:"shipping_address"`
	Notes            *string         `db:"notes" json:"notes"`

	Items []OrderItem `db:"-" json:"items"`
}

// OrderItem is immutable after creation. Product name, image and vendor are
// snapshots taken at checkout so later product edits or deletion do not
// rewrite order history.
type OrderItem struct {
	ID           int64     `db:"id" json:"id"`
	OrderID      int64     `db:"order_id" json:"-"`
	ProductID    int64     `db:"product_id" json:"product_id"`
	VendorID     int64     `db:"vendor_id" json:"-"`
	ProductName  string    `db:"product_name" json:"product_name"`
	ProductImage string    `db:"product_image" json:"product_image"`
	Quantity     int       `db:"quantity" json:"quantity"`
	Price        float64   `db:"price" json:"price"`
	Total        float64   `db:"total" json:"total"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}
