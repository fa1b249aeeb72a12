package order

import (
	"fmt"

	"github.com/pkg/errors"
)

var ErrNotFound = errors.New("order not found")

// ErrOrderNumberTaken signals an order-number collision inside the checkout
// transaction; the caller re-rolls the number and retries.
var ErrOrderNumberTaken = errors.New("order number already exists")

// ProductNotFoundError aborts a checkout when a cart line references a
// missing or inactive product.
type ProductNotFoundError struct {
	ProductID int64
}

func (e *ProductNotFoundError) Error() string {
	return fmt.Sprintf("Product #%d not found", e.ProductID)
}

// InsufficientStockError names the product whose live stock cannot cover the
// requested quantity.
type InsufficientStockError struct {
	ProductID   int64
	ProductName string
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("Insufficient stock for %s", e.ProductName)
}
