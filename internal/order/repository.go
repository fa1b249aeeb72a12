package order

import (
	"context"

	"github.com/partsbaypro/baypro-api/internal/model"
)

type Repository interface {
	// CreateOrder persists the order and its items and decrements stock for
	// each line, all in one transaction. The decrement is conditional on
	// sufficient stock; any shortfall rolls the whole order back with an
	// InsufficientStockError. An order-number collision rolls back with
	// ErrOrderNumberTaken.
	CreateOrder(ctx context.Context, o *model.Order) error

	FindByCustomer(ctx context.Context, customerID int64) ([]model.Order, error)
	FindByID(ctx context.Context, id, customerID int64) (*model.Order, error)
	ItemsFor(ctx context.Context, orderIDs []int64) (map[int64][]model.OrderItem, error)

	// ActiveProductsByIDs loads live, active product rows with their images
	// for price/stock/snapshot resolution at checkout time.
	ActiveProductsByIDs(ctx context.Context, ids []int64) (map[int64]model.Product, error)
}
