package payment

import (
	"context"

	"github.com/partsbaypro/baypro-api/internal/model"
)

type Repository interface {
	// FindOrder scopes the lookup to the requesting customer.
	FindOrder(ctx context.Context, orderID, customerID int64) (*model.Order, error)
	FindOrderByID(ctx context.Context, orderID int64) (*model.Order, error)
	FindCustomer(ctx context.Context, id int64) (*model.User, error)

	MarkPaid(ctx context.Context, orderID int64, reference string) error
	MarkFailed(ctx context.Context, orderID int64) error
}
