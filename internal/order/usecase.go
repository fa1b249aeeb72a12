package order

import (
	"context"

	"github.com/partsbaypro/baypro-api/internal/model"
	"github.com/partsbaypro/baypro-api/internal/order/dto"
)

type UseCase interface {
	Checkout(ctx context.Context, customerID int64, input *dto.CheckoutInput) (*dto.CheckoutResult, error)
	ListOrders(ctx context.Context, customerID int64) ([]model.Order, error)
	GetOrder(ctx context.Context, id, customerID int64) (*model.Order, error)
}
