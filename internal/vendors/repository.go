package vendor

import (
	"context"

	"github.com/partsbaypro/baypro-api/internal/vendors/dto"
)

type Repository interface {
	CountProducts(ctx context.Context, vendorID int64) (int, error)
	// SalesTotals returns the distinct-order sales count and summed revenue
	// across the vendor's order items.
	SalesTotals(ctx context.Context, vendorID int64) (int, float64, error)
	CountPendingOrders(ctx context.Context, vendorID int64) (int, error)
	MonthlySales(ctx context.Context, vendorID int64, months int) ([]dto.MonthlySales, error)
	ListSales(ctx context.Context, vendorID int64) ([]dto.SaleRow, error)
}
