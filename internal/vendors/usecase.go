package vendor

import (
	"context"

	"github.com/partsbaypro/baypro-api/internal/vendors/dto"
)

type UseCase interface {
	Dashboard(ctx context.Context, vendorID int64) (*dto.Dashboard, error)
	Sales(ctx context.Context, vendorID int64) ([]dto.SaleRow, error)
	// ExportSales renders the vendor's sales as an xlsx workbook.
	ExportSales(ctx context.Context, vendorID int64) ([]byte, error)
}
