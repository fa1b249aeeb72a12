package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/partsbaypro/baypro-api/internal/vendors"
	"github.com/partsbaypro/baypro-api/internal/vendors/dto"
)

const dashboardMonths = 4

type vendorUseCase struct {
	repo         vendor.Repository
	imageBaseURL string
	logger       *zap.Logger
}

func NewVendorUseCase(repo vendor.Repository, imageBaseURL string, log *zap.Logger) vendor.UseCase {
	return &vendorUseCase{
		repo:         repo,
		imageBaseURL: strings.TrimRight(imageBaseURL, "/") + "/",
		logger:       log,
	}
}

func (uc *vendorUseCase) Dashboard(ctx context.Context, vendorID int64) (*dto.Dashboard, error) {
	totalProducts, err := uc.repo.CountProducts(ctx, vendorID)
	if err != nil {
		return nil, err
	}

	totalSales, totalRevenue, err := uc.repo.SalesTotals(ctx, vendorID)
	if err != nil {
		return nil, err
	}

	pending, err := uc.repo.CountPendingOrders(ctx, vendorID)
	if err != nil {
		return nil, err
	}

	monthly, err := uc.repo.MonthlySales(ctx, vendorID, dashboardMonths)
	if err != nil {
		return nil, err
	}

	return &dto.Dashboard{
		TotalSales:    totalSales,
		TotalRevenue:  totalRevenue,
		TotalProducts: totalProducts,
		PendingOrders: pending,
		MonthlySales:  monthly,
	}, nil
}

func (uc *vendorUseCase) Sales(ctx context.Context, vendorID int64) ([]dto.SaleRow, error) {
	sales, err := uc.repo.ListSales(ctx, vendorID)
	if err != nil {
		return nil, err
	}
	for i := range sales {
		url := sales[i].ProductImage
		if url != "" && !strings.HasPrefix(url, "http") {
			sales[i].ProductImage = uc.imageBaseURL + strings.TrimLeft(url, "/")
		}
	}
	return sales, nil
}

func (uc *vendorUseCase) ExportSales(ctx context.Context, vendorID int64) ([]byte, error) {
	sales, err := uc.repo.ListSales(ctx, vendorID)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Sales"
	f.SetSheetName(f.GetSheetName(0), sheet)

	headers := []interface{}{"Order Number", "Product", "Quantity", "Unit Price", "Line Total", "Status", "Customer", "Date"}
	if err := f.SetSheetRow(sheet, "A1", &headers); err != nil {
		return nil, errors.Wrap(err, "write export header")
	}

	for i, sale := range sales {
		row := []interface{}{
			sale.OrderNumber,
			sale.ProductName,
			sale.Quantity,
			sale.Price,
			sale.Total,
			sale.Status,
			sale.CustomerName,
			sale.CreatedAt.Format("2006-01-02"),
		}
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return nil, errors.Wrap(err, "write export row")
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, errors.Wrap(err, "render export")
	}
	return buf.Bytes(), nil
}
