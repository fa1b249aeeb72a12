package catalog

import (
	"context"

	"github.com/partsbaypro/baypro-api/internal/catalog/dto"
	"github.com/partsbaypro/baypro-api/internal/model"
)

type UseCase interface {
	ListProducts(ctx context.Context, filters *dto.ProductFilters) ([]model.Product, int, error)
	GetProduct(ctx context.Context, id int64) (*model.Product, error)
	ListCategories(ctx context.Context) ([]model.Category, error)

	VendorProducts(ctx context.Context, vendorID int64) ([]model.Product, error)
	CreateProduct(ctx context.Context, vendorID int64, input *dto.CreateProductInput) (*model.Product, error)
	UpdateProduct(ctx context.Context, vendorID, id int64, input *dto.UpdateProductInput) error
	DeleteProduct(ctx context.Context, vendorID, id int64) error
}
