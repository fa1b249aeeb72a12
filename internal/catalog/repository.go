package catalog

import (
	"context"

	"github.com/pkg/errors"

	"github.com/partsbaypro/baypro-api/internal/catalog/dto"
	"github.com/partsbaypro/baypro-api/internal/model"
)

var ErrNotFound = errors.New("product not found")

type Repository interface {
	FindAll(ctx context.Context, filters *dto.ProductFilters) ([]model.Product, int, error)
	FindByID(ctx context.Context, id int64) (*model.Product, error)
	ImagesFor(ctx context.Context, productIDs []int64) (map[int64][]model.ProductImage, error)
	ListCategories(ctx context.Context) ([]model.Category, error)

	FindByVendor(ctx context.Context, vendorID int64) ([]model.Product, error)
	Create(ctx context.Context, p *model.Product, imageURLs []string) error
	Update(ctx context.Context, vendorID, id int64, input *dto.UpdateProductInput) error
	Delete(ctx context.Context, vendorID, id int64) error
}
