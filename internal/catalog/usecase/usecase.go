package usecase

import (
	"context"
	"crypto/md5"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/partsbaypro/baypro-api/internal/catalog"
	"github.com/partsbaypro/baypro-api/internal/catalog/dto"
	"github.com/partsbaypro/baypro-api/internal/model"
)

const (
	listCacheTTL     = 5 * time.Minute
	listCachePattern = "products:list:*"
)

type catalogUseCase struct {
	repo         catalog.Repository
	cache        *redis.Client
	imageBaseURL string
	logger       *zap.Logger
}

// NewCatalogUseCase wires the catalog reader. cache may be nil; listing then
// always hits the database.
func NewCatalogUseCase(repo catalog.Repository, cache *redis.Client, imageBaseURL string, log *zap.Logger) catalog.UseCase {
	return &catalogUseCase{
		repo:         repo,
		cache:        cache,
		imageBaseURL: strings.TrimRight(imageBaseURL, "/") + "/",
		logger:       log,
	}
}

type cachedList struct {
	Products []model.Product `json:"products"`
	Count    int             `json:"count"`
}

func (uc *catalogUseCase) ListProducts(ctx context.Context, filters *dto.ProductFilters) ([]model.Product, int, error) {
	filters.Normalize()

	cacheKey := uc.listCacheKey(filters)
	if uc.cache != nil {
		if val, err := uc.cache.Get(ctx, cacheKey).Result(); err == nil {
			var cached cachedList
			if err := json.Unmarshal([]byte(val), &cached); err == nil {
				return cached.Products, cached.Count, nil
			}
		}
	}

	products, count, err := uc.repo.FindAll(ctx, filters)
	if err != nil {
		return nil, 0, err
	}
	if err := uc.attachImages(ctx, products); err != nil {
		return nil, 0, err
	}

	if uc.cache != nil {
		if data, err := json.Marshal(cachedList{Products: products, Count: count}); err == nil {
			uc.cache.Set(ctx, cacheKey, data, listCacheTTL)
		}
	}

	return products, count, nil
}

func (uc *catalogUseCase) GetProduct(ctx context.Context, id int64) (*model.Product, error) {
	p, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, catalog.ErrNotFound
	}

	products := []model.Product{*p}
	if err := uc.attachImages(ctx, products); err != nil {
		return nil, err
	}
	return &products[0], nil
}

func (uc *catalogUseCase) ListCategories(ctx context.Context) ([]model.Category, error) {
	categories, err := uc.repo.ListCategories(ctx)
	if err != nil {
		return nil, err
	}
	for i := range categories {
		categories[i].Slug = categories[i].EffectiveSlug()
	}
	return categories, nil
}

func (uc *catalogUseCase) VendorProducts(ctx context.Context, vendorID int64) ([]model.Product, error) {
	products, err := uc.repo.FindByVendor(ctx, vendorID)
	if err != nil {
		return nil, err
	}
	if err := uc.attachImages(ctx, products); err != nil {
		return nil, err
	}
	return products, nil
}

func (uc *catalogUseCase) CreateProduct(ctx context.Context, vendorID int64, input *dto.CreateProductInput) (*model.Product, error) {
	condition := model.Condition(input.Condition)
	if !condition.Valid() {
		condition = model.ConditionNew
	}

	now := time.Now()
	p := &model.Product{
		BaseModel:          model.BaseModel{CreatedAt: now, UpdatedAt: now},
		VendorID:           vendorID,
		CategoryID:         input.CategoryID,
		Name:               input.Name,
		Description:        input.Description,
		Price:              input.Price,
		SalePrice:          input.SalePrice,
		Brand:              input.Brand,
		ModelCompatibility: model.StringList(input.ModelCompatibility),
		YearRangeStart:     input.YearRangeStart,
		YearRangeEnd:       input.YearRangeEnd,
		Condition:          condition,
		SKU:                input.SKU,
		StockQuantity:      input.StockQuantity,
		Specifications:     model.SpecMap(input.Specifications),
		Weight:             input.Weight,
		WarrantyMonths:     input.WarrantyMonths,
		Location:           input.Location,
		IsActive:           true,
	}
	if input.Dimensions != nil {
		p.Dimensions = model.NullDimensions{Dimensions: &model.Dimensions{
			Length: input.Dimensions.Length,
			Width:  input.Dimensions.Width,
			Height: input.Dimensions.Height,
			Unit:   input.Dimensions.Unit,
		}}
	}

	if err := uc.repo.Create(ctx, p, input.ImageURLs); err != nil {
		return nil, err
	}

	// Synchronous so a list read issued right after the write cannot be
	// served the pre-write cache entry.
	uc.invalidateListCache(ctx)

	return uc.GetProduct(ctx, p.ID)
}

func (uc *catalogUseCase) UpdateProduct(ctx context.Context, vendorID, id int64, input *dto.UpdateProductInput) error {
	if err := uc.repo.Update(ctx, vendorID, id, input); err != nil {
		return err
	}
	uc.invalidateListCache(ctx)
	return nil
}

func (uc *catalogUseCase) DeleteProduct(ctx context.Context, vendorID, id int64) error {
	if err := uc.repo.Delete(ctx, vendorID, id); err != nil {
		return err
	}
	uc.invalidateListCache(ctx)
	return nil
}

// attachImages loads image rows for a product batch, falls back to the legacy
// single-image column, and rewrites relative URLs against the image base.
func (uc *catalogUseCase) attachImages(ctx context.Context, products []model.Product) error {
	ids := make([]int64, len(products))
	for i := range products {
		ids[i] = products[i].ID
	}

	imagesByProduct, err := uc.repo.ImagesFor(ctx, ids)
	if err != nil {
		return err
	}

	for i := range products {
		p := &products[i]
		images := imagesByProduct[p.ID]
		if len(images) == 0 && p.LegacyImage != nil && *p.LegacyImage != "" {
			images = []model.ProductImage{{ProductID: p.ID, URL: *p.LegacyImage, IsPrimary: true}}
		}
		for j := range images {
			images[j].URL = uc.AbsoluteImageURL(images[j].URL)
		}
		if images == nil {
			images = []model.ProductImage{}
		}
		p.Images = images
	}
	return nil
}

// AbsoluteImageURL prefixes relative stored paths with the configured base.
func (uc *catalogUseCase) AbsoluteImageURL(url string) string {
	if url == "" || strings.HasPrefix(url, "http") {
		return url
	}
	return uc.imageBaseURL + strings.TrimLeft(url, "/")
}

func (uc *catalogUseCase) listCacheKey(filters *dto.ProductFilters) string {
	data, _ := json.Marshal(filters)
	return fmt.Sprintf("products:list:%x", md5.Sum(data))
}

func (uc *catalogUseCase) invalidateListCache(ctx context.Context) {
	if uc.cache == nil {
		return
	}
	keys, err := uc.cache.Keys(ctx, listCachePattern).Result()
	if err != nil {
		uc.logger.Warn("list cache invalidation failed", zap.Error(err))
		return
	}
	if len(keys) > 0 {
		uc.cache.Del(ctx, keys...)
	}
}
