package handler

import (
	"math"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/partsbaypro/baypro-api/internal/auth"
	"github.com/partsbaypro/baypro-api/internal/catalog"
	"github.com/partsbaypro/baypro-api/internal/catalog/dto"
	"github.com/partsbaypro/baypro-api/pkg/response"
)

type CatalogHandler struct {
	uc     catalog.UseCase
	logger *zap.Logger
}

func NewCatalogHandler(uc catalog.UseCase, log *zap.Logger) *CatalogHandler {
	return &CatalogHandler{uc: uc, logger: log}
}

func (h *CatalogHandler) ListProducts(c *gin.Context) {
	filters := &dto.ProductFilters{
		Search:       c.Query("search"),
		CategorySlug: c.Query("category"),
		Brand:        c.Query("brand"),
		Condition:    c.Query("condition"),
		Location:     c.Query("location"),
		Sort:         c.Query("sort"),
	}
	if v, err := strconv.ParseFloat(c.Query("min_price"), 64); err == nil {
		filters.MinPrice = &v
	}
	if v, err := strconv.ParseFloat(c.Query("max_price"), 64); err == nil {
		filters.MaxPrice = &v
	}
	filters.Page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	filters.PerPage, _ = strconv.Atoi(c.DefaultQuery("per_page", "20"))
	filters.Normalize()

	products, total, err := h.uc.ListProducts(c.Request.Context(), filters)
	if err != nil {
		h.logger.Error("product list failed", zap.Error(err))
		response.Error(c, http.StatusInternalServerError, "Failed to load products")
		return
	}

	response.Paginated(c, products, response.Meta{
		CurrentPage: filters.Page,
		LastPage:    int(math.Ceil(float64(total) / float64(filters.PerPage))),
		PerPage:     filters.PerPage,
		Total:       total,
	})
}

func (h *CatalogHandler) GetProduct(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusNotFound, "Product not found")
		return
	}

	p, err := h.uc.GetProduct(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			response.Error(c, http.StatusNotFound, "Product not found")
			return
		}
		h.logger.Error("product fetch failed", zap.Error(err))
		response.Error(c, http.StatusInternalServerError, "Failed to load product")
		return
	}

	response.Success(c, http.StatusOK, "Success", p)
}

func (h *CatalogHandler) ListCategories(c *gin.Context) {
	categories, err := h.uc.ListCategories(c.Request.Context())
	if err != nil {
		h.logger.Error("category list failed", zap.Error(err))
		response.Error(c, http.StatusInternalServerError, "Failed to load categories")
		return
	}
	response.Success(c, http.StatusOK, "Success", categories)
}

// Vendor-scoped product management. All of these run behind RequireRole(vendor).

func (h *CatalogHandler) VendorProducts(c *gin.Context) {
	claims := auth.ClaimsFrom(c)

	products, err := h.uc.VendorProducts(c.Request.Context(), claims.UserID)
	if err != nil {
		h.logger.Error("vendor product list failed", zap.Error(err))
		response.Error(c, http.StatusInternalServerError, "Failed to load products")
		return
	}
	response.Success(c, http.StatusOK, "Success", products)
}

func (h *CatalogHandler) CreateProduct(c *gin.Context) {
	claims := auth.ClaimsFrom(c)

	var input dto.CreateProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if input.Name == "" || input.Price <= 0 {
		response.ValidationError(c, "Name and price are required", map[string][]string{
			"name":  {"Name is required"},
			"price": {"Price is required"},
		})
		return
	}

	p, err := h.uc.CreateProduct(c.Request.Context(), claims.UserID, &input)
	if err != nil {
		h.logger.Error("product create failed", zap.Error(err))
		response.Error(c, http.StatusInternalServerError, "Failed to create product")
		return
	}

	response.Success(c, http.StatusCreated, "Product created successfully", p)
}

func (h *CatalogHandler) UpdateProduct(c *gin.Context) {
	claims := auth.ClaimsFrom(c)

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusNotFound, "Product not found")
		return
	}

	var input dto.UpdateProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.uc.UpdateProduct(c.Request.Context(), claims.UserID, id, &input); err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			response.Error(c, http.StatusNotFound, "Product not found")
			return
		}
		h.logger.Error("product update failed", zap.Error(err))
		response.Error(c, http.StatusInternalServerError, "Failed to update product")
		return
	}

	response.Success(c, http.StatusOK, "Product updated", nil)
}

func (h *CatalogHandler) DeleteProduct(c *gin.Context) {
	claims := auth.ClaimsFrom(c)

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusNotFound, "Product not found")
		return
	}

	if err := h.uc.DeleteProduct(c.Request.Context(), claims.UserID, id); err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			response.Error(c, http.StatusNotFound, "Product not found")
			return
		}
		h.logger.Error("product delete failed", zap.Error(err))
		response.Error(c, http.StatusInternalServerError, "Failed to delete product")
		return
	}

	response.Success(c, http.StatusOK, "Product deleted", nil)
}
