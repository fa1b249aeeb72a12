package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/partsbaypro/baypro-api/internal/auth"
	"github.com/partsbaypro/baypro-api/internal/vendors"
	"github.com/partsbaypro/baypro-api/pkg/response"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type VendorHandler struct {
	uc     vendor.UseCase
	logger *zap.Logger
}

func NewVendorHandler(uc vendor.UseCase, log *zap.Logger) *VendorHandler {
	return &VendorHandler{uc: uc, logger: log}
}

func (h *VendorHandler) Dashboard(c *gin.Context) {
	claims := auth.ClaimsFrom(c)

	dashboard, err := h.uc.Dashboard(c.Request.Context(), claims.UserID)
	if err != nil {
		h.logger.Error("vendor dashboard failed", zap.Error(err))
		response.Error(c, http.StatusInternalServerError, "Failed to load dashboard")
		return
	}

	response.Success(c, http.StatusOK, "Success", dashboard)
}

func (h *VendorHandler) Sales(c *gin.Context) {
	claims := auth.ClaimsFrom(c)

	sales, err := h.uc.Sales(c.Request.Context(), claims.UserID)
	if err != nil {
		h.logger.Error("vendor sales failed", zap.Error(err))
		response.Error(c, http.StatusInternalServerError, "Failed to load sales")
		return
	}

	response.Success(c, http.StatusOK, "Success", sales)
}

func (h *VendorHandler) ExportSales(c *gin.Context) {
	claims := auth.ClaimsFrom(c)

	book, err := h.uc.ExportSales(c.Request.Context(), claims.UserID)
	if err != nil {
		h.logger.Error("vendor sales export failed", zap.Error(err))
		response.Error(c, http.StatusInternalServerError, "Failed to export sales")
		return
	}

	filename := fmt.Sprintf("sales-%s.xlsx", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, xlsxContentType, book)
}
