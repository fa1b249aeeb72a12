package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/partsbaypro/baypro-api/internal/auth"
	"github.com/partsbaypro/baypro-api/internal/order"
	"github.com/partsbaypro/baypro-api/internal/order/dto"
	orderUC "github.com/partsbaypro/baypro-api/internal/order/usecase"
	"github.com/partsbaypro/baypro-api/pkg/response"
)

type OrderHandler struct {
	uc     order.UseCase
	logger *zap.Logger
}

func NewOrderHandler(uc order.UseCase, log *zap.Logger) *OrderHandler {
	return &OrderHandler{uc: uc, logger: log}
}

func (h *OrderHandler) List(c *gin.Context) {
	claims := auth.ClaimsFrom(c)

	orders, err := h.uc.ListOrders(c.Request.Context(), claims.UserID)
	if err != nil {
		h.logger.Error("order list failed", zap.Error(err))
		response.Error(c, http.StatusInternalServerError, "Failed to load orders")
		return
	}

	response.Success(c, http.StatusOK, "Success", orders)
}

func (h *OrderHandler) Get(c *gin.Context) {
	claims := auth.ClaimsFrom(c)

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusNotFound, "Order not found")
		return
	}

	o, err := h.uc.GetOrder(c.Request.Context(), id, claims.UserID)
	if err != nil {
		if errors.Is(err, order.ErrNotFound) {
			response.Error(c, http.StatusNotFound, "Order not found")
			return
		}
		h.logger.Error("order fetch failed", zap.Error(err))
		response.Error(c, http.StatusInternalServerError, "Failed to load order")
		return
	}

	response.Success(c, http.StatusOK, "Success", o)
}

func (h *OrderHandler) Checkout(c *gin.Context) {
	claims := auth.ClaimsFrom(c)

	var input dto.CheckoutInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.uc.Checkout(c.Request.Context(), claims.UserID, &input)
	if err != nil {
		var notFound *order.ProductNotFoundError
		var noStock *order.InsufficientStockError
		switch {
		case errors.Is(err, orderUC.ErrEmptyCheckout):
			response.Error(c, http.StatusUnprocessableEntity, "Items and shipping address are required")
		case errors.As(err, &notFound):
			response.Error(c, http.StatusNotFound, notFound.Error())
		case errors.As(err, &noStock):
			response.Error(c, http.StatusBadRequest, noStock.Error())
		default:
			h.logger.Error("checkout failed", zap.Error(err))
			response.Error(c, http.StatusInternalServerError, "Failed to create order")
		}
		return
	}

	response.Success(c, http.StatusCreated, "Order created successfully", result)
}
