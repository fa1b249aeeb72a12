package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/partsbaypro/baypro-api/internal/auth"
	"github.com/partsbaypro/baypro-api/internal/payment"
	"github.com/partsbaypro/baypro-api/internal/payment/dto"
	"github.com/partsbaypro/baypro-api/pkg/response"
)

type PaymentHandler struct {
	uc     payment.UseCase
	logger *zap.Logger
}

func NewPaymentHandler(uc payment.UseCase, log *zap.Logger) *PaymentHandler {
	return &PaymentHandler{uc: uc, logger: log}
}

func (h *PaymentHandler) Initiate(c *gin.Context) {
	claims := auth.ClaimsFrom(c)

	var input dto.InitiateInput
	if err := c.ShouldBindJSON(&input); err != nil || input.OrderID == 0 {
		response.ValidationError(c, "Order ID is required", map[string][]string{
			"order_id": {"Order ID is required"},
		})
		return
	}

	result, err := h.uc.Initiate(c.Request.Context(), claims.UserID, input.OrderID)
	if err != nil {
		if errors.Is(err, payment.ErrOrderNotFound) {
			response.Error(c, http.StatusNotFound, "Order not found")
			return
		}
		h.logger.Error("payment initiate failed", zap.Error(err))
		response.Error(c, http.StatusInternalServerError, "Failed to initiate payment")
		return
	}

	response.Success(c, http.StatusOK, "Success", result)
}

// Callback is the gateway's server-to-server notification endpoint. It is
// unauthenticated and always acknowledges processable notifications with
// plain-text OK so the gateway stops retrying.
func (h *PaymentHandler) Callback(c *gin.Context) {
	if err := c.Request.ParseForm(); err != nil {
		response.Error(c, http.StatusBadRequest, "No data received")
		return
	}

	err := h.uc.HandleNotification(c.Request.Context(), c.Request.PostForm)
	if err != nil {
		switch {
		case errors.Is(err, payment.ErrEmptyPayload):
			response.Error(c, http.StatusBadRequest, "No data received")
		case errors.Is(err, payment.ErrMissingOrderID):
			response.Error(c, http.StatusBadRequest, "No order ID")
		default:
			h.logger.Error("payment callback failed", zap.Error(err))
			response.Error(c, http.StatusInternalServerError, "Failed to process notification")
		}
		return
	}

	c.String(http.StatusOK, "OK")
}
