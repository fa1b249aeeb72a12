package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/partsbaypro/baypro-api/pkg/response"
)

// CartHandler acknowledges cart mutations. The cart itself lives on the
// client; the server only validates the session and echoes success so the
// app can keep local and remote flows symmetrical.
type CartHandler struct{}

func NewCartHandler() *CartHandler {
	return &CartHandler{}
}

func (h *CartHandler) Get(c *gin.Context) {
	response.Success(c, http.StatusOK, "Success", []interface{}{})
}

func (h *CartHandler) Add(c *gin.Context) {
	response.Success(c, http.StatusOK, "Item added to cart", nil)
}

func (h *CartHandler) Update(c *gin.Context) {
	response.Success(c, http.StatusOK, "Cart updated", nil)
}

func (h *CartHandler) Remove(c *gin.Context) {
	response.Success(c, http.StatusOK, "Item removed from cart", nil)
}
