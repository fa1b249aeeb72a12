// Package response implements the API's JSON envelopes: every success body is
// {success, message, data} and every error body is {success, message, errors?}.
package response

import (
	"github.com/gin-gonic/gin"
)

type Meta struct {
	CurrentPage int `json:"current_page"`
	LastPage    int `json:"last_page"`
	PerPage     int `json:"per_page"`
	Total       int `json:"total"`
}

func Success(c *gin.Context, status int, message string, data interface{}) {
	c.JSON(status, gin.H{
		"success": true,
		"message": message,
		"data":    data,
	})
}

// Paginated is Success plus a meta block, used by list endpoints.
func Paginated(c *gin.Context, data interface{}, meta Meta) {
	c.JSON(200, gin.H{
		"success": true,
		"message": "Success",
		"data":    data,
		"meta":    meta,
	})
}

func Error(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, gin.H{
		"success": false,
		"message": message,
	})
}

// ValidationError carries field-level messages, keyed by field name.
func ValidationError(c *gin.Context, message string, errs map[string][]string) {
	c.AbortWithStatusJSON(422, gin.H{
		"success": false,
		"message": message,
		"errors":  errs,
	})
}
