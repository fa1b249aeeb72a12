package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/partsbaypro/baypro-api/internal/model"
	"github.com/partsbaypro/baypro-api/pkg/response"
)

const claimsKey = "auth_claims"

// RequireAuth verifies the Authorization bearer token and stores the claims
// on the gin context.
func RequireAuth(codec *Codec) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			response.Error(c, http.StatusUnauthorized, "Unauthorized")
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			response.Error(c, http.StatusUnauthorized, "Unauthorized")
			return
		}

		claims, err := codec.Verify(parts[1])
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "Unauthorized")
			return
		}

		c.Set(claimsKey, claims)
		c.Next()
	}
}

// RequireRole rejects authenticated requests whose role claim does not match.
// Must run after RequireAuth.
func RequireRole(role model.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := ClaimsFrom(c)
		if claims == nil || claims.Role != role {
			response.Error(c, http.StatusForbidden, "Forbidden")
			return
		}
		c.Next()
	}
}

// ClaimsFrom returns the verified claims set by RequireAuth, or nil.
func ClaimsFrom(c *gin.Context) *Claims {
	v, ok := c.Get(claimsKey)
	if !ok {
		return nil
	}
	claims, ok := v.(*Claims)
	if !ok {
		return nil
	}
	return claims
}
