package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"furniture-shop/models"
	"furniture-shop/utils"
)

// AuthMiddleware verifies the bearer token issued by the identity provider
// and exposes the session owner to handlers. Token issuance itself lives
// outside this service.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse{
				Success: false,
				Message: "Authorization header required",
			})
			c.Abort()
			return
		}

		tokenParts := strings.Split(authHeader, " ")
		if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse{
				Success: false,
				Message: "Invalid authorization header format",
			})
			c.Abort()
			return
		}

		claims, err := utils.ValidateToken(tokenParts[1])
		if err != nil {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse{
				Success: false,
				Message: "Invalid or expired token",
				Error:   err.Error(),
			})
			c.Abort()
			return
		}

		c.Set("owner_id", claims.OwnerID)
		c.Set("owner_email", claims.Email)
		c.Next()
	}
}
