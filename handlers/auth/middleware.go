package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt"

	"provider-panel-server/models"
	"provider-panel-server/utils"
)

func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.RespondError(c, http.StatusUnauthorized, "Authorization header is missing")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			utils.RespondError(c, http.StatusUnauthorized, "Invalid authorization header format")
			c.Abort()
			return
		}

		token, err := jwt.Parse(parts[1], func(token *jwt.Token) (interface{}, error) {
			return utils.JWTSecret(), nil
		})
		if err != nil || !token.Valid {
			utils.RespondError(c, http.StatusUnauthorized, "Invalid token")
			c.Abort()
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			utils.RespondError(c, http.StatusUnauthorized, "Invalid token claims")
			c.Abort()
			return
		}

		providerIDFloat, ok := claims["provider_id"].(float64) // JWT numeric values are float64
		if !ok {
			utils.RespondError(c, http.StatusUnauthorized, "Invalid provider ID in token")
			c.Abort()
			return
		}

		var provider models.Provider
		if err := utils.DB.First(&provider, uint(providerIDFloat)).Error; err != nil {
			utils.RespondError(c, http.StatusUnauthorized, "Provider not found")
			c.Abort()
			return
		}

		c.Set("provider", provider)

		c.Next()
	}
}

// CurrentProvider pulls the authenticated provider that AuthMiddleware
// stored in the context.
func CurrentProvider(c *gin.Context) (models.Provider, bool) {
	value, exists := c.Get("provider")
	if !exists {
		return models.Provider{}, false
	}
	provider, ok := value.(models.Provider)
	return provider, ok
}
