package middlewares

import (
	"net/http"

	"github.com/contractify/contractify-backend/config"
	"github.com/contractify/contractify-backend/utils"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// AuthMiddleware requires a valid bearer token and injects the resolved
// identity into the request context.
func AuthMiddleware(config *config.EnvConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr := utils.ExtractToken(c)

		if tokenStr == "" {
			tokenStr = c.Query("access_token")
		}

		if tokenStr == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"code": "UNAUTHORIZED", "message": "Authorization token is required"})
			c.Abort()
			return
		}

		identity, ok := resolveIdentity(tokenStr, config)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"code": "UNAUTHORIZED", "message": "Invalid or expired token"})
			c.Abort()
			return
		}

		utils.InjectIdentity(c, identity)
		c.Next()
	}
}

// OptionalAuthMiddleware resolves an identity when a valid token is present
// and continues anonymously otherwise. A malformed token is treated as
// absent, not as a failure.
func OptionalAuthMiddleware(config *config.EnvConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr := utils.ExtractToken(c)
		if tokenStr == "" {
			tokenStr = c.Query("access_token")
		}

		if tokenStr != "" {
			if identity, ok := resolveIdentity(tokenStr, config); ok {
				utils.InjectIdentity(c, identity)
			}
		}

		c.Next()
	}
}

func resolveIdentity(tokenStr string, config *config.EnvConfig) (*utils.Identity, bool) {
	parsedToken, err := utils.ParseToken(tokenStr, config)
	if err != nil || !parsedToken.Valid {
		return nil, false
	}

	claims, ok := parsedToken.Claims.(jwt.MapClaims)
	if !ok {
		return nil, false
	}

	identity, err := utils.IdentityFromClaims(claims)
	if err != nil {
		return nil, false
	}

	return identity, true
}
