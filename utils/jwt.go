package utils

import (
	"errors"
	"strings"

	"github.com/contractify/contractify-backend/config"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// Identity is the authenticated caller resolved from a bearer token.
type Identity struct {
	UserID string
	Email  string
	Name   string
	Role   string
}

func ExtractToken(c *gin.Context) string {
	if token, err := c.Cookie("access_token"); err == nil && token != "" {
		return token
	}
	authHeader := c.GetHeader("Authorization")
	parts := strings.Fields(authHeader)
	if len(parts) == 2 && strings.ToLower(parts[0]) == "bearer" {
		return parts[1]
	}
	return ""
}

func ParseToken(tokenString string, config *config.EnvConfig) (*jwt.Token, error) {
	secret := []byte(config.JWT.SecretKey)
	return jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return secret, nil
	})
}

// IdentityFromClaims builds an Identity from token claims. user_id and email
// are required; name and role are optional.
func IdentityFromClaims(claims jwt.MapClaims) (*Identity, error) {
	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return nil, errors.New("invalid user_id claim")
	}
	email, ok := claims["email"].(string)
	if !ok || email == "" {
		return nil, errors.New("invalid email claim")
	}

	identity := &Identity{UserID: userID, Email: email}
	if name, ok := claims["name"].(string); ok {
		identity.Name = name
	}
	if role, ok := claims["role"].(string); ok {
		identity.Role = role
	}
	return identity, nil
}

const identityContextKey = "identity"

func InjectIdentity(c *gin.Context, identity *Identity) {
	c.Set(identityContextKey, identity)
	c.Set("user_id", identity.UserID)
}

// GetIdentity returns the caller identity set by the auth middleware.
func GetIdentity(c *gin.Context) (*Identity, error) {
	value, exists := c.Get(identityContextKey)
	if !exists {
		return nil, errors.New("identity is missing from context")
	}
	identity, ok := value.(*Identity)
	if !ok || identity == nil {
		return nil, errors.New("invalid identity type in context")
	}
	return identity, nil
}

// GetOptionalIdentity returns the identity when present, or nil for anonymous
// callers on optional-auth routes. Absence is a normal outcome, not an error.
func GetOptionalIdentity(c *gin.Context) *Identity {
	value, exists := c.Get(identityContextKey)
	if !exists {
		return nil
	}
	identity, _ := value.(*Identity)
	return identity
}

// DisplayName is the actor name recorded in history entries.
func (i *Identity) DisplayName() string {
	if i.Name != "" {
		return i.Name
	}
	return i.Email
}
