package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

func TestIdentityFromClaims(t *testing.T) {
	identity, err := IdentityFromClaims(jwt.MapClaims{
		"user_id": "user-1",
		"email":   "ana@example.com",
		"name":    "Ana Gómez",
		"role":    "USER",
	})
	if err != nil {
		t.Fatalf("IdentityFromClaims: %v", err)
	}
	if identity.UserID != "user-1" || identity.Email != "ana@example.com" {
		t.Errorf("unexpected identity: %+v", identity)
	}
	if identity.DisplayName() != "Ana Gómez" {
		t.Errorf("DisplayName = %q, want name", identity.DisplayName())
	}
}

func TestIdentityFromClaimsOptionalFields(t *testing.T) {
	identity, err := IdentityFromClaims(jwt.MapClaims{
		"user_id": "user-2",
		"email":   "b@example.com",
	})
	if err != nil {
		t.Fatalf("IdentityFromClaims: %v", err)
	}
	if identity.DisplayName() != "b@example.com" {
		t.Errorf("DisplayName = %q, want email fallback", identity.DisplayName())
	}
}

func TestIdentityFromClaimsMissingRequired(t *testing.T) {
	if _, err := IdentityFromClaims(jwt.MapClaims{"email": "a@b.c"}); err == nil {
		t.Error("missing user_id accepted")
	}
	if _, err := IdentityFromClaims(jwt.MapClaims{"user_id": "u"}); err == nil {
		t.Error("missing email accepted")
	}
}

func TestExtractToken(t *testing.T) {
	gin.SetMode(gin.TestMode)

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/", nil)
	c.Request.Header.Set("Authorization", "Bearer abc123")
	if got := ExtractToken(c); got != "abc123" {
		t.Errorf("ExtractToken from header = %q, want abc123", got)
	}

	c, _ = gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/", nil)
	c.Request.AddCookie(&http.Cookie{Name: "access_token", Value: "cookie-token"})
	if got := ExtractToken(c); got != "cookie-token" {
		t.Errorf("ExtractToken from cookie = %q, want cookie-token", got)
	}

	c, _ = gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/", nil)
	c.Request.Header.Set("Authorization", "Basic abc123")
	if got := ExtractToken(c); got != "" {
		t.Errorf("ExtractToken from basic auth = %q, want empty", got)
	}
}

func TestGetOptionalIdentity(t *testing.T) {
	gin.SetMode(gin.TestMode)

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	if got := GetOptionalIdentity(c); got != nil {
		t.Errorf("anonymous context returned identity %+v", got)
	}

	InjectIdentity(c, &Identity{UserID: "u", Email: "u@example.com"})
	got := GetOptionalIdentity(c)
	if got == nil || got.UserID != "u" {
		t.Errorf("injected identity not returned: %+v", got)
	}
}
