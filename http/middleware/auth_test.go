package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/contractify/contractify-backend/config"
	"github.com/contractify/contractify-backend/utils"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const testSecret = "test-secret"

func testEnvConfig() *config.EnvConfig {
	cfg := &config.EnvConfig{}
	cfg.JWT.SecretKey = testSecret
	cfg.JWT.Algorithm = "HS256"
	return cfg
}

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}
	return signed
}

func validClaims() jwt.MapClaims {
	return jwt.MapClaims{
		"user_id": "user-1",
		"email":   "ana@example.com",
		"name":    "Ana Gómez",
		"exp":     time.Now().Add(time.Hour).Unix(),
	}
}

func newAuthRouter(t *testing.T, optional bool) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := testEnvConfig()
	r := gin.New()
	if optional {
		r.Use(OptionalAuthMiddleware(cfg))
	} else {
		r.Use(AuthMiddleware(cfg))
	}
	r.GET("/probe", func(c *gin.Context) {
		if identity := utils.GetOptionalIdentity(c); identity != nil {
			c.JSON(200, gin.H{"userId": identity.UserID})
			return
		}
		c.JSON(200, gin.H{"userId": nil})
	})
	return r
}

func TestAuthMiddlewareAcceptsBearerToken(t *testing.T) {
	r := newAuthRouter(t, false)

	req := httptest.NewRequest("GET", "/probe", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, testSecret, validClaims()))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body: %s", w.Code, w.Body.String())
	}
}

func TestAuthMiddlewareAcceptsCookie(t *testing.T) {
	r := newAuthRouter(t, false)

	req := httptest.NewRequest("GET", "/probe", nil)
	req.AddCookie(&http.Cookie{Name: "access_token", Value: signToken(t, testSecret, validClaims())})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
}

func TestAuthMiddlewareRejectsMissingToken(t *testing.T) {
	r := newAuthRouter(t, false)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/probe", nil))

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
}

func TestAuthMiddlewareRejectsWrongSecret(t *testing.T) {
	r := newAuthRouter(t, false)

	req := httptest.NewRequest("GET", "/probe", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, "other-secret", validClaims()))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
}

func TestAuthMiddlewareRejectsExpiredToken(t *testing.T) {
	r := newAuthRouter(t, false)

	claims := validClaims()
	claims["exp"] = time.Now().Add(-time.Hour).Unix()
	req := httptest.NewRequest("GET", "/probe", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, testSecret, claims))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
}

func TestAuthMiddlewareRejectsMissingRequiredClaims(t *testing.T) {
	r := newAuthRouter(t, false)

	req := httptest.NewRequest("GET", "/probe", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, testSecret, jwt.MapClaims{
		"email": "ana@example.com",
		"exp":   time.Now().Add(time.Hour).Unix(),
	}))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
}

func TestOptionalAuthContinuesAnonymously(t *testing.T) {
	r := newAuthRouter(t, true)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/probe", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 for anonymous caller", w.Code)
	}
}

func TestOptionalAuthTreatsMalformedTokenAsAbsent(t *testing.T) {
	r := newAuthRouter(t, true)

	req := httptest.NewRequest("GET", "/probe", nil)
	req.Header.Set("Authorization", "Bearer not-a-jwt")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 for malformed token", w.Code)
	}
}

func TestOptionalAuthResolvesValidToken(t *testing.T) {
	r := newAuthRouter(t, true)

	req := httptest.NewRequest("GET", "/probe", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, testSecret, validClaims()))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if body := w.Body.String(); body != `{"userId":"user-1"}` {
		t.Errorf("body = %s, want resolved user id", body)
	}
}
