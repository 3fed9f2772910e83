package middleware

import (
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func protectedRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/user", ValidateToken, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": c.GetString("user_id")})
	})
	r.GET("/admin", ValidateAPIKey, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r
}

func firmarToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(os.Getenv("JWT_SECRET")))
	require.NoError(t, err)
	return signed
}

func TestValidateTokenAceptaTokenFirmado(t *testing.T) {
	t.Setenv("JWT_SECRET", "secreto-de-test")
	r := protectedRouter()

	token := firmarToken(t, jwt.MapClaims{
		"user_id": "u-1",
		"exp":     time.Now().Add(time.Hour).Unix(),
	})
	req := httptest.NewRequest(http.MethodGet, "/user", nil)
	req.Header.Set("Authorization", token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), "u-1")
}

func TestValidateTokenRechazaSinHeader(t *testing.T) {
	t.Setenv("JWT_SECRET", "secreto-de-test")
	r := protectedRouter()

	req := httptest.NewRequest(http.MethodGet, "/user", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestValidateTokenRechazaExpirado(t *testing.T) {
	t.Setenv("JWT_SECRET", "secreto-de-test")
	r := protectedRouter()

	token := firmarToken(t, jwt.MapClaims{
		"user_id": "u-1",
		"exp":     time.Now().Add(-time.Hour).Unix(),
	})
	req := httptest.NewRequest(http.MethodGet, "/user", nil)
	req.Header.Set("Authorization", token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestValidateTokenRechazaSinUserID(t *testing.T) {
	t.Setenv("JWT_SECRET", "secreto-de-test")
	r := protectedRouter()

	token := firmarToken(t, jwt.MapClaims{
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	req := httptest.NewRequest(http.MethodGet, "/user", nil)
	req.Header.Set("Authorization", token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestValidateAPIKey(t *testing.T) {
	t.Setenv("ADMIN_API_KEY", "clave-admin")
	r := protectedRouter()

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("X-API-KEY", "clave-admin")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	req = httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("X-API-KEY", "otra")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
