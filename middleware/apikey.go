package middleware

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
)

func ValidateAPIKey(c *gin.Context) {
	apiKey := c.GetHeader("X-API-KEY")
	if apiKey == "" || apiKey != os.Getenv("ADMIN_API_KEY") {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "API key inválida o faltante"})
		c.Abort()
		return
	}
	c.Next()
}
