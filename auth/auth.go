package auth

import (
	"net/http"
	"os"
	"regexp"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/tucanasta/comparador-api/models"
)

// RUT chileno: 12345678-9 o 12345678-K
var rutPattern = regexp.MustCompile(`^\d{7,8}-[0-9Kk]$`)

type SignupInput struct {
	Username  string `json:"username" binding:"required"`
	Nombre    string `json:"nombre" binding:"required"`
	Apellido  string `json:"apellido" binding:"required"`
	RUT       string `json:"rut" binding:"required"`
	Direccion string `json:"direccion"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=8"`
}

type LoginInput struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// POST /auth/signup
func Signup(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input SignupInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Datos inválidos: " + err.Error()})
			return
		}

		if !rutPattern.MatchString(input.RUT) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "El RUT debe tener el formato 12345678-9 o 12345678-K"})
			return
		}

		var count int64
		if err := db.Model(&models.Usuario{}).
			Where("username = ? OR email = ? OR rut = ?", input.Username, input.Email, input.RUT).
			Count(&count).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error de base de datos"})
			return
		}
		if count > 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Ya existe un usuario con ese username, correo o RUT"})
			return
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudo registrar el usuario"})
			return
		}

		usuario := models.Usuario{
			ID:           uuid.NewString(),
			Username:     input.Username,
			Nombre:       input.Nombre,
			Apellido:     input.Apellido,
			RUT:          input.RUT,
			Direccion:    input.Direccion,
			Email:        input.Email,
			PasswordHash: string(hash),
		}
		if err := db.Create(&usuario).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudo registrar el usuario"})
			return
		}

		token, err := GenerateJWT(usuario.ID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudo generar el token"})
			return
		}
		c.JSON(http.StatusCreated, gin.H{"ok": true, "token": token, "usuario": usuario})
	}
}

// POST /auth/login
func Login(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input LoginInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Datos inválidos"})
			return
		}

		// Mensaje genérico: no se revela si el usuario existe.
		var usuario models.Usuario
		if err := db.Where("username = ?", input.Username).First(&usuario).Error; err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Usuario o contraseña incorrectos"})
			return
		}
		if bcrypt.CompareHashAndPassword([]byte(usuario.PasswordHash), []byte(input.Password)) != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Usuario o contraseña incorrectos"})
			return
		}

		token, err := GenerateJWT(usuario.ID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudo generar el token"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"ok": true, "token": token, "usuario": usuario})
	}
}

// GenerateJWT firma un token HS256 con el user_id; expira a los dos meses.
func GenerateJWT(usuarioID string) (string, error) {
	claims := jwt.MapClaims{
		"user_id": usuarioID,
		"exp":     time.Now().AddDate(0, 2, 0).Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(os.Getenv("JWT_SECRET")))
}
