package usuarioControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/tucanasta/comparador-api/models"
)

type UpdateUsuarioInput struct {
	Username  *string `json:"username"`
	Nombre    *string `json:"nombre"`
	Apellido  *string `json:"apellido"`
	Direccion *string `json:"direccion"`
	Email     *string `json:"email"`
}

type CambiarPasswordInput struct {
	PasswordActual string `json:"password_actual" binding:"required"`
	PasswordNueva  string `json:"password_nueva" binding:"required,min=8"`
}

// GET /user
func GetUsuario(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		usuarioID := c.GetString("user_id")

		var usuario models.Usuario
		if err := db.First(&usuario, "id = ?", usuarioID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Usuario no encontrado"})
			return
		}
		c.JSON(http.StatusOK, usuario)
	}
}

// PUT /user
func UpdateUsuario(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		usuarioID := c.GetString("user_id")

		var usuario models.Usuario
		if err := db.First(&usuario, "id = ?", usuarioID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Usuario no encontrado"})
			return
		}

		var input UpdateUsuarioInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		updates := make(map[string]interface{})
		if input.Username != nil {
			updates["username"] = *input.Username
		}
		if input.Nombre != nil {
			updates["nombre"] = *input.Nombre
		}
		if input.Apellido != nil {
			updates["apellido"] = *input.Apellido
		}
		if input.Direccion != nil {
			updates["direccion"] = *input.Direccion
		}
		if input.Email != nil {
			updates["email"] = *input.Email
		}

		if len(updates) > 0 {
			if err := db.Model(&usuario).Updates(updates).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudo actualizar el usuario"})
				return
			}
		}
		c.JSON(http.StatusOK, usuario)
	}
}

// PUT /user/password
func CambiarPassword(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		usuarioID := c.GetString("user_id")

		var input CambiarPasswordInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Datos inválidos: " + err.Error()})
			return
		}

		var usuario models.Usuario
		if err := db.First(&usuario, "id = ?", usuarioID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Usuario no encontrado"})
			return
		}

		if bcrypt.CompareHashAndPassword([]byte(usuario.PasswordHash), []byte(input.PasswordActual)) != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Contraseña actual incorrecta"})
			return
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(input.PasswordNueva), bcrypt.DefaultCost)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudo actualizar la contraseña"})
			return
		}
		if err := db.Model(&usuario).Update("password_hash", string(hash)).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudo actualizar la contraseña"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"ok": true, "message": "Contraseña actualizada"})
	}
}
