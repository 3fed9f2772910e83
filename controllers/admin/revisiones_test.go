package adminControllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/tucanasta/comparador-api/models"
)

func setupAdmin(t *testing.T) (*gorm.DB, *gin.Engine) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Usuario{}, &models.Supermercado{}, &models.Producto{}, &models.Pyme{}))

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/admin/revisiones", ListPendingProductos(db))
	r.POST("/admin/revisiones/:id/aprobar", AprobarProducto(db, nil))
	r.POST("/admin/revisiones/:id/rechazar", RechazarProducto(db))
	r.PUT("/admin/revisiones/:id", EditarProducto(db, nil))
	r.GET("/admin/pymes/pendientes", ListPendingPymes(db))
	r.POST("/admin/pymes/:id/aprobar", AprobarPyme(db))
	r.POST("/admin/pymes/:id/rechazar", RechazarPyme(db))
	r.POST("/admin/supermercados", CreateSupermercado(db))
	r.PUT("/admin/supermercados/:id", UpdateSupermercado(db))
	r.DELETE("/admin/supermercados/:id", DeleteSupermercado(db, nil))
	return db, r
}

func crearPymeConProducto(t *testing.T, db *gorm.DB) (models.Pyme, models.Producto) {
	t.Helper()
	usuario := models.Usuario{ID: uuid.NewString(), Username: "ana", RUT: "12345678-9", Email: "ana@test.cl", PasswordHash: "x"}
	require.NoError(t, db.Create(&usuario).Error)

	supermercado := models.Supermercado{Nombre: "Almacén Doña Rosa"}
	require.NoError(t, db.Create(&supermercado).Error)

	pyme := models.Pyme{UsuarioID: usuario.ID, Nombre: supermercado.Nombre, SupermercadoID: supermercado.ID}
	require.NoError(t, db.Create(&pyme).Error)

	producto := models.Producto{
		Nombre:         "Mermelada casera",
		Tipo:           "conservas",
		SupermercadoID: supermercado.ID,
		Precio:         decimal.NewFromInt(2500),
		Disponible:     false,
	}
	require.NoError(t, db.Create(&producto).Error)
	return pyme, producto
}

func do(r *gin.Engine, method, path string, payload interface{}) *httptest.ResponseRecorder {
	var body *bytes.Reader
	if payload != nil {
		b, _ := json.Marshal(payload)
		body = bytes.NewReader(b)
	} else {
		body = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRevisionesListaSoloPendientes(t *testing.T) {
	db, r := setupAdmin(t)
	_, pendiente := crearPymeConProducto(t, db)

	aprobado := models.Producto{
		Nombre: "Arroz", Tipo: "arroz",
		SupermercadoID: pendiente.SupermercadoID,
		Precio:         decimal.NewFromInt(1000),
		Disponible:     true,
	}
	require.NoError(t, db.Create(&aprobado).Error)

	w := do(r, http.MethodGet, "/admin/revisiones", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var pendientes []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &pendientes))
	require.Len(t, pendientes, 1)
	assert.Equal(t, "Mermelada casera", pendientes[0]["nombre"])
}

func TestAprobarProductoLoHaceVisible(t *testing.T) {
	db, r := setupAdmin(t)
	_, producto := crearPymeConProducto(t, db)

	w := do(r, http.MethodPost, "/admin/revisiones/"+strconv.Itoa(int(producto.ID))+"/aprobar", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var recargado models.Producto
	require.NoError(t, db.First(&recargado, producto.ID).Error)
	assert.True(t, recargado.Disponible)
}

func TestRechazarProductoLoElimina(t *testing.T) {
	db, r := setupAdmin(t)
	_, producto := crearPymeConProducto(t, db)

	w := do(r, http.MethodPost, "/admin/revisiones/"+strconv.Itoa(int(producto.ID))+"/rechazar", nil)
	require.Equal(t, http.StatusOK, w.Code)

	err := db.First(&models.Producto{}, producto.ID).Error
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestRechazarProductoAprobadoFalla(t *testing.T) {
	db, r := setupAdmin(t)
	_, producto := crearPymeConProducto(t, db)
	require.NoError(t, db.Model(&producto).Update("disponible", true).Error)

	w := do(r, http.MethodPost, "/admin/revisiones/"+strconv.Itoa(int(producto.ID))+"/rechazar", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestEditarProductoCamposParciales(t *testing.T) {
	db, r := setupAdmin(t)
	_, producto := crearPymeConProducto(t, db)

	nombre := "Mermelada de frambuesa"
	precio := "2990"
	w := do(r, http.MethodPut, "/admin/revisiones/"+strconv.Itoa(int(producto.ID)), EditarProductoInput{
		Nombre: &nombre,
		Precio: &precio,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var recargado models.Producto
	require.NoError(t, db.First(&recargado, producto.ID).Error)
	assert.Equal(t, "Mermelada de frambuesa", recargado.Nombre)
	assert.Equal(t, "2990", recargado.Precio.String())
	assert.Equal(t, "conservas", recargado.Tipo, "campo no enviado no cambia")
}

func TestEditarProductoPrecioInvalido(t *testing.T) {
	db, r := setupAdmin(t)
	_, producto := crearPymeConProducto(t, db)

	precio := "-100"
	w := do(r, http.MethodPut, "/admin/revisiones/"+strconv.Itoa(int(producto.ID)), EditarProductoInput{Precio: &precio})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAprobarPyme(t *testing.T) {
	db, r := setupAdmin(t)
	pyme, _ := crearPymeConProducto(t, db)

	w := do(r, http.MethodGet, "/admin/pymes/pendientes", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var pendientes []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &pendientes))
	require.Len(t, pendientes, 1)

	w = do(r, http.MethodPost, "/admin/pymes/"+strconv.Itoa(int(pyme.ID))+"/aprobar", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var recargada models.Pyme
	require.NoError(t, db.First(&recargada, pyme.ID).Error)
	assert.True(t, recargada.Approved)

	w = do(r, http.MethodGet, "/admin/pymes/pendientes", nil)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &pendientes))
	assert.Empty(t, pendientes)
}

func TestRechazarPymeBorraTiendaYProductos(t *testing.T) {
	db, r := setupAdmin(t)
	pyme, producto := crearPymeConProducto(t, db)

	w := do(r, http.MethodPost, "/admin/pymes/"+strconv.Itoa(int(pyme.ID))+"/rechazar", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	assert.ErrorIs(t, db.First(&models.Pyme{}, pyme.ID).Error, gorm.ErrRecordNotFound)
	assert.ErrorIs(t, db.First(&models.Supermercado{}, pyme.SupermercadoID).Error, gorm.ErrRecordNotFound)
	assert.ErrorIs(t, db.First(&models.Producto{}, producto.ID).Error, gorm.ErrRecordNotFound)
}

func TestSupermercadosCRUD(t *testing.T) {
	db, r := setupAdmin(t)

	w := do(r, http.MethodPost, "/admin/supermercados", SupermercadoInput{Nombre: "Unimarc"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var creado models.Supermercado
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &creado))

	// nombre duplicado
	w = do(r, http.MethodPost, "/admin/supermercados", SupermercadoInput{Nombre: "Unimarc"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(r, http.MethodPut, "/admin/supermercados/"+strconv.Itoa(int(creado.ID)), SupermercadoInput{
		Nombre:       "Unimarc",
		URLPrincipal: "https://unimarc.cl",
	})
	require.Equal(t, http.StatusOK, w.Code)

	producto := models.Producto{Nombre: "Arroz", Tipo: "arroz", SupermercadoID: creado.ID, Precio: decimal.NewFromInt(1000), Disponible: true}
	require.NoError(t, db.Create(&producto).Error)

	w = do(r, http.MethodDelete, "/admin/supermercados/"+strconv.Itoa(int(creado.ID)), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.ErrorIs(t, db.First(&models.Supermercado{}, creado.ID).Error, gorm.ErrRecordNotFound)
	assert.ErrorIs(t, db.First(&models.Producto{}, producto.ID).Error, gorm.ErrRecordNotFound)
}
