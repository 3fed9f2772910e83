package cotizacionControllers

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/tucanasta/comparador-api/models"
)

// Operaciones del ciclo de vida de la cotización. Todas reciben la identidad
// del usuario de forma explícita; los handlers la extraen del token validado.
// Un item o cotización de otro usuario se responde como inexistente
// (gorm.ErrRecordNotFound), nunca se filtra.

const (
	ItemEliminado   = "deleted"
	ItemActualizado = "updated"
)

type ItemAgregado struct {
	ItemID   uint            `json:"item_id"`
	Producto string          `json:"producto"`
	Cantidad int             `json:"cantidad"`
	Subtotal decimal.Decimal `json:"subtotal"`
	Total    decimal.Decimal `json:"total"`
}

// GetOrCreateAbierta devuelve la cotización "open" del usuario, creándola si
// no existe. Ante dos primeras llamadas simultáneas el índice parcial único
// rechaza la segunda inserción y se relee la fila ganadora.
func GetOrCreateAbierta(db *gorm.DB, usuarioID string) (*models.Cotizacion, error) {
	var cot models.Cotizacion
	err := db.Where("usuario_id = ? AND status = ?", usuarioID, models.CotizacionAbierta).First(&cot).Error
	if err == nil {
		return &cot, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, err
	}

	cot = models.Cotizacion{UsuarioID: usuarioID, Status: models.CotizacionAbierta}
	if createErr := db.Create(&cot).Error; createErr != nil {
		if err := db.Where("usuario_id = ? AND status = ?", usuarioID, models.CotizacionAbierta).First(&cot).Error; err != nil {
			return nil, createErr
		}
	}
	return &cot, nil
}

// AgregarItem agrega un producto a la cotización abierta del usuario. Si el
// producto ya está en la cotización incrementa la cantidad y refresca el
// precio capturado al precio vigente del producto (se reprecia, no se
// conserva el histórico). Cantidad no positiva se asume 1, igual que una
// cantidad ilegible en el form; las cantidades persistidas son siempre
// positivas.
func AgregarItem(db *gorm.DB, usuarioID string, productoID uint, cantidad int) (*ItemAgregado, error) {
	if cantidad < 1 {
		cantidad = 1
	}

	var producto models.Producto
	if err := db.First(&producto, productoID).Error; err != nil {
		return nil, err
	}

	cot, err := GetOrCreateAbierta(db, usuarioID)
	if err != nil {
		return nil, err
	}

	var item models.CotizacionItem
	err = db.Where("cotizacion_id = ? AND producto_id = ?", cot.ID, productoID).First(&item).Error
	switch {
	case err == gorm.ErrRecordNotFound:
		item = models.CotizacionItem{
			CotizacionID: cot.ID,
			ProductoID:   producto.ID,
			Cantidad:     cantidad,
			PrecioUnidad: producto.Precio,
		}
		if err := db.Create(&item).Error; err != nil {
			return nil, err
		}
	case err != nil:
		return nil, err
	default:
		item.Cantidad += cantidad
		item.PrecioUnidad = producto.Precio
		if err := db.Save(&item).Error; err != nil {
			return nil, err
		}
	}

	total, err := TotalCotizacion(db, cot.ID)
	if err != nil {
		return nil, err
	}

	return &ItemAgregado{
		ItemID:   item.ID,
		Producto: producto.Nombre,
		Cantidad: item.Cantidad,
		Subtotal: item.Subtotal(),
		Total:    total,
	}, nil
}

// ActualizarItem fija la cantidad de un item del usuario. Cantidad cero o
// negativa elimina el item en lugar de fallar. Devuelve el estado
// ("deleted"/"updated") y el total recalculado de la cotización.
func ActualizarItem(db *gorm.DB, usuarioID string, itemID uint, cantidad int) (string, decimal.Decimal, error) {
	item, err := itemDelUsuario(db, usuarioID, itemID)
	if err != nil {
		return "", decimal.Zero, err
	}

	msg := ItemActualizado
	if cantidad <= 0 {
		if err := db.Delete(&models.CotizacionItem{}, item.ID).Error; err != nil {
			return "", decimal.Zero, err
		}
		msg = ItemEliminado
	} else {
		item.Cantidad = cantidad
		if err := db.Save(item).Error; err != nil {
			return "", decimal.Zero, err
		}
	}

	total, err := TotalCotizacion(db, item.CotizacionID)
	if err != nil {
		return "", decimal.Zero, err
	}
	return msg, total, nil
}

// EliminarItem borra un item del usuario y devuelve el total recalculado.
func EliminarItem(db *gorm.DB, usuarioID string, itemID uint) (decimal.Decimal, error) {
	item, err := itemDelUsuario(db, usuarioID, itemID)
	if err != nil {
		return decimal.Zero, err
	}
	if err := db.Delete(&models.CotizacionItem{}, item.ID).Error; err != nil {
		return decimal.Zero, err
	}
	return TotalCotizacion(db, item.CotizacionID)
}

// Guardar marca la cotización abierta del usuario como "saved". Sin
// cotización abierta devuelve gorm.ErrRecordNotFound. Si no viene nombre se
// genera uno con la hora local.
func Guardar(db *gorm.DB, usuarioID, nombre string) (uint, error) {
	var cot models.Cotizacion
	if err := db.Where("usuario_id = ? AND status = ?", usuarioID, models.CotizacionAbierta).First(&cot).Error; err != nil {
		return 0, err
	}

	if nombre == "" {
		nombre = "Cotización " + time.Now().Format("2006-01-02 15:04")
	}
	updates := map[string]interface{}{"nombre": nombre, "status": models.CotizacionGuardada}
	if err := db.Model(&cot).Updates(updates).Error; err != nil {
		return 0, err
	}
	return cot.ID, nil
}

// Reabrir pone la cotización indicada en "open". Cualquier otra cotización
// abierta del usuario pasa antes a "saved"; junto con el índice parcial esto
// mantiene a lo sumo una abierta.
func Reabrir(db *gorm.DB, usuarioID string, cotID uint) error {
	var cot models.Cotizacion
	if err := db.Where("id = ? AND usuario_id = ?", cotID, usuarioID).First(&cot).Error; err != nil {
		return err
	}

	if err := db.Model(&models.Cotizacion{}).
		Where("usuario_id = ? AND status = ? AND id <> ?", usuarioID, models.CotizacionAbierta, cot.ID).
		Update("status", models.CotizacionGuardada).Error; err != nil {
		return err
	}

	return db.Model(&cot).Update("status", models.CotizacionAbierta).Error
}

// Eliminar borra una cotización del usuario junto con sus items.
func Eliminar(db *gorm.DB, usuarioID string, cotID uint) error {
	var cot models.Cotizacion
	if err := db.Where("id = ? AND usuario_id = ?", cotID, usuarioID).First(&cot).Error; err != nil {
		return err
	}
	if err := db.Where("cotizacion_id = ?", cot.ID).Delete(&models.CotizacionItem{}).Error; err != nil {
		return err
	}
	return db.Delete(&cot).Error
}

// Listar devuelve todas las cotizaciones del usuario, la más nueva primero,
// con items, productos y supermercados resueltos para mostrar.
func Listar(db *gorm.DB, usuarioID string) ([]models.Cotizacion, error) {
	var cots []models.Cotizacion
	err := db.Where("usuario_id = ?", usuarioID).
		Preload("Items.Producto.Supermercado").
		Order("fecha_creacion DESC, id DESC").
		Find(&cots).Error
	return cots, err
}

// VerAbierta resuelve (o crea) la cotización abierta con sus items cargados.
func VerAbierta(db *gorm.DB, usuarioID string) (*models.Cotizacion, error) {
	cot, err := GetOrCreateAbierta(db, usuarioID)
	if err != nil {
		return nil, err
	}
	if err := db.Preload("Items.Producto.Supermercado").First(cot, cot.ID).Error; err != nil {
		return nil, err
	}
	return cot, nil
}

// TotalCotizacion recalcula el total sumando los subtotales vigentes.
func TotalCotizacion(db *gorm.DB, cotID uint) (decimal.Decimal, error) {
	var items []models.CotizacionItem
	if err := db.Where("cotizacion_id = ?", cotID).Find(&items).Error; err != nil {
		return decimal.Zero, err
	}
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Subtotal())
	}
	return total, nil
}

func itemDelUsuario(db *gorm.DB, usuarioID string, itemID uint) (*models.CotizacionItem, error) {
	var item models.CotizacionItem
	err := db.Joins("JOIN cotizaciones ON cotizaciones.id = cotizacion_items.cotizacion_id").
		Where("cotizacion_items.id = ? AND cotizaciones.usuario_id = ?", itemID, usuarioID).
		First(&item).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}
