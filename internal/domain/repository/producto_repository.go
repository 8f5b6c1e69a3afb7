package repository

import (
	"github.com/shopspring/decimal"

	"github.com/poliflex/gestion-api/internal/domain/entity"
)

// ProductoRepository define el puerto de persistencia para Producto.
// GetForUpdate y UpdateStock solo tienen sentido dentro de una transacción
// (TxRunner): bloquean la fila para descontar stock sin condiciones de carrera.
type ProductoRepository interface {
	Create(producto *entity.Producto) error
	GetByID(id string) (*entity.Producto, error)
	List(limit, offset int) ([]*entity.Producto, error)
	Update(producto *entity.Producto) error
	Delete(id string) error

	// GetForUpdate carga el producto con SELECT FOR UPDATE.
	GetForUpdate(id string) (*entity.Producto, error)
	// UpdateStock fija el stock del producto (ya validado por el caso de uso).
	UpdateStock(id string, stock decimal.Decimal) error
}
