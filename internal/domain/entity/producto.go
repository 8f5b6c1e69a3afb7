package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de película que fabrica la planta.
const (
	PeliculaCelofan     = "celofan"
	PeliculaPolietileno = "polietileno"
)

// Producto representa una presentación de película plástica (bobina o bolsa).
// Stock se descuenta transaccionalmente al crear notas de venta.
type Producto struct {
	ID        string
	Nombre    string
	Tipo      string // celofan | polietileno
	Calibre   string // espesor comercial, ej. "90 ga"
	Unidad    string // kg, millar, rollo
	Precio    decimal.Decimal
	Stock     decimal.Decimal
	CreatedAt time.Time
	UpdatedAt time.Time
}
