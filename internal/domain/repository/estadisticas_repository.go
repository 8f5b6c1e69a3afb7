package repository

import (
	"context"

	"github.com/shopspring/decimal"
)

// RendimientoVendedor resultado crudo del rollup anual por vendedor.
// Lo produce la DB; el caso de uso lo convierte en DTO.
type RendimientoVendedor struct {
	VendedorID string
	Nombre     string
	Clientes   int             // clientes asignados al vendedor
	Notas      int             // notas del año de esos clientes
	Facturado  decimal.Decimal // suma de totales
	Cobrado    decimal.Decimal // suma de pagos
}

// EstadisticasRepository define las consultas de lectura para los resúmenes
// anuales. Las implementaciones son read-only.
type EstadisticasRepository interface {
	// IDsPorAnio devuelve los ids de todas las notas fechadas dentro del año
	// calendario dado, ordenadas por fecha descendente.
	IDsPorAnio(ctx context.Context, anio int) ([]string, error)

	// RendimientoVendedores agrega facturación y cobranza del año por vendedor.
	// Usa COALESCE para devolver cero en vendedores sin ventas.
	RendimientoVendedores(ctx context.Context, anio int) ([]RendimientoVendedor, error)
}
