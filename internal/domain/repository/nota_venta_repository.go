package repository

import (
	"context"
	"time"

	"github.com/poliflex/gestion-api/internal/domain/entity"
)

// FiltrosNota filtros opcionales del listado de notas. Los campos vacíos o nil
// se excluyen del predicado; los estados se comparan contra las columnas
// derivadas de la vista notas_venta_estados.
type FiltrosNota struct {
	FechaDesde    *time.Time
	FechaHasta    *time.Time
	ClienteID     string
	EstadoPago    string // pagado | parcial | pendiente
	EstadoEntrega string // completa | parcial | pendiente
	EstadoCredito string // vencido | por_vencer | vigente
}

// Vacios indica si no hay ningún filtro activo.
func (f FiltrosNota) Vacios() bool {
	return f.FechaDesde == nil && f.FechaHasta == nil &&
		f.ClienteID == "" && f.EstadoPago == "" && f.EstadoEntrega == "" && f.EstadoCredito == ""
}

// NotaVentaRepository define el puerto de persistencia para el agregado
// nota de venta (cabecera + pedidos + entregas + pagos).
type NotaVentaRepository interface {
	// Create persiste la cabecera y sus pedidos. Usar dentro de una
	// transacción (TxRunner) junto con el descuento de stock.
	Create(nota *entity.NotaVenta) error
	// GetByID carga el agregado completo: pedidos con entregas, pagos y cliente.
	GetByID(id string) (*entity.NotaVenta, error)
	// GetPedido carga un pedido con sus entregas.
	GetPedido(id string) (*entity.Pedido, error)
	Delete(id string) error

	// VentanaIDs es la fase 1 del listado: total filtrado y ventana de ids
	// contra la vista de estados derivados, ordenada por fecha descendente.
	VentanaIDs(ctx context.Context, f FiltrosNota, limit, offset int) (ids []string, total int, err error)
	// DetallePorIDs es la fase 2: agregados completos para la ventana,
	// conservando el orden de la lista de ids.
	DetallePorIDs(ctx context.Context, ids []string) ([]*entity.NotaVenta, error)
}
