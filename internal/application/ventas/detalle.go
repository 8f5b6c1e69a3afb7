package ventas

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/poliflex/gestion-api/internal/application/dto"
	"github.com/poliflex/gestion-api/internal/domain"
	"github.com/poliflex/gestion-api/internal/domain/estado"
	"github.com/poliflex/gestion-api/internal/domain/repository"
)

// DetalleNotaUseCase carga una nota completa para la vista de detalle.
type DetalleNotaUseCase struct {
	repo repository.NotaVentaRepository
}

// NewDetalleNotaUseCase construye el caso de uso.
func NewDetalleNotaUseCase(repo repository.NotaVentaRepository) *DetalleNotaUseCase {
	return &DetalleNotaUseCase{repo: repo}
}

// Obtener devuelve la nota con pedidos, entregas, pagos y estados derivados.
// A diferencia del listado, el porcentaje de entrega aquí compara cantidad
// entregada contra cantidad pedida.
func (uc *DetalleNotaUseCase) Obtener(id string) (*dto.NotaDetalleDTO, error) {
	nota, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if nota == nil {
		return nil, domain.ErrNotFound
	}

	hoy := time.Now()
	diasCredito := 0
	cliente := dto.ClienteResponse{ID: nota.ClienteID}
	if nota.Cliente != nil {
		diasCredito = nota.Cliente.DiasCredito
		cliente = dto.ClienteResponse{
			ID:          nota.Cliente.ID,
			Empresa:     nota.Cliente.Empresa,
			Contacto:    nota.Cliente.Contacto,
			Telefono:    nota.Cliente.Telefono,
			Email:       nota.Cliente.Email,
			DiasCredito: nota.Cliente.DiasCredito,
			VendedorID:  nota.Cliente.VendedorID,
		}
	}
	d := estado.Derivar(nota, diasCredito, hoy)
	pctEntrega := estado.PorcentajeEntregaPorCantidad(nota.Pedidos)

	out := &dto.NotaDetalleDTO{
		ID:                nota.ID,
		Folio:             nota.Folio,
		Fecha:             nota.Fecha.Format("2006-01-02"),
		Cliente:           cliente,
		Subtotal:          nota.Subtotal,
		DescuentoPct:      nota.DescuentoPct,
		IVA:               nota.IVA,
		Total:             nota.Total,
		TotalPagado:       d.TotalPagado,
		SaldoPendiente:    d.SaldoPendiente,
		PorcentajePagado:  d.PorcentajePagado,
		EstadoPago:        d.EstadoPago,
		PorcentajeEntrega: pctEntrega.Round(2),
		EstadoEntrega:     estado.EstadoEntregaDe(pctEntrega),
		FechaVencimiento:  d.FechaVencimiento.Format("2006-01-02"),
		DiasRestantes:     d.DiasRestantes,
		PorcentajeCredito: d.PorcentajeCredito,
		EstadoCredito:     d.EstadoCredito,
		Pedidos:           []dto.PedidoDTO{},
		Pagos:             []dto.PagoDTO{},
	}

	for _, ped := range nota.Pedidos {
		pd := dto.PedidoDTO{
			ID:             ped.ID,
			ProductoID:     ped.ProductoID,
			Cantidad:       ped.Cantidad,
			PrecioUnitario: ped.PrecioUnitario,
			Entregado:      decimal.Zero,
			Entregas:       []dto.EntregaDTO{},
		}
		if ped.Producto != nil {
			pd.ProductoNombre = ped.Producto.Nombre
		}
		for _, e := range ped.Entregas {
			pd.Entregado = pd.Entregado.Add(e.Cantidad)
			pd.Entregas = append(pd.Entregas, dto.EntregaDTO{
				ID:       e.ID,
				Fecha:    e.FechaEntrega.Format("2006-01-02"),
				Cantidad: e.Cantidad,
			})
		}
		out.Pedidos = append(out.Pedidos, pd)
	}
	for _, pg := range nota.Pagos {
		out.Pagos = append(out.Pagos, dto.PagoDTO{
			ID:     pg.ID,
			Fecha:  pg.Fecha.Format("2006-01-02"),
			Monto:  pg.Monto,
			Metodo: pg.Metodo,
		})
	}
	return out, nil
}
