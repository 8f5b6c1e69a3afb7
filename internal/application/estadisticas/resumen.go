// Package estadisticas contiene los casos de uso de resúmenes anuales:
// contadores de cobranza/surtido/crédito sobre las notas del año y el rollup
// de desempeño por vendedor.
package estadisticas

import (
	"context"
	"fmt"
	"time"

	"github.com/poliflex/gestion-api/internal/application/dto"
	"github.com/poliflex/gestion-api/internal/domain/estado"
	"github.com/poliflex/gestion-api/internal/domain/repository"
)

// loteDetalle tamaño de lote para la fase de detalle; acota el IN de la consulta.
const loteDetalle = 200

// ResumenUseCase reduce todas las notas del año calendario en curso a
// contadores. Usa la misma derivación por nota que el listado (variante por
// conteo de pedidos) pero descarta el detalle, quedándose solo con los
// acumuladores. Hace su propio fetch en dos fases; no reutiliza el paginador.
type ResumenUseCase struct {
	estRepo  repository.EstadisticasRepository
	notaRepo repository.NotaVentaRepository
}

// NewResumenUseCase construye el caso de uso.
func NewResumenUseCase(estRepo repository.EstadisticasRepository, notaRepo repository.NotaVentaRepository) *ResumenUseCase {
	return &ResumenUseCase{estRepo: estRepo, notaRepo: notaRepo}
}

// ResumenAnual calcula los contadores del año en curso.
func (uc *ResumenUseCase) ResumenAnual(ctx context.Context) (*dto.ResumenAnualDTO, error) {
	hoy := time.Now()
	anio := hoy.Year()

	ids, err := uc.estRepo.IDsPorAnio(ctx, anio)
	if err != nil {
		return nil, fmt.Errorf("resumen anual: ids del año: %w", err)
	}

	out := &dto.ResumenAnualDTO{Anio: anio, TotalNotas: len(ids)}
	for inicio := 0; inicio < len(ids); inicio += loteDetalle {
		fin := inicio + loteDetalle
		if fin > len(ids) {
			fin = len(ids)
		}
		notas, err := uc.notaRepo.DetallePorIDs(ctx, ids[inicio:fin])
		if err != nil {
			return nil, fmt.Errorf("resumen anual: detalle de notas: %w", err)
		}
		for _, n := range notas {
			diasCredito := 0
			if n.Cliente != nil {
				diasCredito = n.Cliente.DiasCredito
			}
			d := estado.Derivar(n, diasCredito, hoy)
			if d.EstadoPago == estado.PagoPagado {
				out.PagadasCompletas++
			}
			if d.EstadoEntrega == estado.EntregaCompleta {
				out.EntregadasCompletas++
			}
			if d.DiasRestantes <= 0 {
				out.CreditoVencido++
			}
		}
	}
	return out, nil
}

// RendimientoUseCase arma el reporte anual de desempeño por vendedor.
type RendimientoUseCase struct {
	estRepo repository.EstadisticasRepository
}

// NewRendimientoUseCase construye el caso de uso.
func NewRendimientoUseCase(estRepo repository.EstadisticasRepository) *RendimientoUseCase {
	return &RendimientoUseCase{estRepo: estRepo}
}

// PorVendedor devuelve facturación y cobranza del año por vendedor.
func (uc *RendimientoUseCase) PorVendedor(ctx context.Context) ([]*dto.RendimientoVendedorDTO, error) {
	anio := time.Now().Year()
	filas, err := uc.estRepo.RendimientoVendedores(ctx, anio)
	if err != nil {
		return nil, fmt.Errorf("rendimiento vendedores: %w", err)
	}
	out := make([]*dto.RendimientoVendedorDTO, 0, len(filas))
	for _, f := range filas {
		out = append(out, &dto.RendimientoVendedorDTO{
			VendedorID: f.VendedorID,
			Nombre:     f.Nombre,
			Clientes:   f.Clientes,
			Notas:      f.Notas,
			Facturado:  f.Facturado.Round(2),
			Cobrado:    f.Cobrado.Round(2),
		})
	}
	return out, nil
}
