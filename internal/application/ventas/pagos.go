package ventas

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/poliflex/gestion-api/internal/application/dto"
	"github.com/poliflex/gestion-api/internal/domain"
	"github.com/poliflex/gestion-api/internal/domain/entity"
	"github.com/poliflex/gestion-api/internal/domain/repository"
)

// PagosUseCase registra y elimina abonos de una nota. El tope contra el saldo
// se valida aquí, en la frontera del servicio, no en el formulario.
type PagosUseCase struct {
	notaRepo repository.NotaVentaRepository
	pagoRepo repository.PagoRepository
}

// NewPagosUseCase construye el caso de uso.
func NewPagosUseCase(notaRepo repository.NotaVentaRepository, pagoRepo repository.PagoRepository) *PagosUseCase {
	return &PagosUseCase{notaRepo: notaRepo, pagoRepo: pagoRepo}
}

// Registrar valida y persiste un abono. Devuelve ErrPagoExcedeSaldo si el
// monto supera el saldo pendiente de la nota.
func (uc *PagosUseCase) Registrar(notaID string, in dto.RegistrarPagoRequest) (*dto.PagoDTO, error) {
	if !in.Monto.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	nota, err := uc.notaRepo.GetByID(notaID)
	if err != nil {
		return nil, err
	}
	if nota == nil {
		return nil, domain.ErrNotFound
	}

	pagado := decimal.Zero
	for _, p := range nota.Pagos {
		pagado = pagado.Add(p.Monto)
	}
	if pagado.Add(in.Monto).GreaterThan(nota.Total) {
		return nil, domain.ErrPagoExcedeSaldo
	}

	fecha, err := fechaODefault(in.Fecha)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	metodo := in.Metodo
	if metodo == "" {
		metodo = "efectivo"
	}
	pago := &entity.Pago{
		ID:          uuid.New().String(),
		NotaVentaID: notaID,
		Fecha:       fecha,
		Monto:       in.Monto,
		Metodo:      metodo,
	}
	if err := uc.pagoRepo.Create(pago); err != nil {
		return nil, err
	}
	return &dto.PagoDTO{
		ID:     pago.ID,
		Fecha:  pago.Fecha.Format("2006-01-02"),
		Monto:  pago.Monto,
		Metodo: pago.Metodo,
	}, nil
}

// Eliminar borra un abono por id.
func (uc *PagosUseCase) Eliminar(pagoID string) error {
	pago, err := uc.pagoRepo.GetByID(pagoID)
	if err != nil {
		return err
	}
	if pago == nil {
		return domain.ErrNotFound
	}
	return uc.pagoRepo.Delete(pagoID)
}
