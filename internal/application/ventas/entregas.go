package ventas

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/poliflex/gestion-api/internal/application/dto"
	"github.com/poliflex/gestion-api/internal/domain"
	"github.com/poliflex/gestion-api/internal/domain/entity"
	"github.com/poliflex/gestion-api/internal/domain/repository"
)

// EntregasUseCase registra y elimina entregas contra un pedido. El tope contra
// la cantidad pendiente del pedido se valida aquí, no en el formulario.
type EntregasUseCase struct {
	notaRepo    repository.NotaVentaRepository
	entregaRepo repository.EntregaRepository
}

// NewEntregasUseCase construye el caso de uso.
func NewEntregasUseCase(notaRepo repository.NotaVentaRepository, entregaRepo repository.EntregaRepository) *EntregasUseCase {
	return &EntregasUseCase{notaRepo: notaRepo, entregaRepo: entregaRepo}
}

// Registrar valida y persiste una entrega. Devuelve ErrEntregaExcedeCantidad
// si la cantidad supera lo pendiente de surtir del pedido.
func (uc *EntregasUseCase) Registrar(pedidoID string, in dto.RegistrarEntregaRequest) (*dto.EntregaDTO, error) {
	if !in.Cantidad.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	pedido, err := uc.notaRepo.GetPedido(pedidoID)
	if err != nil {
		return nil, err
	}
	if pedido == nil {
		return nil, domain.ErrNotFound
	}

	entregado := decimal.Zero
	for _, e := range pedido.Entregas {
		entregado = entregado.Add(e.Cantidad)
	}
	if entregado.Add(in.Cantidad).GreaterThan(pedido.Cantidad) {
		return nil, domain.ErrEntregaExcedeCantidad
	}

	fecha, err := fechaODefault(in.Fecha)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	entrega := &entity.Entrega{
		ID:           uuid.New().String(),
		PedidoID:     pedidoID,
		Cantidad:     in.Cantidad,
		FechaEntrega: fecha,
	}
	if err := uc.entregaRepo.Create(entrega); err != nil {
		return nil, err
	}
	return &dto.EntregaDTO{
		ID:       entrega.ID,
		Fecha:    entrega.FechaEntrega.Format("2006-01-02"),
		Cantidad: entrega.Cantidad,
	}, nil
}

// Eliminar borra una entrega por id.
func (uc *EntregasUseCase) Eliminar(entregaID string) error {
	entrega, err := uc.entregaRepo.GetByID(entregaID)
	if err != nil {
		return err
	}
	if entrega == nil {
		return domain.ErrNotFound
	}
	return uc.entregaRepo.Delete(entregaID)
}
