package repository

import "github.com/poliflex/gestion-api/internal/domain/entity"

// PagoRepository define el puerto de persistencia para abonos de notas.
type PagoRepository interface {
	Create(pago *entity.Pago) error
	GetByID(id string) (*entity.Pago, error)
	ListByNota(notaVentaID string) ([]*entity.Pago, error)
	Delete(id string) error
}

// EntregaRepository define el puerto de persistencia para entregas de pedidos.
type EntregaRepository interface {
	Create(entrega *entity.Entrega) error
	GetByID(id string) (*entity.Entrega, error)
	ListByPedido(pedidoID string) ([]*entity.Entrega, error)
	Delete(id string) error
}
