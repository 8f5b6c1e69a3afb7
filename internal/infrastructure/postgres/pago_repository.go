package postgres

import (
	"context"
	"fmt"

	"github.com/poliflex/gestion-api/internal/domain/entity"
	"github.com/poliflex/gestion-api/internal/domain/repository"
)

var _ repository.PagoRepository = (*PagoRepo)(nil)

// PagoRepo implementación de PagoRepository.
type PagoRepo struct {
	q Querier
}

func NewPagoRepository(q Querier) *PagoRepo {
	return &PagoRepo{q: q}
}

func (r *PagoRepo) Create(pago *entity.Pago) error {
	query := `
		INSERT INTO pagos (id, nota_venta_id, fecha, monto, metodo)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		pago.ID, pago.NotaVentaID, pago.Fecha, pago.Monto, pago.Metodo,
	)
	if err != nil {
		return fmt.Errorf("insert pago: %w", err)
	}
	return nil
}

func (r *PagoRepo) GetByID(id string) (*entity.Pago, error) {
	var p entity.Pago
	err := r.q.QueryRow(context.Background(), `
		SELECT id, nota_venta_id, fecha, monto, metodo FROM pagos WHERE id = $1`, id).
		Scan(&p.ID, &p.NotaVentaID, &p.Fecha, &p.Monto, &p.Metodo)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get pago: %w", err)
	}
	return &p, nil
}

func (r *PagoRepo) ListByNota(notaVentaID string) ([]*entity.Pago, error) {
	rows, err := r.q.Query(context.Background(), `
		SELECT id, nota_venta_id, fecha, monto, metodo
		FROM pagos WHERE nota_venta_id = $1 ORDER BY fecha, id`, notaVentaID)
	if err != nil {
		return nil, fmt.Errorf("list pagos: %w", err)
	}
	defer rows.Close()

	var pagos []*entity.Pago
	for rows.Next() {
		var p entity.Pago
		if err := rows.Scan(&p.ID, &p.NotaVentaID, &p.Fecha, &p.Monto, &p.Metodo); err != nil {
			return nil, fmt.Errorf("scan pago: %w", err)
		}
		pagos = append(pagos, &p)
	}
	return pagos, rows.Err()
}

func (r *PagoRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM pagos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete pago: %w", err)
	}
	return nil
}

var _ repository.EntregaRepository = (*EntregaRepo)(nil)

// EntregaRepo implementación de EntregaRepository.
type EntregaRepo struct {
	q Querier
}

func NewEntregaRepository(q Querier) *EntregaRepo {
	return &EntregaRepo{q: q}
}

func (r *EntregaRepo) Create(entrega *entity.Entrega) error {
	query := `
		INSERT INTO entregas (id, pedido_id, cantidad, fecha_entrega)
		VALUES ($1, $2, $3, $4)`
	_, err := r.q.Exec(context.Background(), query,
		entrega.ID, entrega.PedidoID, entrega.Cantidad, entrega.FechaEntrega,
	)
	if err != nil {
		return fmt.Errorf("insert entrega: %w", err)
	}
	return nil
}

func (r *EntregaRepo) GetByID(id string) (*entity.Entrega, error) {
	var e entity.Entrega
	err := r.q.QueryRow(context.Background(), `
		SELECT id, pedido_id, cantidad, fecha_entrega FROM entregas WHERE id = $1`, id).
		Scan(&e.ID, &e.PedidoID, &e.Cantidad, &e.FechaEntrega)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get entrega: %w", err)
	}
	return &e, nil
}

func (r *EntregaRepo) ListByPedido(pedidoID string) ([]*entity.Entrega, error) {
	rows, err := r.q.Query(context.Background(), `
		SELECT id, pedido_id, cantidad, fecha_entrega
		FROM entregas WHERE pedido_id = $1 ORDER BY fecha_entrega, id`, pedidoID)
	if err != nil {
		return nil, fmt.Errorf("list entregas: %w", err)
	}
	defer rows.Close()

	var entregas []*entity.Entrega
	for rows.Next() {
		var e entity.Entrega
		if err := rows.Scan(&e.ID, &e.PedidoID, &e.Cantidad, &e.FechaEntrega); err != nil {
			return nil, fmt.Errorf("scan entrega: %w", err)
		}
		entregas = append(entregas, &e)
	}
	return entregas, rows.Err()
}

func (r *EntregaRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM entregas WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete entrega: %w", err)
	}
	return nil
}
