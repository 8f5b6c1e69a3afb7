package postgres

import (
	"context"
	"fmt"

	"github.com/poliflex/gestion-api/internal/domain/repository"
)

var _ repository.EstadisticasRepository = (*EstadisticasRepo)(nil)

// EstadisticasRepo consultas de lectura para los resúmenes anuales.
type EstadisticasRepo struct {
	q Querier
}

func NewEstadisticasRepository(q Querier) *EstadisticasRepo {
	return &EstadisticasRepo{q: q}
}

func (r *EstadisticasRepo) IDsPorAnio(ctx context.Context, anio int) ([]string, error) {
	rows, err := r.q.Query(ctx, `
		SELECT id FROM notas_venta
		WHERE fecha >= MAKE_DATE($1, 1, 1) AND fecha < MAKE_DATE($1 + 1, 1, 1)
		ORDER BY fecha DESC, folio DESC`, anio)
	if err != nil {
		return nil, fmt.Errorf("ids por año: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func (r *EstadisticasRepo) RendimientoVendedores(ctx context.Context, anio int) ([]repository.RendimientoVendedor, error) {
	// Facturado suma totales de notas del año de los clientes del vendedor;
	// Cobrado suma los pagos fechados dentro del mismo año sobre esas notas.
	// Las agregaciones van en subconsultas separadas para no multiplicar filas
	// al cruzar notas con pagos.
	rows, err := r.q.Query(ctx, `
		SELECT v.id, v.nombre,
		       (SELECT COUNT(*) FROM clientes c WHERE c.vendedor_id = v.id) AS clientes,
		       COALESCE(f.notas, 0) AS notas,
		       COALESCE(f.facturado, 0) AS facturado,
		       COALESCE(cb.cobrado, 0) AS cobrado
		FROM vendedores v
		LEFT JOIN (
		    SELECT c.vendedor_id, COUNT(*) AS notas, SUM(n.total) AS facturado
		    FROM notas_venta n
		    JOIN clientes c ON c.id = n.cliente_id
		    WHERE n.fecha >= MAKE_DATE($1, 1, 1) AND n.fecha < MAKE_DATE($1 + 1, 1, 1)
		    GROUP BY c.vendedor_id
		) f ON f.vendedor_id = v.id
		LEFT JOIN (
		    SELECT c.vendedor_id, SUM(pg.monto) AS cobrado
		    FROM pagos pg
		    JOIN notas_venta n ON n.id = pg.nota_venta_id
		    JOIN clientes c ON c.id = n.cliente_id
		    WHERE pg.fecha >= MAKE_DATE($1, 1, 1) AND pg.fecha < MAKE_DATE($1 + 1, 1, 1)
		    GROUP BY c.vendedor_id
		) cb ON cb.vendedor_id = v.id
		ORDER BY facturado DESC, v.nombre`, anio)
	if err != nil {
		return nil, fmt.Errorf("rendimiento vendedores: %w", err)
	}
	defer rows.Close()

	var out []repository.RendimientoVendedor
	for rows.Next() {
		var rv repository.RendimientoVendedor
		if err := rows.Scan(&rv.VendedorID, &rv.Nombre, &rv.Clientes, &rv.Notas, &rv.Facturado, &rv.Cobrado); err != nil {
			return nil, fmt.Errorf("scan rendimiento: %w", err)
		}
		out = append(out, rv)
	}
	return out, rows.Err()
}
