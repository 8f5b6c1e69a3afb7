package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/poliflex/gestion-api/internal/domain/entity"
	"github.com/poliflex/gestion-api/internal/domain/repository"
)

var _ repository.NotaVentaRepository = (*NotaVentaRepo)(nil)

// NotaVentaRepo implementación de NotaVentaRepository (usable con pool o tx).
type NotaVentaRepo struct {
	q Querier
}

// NewNotaVentaRepository construye el adaptador. Pasar pool o tx (Querier).
func NewNotaVentaRepository(q Querier) *NotaVentaRepo {
	return &NotaVentaRepo{q: q}
}

// Create persiste la cabecera y sus pedidos.
func (r *NotaVentaRepo) Create(nota *entity.NotaVenta) error {
	query := `
		INSERT INTO notas_venta (id, folio, cliente_id, fecha, subtotal, descuento_pct, iva, total, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		nota.ID, nota.Folio, nota.ClienteID, nota.Fecha,
		nota.Subtotal, nota.DescuentoPct, nota.IVA, nota.Total,
		nota.CreatedAt, nota.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("folio duplicado: %w", err)
		}
		return fmt.Errorf("insert nota: %w", err)
	}
	for _, ped := range nota.Pedidos {
		_, err := r.q.Exec(context.Background(), `
			INSERT INTO pedidos (id, nota_venta_id, producto_id, cantidad, precio_unitario)
			VALUES ($1, $2, $3, $4, $5)`,
			ped.ID, ped.NotaVentaID, ped.ProductoID, ped.Cantidad, ped.PrecioUnitario,
		)
		if err != nil {
			return fmt.Errorf("insert pedido: %w", err)
		}
	}
	return nil
}

// GetByID carga el agregado completo: pedidos con entregas, pagos y cliente.
func (r *NotaVentaRepo) GetByID(id string) (*entity.NotaVenta, error) {
	notas, err := r.DetallePorIDs(context.Background(), []string{id})
	if err != nil {
		return nil, err
	}
	if len(notas) == 0 {
		return nil, nil
	}
	return notas[0], nil
}

// GetPedido carga un pedido con sus entregas.
func (r *NotaVentaRepo) GetPedido(id string) (*entity.Pedido, error) {
	query := `
		SELECT id, nota_venta_id, producto_id, cantidad, precio_unitario
		FROM pedidos WHERE id = $1`
	var p entity.Pedido
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.NotaVentaID, &p.ProductoID, &p.Cantidad, &p.PrecioUnitario,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get pedido: %w", err)
	}
	rows, err := r.q.Query(context.Background(), `
		SELECT id, pedido_id, cantidad, fecha_entrega
		FROM entregas WHERE pedido_id = $1 ORDER BY fecha_entrega, id`, id)
	if err != nil {
		return nil, fmt.Errorf("list entregas: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var e entity.Entrega
		if err := rows.Scan(&e.ID, &e.PedidoID, &e.Cantidad, &e.FechaEntrega); err != nil {
			return nil, fmt.Errorf("scan entrega: %w", err)
		}
		p.Entregas = append(p.Entregas, &e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return &p, nil
}

// Delete elimina la nota; pedidos, entregas y pagos caen en cascada.
func (r *NotaVentaRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM notas_venta WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete nota: %w", err)
	}
	return nil
}

// VentanaIDs consulta total filtrado y ventana de ids contra la vista de
// estados derivados, en orden de fecha descendente (desempate por folio).
func (r *NotaVentaRepo) VentanaIDs(ctx context.Context, f repository.FiltrosNota, limit, offset int) ([]string, int, error) {
	where, args := filtrosWhere(f)

	var total int
	err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM notas_venta_estados`+where, args...).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("count notas: %w", err)
	}

	query := fmt.Sprintf(`SELECT id FROM notas_venta_estados%s ORDER BY fecha DESC, folio DESC LIMIT $%d OFFSET $%d`,
		where, len(args)+1, len(args)+2)
	rows, err := r.q.Query(ctx, query, append(args, limit, offset)...)
	if err != nil {
		return nil, 0, fmt.Errorf("ventana ids: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, 0, fmt.Errorf("scan id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, total, rows.Err()
}

// filtrosWhere arma el predicado dinámico: los filtros vacíos no aparecen.
func filtrosWhere(f repository.FiltrosNota) (string, []any) {
	var conds []string
	var args []any
	add := func(cond string, val any) {
		args = append(args, val)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}
	if f.FechaDesde != nil {
		add("fecha >= $%d", *f.FechaDesde)
	}
	if f.FechaHasta != nil {
		add("fecha <= $%d", *f.FechaHasta)
	}
	if f.ClienteID != "" {
		add("cliente_id = $%d", f.ClienteID)
	}
	if f.EstadoPago != "" {
		add("estado_pago = $%d", f.EstadoPago)
	}
	if f.EstadoEntrega != "" {
		add("estado_entrega = $%d", f.EstadoEntrega)
	}
	if f.EstadoCredito != "" {
		add("estado_credito = $%d", f.EstadoCredito)
	}
	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

// DetallePorIDs carga los agregados completos de la ventana en cuatro
// consultas (cabeceras+cliente, pedidos+producto, entregas, pagos) y los
// devuelve en el orden de la lista de ids.
func (r *NotaVentaRepo) DetallePorIDs(ctx context.Context, ids []string) ([]*entity.NotaVenta, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	porID := make(map[string]*entity.NotaVenta, len(ids))

	rows, err := r.q.Query(ctx, `
		SELECT n.id, n.folio, n.cliente_id, n.fecha, n.subtotal, n.descuento_pct, n.iva, n.total,
		       n.created_at, n.updated_at,
		       c.id, c.empresa, COALESCE(c.contacto, ''), COALESCE(c.telefono, ''), COALESCE(c.email, ''),
		       c.dias_credito, COALESCE(c.vendedor_id::TEXT, '')
		FROM notas_venta n
		JOIN clientes c ON c.id = n.cliente_id
		WHERE n.id = ANY($1)`, ids)
	if err != nil {
		return nil, fmt.Errorf("detalle cabeceras: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var n entity.NotaVenta
		var c entity.Cliente
		if err := rows.Scan(
			&n.ID, &n.Folio, &n.ClienteID, &n.Fecha, &n.Subtotal, &n.DescuentoPct, &n.IVA, &n.Total,
			&n.CreatedAt, &n.UpdatedAt,
			&c.ID, &c.Empresa, &c.Contacto, &c.Telefono, &c.Email, &c.DiasCredito, &c.VendedorID,
		); err != nil {
			return nil, fmt.Errorf("scan cabecera: %w", err)
		}
		n.Cliente = &c
		porID[n.ID] = &n
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	pedidosPorID := make(map[string]*entity.Pedido)
	rows, err = r.q.Query(ctx, `
		SELECT p.id, p.nota_venta_id, p.producto_id, p.cantidad, p.precio_unitario,
		       pr.nombre, pr.tipo, COALESCE(pr.calibre, ''), COALESCE(pr.unidad, ''), pr.precio, pr.stock
		FROM pedidos p
		JOIN productos pr ON pr.id = p.producto_id
		WHERE p.nota_venta_id = ANY($1)
		ORDER BY p.id`, ids)
	if err != nil {
		return nil, fmt.Errorf("detalle pedidos: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var p entity.Pedido
		var prod entity.Producto
		if err := rows.Scan(
			&p.ID, &p.NotaVentaID, &p.ProductoID, &p.Cantidad, &p.PrecioUnitario,
			&prod.Nombre, &prod.Tipo, &prod.Calibre, &prod.Unidad, &prod.Precio, &prod.Stock,
		); err != nil {
			return nil, fmt.Errorf("scan pedido: %w", err)
		}
		prod.ID = p.ProductoID
		p.Producto = &prod
		pedidosPorID[p.ID] = &p
		if nota, ok := porID[p.NotaVentaID]; ok {
			nota.Pedidos = append(nota.Pedidos, &p)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	rows, err = r.q.Query(ctx, `
		SELECT e.id, e.pedido_id, e.cantidad, e.fecha_entrega
		FROM entregas e
		JOIN pedidos p ON p.id = e.pedido_id
		WHERE p.nota_venta_id = ANY($1)
		ORDER BY e.fecha_entrega, e.id`, ids)
	if err != nil {
		return nil, fmt.Errorf("detalle entregas: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var e entity.Entrega
		if err := rows.Scan(&e.ID, &e.PedidoID, &e.Cantidad, &e.FechaEntrega); err != nil {
			return nil, fmt.Errorf("scan entrega: %w", err)
		}
		if ped, ok := pedidosPorID[e.PedidoID]; ok {
			ped.Entregas = append(ped.Entregas, &e)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	rows, err = r.q.Query(ctx, `
		SELECT id, nota_venta_id, fecha, monto, metodo
		FROM pagos
		WHERE nota_venta_id = ANY($1)
		ORDER BY fecha, id`, ids)
	if err != nil {
		return nil, fmt.Errorf("detalle pagos: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var p entity.Pago
		if err := rows.Scan(&p.ID, &p.NotaVentaID, &p.Fecha, &p.Monto, &p.Metodo); err != nil {
			return nil, fmt.Errorf("scan pago: %w", err)
		}
		if nota, ok := porID[p.NotaVentaID]; ok {
			nota.Pagos = append(nota.Pagos, &p)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	// Conservar el orden de la ventana (fecha descendente de la fase 1).
	out := make([]*entity.NotaVenta, 0, len(ids))
	for _, id := range ids {
		if nota, ok := porID[id]; ok {
			out = append(out, nota)
		}
	}
	return out, nil
}
