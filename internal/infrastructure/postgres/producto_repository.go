package postgres

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/poliflex/gestion-api/internal/domain/entity"
	"github.com/poliflex/gestion-api/internal/domain/repository"
)

var _ repository.ProductoRepository = (*ProductoRepo)(nil)

// ProductoRepo implementación de ProductoRepository.
type ProductoRepo struct {
	q Querier
}

func NewProductoRepository(q Querier) *ProductoRepo {
	return &ProductoRepo{q: q}
}

func (r *ProductoRepo) Create(producto *entity.Producto) error {
	query := `
		INSERT INTO productos (id, nombre, tipo, calibre, unidad, precio, stock, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		producto.ID, producto.Nombre, producto.Tipo, producto.Calibre, producto.Unidad,
		producto.Precio, producto.Stock, producto.CreatedAt, producto.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert producto: %w", err)
	}
	return nil
}

func (r *ProductoRepo) GetByID(id string) (*entity.Producto, error) {
	return r.get(id, false)
}

// GetForUpdate bloquea la fila del producto; solo tiene efecto dentro de una
// transacción.
func (r *ProductoRepo) GetForUpdate(id string) (*entity.Producto, error) {
	return r.get(id, true)
}

func (r *ProductoRepo) get(id string, forUpdate bool) (*entity.Producto, error) {
	query := `
		SELECT id, nombre, tipo, COALESCE(calibre, ''), COALESCE(unidad, ''), precio, stock,
		       created_at, updated_at
		FROM productos WHERE id = $1`
	if forUpdate {
		query += " FOR UPDATE"
	}
	var p entity.Producto
	err := r.q.QueryRow(context.Background(), query, id).
		Scan(&p.ID, &p.Nombre, &p.Tipo, &p.Calibre, &p.Unidad, &p.Precio, &p.Stock,
			&p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get producto: %w", err)
	}
	return &p, nil
}

func (r *ProductoRepo) List(limit, offset int) ([]*entity.Producto, error) {
	rows, err := r.q.Query(context.Background(), `
		SELECT id, nombre, tipo, COALESCE(calibre, ''), COALESCE(unidad, ''), precio, stock,
		       created_at, updated_at
		FROM productos ORDER BY nombre LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list productos: %w", err)
	}
	defer rows.Close()

	var productos []*entity.Producto
	for rows.Next() {
		var p entity.Producto
		if err := rows.Scan(&p.ID, &p.Nombre, &p.Tipo, &p.Calibre, &p.Unidad, &p.Precio, &p.Stock,
			&p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan producto: %w", err)
		}
		productos = append(productos, &p)
	}
	return productos, rows.Err()
}

func (r *ProductoRepo) Update(producto *entity.Producto) error {
	query := `
		UPDATE productos
		SET nombre = $2, tipo = $3, calibre = $4, unidad = $5, precio = $6, stock = $7, updated_at = $8
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		producto.ID, producto.Nombre, producto.Tipo, producto.Calibre, producto.Unidad,
		producto.Precio, producto.Stock, producto.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update producto: %w", err)
	}
	return nil
}

func (r *ProductoRepo) UpdateStock(id string, stock decimal.Decimal) error {
	_, err := r.q.Exec(context.Background(), `
		UPDATE productos SET stock = $2, updated_at = now() WHERE id = $1`, id, stock)
	if err != nil {
		return fmt.Errorf("update stock: %w", err)
	}
	return nil
}

func (r *ProductoRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM productos WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("producto con pedidos: %w", err)
		}
		return fmt.Errorf("delete producto: %w", err)
	}
	return nil
}
