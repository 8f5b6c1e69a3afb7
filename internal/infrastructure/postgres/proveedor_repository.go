package postgres

import (
	"context"
	"fmt"

	"github.com/poliflex/gestion-api/internal/domain/entity"
	"github.com/poliflex/gestion-api/internal/domain/repository"
)

var _ repository.ProveedorRepository = (*ProveedorRepo)(nil)

// ProveedorRepo implementación de ProveedorRepository.
type ProveedorRepo struct {
	q Querier
}

func NewProveedorRepository(q Querier) *ProveedorRepo {
	return &ProveedorRepo{q: q}
}

func (r *ProveedorRepo) Create(proveedor *entity.Proveedor) error {
	query := `
		INSERT INTO proveedores (id, empresa, contacto, telefono, email, notas, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		proveedor.ID, proveedor.Empresa, proveedor.Contacto, proveedor.Telefono,
		proveedor.Email, proveedor.Notas, proveedor.CreatedAt, proveedor.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert proveedor: %w", err)
	}
	return nil
}

func (r *ProveedorRepo) GetByID(id string) (*entity.Proveedor, error) {
	var p entity.Proveedor
	err := r.q.QueryRow(context.Background(), `
		SELECT id, empresa, COALESCE(contacto, ''), COALESCE(telefono, ''), COALESCE(email, ''),
		       COALESCE(notas, ''), created_at, updated_at
		FROM proveedores WHERE id = $1`, id).
		Scan(&p.ID, &p.Empresa, &p.Contacto, &p.Telefono, &p.Email, &p.Notas, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get proveedor: %w", err)
	}
	return &p, nil
}

func (r *ProveedorRepo) List(limit, offset int) ([]*entity.Proveedor, error) {
	rows, err := r.q.Query(context.Background(), `
		SELECT id, empresa, COALESCE(contacto, ''), COALESCE(telefono, ''), COALESCE(email, ''),
		       COALESCE(notas, ''), created_at, updated_at
		FROM proveedores ORDER BY empresa LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list proveedores: %w", err)
	}
	defer rows.Close()

	var proveedores []*entity.Proveedor
	for rows.Next() {
		var p entity.Proveedor
		if err := rows.Scan(&p.ID, &p.Empresa, &p.Contacto, &p.Telefono, &p.Email,
			&p.Notas, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan proveedor: %w", err)
		}
		proveedores = append(proveedores, &p)
	}
	return proveedores, rows.Err()
}

func (r *ProveedorRepo) Update(proveedor *entity.Proveedor) error {
	query := `
		UPDATE proveedores
		SET empresa = $2, contacto = $3, telefono = $4, email = $5, notas = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		proveedor.ID, proveedor.Empresa, proveedor.Contacto, proveedor.Telefono,
		proveedor.Email, proveedor.Notas, proveedor.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update proveedor: %w", err)
	}
	return nil
}

func (r *ProveedorRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM proveedores WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete proveedor: %w", err)
	}
	return nil
}
