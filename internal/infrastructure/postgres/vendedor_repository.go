package postgres

import (
	"context"
	"fmt"

	"github.com/poliflex/gestion-api/internal/domain/entity"
	"github.com/poliflex/gestion-api/internal/domain/repository"
)

var _ repository.VendedorRepository = (*VendedorRepo)(nil)

// VendedorRepo implementación de VendedorRepository.
type VendedorRepo struct {
	q Querier
}

func NewVendedorRepository(q Querier) *VendedorRepo {
	return &VendedorRepo{q: q}
}

func (r *VendedorRepo) Create(vendedor *entity.Vendedor) error {
	query := `
		INSERT INTO vendedores (id, nombre, telefono, email, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		vendedor.ID, vendedor.Nombre, vendedor.Telefono, vendedor.Email,
		vendedor.CreatedAt, vendedor.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert vendedor: %w", err)
	}
	return nil
}

func (r *VendedorRepo) GetByID(id string) (*entity.Vendedor, error) {
	var v entity.Vendedor
	err := r.q.QueryRow(context.Background(), `
		SELECT id, nombre, COALESCE(telefono, ''), COALESCE(email, ''), created_at, updated_at
		FROM vendedores WHERE id = $1`, id).
		Scan(&v.ID, &v.Nombre, &v.Telefono, &v.Email, &v.CreatedAt, &v.UpdatedAt)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get vendedor: %w", err)
	}
	return &v, nil
}

func (r *VendedorRepo) List() ([]*entity.Vendedor, error) {
	rows, err := r.q.Query(context.Background(), `
		SELECT id, nombre, COALESCE(telefono, ''), COALESCE(email, ''), created_at, updated_at
		FROM vendedores ORDER BY nombre`)
	if err != nil {
		return nil, fmt.Errorf("list vendedores: %w", err)
	}
	defer rows.Close()

	var vendedores []*entity.Vendedor
	for rows.Next() {
		var v entity.Vendedor
		if err := rows.Scan(&v.ID, &v.Nombre, &v.Telefono, &v.Email, &v.CreatedAt, &v.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan vendedor: %w", err)
		}
		vendedores = append(vendedores, &v)
	}
	return vendedores, rows.Err()
}

func (r *VendedorRepo) Update(vendedor *entity.Vendedor) error {
	query := `
		UPDATE vendedores
		SET nombre = $2, telefono = $3, email = $4, updated_at = $5
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		vendedor.ID, vendedor.Nombre, vendedor.Telefono, vendedor.Email, vendedor.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update vendedor: %w", err)
	}
	return nil
}

func (r *VendedorRepo) Delete(id string) error {
	// vendedor_id en clientes cae a NULL por el esquema.
	_, err := r.q.Exec(context.Background(), `DELETE FROM vendedores WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete vendedor: %w", err)
	}
	return nil
}
