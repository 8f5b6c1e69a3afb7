package postgres

import (
	"context"
	"fmt"

	"github.com/poliflex/gestion-api/internal/domain/entity"
	"github.com/poliflex/gestion-api/internal/domain/repository"
)

var _ repository.ClienteRepository = (*ClienteRepo)(nil)

// ClienteRepo implementación de ClienteRepository.
type ClienteRepo struct {
	q Querier
}

func NewClienteRepository(q Querier) *ClienteRepo {
	return &ClienteRepo{q: q}
}

func (r *ClienteRepo) Create(cliente *entity.Cliente) error {
	query := `
		INSERT INTO clientes (id, empresa, contacto, telefono, email, dias_credito, vendedor_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NULLIF($7, '')::UUID, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		cliente.ID, cliente.Empresa, cliente.Contacto, cliente.Telefono, cliente.Email,
		cliente.DiasCredito, cliente.VendedorID, cliente.CreatedAt, cliente.UpdatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("vendedor inexistente: %w", err)
		}
		return fmt.Errorf("insert cliente: %w", err)
	}
	return nil
}

func (r *ClienteRepo) GetByID(id string) (*entity.Cliente, error) {
	var c entity.Cliente
	err := r.q.QueryRow(context.Background(), `
		SELECT id, empresa, COALESCE(contacto, ''), COALESCE(telefono, ''), COALESCE(email, ''),
		       dias_credito, COALESCE(vendedor_id::TEXT, ''), created_at, updated_at
		FROM clientes WHERE id = $1`, id).
		Scan(&c.ID, &c.Empresa, &c.Contacto, &c.Telefono, &c.Email,
			&c.DiasCredito, &c.VendedorID, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get cliente: %w", err)
	}
	return &c, nil
}

func (r *ClienteRepo) List(limit, offset int) ([]*entity.Cliente, error) {
	rows, err := r.q.Query(context.Background(), `
		SELECT id, empresa, COALESCE(contacto, ''), COALESCE(telefono, ''), COALESCE(email, ''),
		       dias_credito, COALESCE(vendedor_id::TEXT, ''), created_at, updated_at
		FROM clientes ORDER BY empresa LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list clientes: %w", err)
	}
	defer rows.Close()

	var clientes []*entity.Cliente
	for rows.Next() {
		var c entity.Cliente
		if err := rows.Scan(&c.ID, &c.Empresa, &c.Contacto, &c.Telefono, &c.Email,
			&c.DiasCredito, &c.VendedorID, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan cliente: %w", err)
		}
		clientes = append(clientes, &c)
	}
	return clientes, rows.Err()
}

func (r *ClienteRepo) Update(cliente *entity.Cliente) error {
	query := `
		UPDATE clientes
		SET empresa = $2, contacto = $3, telefono = $4, email = $5,
		    dias_credito = $6, vendedor_id = NULLIF($7, '')::UUID, updated_at = $8
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		cliente.ID, cliente.Empresa, cliente.Contacto, cliente.Telefono, cliente.Email,
		cliente.DiasCredito, cliente.VendedorID, cliente.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update cliente: %w", err)
	}
	return nil
}

func (r *ClienteRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM clientes WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("cliente con notas de venta: %w", err)
		}
		return fmt.Errorf("delete cliente: %w", err)
	}
	return nil
}
