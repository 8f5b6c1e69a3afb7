// Package catalogo contiene los casos de uso de los catálogos maestros:
// clientes, productos, vendedores y proveedores.
package catalogo

import (
	"time"

	"github.com/google/uuid"

	"github.com/poliflex/gestion-api/internal/application/dto"
	"github.com/poliflex/gestion-api/internal/domain"
	"github.com/poliflex/gestion-api/internal/domain/entity"
	"github.com/poliflex/gestion-api/internal/domain/repository"
)

// ClientesUseCase casos de uso para clientes.
type ClientesUseCase struct {
	repo repository.ClienteRepository
}

// NewClientesUseCase construye el caso de uso.
func NewClientesUseCase(repo repository.ClienteRepository) *ClientesUseCase {
	return &ClientesUseCase{repo: repo}
}

// Crear crea un nuevo cliente.
func (uc *ClientesUseCase) Crear(in dto.CrearClienteRequest) (*dto.ClienteResponse, error) {
	if in.Empresa == "" || in.DiasCredito < 0 {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	cliente := &entity.Cliente{
		ID:          uuid.New().String(),
		Empresa:     in.Empresa,
		Contacto:    in.Contacto,
		Telefono:    in.Telefono,
		Email:       in.Email,
		DiasCredito: in.DiasCredito,
		VendedorID:  in.VendedorID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(cliente); err != nil {
		return nil, err
	}
	return clienteResponse(cliente), nil
}

// Obtener devuelve un cliente por id.
func (uc *ClientesUseCase) Obtener(id string) (*dto.ClienteResponse, error) {
	cliente, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if cliente == nil {
		return nil, domain.ErrNotFound
	}
	return clienteResponse(cliente), nil
}

// Listar lista clientes con paginación.
func (uc *ClientesUseCase) Listar(page dto.PageRequest) ([]*dto.ClienteResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ClienteResponse, 0, len(list))
	for _, c := range list {
		out = append(out, clienteResponse(c))
	}
	return out, nil
}

// Actualizar actualiza un cliente existente.
func (uc *ClientesUseCase) Actualizar(id string, in dto.CrearClienteRequest) (*dto.ClienteResponse, error) {
	if in.Empresa == "" || in.DiasCredito < 0 {
		return nil, domain.ErrInvalidInput
	}
	cliente, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if cliente == nil {
		return nil, domain.ErrNotFound
	}
	cliente.Empresa = in.Empresa
	cliente.Contacto = in.Contacto
	cliente.Telefono = in.Telefono
	cliente.Email = in.Email
	cliente.DiasCredito = in.DiasCredito
	cliente.VendedorID = in.VendedorID
	cliente.UpdatedAt = time.Now()
	if err := uc.repo.Update(cliente); err != nil {
		return nil, err
	}
	return clienteResponse(cliente), nil
}

// Eliminar borra un cliente por id.
func (uc *ClientesUseCase) Eliminar(id string) error {
	cliente, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if cliente == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func clienteResponse(c *entity.Cliente) *dto.ClienteResponse {
	return &dto.ClienteResponse{
		ID:          c.ID,
		Empresa:     c.Empresa,
		Contacto:    c.Contacto,
		Telefono:    c.Telefono,
		Email:       c.Email,
		DiasCredito: c.DiasCredito,
		VendedorID:  c.VendedorID,
	}
}
