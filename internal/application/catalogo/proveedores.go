package catalogo

import (
	"time"

	"github.com/google/uuid"

	"github.com/poliflex/gestion-api/internal/application/dto"
	"github.com/poliflex/gestion-api/internal/domain"
	"github.com/poliflex/gestion-api/internal/domain/entity"
	"github.com/poliflex/gestion-api/internal/domain/repository"
)

// ProveedoresUseCase casos de uso para proveedores de materia prima.
type ProveedoresUseCase struct {
	repo repository.ProveedorRepository
}

// NewProveedoresUseCase construye el caso de uso.
func NewProveedoresUseCase(repo repository.ProveedorRepository) *ProveedoresUseCase {
	return &ProveedoresUseCase{repo: repo}
}

// Crear crea un proveedor.
func (uc *ProveedoresUseCase) Crear(in dto.CrearProveedorRequest) (*dto.ProveedorResponse, error) {
	if in.Empresa == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	p := &entity.Proveedor{
		ID:        uuid.New().String(),
		Empresa:   in.Empresa,
		Contacto:  in.Contacto,
		Telefono:  in.Telefono,
		Email:     in.Email,
		Notas:     in.Notas,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(p); err != nil {
		return nil, err
	}
	return proveedorResponse(p), nil
}

// Listar lista proveedores con paginación.
func (uc *ProveedoresUseCase) Listar(page dto.PageRequest) ([]*dto.ProveedorResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ProveedorResponse, 0, len(list))
	for _, p := range list {
		out = append(out, proveedorResponse(p))
	}
	return out, nil
}

// Actualizar actualiza un proveedor.
func (uc *ProveedoresUseCase) Actualizar(id string, in dto.CrearProveedorRequest) (*dto.ProveedorResponse, error) {
	if in.Empresa == "" {
		return nil, domain.ErrInvalidInput
	}
	p, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	p.Empresa = in.Empresa
	p.Contacto = in.Contacto
	p.Telefono = in.Telefono
	p.Email = in.Email
	p.Notas = in.Notas
	p.UpdatedAt = time.Now()
	if err := uc.repo.Update(p); err != nil {
		return nil, err
	}
	return proveedorResponse(p), nil
}

// Eliminar borra un proveedor.
func (uc *ProveedoresUseCase) Eliminar(id string) error {
	p, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if p == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func proveedorResponse(p *entity.Proveedor) *dto.ProveedorResponse {
	return &dto.ProveedorResponse{
		ID:       p.ID,
		Empresa:  p.Empresa,
		Contacto: p.Contacto,
		Telefono: p.Telefono,
		Email:    p.Email,
		Notas:    p.Notas,
	}
}
