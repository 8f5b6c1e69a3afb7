package catalogo

import (
	"time"

	"github.com/google/uuid"

	"github.com/poliflex/gestion-api/internal/application/dto"
	"github.com/poliflex/gestion-api/internal/domain"
	"github.com/poliflex/gestion-api/internal/domain/entity"
	"github.com/poliflex/gestion-api/internal/domain/repository"
)

// VendedoresUseCase casos de uso para vendedores.
type VendedoresUseCase struct {
	repo repository.VendedorRepository
}

// NewVendedoresUseCase construye el caso de uso.
func NewVendedoresUseCase(repo repository.VendedorRepository) *VendedoresUseCase {
	return &VendedoresUseCase{repo: repo}
}

// Crear crea un vendedor.
func (uc *VendedoresUseCase) Crear(in dto.CrearVendedorRequest) (*dto.VendedorResponse, error) {
	if in.Nombre == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	v := &entity.Vendedor{
		ID:        uuid.New().String(),
		Nombre:    in.Nombre,
		Telefono:  in.Telefono,
		Email:     in.Email,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(v); err != nil {
		return nil, err
	}
	return vendedorResponse(v), nil
}

// Listar lista todos los vendedores (catálogo chico, sin paginación).
func (uc *VendedoresUseCase) Listar() ([]*dto.VendedorResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.VendedorResponse, 0, len(list))
	for _, v := range list {
		out = append(out, vendedorResponse(v))
	}
	return out, nil
}

// Actualizar actualiza un vendedor.
func (uc *VendedoresUseCase) Actualizar(id string, in dto.CrearVendedorRequest) (*dto.VendedorResponse, error) {
	if in.Nombre == "" {
		return nil, domain.ErrInvalidInput
	}
	v, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, domain.ErrNotFound
	}
	v.Nombre = in.Nombre
	v.Telefono = in.Telefono
	v.Email = in.Email
	v.UpdatedAt = time.Now()
	if err := uc.repo.Update(v); err != nil {
		return nil, err
	}
	return vendedorResponse(v), nil
}

// Eliminar borra un vendedor.
func (uc *VendedoresUseCase) Eliminar(id string) error {
	v, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if v == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func vendedorResponse(v *entity.Vendedor) *dto.VendedorResponse {
	return &dto.VendedorResponse{
		ID:       v.ID,
		Nombre:   v.Nombre,
		Telefono: v.Telefono,
		Email:    v.Email,
	}
}
