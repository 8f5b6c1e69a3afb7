package catalogo

import (
	"time"

	"github.com/google/uuid"

	"github.com/poliflex/gestion-api/internal/application/dto"
	"github.com/poliflex/gestion-api/internal/domain"
	"github.com/poliflex/gestion-api/internal/domain/entity"
	"github.com/poliflex/gestion-api/internal/domain/repository"
)

// ProductosUseCase casos de uso para el catálogo de productos.
type ProductosUseCase struct {
	repo repository.ProductoRepository
}

// NewProductosUseCase construye el caso de uso.
func NewProductosUseCase(repo repository.ProductoRepository) *ProductosUseCase {
	return &ProductosUseCase{repo: repo}
}

// Crear crea un producto nuevo.
func (uc *ProductosUseCase) Crear(in dto.CrearProductoRequest) (*dto.ProductoResponse, error) {
	if in.Nombre == "" || in.Precio.IsNegative() || in.Stock.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	switch in.Tipo {
	case entity.PeliculaCelofan, entity.PeliculaPolietileno:
	default:
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	producto := &entity.Producto{
		ID:        uuid.New().String(),
		Nombre:    in.Nombre,
		Tipo:      in.Tipo,
		Calibre:   in.Calibre,
		Unidad:    in.Unidad,
		Precio:    in.Precio,
		Stock:     in.Stock,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(producto); err != nil {
		return nil, err
	}
	return productoResponse(producto), nil
}

// Obtener devuelve un producto por id.
func (uc *ProductosUseCase) Obtener(id string) (*dto.ProductoResponse, error) {
	producto, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if producto == nil {
		return nil, domain.ErrNotFound
	}
	return productoResponse(producto), nil
}

// Listar lista productos con paginación.
func (uc *ProductosUseCase) Listar(page dto.PageRequest) ([]*dto.ProductoResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ProductoResponse, 0, len(list))
	for _, p := range list {
		out = append(out, productoResponse(p))
	}
	return out, nil
}

// Actualizar actualiza un producto existente (incluido el stock: ajustes de
// inventario manuales entran por aquí).
func (uc *ProductosUseCase) Actualizar(id string, in dto.CrearProductoRequest) (*dto.ProductoResponse, error) {
	if in.Nombre == "" || in.Precio.IsNegative() || in.Stock.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	producto, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if producto == nil {
		return nil, domain.ErrNotFound
	}
	producto.Nombre = in.Nombre
	if in.Tipo != "" {
		producto.Tipo = in.Tipo
	}
	producto.Calibre = in.Calibre
	producto.Unidad = in.Unidad
	producto.Precio = in.Precio
	producto.Stock = in.Stock
	producto.UpdatedAt = time.Now()
	if err := uc.repo.Update(producto); err != nil {
		return nil, err
	}
	return productoResponse(producto), nil
}

// Eliminar borra un producto por id.
func (uc *ProductosUseCase) Eliminar(id string) error {
	producto, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if producto == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func productoResponse(p *entity.Producto) *dto.ProductoResponse {
	return &dto.ProductoResponse{
		ID:      p.ID,
		Nombre:  p.Nombre,
		Tipo:    p.Tipo,
		Calibre: p.Calibre,
		Unidad:  p.Unidad,
		Precio:  p.Precio,
		Stock:   p.Stock,
	}
}
