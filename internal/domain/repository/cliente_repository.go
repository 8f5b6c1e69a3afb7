package repository

import "github.com/poliflex/gestion-api/internal/domain/entity"

// ClienteRepository define el puerto de persistencia para Cliente.
type ClienteRepository interface {
	Create(cliente *entity.Cliente) error
	GetByID(id string) (*entity.Cliente, error)
	List(limit, offset int) ([]*entity.Cliente, error)
	Update(cliente *entity.Cliente) error
	Delete(id string) error
}

// VendedorRepository define el puerto de persistencia para Vendedor.
type VendedorRepository interface {
	Create(vendedor *entity.Vendedor) error
	GetByID(id string) (*entity.Vendedor, error)
	List() ([]*entity.Vendedor, error)
	Update(vendedor *entity.Vendedor) error
	Delete(id string) error
}

// ProveedorRepository define el puerto de persistencia para Proveedor.
type ProveedorRepository interface {
	Create(proveedor *entity.Proveedor) error
	GetByID(id string) (*entity.Proveedor, error)
	List(limit, offset int) ([]*entity.Proveedor, error)
	Update(proveedor *entity.Proveedor) error
	Delete(id string) error
}
