package repository

import "github.com/poliflex/gestion-api/internal/domain/entity"

// UsuarioRepository define el puerto de persistencia para Usuario (auth).
type UsuarioRepository interface {
	Create(usuario *entity.Usuario) error
	GetByID(id string) (*entity.Usuario, error)
	FindByEmail(email string) (*entity.Usuario, error)
}
