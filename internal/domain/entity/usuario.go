package entity

import "time"

// Roles válidos para Usuario.
const (
	RolAdmin   = "admin"
	RolVentas  = "ventas"
	RolAlmacen = "almacen"
)

// Usuario representa un usuario del sistema.
type Usuario struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Nombre       string
	Rol          string // admin, ventas, almacen
	Estado       string // active, inactive
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
