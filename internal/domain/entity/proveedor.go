package entity

import "time"

// Proveedor representa un proveedor de materia prima (resina, bobina madre, tintas).
type Proveedor struct {
	ID        string
	Empresa   string
	Contacto  string
	Telefono  string
	Email     string
	Notas     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
