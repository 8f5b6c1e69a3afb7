package entity

import "time"

// Vendedor representa un vendedor de la empresa; los clientes se asignan a un
// vendedor para los reportes de desempeño.
type Vendedor struct {
	ID        string
	Nombre    string
	Telefono  string
	Email     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
