package entity

import "time"

// Cliente representa un cliente de la empresa. DiasCredito es el plazo en días
// a partir de la fecha de la nota para liquidar el saldo.
type Cliente struct {
	ID          string
	Empresa     string
	Contacto    string
	Telefono    string
	Email       string
	DiasCredito int
	VendedorID  string // vendedor asignado a la cuenta
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
