package dto

import "github.com/shopspring/decimal"

// CrearClienteRequest body para POST /api/clientes (y PUT /api/clientes/:id).
type CrearClienteRequest struct {
	Empresa     string `json:"empresa"`
	Contacto    string `json:"contacto,omitempty"`
	Telefono    string `json:"telefono,omitempty"`
	Email       string `json:"email,omitempty"`
	DiasCredito int    `json:"dias_credito"`
	VendedorID  string `json:"vendedor_id,omitempty"`
}

// ClienteResponse cliente en respuestas.
type ClienteResponse struct {
	ID          string `json:"id"`
	Empresa     string `json:"empresa"`
	Contacto    string `json:"contacto,omitempty"`
	Telefono    string `json:"telefono,omitempty"`
	Email       string `json:"email,omitempty"`
	DiasCredito int    `json:"dias_credito"`
	VendedorID  string `json:"vendedor_id,omitempty"`
}

// CrearProductoRequest body para POST /api/productos.
type CrearProductoRequest struct {
	Nombre  string          `json:"nombre"`
	Tipo    string          `json:"tipo"` // celofan | polietileno
	Calibre string          `json:"calibre,omitempty"`
	Unidad  string          `json:"unidad,omitempty"`
	Precio  decimal.Decimal `json:"precio"`
	Stock   decimal.Decimal `json:"stock"`
}

// ProductoResponse producto en respuestas.
type ProductoResponse struct {
	ID      string          `json:"id"`
	Nombre  string          `json:"nombre"`
	Tipo    string          `json:"tipo"`
	Calibre string          `json:"calibre,omitempty"`
	Unidad  string          `json:"unidad,omitempty"`
	Precio  decimal.Decimal `json:"precio"`
	Stock   decimal.Decimal `json:"stock"`
}

// CrearVendedorRequest body para POST /api/vendedores.
type CrearVendedorRequest struct {
	Nombre   string `json:"nombre"`
	Telefono string `json:"telefono,omitempty"`
	Email    string `json:"email,omitempty"`
}

// VendedorResponse vendedor en respuestas.
type VendedorResponse struct {
	ID       string `json:"id"`
	Nombre   string `json:"nombre"`
	Telefono string `json:"telefono,omitempty"`
	Email    string `json:"email,omitempty"`
}

// CrearProveedorRequest body para POST /api/proveedores.
type CrearProveedorRequest struct {
	Empresa  string `json:"empresa"`
	Contacto string `json:"contacto,omitempty"`
	Telefono string `json:"telefono,omitempty"`
	Email    string `json:"email,omitempty"`
	Notas    string `json:"notas,omitempty"`
}

// ProveedorResponse proveedor en respuestas.
type ProveedorResponse struct {
	ID       string `json:"id"`
	Empresa  string `json:"empresa"`
	Contacto string `json:"contacto,omitempty"`
	Telefono string `json:"telefono,omitempty"`
	Email    string `json:"email,omitempty"`
	Notas    string `json:"notas,omitempty"`
}
