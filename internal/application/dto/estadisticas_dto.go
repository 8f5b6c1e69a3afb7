package dto

import "github.com/shopspring/decimal"

// ResumenAnualDTO contadores del año calendario en curso.
type ResumenAnualDTO struct {
	Anio                int `json:"anio"`
	TotalNotas          int `json:"total_notas"`
	PagadasCompletas    int `json:"pagadas_completas"`
	EntregadasCompletas int `json:"entregadas_completas"`
	CreditoVencido      int `json:"credito_vencido"`
}

// RendimientoVendedorDTO desempeño anual de un vendedor.
type RendimientoVendedorDTO struct {
	VendedorID string          `json:"vendedor_id"`
	Nombre     string          `json:"nombre"`
	Clientes   int             `json:"clientes"`
	Notas      int             `json:"notas"`
	Facturado  decimal.Decimal `json:"facturado"`
	Cobrado    decimal.Decimal `json:"cobrado"`
}
