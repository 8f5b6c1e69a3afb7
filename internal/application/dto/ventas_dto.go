package dto

import "github.com/shopspring/decimal"

// CrearNotaRequest body para POST /api/notas.
// Subtotal, IVA y total se calculan en el servidor a partir de los pedidos.
type CrearNotaRequest struct {
	Folio        string          `json:"folio,omitempty"` // opcional; si va vacío se genera
	ClienteID    string          `json:"cliente_id"`
	Fecha        string          `json:"fecha,omitempty"` // YYYY-MM-DD; vacío = hoy
	DescuentoPct decimal.Decimal `json:"descuento_pct"`
	Pedidos      []PedidoRequest `json:"pedidos"`
}

// PedidoRequest línea de la nota (producto, cantidad, precio unitario).
type PedidoRequest struct {
	ProductoID     string          `json:"producto_id"`
	Cantidad       decimal.Decimal `json:"cantidad"`
	PrecioUnitario decimal.Decimal `json:"precio_unitario"`
}

// RegistrarPagoRequest body para POST /api/notas/:id/pagos.
type RegistrarPagoRequest struct {
	Fecha  string          `json:"fecha,omitempty"` // YYYY-MM-DD; vacío = hoy
	Monto  decimal.Decimal `json:"monto"`
	Metodo string          `json:"metodo"` // efectivo, transferencia, cheque
}

// RegistrarEntregaRequest body para POST /api/pedidos/:id/entregas.
type RegistrarEntregaRequest struct {
	Fecha    string          `json:"fecha,omitempty"` // YYYY-MM-DD; vacío = hoy
	Cantidad decimal.Decimal `json:"cantidad"`
}

// NotaResumenDTO fila del listado de notas con los estados derivados.
type NotaResumenDTO struct {
	ID               string          `json:"id"`
	Folio            string          `json:"folio"`
	Fecha            string          `json:"fecha"`
	ClienteID        string          `json:"cliente_id"`
	ClienteEmpresa   string          `json:"cliente_empresa,omitempty"`
	Total            decimal.Decimal `json:"total"`
	TotalPagado      decimal.Decimal `json:"total_pagado"`
	SaldoPendiente   decimal.Decimal `json:"saldo_pendiente"`
	PorcentajePagado decimal.Decimal `json:"porcentaje_pagado"`
	EstadoPago       string          `json:"estado_pago"`
	// Variante de listado: pedidos con al menos una entrega / total de pedidos.
	PorcentajeEntrega decimal.Decimal `json:"porcentaje_entrega"`
	EstadoEntrega     string          `json:"estado_entrega"`
	FechaVencimiento  string          `json:"fecha_vencimiento"`
	DiasRestantes     int             `json:"dias_restantes"`
	PorcentajeCredito decimal.Decimal `json:"porcentaje_credito"`
	EstadoCredito     string          `json:"estado_credito"`
}

// PaginaNotasDTO página del listado: filas + metadatos de paginación.
type PaginaNotasDTO struct {
	Notas   []*NotaResumenDTO `json:"notas"`
	Total   int               `json:"total"`
	Offset  int               `json:"offset"`
	Limit   int               `json:"limit"`
	HasMore bool              `json:"has_more"`
}

// NotaDetalleDTO nota completa para GET /api/notas/:id.
// PorcentajeEntrega aquí es la variante de detalle: cantidad entregada sobre
// cantidad pedida (difiere a propósito de la variante del listado).
type NotaDetalleDTO struct {
	ID                string          `json:"id"`
	Folio             string          `json:"folio"`
	Fecha             string          `json:"fecha"`
	Cliente           ClienteResponse `json:"cliente"`
	Subtotal          decimal.Decimal `json:"subtotal"`
	DescuentoPct      decimal.Decimal `json:"descuento_pct"`
	IVA               decimal.Decimal `json:"iva"`
	Total             decimal.Decimal `json:"total"`
	TotalPagado       decimal.Decimal `json:"total_pagado"`
	SaldoPendiente    decimal.Decimal `json:"saldo_pendiente"`
	PorcentajePagado  decimal.Decimal `json:"porcentaje_pagado"`
	EstadoPago        string          `json:"estado_pago"`
	PorcentajeEntrega decimal.Decimal `json:"porcentaje_entrega"`
	EstadoEntrega     string          `json:"estado_entrega"`
	FechaVencimiento  string          `json:"fecha_vencimiento"`
	DiasRestantes     int             `json:"dias_restantes"`
	PorcentajeCredito decimal.Decimal `json:"porcentaje_credito"`
	EstadoCredito     string          `json:"estado_credito"`
	Pedidos           []PedidoDTO     `json:"pedidos"`
	Pagos             []PagoDTO       `json:"pagos"`
}

// PedidoDTO línea de pedido en el detalle de la nota.
type PedidoDTO struct {
	ID             string          `json:"id"`
	ProductoID     string          `json:"producto_id"`
	ProductoNombre string          `json:"producto_nombre,omitempty"`
	Cantidad       decimal.Decimal `json:"cantidad"`
	PrecioUnitario decimal.Decimal `json:"precio_unitario"`
	Entregado      decimal.Decimal `json:"entregado"` // suma de entregas
	Entregas       []EntregaDTO    `json:"entregas"`
}

// EntregaDTO entrega registrada contra un pedido.
type EntregaDTO struct {
	ID       string          `json:"id"`
	Fecha    string          `json:"fecha"`
	Cantidad decimal.Decimal `json:"cantidad"`
}

// PagoDTO abono registrado contra la nota.
type PagoDTO struct {
	ID     string          `json:"id"`
	Fecha  string          `json:"fecha"`
	Monto  decimal.Decimal `json:"monto"`
	Metodo string          `json:"metodo"`
}
