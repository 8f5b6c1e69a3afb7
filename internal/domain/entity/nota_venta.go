package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// NotaVenta representa la cabecera de una nota de venta (factura) con sus
// líneas de pedido y pagos asociados. Pedidos, Pagos y Cliente se cargan
// anidados solo en las consultas de detalle; en consultas ligeras quedan vacíos.
type NotaVenta struct {
	ID           string
	Folio        string // número de factura visible (ej. "NV-2026-0041")
	ClienteID    string
	Fecha        time.Time
	Subtotal     decimal.Decimal
	DescuentoPct decimal.Decimal // porcentaje de descuento sobre el subtotal
	IVA          decimal.Decimal
	Total        decimal.Decimal
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Pedidos []*Pedido
	Pagos   []*Pago
	Cliente *Cliente
}

// Pedido representa una línea de producto dentro de una nota de venta,
// con su propio subregistro de entregas parciales.
type Pedido struct {
	ID             string
	NotaVentaID    string
	ProductoID     string
	Cantidad       decimal.Decimal
	PrecioUnitario decimal.Decimal

	Producto *Producto
	Entregas []*Entrega
}

// Entrega representa un surtido parcial o total contra un pedido.
type Entrega struct {
	ID           string
	PedidoID     string
	Cantidad     decimal.Decimal
	FechaEntrega time.Time
}

// Pago representa un abono contra el saldo de una nota de venta.
type Pago struct {
	ID          string
	NotaVentaID string
	Fecha       time.Time
	Monto       decimal.Decimal
	Metodo      string // efectivo, transferencia, cheque
}
