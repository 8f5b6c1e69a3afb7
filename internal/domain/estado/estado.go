// Package estado contiene la derivación de estados de una nota de venta:
// cobranza (pagos contra el total), surtido (entregas contra los pedidos) y
// crédito (días restantes del plazo del cliente). Son funciones puras sobre
// el agregado ya cargado; no tocan la base de datos y no persisten nada.
package estado

import (
	"math"
	"time"

	"github.com/shopspring/decimal"

	"github.com/poliflex/gestion-api/internal/domain/entity"
)

// Estados de pago de una nota.
const (
	PagoPagado    = "pagado"
	PagoParcial   = "parcial"
	PagoPendiente = "pendiente"
)

// Estados de entrega de una nota.
const (
	EntregaCompleta  = "completa"
	EntregaParcial   = "parcial"
	EntregaPendiente = "pendiente"
)

// Estados de crédito de una nota.
const (
	CreditoVencido   = "vencido"
	CreditoPorVencer = "por_vencer"
	CreditoVigente   = "vigente"
)

// diasAviso es el umbral de días restantes a partir del cual una nota vigente
// pasa a "por_vencer".
const diasAviso = 7

var cien = decimal.NewFromInt(100)

// Derivado agrupa los campos derivados de una nota. Son efímeros: se calculan
// en cada lectura y nunca se persisten (la vista notas_venta_estados los
// replica en SQL solo para poder filtrar en el servidor).
type Derivado struct {
	TotalPagado      decimal.Decimal
	SaldoPendiente   decimal.Decimal
	PorcentajePagado decimal.Decimal // [0,100]
	EstadoPago       string

	PedidosEntregados int             // pedidos con al menos una entrega
	PorcentajeEntrega decimal.Decimal // [0,100], variante por conteo de pedidos
	EstadoEntrega     string

	FechaVencimiento  time.Time
	DiasRestantes     int             // nunca negativo
	PorcentajeCredito decimal.Decimal // [0,100]
	EstadoCredito     string
}

// Derivar calcula los estados de una nota a partir de sus pagos, pedidos con
// entregas y el plazo de crédito del cliente. `hoy` se recibe como parámetro
// para que el cálculo sea determinista en pruebas.
//
// Política ante datos inconsistentes aguas arriba (sobrepago, entregas de
// más): los porcentajes siempre se recortan a [0,100] y un total de cero
// produce 0% en lugar de dividir por cero.
func Derivar(nota *entity.NotaVenta, diasCredito int, hoy time.Time) Derivado {
	var d Derivado

	// Cobranza
	d.TotalPagado = decimal.Zero
	for _, p := range nota.Pagos {
		d.TotalPagado = d.TotalPagado.Add(p.Monto)
	}
	d.SaldoPendiente = nota.Total.Sub(d.TotalPagado)
	// La clasificación usa la razón sin redondear: un saldo de un centavo no
	// convierte la nota en pagada aunque el porcentaje mostrado redondee a
	// 100.00. El Round(2) es solo de presentación, después de clasificar.
	pctPago := decimal.Zero
	if !nota.Total.IsZero() {
		pctPago = clamp(d.TotalPagado.Div(nota.Total).Mul(cien))
	}
	d.PorcentajePagado = pctPago.Round(2)
	d.EstadoPago = estadoPorPorcentaje(pctPago, d.TotalPagado, PagoPagado, PagoParcial, PagoPendiente)

	// Surtido, variante de listado: cuenta pedidos con al menos una entrega.
	// La vista de detalle usa PorcentajeEntregaPorCantidad (cantidad surtida
	// contra cantidad pedida); son definiciones distintas a propósito y cada
	// pantalla conserva la suya.
	for _, ped := range nota.Pedidos {
		if len(ped.Entregas) > 0 {
			d.PedidosEntregados++
		}
	}
	pctEntrega := decimal.Zero
	if len(nota.Pedidos) > 0 {
		pctEntrega = clamp(decimal.NewFromInt(int64(d.PedidosEntregados)).
			Div(decimal.NewFromInt(int64(len(nota.Pedidos)))).Mul(cien))
	}
	d.PorcentajeEntrega = pctEntrega.Round(2)
	d.EstadoEntrega = estadoEntregaDe(pctEntrega)

	// Crédito
	d.FechaVencimiento = nota.Fecha.AddDate(0, 0, diasCredito)
	d.DiasRestantes = diasRestantes(d.FechaVencimiento, hoy)
	if diasCredito > 0 {
		d.PorcentajeCredito = clamp(decimal.NewFromInt(int64(d.DiasRestantes)).
			Div(decimal.NewFromInt(int64(diasCredito))).Mul(cien)).Round(2)
	} else {
		d.PorcentajeCredito = cien
	}
	switch {
	case d.DiasRestantes <= 0:
		d.EstadoCredito = CreditoVencido
	case d.DiasRestantes <= diasAviso:
		d.EstadoCredito = CreditoPorVencer
	default:
		d.EstadoCredito = CreditoVigente
	}

	return d
}

// PorcentajeEntregaPorCantidad es la variante de la vista de detalle: cantidad
// total entregada contra cantidad total pedida, recortada a [0,100].
// Cero pedidos (o cantidad pedida cero) produce 0%. Devuelve la razón sin
// redondear, para que la clasificación no confunda 99.996% con completa;
// redondear a dos decimales es responsabilidad de quien la muestra.
func PorcentajeEntregaPorCantidad(pedidos []*entity.Pedido) decimal.Decimal {
	pedida := decimal.Zero
	entregada := decimal.Zero
	for _, p := range pedidos {
		pedida = pedida.Add(p.Cantidad)
		for _, e := range p.Entregas {
			entregada = entregada.Add(e.Cantidad)
		}
	}
	if pedida.IsZero() {
		return decimal.Zero
	}
	return clamp(entregada.Div(pedida).Mul(cien))
}

// EstadoEntregaDe clasifica un porcentaje de entrega (cualquiera de las dos
// variantes) en completa/parcial/pendiente.
func EstadoEntregaDe(pct decimal.Decimal) string {
	return estadoEntregaDe(pct)
}

func estadoEntregaDe(pct decimal.Decimal) string {
	switch {
	case pct.GreaterThanOrEqual(cien):
		return EntregaCompleta
	case pct.GreaterThan(decimal.Zero):
		return EntregaParcial
	default:
		return EntregaPendiente
	}
}

// estadoPorPorcentaje clasifica el estado de pago sobre el porcentaje sin
// redondear. "pendiente" exige monto pagado cero, no porcentaje cero: con
// total cero el porcentaje es 0 aunque haya abonos.
func estadoPorPorcentaje(pct, pagado decimal.Decimal, completo, parcial, pendiente string) string {
	switch {
	case pct.GreaterThanOrEqual(cien):
		return completo
	case pagado.GreaterThan(decimal.Zero):
		return parcial
	default:
		return pendiente
	}
}

// diasRestantes devuelve ceil((vencimiento - hoy) / 24h), nunca negativo.
func diasRestantes(vencimiento, hoy time.Time) int {
	d := int(math.Ceil(vencimiento.Sub(hoy).Hours() / 24))
	if d < 0 {
		return 0
	}
	return d
}

func clamp(pct decimal.Decimal) decimal.Decimal {
	if pct.LessThan(decimal.Zero) {
		return decimal.Zero
	}
	if pct.GreaterThan(cien) {
		return cien
	}
	return pct
}
