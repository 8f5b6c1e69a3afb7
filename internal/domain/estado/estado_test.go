package estado_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poliflex/gestion-api/internal/domain/entity"
	"github.com/poliflex/gestion-api/internal/domain/estado"
)

var hoy = time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

func nota(total float64, pagos ...float64) *entity.NotaVenta {
	n := &entity.NotaVenta{
		ID:    "n1",
		Fecha: hoy.AddDate(0, 0, -10),
		Total: decimal.NewFromFloat(total),
	}
	for _, m := range pagos {
		n.Pagos = append(n.Pagos, &entity.Pago{Monto: decimal.NewFromFloat(m)})
	}
	return n
}

func TestDerivar_PagoParcial(t *testing.T) {
	n := nota(1000, 400, 300)

	d := estado.Derivar(n, 30, hoy)

	require.True(t, d.TotalPagado.Equal(decimal.NewFromInt(700)), "total pagado = 400 + 300")
	assert.True(t, d.SaldoPendiente.Equal(decimal.NewFromInt(300)))
	assert.True(t, d.PorcentajePagado.Equal(decimal.NewFromInt(70)), "porcentaje = %s", d.PorcentajePagado)
	assert.Equal(t, estado.PagoParcial, d.EstadoPago)
}

func TestDerivar_TotalCero_NoDividePorCero(t *testing.T) {
	n := nota(0)

	d := estado.Derivar(n, 30, hoy)

	assert.True(t, d.PorcentajePagado.IsZero())
	assert.Equal(t, estado.PagoPendiente, d.EstadoPago)
}

func TestDerivar_SobrepagoRecortaA100(t *testing.T) {
	n := nota(1000, 1500)

	d := estado.Derivar(n, 30, hoy)

	assert.True(t, d.PorcentajePagado.Equal(decimal.NewFromInt(100)), "el porcentaje se recorta a 100 aunque haya sobrepago")
	assert.Equal(t, estado.PagoPagado, d.EstadoPago)
	assert.True(t, d.SaldoPendiente.IsNegative(), "el saldo sí refleja el sobrepago")
}

func TestDerivar_PagadoExacto(t *testing.T) {
	n := nota(1000, 600, 400)

	d := estado.Derivar(n, 30, hoy)

	assert.Equal(t, estado.PagoPagado, d.EstadoPago)
	assert.True(t, d.SaldoPendiente.IsZero())
}

func TestDerivar_SaldoDeUnCentavoSigueParcial(t *testing.T) {
	// 9999.99 sobre 10000.00 redondea a 100.00%, pero la clasificación usa la
	// razón exacta: con un centavo pendiente la nota no está pagada. Así
	// coincide con la vista notas_venta_estados, que compara montos.
	n := nota(10000, 9999.99)

	d := estado.Derivar(n, 30, hoy)

	assert.Equal(t, estado.PagoParcial, d.EstadoPago)
	assert.True(t, d.SaldoPendiente.Equal(decimal.NewFromFloat(0.01)), "saldo = %s", d.SaldoPendiente)
	assert.True(t, d.PorcentajePagado.Equal(decimal.NewFromInt(100)), "el porcentaje mostrado sí redondea a 100.00")
}

func TestDerivar_SinPagosEsPendiente(t *testing.T) {
	d := estado.Derivar(nota(1000), 30, hoy)
	assert.Equal(t, estado.PagoPendiente, d.EstadoPago)
}

func TestDerivar_EntregaPorConteoDePedidos(t *testing.T) {
	n := nota(1000)
	n.Pedidos = []*entity.Pedido{
		{ID: "p1", Cantidad: decimal.NewFromInt(100), Entregas: []*entity.Entrega{
			{Cantidad: decimal.NewFromInt(1)}, // basta una entrega, sin importar cantidad
		}},
		{ID: "p2", Cantidad: decimal.NewFromInt(100)},
	}

	d := estado.Derivar(n, 30, hoy)

	assert.Equal(t, 1, d.PedidosEntregados)
	assert.True(t, d.PorcentajeEntrega.Equal(decimal.NewFromInt(50)), "1 de 2 pedidos = 50%%, got %s", d.PorcentajeEntrega)
	assert.Equal(t, estado.EntregaParcial, d.EstadoEntrega)
}

func TestDerivar_SinPedidos(t *testing.T) {
	d := estado.Derivar(nota(1000), 30, hoy)
	assert.True(t, d.PorcentajeEntrega.IsZero())
	assert.Equal(t, estado.EntregaPendiente, d.EstadoEntrega)
}

func TestDerivar_EntregaCompleta(t *testing.T) {
	n := nota(1000)
	n.Pedidos = []*entity.Pedido{
		{ID: "p1", Cantidad: decimal.NewFromInt(10), Entregas: []*entity.Entrega{{Cantidad: decimal.NewFromInt(2)}}},
		{ID: "p2", Cantidad: decimal.NewFromInt(10), Entregas: []*entity.Entrega{{Cantidad: decimal.NewFromInt(10)}}},
	}

	d := estado.Derivar(n, 30, hoy)

	assert.Equal(t, estado.EntregaCompleta, d.EstadoEntrega)
}

// Las dos variantes de porcentaje de entrega son definiciones distintas: el
// listado cuenta pedidos con entregas y el detalle compara cantidades. Un
// pedido surtido a medias cuenta completo en la primera y parcial en la segunda.
func TestPorcentajeEntrega_VariantesDivergen(t *testing.T) {
	pedidos := []*entity.Pedido{
		{ID: "p1", Cantidad: decimal.NewFromInt(100), Entregas: []*entity.Entrega{
			{Cantidad: decimal.NewFromInt(25)},
		}},
	}
	n := nota(1000)
	n.Pedidos = pedidos

	d := estado.Derivar(n, 30, hoy)
	porCantidad := estado.PorcentajeEntregaPorCantidad(pedidos)

	assert.True(t, d.PorcentajeEntrega.Equal(decimal.NewFromInt(100)), "listado: 1 de 1 pedidos con entrega")
	assert.True(t, porCantidad.Equal(decimal.NewFromInt(25)), "detalle: 25 de 100 unidades")
	assert.Equal(t, estado.EntregaCompleta, estado.EstadoEntregaDe(d.PorcentajeEntrega))
	assert.Equal(t, estado.EntregaParcial, estado.EstadoEntregaDe(porCantidad))
}

func TestPorcentajeEntregaPorCantidad_SobreentregaRecorta(t *testing.T) {
	pedidos := []*entity.Pedido{
		{Cantidad: decimal.NewFromInt(10), Entregas: []*entity.Entrega{{Cantidad: decimal.NewFromInt(15)}}},
	}
	assert.True(t, estado.PorcentajeEntregaPorCantidad(pedidos).Equal(decimal.NewFromInt(100)))
}

func TestPorcentajeEntregaPorCantidad_CasiCompletaSigueParcial(t *testing.T) {
	pedidos := []*entity.Pedido{
		{Cantidad: decimal.NewFromInt(10000), Entregas: []*entity.Entrega{
			{Cantidad: decimal.NewFromFloat(9999.99)},
		}},
	}

	pct := estado.PorcentajeEntregaPorCantidad(pedidos)

	assert.Equal(t, estado.EntregaParcial, estado.EstadoEntregaDe(pct), "faltan 0.01 unidades; no es completa")
	assert.True(t, pct.Round(2).Equal(decimal.NewFromInt(100)), "solo el redondeo de presentación llega a 100.00")
}

func TestPorcentajeEntregaPorCantidad_SinPedidos(t *testing.T) {
	assert.True(t, estado.PorcentajeEntregaPorCantidad(nil).IsZero())
}

func TestDerivar_CreditoVencido(t *testing.T) {
	// Nota de hace 40 días con 30 días de crédito: venció hace 10.
	n := nota(1000)
	n.Fecha = hoy.AddDate(0, 0, -40)

	d := estado.Derivar(n, 30, hoy)

	assert.Equal(t, 0, d.DiasRestantes, "los días restantes nunca son negativos")
	assert.Equal(t, estado.CreditoVencido, d.EstadoCredito)
	assert.True(t, d.PorcentajeCredito.IsZero())
}

func TestDerivar_CreditoPorVencer(t *testing.T) {
	// Nota de hace 25 días con 30 de crédito: quedan 5 días.
	n := nota(1000)
	n.Fecha = hoy.AddDate(0, 0, -25)

	d := estado.Derivar(n, 30, hoy)

	assert.Equal(t, 5, d.DiasRestantes)
	assert.Equal(t, estado.CreditoPorVencer, d.EstadoCredito)
}

func TestDerivar_CreditoVigente(t *testing.T) {
	n := nota(1000)
	n.Fecha = hoy.AddDate(0, 0, -5)

	d := estado.Derivar(n, 30, hoy)

	assert.Equal(t, 25, d.DiasRestantes)
	assert.Equal(t, estado.CreditoVigente, d.EstadoCredito)
	assert.Equal(t, hoy.AddDate(0, 0, 25), d.FechaVencimiento)
}

func TestDerivar_SinPlazoDeCredito(t *testing.T) {
	// Cliente de contado (0 días): el porcentaje de crédito se reporta en 100
	// y la nota vence el mismo día.
	n := nota(1000)
	n.Fecha = hoy

	d := estado.Derivar(n, 0, hoy)

	assert.True(t, d.PorcentajeCredito.Equal(decimal.NewFromInt(100)))
	assert.Equal(t, estado.CreditoVencido, d.EstadoCredito)
}

func TestDerivar_PorcentajesSiempreEnRango(t *testing.T) {
	casos := []*entity.NotaVenta{
		nota(0, 500),        // total cero con pagos
		nota(100, 90000),    // sobrepago extremo
		nota(100),           // sin pagos
		nota(-50, 10),       // total negativo (dato corrupto aguas arriba)
	}
	for _, n := range casos {
		d := estado.Derivar(n, 30, hoy)
		assert.False(t, d.PorcentajePagado.LessThan(decimal.Zero), "total=%s", n.Total)
		assert.False(t, d.PorcentajePagado.GreaterThan(decimal.NewFromInt(100)), "total=%s", n.Total)
		assert.GreaterOrEqual(t, d.DiasRestantes, 0)
	}
}
