package estadisticas_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poliflex/gestion-api/internal/application/estadisticas"
	"github.com/poliflex/gestion-api/internal/domain/entity"
	"github.com/poliflex/gestion-api/internal/domain/repository"
)

type fakeEstRepo struct {
	ids         []string
	rendimiento []repository.RendimientoVendedor
}

func (f *fakeEstRepo) IDsPorAnio(context.Context, int) ([]string, error) {
	return f.ids, nil
}

func (f *fakeEstRepo) RendimientoVendedores(context.Context, int) ([]repository.RendimientoVendedor, error) {
	return f.rendimiento, nil
}

type fakeNotaRepo struct {
	porID map[string]*entity.NotaVenta
}

func (f *fakeNotaRepo) Create(*entity.NotaVenta) error            { return nil }
func (f *fakeNotaRepo) GetByID(string) (*entity.NotaVenta, error) { return nil, nil }
func (f *fakeNotaRepo) GetPedido(string) (*entity.Pedido, error)  { return nil, nil }
func (f *fakeNotaRepo) Delete(string) error                       { return nil }

func (f *fakeNotaRepo) VentanaIDs(context.Context, repository.FiltrosNota, int, int) ([]string, int, error) {
	return nil, 0, nil
}

func (f *fakeNotaRepo) DetallePorIDs(ctx context.Context, ids []string) ([]*entity.NotaVenta, error) {
	var out []*entity.NotaVenta
	for _, id := range ids {
		if n, ok := f.porID[id]; ok {
			out = append(out, n)
		}
	}
	return out, nil
}

func TestResumenAnual_CuentaPorEstadoDerivado(t *testing.T) {
	hoy := time.Now()
	reciente := hoy.AddDate(0, 0, -5)  // crédito a 30 días sigue vigente
	antigua := hoy.AddDate(0, 0, -60)  // crédito a 30 días ya venció

	pagada := &entity.NotaVenta{
		ID: "n1", Fecha: reciente,
		Total:   decimal.NewFromInt(1000),
		Pagos:   []*entity.Pago{{Monto: decimal.NewFromInt(1000)}},
		Cliente: &entity.Cliente{DiasCredito: 30},
	}
	entregada := &entity.NotaVenta{
		ID: "n2", Fecha: reciente,
		Total: decimal.NewFromInt(500),
		Pedidos: []*entity.Pedido{
			{Cantidad: decimal.NewFromInt(10), Entregas: []*entity.Entrega{{Cantidad: decimal.NewFromInt(1)}}},
		},
		Cliente: &entity.Cliente{DiasCredito: 30},
	}
	vencida := &entity.NotaVenta{
		ID: "n3", Fecha: antigua,
		Total:   decimal.NewFromInt(800),
		Cliente: &entity.Cliente{DiasCredito: 30},
	}

	estRepo := &fakeEstRepo{ids: []string{"n1", "n2", "n3"}}
	notaRepo := &fakeNotaRepo{porID: map[string]*entity.NotaVenta{
		"n1": pagada, "n2": entregada, "n3": vencida,
	}}
	uc := estadisticas.NewResumenUseCase(estRepo, notaRepo)

	out, err := uc.ResumenAnual(context.Background())
	require.NoError(t, err)

	assert.Equal(t, hoy.Year(), out.Anio)
	assert.Equal(t, 3, out.TotalNotas)
	assert.Equal(t, 1, out.PagadasCompletas)
	// Variante de listado: todos los pedidos de n2 tienen al menos una entrega.
	assert.Equal(t, 1, out.EntregadasCompletas)
	assert.Equal(t, 1, out.CreditoVencido)
}

func TestResumenAnual_SinNotas(t *testing.T) {
	uc := estadisticas.NewResumenUseCase(&fakeEstRepo{}, &fakeNotaRepo{})
	out, err := uc.ResumenAnual(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, out.TotalNotas)
	assert.Equal(t, 0, out.PagadasCompletas)
}

func TestRendimiento_PorVendedorRedondea(t *testing.T) {
	estRepo := &fakeEstRepo{rendimiento: []repository.RendimientoVendedor{
		{
			VendedorID: "v1", Nombre: "Laura", Clientes: 4, Notas: 12,
			Facturado: decimal.RequireFromString("15300.457"),
			Cobrado:   decimal.RequireFromString("9100.123"),
		},
	}}
	uc := estadisticas.NewRendimientoUseCase(estRepo)

	out, err := uc.PorVendedor(context.Background())
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "Laura", out[0].Nombre)
	assert.Equal(t, "15300.46", out[0].Facturado.StringFixed(2))
	assert.Equal(t, "9100.12", out[0].Cobrado.StringFixed(2))
}
