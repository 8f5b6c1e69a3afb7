package ventas_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poliflex/gestion-api/internal/application/dto"
	"github.com/poliflex/gestion-api/internal/application/ventas"
	"github.com/poliflex/gestion-api/internal/domain"
	"github.com/poliflex/gestion-api/internal/domain/entity"
	"github.com/poliflex/gestion-api/internal/domain/repository"
)

// fakeAgregadoRepo variante del repositorio de notas con agregados fijos por
// id, para los casos de uso de pagos y entregas.
type fakeAgregadoRepo struct {
	fakeNotaRepo
	porID   map[string]*entity.NotaVenta
	pedidos map[string]*entity.Pedido
	creada  *entity.NotaVenta
}

func (f *fakeAgregadoRepo) Create(n *entity.NotaVenta) error {
	f.creada = n
	return nil
}

func (f *fakeAgregadoRepo) GetByID(id string) (*entity.NotaVenta, error) {
	return f.porID[id], nil
}

func (f *fakeAgregadoRepo) Delete(id string) error {
	delete(f.porID, id)
	return nil
}

func (f *fakeAgregadoRepo) GetPedido(id string) (*entity.Pedido, error) {
	return f.pedidos[id], nil
}

type fakePagoRepo struct {
	creados []*entity.Pago
	porID   map[string]*entity.Pago
}

func (f *fakePagoRepo) Create(p *entity.Pago) error {
	f.creados = append(f.creados, p)
	return nil
}
func (f *fakePagoRepo) GetByID(id string) (*entity.Pago, error)       { return f.porID[id], nil }
func (f *fakePagoRepo) ListByNota(string) ([]*entity.Pago, error)     { return nil, nil }
func (f *fakePagoRepo) Delete(id string) error                        { delete(f.porID, id); return nil }

type fakeEntregaRepo struct {
	creadas []*entity.Entrega
	porID   map[string]*entity.Entrega
}

func (f *fakeEntregaRepo) Create(e *entity.Entrega) error {
	f.creadas = append(f.creadas, e)
	return nil
}
func (f *fakeEntregaRepo) GetByID(id string) (*entity.Entrega, error)    { return f.porID[id], nil }
func (f *fakeEntregaRepo) ListByPedido(string) ([]*entity.Entrega, error) { return nil, nil }
func (f *fakeEntregaRepo) Delete(id string) error                         { delete(f.porID, id); return nil }

func notaConPagos(total int64, pagos ...int64) *entity.NotaVenta {
	n := &entity.NotaVenta{ID: "nota-1", Total: decimal.NewFromInt(total)}
	for i, m := range pagos {
		n.Pagos = append(n.Pagos, &entity.Pago{
			ID:    string(rune('a' + i)),
			Monto: decimal.NewFromInt(m),
		})
	}
	return n
}

func TestPagos_RegistrarDentroDelSaldo(t *testing.T) {
	notaRepo := &fakeAgregadoRepo{porID: map[string]*entity.NotaVenta{
		"nota-1": notaConPagos(1000, 400),
	}}
	pagoRepo := &fakePagoRepo{}
	uc := ventas.NewPagosUseCase(notaRepo, pagoRepo)

	pago, err := uc.Registrar("nota-1", dto.RegistrarPagoRequest{
		Monto:  decimal.NewFromInt(600),
		Metodo: "transferencia",
	})
	require.NoError(t, err)
	assert.Equal(t, "transferencia", pago.Metodo)
	require.Len(t, pagoRepo.creados, 1)
	assert.True(t, pagoRepo.creados[0].Monto.Equal(decimal.NewFromInt(600)))
}

func TestPagos_RegistrarRechazaExcesoDeSaldo(t *testing.T) {
	notaRepo := &fakeAgregadoRepo{porID: map[string]*entity.NotaVenta{
		"nota-1": notaConPagos(1000, 400, 300),
	}}
	pagoRepo := &fakePagoRepo{}
	uc := ventas.NewPagosUseCase(notaRepo, pagoRepo)

	// Saldo pendiente: 300. Un abono de 301 debe rechazarse.
	_, err := uc.Registrar("nota-1", dto.RegistrarPagoRequest{Monto: decimal.NewFromInt(301)})
	assert.ErrorIs(t, err, domain.ErrPagoExcedeSaldo)
	assert.Empty(t, pagoRepo.creados)

	// Exactamente el saldo sí pasa.
	_, err = uc.Registrar("nota-1", dto.RegistrarPagoRequest{Monto: decimal.NewFromInt(300)})
	assert.NoError(t, err)
}

func TestPagos_RegistrarValidaMontoYNota(t *testing.T) {
	notaRepo := &fakeAgregadoRepo{porID: map[string]*entity.NotaVenta{}}
	uc := ventas.NewPagosUseCase(notaRepo, &fakePagoRepo{})

	_, err := uc.Registrar("nota-1", dto.RegistrarPagoRequest{Monto: decimal.Zero})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Registrar("no-existe", dto.RegistrarPagoRequest{Monto: decimal.NewFromInt(1)})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestPagos_EliminarInexistente(t *testing.T) {
	uc := ventas.NewPagosUseCase(&fakeAgregadoRepo{}, &fakePagoRepo{porID: map[string]*entity.Pago{}})
	assert.ErrorIs(t, uc.Eliminar("nada"), domain.ErrNotFound)
}

func TestEntregas_RegistrarRechazaExcesoDeCantidad(t *testing.T) {
	pedido := &entity.Pedido{
		ID:       "ped-1",
		Cantidad: decimal.NewFromInt(100),
		Entregas: []*entity.Entrega{{Cantidad: decimal.NewFromInt(80)}},
	}
	notaRepo := &fakeAgregadoRepo{pedidos: map[string]*entity.Pedido{"ped-1": pedido}}
	entregaRepo := &fakeEntregaRepo{}
	uc := ventas.NewEntregasUseCase(notaRepo, entregaRepo)

	// Pendiente de surtir: 20. Una entrega de 21 debe rechazarse.
	_, err := uc.Registrar("ped-1", dto.RegistrarEntregaRequest{Cantidad: decimal.NewFromInt(21)})
	assert.ErrorIs(t, err, domain.ErrEntregaExcedeCantidad)
	assert.Empty(t, entregaRepo.creadas)

	out, err := uc.Registrar("ped-1", dto.RegistrarEntregaRequest{Cantidad: decimal.NewFromInt(20)})
	require.NoError(t, err)
	assert.True(t, out.Cantidad.Equal(decimal.NewFromInt(20)))
}

func TestEntregas_RegistrarValidaCantidadYPedido(t *testing.T) {
	notaRepo := &fakeAgregadoRepo{pedidos: map[string]*entity.Pedido{}}
	uc := ventas.NewEntregasUseCase(notaRepo, &fakeEntregaRepo{})

	_, err := uc.Registrar("ped-1", dto.RegistrarEntregaRequest{Cantidad: decimal.NewFromInt(-5)})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Registrar("no-existe", dto.RegistrarEntregaRequest{Cantidad: decimal.NewFromInt(5)})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ---------------------------------------------------------------------------
// Crear y eliminar notas
// ---------------------------------------------------------------------------

type fakeClienteRepo struct {
	porID map[string]*entity.Cliente
}

func (f *fakeClienteRepo) Create(*entity.Cliente) error { return nil }
func (f *fakeClienteRepo) GetByID(id string) (*entity.Cliente, error) {
	return f.porID[id], nil
}
func (f *fakeClienteRepo) List(int, int) ([]*entity.Cliente, error) { return nil, nil }
func (f *fakeClienteRepo) Update(*entity.Cliente) error             { return nil }
func (f *fakeClienteRepo) Delete(string) error                      { return nil }

type fakeProductoRepo struct {
	porID map[string]*entity.Producto
}

func (f *fakeProductoRepo) Create(*entity.Producto) error { return nil }
func (f *fakeProductoRepo) GetByID(id string) (*entity.Producto, error) {
	return f.porID[id], nil
}
func (f *fakeProductoRepo) GetForUpdate(id string) (*entity.Producto, error) {
	return f.porID[id], nil
}
func (f *fakeProductoRepo) List(int, int) ([]*entity.Producto, error) { return nil, nil }
func (f *fakeProductoRepo) Update(*entity.Producto) error             { return nil }
func (f *fakeProductoRepo) Delete(string) error                       { return nil }
func (f *fakeProductoRepo) UpdateStock(id string, stock decimal.Decimal) error {
	f.porID[id].Stock = stock
	return nil
}

// fakeTxRunner ejecuta el bloque directamente con los repos dados; si el
// bloque falla simula el rollback restaurando el stock inicial.
type fakeTxRunner struct {
	notaRepo *fakeAgregadoRepo
	prodRepo *fakeProductoRepo
}

func (t *fakeTxRunner) Run(ctx context.Context, fn func(repository.NotaVentaRepository, repository.ProductoRepository) error) error {
	inicial := make(map[string]decimal.Decimal, len(t.prodRepo.porID))
	for id, p := range t.prodRepo.porID {
		inicial[id] = p.Stock
	}
	if err := fn(t.notaRepo, t.prodRepo); err != nil {
		for id, s := range inicial {
			t.prodRepo.porID[id].Stock = s
		}
		return err
	}
	return nil
}

func TestCrearNota_CalculaTotalesYDescuentaStock(t *testing.T) {
	clienteRepo := &fakeClienteRepo{porID: map[string]*entity.Cliente{
		"cli-1": {ID: "cli-1", Empresa: "Empaques del Norte", DiasCredito: 30},
	}}
	prodRepo := &fakeProductoRepo{porID: map[string]*entity.Producto{
		"prod-1": {ID: "prod-1", Nombre: "Bobina celofán 90", Stock: decimal.NewFromInt(500)},
	}}
	notaRepo := &fakeAgregadoRepo{}
	uc := ventas.NewCrearNotaUseCase(&fakeTxRunner{notaRepo: notaRepo, prodRepo: prodRepo}, clienteRepo)

	id, err := uc.Crear(context.Background(), dto.CrearNotaRequest{
		ClienteID:    "cli-1",
		Fecha:        "2026-08-15",
		DescuentoPct: decimal.NewFromInt(10),
		Pedidos: []dto.PedidoRequest{
			{ProductoID: "prod-1", Cantidad: decimal.NewFromInt(100), PrecioUnitario: decimal.NewFromInt(10)},
		},
	})
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	// Subtotal 1000, -10% = 900, IVA 16% = 144, total 1044.
	creada := notaRepo.creada
	require.NotNil(t, creada)
	assert.True(t, creada.Subtotal.Equal(decimal.NewFromInt(1000)), "subtotal %s", creada.Subtotal)
	assert.True(t, creada.IVA.Equal(decimal.NewFromInt(144)), "iva %s", creada.IVA)
	assert.True(t, creada.Total.Equal(decimal.NewFromInt(1044)), "total %s", creada.Total)
	assert.Contains(t, creada.Folio, "NV-2026-")
	assert.True(t, prodRepo.porID["prod-1"].Stock.Equal(decimal.NewFromInt(400)), "stock descontado")
}

func TestCrearNota_StockInsuficienteRevierteTodo(t *testing.T) {
	clienteRepo := &fakeClienteRepo{porID: map[string]*entity.Cliente{
		"cli-1": {ID: "cli-1", Empresa: "Empaques del Norte"},
	}}
	prodRepo := &fakeProductoRepo{porID: map[string]*entity.Producto{
		"prod-1": {ID: "prod-1", Nombre: "Bobina celofán 90", Stock: decimal.NewFromInt(500)},
		"prod-2": {ID: "prod-2", Nombre: "Rollo polietileno", Stock: decimal.NewFromInt(10)},
	}}
	notaRepo := &fakeAgregadoRepo{}
	uc := ventas.NewCrearNotaUseCase(&fakeTxRunner{notaRepo: notaRepo, prodRepo: prodRepo}, clienteRepo)

	_, err := uc.Crear(context.Background(), dto.CrearNotaRequest{
		ClienteID: "cli-1",
		Pedidos: []dto.PedidoRequest{
			{ProductoID: "prod-1", Cantidad: decimal.NewFromInt(100), PrecioUnitario: decimal.NewFromInt(10)},
			{ProductoID: "prod-2", Cantidad: decimal.NewFromInt(11), PrecioUnitario: decimal.NewFromInt(5)},
		},
	})
	require.ErrorIs(t, err, domain.ErrStockInsuficiente)
	assert.Nil(t, notaRepo.creada)
	// El primer producto alcanzó a descontarse dentro de la tx; el rollback lo restaura.
	assert.True(t, prodRepo.porID["prod-1"].Stock.Equal(decimal.NewFromInt(500)))
	assert.True(t, prodRepo.porID["prod-2"].Stock.Equal(decimal.NewFromInt(10)))
}

func TestCrearNota_ValidaEntrada(t *testing.T) {
	uc := ventas.NewCrearNotaUseCase(&fakeTxRunner{}, &fakeClienteRepo{porID: map[string]*entity.Cliente{}})

	_, err := uc.Crear(context.Background(), dto.CrearNotaRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Crear(context.Background(), dto.CrearNotaRequest{
		ClienteID:    "cli-1",
		DescuentoPct: decimal.NewFromInt(120),
		Pedidos:      []dto.PedidoRequest{{ProductoID: "p", Cantidad: decimal.NewFromInt(1)}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "descuento mayor a 100 es inválido")

	_, err = uc.Crear(context.Background(), dto.CrearNotaRequest{
		ClienteID: "no-existe",
		Pedidos:   []dto.PedidoRequest{{ProductoID: "p", Cantidad: decimal.NewFromInt(1), PrecioUnitario: decimal.NewFromInt(1)}},
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestEliminarNota_RechazaNotasConPagosOEntregas(t *testing.T) {
	conPagos := notaConPagos(1000, 100)
	conEntregas := &entity.NotaVenta{
		ID: "nota-2",
		Pedidos: []*entity.Pedido{{
			ID:       "ped-1",
			Entregas: []*entity.Entrega{{Cantidad: decimal.NewFromInt(1)}},
		}},
	}
	notaRepo := &fakeAgregadoRepo{porID: map[string]*entity.NotaVenta{
		"nota-1": conPagos,
		"nota-2": conEntregas,
	}}
	uc := ventas.NewEliminarNotaUseCase(&fakeTxRunner{notaRepo: notaRepo, prodRepo: &fakeProductoRepo{}}, notaRepo)

	assert.ErrorIs(t, uc.Eliminar(context.Background(), "nota-1"), domain.ErrNotaConPagos)
	assert.ErrorIs(t, uc.Eliminar(context.Background(), "nota-2"), domain.ErrConflict)
	assert.ErrorIs(t, uc.Eliminar(context.Background(), "no-existe"), domain.ErrNotFound)
}

func TestEliminarNota_RestituyeStock(t *testing.T) {
	nota := &entity.NotaVenta{
		ID: "nota-1",
		Pedidos: []*entity.Pedido{{
			ID:         "ped-1",
			ProductoID: "prod-1",
			Cantidad:   decimal.NewFromInt(40),
		}},
	}
	notaRepo := &fakeAgregadoRepo{porID: map[string]*entity.NotaVenta{"nota-1": nota}}
	prodRepo := &fakeProductoRepo{porID: map[string]*entity.Producto{
		"prod-1": {ID: "prod-1", Stock: decimal.NewFromInt(60)},
	}}
	uc := ventas.NewEliminarNotaUseCase(&fakeTxRunner{notaRepo: notaRepo, prodRepo: prodRepo}, notaRepo)

	require.NoError(t, uc.Eliminar(context.Background(), "nota-1"))
	assert.True(t, prodRepo.porID["prod-1"].Stock.Equal(decimal.NewFromInt(100)))
}
