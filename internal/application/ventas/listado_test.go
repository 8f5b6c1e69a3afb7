package ventas_test

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poliflex/gestion-api/internal/application/ventas"
	"github.com/poliflex/gestion-api/internal/domain/entity"
	"github.com/poliflex/gestion-api/internal/domain/repository"
)

// fakeNotaRepo repositorio en memoria para los tests del listado. Respeta el
// contrato en dos fases: VentanaIDs filtra y pagina, DetallePorIDs devuelve
// los agregados en el orden pedido.
type fakeNotaRepo struct {
	mu    sync.Mutex
	notas []*entity.NotaVenta

	fail    bool          // la siguiente VentanaIDs falla
	bloquea chan struct{} // si no es nil, la siguiente VentanaIDs espera aquí
}

func (f *fakeNotaRepo) Create(*entity.NotaVenta) error            { return nil }
func (f *fakeNotaRepo) GetByID(string) (*entity.NotaVenta, error) { return nil, nil }
func (f *fakeNotaRepo) GetPedido(string) (*entity.Pedido, error)  { return nil, nil }
func (f *fakeNotaRepo) Delete(string) error                       { return nil }

func (f *fakeNotaRepo) filtradas(filtros repository.FiltrosNota) []*entity.NotaVenta {
	var out []*entity.NotaVenta
	for _, n := range f.notas {
		if filtros.ClienteID != "" && n.ClienteID != filtros.ClienteID {
			continue
		}
		out = append(out, n)
	}
	return out
}

func (f *fakeNotaRepo) VentanaIDs(ctx context.Context, filtros repository.FiltrosNota, limit, offset int) ([]string, int, error) {
	f.mu.Lock()
	if f.bloquea != nil {
		ch := f.bloquea
		f.bloquea = nil
		f.mu.Unlock()
		<-ch
		f.mu.Lock()
	}
	defer f.mu.Unlock()

	if f.fail {
		f.fail = false
		return nil, 0, fmt.Errorf("db caída")
	}
	filtradas := f.filtradas(filtros)
	total := len(filtradas)
	if offset > total {
		offset = total
	}
	fin := offset + limit
	if fin > total {
		fin = total
	}
	var ids []string
	for _, n := range filtradas[offset:fin] {
		ids = append(ids, n.ID)
	}
	return ids, total, nil
}

func (f *fakeNotaRepo) DetallePorIDs(ctx context.Context, ids []string) ([]*entity.NotaVenta, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	porID := make(map[string]*entity.NotaVenta, len(f.notas))
	for _, n := range f.notas {
		porID[n.ID] = n
	}
	var out []*entity.NotaVenta
	for _, id := range ids {
		if n, ok := porID[id]; ok {
			out = append(out, n)
		}
	}
	return out, nil
}

// nuevasNotas genera n notas triviales, todas del mismo cliente salvo que
// clienteID varíe.
func nuevasNotas(n int, clienteID string) []*entity.NotaVenta {
	fecha := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	out := make([]*entity.NotaVenta, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, &entity.NotaVenta{
			ID:        fmt.Sprintf("nota-%03d", i),
			Folio:     fmt.Sprintf("NV-2026-%03d", i),
			ClienteID: clienteID,
			Fecha:     fecha.AddDate(0, 0, -i),
			Total:     decimal.NewFromInt(1000),
			Cliente:   &entity.Cliente{ID: clienteID, Empresa: "Empaques del Norte", DiasCredito: 30},
		})
	}
	return out
}

func TestPaginador_CargarMasAcumulaPaginas(t *testing.T) {
	repo := &fakeNotaRepo{notas: nuevasNotas(35, "cli-1")}
	p := ventas.NewPaginador(ventas.NewListadoNotasUseCase(repo), repository.FiltrosNota{})
	ctx := context.Background()

	require.NoError(t, p.CargarMas(ctx))
	assert.Len(t, p.Notas(), 15, "la primera página trae el tamaño fijo")
	assert.Equal(t, 35, p.Total())
	assert.True(t, p.HasMore())

	require.NoError(t, p.CargarMas(ctx))
	assert.Len(t, p.Notas(), 30)
	assert.True(t, p.HasMore())

	require.NoError(t, p.CargarMas(ctx))
	assert.Len(t, p.Notas(), 35, "la última página es parcial")
	assert.False(t, p.HasMore())

	// Sin más páginas, CargarMas es un no-op.
	require.NoError(t, p.CargarMas(ctx))
	assert.Len(t, p.Notas(), 35)
}

func TestPaginador_HasMoreExactoEnMultiploDePagina(t *testing.T) {
	// 30 notas = exactamente dos páginas; tras la segunda no debe anunciar más.
	repo := &fakeNotaRepo{notas: nuevasNotas(30, "cli-1")}
	p := ventas.NewPaginador(ventas.NewListadoNotasUseCase(repo), repository.FiltrosNota{})
	ctx := context.Background()

	require.NoError(t, p.CargarMas(ctx))
	assert.True(t, p.HasMore())
	require.NoError(t, p.CargarMas(ctx))
	assert.False(t, p.HasMore())
	assert.Len(t, p.Notas(), 30)
}

func TestPaginador_AplicarFiltrosReiniciaDesdeCero(t *testing.T) {
	notas := nuevasNotas(20, "cli-1")
	notas = append(notas, &entity.NotaVenta{
		ID:        "nota-otra",
		Folio:     "NV-2026-999",
		ClienteID: "cli-2",
		Fecha:     time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC),
		Total:     decimal.NewFromInt(500),
		Cliente:   &entity.Cliente{ID: "cli-2", Empresa: "Bolsas MX", DiasCredito: 15},
	})
	repo := &fakeNotaRepo{notas: notas}
	p := ventas.NewPaginador(ventas.NewListadoNotasUseCase(repo), repository.FiltrosNota{})
	ctx := context.Background()

	require.NoError(t, p.CargarMas(ctx))
	require.NoError(t, p.CargarMas(ctx))
	assert.Len(t, p.Notas(), 21)

	require.NoError(t, p.AplicarFiltros(ctx, repository.FiltrosNota{ClienteID: "cli-2"}))
	assert.Len(t, p.Notas(), 1, "el filtro descarta lo acumulado y recarga desde offset 0")
	assert.Equal(t, 1, p.Total())
	assert.False(t, p.HasMore())
	assert.Equal(t, "cli-2", p.Filtros().ClienteID)

	require.NoError(t, p.RestablecerFiltros(ctx))
	assert.Equal(t, repository.FiltrosNota{}, p.Filtros())
	assert.Equal(t, 21, p.Total())
	assert.Len(t, p.Notas(), 15, "restablecer vuelve a la primera página sin filtros")
}

func TestPaginador_CargarHastaNoExcedeObjetivo(t *testing.T) {
	repo := &fakeNotaRepo{notas: nuevasNotas(50, "cli-1")}
	p := ventas.NewPaginador(ventas.NewListadoNotasUseCase(repo), repository.FiltrosNota{})

	require.NoError(t, p.CargarHasta(context.Background(), 37))
	assert.Len(t, p.Notas(), 37, "la última ventana se recorta al objetivo")
	assert.True(t, p.HasMore())
}

func TestPaginador_CargarHastaSeDetieneSiElConjuntoEsMasChico(t *testing.T) {
	repo := &fakeNotaRepo{notas: nuevasNotas(8, "cli-1")}
	p := ventas.NewPaginador(ventas.NewListadoNotasUseCase(repo), repository.FiltrosNota{})

	require.NoError(t, p.CargarHasta(context.Background(), 40))
	assert.Len(t, p.Notas(), 8)
	assert.False(t, p.HasMore())
}

func TestPaginador_ErrorDejaLasFilasIntactas(t *testing.T) {
	repo := &fakeNotaRepo{notas: nuevasNotas(35, "cli-1")}
	p := ventas.NewPaginador(ventas.NewListadoNotasUseCase(repo), repository.FiltrosNota{})
	ctx := context.Background()

	require.NoError(t, p.CargarMas(ctx))
	require.Len(t, p.Notas(), 15)

	repo.fail = true
	err := p.CargarMas(ctx)
	require.Error(t, err)
	assert.Len(t, p.Notas(), 15, "una página fallida no toca lo ya cargado")
	assert.NotEmpty(t, p.Error())

	// El siguiente intento avanza normal y limpia el error.
	require.NoError(t, p.CargarMas(ctx))
	assert.Len(t, p.Notas(), 30)
	assert.Empty(t, p.Error())
}

func TestPaginador_RespuestaObsoletaSeDescarta(t *testing.T) {
	repo := &fakeNotaRepo{notas: nuevasNotas(35, "cli-1")}
	p := ventas.NewPaginador(ventas.NewListadoNotasUseCase(repo), repository.FiltrosNota{})
	ctx := context.Background()

	// Primera carga queda bloqueada dentro del repositorio.
	libera := make(chan struct{})
	repo.mu.Lock()
	repo.bloquea = libera
	repo.mu.Unlock()

	done := make(chan error, 1)
	go func() { done <- p.CargarMas(ctx) }()

	// Mientras la primera sigue en vuelo, un cambio de filtros avanza la
	// generación y recarga.
	time.Sleep(20 * time.Millisecond)
	require.NoError(t, p.AplicarFiltros(ctx, repository.FiltrosNota{ClienteID: "cli-1"}))
	require.Len(t, p.Notas(), 15)

	// Al liberarse, la respuesta vieja llega con generación obsoleta y se tira.
	close(libera)
	require.NoError(t, <-done)
	assert.Len(t, p.Notas(), 15, "la respuesta tardía no debe duplicar ni pisar filas")
	assert.Equal(t, 35, p.Total())
}

func TestListado_PaginaDevuelveMetadatos(t *testing.T) {
	repo := &fakeNotaRepo{notas: nuevasNotas(20, "cli-1")}
	uc := ventas.NewListadoNotasUseCase(repo)

	pagina, err := uc.Pagina(context.Background(), repository.FiltrosNota{}, 15)
	require.NoError(t, err)
	assert.Equal(t, 20, pagina.Total)
	assert.Equal(t, 15, pagina.Offset)
	assert.False(t, pagina.HasMore)
	assert.Len(t, pagina.Notas, 5)
	// Las filas llevan los estados derivados del dominio.
	assert.Equal(t, "pendiente", pagina.Notas[0].EstadoPago)
}
