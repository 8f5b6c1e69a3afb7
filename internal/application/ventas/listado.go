package ventas

import (
	"context"
	"sync"
	"time"

	"github.com/poliflex/gestion-api/internal/application/dto"
	"github.com/poliflex/gestion-api/internal/domain/entity"
	"github.com/poliflex/gestion-api/internal/domain/estado"
	"github.com/poliflex/gestion-api/internal/domain/repository"
)

// TamPagina tamaño fijo de página del listado de notas.
const TamPagina = 15

// ListadoNotasUseCase ejecuta el fetch en dos fases del listado de notas:
// primero total + ventana de ids contra la vista notas_venta_estados (el
// filtrado por estados derivados ocurre en el servidor), después el detalle
// anidado de esa ventana, re-derivando los estados en proceso para enriquecer
// cada fila.
type ListadoNotasUseCase struct {
	repo repository.NotaVentaRepository
}

// NewListadoNotasUseCase construye el caso de uso.
func NewListadoNotasUseCase(repo repository.NotaVentaRepository) *ListadoNotasUseCase {
	return &ListadoNotasUseCase{repo: repo}
}

// Pagina devuelve una página de TamPagina filas desde offset con los filtros dados.
func (uc *ListadoNotasUseCase) Pagina(ctx context.Context, f repository.FiltrosNota, offset int) (*dto.PaginaNotasDTO, error) {
	return uc.pagina(ctx, f, offset, TamPagina)
}

func (uc *ListadoNotasUseCase) pagina(ctx context.Context, f repository.FiltrosNota, offset, limit int) (*dto.PaginaNotasDTO, error) {
	ids, total, err := uc.repo.VentanaIDs(ctx, f, limit, offset)
	if err != nil {
		return nil, err
	}

	out := &dto.PaginaNotasDTO{
		Notas:   []*dto.NotaResumenDTO{},
		Total:   total,
		Offset:  offset,
		Limit:   limit,
		HasMore: offset+limit < total,
	}
	if len(ids) == 0 {
		return out, nil
	}

	notas, err := uc.repo.DetallePorIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	hoy := time.Now()
	for _, n := range notas {
		out.Notas = append(out.Notas, resumenDe(n, hoy))
	}
	return out, nil
}

// resumenDe convierte un agregado en fila del listado con estados derivados.
func resumenDe(n *entity.NotaVenta, hoy time.Time) *dto.NotaResumenDTO {
	diasCredito := 0
	empresa := ""
	if n.Cliente != nil {
		diasCredito = n.Cliente.DiasCredito
		empresa = n.Cliente.Empresa
	}
	d := estado.Derivar(n, diasCredito, hoy)
	return &dto.NotaResumenDTO{
		ID:                n.ID,
		Folio:             n.Folio,
		Fecha:             n.Fecha.Format("2006-01-02"),
		ClienteID:         n.ClienteID,
		ClienteEmpresa:    empresa,
		Total:             n.Total,
		TotalPagado:       d.TotalPagado,
		SaldoPendiente:    d.SaldoPendiente,
		PorcentajePagado:  d.PorcentajePagado,
		EstadoPago:        d.EstadoPago,
		PorcentajeEntrega: d.PorcentajeEntrega,
		EstadoEntrega:     d.EstadoEntrega,
		FechaVencimiento:  d.FechaVencimiento.Format("2006-01-02"),
		DiasRestantes:     d.DiasRestantes,
		PorcentajeCredito: d.PorcentajeCredito,
		EstadoCredito:     d.EstadoCredito,
	}
}

// Paginador acumula páginas del listado con paginación por offset. Mantiene
// los filtros activos, el total filtrado y la bandera hasMore; una página que
// falla deja las filas ya cargadas intactas y expone el error como string.
//
// Cada cambio de filtros o refresh incrementa una generación monotónica; una
// carga en vuelo de una generación anterior se descarta al llegar, de modo que
// una respuesta tardía nunca pisa un estado más nuevo.
type Paginador struct {
	uc *ListadoNotasUseCase

	mu       sync.Mutex
	gen      uint64
	filtros  repository.FiltrosNota
	offset   int
	total    int
	hasMore  bool
	cargando bool
	notas    []*dto.NotaResumenDTO
	errMsg   string
}

// NewPaginador construye un paginador con los filtros iniciales dados.
func NewPaginador(uc *ListadoNotasUseCase, filtros repository.FiltrosNota) *Paginador {
	return &Paginador{uc: uc, filtros: filtros, hasMore: true}
}

// CargarMas trae y anexa la siguiente página. No hace nada si ya hay una carga
// en curso o si no quedan más páginas.
func (p *Paginador) CargarMas(ctx context.Context) error {
	_, err := p.cargarVentana(ctx, TamPagina)
	return err
}

// AplicarFiltros reemplaza los filtros, reinicia el offset a 0 y recarga.
func (p *Paginador) AplicarFiltros(ctx context.Context, f repository.FiltrosNota) error {
	p.reiniciar(f)
	return p.CargarMas(ctx)
}

// RestablecerFiltros limpia todos los filtros y recarga desde el inicio.
func (p *Paginador) RestablecerFiltros(ctx context.Context) error {
	return p.AplicarFiltros(ctx, repository.FiltrosNota{})
}

// Refrescar recarga desde offset 0 conservando los filtros actuales.
func (p *Paginador) Refrescar(ctx context.Context) error {
	p.mu.Lock()
	f := p.filtros
	p.mu.Unlock()
	return p.AplicarFiltros(ctx, f)
}

// CargarHasta pagina repetidamente hasta acumular objetivo filas. Se usa al
// volver de la vista de detalle para restaurar la posición de scroll. La
// última ventana se recorta para no exceder objetivo, y si el conjunto
// filtrado es más chico el ciclo termina cuando hasMore pasa a false.
func (p *Paginador) CargarHasta(ctx context.Context, objetivo int) error {
	for {
		p.mu.Lock()
		cargadas := len(p.notas)
		hasMore := p.hasMore
		p.mu.Unlock()

		if cargadas >= objetivo || !hasMore {
			return nil
		}
		limit := TamPagina
		if rest := objetivo - cargadas; rest < limit {
			limit = rest
		}
		progreso, err := p.cargarVentana(ctx, limit)
		if err != nil {
			return err
		}
		if !progreso {
			// Otra generación tomó el control; este ciclo ya no manda.
			return nil
		}
	}
}

// cargarVentana ejecuta una carga de `limit` filas desde el offset actual.
// Devuelve false sin error cuando la carga se omitió (en curso, sin más
// páginas) o se descartó por generación obsoleta.
func (p *Paginador) cargarVentana(ctx context.Context, limit int) (bool, error) {
	p.mu.Lock()
	if p.cargando || !p.hasMore {
		p.mu.Unlock()
		return false, nil
	}
	p.cargando = true
	gen := p.gen
	f := p.filtros
	offset := p.offset
	p.mu.Unlock()

	pagina, err := p.uc.pagina(ctx, f, offset, limit)

	p.mu.Lock()
	defer p.mu.Unlock()
	if gen != p.gen {
		// Respuesta de una generación anterior: se descarta sin tocar nada.
		return false, nil
	}
	p.cargando = false
	if err != nil {
		p.errMsg = err.Error()
		return false, err
	}
	p.errMsg = ""
	p.notas = append(p.notas, pagina.Notas...)
	p.total = pagina.Total
	p.offset += limit
	p.hasMore = pagina.HasMore
	return true, nil
}

func (p *Paginador) reiniciar(f repository.FiltrosNota) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.gen++
	p.filtros = f
	p.offset = 0
	p.total = 0
	p.hasMore = true
	p.cargando = false
	p.notas = nil
	p.errMsg = ""
}

// Notas devuelve las filas acumuladas.
func (p *Paginador) Notas() []*dto.NotaResumenDTO {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.notas
}

// Total devuelve el total filtrado reportado por la última carga.
func (p *Paginador) Total() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.total
}

// HasMore indica si quedan páginas por cargar.
func (p *Paginador) HasMore() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.hasMore
}

// Filtros devuelve los filtros activos.
func (p *Paginador) Filtros() repository.FiltrosNota {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.filtros
}

// Error devuelve el mensaje de la última carga fallida, vacío si la última
// carga fue exitosa.
func (p *Paginador) Error() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.errMsg
}
