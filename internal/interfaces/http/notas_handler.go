package http

import (
	"errors"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/poliflex/gestion-api/internal/application/dto"
	"github.com/poliflex/gestion-api/internal/application/ventas"
	"github.com/poliflex/gestion-api/internal/domain"
	"github.com/poliflex/gestion-api/internal/domain/repository"
)

// NotasHandler maneja las peticiones HTTP de notas de venta.
type NotasHandler struct {
	listadoUC  *ventas.ListadoNotasUseCase
	detalleUC  *ventas.DetalleNotaUseCase
	crearUC    *ventas.CrearNotaUseCase
	eliminarUC *ventas.EliminarNotaUseCase
}

// NewNotasHandler construye el handler.
func NewNotasHandler(
	listadoUC *ventas.ListadoNotasUseCase,
	detalleUC *ventas.DetalleNotaUseCase,
	crearUC *ventas.CrearNotaUseCase,
	eliminarUC *ventas.EliminarNotaUseCase,
) *NotasHandler {
	return &NotasHandler{
		listadoUC:  listadoUC,
		detalleUC:  detalleUC,
		crearUC:    crearUC,
		eliminarUC: eliminarUC,
	}
}

// filtrosDeQuery interpreta los filtros del listado desde la query string.
// Los filtros ausentes o vacíos no restringen.
func filtrosDeQuery(c *fiber.Ctx) (repository.FiltrosNota, error) {
	var f repository.FiltrosNota
	if s := c.Query("fecha_desde"); s != "" {
		t, err := time.Parse("2006-01-02", s)
		if err != nil {
			return f, err
		}
		f.FechaDesde = &t
	}
	if s := c.Query("fecha_hasta"); s != "" {
		t, err := time.Parse("2006-01-02", s)
		if err != nil {
			return f, err
		}
		f.FechaHasta = &t
	}
	f.ClienteID = c.Query("cliente_id")
	f.EstadoPago = c.Query("estado_pago")
	f.EstadoEntrega = c.Query("estado_entrega")
	f.EstadoCredito = c.Query("estado_credito")
	return f, nil
}

// List godoc
// @Summary      Listado paginado de notas con estados derivados
// @Tags         notas
// @Produce      json
// @Param        offset         query  int     false  "offset de la página (ignorado si viene count)"
// @Param        count          query  int     false  "acumula páginas hasta count filas (restaurar posición)"
// @Param        fecha_desde    query  string  false  "YYYY-MM-DD"
// @Param        fecha_hasta    query  string  false  "YYYY-MM-DD"
// @Param        cliente_id     query  string  false  "filtra por cliente"
// @Param        estado_pago    query  string  false  "pagado|parcial|pendiente"
// @Param        estado_entrega query  string  false  "completa|parcial|pendiente"
// @Param        estado_credito query  string  false  "vencido|por_vencer|vigente"
// @Success      200  {object}  dto.PaginaNotasDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/notas [get]
func (h *NotasHandler) List(c *fiber.Ctx) error {
	f, err := filtrosDeQuery(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "fecha inválida, formato YYYY-MM-DD"})
	}

	// count=N acumula páginas desde el inicio hasta N filas; se usa al volver
	// del detalle para restaurar la posición del listado.
	if s := c.Query("count"); s != "" {
		objetivo, err := strconv.Atoi(s)
		if err != nil || objetivo <= 0 {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "count debe ser un entero positivo"})
		}
		p := ventas.NewPaginador(h.listadoUC, f)
		if err := p.CargarHasta(c.Context(), objetivo); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
		notas := p.Notas()
		if notas == nil {
			notas = []*dto.NotaResumenDTO{}
		}
		return c.JSON(dto.PaginaNotasDTO{
			Notas:   notas,
			Total:   p.Total(),
			Offset:  0,
			Limit:   objetivo,
			HasMore: p.HasMore(),
		})
	}

	offset, _ := strconv.Atoi(c.Query("offset", "0"))
	if offset < 0 {
		offset = 0
	}
	pagina, err := h.listadoUC.Pagina(c.Context(), f, offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(pagina)
}

// Create godoc
// @Summary      Crear nota de venta con pedidos (descuenta stock)
// @Tags         notas
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CrearNotaRequest  true  "cliente, pedidos, descuento"
// @Success      201   {object}  dto.NotaDetalleDTO
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/notas [post]
func (h *NotasHandler) Create(c *fiber.Ctx) error {
	var in dto.CrearNotaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	id, err := h.crearUC.Crear(c.Context(), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "cliente_id y al menos un pedido con cantidad positiva son requeridos"})
		}
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "cliente o producto inexistente"})
		}
		if errors.Is(err, domain.ErrStockInsuficiente) {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "STOCK_INSUFICIENTE", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	nota, err := h.detalleUC.Obtener(id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(nota)
}

// GetByID godoc
// @Summary      Detalle de nota: pedidos, entregas, pagos y estados
// @Tags         notas
// @Produce      json
// @Param        id   path      string  true  "id de la nota"
// @Success      200  {object}  dto.NotaDetalleDTO
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/notas/{id} [get]
func (h *NotasHandler) GetByID(c *fiber.Ctx) error {
	nota, err := h.detalleUC.Obtener(c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "nota no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(nota)
}

// Delete godoc
// @Summary      Eliminar nota sin pagos ni entregas (restituye stock)
// @Tags         notas
// @Param        id   path  string  true  "id de la nota"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/notas/{id} [delete]
func (h *NotasHandler) Delete(c *fiber.Ctx) error {
	err := h.eliminarUC.Eliminar(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "nota no encontrada"})
		}
		if errors.Is(err, domain.ErrNotaConPagos) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "NOTA_CON_PAGOS", Message: "la nota tiene pagos registrados; elimínelos primero"})
		}
		if errors.Is(err, domain.ErrConflict) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "NOTA_CON_ENTREGAS", Message: "la nota tiene entregas registradas; elimínelas primero"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
