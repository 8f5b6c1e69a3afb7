package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/poliflex/gestion-api/internal/application/dto"
	"github.com/poliflex/gestion-api/internal/application/ventas"
	"github.com/poliflex/gestion-api/internal/domain"
)

// PagosHandler maneja abonos de notas y entregas de pedidos.
type PagosHandler struct {
	pagosUC    *ventas.PagosUseCase
	entregasUC *ventas.EntregasUseCase
}

// NewPagosHandler construye el handler.
func NewPagosHandler(pagosUC *ventas.PagosUseCase, entregasUC *ventas.EntregasUseCase) *PagosHandler {
	return &PagosHandler{pagosUC: pagosUC, entregasUC: entregasUC}
}

// RegistrarPago godoc
// @Summary      Registrar abono contra una nota
// @Tags         pagos
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "id de la nota"
// @Param        body  body  dto.RegistrarPagoRequest  true  "monto, método, fecha opcional"
// @Success      201   {object}  dto.PagoDTO
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/notas/{id}/pagos [post]
func (h *PagosHandler) RegistrarPago(c *fiber.Ctx) error {
	var in dto.RegistrarPagoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	pago, err := h.pagosUC.Registrar(c.Params("id"), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "monto debe ser positivo y fecha YYYY-MM-DD"})
		}
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "nota no encontrada"})
		}
		if errors.Is(err, domain.ErrPagoExcedeSaldo) {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "PAGO_EXCEDE_SALDO", Message: "el monto supera el saldo pendiente de la nota"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(pago)
}

// EliminarPago godoc
// @Summary      Eliminar un abono
// @Tags         pagos
// @Param        id   path  string  true  "id del pago"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/pagos/{id} [delete]
func (h *PagosHandler) EliminarPago(c *fiber.Ctx) error {
	if err := h.pagosUC.Eliminar(c.Params("id")); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "pago no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// RegistrarEntrega godoc
// @Summary      Registrar entrega contra un pedido
// @Tags         entregas
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "id del pedido"
// @Param        body  body  dto.RegistrarEntregaRequest  true  "cantidad, fecha opcional"
// @Success      201   {object}  dto.EntregaDTO
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/pedidos/{id}/entregas [post]
func (h *PagosHandler) RegistrarEntrega(c *fiber.Ctx) error {
	var in dto.RegistrarEntregaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	entrega, err := h.entregasUC.Registrar(c.Params("id"), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "cantidad debe ser positiva y fecha YYYY-MM-DD"})
		}
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "pedido no encontrado"})
		}
		if errors.Is(err, domain.ErrEntregaExcedeCantidad) {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "ENTREGA_EXCEDE_CANTIDAD", Message: "la cantidad supera lo pendiente de surtir del pedido"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(entrega)
}

// EliminarEntrega godoc
// @Summary      Eliminar una entrega
// @Tags         entregas
// @Param        id   path  string  true  "id de la entrega"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/entregas/{id} [delete]
func (h *PagosHandler) EliminarEntrega(c *fiber.Ctx) error {
	if err := h.entregasUC.Eliminar(c.Params("id")); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "entrega no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
