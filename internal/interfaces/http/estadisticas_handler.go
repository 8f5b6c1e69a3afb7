package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/poliflex/gestion-api/internal/application/dto"
	"github.com/poliflex/gestion-api/internal/application/estadisticas"
)

// EstadisticasHandler maneja los reportes anuales.
type EstadisticasHandler struct {
	resumenUC     *estadisticas.ResumenUseCase
	rendimientoUC *estadisticas.RendimientoUseCase
}

// NewEstadisticasHandler construye el handler.
func NewEstadisticasHandler(resumenUC *estadisticas.ResumenUseCase, rendimientoUC *estadisticas.RendimientoUseCase) *EstadisticasHandler {
	return &EstadisticasHandler{resumenUC: resumenUC, rendimientoUC: rendimientoUC}
}

// Resumen godoc
// @Summary      Contadores del año en curso (cobranza, surtido, crédito)
// @Tags         estadisticas
// @Produce      json
// @Success      200  {object}  dto.ResumenAnualDTO
// @Router       /api/estadisticas/resumen [get]
func (h *EstadisticasHandler) Resumen(c *fiber.Ctx) error {
	out, err := h.resumenUC.ResumenAnual(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Vendedores godoc
// @Summary      Facturación y cobranza anual por vendedor
// @Tags         estadisticas
// @Produce      json
// @Success      200  {array}  dto.RendimientoVendedorDTO
// @Router       /api/estadisticas/vendedores [get]
func (h *EstadisticasHandler) Vendedores(c *fiber.Ctx) error {
	out, err := h.rendimientoUC.PorVendedor(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
