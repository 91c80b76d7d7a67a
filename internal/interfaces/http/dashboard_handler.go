package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/myland-api/internal/application/analytics"
	"github.com/jhoicas/myland-api/internal/application/dto"
	"github.com/jhoicas/myland-api/pkg/logger"
)

// DashboardHandler maneja el resumen del negocio.
type DashboardHandler struct {
	uc  *analytics.DashboardUseCase
	log *logger.Logger
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *analytics.DashboardUseCase, log *logger.Logger) *DashboardHandler {
	return &DashboardHandler{uc: uc, log: log.Component("dashboard_handler")}
}

// GetSummary godoc
// @Summary      Resumen del negocio
// @Description  Ventas del mes en curso, acumulados históricos, valoración de
// @Description  stock y desglose de ingreso por tienda.
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  dto.DashboardSummaryDTO
// @Router       /api/myland/dashboard [get]
func (h *DashboardHandler) GetSummary(c *fiber.Ctx) error {
	out, err := h.uc.GetSummary(c.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("resumen del negocio")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
	}
	return c.JSON(out)
}
