package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/myland-api/internal/application/analytics"
	"github.com/jhoicas/myland-api/internal/application/dto"
	"github.com/jhoicas/myland-api/internal/domain"
	"github.com/jhoicas/myland-api/pkg/logger"
)

// ReportHandler expone los reportes en PDF.
type ReportHandler struct {
	uc  *analytics.SalesReportUseCase
	log *logger.Logger
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *analytics.SalesReportUseCase, log *logger.Logger) *ReportHandler {
	return &ReportHandler{uc: uc, log: log.Component("report_handler")}
}

// SalesReport godoc
// @Summary      Reporte de ventas en PDF
// @Tags         reports
// @Produce      application/pdf
// @Param        start  query  string  false  "Fecha inicial (yyyy-MM-dd)"
// @Param        end    query  string  false  "Fecha final (yyyy-MM-dd)"
// @Success      200  {file}  binary
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/myland/reports/sales [get]
func (h *ReportHandler) SalesReport(c *fiber.Ctx) error {
	pdfBytes, err := h.uc.Generate(c.Context(), c.Query("start"), c.Query("end"))
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		h.log.Error().Err(err).Msg("reporte de ventas")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="reporte-ventas.pdf"`)
	return c.Send(pdfBytes)
}
