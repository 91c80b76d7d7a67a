package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/myland-api/internal/application/dto"
	"github.com/jhoicas/myland-api/internal/application/production"
	"github.com/jhoicas/myland-api/internal/domain"
	"github.com/jhoicas/myland-api/pkg/logger"
)

// ProductionHandler maneja las peticiones HTTP del flujo de producción.
type ProductionHandler struct {
	uc  *production.ProductionUseCase
	log *logger.Logger
}

// NewProductionHandler construye el handler.
func NewProductionHandler(uc *production.ProductionUseCase, log *logger.Logger) *ProductionHandler {
	return &ProductionHandler{uc: uc, log: log.Component("production_handler")}
}

// Record godoc
// @Summary      Registrar producción y descontar stock
// @Description  Valida la disponibilidad de todos los ingredientes y descuenta
// @Description  el stock en una sola transacción. Si algún ingrediente no
// @Description  alcanza, no se descuenta nada.
// @Tags         productions
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RecordProductionRequest  true  "Producción a registrar"
// @Success      200   {object}  dto.ProductionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/myland/production [post]
func (h *ProductionHandler) Record(c *fiber.Ctx) error {
	var in dto.RecordProductionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Record(c.Context(), in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInsufficientStock):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: err.Error()})
		// Producto o ingrediente referenciado inexistente: error del cliente.
		case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		default:
			h.log.Error().Err(err).Msg("registrar producción")
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
		}
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar producciones con sus líneas de consumo
// @Tags         productions
// @Produce      json
// @Success      200  {array}  dto.ProductionResponse
// @Router       /api/myland/production [get]
func (h *ProductionHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("listar producciones")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar producción
// @Description  Elimina el registro y sus líneas. La reposición del stock
// @Description  descontado se controla con PRODUCTION_RESTOCK_ON_DELETE.
// @Tags         productions
// @Produce      json
// @Param        id   path  string  true  "ID de la producción"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/myland/production/{id} [delete]
func (h *ProductionHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	if err := h.uc.Delete(c.Context(), id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producción no encontrada"})
		}
		h.log.Error().Err(err).Str("id", id).Msg("eliminar producción")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
