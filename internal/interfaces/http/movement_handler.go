package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/retail-inventory/internal/application/dto"
	"github.com/jhoicas/retail-inventory/internal/application/usecase"
)

// MovementHandler maneja la lectura del registro de auditoría.
type MovementHandler struct {
	uc *usecase.MovementUseCase
}

// NewMovementHandler construye el handler.
func NewMovementHandler(uc *usecase.MovementUseCase) *MovementHandler {
	return &MovementHandler{uc: uc}
}

// List godoc
// @Summary      Listar movimientos (más recientes primero)
// @Tags         movements
// @Produce      json
// @Success      200  {object}  dto.APIResponse
// @Router       /movements [get]
func (h *MovementHandler) List(c *fiber.Ctx) error {
	data, err := h.uc.List(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.Success("", data))
}
