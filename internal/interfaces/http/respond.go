package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/retail-inventory/internal/application/dto"
	"github.com/jhoicas/retail-inventory/internal/domain"
	"github.com/rs/zerolog/log"
)

// respondError mapea la taxonomía de errores a HTTP de forma uniforme:
// ValidationError -> 400, NotFoundError -> 404, ErrContention -> 409 y
// cualquier otro error -> 500 con mensaje genérico (el detalle se loguea,
// nunca se devuelve al cliente).
func respondError(c *fiber.Ctx, err error) error {
	switch {
	case domain.IsValidation(err):
		return c.Status(fiber.StatusBadRequest).JSON(dto.Error(err.Error()))
	case domain.IsNotFound(err):
		return c.Status(fiber.StatusNotFound).JSON(dto.Error(err.Error()))
	case errors.Is(err, domain.ErrContention):
		return c.Status(fiber.StatusConflict).JSON(
			dto.Error("The inventory is locked by a concurrent operation. Please retry."))
	default:
		log.Error().Err(err).Str("method", c.Method()).Str("path", c.Path()).Msg("error de almacenamiento")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Error("Internal server error."))
	}
}
