package server

import (
	"errors"
	"strconv"

	"mindcanva/internal/models"

	"github.com/gofiber/fiber/v2"
)

// parseID parses the named route parameter as an unsigned integer id.
// On failure it writes a 400 response and returns ok=false; the handler
// should just return nil.
func (s *Server) parseID(c *fiber.Ctx, param string) (uint, bool) {
	raw := c.Params(param)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		_ = models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid "+param))
		return 0, false
	}
	return uint(id), true
}

// queryUint parses an optional unsigned integer query parameter, falling
// back to def when absent or malformed.
func queryUint(c *fiber.Ctx, key string, def int) int {
	raw := c.Query(key)
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return def
	}
	return v
}

// respondError maps a service error onto the wire: validation is 400,
// missing resources are 404, everything else collapses to a generic 500.
func respondError(c *fiber.Ctx, err error) error {
	var appErr *models.AppError
	if errors.As(err, &appErr) {
		switch appErr.Code {
		case "VALIDATION_ERROR":
			return models.RespondWithError(c, fiber.StatusBadRequest, appErr)
		case "NOT_FOUND":
			return models.RespondWithError(c, fiber.StatusNotFound, appErr)
		}
	}
	return models.RespondWithError(c, fiber.StatusInternalServerError, err)
}
