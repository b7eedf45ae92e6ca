package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"golang-stock-dashboard/internal/dashboard/dto"
	"golang-stock-dashboard/internal/entity"
	"golang-stock-dashboard/pkg/logger"
)

// respondError maps domain errors to status codes: validation 400, duplicate 409, not found 404.
func respondError(c echo.Context, log *logger.Logger, err error) error {
	var validation *entity.ValidationError
	var duplicate *entity.DuplicateError
	switch {
	case errors.As(err, &validation):
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: validation.Message, Field: validation.Field})
	case errors.As(err, &duplicate):
		return c.JSON(http.StatusConflict, dto.ErrorResponse{Error: duplicate.Error()})
	case errors.Is(err, entity.ErrNotFound):
		return c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})
	default:
		log.ErrorContext(c.Request().Context(), "Request failed", logger.ErrorField(err), logger.StringField("path", c.Path()))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Internal server error"})
	}
}

func invalidPayload(c echo.Context) error {
	return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request payload"})
}
