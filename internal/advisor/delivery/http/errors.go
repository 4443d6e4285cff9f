package http

import (
	"errors"
	"net/http"

	"crypto-advisor/internal/advisor/dto"
	"crypto-advisor/internal/advisor/service"
	"crypto-advisor/pkg/logger"

	"github.com/labstack/echo/v4"
)

// errorJSON maps a service error to a status code. Unexpected errors are
// logged and their text is not sent to the client.
func errorJSON(c echo.Context, log *logger.Logger, err error) error {
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
	case errors.Is(err, service.ErrNotFound):
		return c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})
	}
	log.ErrorContext(c.Request().Context(), "Request failed",
		logger.ErrorField(err),
		logger.StringField("path", c.Path()),
	)
	return c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Internal server error"})
}

func invalidPayload(c echo.Context) error {
	return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request payload"})
}
