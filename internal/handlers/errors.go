package handlers

import (
	"errors"
	"net/http"

	"github.com/anonto42/picgram/internal/repositories"
	"github.com/labstack/echo/v4"
)

// storeError maps a store failure onto the HTTP status the API promises for it.
func storeError(err error) error {
	switch {
	case errors.Is(err, repositories.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, repositories.ErrConflict):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	case errors.Is(err, repositories.ErrSelfFollow):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, repositories.ErrValidation):
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
}

// bindAndValidate decodes the request body into req and runs the registered validator.
func bindAndValidate(c echo.Context, req interface{}) error {
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	return c.Validate(req)
}

func detail(msg string) echo.Map {
	return echo.Map{"detail": msg}
}
