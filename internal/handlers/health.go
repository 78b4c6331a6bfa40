package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

func HealthCheck(e echo.Context) error {
	return e.JSON(http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": "picgram",
	})
}

// Resetter is implemented by stores that can be wiped in place.
type Resetter interface {
	Reset()
}

// ResetStore returns a handler that empties the store. Only mounted outside production.
func ResetStore(store Resetter) echo.HandlerFunc {
	return func(c echo.Context) error {
		store.Reset()
		return c.JSON(http.StatusOK, map[string]string{"detail": "Store reset"})
	}
}
