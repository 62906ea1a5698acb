package rest

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

type HealthHandler struct {
	name    string
	version string
	crops   int
}

func NewHealthHandler(name, version string, crops int) *HealthHandler {
	return &HealthHandler{name: name, version: version, crops: crops}
}

func (h *HealthHandler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":  "ok",
		"name":    h.name,
		"version": h.version,
		"crops":   h.crops,
	})
}
