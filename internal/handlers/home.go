package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/sellerprofile/internal/profileapi"
	"github.com/nfrund/sellerprofile/internal/registry"
	"github.com/nfrund/sellerprofile/internal/routepath"
)

// HomeHandler handles the root and health routes.
type HomeHandler struct {
	reg *registry.Registry
}

// NewHomeHandler creates a new HomeHandler.
func NewHomeHandler(reg *registry.Registry) *HomeHandler {
	return &HomeHandler{reg: reg}
}

// HomeGet sends visitors to their profile.
func (h *HomeHandler) HomeGet(c echo.Context) error {
	return c.Redirect(http.StatusSeeOther, routepath.AppProfile)
}

// Health reports liveness. The profile API status is informational only.
func (h *HomeHandler) Health(c echo.Context) error {
	status := "configured"
	if gw, ok := registry.Get(h.reg, registry.ProfileGatewayKey); !ok || !profileapi.Healthy(gw) {
		status = "not configured"
	}
	c.Response().Header().Set("X-Profile-API", status)
	return c.String(http.StatusOK, "OK")
}
