package view

import (
	"net/http"

	"github.com/labstack/echo/v4"
	hxhttp "maragu.dev/gomponents-htmx/http"
)

// IsHTMX reports whether the request was issued by htmx.
func IsHTMX(c echo.Context) bool {
	return hxhttp.IsRequest(c.Request().Header)
}

// Redirect navigates the visitor to location. htmx requests get an
// HX-Redirect header so the whole page navigates instead of a fragment swap.
func Redirect(c echo.Context, location string) error {
	if IsHTMX(c) {
		SetRedirectHeader(c, location)
		return c.NoContent(http.StatusOK)
	}
	return c.Redirect(http.StatusSeeOther, location)
}

// SetRedirectHeader asks htmx to navigate to location once the response
// arrives, leaving the body to the caller.
func SetRedirectHeader(c echo.Context, location string) {
	hxhttp.SetRedirect(c.Response().Header(), location)
}
