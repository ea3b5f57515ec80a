package middleware

import (
	"log/slog"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/sellerprofile/internal/routepath"
	"github.com/nfrund/sellerprofile/internal/session"
	"github.com/nfrund/sellerprofile/internal/view"
)

// LoadSession reads the visitor's credential once per request and attaches
// the resulting session to the context for downstream handlers.
func LoadSession(store *session.Store) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			session.Attach(c, store.Load(c))
			return next(c)
		}
	}
}

// RequireSession protects routes that need a credential. Without one the
// visitor is sent to the login page with the no_token indicator and the
// handler never runs. It expects LoadSession earlier in the chain.
func RequireSession(store *session.Store) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if session.FromContext(c).Authenticated() {
				return next(c)
			}

			FromContext(c.Request().Context()).Info("no credential token, redirecting to login", "path", c.Path())
			if !view.IsHTMX(c) {
				if err := store.RememberReturnTo(c, c.Request().URL.Path); err != nil {
					slog.Warn("could not remember return path", "error", err)
				}
			}
			return view.Redirect(c, routepath.LoginWithError(routepath.LoginErrorNoToken))
		}
	}
}
