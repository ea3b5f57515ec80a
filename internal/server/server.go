package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/gorilla/sessions"
	echosession "github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/nfrund/sellerprofile/internal/app"
	"github.com/nfrund/sellerprofile/internal/config"
	"github.com/nfrund/sellerprofile/internal/handlers"
	"github.com/nfrund/sellerprofile/internal/middleware"
	"github.com/nfrund/sellerprofile/internal/module"
	"github.com/nfrund/sellerprofile/internal/pubsub"
	"github.com/nfrund/sellerprofile/internal/registry"
	"github.com/nfrund/sellerprofile/internal/rendering"
	"github.com/nfrund/sellerprofile/internal/session"
	"github.com/samber/do/v2"
)

// Server holds the dependencies for the HTTP server.
type Server struct {
	E        *echo.Echo
	Cfg      config.Provider
	Registry *registry.Registry

	bus      *pubsub.WatermillBridge
	sessions *session.Store
	deps     app.Dependencies
	modules  []module.Module
}

// New creates a new Server from the configuration. Modules are created but
// not yet booted; call InitModules before Start.
func New(cfg config.Provider) (*Server, error) {
	container := app.NewContainer(cfg)

	deps, err := app.Resolve(container)
	if err != nil {
		return nil, fmt.Errorf("resolve dependencies: %w", err)
	}
	reg, err := do.Invoke[*registry.Registry](container)
	if err != nil {
		return nil, fmt.Errorf("resolve registry: %w", err)
	}
	renderer, err := do.Invoke[*rendering.UniversalRenderer](container)
	if err != nil {
		return nil, fmt.Errorf("resolve renderer: %w", err)
	}
	bus, err := do.Invoke[*pubsub.WatermillBridge](container)
	if err != nil {
		return nil, fmt.Errorf("resolve event bus: %w", err)
	}

	e := echo.New()
	e.HideBanner = true
	e.Renderer = renderer
	e.Validator = handlers.NewValidator()
	setupErrorHandling(e)

	e.Use(echomw.RequestIDWithConfig(echomw.RequestIDConfig{Generator: uuid.NewString}))
	e.Use(middleware.Logger)
	e.Use(requestLogger())
	e.Use(echomw.Recover())

	store := sessions.NewCookieStore([]byte(cfg.GetSessionSecret()))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7, // 7 days
		HttpOnly: true,
		Secure:   strings.HasPrefix(cfg.GetAppBaseURL(), "https://"),
		SameSite: http.SameSiteLaxMode,
	}
	e.Use(echosession.Middleware(store))
	e.Use(middleware.LoadSession(deps.SessionStore))

	return &Server{
		E:        e,
		Cfg:      cfg,
		Registry: reg,
		bus:      bus,
		sessions: deps.SessionStore,
		deps:     deps,
		modules:  app.NewModules(deps),
	}, nil
}

// requestLogger logs one line per request through slog.
func requestLogger() echo.MiddlewareFunc {
	return echomw.RequestLoggerWithConfig(echomw.RequestLoggerConfig{
		LogStatus:    true,
		LogURI:       true,
		LogMethod:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v echomw.RequestLoggerValues) error {
			attrs := []slog.Attr{
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
				slog.String("request_id", v.RequestID),
			}
			level := slog.LevelInfo
			if v.Error != nil {
				level = slog.LevelError
				attrs = append(attrs, slog.String("error", v.Error.Error()))
			}
			slog.LogAttrs(context.Background(), level, "request", attrs...)
			return nil
		},
	})
}

// Modules returns the application modules.
func (s *Server) Modules() []module.Module {
	return s.modules
}
