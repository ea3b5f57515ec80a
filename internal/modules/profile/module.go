package profile

import (
	"context"
	"log/slog"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/sellerprofile/internal/domain"
	"github.com/nfrund/sellerprofile/internal/middleware"
	"github.com/nfrund/sellerprofile/internal/module"
	"github.com/nfrund/sellerprofile/internal/pubsub"
	"github.com/nfrund/sellerprofile/internal/registry"
	"github.com/nfrund/sellerprofile/internal/routepath"
	"github.com/nfrund/sellerprofile/internal/session"
)

// Dependencies holds the services the profile module requires.
type Dependencies struct {
	Gateway      domain.ProfileGateway
	Publisher    pubsub.Publisher
	SessionStore *session.Store
}

// Module serves the seller profile page under /app/profile.
type Module struct {
	module.BaseModule
	gateway   domain.ProfileGateway
	publisher pubsub.Publisher
	sessions  *session.Store
	handler   *Handler
}

// New creates the profile module.
func New(deps Dependencies) *Module {
	return &Module{
		gateway:   deps.Gateway,
		publisher: deps.Publisher,
		sessions:  deps.SessionStore,
	}
}

func (m *Module) Name() string {
	return "profile"
}

func (m *Module) Prefix() string {
	return routepath.AppProfile
}

// Register shares the profile gateway so other parts of the app, such as the
// health check, can inspect it.
func (m *Module) Register(reg *registry.Registry) error {
	registry.Set(reg, registry.ProfileGatewayKey, m.gateway)
	return nil
}

// Boot mounts the page and its content fragment. Both require a credential.
func (m *Module) Boot(ctx context.Context, group *echo.Group, reg *registry.Registry) error {
	m.handler = NewHandler(m.gateway, m.publisher)

	group.Use(middleware.RequireSession(m.sessions))
	group.GET("", m.handler.Page)
	group.GET("/content", m.handler.Content, middleware.RateLimiter(reg.Config().GetRateLimitPerMinute()))

	slog.Info("profile module booted")
	return nil
}
