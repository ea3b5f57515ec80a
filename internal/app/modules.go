package app

import (
	"log/slog"

	"github.com/nfrund/sellerprofile/internal/domain"
	"github.com/nfrund/sellerprofile/internal/module"
	"github.com/nfrund/sellerprofile/internal/modules/audit"
	"github.com/nfrund/sellerprofile/internal/modules/profile"
	"github.com/nfrund/sellerprofile/internal/pubsub"
	"github.com/nfrund/sellerprofile/internal/session"
)

// Dependencies holds the core services that are required by the application's modules.
type Dependencies struct {
	Gateway      domain.ProfileGateway
	Publisher    pubsub.Publisher
	Subscriber   pubsub.Subscriber
	SessionStore *session.Store
	Logger       *slog.Logger
}

// NewModules creates and returns the list of all active modules for the application.
// This is the single source of truth for which features are enabled.
func NewModules(deps Dependencies) []module.Module {
	return []module.Module{
		profile.New(profile.Dependencies{
			Gateway:      deps.Gateway,
			Publisher:    deps.Publisher,
			SessionStore: deps.SessionStore,
		}),
		audit.New(audit.Dependencies{
			Subscriber: deps.Subscriber,
			Logger:     deps.Logger,
		}),
	}
}
