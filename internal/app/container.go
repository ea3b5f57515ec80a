package app

import (
	"log/slog"

	"github.com/nfrund/sellerprofile/internal/config"
	"github.com/nfrund/sellerprofile/internal/domain"
	"github.com/nfrund/sellerprofile/internal/profileapi"
	"github.com/nfrund/sellerprofile/internal/pubsub"
	"github.com/nfrund/sellerprofile/internal/registry"
	"github.com/nfrund/sellerprofile/internal/rendering"
	"github.com/nfrund/sellerprofile/internal/session"
	"github.com/samber/do/v2"
)

// NewContainer wires the application services. Each service is built lazily
// on first Invoke and shared afterwards.
func NewContainer(cfg config.Provider) *do.RootScope {
	i := do.New()

	do.ProvideValue(i, cfg)
	do.Provide(i, func(i do.Injector) (*slog.Logger, error) {
		return slog.Default(), nil
	})
	do.Provide(i, func(i do.Injector) (*pubsub.WatermillBridge, error) {
		return pubsub.NewWatermillBridge(), nil
	})
	do.Provide(i, func(i do.Injector) (domain.ProfileGateway, error) {
		cfg := do.MustInvoke[config.Provider](i)
		return profileapi.New(cfg.GetProfileAPIURL(), cfg.GetProfileAPITimeout()), nil
	})
	do.Provide(i, func(i do.Injector) (*session.Store, error) {
		return session.NewStore(), nil
	})
	do.Provide(i, func(i do.Injector) (*rendering.UniversalRenderer, error) {
		return rendering.NewUniversalRenderer(), nil
	})
	do.Provide(i, func(i do.Injector) (*registry.Registry, error) {
		return registry.New(do.MustInvoke[config.Provider](i)), nil
	})

	return i
}

// Resolve builds the module dependencies from the container.
func Resolve(i do.Injector) (Dependencies, error) {
	bus, err := do.Invoke[*pubsub.WatermillBridge](i)
	if err != nil {
		return Dependencies{}, err
	}
	gateway, err := do.Invoke[domain.ProfileGateway](i)
	if err != nil {
		return Dependencies{}, err
	}
	store, err := do.Invoke[*session.Store](i)
	if err != nil {
		return Dependencies{}, err
	}
	logger, err := do.Invoke[*slog.Logger](i)
	if err != nil {
		return Dependencies{}, err
	}
	return Dependencies{
		Gateway:      gateway,
		Publisher:    bus,
		Subscriber:   bus,
		SessionStore: store,
		Logger:       logger,
	}, nil
}
