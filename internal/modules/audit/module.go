// Package audit writes a structured log line for every profile and session
// event published on the bus.
package audit

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/sellerprofile/internal/events"
	"github.com/nfrund/sellerprofile/internal/module"
	"github.com/nfrund/sellerprofile/internal/pubsub"
	"github.com/nfrund/sellerprofile/internal/registry"
)

// Dependencies holds the services required by the audit module.
type Dependencies struct {
	Subscriber pubsub.Subscriber
	Logger     *slog.Logger
}

// Module logs profile views, fetch failures and logouts.
type Module struct {
	module.BaseModule
	subscriber pubsub.Subscriber
	logger     *slog.Logger
	cancel     context.CancelFunc
	handled    atomic.Int64
}

// New creates the audit module. A nil logger uses the default logger.
func New(deps Dependencies) *Module {
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Module{
		subscriber: deps.Subscriber,
		logger:     logger.With("component", "audit"),
	}
}

func (m *Module) Name() string {
	return "audit"
}

// Boot subscribes to the events. The module serves no routes.
func (m *Module) Boot(ctx context.Context, _ *echo.Group, _ *registry.Registry) error {
	subCtx, cancel := context.WithCancel(context.Background())
	m.cancel = cancel

	subs := map[string]pubsub.Handler{
		events.Viewed.Name():      m.handleViewed,
		events.FetchFailed.Name(): m.handleFetchFailed,
		events.LogoutDone.Name():  m.handleLoggedOut,
	}
	for topic, handler := range subs {
		if err := m.subscriber.Subscribe(subCtx, topic, handler); err != nil {
			cancel()
			return fmt.Errorf("subscribe to %s: %w", topic, err)
		}
	}

	m.logger.Info("audit module subscribed", "topics", len(subs))
	return nil
}

// Shutdown stops the subscriptions.
func (m *Module) Shutdown(ctx context.Context) error {
	if m.cancel != nil {
		m.cancel()
	}
	return nil
}

// Handled returns the number of events logged so far.
func (m *Module) Handled() int64 {
	return m.handled.Load()
}

func (m *Module) handleViewed(ctx context.Context, msg pubsub.Message) error {
	evt, err := events.Viewed.Decode(msg)
	if err != nil {
		return err
	}
	m.logger.Info("profile viewed", "profile_id", evt.ProfileID, "at", evt.At)
	m.handled.Add(1)
	return nil
}

func (m *Module) handleFetchFailed(ctx context.Context, msg pubsub.Message) error {
	evt, err := events.FetchFailed.Decode(msg)
	if err != nil {
		return err
	}
	m.logger.Warn("profile fetch failed",
		"kind", evt.Kind,
		"message", evt.Message,
		"redirected", evt.Redirected,
		"at", evt.At,
	)
	m.handled.Add(1)
	return nil
}

func (m *Module) handleLoggedOut(ctx context.Context, msg pubsub.Message) error {
	evt, err := events.LogoutDone.Decode(msg)
	if err != nil {
		return err
	}
	m.logger.Info("visitor logged out", "at", evt.At)
	m.handled.Add(1)
	return nil
}
