package module

import (
	"context"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/sellerprofile/internal/registry"
)

// Module defines the contract for a self-contained application feature.
type Module interface {
	// Name returns a unique identifier for the module.
	Name() string

	// Register is called during application startup to register the module's
	// services with the central registry.
	Register(reg *registry.Registry) error

	// Boot is called after all modules have registered their services. The
	// group is mounted at the module's prefix, or at the root for modules
	// that do not implement Routed.
	Boot(ctx context.Context, router *echo.Group, reg *registry.Registry) error

	// Shutdown is called during graceful application shutdown.
	Shutdown(ctx context.Context) error
}

// Routed is implemented by modules that serve routes below a path prefix.
type Routed interface {
	Prefix() string
}

// PrefixOf returns the mount prefix of m, or "" when it has none.
func PrefixOf(m Module) string {
	if r, ok := m.(Routed); ok {
		return r.Prefix()
	}
	return ""
}

// BaseModule provides default no-op implementations for Module methods.
// Modules can embed this to avoid implementing methods they don't need.
type BaseModule struct{}

func (m *BaseModule) Register(reg *registry.Registry) error { return nil }
func (m *BaseModule) Boot(ctx context.Context, router *echo.Group, reg *registry.Registry) error {
	return nil
}
func (m *BaseModule) Shutdown(ctx context.Context) error {
	return nil
}
