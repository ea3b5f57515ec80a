package server

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/nfrund/sellerprofile/internal/module"
)

// InitModules runs the Register phase for every module, then the Boot phase.
// Boot only starts once every module has registered its services.
func (s *Server) InitModules(ctx context.Context) error {
	for _, m := range s.modules {
		if err := m.Register(s.Registry); err != nil {
			return fmt.Errorf("register module %s: %w", m.Name(), err)
		}
		slog.Debug("module registered", "module", m.Name())
	}

	for _, m := range s.modules {
		group := s.E.Group(module.PrefixOf(m))
		if err := m.Boot(ctx, group, s.Registry); err != nil {
			return fmt.Errorf("boot module %s: %w", m.Name(), err)
		}
		slog.Debug("module booted", "module", m.Name())
	}
	return nil
}
