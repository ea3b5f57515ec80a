package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/nfrund/sellerprofile/internal/config"
	"github.com/nfrund/sellerprofile/internal/logging"
	"github.com/nfrund/sellerprofile/internal/server"
)

func main() {
	cfg, err := config.New()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}
	logging.New(cfg.GetLogFormat(), cfg.GetLogLevel())

	s, err := server.New(cfg)
	if err != nil {
		slog.Error("Failed to create server", "error", err)
		os.Exit(1)
	}
	if err := s.RegisterRoutes(); err != nil {
		slog.Error("Failed to register routes", "error", err)
		os.Exit(1)
	}
	if err := s.InitModules(context.Background()); err != nil {
		slog.Error("Failed to initialize modules", "error", err)
		os.Exit(1)
	}

	if err := s.Start(); err != nil {
		slog.Error("Server exited with error", "error", err)
		os.Exit(1)
	}
}
