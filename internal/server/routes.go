package server

import (
	"github.com/nfrund/sellerprofile/internal/handlers"
	"github.com/nfrund/sellerprofile/internal/middleware"
	"github.com/nfrund/sellerprofile/internal/routepath"
	"github.com/nfrund/sellerprofile/internal/storage"
	"github.com/nfrund/sellerprofile/web"
)

// RegisterRoutes sets up the application routes that live outside modules.
func (s *Server) RegisterRoutes() error {
	homeHandler := handlers.NewHomeHandler(s.Registry)
	authHandler := handlers.NewAuthHandler(s.sessions, s.deps.Publisher, s.Cfg.GetAuthLoginURL())
	rateLimiter := middleware.RateLimiter(s.Cfg.GetRateLimitPerMinute())

	assets, err := storage.NewEmbeddedStore(web.FS, web.StaticRoot)
	if err != nil {
		return err
	}
	assetHandler := storage.NewAssetHandler(assets)

	s.E.GET(routepath.Root, homeHandler.HomeGet)
	s.E.GET(routepath.Health, homeHandler.Health)
	s.E.GET(routepath.Static+"/*", assetHandler.Serve)

	s.E.GET(routepath.AuthLogin, authHandler.LoginGet)
	s.E.POST(routepath.AuthLogout, authHandler.Logout, rateLimiter)
	s.E.GET(routepath.AuthLogout, authHandler.Logout, rateLimiter)
	return nil
}
