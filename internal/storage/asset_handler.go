package storage

import (
	"errors"
	"io/fs"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/sellerprofile/internal/middleware"
)

// AssetHandler serves files from a Store over HTTP.
type AssetHandler struct {
	store Store
}

// NewAssetHandler creates a new AssetHandler.
func NewAssetHandler(s Store) *AssetHandler {
	return &AssetHandler{store: s}
}

// Serve writes the asset named by the wildcard path parameter.
func (h *AssetHandler) Serve(c echo.Context) error {
	ctx := c.Request().Context()
	name := c.Param("*")

	info, err := h.store.Stat(ctx, name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) || errors.Is(err, ErrInvalidPath) {
			return echo.ErrNotFound
		}
		middleware.FromContext(ctx).Error("Failed to stat asset", slog.String("path", name), slog.String("error", err.Error()))
		return echo.ErrInternalServerError
	}
	if info.IsDir() {
		return echo.ErrNotFound
	}

	f, err := h.store.Open(ctx, name)
	if err != nil {
		middleware.FromContext(ctx).Error("Failed to open asset", slog.String("path", name), slog.String("error", err.Error()))
		return echo.ErrInternalServerError
	}
	defer f.Close()

	c.Response().Header().Set("Cache-Control", "public, max-age=3600")
	http.ServeContent(c.Response(), c.Request(), info.Name(), info.ModTime(), f)
	return nil
}
