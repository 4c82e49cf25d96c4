package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/theUncluded/430Frontend/internal/assets"
	"github.com/theUncluded/430Frontend/internal/http/middleware"
)

// AssetsHandler serves product images, falling back to the default image
// when a product has none.
type AssetsHandler struct {
	Store assets.Store
	Log   *slog.Logger
}

func NewAssetsHandler(store assets.Store, log *slog.Logger) *AssetsHandler {
	return &AssetsHandler{Store: store, Log: log}
}

// ProductImage handles GET /Images/:file
func (h *AssetsHandler) ProductImage(c *gin.Context) {
	loc, err := h.Store.Resolve(c.Request.Context(), c.Param("file"))
	if err != nil {
		if !errors.Is(err, assets.ErrNotFound) {
			h.Log.LogAttrs(c.Request.Context(), slog.LevelWarn, "asset_resolve_failed",
				slog.String("request_id", middleware.GetRequestID(c)),
				slog.String("file", c.Param("file")),
				slog.Any("err", err),
			)
		}
		c.Redirect(http.StatusFound, assets.FallbackImageURL)
		return
	}
	h.deliver(c, loc)
}

// Fallback handles GET /images/default.jpg
func (h *AssetsHandler) Fallback(c *gin.Context) {
	loc, err := h.Store.Resolve(c.Request.Context(), assets.FallbackKey())
	if err != nil {
		c.Status(http.StatusNotFound)
		return
	}
	h.deliver(c, loc)
}

func (h *AssetsHandler) deliver(c *gin.Context, loc assets.Location) {
	if loc.URL != "" {
		c.Redirect(http.StatusFound, loc.URL)
		return
	}
	c.Header("Cache-Control", "public, max-age=3600")
	c.File(loc.Path)
}
