package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/cristianadrielbraun/qrstyler/internal/render"
)

// Handler wires the styling engine into the HTTP surface.
type Handler struct {
	log        *zap.Logger
	rasterizer *render.Rasterizer
}

// New builds a Handler. The raster capability is checked here, once, so a
// non-graphical deployment fails at startup instead of on the first request.
func New(log *zap.Logger) (*Handler, error) {
	r, err := render.NewRasterizer(render.MemorySurfaces{})
	if err != nil {
		return nil, err
	}
	return &Handler{log: log, rasterizer: r}, nil
}

// Healthz reports liveness.
func (h *Handler) Healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
