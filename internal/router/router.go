package router

import (
	"github.com/cloudwego/hertz/pkg/app/server"

	"github.com/stokuj/github-heatmap/config"
	"github.com/stokuj/github-heatmap/internal/handler"
	"github.com/stokuj/github-heatmap/internal/middleware"
	"github.com/stokuj/github-heatmap/internal/service"
)

func Register(h *server.Hertz) {
	h.Use(middleware.RecoverMiddleware())
	h.Use(middleware.CORSMiddleware())
	h.Use(middleware.RequestIDMiddleware())

	h.GET("/", handler.Root)
	h.GET("/health/live", handler.HealthLive)

	heatmap := h.Group("/heatmap")
	if config.Cfg.RateLimitEnabled {
		heatmap.Use(middleware.HeatmapRateLimitMiddleware())
	}
	{
		heatmap.GET("/me", handler.GetViewerHeatmap(service.Heatmap()))
	}
}
