package handler

import (
	"context"
	"net/http"

	"github.com/cloudwego/hertz/pkg/app"
)

// Root GET /
func Root(ctx context.Context, c *app.RequestContext) {
	c.JSON(http.StatusOK, map[string]string{"message": "github-heatmap"})
}

// HealthLive GET /health/live, liveness probe with no business logic.
func HealthLive(ctx context.Context, c *app.RequestContext) {
	c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
