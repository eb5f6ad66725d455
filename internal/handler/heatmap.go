package handler

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"

	"github.com/stokuj/github-heatmap/internal/service"
	"github.com/stokuj/github-heatmap/pkg/auth"
	"github.com/stokuj/github-heatmap/pkg/errors"
	"github.com/stokuj/github-heatmap/pkg/metrics"
	"github.com/stokuj/github-heatmap/pkg/response"
)

// GetViewerHeatmap handles GET /heatmap/me: extract the bearer token,
// run the pipeline, render the payload. The first failing stage
// short-circuits to an error response.
func GetViewerHeatmap(svc *service.HeatmapService) app.HandlerFunc {
	return func(ctx context.Context, c *app.RequestContext) {
		token, err := auth.ExtractBearerToken(string(c.GetHeader("Authorization")))
		if err != nil {
			metrics.RecordHeatmapRequest(ctx, outcome(err))
			response.Error(ctx, c, err)
			return
		}

		payload, err := svc.GetViewerHeatmap(ctx, token)
		if err != nil {
			metrics.RecordHeatmapRequest(ctx, outcome(err))
			response.Error(ctx, c, err)
			return
		}

		metrics.RecordHeatmapRequest(ctx, "ok")
		response.Success(ctx, c, payload)
	}
}

func outcome(err error) string {
	if def, ok := err.(errors.Definition); ok {
		return def.Code
	}
	return "error"
}
