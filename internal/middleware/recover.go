package middleware

import (
	"context"
	"fmt"
	"runtime/debug"

	"github.com/cloudwego/hertz/pkg/app"
	"go.uber.org/zap"

	"github.com/stokuj/github-heatmap/config"
	"github.com/stokuj/github-heatmap/pkg/errors"
	"github.com/stokuj/github-heatmap/pkg/logger"
	"github.com/stokuj/github-heatmap/pkg/response"
)

// RecoverMiddleware turns a handler panic into a 500 envelope. The
// stack goes to the log; request headers are never logged here because
// the Authorization header carries the caller's token.
func RecoverMiddleware() app.HandlerFunc {
	return func(ctx context.Context, c *app.RequestContext) {
		defer func() {
			if err := recover(); err != nil {
				logger.Logger.Error("[PANIC RECOVERED]",
					zap.String("panic", fmt.Sprintf("%v", err)),
					zap.String("path", string(c.Path())),
					zap.String("method", string(c.Method())),
					zap.String("client_ip", c.ClientIP()),
					zap.String("request_id", string(c.GetHeader(RequestIDHeader))),
					zap.ByteString("stack", debug.Stack()),
				)

				errDef := errors.Definition{
					Code:    "INTERNAL_SERVER_ERROR",
					Message: "Internal server error",
				}
				if !config.Cfg.IsProduction() {
					errDef.Message = fmt.Sprintf("Internal error: %v", err)
				}

				response.Error(ctx, c, errDef)
			}
		}()

		c.Next(ctx)
	}
}
