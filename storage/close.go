package storage

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/stokuj/github-heatmap/config"
	"github.com/stokuj/github-heatmap/pkg/logger"
	"github.com/stokuj/github-heatmap/storage/redis"
)

// Close shuts down external connections on exit.
func Close() {
	if !config.Cfg.RateLimitEnabled {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := redis.Close(ctx); err != nil {
		logger.Logger.Error("Failed to close Redis connection", zap.Error(err))
	} else {
		logger.Logger.Info("Redis connection closed")
	}
}
