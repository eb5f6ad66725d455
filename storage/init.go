package storage

import (
	"github.com/stokuj/github-heatmap/config"
	"github.com/stokuj/github-heatmap/storage/redis"
)

// Init sets up the external connections the process needs. The service
// itself is stateless; redis only backs the rate limiter, so it is
// skipped entirely when limiting is disabled.
func Init() error {
	if config.Cfg.RateLimitEnabled {
		if err := redis.Init(); err != nil {
			return err
		}
	}

	return nil
}
