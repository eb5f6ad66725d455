package middleware

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/cloudwego/hertz/pkg/app"
	redislib "github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/stokuj/github-heatmap/config"
	"github.com/stokuj/github-heatmap/pkg/errors"
	"github.com/stokuj/github-heatmap/pkg/logger"
	"github.com/stokuj/github-heatmap/pkg/response"
	"github.com/stokuj/github-heatmap/storage/redis"
)

// RateLimitConfig describes one sliding-window limit.
type RateLimitConfig struct {
	// window length in seconds
	Window int
	// max requests inside the window
	MaxRequests int
	// redis key prefix
	KeyPrefix string
}

// RateLimiter is a per-client-IP sliding window backed by a redis ZSET.
type RateLimiter struct {
	config RateLimitConfig
}

func NewRateLimiter(config RateLimitConfig) *RateLimiter {
	return &RateLimiter{config: config}
}

func (rl *RateLimiter) getKey(c *app.RequestContext) string {
	return redis.Key(rl.config.KeyPrefix, "ip:"+c.ClientIP())
}

// Allow records the request and reports whether it fits in the window.
func (rl *RateLimiter) Allow(ctx context.Context, c *app.RequestContext) (bool, int, error) {
	key := rl.getKey(c)
	now := time.Now()
	windowStart := now.Add(-time.Duration(rl.config.Window) * time.Second)

	client := redis.Client()
	pipe := client.Pipeline()

	pipe.ZRemRangeByScore(ctx, key, "0", fmt.Sprintf("%d", windowStart.UnixNano()))
	pipe.ZAdd(ctx, key, redislib.Z{
		Score:  float64(now.UnixNano()),
		Member: now.UnixNano(),
	})
	zcardCmd := pipe.ZCard(ctx, key)
	pipe.Expire(ctx, key, time.Duration(rl.config.Window+10)*time.Second)

	if _, err := pipe.Exec(ctx); err != nil {
		return false, 0, fmt.Errorf("failed to execute pipeline: %w", err)
	}

	count := int(zcardCmd.Val())
	return count <= rl.config.MaxRequests, count, nil
}

// RateLimitMiddleware throttles by client IP. A redis failure fails
// open: a broken limiter backend must not take the stateless read path
// down with it.
func RateLimitMiddleware(config RateLimitConfig) app.HandlerFunc {
	limiter := NewRateLimiter(config)

	return func(ctx context.Context, c *app.RequestContext) {
		allowed, count, err := limiter.Allow(ctx, c)
		if err != nil {
			logger.Logger.Warn("Rate limit check failed, allowing request", zap.Error(err))
			c.Next(ctx)
			return
		}

		remaining := config.MaxRequests - count
		if remaining < 0 {
			remaining = 0
		}
		c.Response.Header.Set("X-RateLimit-Limit", strconv.Itoa(config.MaxRequests))
		c.Response.Header.Set("X-RateLimit-Remaining", strconv.Itoa(remaining))
		c.Response.Header.Set("X-RateLimit-Reset", strconv.FormatInt(time.Now().Add(time.Duration(config.Window)*time.Second).Unix(), 10))

		if !allowed {
			c.Header("Retry-After", strconv.Itoa(config.Window))
			response.Error(ctx, c, errors.TooManyRequests)
			c.Abort()
			return
		}

		c.Next(ctx)
	}
}

// HeatmapRateLimitMiddleware limits the upstream-expensive heatmap endpoint.
func HeatmapRateLimitMiddleware() app.HandlerFunc {
	return RateLimitMiddleware(RateLimitConfig{
		Window:      config.Cfg.RateLimitWindow,
		MaxRequests: config.Cfg.RateLimitMax,
		KeyPrefix:   "heatmap:rate",
	})
}
