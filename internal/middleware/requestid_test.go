package middleware

import (
	"context"
	"net/http"
	"testing"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/common/ut"
)

func TestRequestIDMiddlewareAssignsID(t *testing.T) {
	h := server.Default()
	h.Use(RequestIDMiddleware())
	h.GET("/ping", func(ctx context.Context, c *app.RequestContext) {
		c.JSON(http.StatusOK, map[string]string{"message": "pong"})
	})

	w := ut.PerformRequest(h.Engine, "GET", "/ping", nil)
	resp := w.Result()

	if got := resp.Header.Get(RequestIDHeader); got == "" {
		t.Error("response is missing a generated request ID")
	}
}

func TestRequestIDMiddlewareEchoesCallerID(t *testing.T) {
	h := server.Default()
	h.Use(RequestIDMiddleware())
	h.GET("/ping", func(ctx context.Context, c *app.RequestContext) {
		c.JSON(http.StatusOK, map[string]string{"message": "pong"})
	})

	w := ut.PerformRequest(h.Engine, "GET", "/ping", nil,
		ut.Header{Key: RequestIDHeader, Value: "req-123"})
	resp := w.Result()

	if got := resp.Header.Get(RequestIDHeader); got != "req-123" {
		t.Errorf("request ID = %q, want req-123", got)
	}
}
