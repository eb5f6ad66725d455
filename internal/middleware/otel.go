package middleware

import (
	"github.com/cloudwego/hertz/pkg/app"
	hzconfig "github.com/cloudwego/hertz/pkg/common/config"
	hertztracing "github.com/hertz-contrib/obs-opentelemetry/tracing"
)

// NewServerTracerConfig returns the server option and middleware that
// wrap every inbound request in a span. Only used when an OTLP endpoint
// is configured.
func NewServerTracerConfig(opts ...hertztracing.Option) (hzconfig.Option, app.HandlerFunc) {
	tracer, cfg := hertztracing.NewServerTracer(opts...)
	return tracer, hertztracing.ServerMiddleware(cfg)
}
