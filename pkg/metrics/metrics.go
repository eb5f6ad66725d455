package metrics

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

var (
	upstreamRequestTotal metric.Int64Counter
	upstreamDuration     metric.Float64Histogram
	heatmapRequestTotal  metric.Int64Counter
)

// Init registers the service metrics on meter. Safe to skip entirely:
// the record helpers are no-ops until Init has run, so tests and
// deployments without an OTLP endpoint need no setup.
func Init(meter metric.Meter) error {
	var err error

	upstreamRequestTotal, err = meter.Int64Counter(
		"github.upstream.requests.total",
		metric.WithDescription("Total GitHub GraphQL calls by outcome"),
		metric.WithUnit("{request}"),
	)
	if err != nil {
		return err
	}

	upstreamDuration, err = meter.Float64Histogram(
		"github.upstream.duration",
		metric.WithDescription("GitHub GraphQL call duration"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(0.05, 0.1, 0.25, 0.5, 1.0, 2.5, 5.0, 10.0),
	)
	if err != nil {
		return err
	}

	heatmapRequestTotal, err = meter.Int64Counter(
		"heatmap.requests.total",
		metric.WithDescription("Heatmap requests by outcome"),
		metric.WithUnit("{request}"),
	)
	if err != nil {
		return err
	}

	return nil
}

// RecordUpstreamRequest counts one GitHub call. The outcome label is an
// error code or "ok", never anything derived from the token.
func RecordUpstreamRequest(ctx context.Context, outcome string, seconds float64) {
	if upstreamRequestTotal == nil {
		return
	}

	attrs := metric.WithAttributes(attribute.String("outcome", outcome))
	upstreamRequestTotal.Add(ctx, 1, attrs)
	upstreamDuration.Record(ctx, seconds, attrs)
}

// RecordHeatmapRequest counts one request to the heatmap endpoint.
func RecordHeatmapRequest(ctx context.Context, outcome string) {
	if heatmapRequestTotal == nil {
		return
	}

	heatmapRequestTotal.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", outcome)))
}
