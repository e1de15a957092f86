package windowcache

import (
	"context"
	"errors"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const instrumentationName = "github.com/gabapcia/blockscope/internal/windowcache"

type metrics struct {
	refreshes metric.Int64Counter
	coalesced metric.Int64Counter
	duration  metric.Float64Histogram
	blocks    metric.Int64Gauge
}

func newMetrics(mp metric.MeterProvider) (metrics, error) {
	meter := mp.Meter(instrumentationName)

	refreshes, err := meter.Int64Counter("windowcache.refreshes",
		metric.WithDescription("Window refreshes by outcome."),
		metric.WithUnit("{refresh}"),
	)
	if err != nil {
		return metrics{}, err
	}

	coalesced, err := meter.Int64Counter("windowcache.refresh.coalesced",
		metric.WithDescription("Callers that attached to an in-flight refresh."),
		metric.WithUnit("{call}"),
	)
	if err != nil {
		return metrics{}, err
	}

	duration, err := meter.Float64Histogram("windowcache.refresh.duration",
		metric.WithDescription("Duration of window refreshes."),
		metric.WithUnit("s"),
	)
	if err != nil {
		return metrics{}, err
	}

	blocks, err := meter.Int64Gauge("windowcache.blocks",
		metric.WithDescription("Blocks held by the published window."),
		metric.WithUnit("{block}"),
	)
	if err != nil {
		return metrics{}, err
	}

	return metrics{
		refreshes: refreshes,
		coalesced: coalesced,
		duration:  duration,
		blocks:    blocks,
	}, nil
}

func outcomeOf(err error) string {
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, ErrEndpointChanged):
		return "discarded"
	default:
		return "failure"
	}
}

func (m metrics) recordRefresh(ctx context.Context, network string, started time.Time, err error) {
	attrs := metric.WithAttributes(
		attribute.String("network", network),
		attribute.String("outcome", outcomeOf(err)),
	)

	m.refreshes.Add(ctx, 1, attrs)
	m.duration.Record(ctx, time.Since(started).Seconds(), attrs)
}

func (m metrics) recordCoalesced(ctx context.Context, network string) {
	m.coalesced.Add(ctx, 1, metric.WithAttributes(attribute.String("network", network)))
}

func (m metrics) recordPublished(ctx context.Context, network string, blocks int) {
	m.blocks.Record(ctx, int64(blocks), metric.WithAttributes(attribute.String("network", network)))
}
