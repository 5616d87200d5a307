package observability

import (
	"context"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	promexporter "go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

// MetricsConfig holds metrics configuration.
type MetricsConfig struct {
	ServiceName string
}

// InitMetrics initializes the Prometheus metrics exporter. Returns the
// MeterProvider and an HTTP handler for the /metrics endpoint.
func InitMetrics(_ MetricsConfig) (*sdkmetric.MeterProvider, http.Handler, error) {
	exporter, err := promexporter.New()
	if err != nil {
		return nil, nil, err
	}

	provider := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(exporter),
	)

	return provider, promhttp.Handler(), nil
}

// PricingMetrics carries the service-level instruments.
type PricingMetrics struct {
	QuotesTotal     metric.Int64Counter
	PricingDuration metric.Float64Histogram
}

// NewPricingMetrics registers the pricing instruments on the provider.
func NewPricingMetrics(provider *sdkmetric.MeterProvider, serviceName string) (*PricingMetrics, error) {
	meter := provider.Meter(serviceName)

	quotesTotal, err := meter.Int64Counter(
		"pricing_quotes_total",
		metric.WithDescription("Pricing quotes processed, by decision"),
	)
	if err != nil {
		return nil, err
	}

	duration, err := meter.Float64Histogram(
		"pricing_duration_seconds",
		metric.WithDescription("Time spent pricing a single offer request"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, err
	}

	return &PricingMetrics{
		QuotesTotal:     quotesTotal,
		PricingDuration: duration,
	}, nil
}

// RecordQuote counts a processed quote labelled with its decision.
func (m *PricingMetrics) RecordQuote(ctx context.Context, decision string, seconds float64) {
	if m == nil {
		return
	}
	attrs := metric.WithAttributes(attribute.String("decision", decision))
	m.QuotesTotal.Add(ctx, 1, attrs)
	m.PricingDuration.Record(ctx, seconds, attrs)
}
