// Package telemetry provides Prometheus metrics and tracing for the brand
// voice extraction service.
package telemetry

import (
	"context"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const serviceName = "brand-voice"

// Metrics holds all extraction Prometheus metrics.
type Metrics struct {
	// Extraction pipeline metrics
	ExtractionsTotal   *prometheus.CounterVec // labels: kind, outcome
	ExtractionDuration *prometheus.HistogramVec
	PatternsReturned   prometheus.Histogram
	FallbacksTotal     prometheus.Counter

	// Collaborator call metrics
	CollaboratorDuration *prometheus.HistogramVec // labels: collaborator
	CollaboratorErrors   *prometheus.CounterVec   // labels: collaborator, kind
}

// Provider wraps telemetry providers.
type Provider struct {
	Tracer  trace.Tracer
	Metrics *Metrics
}

// NewProvider initializes telemetry with Prometheus metrics.
func NewProvider() *Provider {
	return &Provider{
		Tracer:  otel.Tracer(serviceName),
		Metrics: initMetrics(),
	}
}

// Handler returns the Prometheus HTTP handler for the /metrics endpoint.
func (p *Provider) Handler() http.Handler {
	return promhttp.Handler()
}

// StartExtraction opens a span for one extraction call.
func (p *Provider) StartExtraction(ctx context.Context, kind string) (context.Context, trace.Span) {
	return p.Tracer.Start(ctx, "extract_patterns",
		trace.WithAttributes(attribute.String("content.kind", kind)))
}

// RecordExtraction records the outcome of one extraction call.
func (p *Provider) RecordExtraction(kind, outcome string, duration time.Duration, patterns int) {
	p.Metrics.ExtractionsTotal.WithLabelValues(kind, outcome).Inc()
	p.Metrics.ExtractionDuration.WithLabelValues(kind).Observe(duration.Seconds())
	if outcome == OutcomeSuccess {
		p.Metrics.PatternsReturned.Observe(float64(patterns))
	}
}

// RecordFallback counts a video-path fallback to default patterns.
func (p *Provider) RecordFallback() {
	p.Metrics.FallbacksTotal.Inc()
}

// RecordCollaboratorCall records one collaborator round trip.
func (p *Provider) RecordCollaboratorCall(collaborator string, duration time.Duration, errKind string) {
	p.Metrics.CollaboratorDuration.WithLabelValues(collaborator).Observe(duration.Seconds())
	if errKind != "" {
		p.Metrics.CollaboratorErrors.WithLabelValues(collaborator, errKind).Inc()
	}
}

// Outcome label values.
const (
	OutcomeSuccess  = "success"
	OutcomeError    = "error"
	OutcomeFallback = "fallback"
)

func initMetrics() *Metrics {
	return &Metrics{
		ExtractionsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "brandvoice_extractions_total",
			Help: "Total pattern extractions by content kind and outcome",
		}, []string{"kind", "outcome"}),
		ExtractionDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "brandvoice_extraction_duration_seconds",
			Help:    "End-to-end extraction duration",
			Buckets: prometheus.DefBuckets,
		}, []string{"kind"}),
		PatternsReturned: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "brandvoice_patterns_returned",
			Help:    "Number of patterns per successful extraction",
			Buckets: prometheus.LinearBuckets(0, 1, 6),
		}),
		FallbacksTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name: "brandvoice_video_fallbacks_total",
			Help: "Video extractions that degraded to default patterns",
		}),
		CollaboratorDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "brandvoice_collaborator_duration_seconds",
			Help:    "Collaborator call duration",
			Buckets: prometheus.ExponentialBuckets(0.05, 2, 12),
		}, []string{"collaborator"}),
		CollaboratorErrors: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "brandvoice_collaborator_errors_total",
			Help: "Collaborator call failures by error kind",
		}, []string{"collaborator", "kind"}),
	}
}
