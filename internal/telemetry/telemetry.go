// Package telemetry provides Prometheus metrics and OpenTelemetry tracing
// for the quote engine.
package telemetry

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const serviceName = "quote-engine"

// Metrics holds all quote engine Prometheus metrics.
type Metrics struct {
	RequestsTotal           *prometheus.CounterVec
	RecommendDuration       prometheus.Histogram
	RecommendationsReturned prometheus.Histogram
	EmotionDetected         *prometheus.CounterVec
	EmptyResults            prometheus.Counter
	CorpusSize              prometheus.Gauge
}

// Provider wraps the tracer and metrics handed to components.
type Provider struct {
	Tracer  trace.Tracer
	Metrics *Metrics
}

// NewProvider initializes telemetry with Prometheus metrics registered on
// the default registry.
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

func initMetrics() *Metrics {
	return &Metrics{
		RequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "quote_engine_requests_total",
			Help: "HTTP requests served, by endpoint and status code",
		}, []string{"endpoint", "status"}),
		RecommendDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "quote_engine_recommend_duration_seconds",
			Help:    "End-to-end recommendation pipeline duration",
			Buckets: prometheus.DefBuckets,
		}),
		RecommendationsReturned: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "quote_engine_recommendations_returned",
			Help:    "Number of quotes returned per recommendation request",
			Buckets: []float64{0, 1, 2, 3, 4, 5, 10},
		}),
		EmotionDetected: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "quote_engine_emotion_detected_total",
			Help: "Detected emotions, by label and classification method",
		}, []string{"emotion", "method"}),
		EmptyResults: promauto.NewCounter(prometheus.CounterOpts{
			Name: "quote_engine_empty_results_total",
			Help: "Recommendation requests that produced no quotes",
		}),
		CorpusSize: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "quote_engine_corpus_size",
			Help: "Quotes held in the in-memory corpus",
		}),
	}
}

// RecordRequest counts a served HTTP request.
func (p *Provider) RecordRequest(endpoint string, status int) {
	if p == nil {
		return
	}
	p.Metrics.RequestsTotal.WithLabelValues(endpoint, strconv.Itoa(status)).Inc()
}

// RecordRecommendation records one pass through the recommendation
// pipeline.
func (p *Provider) RecordRecommendation(ctx context.Context, emotion, method string, returned int, d time.Duration) {
	if p == nil {
		return
	}
	p.Metrics.RecommendDuration.Observe(d.Seconds())
	p.Metrics.RecommendationsReturned.Observe(float64(returned))
	p.Metrics.EmotionDetected.WithLabelValues(emotion, method).Inc()
	if returned == 0 {
		p.Metrics.EmptyResults.Inc()
	}
}

// SetCorpusSize publishes the loaded corpus size.
func (p *Provider) SetCorpusSize(n int) {
	if p == nil {
		return
	}
	p.Metrics.CorpusSize.Set(float64(n))
}

// StartSpan opens a span when a provider is present, otherwise a no-op.
func (p *Provider) StartSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	if p == nil {
		return ctx, trace.SpanFromContext(ctx)
	}
	return p.Tracer.Start(ctx, name, trace.WithAttributes(attrs...))
}
