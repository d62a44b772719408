// Package metrics records scoring and HTTP instruments through the
// OpenTelemetry Metrics API. InitProvider bridges them to a Prometheus
// scrape endpoint; tests should build Metrics from their own
// metric.MeterProvider with New.
package metrics

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

// meterName is the instrumentation scope for every instrument here.
const meterName = "github.com/Theheerpatel/AI-based-student-introduction-analyzer"

// Metrics holds the instruments. All fields are safe for concurrent use.
type Metrics struct {
	// ScoreRequests counts Score calls. Attribute: outcome.
	ScoreRequests metric.Int64Counter

	// OverallScore is the distribution of successful overall scores.
	OverallScore metric.Float64Histogram

	// ScoreDuration tracks time spent scoring one transcript.
	ScoreDuration metric.Float64Histogram

	// HTTPRequestDuration tracks request handling time. Attributes:
	// method, path, status.
	HTTPRequestDuration metric.Float64Histogram
}

var (
	scoreBuckets   = []float64{10, 20, 30, 40, 50, 60, 70, 80, 90, 100}
	latencyBuckets = []float64{0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1}
)

// New creates the instruments on mp.
func New(mp metric.MeterProvider) (*Metrics, error) {
	m := mp.Meter(meterName)
	var err error
	met := &Metrics{}

	if met.ScoreRequests, err = m.Int64Counter("introscore.score.requests",
		metric.WithDescription("Transcripts submitted for scoring, by outcome."),
	); err != nil {
		return nil, err
	}
	if met.OverallScore, err = m.Float64Histogram("introscore.score.overall",
		metric.WithDescription("Overall rubric score of successfully scored transcripts."),
		metric.WithExplicitBucketBoundaries(scoreBuckets...),
	); err != nil {
		return nil, err
	}
	if met.ScoreDuration, err = m.Float64Histogram("introscore.score.duration",
		metric.WithDescription("Time spent scoring one transcript."),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(latencyBuckets...),
	); err != nil {
		return nil, err
	}
	if met.HTTPRequestDuration, err = m.Float64Histogram("introscore.http.request.duration",
		metric.WithDescription("Latency of HTTP request handling."),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(latencyBuckets...),
	); err != nil {
		return nil, err
	}
	return met, nil
}

// Noop returns instruments that record nothing, for when metrics are
// disabled.
func Noop() *Metrics {
	m, _ := New(noop.NewMeterProvider())
	return m
}

// ObserveScore records one scoring outcome. The overall score is only
// recorded for successful calls.
func (m *Metrics) ObserveScore(outcome string, overall float64, elapsed time.Duration) {
	ctx := context.Background()
	m.ScoreRequests.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", outcome)))
	m.ScoreDuration.Record(ctx, elapsed.Seconds())
	if outcome == "ok" {
		m.OverallScore.Record(ctx, overall)
	}
}

// ObserveHTTP records the handling time of one request.
func (m *Metrics) ObserveHTTP(ctx context.Context, method, path string, status int, elapsed time.Duration) {
	m.HTTPRequestDuration.Record(ctx, elapsed.Seconds(), metric.WithAttributes(
		attribute.String("method", method),
		attribute.String("path", path),
		attribute.String("status", strconv.Itoa(status)),
	))
}

// Handler serves the Prometheus exposition of the default registry, which
// the exporter installed by InitProvider writes to.
func Handler() http.Handler {
	return promhttp.Handler()
}
