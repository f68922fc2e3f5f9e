package metrics

import (
	"log"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

// AppMetrics holds the planning pipeline's metric instruments.
type AppMetrics struct {
	ItineraryRequestsTotal  metric.Int64Counter
	PipelineDurationSeconds metric.Float64Histogram
	LLMCallsTotal           metric.Int64Counter
	CacheHitsTotal          metric.Int64Counter
	CacheMissesTotal        metric.Int64Counter
}

var (
	appMetrics *AppMetrics
	once       sync.Once
)

// InitAppMetrics initializes the global metric instruments once, from the
// globally configured MeterProvider.
func InitAppMetrics() {
	once.Do(func() {
		meter := otel.GetMeterProvider().Meter("RoamPlan")
		var err error
		m := &AppMetrics{}

		m.ItineraryRequestsTotal, err = meter.Int64Counter(
			"itinerary_requests_total",
			metric.WithDescription("Total number of itinerary generation requests"),
			metric.WithUnit("{request}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create itinerary_requests_total: %v", err)
		}

		m.PipelineDurationSeconds, err = meter.Float64Histogram(
			"pipeline_duration_seconds",
			metric.WithDescription("End-to-end duration of the planning pipeline"),
			metric.WithUnit("s"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create pipeline_duration_seconds: %v", err)
		}

		m.LLMCallsTotal, err = meter.Int64Counter(
			"llm_calls_total",
			metric.WithDescription("Total number of LLM chat calls issued by the enricher"),
			metric.WithUnit("{call}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create llm_calls_total: %v", err)
		}

		m.CacheHitsTotal, err = meter.Int64Counter(
			"plan_cache_hits_total",
			metric.WithDescription("Plan cache lookups served from cache"),
			metric.WithUnit("{lookup}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create plan_cache_hits_total: %v", err)
		}

		m.CacheMissesTotal, err = meter.Int64Counter(
			"plan_cache_misses_total",
			metric.WithDescription("Plan cache lookups that ran the full pipeline"),
			metric.WithUnit("{lookup}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create plan_cache_misses_total: %v", err)
		}

		appMetrics = m
	})
}

// Get returns the globally initialized AppMetrics instance. It panics if
// InitAppMetrics was not called at startup.
func Get() *AppMetrics {
	if appMetrics == nil {
		panic("metrics instruments not initialized. Call metrics.InitAppMetrics() first.")
	}
	return appMetrics
}
