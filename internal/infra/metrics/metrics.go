// Package metrics registers Prometheus instrumentation for the punch
// workflow and exposes helpers for recording its outcomes.
package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	metricPrefix = "timeclock_"

	// ResultSuccess labels an operation that completed normally.
	ResultSuccess = "success"
	// ResultError labels an operation that failed.
	ResultError = "error"
)

var (
	registerOnce sync.Once

	punchTotal   *prometheus.CounterVec
	punchLatency *prometheus.HistogramVec

	geofenceRejections *prometheus.CounterVec

	sensorAttempts *prometheus.CounterVec

	exportTotal *prometheus.CounterVec

	punchEventsPublished *prometheus.CounterVec
)

// Init registers the punch workflow metrics. Safe to call more than once.
func Init() {
	registerOnce.Do(func() {
		punchTotal = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "punch_total",
				Help: "Total punch attempts by kind and result",
			},
			[]string{"kind", "result"},
		)
		punchLatency = prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    metricPrefix + "punch_latency_seconds",
				Help:    "Punch workflow latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"result"},
		)

		geofenceRejections = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "geofence_rejections_total",
				Help: "Total punches rejected by the geofence by closest location",
			},
			[]string{"location"},
		)

		sensorAttempts = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "sensor_attempts_total",
				Help: "Total position acquisition attempts by result",
			},
			[]string{"result"},
		)

		exportTotal = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "timesheet_export_total",
				Help: "Total timesheet export operations by format and result",
			},
			[]string{"format", "result"},
		)

		punchEventsPublished = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "punch_events_published_total",
				Help: "Total punch events handed to the async pipeline by result",
			},
			[]string{"result"},
		)

		prometheus.MustRegister(
			punchTotal,
			punchLatency,
			geofenceRejections,
			sensorAttempts,
			exportTotal,
			punchEventsPublished,
		)
	})
}

// ObservePunch records one punch attempt's kind, result and duration.
func ObservePunch(kind, result string, duration time.Duration) {
	if result == "" {
		result = ResultSuccess
	}
	if punchTotal != nil {
		punchTotal.WithLabelValues(kind, result).Inc()
	}
	if punchLatency != nil {
		punchLatency.WithLabelValues(result).Observe(duration.Seconds())
	}
}

// IncGeofenceRejection increments the rejection counter for the closest
// allowed location reported by the validator.
func IncGeofenceRejection(location string) {
	if location == "" {
		location = "unknown"
	}
	if geofenceRejections != nil {
		geofenceRejections.WithLabelValues(location).Inc()
	}
}

// IncSensorAttempt increments the acquisition attempt counter.
func IncSensorAttempt(result string) {
	if result == "" {
		result = ResultSuccess
	}
	if sensorAttempts != nil {
		sensorAttempts.WithLabelValues(result).Inc()
	}
}

// IncExport increments the timesheet export counter.
func IncExport(format, result string) {
	if result == "" {
		result = ResultSuccess
	}
	if exportTotal != nil {
		exportTotal.WithLabelValues(format, result).Inc()
	}
}

// IncEventPublished increments the punch event publish counter.
func IncEventPublished(result string) {
	if result == "" {
		result = ResultSuccess
	}
	if punchEventsPublished != nil {
		punchEventsPublished.WithLabelValues(result).Inc()
	}
}
