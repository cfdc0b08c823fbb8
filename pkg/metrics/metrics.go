// Package metrics exposes Prometheus collectors for the HTTP layer and the
// booking lifecycle.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Metrics struct {
	registry *prometheus.Registry

	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	BookingsCreated      prometheus.Counter
	BookingTransitions   *prometheus.CounterVec
	BookingConflicts     prometheus.Counter
	ConfirmationRetries  prometheus.Counter
	ConfirmationExhausts prometheus.Counter
}

// New registers every collector on a private registry under namespace.
func New(namespace string) *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),

		HTTPRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"method", "route", "status"},
		),
		HTTPRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request duration in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		BookingsCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bookings_created_total",
			Help:      "Total number of bookings created",
		}),
		BookingTransitions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "booking_transitions_total",
				Help:      "Total number of booking status transitions",
			},
			[]string{"action"},
		),
		BookingConflicts: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "booking_conflicts_total",
			Help:      "Bookings rejected because the room was taken",
		}),
		ConfirmationRetries: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "confirmation_code_collisions_total",
			Help:      "Confirmation codes drawn again after a collision",
		}),
		ConfirmationExhausts: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "confirmation_code_exhausted_total",
			Help:      "Bookings that failed because every drawn code collided",
		}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.BookingsCreated,
		m.BookingTransitions,
		m.BookingConflicts,
		m.ConfirmationRetries,
		m.ConfirmationExhausts,
	)

	return m
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// The Record helpers are no-ops on a nil receiver so services can run
// without metrics.

func (m *Metrics) RecordBookingCreated() {
	if m == nil {
		return
	}
	m.BookingsCreated.Inc()
}

func (m *Metrics) RecordTransition(action string) {
	if m == nil {
		return
	}
	m.BookingTransitions.WithLabelValues(action).Inc()
}

func (m *Metrics) RecordConflict() {
	if m == nil {
		return
	}
	m.BookingConflicts.Inc()
}

func (m *Metrics) RecordCodeCollision() {
	if m == nil {
		return
	}
	m.ConfirmationRetries.Inc()
}

func (m *Metrics) RecordCodeExhausted() {
	if m == nil {
		return
	}
	m.ConfirmationExhausts.Inc()
}
