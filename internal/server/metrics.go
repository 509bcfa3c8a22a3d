package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP metrics
var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "homeshowcase_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "homeshowcase_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	httpRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "homeshowcase_http_requests_in_flight",
			Help: "Number of HTTP requests currently being processed",
		},
	)
)

// Listing metrics
var (
	viewingRequestsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "homeshowcase_viewing_requests_total",
			Help: "Total number of viewing requests stored",
		},
	)
)
