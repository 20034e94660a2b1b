package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Rejection kinds recorded by StoreRejectionsTotal.
const (
	KindDomain     = "domain"
	KindConstraint = "constraint"
	KindUnexpected = "unexpected"
)

var (
	RequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "news_http_requests_total",
		Help: "HTTP requests served, by method, route pattern and status.",
	}, []string{"method", "route", "status"})

	RequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "news_http_request_duration_seconds",
		Help:    "Time from request receipt to response, by route pattern.",
		Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
	}, []string{"route"})

	StoreRejectionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "news_store_rejections_total",
		Help: "Error responses, by kind: domain, constraint or unexpected.",
	}, []string{"kind"})
)
