// Package metrics Prometheus 指标
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "bookrec"

// 目录查询来源与结果标签值
const (
	SourceCache    = "cache"
	SourceExternal = "external"

	OutcomeHit      = "hit"
	OutcomeMiss     = "miss"
	OutcomeSuccess  = "success"
	OutcomeRetry    = "retry"
	OutcomeFailure  = "failure"
	OutcomeDegraded = "degraded"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Duration of HTTP requests in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	CatalogRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "catalog_requests_total",
			Help:      "Catalog lookups by source and outcome",
		},
		[]string{"source", "outcome"},
	)

	RecommendationsSize = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "recommendations_size",
			Help:      "Number of books returned per recommendation",
			Buckets:   []float64{0, 1, 2, 3, 5, 8, 10},
		},
	)
)
