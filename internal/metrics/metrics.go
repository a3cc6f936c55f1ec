package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)

	RejectedRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameRejectedRequests,
			Help: HelpTextRejectedRequests,
		},
		[]string{LabelReason},
	)
)

// Advisor Metrics
var (
	CalculationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCalculationsTotal,
			Help: HelpTextCalculationsTotal,
		},
		[]string{LabelDecision},
	)

	DeathProbability = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    MetricNameDeathProbability,
			Help:    HelpTextDeathProbability,
			Buckets: DeathProbabilityBuckets,
		},
	)

	RunPlansTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameRunPlansTotal,
			Help: HelpTextRunPlansTotal,
		},
		[]string{LabelStyle},
	)

	ResultCacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameResultCacheHits,
			Help: HelpTextResultCacheHits,
		},
	)

	ResultCacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameResultCacheMisses,
			Help: HelpTextResultCacheMisses,
		},
	)
)
