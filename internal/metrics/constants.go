package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Advisor metric names
const (
	MetricNameCalculationsTotal = "ev_calculations_total"
	MetricNameDeathProbability  = "ev_death_probability"
	MetricNameRunPlansTotal     = "run_plans_generated_total"
	MetricNameResultCacheHits   = "ev_result_cache_hits_total"
	MetricNameResultCacheMisses = "ev_result_cache_misses_total"
	MetricNameRejectedRequests  = "rejected_requests_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Advisor metric help text
const (
	HelpTextCalculationsTotal = "Total number of EV calculations by decision"
	HelpTextDeathProbability  = "Distribution of combined death probabilities returned"
	HelpTextRunPlansTotal     = "Total number of run plans generated by style"
	HelpTextResultCacheHits   = "Total number of EV results served from cache"
	HelpTextResultCacheMisses = "Total number of EV results computed fresh"
	HelpTextRejectedRequests  = "Total number of requests rejected by the security layer"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod   = "method"
	LabelPath     = "path"
	LabelStatus   = "status"
	LabelDecision = "decision"
	LabelStyle    = "style"
	LabelReason   = "reason"
)

// Rejection reasons
const (
	ReasonUnauthorized = "unauthorized"
	ReasonRateLimited  = "rate_limited"
	ReasonTooLarge     = "too_large"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, from 1ms to 10s.
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// DeathProbabilityBuckets follow the danger label bands
var DeathProbabilityBuckets = []float64{.05, .1, .2, .3, .4, .5, .6, .7, .8, .9, .99}
