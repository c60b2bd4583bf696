package observability

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "octofit"

// Leaderboard run outcomes.
const (
	OutcomeSuccess = "success"
	OutcomeError   = "error"
	OutcomeSkipped = "skipped"
)

var (
	httpRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "HTTP requests by method, route and status code.",
	}, []string{"method", "route", "status"})
	httpRequestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "HTTP request latency by method and route.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route"})

	leaderboardRunsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "leaderboard",
		Name:      "recompute_runs_total",
		Help:      "Leaderboard recomputations by outcome.",
	}, []string{"outcome"})
	leaderboardRunDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "leaderboard",
		Name:      "recompute_duration_seconds",
		Help:      "Wall time of successful leaderboard recomputations.",
		Buckets:   []float64{.01, .05, .1, .25, .5, 1, 2.5, 5, 10, 30},
	})
	leaderboardEntries = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "leaderboard",
		Name:      "entries",
		Help:      "Rows written by the most recent leaderboard recomputation.",
	})
	leaderboardLastSuccess = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "leaderboard",
		Name:      "last_success_timestamp_seconds",
		Help:      "Unix timestamp of the most recent successful recomputation.",
	})
)

func init() {
	prometheus.MustRegister(
		httpRequestsTotal,
		httpRequestDuration,
		leaderboardRunsTotal,
		leaderboardRunDuration,
		leaderboardEntries,
		leaderboardLastSuccess,
	)
}

// ObserveHTTPRequest records one served request. route is the matched
// pattern, not the raw path, to keep label cardinality bounded.
func ObserveHTTPRequest(method, route string, status int, elapsed time.Duration) {
	if route == "" {
		route = "unmatched"
	}
	httpRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	httpRequestDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// RecordLeaderboardRun records a successful recomputation.
func RecordLeaderboardRun(entries int, elapsed time.Duration, at time.Time) {
	leaderboardRunsTotal.WithLabelValues(OutcomeSuccess).Inc()
	leaderboardRunDuration.Observe(elapsed.Seconds())
	leaderboardEntries.Set(float64(entries))
	if !at.IsZero() {
		leaderboardLastSuccess.Set(float64(at.Unix()))
	}
}

// RecordLeaderboardOutcome counts a run that did not complete.
func RecordLeaderboardOutcome(outcome string) {
	leaderboardRunsTotal.WithLabelValues(outcome).Inc()
}
