// Package metrics provides Prometheus instrumentation for the smart-match
// service: score computation and cache counters, refresh latency and gRPC
// request accounting.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Label values for the path/op labels.
const (
	PathRead    = "read"
	PathRefresh = "refresh"

	LookupHit   = "hit"
	LookupStale = "stale"
	LookupMiss  = "miss"
)

var (
	// ScoresComputed counts scores computed, labelled by path: "read" for
	// on-the-fly fallbacks, "refresh" for stored batches.
	ScoresComputed = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "smartmatch_scores_computed_total",
		Help: "Total number of compatibility scores computed",
	}, []string{"path"})

	// CandidatesSkipped counts candidates dropped from a batch after a
	// per-candidate failure.
	CandidatesSkipped = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "smartmatch_candidates_skipped_total",
		Help: "Candidates skipped because their score could not be produced",
	}, []string{"op"})

	// ScoreLookups counts stored-score lookups by result: hit, stale, miss.
	ScoreLookups = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "smartmatch_score_lookups_total",
		Help: "Stored score lookups on the read path",
	}, []string{"result"})

	// RefreshDuration records CalculateAndStoreScores wall time.
	RefreshDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "smartmatch_refresh_duration_seconds",
		Help:    "Duration of score refresh batches",
		Buckets: []float64{.01, .05, .1, .25, .5, 1, 2.5, 5, 10},
	})

	// RefreshRequests counts opportunistic refresh requests by outcome:
	// "published", "deduped" or "failed".
	RefreshRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "smartmatch_refresh_requests_total",
		Help: "Opportunistic refresh requests raised by the read path",
	}, []string{"outcome"})

	// GRPCRequests counts unary RPCs by method and status code.
	GRPCRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "smartmatch_grpc_requests_total",
		Help: "Total gRPC requests handled",
	}, []string{"method", "code"})

	// GRPCLatency records unary RPC latency in seconds.
	GRPCLatency = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "smartmatch_grpc_request_duration_seconds",
		Help:    "gRPC request latency in seconds",
		Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
	}, []string{"method"})
)

func init() {
	prometheus.MustRegister(
		ScoresComputed,
		CandidatesSkipped,
		ScoreLookups,
		RefreshDuration,
		RefreshRequests,
		GRPCRequests,
		GRPCLatency,
	)
}

// Handler returns the Prometheus metrics HTTP handler.
func Handler() http.Handler {
	return promhttp.Handler()
}
