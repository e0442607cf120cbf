// Package metrics provides Prometheus metrics instrumentation.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestDuration tracks HTTP request duration.
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"method", "path", "status"},
	)

	// RequestsTotal tracks total HTTP requests.
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	// AsksTotal tracks completed ask turns by outcome.
	AsksTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rag_asks_total",
			Help: "Total ask turns processed",
		},
		[]string{"outcome"},
	)

	// IdempotentReplaysTotal tracks turns answered from a stored record
	// instead of a fresh model call.
	IdempotentReplaysTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "rag_idempotent_replays_total",
			Help: "Total ask turns replayed from a persisted assistant message",
		},
	)

	// RetrievalDuration tracks vector retrieval duration.
	RetrievalDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "rag_retrieval_duration_seconds",
			Help:    "Vector retrieval duration in seconds",
			Buckets: []float64{.01, .025, .05, .1, .25, .5, 1, 2.5, 5},
		},
		[]string{"collection"},
	)

	// RetrievalHits tracks the number of context points per retrieval.
	RetrievalHits = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "rag_retrieval_hits",
			Help:    "Deduplicated context points returned per retrieval",
			Buckets: []float64{0, 1, 2, 5, 10, 20, 50},
		},
	)

	// AttachmentsTotal tracks attachments surfaced to callers.
	AttachmentsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rag_attachments_total",
			Help: "Total attachments returned with answers",
		},
		[]string{"kind"},
	)

	// LLMDuration tracks model completion duration.
	LLMDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "llm_completion_duration_seconds",
			Help:    "LLM completion duration in seconds",
			Buckets: []float64{1, 2, 5, 10, 20, 30, 45, 60, 90, 120},
		},
		[]string{"model", "status"},
	)

	// LLMTokensTotal tracks total LLM tokens processed.
	LLMTokensTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "llm_tokens_total",
			Help: "Total LLM tokens processed",
		},
		[]string{"model", "direction"},
	)
)

// RecordRequest records metrics for an HTTP request.
func RecordRequest(method, path, status string, duration float64) {
	RequestDuration.WithLabelValues(method, path, status).Observe(duration)
	RequestsTotal.WithLabelValues(method, path, status).Inc()
}

// RecordCompletion records metrics for an LLM completion.
func RecordCompletion(model, status string, duration float64, tokensIn, tokensOut int) {
	LLMDuration.WithLabelValues(model, status).Observe(duration)
	LLMTokensTotal.WithLabelValues(model, "in").Add(float64(tokensIn))
	LLMTokensTotal.WithLabelValues(model, "out").Add(float64(tokensOut))
}

// RecordAttachments records attachments returned with one answer.
func RecordAttachments(kind string, n int) {
	if n > 0 {
		AttachmentsTotal.WithLabelValues(kind).Add(float64(n))
	}
}
