package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	questionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "askql_questions_total",
			Help: "Total number of resolved questions by terminal outcome.",
		},
		[]string{"outcome"},
	)
	correctionsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "askql_corrections_total",
			Help: "Total number of SQL correction cycles.",
		},
	)
	queryExecutionSeconds = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "askql_query_execution_seconds",
			Help:    "Wall-clock duration of the final query execution attempt.",
			Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
	)
)

func init() {
	prometheus.MustRegister(questionsTotal, correctionsTotal, queryExecutionSeconds)
}

func ObserveQuestionResolved(outcome string, corrections int, executionTime time.Duration) {
	questionsTotal.WithLabelValues(outcome).Inc()
	if corrections > 0 {
		correctionsTotal.Add(float64(corrections))
	}
	if executionTime > 0 {
		queryExecutionSeconds.Observe(executionTime.Seconds())
	}
}
