package database

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	queryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "movies_api",
			Subsystem: "db",
			Name:      "query_duration_seconds",
			Help:      "Duration of executor calls by mode.",
			Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5},
		},
		[]string{"mode"},
	)

	queryErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "movies_api",
			Subsystem: "db",
			Name:      "query_errors_total",
			Help:      "Executor failures by mode and SQLSTATE.",
		},
		[]string{"mode", "code"},
	)
)

func observeQuery(mode Mode, start time.Time, err error) {
	queryDuration.WithLabelValues(mode.String()).Observe(time.Since(start).Seconds())
	if err == nil {
		return
	}
	code := "unknown"
	if dbErr, ok := AsDatabaseError(err); ok && dbErr.Code != "" {
		code = dbErr.Code
	}
	queryErrors.WithLabelValues(mode.String(), code).Inc()
}
