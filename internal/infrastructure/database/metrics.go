package database

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var registerOnce sync.Once

// registerPoolMetrics exposes the pool counters as gauges read at scrape time.
func registerPoolMetrics(db *PostgresDB) {
	registerOnce.Do(func() {
		gauge := func(name, help string, read func(*PoolStats) float64) prometheus.GaugeFunc {
			return prometheus.NewGaugeFunc(prometheus.GaugeOpts{
				Namespace: "movies_api",
				Subsystem: "db_pool",
				Name:      name,
				Help:      help,
			}, func() float64 {
				stats, err := db.Stats()
				if err != nil {
					return 0
				}
				return read(stats)
			})
		}

		prometheus.MustRegister(
			gauge("total_connections", "Connections currently in the pool.",
				func(s *PoolStats) float64 { return float64(s.TotalConns) }),
			gauge("idle_connections", "Idle connections in the pool.",
				func(s *PoolStats) float64 { return float64(s.IdleConns) }),
			gauge("acquired_connections", "Connections currently checked out.",
				func(s *PoolStats) float64 { return float64(s.AcquiredConns) }),
			gauge("max_connections", "Configured pool size.",
				func(s *PoolStats) float64 { return float64(s.MaxConns) }),
		)
	})
}
