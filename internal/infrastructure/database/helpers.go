package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
)

var ErrPoolNotInitialized = errors.New("database pool is not initialized")

const pingTimeout = 5 * time.Second

// Ping checks the database answers within pingTimeout.
func (db *PostgresDB) Ping(ctx context.Context) error {
	if db.Pool == nil {
		return ErrPoolNotInitialized
	}

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := db.Pool.Ping(pingCtx); err != nil {
		return fmt.Errorf("database ping failed: %w", err)
	}
	return nil
}

// Close đóng sql handle trước, sau đó đóng pool. Gọi nhiều lần vẫn an toàn.
func (db *PostgresDB) Close() error {
	if db.Pool == nil {
		log.Debug().Msg("[DATABASE] Pool is already closed or was never initialized")
		return nil
	}

	log.Info().Msg("[DATABASE] Closing database connection pool...")

	var err error
	if db.sqlDB != nil {
		err = db.sqlDB.Close()
		db.sqlDB = nil
	}
	db.Pool.Close()
	db.Pool = nil

	log.Info().Msg("[DATABASE] Connection pool closed successfully")
	return err
}

// PoolStats is a snapshot of the pool counters.
type PoolStats struct {
	AcquireCount            int64
	AcquireDuration         time.Duration
	AcquiredConns           int32
	CanceledAcquireCount    int64
	ConstructingConns       int32
	EmptyAcquireCount       int64
	IdleConns               int32
	MaxConns                int32
	TotalConns              int32
	NewConnsCount           int64
	MaxLifetimeDestroyCount int64
	MaxIdleDestroyCount     int64
}

func (db *PostgresDB) Stats() (*PoolStats, error) {
	if db.Pool == nil {
		return nil, ErrPoolNotInitialized
	}

	raw := db.Pool.Stat()
	return &PoolStats{
		AcquiredConns:     raw.AcquiredConns(),
		ConstructingConns: raw.ConstructingConns(),
		IdleConns:         raw.IdleConns(),
		TotalConns:        raw.TotalConns(),
		MaxConns:          raw.MaxConns(),

		AcquireCount:         raw.AcquireCount(),
		AcquireDuration:      raw.AcquireDuration(),
		CanceledAcquireCount: raw.CanceledAcquireCount(),
		EmptyAcquireCount:    raw.EmptyAcquireCount(),
		NewConnsCount:        raw.NewConnsCount(),

		MaxLifetimeDestroyCount: raw.MaxLifetimeDestroyCount(),
		MaxIdleDestroyCount:     raw.MaxIdleDestroyCount(),
	}, nil
}

func calculateAvgDuration(total time.Duration, count int64) time.Duration {
	if count == 0 {
		return 0
	}
	return total / time.Duration(count)
}

// Pool alert thresholds.
const (
	highUtilizationPct = 80
	highAcquireLatency = 100 * time.Millisecond
	highCancelRatePct  = 5
)

// MonitorPoolHealth log warning khi pool có dấu hiệu quá tải.
// Chạy trong goroutine riêng, return khi ctx done.
func (db *PostgresDB) MonitorPoolHealth(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			stats, err := db.Stats()
			if err != nil {
				log.Warn().Err(err).Msg("[MONITOR] Failed to get stats")
				continue
			}
			for _, w := range poolWarnings(stats) {
				log.Warn().
					Int32("acquired", stats.AcquiredConns).
					Int32("max", stats.MaxConns).
					Msg(w)
			}

		case <-ctx.Done():
			log.Info().Msg("[MONITOR] Stopping pool health monitoring")
			return
		}
	}
}

// poolWarnings trả về một message cho mỗi ngưỡng bị vượt.
func poolWarnings(stats *PoolStats) []string {
	var out []string

	if stats.MaxConns > 0 {
		utilization := float64(stats.AcquiredConns) / float64(stats.MaxConns) * 100
		if utilization > highUtilizationPct {
			out = append(out, "[MONITOR] HIGH POOL UTILIZATION")
		}
	}
	if calculateAvgDuration(stats.AcquireDuration, stats.AcquireCount) > highAcquireLatency {
		out = append(out, "[MONITOR] HIGH ACQUIRE LATENCY")
	}
	if stats.AcquireCount > 0 && stats.CanceledAcquireCount > 0 {
		cancelRate := float64(stats.CanceledAcquireCount) / float64(stats.AcquireCount) * 100
		if cancelRate > highCancelRatePct {
			out = append(out, "[MONITOR] HIGH CANCEL RATE")
		}
	}
	return out
}
