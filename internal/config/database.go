package config

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"movies-api/internal/infrastructure/database"
)

// LoadDatabaseConfig reads the DB_* variables. DB_MIN_CONN / DB_MAX_CONN are
// accepted as aliases of DB_MIN_CONNS / DB_MAX_CONNS.
func LoadDatabaseConfig() (*database.DBConfig, error) {
	var errs []error
	intVar := func(key string, def int) int {
		v, err := getEnvInt(key, def)
		errs = append(errs, err)
		return v
	}
	durationVar := func(key string, def time.Duration) time.Duration {
		v, err := getEnvDuration(key, def)
		errs = append(errs, err)
		return v
	}
	aliasedInt := func(def int, keys ...string) int {
		raw := getEnvFirst(strconv.Itoa(def), keys...)
		v, err := strconv.Atoi(raw)
		if err != nil {
			errs = append(errs, fmt.Errorf("invalid %s: %w", keys[0], err))
		}
		return v
	}

	cfg := &database.DBConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     intVar("DB_PORT", 5432),
		Username: getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		DBName:   getEnv("DB_NAME", "movies_db"),
		SSLMode:  getEnv("DB_SSLMODE", "disable"),

		MinConns:          int32(aliasedInt(1, "DB_MIN_CONNS", "DB_MIN_CONN")),
		MaxConns:          int32(aliasedInt(10, "DB_MAX_CONNS", "DB_MAX_CONN")),
		MaxConnLifetime:   durationVar("DB_MAX_CONN_LIFETIME", 30*time.Minute),
		MaxConnIdleTime:   durationVar("DB_MAX_CONN_IDLE_TIME", 5*time.Minute),
		HealthCheckPeriod: durationVar("DB_HEALTH_CHECK_PERIOD", time.Minute),

		MaxRetries:     intVar("DB_MAX_RETRIES", 5),
		RetryDelay:     durationVar("DB_RETRY_DELAY", time.Second),
		ConnectTimeout: durationVar("DB_CONNECT_TIMEOUT", 10*time.Second),
	}

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return cfg, nil
}
