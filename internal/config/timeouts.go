package config

import (
	"os"
	"strconv"
	"time"
)

// Environment variables that override configuration values.
const (
	EnvReadinessMaxAttempts    = "PODCTL_READINESS_MAX_ATTEMPTS"
	EnvReadinessInterval       = "PODCTL_READINESS_INTERVAL"
	EnvReadinessRequestTimeout = "PODCTL_READINESS_REQUEST_TIMEOUT"
	EnvAPIURL                  = "RUNPOD_API_URL"
)

// ApplyEnvOverrides overrides readiness timings and the API endpoint from
// environment variables. Unset or unparsable values leave cfg untouched.
//
// Environment Variables:
//   - PODCTL_READINESS_MAX_ATTEMPTS (default: 180)
//   - PODCTL_READINESS_INTERVAL (default: 10s)
//   - PODCTL_READINESS_REQUEST_TIMEOUT (default: 10s)
//   - RUNPOD_API_URL (default: https://api.runpod.io/graphql)
func ApplyEnvOverrides(cfg *Config) {
	cfg.Readiness.MaxAttempts = parseInt(EnvReadinessMaxAttempts, cfg.Readiness.MaxAttempts)
	cfg.Readiness.Interval = parseDuration(EnvReadinessInterval, cfg.Readiness.Interval)
	cfg.Readiness.RequestTimeout = parseDuration(EnvReadinessRequestTimeout, cfg.Readiness.RequestTimeout)

	if url := os.Getenv(EnvAPIURL); url != "" {
		cfg.API.URL = url
	}
}

// MaxWait is the worst-case time spent waiting for readiness: every
// request times out and every pause is taken.
func (r ReadinessConfig) MaxWait() time.Duration {
	if r.MaxAttempts < 1 {
		return 0
	}
	return time.Duration(r.MaxAttempts)*r.RequestTimeout + time.Duration(r.MaxAttempts-1)*r.Interval
}

// parseDuration parses a duration from an environment variable.
// If the variable is not set or parsing fails, the default value is returned.
func parseDuration(envVar string, defaultVal time.Duration) time.Duration {
	val := os.Getenv(envVar)
	if val == "" {
		return defaultVal
	}

	d, err := time.ParseDuration(val)
	if err != nil {
		return defaultVal
	}

	return d
}

// parseInt parses an integer from an environment variable.
// If the variable is not set or parsing fails, the default value is returned.
func parseInt(envVar string, defaultVal int) int {
	val := os.Getenv(envVar)
	if val == "" {
		return defaultVal
	}

	i, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}

	return i
}
