package config

import (
	"errors"
	"fmt"
	"slices"
)

// checks accumulates configuration problems under their koanf key.
type checks []error

func (c *checks) require(ok bool, key, format string, args ...any) {
	if !ok {
		*c = append(*c, fmt.Errorf("%s %s", key, fmt.Sprintf(format, args...)))
	}
}

func (c *checks) oneOf(key, got string, allowed ...string) {
	c.require(slices.Contains(allowed, got), key, "must be one of %v, got %q", allowed, got)
}

func (c checks) err() error { return errors.Join(c...) }

// Validate reports every invalid value at once.
func (c *Config) Validate() error {
	var v checks
	c.Server.check(&v)
	c.Log.check(&v)
	c.Client.check(&v)
	c.Storage.check(&v)
	c.Engine.check(&v)
	c.Telemetry.check(&v)
	return v.err()
}

func (s *ServerConfig) check(v *checks) {
	v.require(s.Port >= 1 && s.Port <= 65535, "server.port", "must be in 1..65535, got %d", s.Port)
	v.require(s.ReadTimeout > 0, "server.read_timeout", "must be positive")
	v.require(s.WriteTimeout > 0, "server.write_timeout", "must be positive")
}

func (l *LogConfig) check(v *checks) {
	v.oneOf("log.level", l.Level, "debug", "info", "warn", "error")
	v.oneOf("log.format", l.Format, "json", "text")
}

func (cl *ClientConfig) check(v *checks) {
	v.require(cl.BaseURL != "", "client.base_url", "must not be empty")
	v.require(cl.Timeout > 0, "client.timeout", "must be positive")
	v.require(cl.Retry.MaxAttempts >= 1, "client.retry.max_attempts", "must be at least 1, got %d", cl.Retry.MaxAttempts)
	v.require(cl.Retry.Multiplier > 0, "client.retry.multiplier", "must be positive, got %g", cl.Retry.Multiplier)
	v.require(cl.CircuitBreaker.MaxFailures >= 1, "client.circuit_breaker.max_failures",
		"must be at least 1, got %d", cl.CircuitBreaker.MaxFailures)

	rl := cl.RateLimit
	v.require(rl.RequestsPerSecond >= 0, "client.rate_limit.requests_per_second",
		"must not be negative, got %g", rl.RequestsPerSecond)
	v.require(rl.RequestsPerSecond == 0 || rl.BurstSize >= 1, "client.rate_limit.burst_size",
		"must be at least 1 when limiting, got %d", rl.BurstSize)
}

func (s *StorageConfig) check(v *checks) {
	v.require(s.Path != "", "storage.path", "must not be empty")
}

func (e *EngineConfig) check(v *checks) {
	v.require(e.ReviewPageSize >= 1, "engine.review_page_size", "must be at least 1, got %d", e.ReviewPageSize)
	v.require(e.DishesPageSize >= 1, "engine.dishes_page_size", "must be at least 1, got %d", e.DishesPageSize)
	v.require(e.SyncWorkers >= 1, "engine.sync_workers", "must be at least 1, got %d", e.SyncWorkers)
	v.require(e.SnapshotKey != "", "engine.snapshot_key", "must not be empty")
}

func (t *TelemetryConfig) check(v *checks) {
	if !t.Enabled {
		return
	}
	v.oneOf("telemetry.exporter", t.Exporter, "stdout", "otlp")
	v.require(t.Exporter != "otlp" || t.Endpoint != "", "telemetry.endpoint", "must not be empty with the otlp exporter")
}
