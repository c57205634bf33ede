// Package config loads the engine host's settings from layered YAML and
// APP_* environment variables. See Load for the layer order.
package config

import "time"

// Config is the full process configuration.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Log       LogConfig       `koanf:"log"`
	Client    ClientConfig    `koanf:"client"`
	Storage   StorageConfig   `koanf:"storage"`
	Engine    EngineConfig    `koanf:"engine"`
	Telemetry TelemetryConfig `koanf:"telemetry"`
}

// ServerConfig is the host shell listener. WriteTimeout applies to
// request/response routes only; event streams lift it per connection.
type ServerConfig struct {
	Host         string        `koanf:"host"`
	Port         int           `koanf:"port"`
	ReadTimeout  time.Duration `koanf:"read_timeout"`
	WriteTimeout time.Duration `koanf:"write_timeout"`
	IdleTimeout  time.Duration `koanf:"idle_timeout"`
}

type LogConfig struct {
	Level  string `koanf:"level"`  // debug, info, warn or error
	Format string `koanf:"format"` // json or text
	// File, when set, receives a JSON copy of every record.
	File string `koanf:"file"`
	// Journal also sends records to the systemd journal.
	Journal bool `koanf:"journal"`
}

// ClientConfig describes the delivery REST API and how hard to try it.
type ClientConfig struct {
	BaseURL string `koanf:"base_url"`
	// Token is sent as a bearer token on every call.
	Token string `koanf:"token"`
	// TokenFile names a file holding the bearer token. It is read at load
	// time when Token is empty.
	TokenFile      string               `koanf:"token_file"`
	Timeout        time.Duration        `koanf:"timeout"`
	Retry          RetryConfig          `koanf:"retry"`
	CircuitBreaker CircuitBreakerConfig `koanf:"circuit_breaker"`
	RateLimit      RateLimitConfig      `koanf:"rate_limit"`
}

// RetryConfig bounds the exponential backoff between attempts. MaxAttempts
// counts the first try.
type RetryConfig struct {
	MaxAttempts     int           `koanf:"max_attempts"`
	InitialInterval time.Duration `koanf:"initial_interval"`
	MaxInterval     time.Duration `koanf:"max_interval"`
	Multiplier      float64       `koanf:"multiplier"`
}

// CircuitBreakerConfig opens the breaker after MaxFailures consecutive
// failures and probes again after Timeout with HalfOpenLimit requests.
type CircuitBreakerConfig struct {
	MaxFailures   int           `koanf:"max_failures"`
	Timeout       time.Duration `koanf:"timeout"`
	HalfOpenLimit int           `koanf:"half_open_limit"`
}

// RateLimitConfig throttles outbound calls. A zero RequestsPerSecond
// disables limiting.
type RateLimitConfig struct {
	RequestsPerSecond float64 `koanf:"requests_per_second"`
	BurstSize         int     `koanf:"burst_size"`
}

// StorageConfig locates the sqlite cache file.
type StorageConfig struct {
	Path string `koanf:"path"`
}

// EngineConfig tunes the effect handlers and the snapshot.
type EngineConfig struct {
	// ReviewPageSize is how many reviews one API page holds.
	ReviewPageSize int `koanf:"review_page_size"`
	// DishesPageSize is the page size of the full catalogue sync.
	DishesPageSize int `koanf:"dishes_page_size"`
	// SyncWorkers caps concurrent fetches when backfilling recommended dishes.
	SyncWorkers int `koanf:"sync_workers"`
	// SnapshotKey is the row the root state is saved under.
	SnapshotKey string `koanf:"snapshot_key"`
}

type TelemetryConfig struct {
	Enabled     bool   `koanf:"enabled"`
	Exporter    string `koanf:"exporter"` // stdout or otlp
	Endpoint    string `koanf:"endpoint"`
	ServiceName string `koanf:"service_name"`
}
