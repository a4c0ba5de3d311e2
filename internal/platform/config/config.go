// Package config provides configuration loading and validation for the service.
// Configuration is loaded from YAML files with environment variable overrides
// using a layered system: defaults -> base.yaml -> {profile}.yaml -> env vars.
package config

import "time"

// Config holds all configuration for the service.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Log       LogConfig       `koanf:"log"`
	Client    ClientConfig    `koanf:"client"`
	Telemetry TelemetryConfig `koanf:"telemetry"`
	Database  DatabaseConfig  `koanf:"database"`
	Queue     QueueConfig     `koanf:"queue"`
	Worker    WorkerConfig    `koanf:"worker"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host          string        `koanf:"host"`
	Port          int           `koanf:"port"`
	ReadTimeout   time.Duration `koanf:"read_timeout"`
	WriteTimeout  time.Duration `koanf:"write_timeout"`
	IdleTimeout   time.Duration `koanf:"idle_timeout"`
	HealthTimeout time.Duration `koanf:"health_timeout"`
}

// LogConfig holds structured logging settings.
type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// ClientConfig holds settings for the remote task API client, used when
// queue.driver is "http".
type ClientConfig struct {
	BaseURL        string               `koanf:"base_url"`
	Timeout        time.Duration        `koanf:"timeout"`
	Retry          RetryConfig          `koanf:"retry"`
	CircuitBreaker CircuitBreakerConfig `koanf:"circuit_breaker"`
	RateLimit      RateLimitConfig      `koanf:"rate_limit"`
}

// RateLimitConfig holds client-side rate limiting settings. A zero
// RequestsPerSecond disables the limiter.
type RateLimitConfig struct {
	RequestsPerSecond float64 `koanf:"requests_per_second"`
	BurstSize         int     `koanf:"burst_size"`
}

// RetryConfig holds retry policy settings with exponential backoff.
type RetryConfig struct {
	MaxAttempts     int           `koanf:"max_attempts"`
	InitialInterval time.Duration `koanf:"initial_interval"`
	MaxInterval     time.Duration `koanf:"max_interval"`
	Multiplier      float64       `koanf:"multiplier"`
}

// CircuitBreakerConfig holds circuit breaker settings.
type CircuitBreakerConfig struct {
	MaxFailures   int           `koanf:"max_failures"`
	Timeout       time.Duration `koanf:"timeout"`
	HalfOpenLimit int           `koanf:"half_open_limit"`
}

// TelemetryConfig holds OpenTelemetry settings.
type TelemetryConfig struct {
	Enabled     bool   `koanf:"enabled"`
	Exporter    string `koanf:"exporter"`
	Endpoint    string `koanf:"endpoint"`
	ServiceName string `koanf:"service_name"`
}

// DatabaseConfig holds the relational store settings.
type DatabaseConfig struct {
	// Driver is "sqlite" or "pgx".
	Driver          string        `koanf:"driver"`
	DSN             string        `koanf:"dsn"`
	MaxOpenConns    int           `koanf:"max_open_conns"`
	MaxIdleConns    int           `koanf:"max_idle_conns"`
	ConnMaxLifetime time.Duration `koanf:"conn_max_lifetime"`
	// AutoMigrate applies pending migrations at startup.
	AutoMigrate bool `koanf:"auto_migrate"`
}

// QueueConfig selects and configures the follow-up work queue.
type QueueConfig struct {
	// Driver is "memory", "redis" or "http". The http driver submits to the
	// remote task API configured under client and runs no local worker.
	Driver   string      `koanf:"driver"`
	Capacity int         `koanf:"capacity"`
	Redis    RedisConfig `koanf:"redis"`
}

// RedisConfig holds the redis list queue settings.
type RedisConfig struct {
	Addr        string        `koanf:"addr"`
	Password    string        `koanf:"password"`
	DB          int           `koanf:"db"`
	Key         string        `koanf:"key"`
	PollTimeout time.Duration `koanf:"poll_timeout"`
}

// WorkerConfig holds the background worker settings.
type WorkerConfig struct {
	Enabled     bool          `koanf:"enabled"`
	Concurrency int           `koanf:"concurrency"`
	RetryDelay  time.Duration `koanf:"retry_delay"`
}
