package config_test

import (
	"strings"
	"testing"
	"time"

	"github.com/jsamuelsen11/action-pipeline/internal/platform/config"
)

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(c *config.Config)
		wantErr []string
	}{
		{name: "valid", mutate: func(*config.Config) {}},
		{
			name:    "port out of range",
			mutate:  func(c *config.Config) { c.Server.Port = 70000 },
			wantErr: []string{"server.port"},
		},
		{
			name:    "negative health timeout",
			mutate:  func(c *config.Config) { c.Server.HealthTimeout = -time.Second },
			wantErr: []string{"server.health_timeout"},
		},
		{
			name:    "unknown log level",
			mutate:  func(c *config.Config) { c.Log.Level = "verbose" },
			wantErr: []string{"log.level must be one of: debug, info, warn, error"},
		},
		{
			name:    "otlp without endpoint",
			mutate:  func(c *config.Config) { c.Telemetry = config.TelemetryConfig{Enabled: true, Exporter: "otlp"} },
			wantErr: []string{"telemetry.endpoint"},
		},
		{
			name:   "disabled telemetry skips checks",
			mutate: func(c *config.Config) { c.Telemetry = config.TelemetryConfig{Exporter: "zipkin"} },
		},
		{
			name:    "rate limit without burst",
			mutate:  func(c *config.Config) { c.Client.RateLimit = config.RateLimitConfig{RequestsPerSecond: 5} },
			wantErr: []string{"client.rate_limit.burst_size"},
		},
		{
			name:    "unknown database driver",
			mutate:  func(c *config.Config) { c.Database.Driver = "mysql" },
			wantErr: []string{"database.driver"},
		},
		{
			name: "redis queue without addr",
			mutate: func(c *config.Config) {
				c.Queue.Driver = "redis"
				c.Queue.Redis = config.RedisConfig{Key: "tasks", PollTimeout: time.Second}
			},
			wantErr: []string{"queue.redis.addr"},
		},
		{
			name:    "unknown queue driver",
			mutate:  func(c *config.Config) { c.Queue.Driver = "kafka" },
			wantErr: []string{"queue.driver"},
		},
		{
			name:   "http queue needs no capacity",
			mutate: func(c *config.Config) { c.Queue = config.QueueConfig{Driver: "http"} },
		},
		{
			name:   "disabled worker skips checks",
			mutate: func(c *config.Config) { c.Worker = config.WorkerConfig{} },
		},
		{
			name: "errors aggregate",
			mutate: func(c *config.Config) {
				c.Server.Port = 0
				c.Database.DSN = ""
				c.Worker.Concurrency = 0
			},
			wantErr: []string{"server.port", "database.dsn", "worker.concurrency"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := validConfig()
			tt.mutate(cfg)
			err := cfg.Validate()

			if len(tt.wantErr) == 0 {
				if err != nil {
					t.Errorf("Validate() error = %v, want nil", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("Validate() error = nil, want one mentioning %v", tt.wantErr)
			}
			for _, want := range tt.wantErr {
				if !strings.Contains(err.Error(), want) {
					t.Errorf("Validate() error = %q, want it to mention %q", err, want)
				}
			}
		})
	}
}

func validConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Host:          "0.0.0.0",
			Port:          8080,
			ReadTimeout:   5 * time.Second,
			WriteTimeout:  10 * time.Second,
			IdleTimeout:   2 * time.Minute,
			HealthTimeout: 3 * time.Second,
		},
		Log: config.LogConfig{Level: "info", Format: "json"},
		Client: config.ClientConfig{
			BaseURL:        "http://tasks.internal:8081",
			Timeout:        30 * time.Second,
			Retry:          config.RetryConfig{MaxAttempts: 3, InitialInterval: 100 * time.Millisecond, MaxInterval: 10 * time.Second, Multiplier: 2},
			CircuitBreaker: config.CircuitBreakerConfig{MaxFailures: 5, Timeout: 30 * time.Second, HalfOpenLimit: 1},
		},
		Telemetry: config.TelemetryConfig{Exporter: "stdout"},
		Database:  config.DatabaseConfig{Driver: "sqlite", DSN: "file::memory:", MaxOpenConns: 1},
		Queue:     config.QueueConfig{Driver: "memory", Capacity: 16},
		Worker:    config.WorkerConfig{Enabled: true, Concurrency: 2, RetryDelay: time.Second},
	}
}
