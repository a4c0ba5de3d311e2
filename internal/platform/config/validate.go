package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// Validate reports every invalid setting at once, joined into one error.
func (c *Config) Validate() error {
	var p problems
	c.Server.validate(&p)
	c.Log.validate(&p)
	c.Client.validate(&p)
	c.Telemetry.validate(&p)
	c.Database.validate(&p)
	c.Queue.validate(&p)
	c.Worker.validate(&p)
	return errors.Join(p...)
}

// problems accumulates the failed checks of one validation pass.
type problems []error

func (p *problems) check(ok bool, format string, args ...any) {
	if !ok {
		*p = append(*p, fmt.Errorf(format, args...))
	}
}

func (p *problems) oneOf(key, got string, allowed ...string) {
	p.check(slices.Contains(allowed, got), "%s must be one of: %s; got %q", key, strings.Join(allowed, ", "), got)
}

func (s *ServerConfig) validate(p *problems) {
	p.check(s.Port >= 1 && s.Port <= 65535, "server.port must be between 1 and 65535, got %d", s.Port)
	p.check(s.ReadTimeout > 0, "server.read_timeout must be positive")
	p.check(s.WriteTimeout > 0, "server.write_timeout must be positive")
	p.check(s.HealthTimeout >= 0, "server.health_timeout must not be negative")
}

func (l *LogConfig) validate(p *problems) {
	p.oneOf("log.level", l.Level, "debug", "info", "warn", "error")
	p.oneOf("log.format", l.Format, "json", "text")
}

func (cl *ClientConfig) validate(p *problems) {
	p.check(cl.BaseURL != "", "client.base_url must not be empty")
	p.check(cl.Timeout > 0, "client.timeout must be positive")
	p.check(cl.Retry.MaxAttempts >= 1, "client.retry.max_attempts must be >= 1, got %d", cl.Retry.MaxAttempts)
	p.check(cl.Retry.Multiplier > 0, "client.retry.multiplier must be positive, got %g", cl.Retry.Multiplier)

	rps := cl.RateLimit.RequestsPerSecond
	p.check(rps >= 0, "client.rate_limit.requests_per_second must not be negative, got %g", rps)
	p.check(rps == 0 || cl.RateLimit.BurstSize >= 1,
		"client.rate_limit.burst_size must be >= 1 when rate limiting, got %d", cl.RateLimit.BurstSize)
	p.check(cl.CircuitBreaker.MaxFailures >= 1,
		"client.circuit_breaker.max_failures must be >= 1, got %d", cl.CircuitBreaker.MaxFailures)
}

func (t *TelemetryConfig) validate(p *problems) {
	if !t.Enabled {
		return
	}
	p.oneOf("telemetry.exporter", t.Exporter, "stdout", "otlp")
	p.check(t.Exporter != "otlp" || t.Endpoint != "", "telemetry.endpoint must not be empty when exporter is otlp")
}

func (d *DatabaseConfig) validate(p *problems) {
	p.oneOf("database.driver", d.Driver, "sqlite", "pgx")
	p.check(d.DSN != "", "database.dsn must not be empty")
	p.check(d.MaxOpenConns >= 1, "database.max_open_conns must be >= 1, got %d", d.MaxOpenConns)
	p.check(d.MaxIdleConns >= 0, "database.max_idle_conns must not be negative, got %d", d.MaxIdleConns)
}

func (q *QueueConfig) validate(p *problems) {
	switch q.Driver {
	case "memory":
		p.check(q.Capacity >= 1, "queue.capacity must be >= 1, got %d", q.Capacity)
	case "redis":
		p.check(q.Redis.Addr != "", "queue.redis.addr must not be empty")
		p.check(q.Redis.Key != "", "queue.redis.key must not be empty")
		p.check(q.Redis.PollTimeout > 0, "queue.redis.poll_timeout must be positive")
	case "http":
		// The remote task API is configured under client.
	default:
		p.oneOf("queue.driver", q.Driver, "memory", "redis", "http")
	}
}

func (w *WorkerConfig) validate(p *problems) {
	if !w.Enabled {
		return
	}
	p.check(w.Concurrency >= 1, "worker.concurrency must be >= 1, got %d", w.Concurrency)
	p.check(w.RetryDelay > 0, "worker.retry_delay must be positive")
}
