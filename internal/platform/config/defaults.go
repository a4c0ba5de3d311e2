package config

const (
	defaultServerPort = 8080

	defaultRetryMaxAttempts = 3
	defaultRetryMultiplier  = 2.0

	defaultCircuitBreakerMaxFailures = 5
	defaultCircuitBreakerHalfOpen    = 1

	defaultRateLimitBurst = 10

	defaultDBMaxOpenConns = 10
	defaultDBMaxIdleConns = 5

	defaultQueueCapacity     = 1024
	defaultWorkerConcurrency = 4
)

// defaults returns the default configuration values.
// These are loaded first and can be overridden by base.yaml, profile YAML, and env vars.
func defaults() map[string]any {
	return map[string]any{
		"server.host":           "0.0.0.0",
		"server.port":           defaultServerPort,
		"server.read_timeout":   "5s",
		"server.write_timeout":  "10s",
		"server.idle_timeout":   "120s",
		"server.health_timeout": "3s",

		"log.level":  "info",
		"log.format": "json",

		"client.base_url":                        "http://localhost:8081",
		"client.timeout":                         "30s",
		"client.retry.max_attempts":              defaultRetryMaxAttempts,
		"client.retry.initial_interval":          "100ms",
		"client.retry.max_interval":              "10s",
		"client.retry.multiplier":                defaultRetryMultiplier,
		"client.circuit_breaker.max_failures":    defaultCircuitBreakerMaxFailures,
		"client.circuit_breaker.timeout":         "30s",
		"client.circuit_breaker.half_open_limit": defaultCircuitBreakerHalfOpen,
		"client.rate_limit.requests_per_second":  0,
		"client.rate_limit.burst_size":           defaultRateLimitBurst,

		"telemetry.enabled":  false,
		"telemetry.exporter": "stdout",
		"telemetry.endpoint": "",

		"database.driver":            "sqlite",
		"database.dsn":               "file:action-pipeline.db?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)&_pragma=foreign_keys(1)",
		"database.max_open_conns":    defaultDBMaxOpenConns,
		"database.max_idle_conns":    defaultDBMaxIdleConns,
		"database.conn_max_lifetime": "30m",
		"database.auto_migrate":      true,

		"queue.driver":             "memory",
		"queue.capacity":           defaultQueueCapacity,
		"queue.redis.addr":         "localhost:6379",
		"queue.redis.password":     "",
		"queue.redis.db":           0,
		"queue.redis.key":          "action-pipeline:tasks",
		"queue.redis.poll_timeout": "5s",

		"worker.enabled":     true,
		"worker.concurrency": defaultWorkerConcurrency,
		"worker.retry_delay": "1s",
	}
}
