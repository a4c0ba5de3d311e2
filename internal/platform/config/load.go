package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	env "github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	envPrefix        = "APP_"
	defaultConfigDir = "configs"
)

// Option configures Load.
type Option func(*loadOptions)

type loadOptions struct {
	configDir string
}

// WithConfigDir reads base.yaml and the profile file from dir instead of
// ./configs.
func WithConfigDir(dir string) Option {
	return func(o *loadOptions) {
		o.configDir = dir
	}
}

// Load builds the Config for profile. Later layers win:
//
//	built-in defaults
//	{configDir}/base.yaml
//	{configDir}/{profile}.yaml
//	APP_* environment variables
//
// An environment variable names a key by joining its path with
// underscores, so APP_QUEUE_REDIS_POLL_TIMEOUT sets queue.redis.poll_timeout
// and APP_WORKER_CONCURRENCY sets worker.concurrency.
func Load(profile string, opts ...Option) (*Config, error) {
	if err := validateProfile(profile); err != nil {
		return nil, err
	}

	o := &loadOptions{configDir: defaultConfigDir}
	for _, opt := range opts {
		opt(o)
	}

	k := koanf.New(".")
	for key, value := range defaults() {
		if err := k.Set(key, value); err != nil {
			return nil, fmt.Errorf("loading default %s: %w", key, err)
		}
	}

	for _, layer := range []string{"base", profile} {
		path := filepath.Join(o.configDir, layer+".yaml")
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("loading %s config %s: %w", layer, path, err)
		}
	}

	// Every key has a default, so the lookup covers the full key set.
	if err := k.Load(env.Provider(".", env.Opt{
		Prefix:        envPrefix,
		TransformFunc: envKeyMapper(k.Keys()),
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env vars: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}
	return &cfg, nil
}

// validateProfile rejects names that are empty or could escape the config
// directory.
func validateProfile(profile string) error {
	switch {
	case strings.TrimSpace(profile) == "":
		return errors.New("profile must not be empty")
	case strings.ContainsAny(profile, `/\`):
		return fmt.Errorf("profile must not contain path separators, got %q", profile)
	case strings.Contains(profile, ".."):
		return fmt.Errorf("profile must not contain path traversal, got %q", profile)
	}
	return nil
}

// envKeyMapper maps APP_SERVER_READ_TIMEOUT to the known key
// server.read_timeout rather than server.read.timeout. Variables that match
// no known key fall back to one level per underscore.
func envKeyMapper(keys []string) func(key, value string) (string, any) {
	known := make(map[string]string, len(keys))
	for _, key := range keys {
		known[strings.ReplaceAll(key, ".", "_")] = key
	}

	return func(key, value string) (string, any) {
		key = strings.ToLower(strings.TrimPrefix(key, envPrefix))
		if mapped, ok := known[key]; ok {
			return mapped, value
		}
		return strings.ReplaceAll(key, "_", "."), value
	}
}
