package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the client configuration. Values come from the optional YAML
// file first, then environment variables override.
type Config struct {
	// APIBaseURL is the base URL of the storefront API, including any
	// version prefix.
	APIBaseURL string
	// HTTPTimeout bounds each request. Zero means no client-side timeout,
	// matching the single-attempt, caller-interprets-failure model.
	HTTPTimeout time.Duration
}

// fileConfig is the YAML shape. Durations are written as strings like
// "30s" and parsed on load.
type fileConfig struct {
	APIBaseURL  string `yaml:"api_base_url"`
	HTTPTimeout string `yaml:"http_timeout"`
}

func Default() Config {
	return Config{
		APIBaseURL:  "http://localhost:3001/v0",
		HTTPTimeout: 0,
	}
}

// Load reads the YAML file at path (skipped when path is empty or the
// file does not exist) and applies environment overrides.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if !os.IsNotExist(err) {
				return cfg, fmt.Errorf("failed to read config file: %w", err)
			}
		} else {
			var file fileConfig
			if err := yaml.Unmarshal(data, &file); err != nil {
				return cfg, fmt.Errorf("failed to parse config file: %w", err)
			}
			if file.APIBaseURL != "" {
				cfg.APIBaseURL = file.APIBaseURL
			}
			if file.HTTPTimeout != "" {
				timeout, err := time.ParseDuration(file.HTTPTimeout)
				if err != nil {
					return cfg, fmt.Errorf("invalid http_timeout in config file: %w", err)
				}
				cfg.HTTPTimeout = timeout
			}
		}
	}

	cfg.APIBaseURL = getEnv("GAMESHOP_API_URL", cfg.APIBaseURL)
	if raw := os.Getenv("GAMESHOP_HTTP_TIMEOUT"); raw != "" {
		timeout, err := time.ParseDuration(raw)
		if err != nil {
			return cfg, fmt.Errorf("invalid GAMESHOP_HTTP_TIMEOUT: %w", err)
		}
		cfg.HTTPTimeout = timeout
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
