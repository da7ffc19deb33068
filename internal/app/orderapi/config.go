package orderapi

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"go.temporal.io/sdk/client"
)

// Config carries environment-driven settings for the order service.
type Config struct {
	Port               string
	UserServiceURL     string
	UserServiceTimeout time.Duration
	TemporalAddress    string
	TemporalNamespace  string
	TemporalDisabled   bool
}

// LoadConfig reads environment variables, applies defaults, and validates basic constraints.
func LoadConfig() (Config, error) {
	cfg := Config{
		Port:              envDefault("PORT", "8082"),
		UserServiceURL:    envDefault("USER_SERVICE_URL", "http://localhost:8081"),
		TemporalAddress:   envDefault("TEMPORAL_ADDRESS", client.DefaultHostPort),
		TemporalNamespace: envDefault("TEMPORAL_NAMESPACE", client.DefaultNamespace),
		TemporalDisabled:  isTruthy(os.Getenv("TEMPORAL_DISABLED")),
	}
	if port, err := strconv.Atoi(cfg.Port); err != nil || port <= 0 || port > 65535 {
		return Config{}, fmt.Errorf("PORT must be a valid TCP port, got %q", cfg.Port)
	}
	parsed, err := url.Parse(cfg.UserServiceURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return Config{}, fmt.Errorf("USER_SERVICE_URL must be an absolute URL, got %q", cfg.UserServiceURL)
	}
	if raw := strings.TrimSpace(os.Getenv("USER_SERVICE_TIMEOUT")); raw != "" {
		timeout, err := time.ParseDuration(raw)
		if err != nil || timeout < 0 {
			return Config{}, fmt.Errorf("USER_SERVICE_TIMEOUT must be a non-negative duration")
		}
		cfg.UserServiceTimeout = timeout
	}
	return cfg, nil
}

func (c Config) Addr() string {
	return ":" + c.Port
}

func envDefault(key, fallback string) string {
	if val := strings.TrimSpace(os.Getenv(key)); val != "" {
		return val
	}
	return fallback
}

func isTruthy(value string) bool {
	value = strings.TrimSpace(strings.ToLower(value))
	return value == "1" || value == "true" || value == "yes"
}
