package server

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	portEnv            = "PORT"
	apiURLEnv          = "API_URL"
	corsOriginsEnv     = "CORS_ALLOWED_ORIGINS"
	shutdownTimeoutEnv = "SHUTDOWN_TIMEOUT"

	defaultPort            = 5000
	defaultShutdownTimeout = 10 * time.Second
)

type Config struct {
	Port               int
	APIURL             string
	CORSAllowedOrigins []string
	ShutdownTimeout    time.Duration
}

func Load() (*Config, error) {
	port := defaultPort

	if raw := getEnv(portEnv, ""); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidPort, err)
		}

		port = parsed
	}

	shutdownTimeout := defaultShutdownTimeout

	if raw := getEnv(shutdownTimeoutEnv, ""); raw != "" {
		parsed, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidShutdownTimeout, err)
		}

		shutdownTimeout = parsed
	}

	cfg := &Config{
		Port:               port,
		APIURL:             getEnv(apiURLEnv, ""),
		CORSAllowedOrigins: splitOrigins(getEnv(corsOriginsEnv, "*")),
		ShutdownTimeout:    shutdownTimeout,
	}

	return cfg, cfg.Validate()
}

// WithPort overrides the listen port. The default API URL follows the port.
func (c *Config) WithPort(port int) *Config {
	updated := *c
	updated.Port = port

	return &updated
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

// PublicURL is the server URL advertised in the API document.
func (c *Config) PublicURL() string {
	if c.APIURL != "" {
		return strings.TrimRight(c.APIURL, "/")
	}

	return fmt.Sprintf("http://localhost:%d", c.Port)
}

func (c *Config) Validate() error {
	if c == nil {
		return fmt.Errorf("%w: config is nil", ErrInvalidPort)
	}

	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("%w: %d", ErrInvalidPort, c.Port)
	}

	if c.ShutdownTimeout <= 0 {
		return fmt.Errorf("%w: %s", ErrInvalidShutdownTimeout, c.ShutdownTimeout)
	}

	if c.APIURL == "" {
		return nil
	}

	parsedURL, err := url.Parse(c.APIURL)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidAPIURL, err)
	}

	if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
		return fmt.Errorf("%w: scheme must be http or https, got: %s", ErrInvalidAPIURL, parsedURL.Scheme)
	}

	if parsedURL.Host == "" {
		return fmt.Errorf("%w: host is empty", ErrInvalidAPIURL)
	}

	return nil
}

func splitOrigins(raw string) []string {
	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))

	for _, part := range parts {
		if origin := strings.TrimSpace(part); origin != "" {
			origins = append(origins, origin)
		}
	}

	return origins
}

func getEnv(key, defaultVal string) string {
	if val := strings.TrimSpace(os.Getenv(key)); val != "" {
		return val
	}

	return defaultVal
}
