package health

import (
	"context"
	"log/slog"
	"time"
)

const (
	StatusHealthy   = "healthy"
	StatusUnhealthy = "unhealthy"

	defaultTimeout = 2 * time.Second
)

// Dependency is anything the service needs to answer requests.
type Dependency interface {
	Name() string
	Ping(ctx context.Context) error
}

// DependencyStatus never carries the ping error; the cause is only logged.
type DependencyStatus struct {
	Status string `json:"status"`
}

type Status struct {
	Status       string                      `json:"status"`
	Version      string                      `json:"version,omitempty"`
	Dependencies map[string]DependencyStatus `json:"dependencies"`
}

type Checker struct {
	dependencies []Dependency
	version      string
	timeout      time.Duration
}

func NewChecker(version string, dependencies ...Dependency) *Checker {
	return &Checker{
		dependencies: dependencies,
		version:      version,
		timeout:      defaultTimeout,
	}
}

// Check pings every dependency. One failure marks the whole service unhealthy.
func (c *Checker) Check(ctx context.Context) Status {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	status := Status{
		Status:       StatusHealthy,
		Version:      c.version,
		Dependencies: make(map[string]DependencyStatus, len(c.dependencies)),
	}

	for _, dep := range c.dependencies {
		if err := dep.Ping(ctx); err != nil {
			slog.WarnContext(ctx, "dependency unhealthy",
				slog.String("dependency", dep.Name()),
				slog.String("error", err.Error()),
			)

			status.Status = StatusUnhealthy
			status.Dependencies[dep.Name()] = DependencyStatus{Status: StatusUnhealthy}

			continue
		}

		status.Dependencies[dep.Name()] = DependencyStatus{Status: StatusHealthy}
	}

	return status
}
