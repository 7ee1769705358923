// Package server assembles the HTTP surface and runs it until the context is
// cancelled.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"time"

	serverconfig "github.com/KasumiMercury/primind-task-api/internal/config/server"
	"github.com/KasumiMercury/primind-task-api/internal/docs"
	"github.com/KasumiMercury/primind-task-api/internal/health"
	"github.com/KasumiMercury/primind-task-api/internal/observability/middleware"
	taskmodule "github.com/KasumiMercury/primind-task-api/internal/task"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const (
	DocsPath   = "/api-docs"
	HealthPath = "/health"

	readHeaderTimeout = 5 * time.Second
	idleTimeout       = 60 * time.Second
)

type Options struct {
	Config       *serverconfig.Config
	Repositories taskmodule.Repositories
	Dependencies []health.Dependency
	Version      string
}

func NewHandler(ctx context.Context, opts Options) (http.Handler, error) {
	if opts.Config == nil {
		return nil, ErrConfigRequired
	}

	doc, err := docs.Load(opts.Config.PublicURL())
	if err != nil {
		return nil, err
	}

	taskPath, taskHandler, err := taskmodule.NewHTTPHandler(ctx, opts.Repositories, doc)
	if err != nil {
		return nil, err
	}

	r := chi.NewRouter()
	r.Use(middleware.RouteSpanName)
	r.Use(middleware.PanicRecoveryHTTP)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: opts.Config.CORSAllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", middleware.RequestIDHeader, "traceparent", "tracestate"},
		ExposedHeaders: []string{middleware.RequestIDHeader},
		MaxAge:         300,
	}))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "route not found"})
	})

	r.Mount(taskPath, taskHandler)
	r.Mount(DocsPath, docs.Handler(doc, DocsPath))
	r.Mount(HealthPath, health.NewChecker(opts.Version, opts.Dependencies...).Routes())

	// The span starts before routing; RouteSpanName renames it to the matched pattern.
	return otelhttp.NewHandler(r, "taskapi",
		otelhttp.WithSpanNameFormatter(func(_ string, r *http.Request) string {
			return r.Method
		}),
	), nil
}

type Server struct {
	httpServer      *http.Server
	shutdownTimeout time.Duration
}

func New(cfg *serverconfig.Config, handler http.Handler) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              cfg.Addr(),
			Handler:           handler,
			ReadHeaderTimeout: readHeaderTimeout,
			IdleTimeout:       idleTimeout,
		},
		shutdownTimeout: cfg.ShutdownTimeout,
	}
}

// Run blocks until ctx is cancelled or the listener fails. In-flight requests
// get the shutdown timeout to finish.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.httpServer.Addr)
	if err != nil {
		return err
	}

	return s.Serve(ctx, ln)
}

func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	errCh := make(chan error, 1)

	go func() {
		slog.InfoContext(ctx, "task api listening", slog.String("addr", ln.Addr().String()))

		errCh <- s.httpServer.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}

		return err
	case <-ctx.Done():
	}

	slog.Info("shutting down task api", slog.Duration("timeout", s.shutdownTimeout))

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.shutdownTimeout)
	defer cancel()

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return err
	}

	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
