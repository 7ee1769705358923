package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/KasumiMercury/primind-task-api/internal/config"
	serverconfig "github.com/KasumiMercury/primind-task-api/internal/config/server"
	"github.com/KasumiMercury/primind-task-api/internal/docs"
	"github.com/KasumiMercury/primind-task-api/internal/health"
	"github.com/KasumiMercury/primind-task-api/internal/server"
	"github.com/urfave/cli/v3"
)

// newRootCommand runs serve when no subcommand is given.
func newRootCommand() *cli.Command {
	return &cli.Command{
		Name:    "taskapi",
		Usage:   "Task CRUD REST API",
		Version: Version,
		Commands: []*cli.Command{
			newServeCommand(),
			newOpenAPICommand(),
		},
		Flags:  []cli.Flag{portFlag()},
		Action: runServe,
	}
}

func newServeCommand() *cli.Command {
	return &cli.Command{
		Name:   "serve",
		Usage:  "Start the HTTP server",
		Flags:  []cli.Flag{portFlag()},
		Action: runServe,
	}
}

func portFlag() cli.Flag {
	return &cli.IntFlag{
		Name:  "port",
		Usage: "Port to listen on (overrides PORT)",
	}
}

func newOpenAPICommand() *cli.Command {
	return &cli.Command{
		Name:  "openapi",
		Usage: "Print the OpenAPI document as JSON",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "server-url",
				Usage: "Server URL written into the document (defaults to API_URL)",
			},
		},
		Action: runOpenAPI,
	}
}

func runServe(ctx context.Context, cmd *cli.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	if cmd.IsSet("port") {
		cfg.Server = cfg.Server.WithPort(int(cmd.Int("port")))
		if err := cfg.Server.Validate(); err != nil {
			return err
		}
	}

	obs, err := initObservability(ctx)
	if err != nil {
		return fmt.Errorf("init observability: %w", err)
	}

	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
		defer cancel()

		if err := obs.Shutdown(shutdownCtx); err != nil {
			slog.Warn("failed to shut down tracing", slog.String("error", err.Error()))
		}
	}()

	store, err := server.OpenStore(ctx, cfg.Persistence)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}

	defer func() {
		closeCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.Server.ShutdownTimeout)
		defer cancel()

		if err := store.Close(closeCtx); err != nil {
			slog.Warn("failed to close store", slog.String("error", err.Error()))
		}
	}()

	handler, err := server.NewHandler(ctx, server.Options{
		Config:       cfg.Server,
		Repositories: store.Repositories,
		Dependencies: []health.Dependency{store.Dependency},
		Version:      Version,
	})
	if err != nil {
		return fmt.Errorf("build handler: %w", err)
	}

	slog.InfoContext(ctx, "starting task api",
		slog.String("driver", string(cfg.Persistence.Driver)),
		slog.String("addr", cfg.Server.Addr()),
		slog.String("docs", cfg.Server.PublicURL()+server.DocsPath),
	)

	return server.New(cfg.Server, handler).Run(ctx)
}

func runOpenAPI(_ context.Context, cmd *cli.Command) error {
	serverURL := cmd.String("server-url")
	if serverURL == "" {
		serverCfg, err := serverconfig.Load()
		if err != nil {
			return err
		}

		serverURL = serverCfg.PublicURL()
	}

	doc, err := docs.Load(serverURL)
	if err != nil {
		return err
	}

	body, err := doc.JSON()
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(cmd.Root().Writer, string(body))

	return err
}
