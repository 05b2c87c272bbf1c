package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/crastudio/crastudio"
	"github.com/crastudio/crastudio/infrastructure/api"
	"github.com/crastudio/crastudio/internal/log"
)

func serveCmd() *cobra.Command {
	var (
		envFile string
		host    string
		port    int
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API server",
		Long: `Start the HTTP API server.

Configuration is loaded in the following order (later sources override earlier):
  1. Default values
  2. .env file (if --env-file specified or .env exists in current directory)
  3. Environment variables
  4. Command line flags

Environment variables:
  HOST         Server host to bind to (default: 0.0.0.0)
  PORT         Server port to listen on (default: 8080)
  DATA_DIR     Data directory (default: .crastudio)
  DB_URL       Database URL (default: sqlite:///{data_dir}/crastudio.db)
  LOG_LEVEL    Log level: DEBUG, INFO, WARN, ERROR (default: INFO)
  LOG_FORMAT   Log format: pretty, json (default: pretty)
  API_KEYS     Comma-separated list of valid API keys`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(envFile, host, port)
		},
	}

	cmd.Flags().StringVar(&envFile, "env-file", "", "Path to .env file (default: .env in current directory)")
	cmd.Flags().StringVar(&host, "host", "", "Server host to bind to (default: 0.0.0.0)")
	cmd.Flags().IntVar(&port, "port", 0, "Server port to listen on (default: 8080)")

	return cmd
}

func runServe(envFile, host string, port int) error {
	cfg, err := loadConfig(envFile)
	if err != nil {
		return err
	}

	// Flags take precedence over env vars.
	cfg = cfg.WithHost(host).WithPort(port)
	addr := cfg.Addr()

	if err := cfg.EnsureDataDir(); err != nil {
		return fmt.Errorf("create data directory: %w", err)
	}

	logger := log.NewLogger(cfg)
	slogger := logger.Slog()

	opts := []crastudio.Option{
		crastudio.WithDataDir(cfg.DataDir()),
		crastudio.WithLogger(slogger),
	}
	if cfg.DBURL() != "" {
		opts = append(opts, crastudio.WithDatabaseURL(cfg.DBURL()))
	}
	if keys := cfg.APIKeys(); len(keys) > 0 {
		opts = append(opts, crastudio.WithAPIKeys(keys...))
	}

	slogger.Info("starting crastudio",
		slog.String("version", version),
		slog.String("addr", addr),
		slog.String("data_dir", cfg.DataDir()),
	)

	client, err := crastudio.New(opts...)
	if err != nil {
		return fmt.Errorf("create crastudio client: %w", err)
	}
	defer func() {
		if err := client.Close(); err != nil {
			slogger.Error("failed to close crastudio client", slog.Any("error", err))
		}
	}()

	server := api.NewServer(addr, slogger)

	apiServer := api.NewAPIServer(client, client.APIKeys())
	apiServer.MountRoutes()
	server.Router().Mount("/", apiServer.Handler())

	server.Router().Get("/health", healthHandler)
	server.Router().Get("/healthz", healthHandler)

	server.Router().Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = fmt.Fprintf(w, `{"name":"crastudio","version":"%s"}`, version)
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigChan
		slogger.Info("shutting down server")
		cancel()
		if err := server.Shutdown(ctx); err != nil {
			slogger.Error("shutdown error", slog.Any("error", err))
		}
	}()

	if err := server.Start(); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

func healthHandler(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"healthy"}`))
}
