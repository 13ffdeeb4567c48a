package app

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"genie-relay/backend/internal/api"
	"genie-relay/backend/internal/auth"
	"genie-relay/backend/internal/config"
	"genie-relay/backend/internal/service"
)

// App holds the wired HTTP server.
type App struct {
	Server *http.Server
	Genie  *service.GenieService
}

func Run() int {
	cfg, err := config.LoadConfig()
	if err != nil {
		// slog is not yet configured, so use the default logger for this critical error.
		slog.Error("Failed to load configuration", "error", err)
		return 1
	}

	logger := setupLogger(cfg.LogLevel)
	logConfigSource(logger, cfg)

	app, err := NewApp(cfg, logger)
	if err != nil {
		logger.Error("Failed to initialize application", "error", err)
		return 1
	}

	logger.Info("Starting server", "port", cfg.AppPort, "transport", cfg.Transport)
	if err := app.Server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("Server failed", "error", err)
		return 1
	}

	return 0
}

// NewApp wires the Genie service, handlers and router behind an http.Server.
func NewApp(cfg *config.Config, logger *slog.Logger) (*App, error) {
	genieService, err := NewGenieService(cfg, logger)
	if err != nil {
		return nil, err
	}

	genieHandler := api.NewGenieHandler(genieService)
	router := api.NewRouter(genieHandler, cfg.StaticDir, cfg.CORSAllowedOrigins)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.AppPort),
		Handler:           router,
		ReadHeaderTimeout: 20 * time.Second,
		WriteTimeout:      0, // send-message waits on Genie for minutes
		IdleTimeout:       120 * time.Second,
	}

	return &App{Server: server, Genie: genieService}, nil
}

// NewGenieService builds the service from configuration. It is shared by the
// server and the command line client.
func NewGenieService(cfg *config.Config, logger *slog.Logger) (*service.GenieService, error) {
	factory, err := service.NewTransportFactory(cfg.Transport, cfg.HTTPTimeout)
	if err != nil {
		return nil, err
	}

	var resolver *auth.Resolver
	if cfg.Transport == config.TransportMock {
		// The mock transport ignores credentials; placeholders keep the resolver satisfied.
		resolver = auth.NewResolver(logger,
			auth.StaticSource{Label: "environment", Host: cfg.DatabricksHost, Token: cfg.DatabricksToken},
			auth.StaticSource{Label: "mock", Host: "https://mock.cloud.databricks.com", Token: "mock-token"},
		)
	} else {
		resolver = auth.NewResolver(logger, auth.DefaultSources(cfg)...)
	}

	return service.NewGenieService(cfg, resolver, factory, logger), nil
}

func logConfigSource(logger *slog.Logger, cfg *config.Config) {
	if cfg.FileUsed != "" {
		logger.Info("Successfully loaded configuration from file.", "file", cfg.FileUsed)
	} else {
		logger.Info("Configuration file not found. Using environment variables and defaults.")
	}
	if cfg.GenieSpaceID == "" {
		logger.Warn("DATABRICKS_GENIE_SPACE_ID is not set; send-message will fail until it is configured")
	}
}

func setupLogger(logLevel string) *slog.Logger {
	var level slog.Level
	switch strings.ToUpper(logLevel) {
	case "DEBUG":
		level = slog.LevelDebug
	case "WARN":
		level = slog.LevelWarn
	case "ERROR":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)
	return logger
}

