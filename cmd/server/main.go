package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"syscall"

	"github.com/chayapatp/topupstore/internal/api"
	"github.com/chayapatp/topupstore/internal/factory"
	redisstorage "github.com/chayapatp/topupstore/internal/storage/redis"
	"github.com/chayapatp/topupstore/internal/web"
)

func main() {
	// Set up logging with JSON output
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Build factory config from environment
	cfg := factory.Config{
		Logger:      logger,
		StorageType: os.Getenv("STORAGE_TYPE"),
	}

	// Configure Redis if storage type is redis
	if cfg.StorageType == factory.StorageTypeRedis {
		redisURL := os.Getenv("REDIS_URL")
		if redisURL == "" {
			logger.Error("REDIS_URL required when STORAGE_TYPE=redis")
			os.Exit(1)
		}
		redisCfg := redisstorage.DefaultConfig()
		redisCfg.URL = redisURL
		cfg.RedisConfig = &redisCfg
	}

	// Create application factory
	app, err := factory.New(cfg)
	if err != nil {
		logger.Error("failed to create application", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Load the game catalog and member directory. A load failure is not
	// fatal; with Redis storage a previous run's data may still be there.
	ctx := context.Background()
	if err := app.CatalogService.LoadFromFile(ctx, dataPath("games.json")); err != nil {
		logger.Warn("could not load game catalog", slog.String("error", err.Error()))
		if err := app.CatalogService.LoadFromStorage(ctx); err != nil {
			logger.Warn("no catalog in storage either", slog.String("error", err.Error()))
		}
	}
	if err := app.DirectoryService.LoadFromFile(ctx, dataPath("members.json")); err != nil {
		logger.Warn("could not load member directory", slog.String("error", err.Error()))
		if err := app.DirectoryService.LoadFromStorage(ctx); err != nil {
			logger.Warn("no directory in storage either", slog.String("error", err.Error()))
		}
	}

	// Find static files directory
	staticDir := findStaticDir()

	// Create API router
	apiRouter := api.NewRouter(api.RouterConfig{
		Logger:         logger,
		AuthService:    app.AuthService,
		CatalogService: app.CatalogService,
		TopUpService:   app.TopUpService,
	})

	// Create web router
	webRouter := web.NewRouter(web.RouterConfig{
		Logger:         logger,
		CatalogService: app.CatalogService,
		Registry:       app.Registry,
		StaticDir:      staticDir,
	})

	// Combine routers
	mux := http.NewServeMux()
	mux.Handle("/api/", apiRouter)
	mux.Handle("/", webRouter)

	// Create server
	serverConfig, err := serverConfigFromEnv()
	if err != nil {
		logger.Error("invalid server configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}
	server := api.NewServer(mux, serverConfig, logger)

	// Handle graceful shutdown
	runCtx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		logger.Info("shutdown signal received")
		cancel()
	}()

	// Start server in goroutine
	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	logger.Info("server started", slog.String("addr", server.Addr()))

	// Wait for shutdown or error
	select {
	case err := <-errCh:
		if err != nil {
			logger.Error("server error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	case <-runCtx.Done():
		if err := server.Shutdown(context.Background()); err != nil {
			logger.Error("shutdown error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	logger.Info("server stopped")
}

// serverConfigFromEnv returns the HTTP server configuration, honouring PORT
func serverConfigFromEnv() (api.ServerConfig, error) {
	cfg := api.DefaultServerConfig()
	if port := os.Getenv("PORT"); port != "" {
		p, err := strconv.Atoi(port)
		if err != nil {
			return cfg, fmt.Errorf("invalid PORT %q", port)
		}
		cfg.Port = p
	}
	return cfg, nil
}

// dataPath resolves a file under the data directory, honouring DATA_DIR
func dataPath(name string) string {
	dir := os.Getenv("DATA_DIR")
	if dir == "" {
		dir = "data"
	}
	return filepath.Join(dir, name)
}

// findStaticDir looks for the static files directory
func findStaticDir() string {
	// Try common locations
	candidates := []string{
		"internal/web/static",
		"./internal/web/static",
		filepath.Join(os.Getenv("PWD"), "internal/web/static"),
	}

	for _, dir := range candidates {
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			return dir
		}
	}

	// Default to relative path
	return "internal/web/static"
}
