package factory

import (
	"errors"
	"io"
	"log/slog"

	"github.com/chayapatp/topupstore/internal/dependencies/clock"
	"github.com/chayapatp/topupstore/internal/services/auth"
	"github.com/chayapatp/topupstore/internal/services/catalog"
	"github.com/chayapatp/topupstore/internal/services/directory"
	"github.com/chayapatp/topupstore/internal/services/storefront"
	"github.com/chayapatp/topupstore/internal/services/topup"
	"github.com/chayapatp/topupstore/internal/storage"
	"github.com/chayapatp/topupstore/internal/storage/memory"
	redisstorage "github.com/chayapatp/topupstore/internal/storage/redis"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock clock.Clock

	// Services
	CatalogService   *catalog.Service
	DirectoryService *directory.Service
	TopUpService     *topup.Service
	AuthService      *auth.Service
	Registry         *storefront.Registry
}

// Config holds configuration for the application factory
type Config struct {
	// AuthConfig holds configuration for the auth service (optional)
	// If zero value, defaults to auth.DefaultConfig()
	AuthConfig auth.Config
	// StorefrontConfig holds configuration for storefront controllers (optional)
	StorefrontConfig storefront.Config
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory" or "redis")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	// Create storage based on type
	var store storage.Storage
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	switch storageType {
	case StorageTypeMemory:
		store = memory.New()
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		store = redisStore
	default:
		return nil, errors.New("invalid StorageType: must be 'memory' or 'redis'")
	}

	// Create external dependencies
	clk := clock.New()

	// Use default auth config if not provided
	authCfg := cfg.AuthConfig
	if authCfg.SessionDuration == 0 {
		authCfg = auth.DefaultConfig()
	}

	return newWithDependencies(store, clk, authCfg, cfg.StorefrontConfig, logger), nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.Storage, clk clock.Clock, authCfg auth.Config, sfCfg storefront.Config, logger *slog.Logger) *App {
	// Create services
	catalogService := catalog.New(store, logger)
	directoryService := directory.New(store, logger)
	topupService := topup.New()
	authService := auth.New(directoryService, clk, authCfg)
	registry := storefront.NewRegistry(directoryService, topupService, store, logger, sfCfg)

	return &App{
		Storage:          store,
		Clock:            clk,
		CatalogService:   catalogService,
		DirectoryService: directoryService,
		TopUpService:     topupService,
		AuthService:      authService,
		Registry:         registry,
	}
}
