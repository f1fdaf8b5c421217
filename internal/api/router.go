package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/chayapatp/topupstore/internal/api/handler"
	"github.com/chayapatp/topupstore/internal/api/middleware"
	"github.com/chayapatp/topupstore/internal/services/auth"
	"github.com/chayapatp/topupstore/internal/services/catalog"
	"github.com/chayapatp/topupstore/internal/services/topup"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger         *slog.Logger
	AuthService    *auth.Service
	CatalogService *catalog.Service
	TopUpService   *topup.Service
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create handlers
	authHandler := handler.NewAuthHandler(cfg.AuthService)
	gameHandler := handler.NewGameHandler(cfg.CatalogService, cfg.TopUpService)

	// Create middleware
	authMiddleware := middleware.Auth(cfg.AuthService)
	loggingMiddleware := middleware.Logging(cfg.Logger)
	recoveryMiddleware := middleware.Recovery(cfg.Logger)

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(recoveryMiddleware)
	api.Use(loggingMiddleware)

	// Auth routes (login requires no session)
	api.HandleFunc("/auth/login", authHandler.Login).Methods(http.MethodPost)

	authed := api.NewRoute().Subrouter()
	authed.Use(authMiddleware)
	authed.HandleFunc("/auth/logout", authHandler.Logout).Methods(http.MethodPost)
	authed.HandleFunc("/me", authHandler.GetMe).Methods(http.MethodGet)

	// Catalog routes (browsing requires a session, matching the storefront)
	games := api.PathPrefix("/games").Subrouter()
	games.Use(authMiddleware)
	games.HandleFunc("", gameHandler.List).Methods(http.MethodGet)
	games.HandleFunc("/{id}", gameHandler.Get).Methods(http.MethodGet)
	games.HandleFunc("/{id}/topup", gameHandler.TopUp).Methods(http.MethodPost)

	// Health check endpoint (no auth)
	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
