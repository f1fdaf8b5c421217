package web

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/chayapatp/topupstore/internal/services/catalog"
	"github.com/chayapatp/topupstore/internal/services/storefront"
	"github.com/chayapatp/topupstore/internal/web/handler"
	"github.com/chayapatp/topupstore/internal/web/middleware"
)

// RouterConfig holds configuration for the web router
type RouterConfig struct {
	Logger         *slog.Logger
	CatalogService *catalog.Service
	Registry       *storefront.Registry
	StaticDir      string // Path to static files directory
}

// NewRouter creates a new web router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create middleware
	loggingMiddleware := middleware.Logging(cfg.Logger)
	recoveryMiddleware := middleware.Recovery(cfg.Logger)
	flashMiddleware := middleware.Flash()
	deviceMiddleware := middleware.Device(cfg.Registry)

	// Apply global middleware to all routes
	r.Use(recoveryMiddleware)
	r.Use(loggingMiddleware)

	// Create handlers
	homeHandler := handler.NewHomeHandler(cfg.CatalogService)
	authHandler := handler.NewAuthHandler()
	profileHandler := handler.NewProfileHandler()
	gameHandler := handler.NewGameHandler(cfg.CatalogService)

	// Static files
	if cfg.StaticDir != "" {
		staticHandler := http.StripPrefix("/static/", http.FileServer(http.Dir(cfg.StaticDir)))
		r.PathPrefix("/static/").Handler(staticHandler)
	}

	// All pages share the flash + device middleware; session guards
	// live in the controller, not in the router
	store := r.NewRoute().Subrouter()
	store.Use(flashMiddleware)
	store.Use(deviceMiddleware)

	store.HandleFunc("/", homeHandler.Home).Methods(http.MethodGet)
	store.HandleFunc("/login", authHandler.LoginPage).Methods(http.MethodGet)
	store.HandleFunc("/login", authHandler.Login).Methods(http.MethodPost)
	store.HandleFunc("/logout", authHandler.Logout).Methods(http.MethodPost)
	store.HandleFunc("/profile", profileHandler.Profile).Methods(http.MethodGet)
	store.HandleFunc("/games/{id}", gameHandler.View).Methods(http.MethodGet)
	store.HandleFunc("/games/{id}/topup", gameHandler.TopUp).Methods(http.MethodPost)

	return r
}
