package storefront

import (
	"log/slog"
	"sync"

	"github.com/chayapatp/topupstore/internal/services/directory"
	"github.com/chayapatp/topupstore/internal/services/topup"
	"github.com/chayapatp/topupstore/internal/storage"
)

// Registry hands out one Controller per browser device. Controllers are
// created lazily; a new one restores its session through a storage shim
// keyed by the device id, which is what makes a login survive a server
// restart.
type Registry struct {
	directory *directory.Service
	topup     *topup.Service
	storage   storage.Storage
	logger    *slog.Logger
	cfg       Config

	mu          sync.Mutex
	controllers map[string]*Controller
}

// NewRegistry creates an empty controller registry
func NewRegistry(dir *directory.Service, tps *topup.Service, st storage.Storage, logger *slog.Logger, cfg Config) *Registry {
	return &Registry{
		directory:   dir,
		topup:       tps,
		storage:     st,
		logger:      logger,
		cfg:         cfg,
		controllers: make(map[string]*Controller),
	}
}

// Controller returns the controller for the given device, creating it
// on first use
func (r *Registry) Controller(deviceID string) *Controller {
	r.mu.Lock()
	defer r.mu.Unlock()

	if c, ok := r.controllers[deviceID]; ok {
		return c
	}

	shim := NewStorageShim(r.storage, deviceID)
	c := New(r.directory, r.topup, shim, r.logger, r.cfg)
	r.controllers[deviceID] = c
	return c
}

// Forget drops a device's controller so the next request rebuilds it
// from persistence
func (r *Registry) Forget(deviceID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.controllers, deviceID)
}
