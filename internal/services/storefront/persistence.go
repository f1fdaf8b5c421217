package storefront

import (
	"context"
	"errors"
	"sync"

	"github.com/chayapatp/topupstore/internal/model"
	"github.com/chayapatp/topupstore/internal/storage"
)

// Persistence is the durable boundary that remembers the logged-in
// account across restarts. Load reports absence rather than failing
// when nothing (or something malformed) is stored.
type Persistence interface {
	Save(account model.Account) error
	Load() (model.Account, bool, error)
	Clear() error
}

// StorageShim binds the Persistence contract to the storage layer for
// one browser device.
type StorageShim struct {
	storage  storage.Storage
	deviceID string
}

// Ensure StorageShim implements Persistence
var _ Persistence = (*StorageShim)(nil)

// NewStorageShim creates a shim persisting under the given device id
func NewStorageShim(st storage.Storage, deviceID string) *StorageShim {
	return &StorageShim{
		storage:  st,
		deviceID: deviceID,
	}
}

// Save durably stores the account, replacing any previous value
func (s *StorageShim) Save(account model.Account) error {
	return s.storage.SaveRememberedAccount(context.Background(), s.deviceID, &account)
}

// Load returns the stored account if present and well-formed
func (s *StorageShim) Load() (model.Account, bool, error) {
	account, err := s.storage.GetRememberedAccount(context.Background(), s.deviceID)
	if err != nil {
		if errors.Is(err, model.ErrNoRememberedAccount) {
			return model.Account{}, false, nil
		}
		return model.Account{}, false, err
	}
	return *account, true, nil
}

// Clear removes any stored value
func (s *StorageShim) Clear() error {
	return s.storage.ClearRememberedAccount(context.Background(), s.deviceID)
}

// MemoryShim is an in-memory Persistence for tests
type MemoryShim struct {
	mu      sync.Mutex
	account model.Account
	present bool
}

// Ensure MemoryShim implements Persistence
var _ Persistence = (*MemoryShim)(nil)

// NewMemoryShim creates an empty in-memory shim
func NewMemoryShim() *MemoryShim {
	return &MemoryShim{}
}

// Save stores the account
func (s *MemoryShim) Save(account model.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.account = account
	s.present = true
	return nil
}

// Load returns the stored account if any
func (s *MemoryShim) Load() (model.Account, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.account, s.present, nil
}

// Clear removes the stored account
func (s *MemoryShim) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.account = model.Account{}
	s.present = false
	return nil
}
