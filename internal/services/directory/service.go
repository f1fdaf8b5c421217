package directory

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"os"
	"strings"
	"sync"

	"golang.org/x/crypto/bcrypt"

	"github.com/chayapatp/topupstore/internal/model"
	"github.com/chayapatp/topupstore/internal/storage"
)

// ErrInvalidCredentials is returned for any authentication mismatch.
// It deliberately does not distinguish an unknown email from a wrong
// password.
var ErrInvalidCredentials = errors.New("invalid credentials")

// Service holds the loaded member directory and answers credential
// lookups against it. Like the catalog, the directory is loaded once at
// startup; a failed load keeps the previous set and is only logged.
type Service struct {
	storage storage.Storage
	logger  *slog.Logger

	mu       sync.RWMutex
	accounts []*model.Account
}

// New creates a new directory Service
func New(st storage.Storage, logger *slog.Logger) *Service {
	return &Service{
		storage: st,
		logger:  logger,
	}
}

// LoadFromFile loads the member directory from a static JSON file and
// saves it to storage for future use
func (s *Service) LoadFromFile(ctx context.Context, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		s.logger.Error("failed to load members data", slog.String("path", path), slog.String("error", err.Error()))
		return err
	}

	var accounts []*model.Account
	if err := json.Unmarshal(data, &accounts); err != nil {
		s.logger.Error("failed to parse members data", slog.String("path", path), slog.String("error", err.Error()))
		return err
	}

	if err := s.storage.SaveAccounts(ctx, accounts); err != nil {
		return err
	}

	s.setAccounts(accounts)
	return nil
}

// LoadFromStorage loads the directory previously saved to storage
func (s *Service) LoadFromStorage(ctx context.Context) error {
	accounts, err := s.storage.GetAccounts(ctx)
	if err != nil {
		return err
	}
	s.setAccounts(accounts)
	return nil
}

func (s *Service) setAccounts(accounts []*model.Account) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accounts = accounts
}

// Accounts returns the directory in load order. The returned slice is a
// copy; entries are shared and must not be mutated.
func (s *Service) Accounts() []*model.Account {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]*model.Account, len(s.accounts))
	copy(result, s.accounts)
	return result
}

// Loaded returns whether any directory has been loaded
func (s *Service) Loaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.accounts != nil
}

// Authenticate finds the account matching the given credentials.
// Accounts are checked in load order and the first match wins.
func (s *Service) Authenticate(email, password string) (*model.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, account := range s.accounts {
		if account.Email != email {
			continue
		}
		if passwordMatches(account.Password, password) {
			return account, nil
		}
	}
	return nil, ErrInvalidCredentials
}

// passwordMatches compares a supplied password against the stored value.
// The static member file holds plaintext passwords which compare by
// equality; entries provisioned as bcrypt hashes compare with bcrypt.
func passwordMatches(stored, supplied string) bool {
	if strings.HasPrefix(stored, "$2a$") || strings.HasPrefix(stored, "$2b$") || strings.HasPrefix(stored, "$2y$") {
		return bcrypt.CompareHashAndPassword([]byte(stored), []byte(supplied)) == nil
	}
	return stored == supplied
}
