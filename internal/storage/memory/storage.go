package memory

import (
	"context"
	"sync"

	"github.com/chayapatp/topupstore/internal/model"
	"github.com/chayapatp/topupstore/internal/storage"
)

// Storage is an in-memory implementation of the storage interface
type Storage struct {
	mu sync.RWMutex

	games      []*model.Game
	gameIndex  map[model.GameID]*model.Game
	accounts   []*model.Account
	remembered map[string]*model.Account
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		gameIndex:  make(map[model.GameID]*model.Game),
		remembered: make(map[string]*model.Account),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Catalog operations

func (s *Storage) SaveGames(ctx context.Context, games []*model.Game) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.games = make([]*model.Game, len(games))
	copy(s.games, games)
	s.gameIndex = make(map[model.GameID]*model.Game, len(games))
	for _, g := range games {
		s.gameIndex[g.ID] = g
	}
	return nil
}

func (s *Storage) GetGames(ctx context.Context) ([]*model.Game, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.games == nil {
		return nil, model.ErrCatalogNotLoaded
	}
	result := make([]*model.Game, len(s.games))
	copy(result, s.games)
	return result, nil
}

func (s *Storage) GetGame(ctx context.Context, id model.GameID) (*model.Game, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	game, ok := s.gameIndex[id]
	if !ok {
		return nil, model.ErrGameNotFound
	}
	return game, nil
}

// Directory operations

func (s *Storage) SaveAccounts(ctx context.Context, accounts []*model.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accounts = make([]*model.Account, len(accounts))
	copy(s.accounts, accounts)
	return nil
}

func (s *Storage) GetAccounts(ctx context.Context) ([]*model.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.accounts == nil {
		return nil, model.ErrDirectoryNotLoaded
	}
	result := make([]*model.Account, len(s.accounts))
	copy(result, s.accounts)
	return result, nil
}

// Remembered account operations

func (s *Storage) SaveRememberedAccount(ctx context.Context, deviceID string, account *model.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.remembered[deviceID] = account
	return nil
}

func (s *Storage) GetRememberedAccount(ctx context.Context, deviceID string) (*model.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	account, ok := s.remembered[deviceID]
	if !ok {
		return nil, model.ErrNoRememberedAccount
	}
	return account, nil
}

func (s *Storage) ClearRememberedAccount(ctx context.Context, deviceID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.remembered, deviceID)
	return nil
}
