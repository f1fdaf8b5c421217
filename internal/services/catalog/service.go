package catalog

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"sync"

	"github.com/chayapatp/topupstore/internal/model"
	"github.com/chayapatp/topupstore/internal/storage"
)

// Service holds the loaded game catalog.
//
// The catalog is loaded once at startup from the static source. A failed
// load leaves the previously held set unchanged (or empty if none has
// loaded) and is reported to the logger only; it is never surfaced to
// the user.
type Service struct {
	storage storage.Storage
	logger  *slog.Logger

	mu    sync.RWMutex
	games []*model.Game
	index map[model.GameID]*model.Game
}

// New creates a new catalog Service
func New(st storage.Storage, logger *slog.Logger) *Service {
	return &Service{
		storage: st,
		logger:  logger,
		index:   make(map[model.GameID]*model.Game),
	}
}

// LoadFromFile loads the catalog from a static JSON file and saves it
// to storage for future use. On failure the current set is retained.
func (s *Service) LoadFromFile(ctx context.Context, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		s.logger.Error("failed to load games data", slog.String("path", path), slog.String("error", err.Error()))
		return err
	}

	var games []*model.Game
	if err := json.Unmarshal(data, &games); err != nil {
		s.logger.Error("failed to parse games data", slog.String("path", path), slog.String("error", err.Error()))
		return err
	}

	if err := s.storage.SaveGames(ctx, games); err != nil {
		return err
	}

	s.setGames(games)
	return nil
}

// LoadFromStorage loads the catalog previously saved to storage
func (s *Service) LoadFromStorage(ctx context.Context) error {
	games, err := s.storage.GetGames(ctx)
	if err != nil {
		return err
	}
	s.setGames(games)
	return nil
}

func (s *Service) setGames(games []*model.Game) {
	index := make(map[model.GameID]*model.Game, len(games))
	for _, g := range games {
		index[g.ID] = g
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.games = games
	s.index = index
}

// Games returns the catalog in load order. The returned slice is a copy;
// entries are shared and must not be mutated.
func (s *Service) Games() []*model.Game {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]*model.Game, len(s.games))
	copy(result, s.games)
	return result
}

// Game returns the catalog entry with the given id
func (s *Service) Game(id model.GameID) (*model.Game, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	game, ok := s.index[id]
	if !ok {
		return nil, model.ErrGameNotFound
	}
	return game, nil
}

// Loaded returns whether any catalog has been loaded
func (s *Service) Loaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.games != nil
}

// Count returns the number of games in the catalog
func (s *Service) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.games)
}
