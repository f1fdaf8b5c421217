package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/chayapatp/topupstore/internal/model"
	"github.com/chayapatp/topupstore/internal/storage"
)

// Storage is a Redis-backed implementation of the storage interface
type Storage struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &Storage{
		client: client,
		cfg:    cfg,
	}, nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	return &Storage{
		client: client,
		cfg:    cfg,
	}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Catalog operations
//
// The catalog is small and static, so the whole ordered set is stored as
// one JSON array. A save replaces it wholesale.

func (s *Storage) SaveGames(ctx context.Context, games []*model.Game) error {
	data, err := json.Marshal(games)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, catalogKey(), data, 0).Err()
}

func (s *Storage) GetGames(ctx context.Context) ([]*model.Game, error) {
	data, err := s.client.Get(ctx, catalogKey()).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrCatalogNotLoaded
		}
		return nil, err
	}

	var games []*model.Game
	if err := json.Unmarshal(data, &games); err != nil {
		return nil, err
	}
	return games, nil
}

func (s *Storage) GetGame(ctx context.Context, id model.GameID) (*model.Game, error) {
	games, err := s.GetGames(ctx)
	if err != nil {
		if errors.Is(err, model.ErrCatalogNotLoaded) {
			return nil, model.ErrGameNotFound
		}
		return nil, err
	}

	for _, g := range games {
		if g.ID == id {
			return g, nil
		}
	}
	return nil, model.ErrGameNotFound
}

// Directory operations

func (s *Storage) SaveAccounts(ctx context.Context, accounts []*model.Account) error {
	data, err := json.Marshal(accounts)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, directoryKey(), data, 0).Err()
}

func (s *Storage) GetAccounts(ctx context.Context) ([]*model.Account, error) {
	data, err := s.client.Get(ctx, directoryKey()).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrDirectoryNotLoaded
		}
		return nil, err
	}

	var accounts []*model.Account
	if err := json.Unmarshal(data, &accounts); err != nil {
		return nil, err
	}
	return accounts, nil
}

// Remembered account operations

func (s *Storage) SaveRememberedAccount(ctx context.Context, deviceID string, account *model.Account) error {
	data, err := json.Marshal(account)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, rememberKey(deviceID), data, s.cfg.RememberTTL).Err()
}

func (s *Storage) GetRememberedAccount(ctx context.Context, deviceID string) (*model.Account, error) {
	data, err := s.client.Get(ctx, rememberKey(deviceID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrNoRememberedAccount
		}
		return nil, err
	}

	var account model.Account
	if err := json.Unmarshal(data, &account); err != nil {
		// A corrupt entry reads as logged out rather than an error
		return nil, model.ErrNoRememberedAccount
	}
	return &account, nil
}

func (s *Storage) ClearRememberedAccount(ctx context.Context, deviceID string) error {
	return s.client.Del(ctx, rememberKey(deviceID)).Err()
}
