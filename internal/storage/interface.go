package storage

import (
	"context"

	"github.com/chayapatp/topupstore/internal/model"
)

// Storage defines the interface for data persistence
type Storage interface {
	// Catalog operations. SaveGames replaces the whole catalog and
	// preserves load order.
	SaveGames(ctx context.Context, games []*model.Game) error
	GetGames(ctx context.Context) ([]*model.Game, error)
	GetGame(ctx context.Context, id model.GameID) (*model.Game, error)

	// Directory operations. SaveAccounts replaces the whole member set
	// and preserves load order.
	SaveAccounts(ctx context.Context, accounts []*model.Account) error
	GetAccounts(ctx context.Context) ([]*model.Account, error)

	// Remembered account operations, one entry per browser device.
	// This is the durable backing for the storefront persistence shim.
	SaveRememberedAccount(ctx context.Context, deviceID string, account *model.Account) error
	GetRememberedAccount(ctx context.Context, deviceID string) (*model.Account, error)
	ClearRememberedAccount(ctx context.Context, deviceID string) error
}
