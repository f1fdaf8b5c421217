package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/chayapatp/topupstore/internal/model"
)

type StorageSuite struct {
	suite.Suite
	mini    *miniredis.Miniredis
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.mini = miniredis.RunT(s.T())

	client := redis.NewClient(&redis.Options{
		Addr: s.mini.Addr(),
	})

	cfg := DefaultConfig()
	cfg.RememberTTL = time.Hour

	s.storage = NewWithClient(client, cfg)
	s.ctx = context.Background()
}

func (s *StorageSuite) TearDownTest() {
	if s.storage != nil {
		_ = s.storage.Close()
	}
	if s.mini != nil {
		s.mini.Close()
	}
}

// Catalog tests

func (s *StorageSuite) TestSaveAndGetGames() {
	games := []*model.Game{
		{ID: 1, Name: "Valorant", Description: "เกมยิง 5v5"},
		{ID: 2, Name: "Free Fire"},
	}

	err := s.storage.SaveGames(s.ctx, games)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetGames(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(retrieved, 2)
	s.Equal("Valorant", retrieved[0].Name)
	s.Equal("เกมยิง 5v5", retrieved[0].Description)
}

func (s *StorageSuite) TestGetGamesBeforeSave() {
	_, err := s.storage.GetGames(s.ctx)
	s.ErrorIs(err, model.ErrCatalogNotLoaded)
}

func (s *StorageSuite) TestSaveGamesReplacesCatalog() {
	_ = s.storage.SaveGames(s.ctx, []*model.Game{{ID: 1, Name: "Valorant"}})
	_ = s.storage.SaveGames(s.ctx, []*model.Game{{ID: 2, Name: "RoV"}})

	retrieved, err := s.storage.GetGames(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(retrieved, 1)
	s.Equal("RoV", retrieved[0].Name)
}

func (s *StorageSuite) TestGetGame() {
	_ = s.storage.SaveGames(s.ctx, []*model.Game{
		{ID: 1, Name: "Valorant"},
		{ID: 2, Name: "Free Fire"},
	})

	game, err := s.storage.GetGame(s.ctx, 2)
	s.Require().NoError(err)
	s.Equal("Free Fire", game.Name)
}

func (s *StorageSuite) TestGetGameNotFound() {
	_ = s.storage.SaveGames(s.ctx, []*model.Game{{ID: 1, Name: "Valorant"}})

	_, err := s.storage.GetGame(s.ctx, 999)
	s.ErrorIs(err, model.ErrGameNotFound)
}

func (s *StorageSuite) TestGetGameOnEmptyCatalog() {
	_, err := s.storage.GetGame(s.ctx, 1)
	s.ErrorIs(err, model.ErrGameNotFound)
}

// Directory tests

func (s *StorageSuite) TestSaveAndGetAccounts() {
	accounts := []*model.Account{
		{ID: 1, Email: "a@x.com", Password: "right", FullName: "สมชาย ใจดี"},
	}

	err := s.storage.SaveAccounts(s.ctx, accounts)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetAccounts(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(retrieved, 1)
	s.Equal("สมชาย ใจดี", retrieved[0].FullName)
}

func (s *StorageSuite) TestGetAccountsBeforeSave() {
	_, err := s.storage.GetAccounts(s.ctx)
	s.ErrorIs(err, model.ErrDirectoryNotLoaded)
}

// Remembered account tests

func (s *StorageSuite) TestSaveAndGetRememberedAccount() {
	account := &model.Account{ID: 1, Email: "a@x.com"}

	err := s.storage.SaveRememberedAccount(s.ctx, "dev_1", account)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetRememberedAccount(s.ctx, "dev_1")
	s.Require().NoError(err)
	s.Equal("a@x.com", retrieved.Email)
}

func (s *StorageSuite) TestGetRememberedAccountAbsent() {
	_, err := s.storage.GetRememberedAccount(s.ctx, "dev_unknown")
	s.ErrorIs(err, model.ErrNoRememberedAccount)
}

func (s *StorageSuite) TestRememberedAccountExpires() {
	_ = s.storage.SaveRememberedAccount(s.ctx, "dev_1", &model.Account{ID: 1})

	s.mini.FastForward(2 * time.Hour)

	_, err := s.storage.GetRememberedAccount(s.ctx, "dev_1")
	s.ErrorIs(err, model.ErrNoRememberedAccount)
}

func (s *StorageSuite) TestMalformedRememberedEntryReadsAsAbsent() {
	s.Require().NoError(s.mini.Set(rememberKey("dev_1"), "{not json"))

	_, err := s.storage.GetRememberedAccount(s.ctx, "dev_1")
	s.ErrorIs(err, model.ErrNoRememberedAccount)
}

func (s *StorageSuite) TestClearRememberedAccount() {
	_ = s.storage.SaveRememberedAccount(s.ctx, "dev_1", &model.Account{ID: 1})

	err := s.storage.ClearRememberedAccount(s.ctx, "dev_1")
	s.Require().NoError(err)

	_, err = s.storage.GetRememberedAccount(s.ctx, "dev_1")
	s.ErrorIs(err, model.ErrNoRememberedAccount)
}
