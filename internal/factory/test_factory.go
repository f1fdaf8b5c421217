package factory

import (
	"context"
	"time"

	"github.com/chayapatp/topupstore/internal/dependencies/mocks"
	"github.com/chayapatp/topupstore/internal/model"
	"github.com/chayapatp/topupstore/internal/services/auth"
	"github.com/chayapatp/topupstore/internal/services/storefront"
	"github.com/chayapatp/topupstore/internal/storage/memory"
	"github.com/chayapatp/topupstore/internal/testutil"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock *mocks.MockClock
}

// NewTestApp creates an App configured for testing with mocked dependencies
func NewTestApp() *TestApp {
	store := memory.New()
	mockClock := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))

	app := newWithDependencies(store, mockClock, auth.DefaultConfig(), storefront.Config{}, testutil.NopLogger())

	return &TestApp{
		App:       app,
		MockClock: mockClock,
	}
}

// TestGames returns the catalog fixture used across the test suite
func TestGames() []*model.Game {
	return []*model.Game{
		{ID: 1, Name: "Valorant", Image: "/static/images/valorant.jpg", Description: "เกมยิง 5v5 สุดมันส์", Link: "https://playvalorant.com"},
		{ID: 2, Name: "Free Fire", Image: "/static/images/freefire.jpg", Description: "แบทเทิลรอยัลยอดนิยม", Link: "https://ff.garena.com"},
		{ID: 3, Name: "RoV", Image: "/static/images/rov.jpg", Description: "โมบา 5v5 อันดับหนึ่ง", Link: "https://rov.in.th"},
	}
}

// TestAccounts returns the member directory fixture used across the test suite
func TestAccounts() []*model.Account {
	return []*model.Account{
		{ID: 1, Email: "a@x.com", Password: "right", FullName: "สมชาย ใจดี", Image: "/static/images/members/somchai.jpg", Role: "member"},
		{ID: 2, Email: "b@x.com", Password: "secret2", FullName: "สมหญิง สายเกม", Image: "/static/images/members/somying.jpg", Role: "member"},
	}
}

// LoadTestData seeds the catalog and member directory with fixtures
func (t *TestApp) LoadTestData() error {
	ctx := context.Background()
	if err := t.Storage.SaveGames(ctx, TestGames()); err != nil {
		return err
	}
	if err := t.Storage.SaveAccounts(ctx, TestAccounts()); err != nil {
		return err
	}
	if err := t.CatalogService.LoadFromStorage(ctx); err != nil {
		return err
	}
	return t.DirectoryService.LoadFromStorage(ctx)
}
