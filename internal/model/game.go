package model

// GameID uniquely identifies a game in the catalog
type GameID int

// Game is one entry in the storefront catalog.
// The catalog is loaded once from the static source and treated as
// immutable afterwards.
type Game struct {
	ID          GameID `json:"id"`
	Name        string `json:"name"`
	Image       string `json:"image"`
	Description string `json:"description"`
	Link        string `json:"link"`
}
