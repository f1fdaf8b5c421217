package response

import (
	"github.com/chayapatp/topupstore/internal/model"
	"github.com/chayapatp/topupstore/internal/services/auth"
	"github.com/chayapatp/topupstore/internal/services/topup"
)

// Account represents a member account in API responses.
// Passwords never leave the directory.
type Account struct {
	ID       int    `json:"id"`
	Email    string `json:"email"`
	FullName string `json:"fullname"`
	Image    string `json:"image"`
	Role     string `json:"role"`
}

// AccountFromModel converts a model.Account to a response Account
func AccountFromModel(a *model.Account) Account {
	return Account{
		ID:       int(a.ID),
		Email:    a.Email,
		FullName: a.FullName,
		Image:    a.Image,
		Role:     a.Role,
	}
}

// AuthResponse is the response for authentication endpoints
type AuthResponse struct {
	Account      Account `json:"account"`
	SessionToken string  `json:"session_token"`
}

// AuthResponseFromSession creates an AuthResponse from a session
func AuthResponseFromSession(s *auth.Session) AuthResponse {
	return AuthResponse{
		Account:      AccountFromModel(&s.Account),
		SessionToken: s.Token,
	}
}

// Game represents a catalog entry in API responses
type Game struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Image       string `json:"image"`
	Description string `json:"description"`
	Link        string `json:"link"`
}

// GameFromModel converts a model.Game to a response Game
func GameFromModel(g *model.Game) Game {
	return Game{
		ID:          int(g.ID),
		Name:        g.Name,
		Image:       g.Image,
		Description: g.Description,
		Link:        g.Link,
	}
}

// GameList is the response for the catalog listing
type GameList struct {
	Games []Game `json:"games"`
}

// GameListFromModel converts a catalog slice to a GameList
func GameListFromModel(games []*model.Game) GameList {
	out := make([]Game, len(games))
	for i, g := range games {
		out[i] = GameFromModel(g)
	}
	return GameList{Games: out}
}

// TopUpResponse is the response after submitting a top-up
type TopUpResponse struct {
	OK      bool   `json:"ok"`
	Message string `json:"message"`
}

// TopUpResponseFromResult converts a topup.Result
func TopUpResponseFromResult(r topup.Result) TopUpResponse {
	return TopUpResponse{
		OK:      r.OK,
		Message: r.Message,
	}
}
