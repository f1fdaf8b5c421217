package cli

import (
	"encoding/json"
	"fmt"
	"os"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		errData := map[string]any{
			"error": map[string]string{
				"message": err.Error(),
			},
		}
		data, _ := json.Marshal(errData)
		fmt.Fprintln(os.Stderr, string(data))
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Println(string(data))
	} else {
		fmt.Println(msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case Account:
		o.printAccount(v)
	case AuthResult:
		o.printAuthResult(v)
	case Game:
		o.printGame(v)
	case GameList:
		o.printGameList(v)
	case TopUpResult:
		o.printTopUpResult(v)
	case HealthResult:
		o.printHealthResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// Account response type (matches API)
type Account struct {
	ID       int    `json:"id"`
	Email    string `json:"email"`
	FullName string `json:"fullname"`
	Role     string `json:"role"`
}

// AuthResult combines account and token
type AuthResult struct {
	Account      Account `json:"account"`
	SessionToken string  `json:"session_token"`
}

// Game response type
type Game struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Image       string `json:"image"`
	Description string `json:"description"`
	Link        string `json:"link"`
}

// GameList response type
type GameList struct {
	Games []Game `json:"games"`
}

// TopUpResult response type
type TopUpResult struct {
	OK      bool   `json:"ok"`
	Message string `json:"message"`
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

func (o *Output) printAccount(a Account) {
	fmt.Printf("Account: %s (%d)\n", a.FullName, a.ID)
	fmt.Printf("Email: %s\n", a.Email)
	if a.Role != "" {
		fmt.Printf("Role: %s\n", a.Role)
	}
}

func (o *Output) printAuthResult(a AuthResult) {
	o.printAccount(a.Account)
	fmt.Printf("Token: %s\n", a.SessionToken)
}

func (o *Output) printGame(g Game) {
	fmt.Printf("Game: %s (%d)\n", g.Name, g.ID)
	if g.Description != "" {
		fmt.Printf("Description: %s\n", g.Description)
	}
	if g.Link != "" {
		fmt.Printf("Link: %s\n", g.Link)
	}
}

func (o *Output) printGameList(l GameList) {
	fmt.Printf("Games (%d):\n", len(l.Games))
	for _, g := range l.Games {
		fmt.Printf("  %d. %s\n", g.ID, g.Name)
	}
}

func (o *Output) printTopUpResult(r TopUpResult) {
	if r.OK {
		fmt.Println("Top-up accepted")
	} else {
		fmt.Println("Top-up rejected")
	}
	fmt.Println(r.Message)
}

func (o *Output) printHealthResult(h HealthResult) {
	fmt.Printf("Status: %s\n", h.Status)
}
