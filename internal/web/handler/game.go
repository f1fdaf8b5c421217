package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/chayapatp/topupstore/internal/model"
	"github.com/chayapatp/topupstore/internal/services/catalog"
	"github.com/chayapatp/topupstore/internal/web/middleware"
	"github.com/chayapatp/topupstore/internal/web/templates/layout"
	"github.com/chayapatp/topupstore/internal/web/templates/pages"
)

// GameHandler handles the game detail page and the top-up form
type GameHandler struct {
	catalog *catalog.Service
}

// NewGameHandler creates a new GameHandler
func NewGameHandler(cat *catalog.Service) *GameHandler {
	return &GameHandler{
		catalog: cat,
	}
}

// View selects the requested game and renders its detail page
func (h *GameHandler) View(w http.ResponseWriter, r *http.Request) {
	ctrl := middleware.GetController(r.Context())

	game, ok := h.lookupGame(r)
	if !ok {
		middleware.SetFlash(w, "error", "ไม่พบเกมที่เลือก")
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	if !ctrl.SelectGame(*game) {
		// Selection requires a session
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	snap := ctrl.Snapshot()
	flash := middleware.GetFlash(r.Context())
	render(w, r, pages.GameDetail(pages.GameDetailData{
		PageData: layout.PageData{
			Title:   game.Name,
			Account: snap.Account,
			Flash:   flash,
		},
		Game: *game,
	}))
}

// TopUp handles the top-up form submission for the selected game
func (h *GameHandler) TopUp(w http.ResponseWriter, r *http.Request) {
	ctrl := middleware.GetController(r.Context())

	game, ok := h.lookupGame(r)
	if !ok {
		middleware.SetFlash(w, "error", "ไม่พบเกมที่เลือก")
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	// The controller's selection may be absent (freshly restored
	// session) or a different game (another tab navigated away);
	// either way the form names the game it was posted from
	if selected, ok := ctrl.SelectedGame(); !ok || selected.ID != game.ID {
		if !ctrl.SelectGame(*game) {
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}
	}

	if err := r.ParseForm(); err != nil {
		http.Redirect(w, r, fmt.Sprintf("/games/%d", game.ID), http.StatusSeeOther)
		return
	}

	userID := r.FormValue("user_id")
	// A non-numeric amount reads as zero and fails validation
	amount, _ := strconv.Atoi(r.FormValue("amount"))

	result := ctrl.SubmitTopUp(userID, amount)
	if result.OK {
		middleware.SetFlash(w, "success", result.Message)
	} else {
		middleware.SetFlash(w, "error", result.Message)
	}

	http.Redirect(w, r, fmt.Sprintf("/games/%d", game.ID), http.StatusSeeOther)
}

func (h *GameHandler) lookupGame(r *http.Request) (*model.Game, bool) {
	idStr := mux.Vars(r)["id"]
	id, err := strconv.Atoi(idStr)
	if err != nil {
		return nil, false
	}

	game, err := h.catalog.Game(model.GameID(id))
	if err != nil {
		return nil, false
	}
	return game, true
}
