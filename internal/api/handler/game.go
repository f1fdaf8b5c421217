package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/chayapatp/topupstore/internal/api/request"
	"github.com/chayapatp/topupstore/internal/api/response"
	"github.com/chayapatp/topupstore/internal/model"
	"github.com/chayapatp/topupstore/internal/services/catalog"
	"github.com/chayapatp/topupstore/internal/services/topup"
)

// GameHandler handles catalog and top-up endpoints
type GameHandler struct {
	catalogService *catalog.Service
	topupService   *topup.Service
}

// NewGameHandler creates a new game handler
func NewGameHandler(catalogService *catalog.Service, topupService *topup.Service) *GameHandler {
	return &GameHandler{
		catalogService: catalogService,
		topupService:   topupService,
	}
}

// List handles GET /api/v1/games
func (h *GameHandler) List(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, response.GameListFromModel(h.catalogService.Games()))
}

// Get handles GET /api/v1/games/{id}
func (h *GameHandler) Get(w http.ResponseWriter, r *http.Request) {
	game, err := h.gameFromPath(r)
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, response.GameFromModel(game))
}

// TopUp handles POST /api/v1/games/{id}/topup
func (h *GameHandler) TopUp(w http.ResponseWriter, r *http.Request) {
	game, err := h.gameFromPath(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	var req request.TopUpRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	result := h.topupService.Submit(game, req.UserID, req.Amount)
	response.JSON(w, http.StatusOK, response.TopUpResponseFromResult(result))
}

func (h *GameHandler) gameFromPath(r *http.Request) (*model.Game, error) {
	raw := mux.Vars(r)["id"]
	id, err := strconv.Atoi(raw)
	if err != nil {
		return nil, NewInvalidRequestError("game id must be numeric")
	}
	return h.catalogService.Game(model.GameID(id))
}
