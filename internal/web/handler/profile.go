package handler

import (
	"net/http"

	"github.com/chayapatp/topupstore/internal/services/storefront"
	"github.com/chayapatp/topupstore/internal/web/middleware"
	"github.com/chayapatp/topupstore/internal/web/templates/layout"
	"github.com/chayapatp/topupstore/internal/web/templates/pages"
)

// ProfileHandler handles the profile page
type ProfileHandler struct{}

// NewProfileHandler creates a new ProfileHandler
func NewProfileHandler() *ProfileHandler {
	return &ProfileHandler{}
}

// Profile renders the signed-in member's profile. Without a session the
// controller refuses the transition and we send the visitor to login.
func (h *ProfileHandler) Profile(w http.ResponseWriter, r *http.Request) {
	ctrl := middleware.GetController(r.Context())
	ctrl.ShowProfile()

	snap := ctrl.Snapshot()
	if snap.View != storefront.ViewProfile || snap.Account == nil {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	flash := middleware.GetFlash(r.Context())
	render(w, r, pages.Profile(pages.ProfileData{
		PageData: layout.PageData{
			Title:   "โปรไฟล์",
			Account: snap.Account,
			Flash:   flash,
		},
		Profile: *snap.Account,
	}))
}
