package handler

import (
	"net/http"

	"github.com/chayapatp/topupstore/internal/services/catalog"
	"github.com/chayapatp/topupstore/internal/web/middleware"
	"github.com/chayapatp/topupstore/internal/web/templates/layout"
	"github.com/chayapatp/topupstore/internal/web/templates/pages"
)

// HomeHandler handles the home page
type HomeHandler struct {
	catalog *catalog.Service
}

// NewHomeHandler creates a new HomeHandler
func NewHomeHandler(cat *catalog.Service) *HomeHandler {
	return &HomeHandler{
		catalog: cat,
	}
}

// Home renders the landing page or the catalog grid depending on the
// session. Navigating home always drops any game selection.
func (h *HomeHandler) Home(w http.ResponseWriter, r *http.Request) {
	ctrl := middleware.GetController(r.Context())
	ctrl.ShowHome()

	snap := ctrl.Snapshot()
	flash := middleware.GetFlash(r.Context())

	if !snap.LoggedIn() {
		render(w, r, pages.Landing(pages.LandingData{
			PageData: layout.PageData{
				Title: "หน้าหลัก",
				Flash: flash,
			},
		}))
		return
	}

	render(w, r, pages.Catalog(pages.CatalogData{
		PageData: layout.PageData{
			Title:   "รายการเกม",
			Account: snap.Account,
			Flash:   flash,
		},
		Games: h.catalog.Games(),
	}))
}
