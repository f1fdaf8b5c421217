package handler

import (
	"net/http"
	"strings"

	"github.com/chayapatp/topupstore/internal/services/storefront"
	"github.com/chayapatp/topupstore/internal/web/middleware"
	"github.com/chayapatp/topupstore/internal/web/templates/layout"
	"github.com/chayapatp/topupstore/internal/web/templates/pages"
)

// AuthHandler handles the login form and logout
type AuthHandler struct{}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler() *AuthHandler {
	return &AuthHandler{}
}

// LoginPage renders the login form. With a session active the
// controller refuses the transition and we bounce home instead.
func (h *AuthHandler) LoginPage(w http.ResponseWriter, r *http.Request) {
	ctrl := middleware.GetController(r.Context())
	ctrl.RequestLogin()

	snap := ctrl.Snapshot()
	if snap.View != storefront.ViewLoginForm {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	h.renderLogin(w, r, snap)
}

// Login handles login form submission
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	ctrl := middleware.GetController(r.Context())

	if err := r.ParseForm(); err != nil {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	email := strings.TrimSpace(r.FormValue("email"))
	password := r.FormValue("password")

	if !ctrl.SubmitLogin(email, password) {
		// Re-render the form with the generic error, keeping the email
		h.renderLogin(w, r, ctrl.Snapshot())
		return
	}

	snap := ctrl.Snapshot()
	if snap.Account != nil {
		middleware.SetFlash(w, "success", "ยินดีต้อนรับ คุณ"+snap.Account.FullName)
	}

	// Land wherever the controller's post-login destination is
	if snap.View == storefront.ViewProfile {
		http.Redirect(w, r, "/profile", http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// Logout handles logout
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	ctrl := middleware.GetController(r.Context())
	ctrl.Logout()

	middleware.SetFlash(w, "info", "ออกจากระบบแล้ว")
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *AuthHandler) renderLogin(w http.ResponseWriter, r *http.Request, snap storefront.Snapshot) {
	flash := middleware.GetFlash(r.Context())
	render(w, r, pages.Login(pages.LoginData{
		PageData: layout.PageData{
			Title: "เข้าสู่ระบบ",
			Flash: flash,
		},
		Email: snap.LoginEmail,
		Error: snap.LoginError,
	}))
}
