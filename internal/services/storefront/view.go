package storefront

// View selects which screen the storefront renders. Exactly one view is
// active at a time.
type View int

const (
	// ViewLoggedOutHome is the landing page shown without a session
	ViewLoggedOutHome View = iota
	// ViewLoginForm is the credential form; never active with a session
	ViewLoginForm
	// ViewLoggedInHome is the catalog grid; requires a session
	ViewLoggedInHome
	// ViewProfile shows the signed-in account; requires a session
	ViewProfile
	// ViewGameDetail shows one selected game; requires a session
	ViewGameDetail
)

// String returns a stable name for logging
func (v View) String() string {
	switch v {
	case ViewLoggedOutHome:
		return "logged_out_home"
	case ViewLoginForm:
		return "login_form"
	case ViewLoggedInHome:
		return "logged_in_home"
	case ViewProfile:
		return "profile"
	case ViewGameDetail:
		return "game_detail"
	default:
		return "unknown"
	}
}

// RequiresSession reports whether the view is only reachable while
// logged in
func (v View) RequiresSession() bool {
	return v == ViewLoggedInHome || v == ViewProfile || v == ViewGameDetail
}
