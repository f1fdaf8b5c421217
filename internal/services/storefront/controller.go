package storefront

import (
	"log/slog"
	"sync"

	"github.com/chayapatp/topupstore/internal/model"
	"github.com/chayapatp/topupstore/internal/services/directory"
	"github.com/chayapatp/topupstore/internal/services/topup"
)

// loginErrorMessage is the single generic message for any credential
// mismatch
const loginErrorMessage = "อีเมลหรือรหัสผ่านไม่ถูกต้อง"

// Snapshot is an immutable view of the controller state, taken
// synchronously after each transition. Account and Selected are copies;
// nil means absent.
type Snapshot struct {
	View       View
	Account    *model.Account
	Selected   *model.Game
	LoginEmail string
	LoginError string
}

// LoggedIn reports whether a session is active in this snapshot
func (s Snapshot) LoggedIn() bool {
	return s.Account != nil
}

// Config holds configuration for a Controller
type Config struct {
	// PostLoginView is where a successful login lands. Defaults to the
	// catalog home; ViewProfile is the only other accepted value.
	PostLoginView View

	// Notify, if set, is invoked with a snapshot after every transition
	Notify func(Snapshot)
}

// Controller owns the storefront's session and view state and all
// transitions between screens. Every operation is total: bad input is
// answered with a no-op or a failure notification, never a panic.
//
// All state is mutated under one mutex; renderers only ever observe a
// consistent snapshot.
type Controller struct {
	directory *directory.Service
	topup     *topup.Service
	persist   Persistence
	logger    *slog.Logger

	postLogin View
	notify    func(Snapshot)

	mu         sync.Mutex
	view       View
	account    *model.Account
	selected   *model.Game
	loginEmail string
	loginError string
}

// New creates a Controller, restoring any remembered account from the
// persistence shim. A restored session lands on the catalog home and is
// not re-validated against the member directory.
func New(dir *directory.Service, tps *topup.Service, persist Persistence, logger *slog.Logger, cfg Config) *Controller {
	postLogin := cfg.PostLoginView
	if postLogin != ViewProfile {
		postLogin = ViewLoggedInHome
	}

	c := &Controller{
		directory: dir,
		topup:     tps,
		persist:   persist,
		logger:    logger,
		postLogin: postLogin,
		notify:    cfg.Notify,
		view:      ViewLoggedOutHome,
	}

	account, ok, err := persist.Load()
	if err != nil {
		logger.Warn("could not read remembered account", slog.String("error", err.Error()))
	} else if ok {
		c.account = &account
		c.view = ViewLoggedInHome
	}

	c.publish()
	return c
}

// RequestLogin shows the login form. It is a no-op while logged in.
func (c *Controller) RequestLogin() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.account != nil {
		return
	}
	c.view = ViewLoginForm
	c.publishLocked()
}

// SubmitLogin attempts a login with the given credentials. The first
// directory entry matching both email and password wins. On success the
// account is persisted and the view moves to the configured post-login
// destination; on mismatch the form stays up with a generic error and
// the session is unchanged.
func (c *Controller) SubmitLogin(email, password string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.account != nil {
		return true
	}

	account, err := c.directory.Authenticate(email, password)
	if err != nil {
		c.view = ViewLoginForm
		c.loginEmail = email
		c.loginError = loginErrorMessage
		c.publishLocked()
		return false
	}

	if err := c.persist.Save(*account); err != nil {
		// Login still succeeds; only the restart restore is lost
		c.logger.Warn("could not persist session", slog.String("error", err.Error()))
	}

	c.account = account
	c.loginEmail = ""
	c.loginError = ""
	c.view = c.postLogin
	c.publishLocked()
	return true
}

// Logout ends the session: clears the account, the persisted entry, the
// selected game and the login form. No-op while logged out.
func (c *Controller) Logout() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.account == nil {
		return
	}

	if err := c.persist.Clear(); err != nil {
		c.logger.Warn("could not clear persisted session", slog.String("error", err.Error()))
	}

	c.account = nil
	c.selected = nil
	c.loginEmail = ""
	c.loginError = ""
	c.view = ViewLoggedOutHome
	c.publishLocked()
}

// ShowProfile shows the profile screen. No-op while logged out.
func (c *Controller) ShowProfile() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.account == nil {
		return
	}
	c.view = ViewProfile
	c.publishLocked()
}

// ShowHome returns to whichever home matches the session state and
// clears any game selection
func (c *Controller) ShowHome() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.selected = nil
	c.view = c.homeViewLocked()
	c.publishLocked()
}

// SelectGame opens the detail screen for the given game. No-op while
// logged out.
func (c *Controller) SelectGame(game model.Game) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.account == nil {
		return false
	}
	c.selected = &game
	c.view = ViewGameDetail
	c.publishLocked()
	return true
}

// ClearSelection drops the selected game and returns to the current home
func (c *Controller) ClearSelection() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.selected = nil
	c.view = c.homeViewLocked()
	c.publishLocked()
}

// SubmitTopUp runs the simulated top-up against the selected game. It
// mutates nothing; the returned message is the whole effect. Without a
// selected game it falls into the validation-failure branch.
func (c *Controller) SubmitTopUp(userID string, amount int) topup.Result {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.topup.Submit(c.selected, userID, amount)
}

// Accessors

// View returns the active view
func (c *Controller) View() View {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.view
}

// Account returns the logged-in account, if any
func (c *Controller) Account() (model.Account, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.account == nil {
		return model.Account{}, false
	}
	return *c.account, true
}

// SelectedGame returns the selected game, if any
func (c *Controller) SelectedGame() (model.Game, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.selected == nil {
		return model.Game{}, false
	}
	return *c.selected, true
}

// LoginError returns the current login error message, empty when none
func (c *Controller) LoginError() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loginError
}

// Snapshot returns a consistent copy of the full view state
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

func (c *Controller) homeViewLocked() View {
	if c.account != nil {
		return ViewLoggedInHome
	}
	return ViewLoggedOutHome
}

func (c *Controller) snapshotLocked() Snapshot {
	snap := Snapshot{
		View:       c.view,
		LoginEmail: c.loginEmail,
		LoginError: c.loginError,
	}
	if c.account != nil {
		account := *c.account
		snap.Account = &account
	}
	if c.selected != nil {
		selected := *c.selected
		snap.Selected = &selected
	}
	return snap
}

func (c *Controller) publish() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.publishLocked()
}

func (c *Controller) publishLocked() {
	if c.notify != nil {
		c.notify(c.snapshotLocked())
	}
}
