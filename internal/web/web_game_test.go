package web_test

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCatalogListsAllGames(t *testing.T) {
	ts := newWebTestServer(t)
	ts.login("a@x.com", "right")

	rr := ts.get("/")
	assert.Equal(t, http.StatusOK, rr.Code)

	doc := parseHTML(rr.Body)
	assert.Equal(t, 3, doc.Find(".game-card").Length())
	assertContainsText(t, doc, ".game-grid", "Valorant")
	assertContainsText(t, doc, ".game-grid", "Free Fire")
	assertContainsText(t, doc, ".game-grid", "RoV")

	// Cards link to the detail pages
	href, _ := doc.Find(".game-card").First().Attr("href")
	assert.Equal(t, "/games/1", href)
}

func TestGameDetailRequiresSession(t *testing.T) {
	ts := newWebTestServer(t)

	rr := ts.get("/games/1")

	assert.Equal(t, http.StatusSeeOther, rr.Code)
	assert.Equal(t, "/login", rr.Header().Get("Location"))
}

func TestGameDetailShowsGame(t *testing.T) {
	ts := newWebTestServer(t)
	ts.login("a@x.com", "right")

	rr := ts.get("/games/1")
	assert.Equal(t, http.StatusOK, rr.Code)

	doc := parseHTML(rr.Body)
	assertContainsText(t, doc, ".game-detail-info h1", "Valorant")
	assertContainsElement(t, doc, "form[action='/games/1/topup']")
	assertContainsElement(t, doc, "input[name='user_id']")
	assertContainsElement(t, doc, "input[name='amount']")
	assertContainsElement(t, doc, ".btn-download")
}

func TestUnknownGameRedirectsHome(t *testing.T) {
	ts := newWebTestServer(t)
	ts.login("a@x.com", "right")

	rr := ts.get("/games/999")

	assert.Equal(t, http.StatusSeeOther, rr.Code)
	assert.Equal(t, "/", rr.Header().Get("Location"))

	rr = ts.followRedirect(rr)
	doc := parseHTML(rr.Body)
	assertContainsText(t, doc, ".flash-error", "ไม่พบเกมที่เลือก")
}

func TestNonNumericGameIDRedirectsHome(t *testing.T) {
	ts := newWebTestServer(t)
	ts.login("a@x.com", "right")

	rr := ts.get("/games/abc")

	assert.Equal(t, http.StatusSeeOther, rr.Code)
	assert.Equal(t, "/", rr.Header().Get("Location"))
}

func TestTopUpSucceeds(t *testing.T) {
	ts := newWebTestServer(t)
	ts.login("a@x.com", "right")
	ts.get("/games/1")

	form := url.Values{"user_id": {"U1"}, "amount": {"100"}}
	rr := ts.post("/games/1/topup", form)

	assert.Equal(t, http.StatusSeeOther, rr.Code)
	assert.Equal(t, "/games/1", rr.Header().Get("Location"))

	rr = ts.followRedirect(rr)
	doc := parseHTML(rr.Body)
	assertContainsText(t, doc, ".flash-success", "เติมเงินเกม Valorant ให้ไอดี U1 จำนวน 100 บาท สำเร็จ")
}

func TestTopUpRejectsMissingUserID(t *testing.T) {
	ts := newWebTestServer(t)
	ts.login("a@x.com", "right")
	ts.get("/games/1")

	form := url.Values{"user_id": {""}, "amount": {"100"}}
	rr := ts.post("/games/1/topup", form)

	rr = ts.followRedirect(rr)
	doc := parseHTML(rr.Body)
	assertContainsText(t, doc, ".flash-error", "กรุณากรอกไอดีผู้ใช้และจำนวนเงินให้ถูกต้อง")
}

func TestTopUpRejectsNonNumericAmount(t *testing.T) {
	ts := newWebTestServer(t)
	ts.login("a@x.com", "right")
	ts.get("/games/1")

	form := url.Values{"user_id": {"U1"}, "amount": {"lots"}}
	rr := ts.post("/games/1/topup", form)

	rr = ts.followRedirect(rr)
	doc := parseHTML(rr.Body)
	assertContainsText(t, doc, ".flash-error", "กรุณากรอกไอดีผู้ใช้และจำนวนเงินให้ถูกต้อง")
}

func TestTopUpWithoutPriorSelection(t *testing.T) {
	// Posting the form right after a restore, without visiting the
	// detail page first, still works: the handler re-selects the game
	ts := newWebTestServer(t)
	ts.login("a@x.com", "right")

	form := url.Values{"user_id": {"U1"}, "amount": {"50"}}
	rr := ts.post("/games/2/topup", form)

	assert.Equal(t, http.StatusSeeOther, rr.Code)
	rr = ts.followRedirect(rr)
	doc := parseHTML(rr.Body)
	assertContainsText(t, doc, ".flash-success", "Free Fire")
}

func TestTopUpFromAnotherTabNamesPostedGame(t *testing.T) {
	// A second tab can leave a different game selected; the receipt
	// must name the game whose form was submitted
	ts := newWebTestServer(t)
	ts.login("a@x.com", "right")
	ts.get("/games/2")

	form := url.Values{"user_id": {"U1"}, "amount": {"50"}}
	rr := ts.post("/games/1/topup", form)

	assert.Equal(t, http.StatusSeeOther, rr.Code)
	assert.Equal(t, "/games/1", rr.Header().Get("Location"))
	rr = ts.followRedirect(rr)
	doc := parseHTML(rr.Body)
	assertContainsText(t, doc, ".flash-success", "Valorant")
}

func TestTopUpRequiresSession(t *testing.T) {
	ts := newWebTestServer(t)

	form := url.Values{"user_id": {"U1"}, "amount": {"100"}}
	rr := ts.post("/games/1/topup", form)

	assert.Equal(t, http.StatusSeeOther, rr.Code)
	assert.Equal(t, "/login", rr.Header().Get("Location"))
}

func TestHomeNavClearsSelection(t *testing.T) {
	ts := newWebTestServer(t)
	ts.login("a@x.com", "right")
	ts.get("/games/1")

	// Back home, then straight to another game
	rr := ts.get("/")
	assert.Equal(t, http.StatusOK, rr.Code)

	rr = ts.get("/games/3")
	doc := parseHTML(rr.Body)
	assertContainsText(t, doc, ".game-detail-info h1", "RoV")
}
