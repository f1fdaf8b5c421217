package api_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chayapatp/topupstore/internal/api"
	"github.com/chayapatp/topupstore/internal/api/response"
	"github.com/chayapatp/topupstore/internal/factory"
	"github.com/chayapatp/topupstore/internal/services/auth"
)

// testServer creates a test server with all dependencies
type testServer struct {
	handler http.Handler
	auth    *auth.Service
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))

	app := factory.NewTestApp()
	require.NoError(t, app.LoadTestData())

	router := api.NewRouter(api.RouterConfig{
		Logger:         logger,
		AuthService:    app.AuthService,
		CatalogService: app.CatalogService,
		TopUpService:   app.TopUpService,
	})

	return &testServer{
		handler: router,
		auth:    app.AuthService,
	}
}

func (ts *testServer) request(method, path string, body any, token string) *httptest.ResponseRecorder {
	var reqBody *bytes.Buffer
	if body != nil {
		b, _ := json.Marshal(body)
		reqBody = bytes.NewBuffer(b)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, reqBody)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rr := httptest.NewRecorder()
	ts.handler.ServeHTTP(rr, req)
	return rr
}

// login performs a login and returns the session token
func (ts *testServer) login(t *testing.T) string {
	t.Helper()

	body := map[string]string{"email": "a@x.com", "password": "right"}
	rr := ts.request(http.MethodPost, "/api/v1/auth/login", body, "")
	require.Equal(t, http.StatusOK, rr.Code)

	var resp response.AuthResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	return resp.SessionToken
}

func TestHealthCheck(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodGet, "/api/v1/health", nil, "")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "ok")
}

func TestLogin(t *testing.T) {
	ts := newTestServer(t)

	body := map[string]string{"email": "a@x.com", "password": "right"}
	rr := ts.request(http.MethodPost, "/api/v1/auth/login", body, "")

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp response.AuthResponse
	err := json.Unmarshal(rr.Body.Bytes(), &resp)
	require.NoError(t, err)

	assert.Equal(t, "a@x.com", resp.Account.Email)
	assert.Equal(t, "สมชาย ใจดี", resp.Account.FullName)
	assert.NotEmpty(t, resp.SessionToken)
	// The password must never appear in a response
	assert.NotContains(t, rr.Body.String(), "password")
	assert.NotContains(t, rr.Body.String(), "right")
}

func TestLoginWrongPassword(t *testing.T) {
	ts := newTestServer(t)

	body := map[string]string{"email": "a@x.com", "password": "wrong"}
	rr := ts.request(http.MethodPost, "/api/v1/auth/login", body, "")

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Contains(t, rr.Body.String(), "INVALID_CREDENTIALS")
}

func TestLoginValidation(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodPost, "/api/v1/auth/login", map[string]string{"password": "right"}, "")
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "email is required")

	rr = ts.request(http.MethodPost, "/api/v1/auth/login", map[string]string{"email": "a@x.com"}, "")
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "password is required")
}

func TestGetMe(t *testing.T) {
	ts := newTestServer(t)
	token := ts.login(t)

	rr := ts.request(http.MethodGet, "/api/v1/me", nil, token)
	assert.Equal(t, http.StatusOK, rr.Code)

	var account response.Account
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &account))
	assert.Equal(t, "a@x.com", account.Email)
}

func TestGetMeRequiresAuth(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodGet, "/api/v1/me", nil, "")
	assert.Equal(t, http.StatusUnauthorized, rr.Code)

	rr = ts.request(http.MethodGet, "/api/v1/me", nil, "sess_bogus")
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestLogout(t *testing.T) {
	ts := newTestServer(t)
	token := ts.login(t)

	rr := ts.request(http.MethodPost, "/api/v1/auth/logout", nil, token)
	assert.Equal(t, http.StatusNoContent, rr.Code)

	// The token no longer works
	rr = ts.request(http.MethodGet, "/api/v1/me", nil, token)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestListGames(t *testing.T) {
	ts := newTestServer(t)
	token := ts.login(t)

	rr := ts.request(http.MethodGet, "/api/v1/games", nil, token)
	assert.Equal(t, http.StatusOK, rr.Code)

	var resp response.GameList
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.Len(t, resp.Games, 3)
	assert.Equal(t, "Valorant", resp.Games[0].Name)
	assert.Equal(t, "Free Fire", resp.Games[1].Name)
	assert.Equal(t, "RoV", resp.Games[2].Name)
}

func TestListGamesRequiresAuth(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodGet, "/api/v1/games", nil, "")
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestGetGame(t *testing.T) {
	ts := newTestServer(t)
	token := ts.login(t)

	rr := ts.request(http.MethodGet, "/api/v1/games/1", nil, token)
	assert.Equal(t, http.StatusOK, rr.Code)

	var game response.Game
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &game))
	assert.Equal(t, 1, game.ID)
	assert.Equal(t, "Valorant", game.Name)
}

func TestGetGameNotFound(t *testing.T) {
	ts := newTestServer(t)
	token := ts.login(t)

	rr := ts.request(http.MethodGet, "/api/v1/games/999", nil, token)
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Contains(t, rr.Body.String(), "GAME_NOT_FOUND")
}

func TestGetGameBadID(t *testing.T) {
	ts := newTestServer(t)
	token := ts.login(t)

	rr := ts.request(http.MethodGet, "/api/v1/games/abc", nil, token)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "INVALID_REQUEST")
}

func TestTopUp(t *testing.T) {
	ts := newTestServer(t)
	token := ts.login(t)

	body := map[string]any{"user_id": "U1", "amount": 100}
	rr := ts.request(http.MethodPost, "/api/v1/games/1/topup", body, token)
	assert.Equal(t, http.StatusOK, rr.Code)

	var resp response.TopUpResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.True(t, resp.OK)
	assert.Equal(t, "เติมเงินเกม Valorant ให้ไอดี U1 จำนวน 100 บาท สำเร็จ", resp.Message)
}

func TestTopUpValidationFailure(t *testing.T) {
	ts := newTestServer(t)
	token := ts.login(t)

	body := map[string]any{"user_id": "", "amount": 100}
	rr := ts.request(http.MethodPost, "/api/v1/games/1/topup", body, token)
	assert.Equal(t, http.StatusOK, rr.Code)

	var resp response.TopUpResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.False(t, resp.OK)
	assert.Equal(t, "กรุณากรอกไอดีผู้ใช้และจำนวนเงินให้ถูกต้อง", resp.Message)
}

func TestTopUpUnknownGame(t *testing.T) {
	ts := newTestServer(t)
	token := ts.login(t)

	body := map[string]any{"user_id": "U1", "amount": 100}
	rr := ts.request(http.MethodPost, "/api/v1/games/999/topup", body, token)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestTopUpRequiresAuth(t *testing.T) {
	ts := newTestServer(t)

	body := map[string]any{"user_id": "U1", "amount": 100}
	rr := ts.request(http.MethodPost, "/api/v1/games/1/topup", body, "")
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}
