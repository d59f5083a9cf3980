// file: router/router_test.go

package router_test

import (
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/DavidL050/Forex/handler"
	"github.com/DavidL050/Forex/logger"
	"github.com/DavidL050/Forex/model"
	"github.com/DavidL050/Forex/router"
	"github.com/DavidL050/Forex/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	logger.Init()
	os.Exit(m.Run())
}

// --- In-memory stores ---

type userStore struct {
	mu    sync.Mutex
	users []model.User
}

func (s *userStore) CreateUser(_ context.Context, u *model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	u.ID = len(s.users) + 1
	s.users = append(s.users, *u)
	return nil
}

func (s *userStore) find(match func(model.User) bool) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if match(u) {
			return &u, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (s *userStore) GetUserByUsername(_ context.Context, username string) (*model.User, error) {
	return s.find(func(u model.User) bool { return u.Username == username })
}

func (s *userStore) GetUserByID(_ context.Context, id int) (*model.User, error) {
	return s.find(func(u model.User) bool { return u.ID == id })
}

func (s *userStore) UpdatePreferences(_ context.Context, id int, prefs model.Preferences) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.users {
		if s.users[i].ID == id {
			s.users[i].Preferences = prefs
			return nil
		}
	}
	return sql.ErrNoRows
}

type sessionStore struct {
	mu   sync.Mutex
	rows []model.Session
}

func (s *sessionStore) Create(_ context.Context, session *model.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rows = append(s.rows, *session)
	return nil
}

func (s *sessionStore) DeleteByUserAndToken(_ context.Context, userID int, token string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var kept []model.Session
	for _, r := range s.rows {
		if r.UserID != userID || r.Token != token {
			kept = append(kept, r)
		}
	}
	deleted := int64(len(s.rows) - len(kept))
	s.rows = kept
	return deleted, nil
}

type fakeRates struct{}

func (fakeRates) Latest(_ context.Context, _ string, symbols []string) (map[string]float64, error) {
	out := make(map[string]float64, len(symbols))
	for _, s := range symbols {
		out[s] = 1.5
	}
	out["USD"] = 1
	return out, nil
}

type fakeHistory struct{}

func (fakeHistory) DailyHistory(_ context.Context, symbol string) ([]model.Candle, error) {
	switch symbol {
	case "EURUSD=X":
		return []model.Candle{{Date: "2024-05-01", Open: 1, High: 2, Low: 0.5, Close: 1.5}}, nil
	case "XXXYYY=X":
		panic("history provider crashed")
	default:
		return nil, nil
	}
}

// --- Test Helper Functions ---

type testApp struct {
	handler  http.Handler
	users    *userStore
	sessions *sessionStore
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	app := &testApp{users: &userStore{}, sessions: &sessionStore{}}

	userService := service.NewUserService(app.users)
	authService := service.NewAuthService(userService, app.sessions, service.NewTokenService([]byte("router-test"), time.Hour))
	quoteService := service.NewQuoteService(fakeRates{}, fakeHistory{}, []string{"EUR/USD", "GBP/USD", "USD/JPY"})

	app.handler = router.NewRouter(
		authService,
		handler.NewAuthHandler(authService, false),
		handler.NewUserHandler(userService),
		handler.NewQuoteHandler(quoteService),
	)

	_, err := userService.CreateUser(context.Background(), "trader", "s3cret", nil)
	require.NoError(t, err)
	return app
}

func (a *testApp) do(method, path, body, token string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rr := httptest.NewRecorder()
	a.handler.ServeHTTP(rr, req)
	return rr
}

func (a *testApp) login(t *testing.T) string {
	t.Helper()
	rr := a.do(http.MethodPost, "/api/login", `{"username":"trader","password":"s3cret"}`, "")
	require.Equal(t, http.StatusOK, rr.Code, "Login request should be successful")

	var resp model.LoginResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

// --- Tests ---

func TestPublicRoutes(t *testing.T) {
	app := newTestApp(t)

	rr := app.do(http.MethodGet, "/health", "", "")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"status":"API is healthy and running"}`, rr.Body.String())
	assert.NotEmpty(t, rr.Header().Get(handler.RequestIDHeader))

	rr = app.do(http.MethodGet, "/api/currencies", "", "")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `["EUR/USD","GBP/USD","USD/JPY"]`, rr.Body.String())
}

func TestUnknownRouteAndMethod(t *testing.T) {
	app := newTestApp(t)

	rr := app.do(http.MethodGet, "/api/does-not-exist", "", "")
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.JSONEq(t, `{"error":"Endpoint not found","path":"/api/does-not-exist"}`, rr.Body.String())

	rr = app.do(http.MethodGet, "/api/login", "", "")
	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
	assert.JSONEq(t, `{"error":"Method not allowed","path":"/api/login"}`, rr.Body.String())
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	app := newTestApp(t)

	paths := []struct{ method, path string }{
		{http.MethodPost, "/api/logout"},
		{http.MethodGet, "/api/verify-token"},
		{http.MethodPost, "/api/verify-token"},
		{http.MethodGet, "/api/user/preferences"},
		{http.MethodPut, "/api/user/preferences"},
		{http.MethodGet, "/user/preferences"},
		{http.MethodGet, "/api/rates"},
		{http.MethodGet, "/api/analysis/EUR/USD"},
		{http.MethodGet, "/api/history/EUR/USD"},
	}

	for _, p := range paths {
		rr := app.do(p.method, p.path, "", "")
		assert.Equal(t, http.StatusUnauthorized, rr.Code, "%s %s", p.method, p.path)
		assert.JSONEq(t, `{"message":"Token is missing"}`, rr.Body.String(), "%s %s", p.method, p.path)
	}
}

func TestSessionLifecycle(t *testing.T) {
	app := newTestApp(t)
	token := app.login(t)
	assert.Len(t, app.sessions.rows, 1)

	rr := app.do(http.MethodGet, "/api/verify-token", "", token)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"isValid":true,"user_id":1}`, rr.Body.String())

	rr = app.do(http.MethodPut, "/api/user/preferences", `{"preferred_currencies":["GBP/USD"]}`, token)
	require.Equal(t, http.StatusOK, rr.Code)

	rr = app.do(http.MethodGet, "/user/preferences", "", token)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"preferred_currencies":["GBP/USD"]}`, rr.Body.String())

	rr = app.do(http.MethodPost, "/api/logout", "", token)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"message":"Logout successful"}`, rr.Body.String())
	assert.Empty(t, app.sessions.rows)

	// Logout only removes bookkeeping; the token remains valid until expiry.
	rr = app.do(http.MethodGet, "/api/verify-token", "", token)
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestQuoteRoutes(t *testing.T) {
	app := newTestApp(t)
	token := app.login(t)

	rr := app.do(http.MethodGet, "/api/rates?pairs=EUR/USD", "", token)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"EUR":1.5,"USD":1}`, rr.Body.String())

	rr = app.do(http.MethodGet, "/api/analysis/EUR/USD", "", token)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"pair":"EUR/USD"`)

	rr = app.do(http.MethodGet, "/api/history/EUR/USD", "", token)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `[{"date":"2024-05-01","open":1,"high":2,"low":0.5,"close":1.5}]`, rr.Body.String())

	rr = app.do(http.MethodGet, "/api/history/GBP-CHF", "", token)
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.JSONEq(t, `{"message":"No historical data found for GBP/CHF"}`, rr.Body.String())

	rr = app.do(http.MethodGet, "/api/history/EURO", "", token)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestPanicIsRecovered(t *testing.T) {
	app := newTestApp(t)
	token := app.login(t)

	rr := app.do(http.MethodGet, "/api/history/XXX/YYY", "", token)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.JSONEq(t, `{"error":"history provider crashed","message":"An unexpected error occurred."}`, rr.Body.String())
}
