package app

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/DavidL050/Forex/config"
	"github.com/DavidL050/Forex/logger"
	"github.com/DavidL050/Forex/model"
	"github.com/DavidL050/Forex/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	logger.Init()
	os.Exit(m.Run())
}

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.JWT.SecretKey = "app-test-secret"
	cfg.JWT.TTL = time.Hour
	cfg.Providers.Timeout = time.Second
	cfg.Providers.Rates.BaseURL = "http://127.0.0.1:0"
	cfg.Providers.History.BaseURL = "http://127.0.0.1:0"
	return cfg
}

func TestNewHandler_PublicRoutes(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	h, err := NewHandler(testConfig(), db)
	require.NoError(t, err)

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/currencies", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	var pairs []string
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &pairs))
	assert.Contains(t, pairs, "EUR/USD")
	assert.Equal(t, "EUR/USD", pairs[0])
}

func TestNewHandler_LoginAndVerify(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	defer db.Close()

	hash, err := service.HashPassword("s3cret")
	require.NoError(t, err)
	created := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	userRow := func() *sqlmock.Rows {
		return sqlmock.NewRows([]string{"id", "username", "password", "preferences", "created_at"}).
			AddRow(7, "trader", hash, []byte(`{"preferred_currencies":["EUR/USD"]}`), created)
	}

	mock.ExpectQuery(`SELECT (.+) FROM users WHERE username = \$1`).
		WithArgs("trader").
		WillReturnRows(userRow())
	mock.ExpectQuery(`INSERT INTO sessions`).
		WithArgs(sqlmock.AnyArg(), 7, sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(created))
	mock.ExpectQuery(`SELECT (.+) FROM users WHERE id = \$1`).
		WithArgs(7).
		WillReturnRows(userRow())

	h, err := NewHandler(testConfig(), db)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/login", strings.NewReader(`{"username":"trader","password":"s3cret"}`))
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)

	var login model.LoginResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &login))

	req = httptest.NewRequest(http.MethodGet, "/api/verify-token", nil)
	req.Header.Set("Authorization", "Bearer "+login.Token)
	rr = httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"isValid":true,"user_id":7}`, rr.Body.String())
	assert.NoError(t, mock.ExpectationsWereMet())
}
