package integration

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"buddypay/internal/auth"
	"buddypay/internal/core"
	httpHandler "buddypay/internal/http"
	"buddypay/internal/metrics"
	"buddypay/internal/sqlite"
)

type TestSuite struct {
	DB      *sql.DB
	Router  http.Handler
	Metrics *metrics.Metrics
	Tokens  auth.TokenIssuer
}

func NewTestSuite(t *testing.T) *TestSuite {
	t.Helper()

	client, err := sqlite.NewClient(context.Background(), sqlite.Config{
		DatabasePath: filepath.Join(t.TempDir(), "e2e_buddypay.db"),
		MaxOpenConns: 10,
		MaxIdleConns: 5,
		BusyTimeout:  30 * time.Second,
		EnableWAL:    true,
		ForeignKeys:  true,
	})
	require.NoError(t, err, "failed to create test client")
	t.Cleanup(func() { client.Close() })

	require.NoError(t, client.Migrate(context.Background()))

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	observer := metrics.New()
	tokens := auth.NewTokenIssuer(auth.Config{
		TokenSecret: "e2e-secret",
		TokenTTL:    time.Hour,
		TokenIssuer: "buddypay",
	})

	service := core.NewService(sqlite.NewStore(client.DB()), auth.NewBcryptHasher(bcrypt.MinCost), observer, logger)
	handler := httpHandler.NewHandler(service, tokens, logger)

	return &TestSuite{
		DB:      client.DB(),
		Router:  httpHandler.NewRouter(handler, tokens, observer, logger),
		Metrics: observer,
		Tokens:  tokens,
	}
}

func (s *TestSuite) Do(t *testing.T, method, target, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	s.Router.ServeHTTP(w, req)
	return w
}

// RegisterAndLogin creates a user and returns a bearer token for it.
func (s *TestSuite) RegisterAndLogin(t *testing.T, username string) string {
	t.Helper()

	email := username + "@mail.com"

	w := s.Do(t, http.MethodPost, "/auth/register/v0", "", httpHandler.RegisterRequest{
		Username: username,
		Email:    email,
		Password: "password-" + username,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = s.Do(t, http.MethodPost, "/auth/login/v0", "", httpHandler.LoginRequest{
		Email:    email,
		Password: "password-" + username,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var login httpHandler.LoginResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &login))
	require.NotEmpty(t, login.AccessToken)

	return login.AccessToken
}

func (s *TestSuite) Balance(t *testing.T, username string) string {
	t.Helper()

	var balance string
	err := s.DB.QueryRow("SELECT balance FROM accounts WHERE username = ?", username).Scan(&balance)
	require.NoError(t, err)
	return balance
}

func (s *TestSuite) SystemBalance(t *testing.T) string {
	t.Helper()

	var balance string
	err := s.DB.QueryRow("SELECT balance FROM accounts WHERE is_system_account = 1").Scan(&balance)
	require.NoError(t, err)
	return balance
}
