package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/harshG775/voting-poll-server/internal/auth"
	"github.com/harshG775/voting-poll-server/internal/cache"
	"github.com/harshG775/voting-poll-server/internal/config"
	"github.com/harshG775/voting-poll-server/internal/handler"
	"github.com/harshG775/voting-poll-server/internal/model"
	"github.com/harshG775/voting-poll-server/internal/repository"
	"github.com/harshG775/voting-poll-server/internal/router"
	"github.com/harshG775/voting-poll-server/internal/service"
)

const testSecret = "test-secret"

type testEnv struct {
	e  *echo.Echo
	db *gorm.DB
}

// memoryCache is an in-process cache.Store for tests that exercise the
// session-cache hit path.
type memoryCache struct {
	entries map[string][]byte
}

func newMemoryCache() *memoryCache {
	return &memoryCache{entries: make(map[string][]byte)}
}

func (m *memoryCache) GetJSON(_ context.Context, key string, dest interface{}) bool {
	data, ok := m.entries[key]
	if !ok {
		return false
	}
	return json.Unmarshal(data, dest) == nil
}

func (m *memoryCache) SetJSON(_ context.Context, key string, value interface{}, _ time.Duration) {
	payload, err := json.Marshal(value)
	if err != nil {
		return
	}
	m.entries[key] = payload
}

func (m *memoryCache) Delete(_ context.Context, key string) {
	delete(m.entries, key)
}

// newTestEnv wires the full application against an in-memory database and no
// cache, exercising the same middleware chain as production.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	return newTestEnvWithCache(t, nil)
}

// newTestEnvWithCache is newTestEnv with a session-cache store plugged in.
func newTestEnvWithCache(t *testing.T, store cache.Store) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.User{}, &model.Poll{}, &model.Option{}, &model.Vote{}))

	cfg := &config.Config{
		Port:        "0",
		JWTSecret:   testSecret,
		CORSOrigins: []string{"http://localhost:3000"},
	}

	userRepo := repository.NewUserRepository(db)
	pollRepo := repository.NewPollRepository(db)
	voteRepo := repository.NewVoteRepository(db)

	jwtService := auth.NewJWTService(cfg.JWTSecret)
	sessions := auth.NewSessionCache(store)

	userHandler := handler.NewUserHandler(service.NewUserService(userRepo, jwtService))
	pollHandler := handler.NewPollHandler(service.NewPollService(pollRepo, voteRepo))

	e := echo.New()
	router.Register(e, cfg, userHandler, pollHandler, userRepo, sessions)

	return &testEnv{e: e, db: db}
}

func (env *testEnv) do(t *testing.T, method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	env.e.ServeHTTP(rec, req)
	return rec
}

// envelopeData decodes a success envelope, unmarshalling data into out when
// out is non-nil, and returns the message.
func envelopeData(t *testing.T, rec *httptest.ResponseRecorder, out interface{}) string {
	t.Helper()

	var envelope struct {
		Message string          `json:"message"`
		Data    json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	if out != nil {
		require.NoError(t, json.Unmarshal(envelope.Data, out))
	}
	return envelope.Message
}

// errorMessage decodes the error envelope.
func errorMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()

	var resp struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.False(t, resp.Success)
	return resp.Message
}

// register creates a user through the API and returns it with its session token.
func register(t *testing.T, env *testEnv, username string) *model.User {
	t.Helper()

	rec := env.do(t, "POST", "/api/v1/users/register", map[string]string{
		"username": username,
		"email":    username + "@example.com",
		"password": "password123",
	}, "")
	require.Equal(t, 201, rec.Code, rec.Body.String())

	var user model.User
	envelopeData(t, rec, &user)
	require.NotNil(t, user.SessionToken)
	return &user
}
