package httpapi

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/taskboard/internal/logging"
	"github.com/dmitrijs2005/taskboard/internal/server/config"
)

func testLogger() logging.Logger {
	return logging.NewDiscard()
}

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.SecretKey = testSecret
	cfg.TokenValidityDuration = time.Hour
	cfg.RateLimitRPS = 0 // limiting is covered separately
	return cfg
}

type testServer struct {
	handler http.Handler
	users   *stubUserService
	tasks   *stubTaskService
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	cfg := testConfig()
	users := newStubUserService()
	tasks := newStubTaskService()
	limiter := newRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)
	handler := NewRouter(cfg, testLogger(), users, tasks, limiter)
	return &testServer{handler: handler, users: users, tasks: tasks}
}

// do performs a request against the router and decodes the JSON body.
func (ts *testServer) do(t *testing.T, method, path, token string, body any) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	}

	req := httptest.NewRequest(method, path, reader)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	rec := httptest.NewRecorder()
	ts.handler.ServeHTTP(rec, req)

	var decoded map[string]any
	if rec.Body.Len() > 0 && rec.Header().Get("Content-Type") != "text/plain; charset=utf-8" {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &decoded))
	}
	return rec, decoded
}

// register creates a user through the API and returns its id and token.
func (ts *testServer) register(t *testing.T, name, email, password string) (id, token string) {
	t.Helper()
	rec, body := ts.do(t, http.MethodPost, "/api/auth/register", "", map[string]string{
		"name": name, "email": email, "password": password,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	data := body["data"].(map[string]any)
	return data["id"].(string), data["token"].(string)
}
