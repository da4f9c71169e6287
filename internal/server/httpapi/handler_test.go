package httpapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/fitcoach/internal/logging"
	"github.com/dmitrijs2005/fitcoach/internal/server/config"
	"github.com/dmitrijs2005/fitcoach/internal/server/users"
)

func newTestServer(t *testing.T) (*HTTPServer, *users.Service) {
	t.Helper()
	cfg := &config.Config{SecretKey: "test-secret", AccessTokenValidityDuration: time.Minute}
	us := users.NewService(users.NewMemoryRepository(), cfg)
	return NewHTTPServer(":0", logging.Discard(), us), us
}

func do(t *testing.T, h http.Handler, method, target, body, token string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func TestRootAndHealth(t *testing.T) {
	s, _ := newTestServer(t)
	h := s.Routes()

	rec := do(t, h, http.MethodGet, "/", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, map[string]string{"message": "AI Fitness Coach API", "status": "running"}, decode[map[string]string](t, rec))

	rec = do(t, h, http.MethodGet, "/health", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "healthy", decode[map[string]string](t, rec)["status"])
}

func TestSignup(t *testing.T) {
	s, _ := newTestServer(t)
	h := s.Routes()

	rec := do(t, h, http.MethodPost, "/auth/signup", `{"username":"alice","password":"pw"}`, "")
	require.Equal(t, http.StatusOK, rec.Code)
	tok := decode[tokenResponse](t, rec)
	assert.NotEmpty(t, tok.AccessToken)
	assert.Equal(t, "bearer", tok.TokenType)

	rec = do(t, h, http.MethodPost, "/auth/signup", `{"username":"alice","password":"other"}`, "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Username already registered", decode[detailResponse](t, rec).Detail)
}

func TestSignup_Validation(t *testing.T) {
	s, _ := newTestServer(t)
	h := s.Routes()

	tests := []struct {
		name string
		body string
		loc  []any
	}{
		{name: "not json", body: `{`, loc: []any{"body"}},
		{name: "missing password", body: `{"username":"bob"}`, loc: []any{"body", "password"}},
		{name: "empty username", body: `{"username":" ","password":"x"}`, loc: []any{"body"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, h, http.MethodPost, "/auth/signup", tt.body, "")
			require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
			resp := decode[validationResponse](t, rec)
			require.NotEmpty(t, resp.Detail)
			assert.Equal(t, tt.loc, resp.Detail[0].Loc)
		})
	}
}

func TestLogin(t *testing.T) {
	s, us := newTestServer(t)
	require.NoError(t, us.Seed(context.Background(), "demo", []byte("demo123")))
	h := s.Routes()

	rec := do(t, h, http.MethodPost, "/auth/login", `{"username":"demo","password":"demo123"}`, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, decode[tokenResponse](t, rec).AccessToken)

	rec = do(t, h, http.MethodPost, "/auth/login", `{"username":"demo","password":"nope"}`, "")
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Bearer", rec.Header().Get("WWW-Authenticate"))
	assert.Equal(t, "Incorrect username or password", decode[detailResponse](t, rec).Detail)

	rec = do(t, h, http.MethodPost, "/auth/login", `{"username":"ghost","password":"x"}`, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestProfile_GetAndUpdate(t *testing.T) {
	s, us := newTestServer(t)
	token, err := us.Register(context.Background(), "alice", []byte("pw"))
	require.NoError(t, err)
	h := s.Routes()

	rec := do(t, h, http.MethodGet, "/users/me", "", token)
	require.Equal(t, http.StatusOK, rec.Code)
	var raw map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &raw))
	assert.Equal(t, "alice", raw["username"])
	assert.Nil(t, raw["age"])
	assert.Equal(t, users.DefaultGoal, raw["goal"])
	assert.Equal(t, users.DefaultFitnessLevel, raw["fitness_level"])
	createdAt, ok := raw["created_at"].(string)
	require.True(t, ok)
	_, err = time.Parse(createdAtLayout, createdAt)
	assert.NoError(t, err)

	rec = do(t, h, http.MethodPut, "/users/me?age=31&weight=72.5&goal=weight_loss", "", token)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Profile updated successfully", decode[messageResponse](t, rec).Message)

	got := decode[profileResponse](t, do(t, h, http.MethodGet, "/users/me", "", token))
	require.NotNil(t, got.Age)
	assert.Equal(t, 31, *got.Age)
	require.NotNil(t, got.Weight)
	assert.InDelta(t, 72.5, *got.Weight, 1e-9)
	assert.Nil(t, got.Height)
	require.NotNil(t, got.Goal)
	assert.Equal(t, "weight_loss", *got.Goal)
}

func TestUpdateProfile_BadQuery(t *testing.T) {
	s, us := newTestServer(t)
	token, err := us.Register(context.Background(), "alice", []byte("pw"))
	require.NoError(t, err)

	rec := do(t, s.Routes(), http.MethodPut, "/users/me?age=old&height=tall", "", token)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	resp := decode[validationResponse](t, rec)
	require.Len(t, resp.Detail, 2)
	assert.Equal(t, "int_parsing", resp.Detail[0].Type)
	assert.Equal(t, "float_parsing", resp.Detail[1].Type)
}

func TestNotFoundAndMethodNotAllowed(t *testing.T) {
	s, _ := newTestServer(t)
	h := s.Routes()

	rec := do(t, h, http.MethodGet, "/nope", "", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Not Found", decode[detailResponse](t, rec).Detail)

	rec = do(t, h, http.MethodDelete, "/health", "", "")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
