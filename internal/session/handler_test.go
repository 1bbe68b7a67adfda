package session

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) (http.Handler, *Manager, *TokenIssuer) {
	t.Helper()
	manager := newTestManager(time.Hour)
	tokens := NewTokenIssuer([]byte("test-secret"), time.Hour)

	router := httprouter.New()
	NewHandler(manager, tokens, discardLogger()).Routes(router)
	return tokens.Middleware(router), manager, tokens
}

func TestStartAndEndSession(t *testing.T) {
	srv, manager, _ := newTestServer(t)

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/session", nil))
	require.Equal(t, http.StatusCreated, rec.Code)

	var token Token
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&token))
	assert.NotEmpty(t, token.Token)
	assert.Equal(t, 1, manager.Len())

	req := httptest.NewRequest(http.MethodDelete, "/session", nil)
	req.Header.Set("Authorization", "Bearer "+token.Token)
	rec = httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, 0, manager.Len())

	// a second end finds nothing
	rec = httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRefreshExtendsToken(t *testing.T) {
	manager := newTestManager(time.Hour)
	tokens := NewTokenIssuer([]byte("test-secret"), time.Hour)
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	tokens.now = func() time.Time { return now }

	router := httprouter.New()
	NewHandler(manager, tokens, discardLogger()).Routes(router)
	srv := tokens.Middleware(router)

	s := manager.Create()
	old, err := tokens.Issue(s.ID)
	require.NoError(t, err)

	now = now.Add(50 * time.Minute)
	req := httptest.NewRequest(http.MethodPost, "/session/refresh", nil)
	req.Header.Set("Authorization", "Bearer "+old.Token)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var fresh Token
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&fresh))
	assert.Equal(t, s.ID, fresh.SessionID)
	assert.True(t, fresh.ExpiresAt.After(old.ExpiresAt))

	// the old token has lapsed, the refreshed one still resolves the session
	now = now.Add(20 * time.Minute)
	_, err = tokens.Validate(old.Token)
	assert.ErrorIs(t, err, ErrInvalidToken)
	id, err := tokens.Validate(fresh.Token)
	require.NoError(t, err)
	assert.Equal(t, s.ID, id)
}

func TestRefreshEndedSession(t *testing.T) {
	srv, manager, tokens := newTestServer(t)
	s := manager.Create()
	token, err := tokens.Issue(s.ID)
	require.NoError(t, err)
	require.NoError(t, manager.End(s.ID))

	req := httptest.NewRequest(http.MethodPost, "/session/refresh", nil)
	req.Header.Set("Authorization", "Bearer "+token.Token)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/session/refresh", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestEndWithoutSession(t *testing.T) {
	srv, _, _ := newTestServer(t)

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/session", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestMiddleware(t *testing.T) {
	tokens := NewTokenIssuer([]byte("test-secret"), time.Hour)
	token, err := tokens.Issue("abc")
	require.NoError(t, err)

	var seen string
	h := tokens.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = SessionIDFromContext(r.Context())
	}))

	tests := []struct {
		name     string
		header   string
		query    string
		wantCode int
		wantID   string
	}{
		{"no token passes through", "", "", http.StatusOK, ""},
		{"bearer header", "Bearer " + token.Token, "", http.StatusOK, "abc"},
		{"query token", "", token.Token, http.StatusOK, "abc"},
		{"malformed header", "Token " + token.Token, "", http.StatusUnauthorized, ""},
		{"bad token", "Bearer nope", "", http.StatusUnauthorized, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seen = ""
			target := "/feed"
			if tt.query != "" {
				target += "?token=" + tt.query
			}
			req := httptest.NewRequest(http.MethodGet, target, nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)
			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Equal(t, tt.wantID, seen)
		})
	}
}
