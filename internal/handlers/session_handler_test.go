package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tasteplaces/tasteplaces/internal/config"
	"github.com/tasteplaces/tasteplaces/internal/engine"
	"github.com/tasteplaces/tasteplaces/internal/repository"
	"github.com/tasteplaces/tasteplaces/internal/service"
	"github.com/tasteplaces/tasteplaces/internal/session"
	"go.uber.org/zap"
)

func newTestRouter(t *testing.T, apiKeys ...string) chi.Router {
	t.Helper()
	return newTestRouterWithStore(t, session.NewStore(), apiKeys...)
}

func newTestRouterWithStore(t *testing.T, store *session.Store, apiKeys ...string) chi.Router {
	t.Helper()

	cfg := &config.Config{
		Server:   config.ServerConfig{Port: "8080"},
		Auth:     config.AuthConfig{APIKeys: apiKeys},
		CORS:     config.CORSConfig{AllowedOrigins: []string{"*"}},
		Catalog:  config.CatalogConfig{SortLocale: "en"},
		LogLevel: "error",
	}
	restaurants := service.NewRestaurantService(repository.NewInMemoryRestaurantRepository(), nil)
	sessions := service.NewSessionService(restaurants, store)

	return NewRouter(cfg, restaurants, sessions, zap.NewNop())
}

func doRequest(r http.Handler, method, path string, body interface{}, headers ...string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeView(t *testing.T, w *httptest.ResponseRecorder) service.View {
	t.Helper()

	var view service.View
	require.NoError(t, json.NewDecoder(w.Body).Decode(&view))
	return view
}

func createSession(t *testing.T, r http.Handler) string {
	t.Helper()

	w := doRequest(r, http.MethodPost, "/api/session", nil)
	require.Equal(t, http.StatusCreated, w.Code)

	view := decodeView(t, w)
	require.NotEmpty(t, view.SessionID)
	return view.SessionID
}

func TestSessionFlow(t *testing.T) {
	r := newTestRouter(t)
	id := createSession(t, r)
	actionPath := "/api/session/" + id + "/action"

	steps := []struct {
		name  string
		cmd   session.Command
		check func(t *testing.T, v service.View)
	}{
		{
			name: "rating filter",
			cmd:  session.Command{Type: session.CommandSetRatingFilter, Rating: 1},
			check: func(t *testing.T, v service.View) {
				assert.Equal(t, 4, v.Count)
				assert.True(t, v.FiltersActive)
			},
		},
		{
			name: "expand a card",
			cmd:  session.Command{Type: session.CommandToggleExpand, ID: 5},
			check: func(t *testing.T, v service.View) {
				assert.Equal(t, 5, v.State.ExpandedCard)
			},
		},
		{
			name: "collapse it again",
			cmd:  session.Command{Type: session.CommandToggleExpand, ID: 5},
			check: func(t *testing.T, v service.View) {
				assert.Equal(t, session.NoCard, v.State.ExpandedCard)
			},
		},
		{
			name: "cycle sort",
			cmd:  session.Command{Type: session.CommandCycleSort},
			check: func(t *testing.T, v service.View) {
				assert.Equal(t, engine.SortRatingDesc, v.State.SortOrder)
				assert.True(t, v.SortActive)
			},
		},
		{
			name: "quick filter clears category filters",
			cmd:  session.Command{Type: session.CommandToggleFilters},
			check: func(t *testing.T, v service.View) {
				assert.False(t, v.FiltersActive)
				assert.Equal(t, engine.SortRatingDesc, v.State.SortOrder)
				assert.Equal(t, 10, v.Count)
			},
		},
		{
			name: "search",
			cmd:  session.Command{Type: session.CommandSetQuery, Text: "plateau"},
			check: func(t *testing.T, v service.View) {
				assert.Equal(t, 3, v.Count)
			},
		},
		{
			name: "no matches",
			cmd:  session.Command{Type: session.CommandSetCuisineFilter, Cuisine: "Mexican"},
			check: func(t *testing.T, v service.View) {
				assert.True(t, v.Empty)
				assert.Empty(t, v.Restaurants)
			},
		},
		{
			name: "clear all",
			cmd:  session.Command{Type: session.CommandClearAll},
			check: func(t *testing.T, v service.View) {
				assert.Equal(t, session.NewState(), v.State)
				assert.Equal(t, 10, v.Count)
			},
		},
	}

	for _, step := range steps {
		t.Run(step.name, func(t *testing.T) {
			w := doRequest(r, http.MethodPost, actionPath, step.cmd)
			require.Equal(t, http.StatusOK, w.Code, w.Body.String())
			step.check(t, decodeView(t, w))
		})
	}

	w := doRequest(r, http.MethodGet, "/api/session/"+id, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, session.NewState(), decodeView(t, w).State)

	w = doRequest(r, http.MethodDelete, "/api/session/"+id, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = doRequest(r, http.MethodGet, "/api/session/"+id, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDispatch_BadRequests(t *testing.T) {
	r := newTestRouter(t)
	id := createSession(t, r)

	testCases := []struct {
		name string
		body interface{}
	}{
		{"unknown action", session.Command{Type: "bookmark"}},
		{"rating out of range", session.Command{Type: session.CommandSetRatingFilter, Rating: 9}},
		{"not a command", "toggle-expand"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			w := doRequest(r, http.MethodPost, "/api/session/"+id+"/action", tc.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestDispatch_BodyTooLarge(t *testing.T) {
	r := newTestRouter(t)
	id := createSession(t, r)

	cmd := session.Command{Type: session.CommandSetQuery, Text: strings.Repeat("a", maxActionBytes)}
	w := doRequest(r, http.MethodPost, "/api/session/"+id+"/action", cmd)
	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)

	// the session is untouched
	w = doRequest(r, http.MethodGet, "/api/session/"+id, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decodeView(t, w).State.SearchQuery)
}

func TestCreateSession_Limit(t *testing.T) {
	r := newTestRouterWithStore(t, session.NewStore(session.WithMaxSessions(2)))

	first := createSession(t, r)
	createSession(t, r)

	w := doRequest(r, http.MethodPost, "/api/session", nil)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)

	w = doRequest(r, http.MethodDelete, "/api/session/"+first, nil)
	require.Equal(t, http.StatusNoContent, w.Code)
	createSession(t, r)
}

func TestDispatch_UnknownSession(t *testing.T) {
	r := newTestRouter(t)

	w := doRequest(r, http.MethodPost, "/api/session/nope/action", session.Command{Type: session.CommandCycleSort})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doRequest(r, http.MethodDelete, "/api/session/nope", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSessionRoutes_RequireAPIKeyWhenConfigured(t *testing.T) {
	r := newTestRouter(t, "apitest")

	w := doRequest(r, http.MethodPost, "/api/session", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doRequest(r, http.MethodPost, "/api/session", nil, "api_key", "apitest")
	assert.Equal(t, http.StatusCreated, w.Code)

	// Catalog routes stay public
	w = doRequest(r, http.MethodGet, "/api/restaurant", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHealth(t *testing.T) {
	r := newTestRouter(t)

	w := doRequest(r, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var health HealthResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&health))
	assert.Equal(t, "healthy", health.Status)
	assert.Equal(t, Version, health.Version)
	assert.Equal(t, 10, health.Restaurants)
}
