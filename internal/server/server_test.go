package server

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seedtheme/seedtheme/internal/logger"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	log, err := logger.New(logger.Options{Level: "error", Writer: io.Discard})
	require.NoError(t, err)

	srv, err := New(context.Background(), "#1976D2", 0, log)
	require.NoError(t, err)
	return srv
}

func TestNewRejectsInvalidSeed(t *testing.T) {
	_, err := New(context.Background(), "not-a-color", 0, nil)
	assert.Error(t, err)
}

func TestThemeCSSEndpoint(t *testing.T) {
	srv := newTestServer(t)

	rec := httptest.NewRecorder()
	srv.Routes().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/theme.css", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/css; charset=utf-8", rec.Header().Get("Content-Type"))

	body := rec.Body.String()
	assert.Contains(t, body, "@theme {")
	assert.Contains(t, body, "--color-light-primary:")
	assert.Contains(t, body, "--color-dark-on-form: var(--color-dark-on-surface);")
}

func TestSchemeEndpoint(t *testing.T) {
	srv := newTestServer(t)

	rec := httptest.NewRecorder()
	srv.Routes().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/scheme", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var resp schemeResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))

	assert.Equal(t, "#1976D2", resp.Seed)
	require.Len(t, resp.Themes, 2)
	assert.Equal(t, "light", resp.Themes[0].Brightness)
	assert.Equal(t, "dark", resp.Themes[1].Brightness)
	assert.Len(t, resp.Themes[0].Colors, 49)
	assert.Equal(t, "primary", resp.Themes[0].Colors[0].Name)
}

func TestSchemeUpdate(t *testing.T) {
	srv := newTestServer(t)
	mux := srv.Routes()

	before := httptest.NewRecorder()
	mux.ServeHTTP(before, httptest.NewRequest(http.MethodGet, "/theme.css", nil))

	payload, _ := json.Marshal(updateRequest{Seed: "#E91E63", Contrast: 0.5})
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/scheme", bytes.NewReader(payload)))
	require.Equal(t, http.StatusNoContent, rec.Code)

	after := httptest.NewRecorder()
	mux.ServeHTTP(after, httptest.NewRequest(http.MethodGet, "/theme.css", nil))

	assert.NotEqual(t, before.Body.String(), after.Body.String())
	assert.Contains(t, after.Body.String(), "Seed color  : #E91E63")
	assert.Contains(t, after.Body.String(), "Contrast    : 0.50")
}

func TestSchemeUpdateRejectsBadSeed(t *testing.T) {
	srv := newTestServer(t)

	payload, _ := json.Marshal(updateRequest{Seed: "nope"})
	rec := httptest.NewRecorder()
	srv.Routes().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/scheme", bytes.NewReader(payload)))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestIndexPage(t *testing.T) {
	srv := newTestServer(t)

	rec := httptest.NewRecorder()
	srv.Routes().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "var(--color-light-primary)")

	rec = httptest.NewRecorder()
	srv.Routes().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nope", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestWebSocketReceivesUpdateEvents(t *testing.T) {
	srv := newTestServer(t)

	ts := httptest.NewServer(srv.Routes())
	defer ts.Close()

	wsURL := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	defer conn.Close()

	require.NoError(t, srv.Update(context.Background(), "#00695C", 0))

	var msg map[string]any
	require.NoError(t, conn.ReadJSON(&msg))
	assert.Equal(t, "theme-updated", msg["event"])
	assert.Equal(t, "#00695C", msg["seed"])
}

func TestHubDropsDeadConnections(t *testing.T) {
	srv := newTestServer(t)

	ts := httptest.NewServer(srv.Routes())
	defer ts.Close()

	wsURL := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	require.NoError(t, conn.Close())

	// Broadcasting to a closed socket evicts it.
	srv.hub.Broadcast(map[string]any{"event": "ping"})
	srv.hub.Broadcast(map[string]any{"event": "ping"})
	assert.Zero(t, srv.hub.Count())
}
