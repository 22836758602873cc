package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gracemobile/backend/internal/config"
	"github.com/gracemobile/backend/internal/model/library"
	chatService "github.com/gracemobile/backend/internal/service/chat"
	"github.com/gracemobile/backend/internal/store/memory"
)

func setupServer() http.Handler {
	svc := chatService.NewService(memory.NewStore())
	store := library.NewMemoryStore(library.Seed())
	return NewRouter(config.CORSConfig{AllowedOrigins: []string{"http://localhost:8081"}}, svc, store)
}

func TestHealthEndpoint(t *testing.T) {
	r := setupServer()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	require.Equal(t, http.StatusOK, resp.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
}

func TestCORSHeadersForAllowedOrigin(t *testing.T) {
	r := setupServer()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", "http://localhost:8081")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	assert.Equal(t, "http://localhost:8081", resp.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORSIgnoresUnknownOrigin(t *testing.T) {
	r := setupServer()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", "http://evil.example")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	assert.Empty(t, resp.Header().Get("Access-Control-Allow-Origin"))
}

func TestGetVerse(t *testing.T) {
	r := setupServer()

	req := httptest.NewRequest(http.MethodGet, "/api/bible/verse/John/3/16", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	require.Equal(t, http.StatusOK, resp.Code)

	var verse library.BibleVerse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &verse))
	assert.Contains(t, verse.Text, "For God so loved the world")
}

func TestGetVerseNotFound(t *testing.T) {
	r := setupServer()

	req := httptest.NewRequest(http.MethodGet, "/api/bible/verse/John/99/99", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestGetVerseBadChapter(t *testing.T) {
	r := setupServer()

	req := httptest.NewRequest(http.MethodGet, "/api/bible/verse/John/three/16", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestListPrayersByCategory(t *testing.T) {
	r := setupServer()

	req := httptest.NewRequest(http.MethodGet, "/api/prayers?category=anxiety", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	require.Equal(t, http.StatusOK, resp.Code)

	var prayers []library.Prayer
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &prayers))
	require.NotEmpty(t, prayers)
	for _, p := range prayers {
		assert.Equal(t, "anxiety", p.Category)
	}
}

func TestListDevotionalsNewestFirst(t *testing.T) {
	r := setupServer()

	req := httptest.NewRequest(http.MethodGet, "/api/devotionals", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	require.Equal(t, http.StatusOK, resp.Code)

	var devotionals []library.Devotional
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &devotionals))
	require.NotEmpty(t, devotionals)
	for i := 1; i < len(devotionals); i++ {
		assert.False(t, devotionals[i].Date.After(devotionals[i-1].Date))
	}
}
