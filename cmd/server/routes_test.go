package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"octofit.backend/internal/infrastructure/datasources"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	cfg := baseTestConfig()
	db, err := gorm.Open(sqlite.Open(cfg.Database.SQLitePath), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, datasources.Migrate(db))
	return newRouter(cfg, buildApp(cfg, db).routes)
}

func serve(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestNewRouter_RegistersEveryResource(t *testing.T) {
	r := newTestRouter(t)

	registered := map[string]bool{}
	for _, route := range r.Routes() {
		registered[route.Method+" "+route.Path] = true
	}

	for _, path := range []string{"/api/users", "/api/teams", "/api/activities", "/api/leaderboard", "/api/workouts"} {
		for _, want := range []string{
			"GET " + path + "/",
			"POST " + path + "/",
			"GET " + path + "/:id/",
			"PUT " + path + "/:id/",
			"PATCH " + path + "/:id/",
			"DELETE " + path + "/:id/",
		} {
			assert.True(t, registered[want], "route %s not registered", want)
		}
	}
	for _, want := range []string{"GET /", "GET /api/", "GET /health", "GET /metrics"} {
		assert.True(t, registered[want], "route %s not registered", want)
	}
}

func TestNewRouter_EndToEnd(t *testing.T) {
	r := newTestRouter(t)

	w := serve(r, http.MethodGet, "/api/", "")
	require.Equal(t, http.StatusOK, w.Code)
	var index struct {
		Endpoints map[string]string `json:"endpoints"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &index))
	assert.Equal(t, "http://example.com/api/users/", index.Endpoints["users"])

	w = serve(r, http.MethodPost, "/api/teams/", `{"name":"Team DC"}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

	w = serve(r, http.MethodGet, "/api/teams/", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Team DC")

	assert.Equal(t, http.StatusNotFound, serve(r, http.MethodGet, "/api/teams/not-a-number/", "").Code)
	assert.Equal(t, http.StatusNotFound, serve(r, http.MethodGet, "/api/unknown/", "").Code)
}

func TestNewRouter_HealthAndMetrics(t *testing.T) {
	r := newTestRouter(t)

	w := serve(r, http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())

	serve(r, http.MethodGet, "/api/workouts/", "")
	w = serve(r, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "octofit_http_requests_total")
	assert.Contains(t, w.Body.String(), `route="/api/workouts/"`)
}

func TestNewRouter_CORSPreflight(t *testing.T) {
	r := newTestRouter(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/users/", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}
