package bootstrap

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GoSim-25-26J-441/projects-overview/internal/api/http/middleware"
	"github.com/GoSim-25-26J-441/projects-overview/internal/identity"
	"github.com/GoSim-25-26J-441/projects-overview/internal/projects/repository"
	"github.com/GoSim-25-26J-441/projects-overview/internal/projects/service"
	"github.com/GoSim-25-26J-441/projects-overview/internal/projects/view"
)

func testDeps(t *testing.T) RouterDeps {
	t.Helper()
	gin.SetMode(gin.TestMode)

	renderer, err := view.NewRenderer("")
	require.NoError(t, err)

	api := repository.NewMockAPI(repository.NewSampleRepository(time.Now()), 0, false)
	return RouterDeps{
		ServiceName:    "projects-overview",
		Version:        "test",
		Catalog:        "memory",
		Projects:       service.NewProjectService(api),
		Renderer:       renderer,
		User:           identity.User{ID: "user-123", Name: "Avery Stone"},
		AllowedOrigins: []string{"http://localhost:3000"},
		RateLimit:      100,
		RateBurst:      100,
	}
}

func serve(r http.Handler, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestBuildRouter(t *testing.T) {
	r := BuildRouter(testDeps(t))

	t.Run("health", func(t *testing.T) {
		w := serve(r, httptest.NewRequest(http.MethodGet, "/healthz", nil))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"catalog":"memory"`)
	})

	t.Run("request id is echoed", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/projects", nil)
		req.Header.Set(middleware.RequestIDHeader, "rid-1")
		w := serve(r, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "rid-1", w.Header().Get(middleware.RequestIDHeader))
	})

	t.Run("cors on the api", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/me", nil)
		req.Header.Set("Origin", "http://localhost:3000")
		w := serve(r, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("page", func(t *testing.T) {
		w := serve(r, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Your Projects")
	})

	t.Run("metrics", func(t *testing.T) {
		// make sure the fetch counter has a sample
		serve(r, httptest.NewRequest(http.MethodGet, "/api/v1/projects", nil))

		w := serve(r, httptest.NewRequest(http.MethodGet, "/metrics", nil))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "projects_overview_projects_fetch_total")
	})
}

func TestBuildRouter_RateLimit(t *testing.T) {
	deps := testDeps(t)
	deps.RateLimit = 0.001
	deps.RateBurst = 1
	r := BuildRouter(deps)

	assert.Equal(t, http.StatusOK, serve(r, httptest.NewRequest(http.MethodGet, "/api/v1/me", nil)).Code)
	assert.Equal(t, http.StatusTooManyRequests, serve(r, httptest.NewRequest(http.MethodGet, "/api/v1/me", nil)).Code)

	// pages are not limited
	assert.Equal(t, http.StatusOK, serve(r, httptest.NewRequest(http.MethodGet, "/health", nil)).Code)
}

func TestCorsConfig(t *testing.T) {
	assert.True(t, corsConfig(nil).AllowAllOrigins)
	assert.True(t, corsConfig([]string{"http://a", "*"}).AllowAllOrigins)

	cfg := corsConfig([]string{"http://a"})
	assert.False(t, cfg.AllowAllOrigins)
	assert.Equal(t, []string{"http://a"}, cfg.AllowOrigins)
}

func TestOpenRedis(t *testing.T) {
	t.Run("connects", func(t *testing.T) {
		mr := miniredis.RunT(t)
		client, err := OpenRedis(context.Background(), RedisOptions{URL: "redis://" + mr.Addr()})
		require.NoError(t, err)
		defer client.Close()

		assert.NoError(t, client.Ping(context.Background()).Err())
	})

	t.Run("missing url", func(t *testing.T) {
		_, err := OpenRedis(context.Background(), RedisOptions{})
		assert.Error(t, err)
	})

	t.Run("bad url", func(t *testing.T) {
		_, err := OpenRedis(context.Background(), RedisOptions{URL: "http://nope"})
		require.Error(t, err)
		assert.True(t, strings.HasPrefix(err.Error(), "redis url:"))
	})
}

func TestSetGinMode(t *testing.T) {
	defer gin.SetMode(gin.TestMode)

	SetGinMode("production")
	assert.Equal(t, gin.ReleaseMode, gin.Mode())

	SetGinMode("test")
	assert.Equal(t, gin.TestMode, gin.Mode())
}
