package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("PROJECTS_FETCH_DELAY", "")
	t.Setenv("PROJECTS_FORCE_ERROR", "")
	t.Setenv("MOCK_USER_NAME", "")
	t.Setenv("REDIS_URL", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 900*time.Millisecond, cfg.Projects.FetchDelay)
	assert.False(t, cfg.Projects.ForceError)
	assert.Equal(t, "Avery Stone", cfg.Identity.UserName)
	assert.Equal(t, "user-123", cfg.Identity.UserID)
	assert.Equal(t, "projects:catalog", cfg.Redis.CatalogKey)
	assert.Empty(t, cfg.Redis.URL)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("PROJECTS_FETCH_DELAY", "25ms")
	t.Setenv("PROJECTS_FORCE_ERROR", "true")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.test, ,http://b.test")
	t.Setenv("API_RATE_BURST", "not-a-number")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, 25*time.Millisecond, cfg.Projects.FetchDelay)
	assert.True(t, cfg.Projects.ForceError)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, 40, cfg.Server.RateBurst)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Server:   ServerConfig{Port: "8080", RateLimit: 1, RateBurst: 1},
			Projects: ProjectsConfig{FetchDelay: time.Second},
			Redis:    RedisConfig{CatalogKey: "k"},
		}
	}

	t.Run("accepts a complete config", func(t *testing.T) {
		assert.NoError(t, valid().Validate())
	})

	t.Run("rejects a missing port", func(t *testing.T) {
		cfg := valid()
		cfg.Server.Port = ""
		assert.Error(t, cfg.Validate())
	})

	t.Run("rejects a negative delay", func(t *testing.T) {
		cfg := valid()
		cfg.Projects.FetchDelay = -time.Millisecond
		assert.Error(t, cfg.Validate())
	})

	t.Run("rejects a zero rate limit", func(t *testing.T) {
		cfg := valid()
		cfg.Server.RateLimit = 0
		assert.Error(t, cfg.Validate())
	})

	t.Run("requires a catalog key with redis", func(t *testing.T) {
		cfg := valid()
		cfg.Redis.URL = "redis://localhost:6379/0"
		cfg.Redis.CatalogKey = ""
		assert.Error(t, cfg.Validate())
	})
}
