package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("DEFAULT_LOCALE", "")

	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "fr", cfg.DefaultLocale)
	assert.Equal(t, 5*time.Minute, cfg.CommentCacheTTL)
	assert.Equal(t, 1000*time.Second, cfg.UploadURLExpiry)
	assert.False(t, cfg.IsProduction())
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("COMMENT_CACHE_TTL", "30s")
	t.Setenv("MINIO_USE_SSL", "true")
	t.Setenv("DEFAULT_LOCALE", "en")

	cfg := Load()

	assert.Equal(t, "9090", cfg.Port)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, 30*time.Second, cfg.CommentCacheTTL)
	assert.True(t, cfg.MinIOUseSSL)
	assert.Equal(t, "en", cfg.DefaultLocale)
}
