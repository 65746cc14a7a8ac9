package config

import (
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"YT_API_KEY", "YOUTUBE_API_KEY", "PORT", "YOUTUBE_API_ENDPOINT", "CORS_ALLOWED_ORIGINS"} {
		t.Setenv(k, "")
	}
	// STATIC_DIR is checked for presence, not value
	t.Setenv("STATIC_DIR", "")
	os.Unsetenv("STATIC_DIR")
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("YT_API_KEY", "abc")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "abc", cfg.YouTubeAPIKey)
	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, ":3000", cfg.Addr())
	assert.Equal(t, "frontend", cfg.StaticDir)
	assert.Empty(t, cfg.YouTubeEndpoint)
	assert.Empty(t, cfg.AllowedOrigins)
}

func TestLoadOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("YOUTUBE_API_KEY", "fallback")
	t.Setenv("PORT", "8081")
	t.Setenv("STATIC_DIR", "")
	t.Setenv("YOUTUBE_API_ENDPOINT", "http://localhost:9999/")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://localhost:3000, https://songs.example.com,,")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "fallback", cfg.YouTubeAPIKey)
	assert.Equal(t, "8081", cfg.Port)
	assert.Equal(t, "", cfg.StaticDir)
	assert.Equal(t, "http://localhost:9999/", cfg.YouTubeEndpoint)
	assert.Equal(t, []string{"http://localhost:3000", "https://songs.example.com"}, cfg.AllowedOrigins)
}

func TestLoadPrefersYTAPIKey(t *testing.T) {
	clearEnv(t)
	t.Setenv("YT_API_KEY", "primary")
	t.Setenv("YOUTUBE_API_KEY", "fallback")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "primary", cfg.YouTubeAPIKey)
}

func TestLoadMissingAPIKey(t *testing.T) {
	clearEnv(t)

	_, err := Load()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMissingAPIKey))
}

func TestValidate(t *testing.T) {
	assert.ErrorIs(t, (&Config{Port: "3000"}).Validate(), ErrMissingAPIKey)
	assert.Error(t, (&Config{YouTubeAPIKey: "k"}).Validate())
	assert.NoError(t, (&Config{YouTubeAPIKey: "k", Port: "3000"}).Validate())
}
