package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "5000", cfg.HTTPPort)
	assert.Equal(t, int64(50<<20), cfg.MaxBodyBytes)
	assert.Equal(t, 5*time.Minute, cfg.CacheTTL)
	assert.Equal(t, []string{"http://localhost:3000", "http://localhost:5173"}, cfg.AllowedOrigins())
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("HTTP_PORT", "8081")
	t.Setenv("CACHE_TTL", "30s")
	t.Setenv("CORS_ORIGINS", " https://a.example , ,https://b.example")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "8081", cfg.HTTPPort)
	assert.Equal(t, 30*time.Second, cfg.CacheTTL)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.AllowedOrigins())
}

func TestLoadClientConfig_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "postad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("api_base_url: http://api.test\nphoto_slots: 20\nnav_compact_size: 5\n"), 0o600))

	cfg, err := LoadClientConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "http://api.test", cfg.APIBaseURL)
	assert.Equal(t, 20, cfg.PhotoSlots)
	assert.Equal(t, 5, cfg.NavCompactSize)
	assert.Equal(t, 10*time.Second, cfg.GeolocationTimeout)
	assert.Equal(t, 3*time.Second, cfg.AutoCloseDelay)
}

func TestLoadClientConfig_RejectsTooManySlots(t *testing.T) {
	t.Setenv("PHOTO_SLOTS", "21")
	_, err := LoadClientConfig("")
	assert.Error(t, err)
}

func TestLoadClientConfig_LogDefaultsAndOverrides(t *testing.T) {
	cfg, err := LoadClientConfig("")
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.Equal(t, "stderr", cfg.Log.OutputFile)

	t.Setenv("LOG_FORMAT", "JSON")
	path := filepath.Join(t.TempDir(), "postad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log_level: debug\n"), 0o600))

	cfg, err = LoadClientConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
}
