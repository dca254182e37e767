package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load(filepath.Join(t.TempDir(), "missing.env"))

	require.Equal(t, "8083", cfg.Port)
	require.Equal(t, DriverMemory, cfg.StorageDriver)
	require.Equal(t, 120, cfg.RateLimitRequests)
	require.Equal(t, time.Minute, cfg.RateLimitWindow)
	require.False(t, cfg.DebugRoutes)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("STORAGE_DRIVER", "Redis")
	t.Setenv("REDIS_DB", "3")
	t.Setenv("RATE_LIMIT_WINDOW", "30s")
	t.Setenv("DEBUG_ROUTES", "true")

	cfg := Load(filepath.Join(t.TempDir(), "missing.env"))

	require.Equal(t, "9000", cfg.Port)
	require.Equal(t, DriverRedis, cfg.StorageDriver)
	require.Equal(t, 3, cfg.RedisDB)
	require.Equal(t, 30*time.Second, cfg.RateLimitWindow)
	require.True(t, cfg.DebugRoutes)
}

func TestLoadFromDotEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("SERVICE_NAME=liaison\nREDIS_DB=oops\n"), 0o600))
	t.Cleanup(func() {
		os.Unsetenv("SERVICE_NAME")
		os.Unsetenv("REDIS_DB")
	})

	cfg := Load(path)

	require.Equal(t, "liaison", cfg.ServiceName)
	require.Equal(t, 0, cfg.RedisDB)
}
