package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("REDIS_ADDR", "")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, 15*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Empty(t, cfg.Database.URL)
	assert.True(t, cfg.Database.Migrate)
	assert.Empty(t, cfg.Redis.Addr)
	assert.Equal(t, 10*time.Minute, cfg.Redis.CacheTTL)
	assert.False(t, cfg.Auth.Enabled)
	assert.Equal(t, 15*time.Minute, cfg.Auth.TokenTTL)
	assert.False(t, cfg.RateLimit.Enabled)
	assert.Equal(t, 3, cfg.RateLimit.Burst)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("BEERSTOCK_SERVER_ADDR", ":9090")
	t.Setenv("BEERSTOCK_AUTH_ENABLED", "true")
	t.Setenv("BEERSTOCK_AUTH_JWT_SECRET", "s3cr3t-from-env")
	t.Setenv("BEERSTOCK_REDIS_CACHE_TTL", "30s")
	t.Setenv("DATABASE_URL", "postgres://u:p@localhost:5432/beers")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Server.Addr)
	assert.True(t, cfg.Auth.Enabled)
	assert.Equal(t, "s3cr3t-from-env", cfg.Auth.JWTSecret)
	assert.Equal(t, 30*time.Second, cfg.Redis.CacheTTL)
	assert.Equal(t, "postgres://u:p@localhost:5432/beers", cfg.Database.URL)
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := []byte(`
server:
  addr: ":7000"
redis:
  addr: "cache:6379"
ratelimit:
  enabled: true
  rps: 5
  burst: 10
`)
	require.NoError(t, os.WriteFile(path, content, 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":7000", cfg.Server.Addr)
	assert.Equal(t, "cache:6379", cfg.Redis.Addr)
	assert.True(t, cfg.RateLimit.Enabled)
	assert.Equal(t, 5.0, cfg.RateLimit.RPS)
	assert.Equal(t, 10, cfg.RateLimit.Burst)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestLoad_InvalidRateLimit(t *testing.T) {
	t.Setenv("BEERSTOCK_RATELIMIT_ENABLED", "true")
	t.Setenv("BEERSTOCK_RATELIMIT_BURST", "0")

	_, err := Load("")
	assert.ErrorContains(t, err, "ratelimit")
}

func TestLoad_AuthSecret(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		wantErr bool
	}{
		{name: "default placeholder", wantErr: true},
		{name: "placeholder set explicitly", env: map[string]string{"BEERSTOCK_AUTH_JWT_SECRET": "change-me"}, wantErr: true},
		{name: "explicit secret", env: map[string]string{"BEERSTOCK_AUTH_JWT_SECRET": "s3cr3t"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("BEERSTOCK_AUTH_ENABLED", "true")
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			cfg, err := Load("")
			if tt.wantErr {
				assert.ErrorContains(t, err, "auth.jwt_secret")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "s3cr3t", cfg.Auth.JWTSecret)
		})
	}
}

func TestLoad_DefaultSecretAllowedWithoutAuth(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.False(t, cfg.Auth.Enabled)
	assert.Equal(t, defaultJWTSecret, cfg.Auth.JWTSecret)
}
