package app

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/aussiebroadwan/encore/pkg/httpx"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("ENCORE_CONFIG_FILE", "")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.Equal(t, DefaultConfig(), cfg)
	require.Equal(t, "HS256", cfg.Algorithm)
	require.Equal(t, 2*time.Minute, cfg.PartialTokenTTL)
	require.True(t, cfg.RequirePartialToken)
}

func TestLoadConfig_FileThenEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "encore.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
issuer = "from-file"
algorithm = "eddsa"
token_ttl = "30m"
require_partial_token = false
port = 9090
log_format = "text"

[rate_limits.strict]
requests = 50
window = "30s"
burst = 10
`), 0o600))

	t.Setenv("ENCORE_CONFIG_FILE", path)
	t.Setenv("PORT", "7070")
	t.Setenv("AUTH_PARTIAL_TOKEN_TTL", "5")
	t.Setenv("RATELIMIT_STRICT_BURST", "20")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.Equal(t, "from-file", cfg.Issuer)
	require.Equal(t, "EdDSA", cfg.Algorithm)
	require.Equal(t, 30*time.Minute, cfg.TokenTTL)
	require.False(t, cfg.RequirePartialToken)
	require.Equal(t, "text", cfg.LogFormat)
	require.Equal(t, 7070, cfg.Port)
	require.Equal(t, 5*time.Minute, cfg.PartialTokenTTL)
	require.Equal(t, httpx.Limit{Requests: 50, Window: 30 * time.Second, Burst: 20}, cfg.RateLimits.Strict)
	require.Equal(t, httpx.DefaultLimits().Public, cfg.RateLimits.Public)
}

func TestLoadConfig_MalformedEnvKeepsValue(t *testing.T) {
	t.Setenv("ENCORE_CONFIG_FILE", "")
	t.Setenv("PORT", "eighty")
	t.Setenv("AUTH_TOKEN_TTL", "soon")
	t.Setenv("AUTH_REQUIRE_PARTIAL_TOKEN", "maybe")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.Equal(t, 8080, cfg.Port)
	require.Equal(t, 15*time.Minute, cfg.TokenTTL)
	require.True(t, cfg.RequirePartialToken)
}

func TestLoadConfig_Errors(t *testing.T) {
	t.Run("unknown algorithm", func(t *testing.T) {
		t.Setenv("ENCORE_CONFIG_FILE", "")
		t.Setenv("AUTH_ALGORITHM", "RS256")
		_, err := LoadConfig()
		require.Error(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		t.Setenv("ENCORE_CONFIG_FILE", filepath.Join(t.TempDir(), "nope.toml"))
		_, err := LoadConfig()
		require.Error(t, err)
	})

	t.Run("broken file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "broken.toml")
		require.NoError(t, os.WriteFile(path, []byte("port = [unterminated"), 0o600))
		t.Setenv("ENCORE_CONFIG_FILE", path)
		_, err := LoadConfig()
		require.Error(t, err)
	})
}
