package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)

	require.Equal(t, 8080, cfg.Server.Port)
	require.Equal(t, "0.0.0.0", cfg.Server.Host)
	require.Equal(t, "configs/base.yaml", cfg.Template.Path)
	require.Equal(t, "rendercv", cfg.Renderer.Binary)
	require.Equal(t, 120*time.Second, cfg.Renderer.Timeout)
	require.Equal(t, "claude", cfg.LLM.Provider)
	require.True(t, cfg.LLM.Enabled)
	require.Equal(t, 60, cfg.RateLimit.RequestsPerMinute)
	require.Equal(t, "info", cfg.Logging.Level)
}

func TestLoadConfigFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `server:
  port: 9090
template:
  path: /etc/resumeforge/base.yaml
renderer:
  binary: /usr/local/bin/rendercv
  timeout: 45s
llm:
  enabled: false
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	require.Equal(t, 9090, cfg.Server.Port)
	require.Equal(t, "/etc/resumeforge/base.yaml", cfg.Template.Path)
	require.Equal(t, "/usr/local/bin/rendercv", cfg.Renderer.Binary)
	require.Equal(t, 45*time.Second, cfg.Renderer.Timeout)
	require.False(t, cfg.LLM.Enabled)

	// untouched keys keep their defaults
	require.Equal(t, "0.0.0.0", cfg.Server.Host)
	require.Equal(t, 10, cfg.RateLimit.Burst)
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	t.Setenv("PORT", "3000")
	t.Setenv("RENDERER_BINARY", "fake-rendercv")
	t.Setenv("RENDERER_TIMEOUT", "10s")
	t.Setenv("LLM_ENABLED", "false")
	t.Setenv("RATE_LIMIT_RPM", "5")

	cfg, err := LoadConfig("")
	require.NoError(t, err)

	require.Equal(t, 3000, cfg.Server.Port)
	require.Equal(t, "fake-rendercv", cfg.Renderer.Binary)
	require.Equal(t, 10*time.Second, cfg.Renderer.Timeout)
	require.False(t, cfg.LLM.Enabled)
	require.Equal(t, 5, cfg.RateLimit.RequestsPerMinute)
}

func TestLoadConfigInvalidEnvValuesIgnored(t *testing.T) {
	t.Setenv("PORT", "not-a-number")
	t.Setenv("RENDERER_TIMEOUT", "soonish")

	cfg, err := LoadConfig("")
	require.NoError(t, err)
	require.Equal(t, 8080, cfg.Server.Port)
	require.Equal(t, 120*time.Second, cfg.Renderer.Timeout)
}

func TestExpandEnvVars(t *testing.T) {
	t.Setenv("SECRET_KEY", "sk-123")

	require.Equal(t, "api_key: sk-123", expandEnvVars("api_key: ${SECRET_KEY}"))
	require.Equal(t, "api_key: sk-123", expandEnvVars("api_key: $SECRET_KEY"))
	// unset variables are left as-is
	require.Equal(t, "key: ${UNSET_VAR_XYZ}", expandEnvVars("key: ${UNSET_VAR_XYZ}"))
}

func TestLoadConfigExpandsEnvInFile(t *testing.T) {
	t.Setenv("TEST_LLM_KEY", "sk-from-env")

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("llm:\n  api_key: \"${TEST_LLM_KEY}\"\n"), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.Equal(t, "sk-from-env", cfg.LLM.APIKey)
}
