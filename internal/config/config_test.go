package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("ENABLE_LOGGING", "")
	t.Setenv("APP_MODE", "")
	t.Setenv("PERSONAL_AI_BASE_URL", "")
	t.Setenv("REQUEST_TIMEOUT_SEC", "")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	require.False(t, cfg.Logging.Enabled)
	require.Equal(t, "development", cfg.Logging.AppMode)
	require.True(t, cfg.Logging.Development())
	require.Equal(t, "https://api.personal.ai", cfg.PersonalAI.BaseURL)
	require.Equal(t, 15*time.Second, cfg.RequestTimeout)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("ENABLE_LOGGING", "true")
	t.Setenv("APP_MODE", "production")
	t.Setenv("LOG_FILE_PATH", "/tmp/advisor.log")
	t.Setenv("PERSONAL_AI_API_KEY", "k")
	t.Setenv("PERSONAL_AI_BASE_URL", "https://api.test.ai")
	t.Setenv("PERSONAL_AI_DOMAIN_NAME", "ai-climbing")
	t.Setenv("FIXER_ACCESS_KEY", "fk")
	t.Setenv("REQUEST_TIMEOUT_SEC", "30")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	require.True(t, cfg.Logging.Enabled)
	require.False(t, cfg.Logging.Development())
	require.Equal(t, "/tmp/advisor.log", cfg.Logging.FilePath)
	require.Equal(t, "k", cfg.PersonalAI.APIKey)
	require.Equal(t, "https://api.test.ai", cfg.PersonalAI.BaseURL)
	require.Equal(t, "ai-climbing", cfg.PersonalAI.DomainName)
	require.Equal(t, "fk", cfg.Forex.FixerKey)
	require.Equal(t, 30*time.Second, cfg.RequestTimeout)
}

func TestLoad_DotEnvFile(t *testing.T) {
	envPath := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(envPath, []byte("CURRENCYLAYER_ACCESS_KEY=cl-from-file\n"), 0o600))
	os.Unsetenv("CURRENCYLAYER_ACCESS_KEY")
	t.Cleanup(func() { os.Unsetenv("CURRENCYLAYER_ACCESS_KEY") })

	cfg, err := Load(envPath)
	require.NoError(t, err)
	require.Equal(t, "cl-from-file", cfg.Forex.CurrencyLayerKey)
}

func TestParseBool(t *testing.T) {
	t.Parallel()

	for _, v := range []string{"1", "true", "TRUE", "yes", "Y", "on"} {
		require.Truef(t, parseBool(v), "%q should parse as true", v)
	}
	for _, v := range []string{"", "0", "false", "no", "off", "banana"} {
		require.Falsef(t, parseBool(v), "%q should parse as false", v)
	}
}
