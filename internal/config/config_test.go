package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("VAX_CONFIG_PATH", "")
	t.Setenv("PORT", "")
	t.Setenv("DB_DSN", "")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, 8080, cfg.Server.Port)
	require.Equal(t, "info", cfg.Log.Level)
	require.Equal(t, time.Second, cfg.Auth.LoginDelay)
	require.Empty(t, cfg.DB.DSN)
	require.Equal(t, "0.0.0.0:8080", cfg.Addr())
}

func TestLoad_FileThenEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "vax.yaml")
	content := `
app: vax-test
server:
  port: 9000
log:
  level: debug
  format: json
auth:
  login_delay: 250ms
demo:
  today: "2025-08-05"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	t.Setenv("VAX_CONFIG_PATH", path)
	t.Setenv("PORT", "9100")
	t.Setenv("LOG_LEVEL", "")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "vax-test", cfg.App)
	require.Equal(t, 9100, cfg.Server.Port, "env must win over file")
	require.Equal(t, "debug", cfg.Log.Level)
	require.Equal(t, "json", cfg.Log.Format)
	require.Equal(t, 250*time.Millisecond, cfg.Auth.LoginDelay)

	now, err := cfg.Clock()
	require.NoError(t, err)
	require.Equal(t, "2025-08-05", now().Format("2006-01-02"))
}

func TestLoad_InvalidEnv(t *testing.T) {
	t.Setenv("VAX_CONFIG_PATH", "")
	t.Setenv("PORT", "not-a-port")

	_, err := Load()
	require.Error(t, err)
}

func TestClock_InvalidDate(t *testing.T) {
	cfg := Default()
	cfg.Demo.Today = "05/08/2025"

	_, err := cfg.Clock()
	require.Error(t, err)
}
