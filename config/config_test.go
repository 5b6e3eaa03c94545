package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	assert.Equal(t, "shopdesk", GetName())
	assert.NotEmpty(t, GetVersion())
	assert.Equal(t, 5000, GetPort())
	assert.Equal(t, 0, GetSessionMaxAge())
	assert.Equal(t, "pt-BR", GetDefaultLang())
	assert.Equal(t, filepath.Join("db", "shopdesk.db"), GetDBPath())
	assert.Equal(t, Info, GetLogLevel())
	assert.False(t, IsDebug())
}

func TestEnvironment(t *testing.T) {
	t.Setenv("SHOPDESK_PORT", "8080")
	t.Setenv("SHOPDESK_DB_FOLDER", "/var/lib/shopdesk")
	t.Setenv("SHOPDESK_LOG_LEVEL", "WARN")
	t.Setenv("SHOPDESK_SECRET", "s3cret")

	assert.Equal(t, 8080, GetPort())
	assert.Equal(t, "/var/lib/shopdesk/shopdesk.db", GetDBPath())
	assert.Equal(t, Warn, GetLogLevel())
	assert.Equal(t, "s3cret", GetSecret())

	t.Setenv("SHOPDESK_DEBUG", "true")
	assert.Equal(t, Debug, GetLogLevel())
}

func TestMalformedIntFallsBack(t *testing.T) {
	t.Setenv("SHOPDESK_PORT", "http")
	assert.Equal(t, 5000, GetPort())

	t.Setenv("SHOPDESK_SESSION_MAX_AGE", "-5")
	assert.Equal(t, 0, GetSessionMaxAge())
}

func TestConfigFile(t *testing.T) {
	saved := v
	t.Cleanup(func() { v = saved })
	v = newViper()

	dir := t.TempDir()
	require.NoError(t, loadConfigFile(dir))
	assert.Equal(t, 5000, GetPort())

	content := "port = 7000\nlisten = \"127.0.0.1\"\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "shopdesk.toml"), []byte(content), 0o600))
	require.NoError(t, loadConfigFile(dir))
	assert.Equal(t, 7000, GetPort())
	assert.Equal(t, "127.0.0.1", GetListen())

	t.Setenv("SHOPDESK_PORT", "7001")
	assert.Equal(t, 7001, GetPort())
}
