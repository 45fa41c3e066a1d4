package config

import (
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/reshetovitsme/groupwatch/internal/modules/chat/domain"
	"github.com/reshetovitsme/groupwatch/internal/shared/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdirTemp runs the test from an empty directory so no config file or .env is picked up
func chdirTemp(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	return dir
}

func TestLoad_Defaults(t *testing.T) {
	chdirTemp(t)
	t.Setenv("TELEGRAM_BOT_TOKEN", "123:abc")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "123:abc", cfg.TelegramBotToken)
	assert.Equal(t, "https://api.telegram.org", cfg.TelegramAPIURL)
	assert.Equal(t, domain.StorageBackendFile, cfg.StorageBackend)
	assert.Equal(t, "./data", cfg.StoragePath)
	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.Equal(t, time.Second, cfg.LeaveDelay())
	assert.Equal(t, 200, cfg.JournalSize)
	assert.Equal(t, domain.AppEnvProduction, cfg.AppEnv)
	assert.Equal(t, slog.LevelInfo, cfg.SlogLevel())
}

func TestLoad_EnvOverrides(t *testing.T) {
	chdirTemp(t)
	t.Setenv("TELEGRAM_BOT_TOKEN", "123:abc")
	t.Setenv("STORAGE_BACKEND", "Bolt")
	t.Setenv("LEAVE_DELAY_MS", "0")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("APP_ENV", "testing")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, domain.StorageBackendBolt, cfg.StorageBackend)
	assert.Equal(t, time.Duration(0), cfg.LeaveDelay())
	assert.Equal(t, slog.LevelDebug, cfg.SlogLevel())
	assert.Equal(t, domain.AppEnvTesting, cfg.AppEnv)
}

func TestLoad_ConfigFile(t *testing.T) {
	dir := chdirTemp(t)
	t.Setenv("TELEGRAM_BOT_TOKEN", "123:abc")
	content := "http_port: \"9090\"\nstorage_backend: sqlite\njournal_size: 10\n"
	require.NoError(t, os.WriteFile(dir+"/config.yaml", []byte(content), 0644))

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.HTTPPort)
	assert.Equal(t, domain.StorageBackendSqlite, cfg.StorageBackend)
	assert.Equal(t, 10, cfg.JournalSize)
}

func TestLoad_Validation(t *testing.T) {
	t.Run("missing token", func(t *testing.T) {
		chdirTemp(t)
		t.Setenv("TELEGRAM_BOT_TOKEN", "")

		_, err := Load()
		assert.ErrorIs(t, err, errors.ErrMissingBotToken)
	})

	t.Run("postgres without url", func(t *testing.T) {
		chdirTemp(t)
		t.Setenv("TELEGRAM_BOT_TOKEN", "123:abc")
		t.Setenv("STORAGE_BACKEND", "postgres")
		t.Setenv("DATABASE_URL", "")

		_, err := Load()
		assert.ErrorIs(t, err, errors.ErrMissingDatabaseURL)
	})

	t.Run("unknown backend", func(t *testing.T) {
		chdirTemp(t)
		t.Setenv("TELEGRAM_BOT_TOKEN", "123:abc")
		t.Setenv("STORAGE_BACKEND", "mongo")

		_, err := Load()
		assert.ErrorIs(t, err, errors.ErrUnsupportedBackend)
	})
}
