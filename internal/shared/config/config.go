package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/reshetovitsme/groupwatch/internal/modules/chat/domain"
	"github.com/reshetovitsme/groupwatch/internal/shared/errors"
	"github.com/samber/lo"
	"github.com/samber/oops"
)

type Config struct {
	TelegramBotToken string                `koanf:"telegram_bot_token"`
	TelegramAPIURL   string                `koanf:"telegram_api_url"`
	StorageBackend   domain.StorageBackend `koanf:"storage_backend"`
	StoragePath      string                `koanf:"storage_path"`
	DatabaseURL      string                `koanf:"database_url"`
	HTTPPort         string                `koanf:"http_port"`
	LogLevel         string                `koanf:"log_level"`
	LeaveDelayMS     int                   `koanf:"leave_delay_ms"`
	JournalSize      int                   `koanf:"journal_size"`
	SupportURL       string                `koanf:"support_url"`
	AppEnv           domain.AppEnv         `koanf:"app_env"`
}

// LeaveDelay is the pause between a farewell notice and leaving the chat
func (c *Config) LeaveDelay() time.Duration {
	return time.Duration(c.LeaveDelayMS) * time.Millisecond
}

// SlogLevel maps log_level onto slog, falling back to info
func (c *Config) SlogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return level
}

func Load() (*Config, error) {
	// .env is optional; real environment variables always win
	_ = godotenv.Load()

	k := koanf.New(".")

	configFiles := []string{
		"config.yaml",
		"config.yml",
		"config.json",
		"config.toml",
	}

	configFile, found := lo.Find(configFiles, func(file string) bool {
		_, err := os.Stat(file)
		return err == nil
	})

	if found {
		var parser koanf.Parser
		ext := filepath.Ext(configFile)

		switch ext {
		case ".yaml", ".yml":
			parser = yaml.Parser()
		case ".json":
			parser = json.Parser()
		case ".toml":
			parser = toml.Parser()
		default:
			return nil, oops.Errorf("unsupported config file extension: %s", ext)
		}

		if err := k.Load(file.Provider(configFile), parser); err != nil {
			return nil, oops.With("config_file", configFile).Wrap(err)
		}
	}

	// Environment variables override config file values
	if err := k.Load(env.Provider("", ".", func(s string) string {
		return strings.ToLower(s)
	}), nil); err != nil {
		return nil, oops.With("context", "loading environment variables").Wrap(err)
	}

	defaults := map[string]any{
		"telegram_api_url": "https://api.telegram.org",
		"storage_backend":  string(domain.StorageBackendFile),
		"storage_path":     "./data",
		"http_port":        "8080",
		"log_level":        "info",
		"leave_delay_ms":   1000,
		"journal_size":     200,
		"support_url":      "https://t.me/",
		"app_env":          string(domain.AppEnvProduction),
	}
	for key, value := range defaults {
		if !k.Exists(key) {
			k.Set(key, value)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, oops.With("context", "unmarshaling config").Wrap(err)
	}

	backend, err := domain.ParseStorageBackend(k.String("storage_backend"))
	if err != nil {
		return nil, oops.With("storage_backend", k.String("storage_backend")).Wrap(errors.ErrUnsupportedBackend)
	}
	cfg.StorageBackend = backend

	if appEnv, err := domain.ParseAppEnv(k.String("app_env")); err == nil {
		cfg.AppEnv = appEnv
	} else {
		cfg.AppEnv = domain.AppEnvProduction
	}

	if cfg.JournalSize <= 0 {
		cfg.JournalSize = 200
	}
	if cfg.LeaveDelayMS < 0 {
		cfg.LeaveDelayMS = 0
	}

	if cfg.TelegramBotToken == "" {
		return nil, errors.ErrMissingBotToken
	}
	if cfg.StorageBackend == domain.StorageBackendPostgres && cfg.DatabaseURL == "" {
		return nil, errors.ErrMissingDatabaseURL
	}

	return &cfg, nil
}
