package repository

import (
	"context"

	"github.com/reshetovitsme/groupwatch/internal/modules/chat/domain"
	"github.com/reshetovitsme/groupwatch/internal/shared/config"
	"github.com/reshetovitsme/groupwatch/internal/shared/errors"
	"github.com/samber/oops"
)

// New opens the repository selected by cfg.StorageBackend
func New(ctx context.Context, cfg *config.Config) (Repository, error) {
	switch cfg.StorageBackend {
	case domain.StorageBackendFile:
		return NewFileStorage(cfg.StoragePath)
	case domain.StorageBackendBolt:
		return NewBoltStorage(cfg.StoragePath)
	case domain.StorageBackendSqlite:
		return NewSQLiteStorage(cfg.StoragePath)
	case domain.StorageBackendPostgres:
		return NewPostgresStorage(ctx, cfg.DatabaseURL)
	default:
		return nil, oops.With("storage_backend", cfg.StorageBackend).Wrap(errors.ErrUnsupportedBackend)
	}
}
