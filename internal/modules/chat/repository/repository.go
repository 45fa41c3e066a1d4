package repository

import (
	"context"

	"github.com/reshetovitsme/groupwatch/internal/modules/chat/domain"
)

// Repository defines the interface for chat record persistence.
// EnsureChat is an upsert and RemoveChat succeeds when the record is already gone,
// so both can be replayed safely.
type Repository interface {
	EnsureChat(ctx context.Context, chatID int64) error
	RemoveChat(ctx context.Context, chatID int64) error
	GetChat(ctx context.Context, chatID int64) (*domain.Chat, error)
	GetAllChats(ctx context.Context) ([]*domain.Chat, error)
	Close() error
}
