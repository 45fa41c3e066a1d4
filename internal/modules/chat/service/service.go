package service

import (
	"context"
	"log/slog"

	"github.com/reshetovitsme/groupwatch/internal/modules/chat/domain"
	chatRepo "github.com/reshetovitsme/groupwatch/internal/modules/chat/repository"
	"github.com/samber/oops"
)

// Service handles chat record business logic
type Service struct {
	Filter
	repo   chatRepo.Repository
	logger *slog.Logger
}

// New creates a new chat service
func New(repo chatRepo.Repository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// EnsureChatRecorded persists chatID if it is not known yet.
// Ineligible chats are never written.
func (s *Service) EnsureChatRecorded(ctx context.Context, chatID int64) error {
	if s.Validate(chatID) != Eligible {
		return nil
	}
	if err := s.repo.EnsureChat(ctx, chatID); err != nil {
		return oops.In("chat").With("chat_id", chatID, "operation", "ensure_chat").Wrap(err)
	}
	return nil
}

// ForgetChat removes the record for chatID. A missing record is not an error.
func (s *Service) ForgetChat(ctx context.Context, chatID int64) error {
	if err := s.repo.RemoveChat(ctx, chatID); err != nil {
		return oops.In("chat").With("chat_id", chatID, "operation", "remove_chat").Wrap(err)
	}
	s.logger.Info("Chat record removed", "chat_id", chatID)
	return nil
}

// GetChat retrieves a chat record by ID
func (s *Service) GetChat(ctx context.Context, chatID int64) (*domain.Chat, error) {
	return s.repo.GetChat(ctx, chatID)
}

// GetAllChats retrieves all chat records
func (s *Service) GetAllChats(ctx context.Context) ([]*domain.Chat, error) {
	return s.repo.GetAllChats(ctx)
}
