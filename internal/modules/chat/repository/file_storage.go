package repository

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"time"

	"github.com/reshetovitsme/groupwatch/internal/modules/chat/domain"
	"github.com/reshetovitsme/groupwatch/internal/shared/errors"
	"github.com/samber/lo"
	"github.com/samber/oops"
)

// FileStorage implements Repository using one JSON file per chat
type FileStorage struct {
	basePath string
	mu       sync.RWMutex
}

// NewFileStorage creates a new file-based chat repository
func NewFileStorage(basePath string) (*FileStorage, error) {
	chatPath := filepath.Join(basePath, "chats")
	if err := os.MkdirAll(chatPath, 0755); err != nil {
		return nil, oops.With("base_path", basePath, "context", "failed to create chats directory").Wrap(err)
	}

	return &FileStorage{basePath: chatPath}, nil
}

func (s *FileStorage) path(chatID int64) string {
	return filepath.Join(s.basePath, strconv.FormatInt(chatID, 10)+".json")
}

func (s *FileStorage) EnsureChat(_ context.Context, chatID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	chat := &domain.Chat{ID: chatID, FirstSeen: now, UpdatedAt: now}
	if existing, err := s.read(chatID); err == nil {
		chat.FirstSeen = existing.FirstSeen
	}

	data, err := json.MarshalIndent(chat, "", "  ")
	if err != nil {
		return oops.With("chat_id", chatID, "context", "failed to marshal chat").Wrap(err)
	}

	if err := os.WriteFile(s.path(chatID), data, 0644); err != nil {
		return oops.With("chat_id", chatID, "context", "failed to write chat").Wrap(err)
	}
	return nil
}

func (s *FileStorage) RemoveChat(_ context.Context, chatID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path(chatID)); err != nil && !os.IsNotExist(err) {
		return oops.With("chat_id", chatID, "context", "failed to remove chat").Wrap(err)
	}
	return nil
}

func (s *FileStorage) GetChat(_ context.Context, chatID int64) (*domain.Chat, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.read(chatID)
}

func (s *FileStorage) read(chatID int64) (*domain.Chat, error) {
	data, err := os.ReadFile(s.path(chatID))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.ErrChatNotFound
		}
		return nil, oops.With("chat_id", chatID, "context", "failed to read chat").Wrap(err)
	}

	var chat domain.Chat
	if err := json.Unmarshal(data, &chat); err != nil {
		return nil, oops.With("chat_id", chatID, "context", "failed to unmarshal chat").Wrap(err)
	}

	return &chat, nil
}

func (s *FileStorage) GetAllChats(_ context.Context) ([]*domain.Chat, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries, err := os.ReadDir(s.basePath)
	if err != nil {
		return nil, oops.With("directory", s.basePath, "context", "failed to read chats directory").Wrap(err)
	}

	chats := lo.FilterMap(entries, func(entry os.DirEntry, _ int) (*domain.Chat, bool) {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".json" {
			return nil, false
		}

		data, err := os.ReadFile(filepath.Join(s.basePath, entry.Name()))
		if err != nil {
			return nil, false
		}

		var chat domain.Chat
		if err := json.Unmarshal(data, &chat); err != nil {
			return nil, false
		}

		return &chat, true
	})

	return chats, nil
}

func (s *FileStorage) Close() error { return nil }
