package service

import (
	"log/slog"
	"sync"
	"time"

	"github.com/reshetovitsme/groupwatch/internal/modules/runtime/domain"
	"github.com/samber/lo"
)

// Registry holds the runtime state of every chat with an active session
type Registry struct {
	mu       sync.Mutex
	sessions map[int64]*domain.Session
	logger   *slog.Logger
	now      func() time.Time
}

// New creates an empty registry
func New(logger *slog.Logger) *Registry {
	if logger == nil {
		logger = slog.Default()
	}
	return &Registry{
		sessions: make(map[int64]*domain.Session),
		logger:   logger,
		now:      time.Now,
	}
}

// Clear drops all runtime state of chatID
func (r *Registry) Clear(chatID int64) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if s, ok := r.sessions[chatID]; ok {
		r.logger.Debug("Runtime state cleared", "chat_id", chatID, "video_chat_active", s.VideoChatActive)
	}
	delete(r.sessions, chatID)
}

// MarkVideoChatStarted records that a video chat is running in chatID
func (r *Registry) MarkVideoChatStarted(chatID int64) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s := r.session(chatID)
	s.VideoChatActive = true
	s.StartedAt = r.now().UTC()
}

// Get returns a copy of the session of chatID
func (r *Registry) Get(chatID int64) (domain.Session, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sessions[chatID]
	if !ok {
		return domain.Session{}, false
	}
	return *s, true
}

// Snapshot returns copies of all sessions
func (r *Registry) Snapshot() []domain.Session {
	r.mu.Lock()
	defer r.mu.Unlock()

	return lo.MapToSlice(r.sessions, func(_ int64, s *domain.Session) domain.Session {
		return *s
	})
}

func (r *Registry) session(chatID int64) *domain.Session {
	s, ok := r.sessions[chatID]
	if !ok {
		s = &domain.Session{ChatID: chatID}
		r.sessions[chatID] = s
	}
	return s
}
