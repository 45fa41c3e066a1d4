package service

import (
	"log/slog"

	actionDomain "github.com/reshetovitsme/groupwatch/internal/modules/action/domain"
	"github.com/reshetovitsme/groupwatch/internal/modules/lifecycle/domain"
)

// Router maps group lifecycle messages onto actions. It keeps no state.
type Router struct {
	logger *slog.Logger
}

// NewRouter creates a lifecycle router
func NewRouter(logger *slog.Logger) *Router {
	if logger == nil {
		logger = slog.Default()
	}
	return &Router{logger: logger}
}

// Route classifies a lifecycle message of chatID
func (r *Router) Route(chatID int64, kind domain.LifecycleKind) actionDomain.Action {
	switch kind {
	case domain.LifecycleKindVideoChatStarted, domain.LifecycleKindVideoChatEnded:
		return actionDomain.Action{
			Kind:      actionDomain.ActionKindVideoChatCleared,
			ChatID:    chatID,
			Lifecycle: kind,
		}
	case domain.LifecycleKindOther:
		r.logger.Debug("Ignoring lifecycle message", "chat_id", chatID)
	default:
		r.logger.Debug("Unknown lifecycle kind", "chat_id", chatID, "kind", kind)
	}
	return actionDomain.Action{Kind: actionDomain.ActionKindNoop, ChatID: chatID, Lifecycle: domain.LifecycleKindOther}
}
