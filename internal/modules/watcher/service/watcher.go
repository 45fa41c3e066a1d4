package service

import (
	"context"
	"fmt"
	"log/slog"
	"runtime/debug"

	actionDomain "github.com/reshetovitsme/groupwatch/internal/modules/action/domain"
	chatService "github.com/reshetovitsme/groupwatch/internal/modules/chat/service"
	lifecycleDomain "github.com/reshetovitsme/groupwatch/internal/modules/lifecycle/domain"
	memberDomain "github.com/reshetovitsme/groupwatch/internal/modules/membership/domain"
	memberService "github.com/reshetovitsme/groupwatch/internal/modules/membership/service"
	"github.com/samber/oops"
)

// ChatFilter decides whether a chat is served
type ChatFilter interface {
	Validate(chatID int64) chatService.Eligibility
}

// Classifier turns a member update into actions
type Classifier interface {
	Classify(ctx context.Context, update memberDomain.MemberUpdate) memberService.Result
}

// Router turns a lifecycle message into an action
type Router interface {
	Route(chatID int64, kind lifecycleDomain.LifecycleKind) actionDomain.Action
}

// Executor performs classified actions
type Executor interface {
	RecordChat(ctx context.Context, chatID int64) bool
	Execute(ctx context.Context, action actionDomain.Action)
	ExecuteAll(ctx context.Context, actions []actionDomain.Action)
}

// Watcher is the entry point for chat member updates and group lifecycle messages.
// Both entry points are safe for concurrent use and never return errors.
type Watcher struct {
	filter     ChatFilter
	classifier Classifier
	router     Router
	executor   Executor
	logger     *slog.Logger
}

// New creates a new watcher
func New(filter ChatFilter, classifier Classifier, router Router, executor Executor, logger *slog.Logger) *Watcher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Watcher{
		filter:     filter,
		classifier: classifier,
		router:     router,
		executor:   executor,
		logger:     logger,
	}
}

// OnMembershipUpdate processes one chat member status change
func (w *Watcher) OnMembershipUpdate(ctx context.Context, update memberDomain.MemberUpdate) {
	defer w.recoverPanic("membership", update.ChatID)

	if w.reject(ctx, update.ChatID) {
		return
	}

	if update.SubjectID == 0 {
		w.executor.Execute(ctx, actionDomain.Action{Kind: actionDomain.ActionKindNoop, ChatID: update.ChatID})
		return
	}

	result := w.classifier.Classify(ctx, update)
	w.logger.Debug("Member update classified", "chat_id", update.ChatID, "seq", update.Seq, "actions", result.Kinds())

	// a chat the bot just left stays forgotten; a failed write is counted by the executor
	if !result.SelfDeparted() {
		w.executor.RecordChat(ctx, update.ChatID)
	}
	w.executor.ExecuteAll(ctx, result.Actions)
}

// OnLifecycleMessage processes one group message of the given kind
func (w *Watcher) OnLifecycleMessage(ctx context.Context, chatID int64, kind lifecycleDomain.LifecycleKind) {
	defer w.recoverPanic("lifecycle", chatID)

	if w.reject(ctx, chatID) {
		return
	}

	w.executor.Execute(ctx, w.router.Route(chatID, kind))
}

func (w *Watcher) reject(ctx context.Context, chatID int64) bool {
	if w.filter.Validate(chatID) == chatService.Eligible {
		return false
	}
	w.logger.Info("Rejecting chat that is not a supergroup", "chat_id", chatID)
	w.executor.Execute(ctx, actionDomain.Action{Kind: actionDomain.ActionKindRejectNonSupergroup, ChatID: chatID})
	return true
}

func (w *Watcher) recoverPanic(entry string, chatID int64) {
	if r := recover(); r != nil {
		err := oops.In("watcher").
			With("entry", entry, "chat_id", chatID, "stack", string(debug.Stack())).
			Errorf("panic while processing update: %v", fmt.Sprint(r))
		w.logger.Error("Recovered from panic", "chat_id", chatID, "error", err)
	}
}
