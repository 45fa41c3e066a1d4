package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/reshetovitsme/groupwatch/internal/modules/action/domain"
	journalDomain "github.com/reshetovitsme/groupwatch/internal/modules/journal/domain"
	lifecycleDomain "github.com/reshetovitsme/groupwatch/internal/modules/lifecycle/domain"
	"github.com/samber/oops"
)

// Messenger sends notices to chats and leaves them
type Messenger interface {
	SendNotice(ctx context.Context, chatID int64, notice domain.Notice) error
	LeaveChat(ctx context.Context, chatID int64) error
	BotUsername(ctx context.Context) (string, error)
}

// ChatRecorder persists the set of chats the bot serves
type ChatRecorder interface {
	EnsureChatRecorded(ctx context.Context, chatID int64) error
	ForgetChat(ctx context.Context, chatID int64) error
}

// AdminRefresher reloads the admin cache of a chat
type AdminRefresher interface {
	Refresh(ctx context.Context, chatID int64, force bool) error
	Forget(chatID int64)
}

// RuntimeState holds per-chat playback state
type RuntimeState interface {
	Clear(chatID int64)
	MarkVideoChatStarted(chatID int64)
}

// StatusClearer drops cached membership statuses of a chat
type StatusClearer interface {
	ClearChat(chatID int64) int
}

// Journal records executed actions
type Journal interface {
	Record(action domain.Action, failed bool) *journalDomain.Entry
}

// Options tune the executor flows
type Options struct {
	LeaveDelay      time.Duration
	SupportURL      string
	MinGroupMembers int
}

// Deps are the collaborators the executor drives
type Deps struct {
	Messenger Messenger
	Chats     ChatRecorder
	Admins    AdminRefresher
	Runtime   RuntimeState
	Statuses  StatusClearer
	Journal   Journal
}

// Executor performs the side effects of classified actions.
// A failed collaborator call is logged, counted and ends the current flow.
type Executor struct {
	Deps
	opts   Options
	stats  *Stats
	logger *slog.Logger
}

// New creates a new executor
func New(deps Deps, opts Options, logger *slog.Logger) *Executor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Executor{
		Deps:   deps,
		opts:   opts,
		stats:  newStats(),
		logger: logger,
	}
}

// Stats exposes the executor counters
func (e *Executor) Stats() *Stats {
	return e.stats
}

// RecordChat makes sure an eligible chat is persisted
func (e *Executor) RecordChat(ctx context.Context, chatID int64) bool {
	return e.step(OpEnsureChat, chatID, func() error {
		return e.Chats.EnsureChatRecorded(ctx, chatID)
	})
}

// ExecuteAll runs actions in order
func (e *Executor) ExecuteAll(ctx context.Context, actions []domain.Action) {
	for _, a := range actions {
		e.Execute(ctx, a)
	}
}

// Execute runs the flow of a single action
func (e *Executor) Execute(ctx context.Context, a domain.Action) {
	e.stats.action(a.Kind)
	log := e.logger.With("chat_id", a.ChatID, "action", a.Kind)

	if a.IsNoop() {
		log.Debug("No action", "user_id", a.UserID)
		return
	}

	ok := true
	switch a.Kind {
	case domain.ActionKindJoined:
		if a.Self {
			log.Info("Bot joined the chat")
		} else {
			log.Info("User joined the chat", "user_id", a.UserID)
		}

	case domain.ActionKindLeftOrKicked:
		log.Info("User left or was kicked", "user_id", a.UserID, "self", a.Self)
		if a.Self {
			e.Admins.Forget(a.ChatID)
		}

	case domain.ActionKindBanned:
		log.Info("User was banned", "user_id", a.UserID, "self", a.Self)
		if a.Self {
			e.Admins.Forget(a.ChatID)
		}

	case domain.ActionKindUnbanned:
		log.Info("User was unbanned", "user_id", a.UserID, "self", a.Self)

	case domain.ActionKindSelfPromoted:
		log.Info("Bot promoted to administrator, reloading admin cache")
		ok = e.step(OpRefreshAdmins, a.ChatID, func() error {
			return e.Admins.Refresh(ctx, a.ChatID, true)
		})

	case domain.ActionKindMemberPromotedOrDemoted:
		log.Info("Member rights changed", "user_id", a.UserID, "old", a.Old, "new", a.New)

	case domain.ActionKindRejectNonSupergroup:
		ok = e.reject(ctx, a.ChatID)

	case domain.ActionKindKickForTooSmall:
		ok = e.kickTooSmall(ctx, a.ChatID, a.MemberCount)

	case domain.ActionKindVideoChatCleared:
		ok = e.videoChat(ctx, a.ChatID, a.Lifecycle)

	case domain.ActionKindUnrecognizedStatus:
		log.Warn("Unrecognized membership status", "user_id", a.UserID, "old", a.Old, "new", a.New)

	default:
		log.Warn("Unknown action kind")
	}

	if e.Journal != nil {
		e.Journal.Record(a, !ok)
	}
}

func (e *Executor) reject(ctx context.Context, chatID int64) bool {
	username, err := e.Messenger.BotUsername(ctx)
	if err != nil {
		// the notice still goes out, just without the add-me button
		e.fail(OpBotUsername, chatID, err)
	}

	return e.step(OpSendNotice, chatID, func() error {
		return e.Messenger.SendNotice(ctx, chatID, e.rejectNotice(chatID, username))
	}) && e.step(OpLeaveDelay, chatID, func() error {
		return sleep(ctx, e.opts.LeaveDelay)
	}) && e.step(OpLeaveChat, chatID, func() error {
		return e.Messenger.LeaveChat(ctx, chatID)
	})
}

func (e *Executor) kickTooSmall(ctx context.Context, chatID int64, memberCount int) bool {
	ok := e.step(OpSendNotice, chatID, func() error {
		return e.Messenger.SendNotice(ctx, chatID, e.tooSmallNotice(memberCount))
	}) && e.step(OpLeaveDelay, chatID, func() error {
		return sleep(ctx, e.opts.LeaveDelay)
	}) && e.step(OpLeaveChat, chatID, func() error {
		return e.Messenger.LeaveChat(ctx, chatID)
	}) && e.step(OpRemoveChat, chatID, func() error {
		return e.Chats.ForgetChat(ctx, chatID)
	})
	if !ok {
		return false
	}

	cleared := e.Statuses.ClearChat(chatID)
	e.Admins.Forget(chatID)
	e.logger.Info("Left undersized chat", "chat_id", chatID, "members", memberCount, "statuses_cleared", cleared)
	return true
}

func (e *Executor) videoChat(ctx context.Context, chatID int64, kind lifecycleDomain.LifecycleKind) bool {
	e.Runtime.Clear(chatID)
	if kind == lifecycleDomain.LifecycleKindVideoChatStarted {
		e.Runtime.MarkVideoChatStarted(chatID)
	}
	e.logger.Info("Video chat changed", "chat_id", chatID, "kind", kind)

	return e.step(OpSendNotice, chatID, func() error {
		return e.Messenger.SendNotice(ctx, chatID, videoChatNotice(kind))
	})
}

// step runs one collaborator call and reports whether the flow may continue
func (e *Executor) step(op string, chatID int64, fn func() error) bool {
	if err := fn(); err != nil {
		e.fail(op, chatID, err)
		return false
	}
	return true
}

func (e *Executor) fail(op string, chatID int64, err error) {
	e.stats.failure(op)
	e.logger.Error("Collaborator call failed", "operation", op, "chat_id", chatID,
		"error", oops.In("executor").With("operation", op, "chat_id", chatID).Wrap(err))
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
