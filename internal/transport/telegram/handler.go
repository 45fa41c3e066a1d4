package telegram

import (
	"context"
	"log/slog"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	lifecycleDomain "github.com/reshetovitsme/groupwatch/internal/modules/lifecycle/domain"
	memberDomain "github.com/reshetovitsme/groupwatch/internal/modules/membership/domain"
)

// AllowedUpdates are the update types the handler consumes
var AllowedUpdates = bot.AllowedUpdates{"message", "my_chat_member", "chat_member"}

// Sink receives converted updates
type Sink interface {
	OnMembershipUpdate(ctx context.Context, update memberDomain.MemberUpdate)
	OnLifecycleMessage(ctx context.Context, chatID int64, kind lifecycleDomain.LifecycleKind)
}

// Handler handles Telegram updates
type Handler struct {
	sink   Sink
	logger *slog.Logger
}

// New creates a new Telegram handler
func New(sink Sink, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{
		sink:   sink,
		logger: logger,
	}
}

// HandleUpdate processes incoming updates
func (h *Handler) HandleUpdate(ctx context.Context, _ *bot.Bot, update *models.Update) {
	if update == nil {
		return
	}

	switch {
	case update.MyChatMember != nil:
		h.processMember(ctx, update.ID, update.MyChatMember)
	case update.ChatMember != nil:
		h.processMember(ctx, update.ID, update.ChatMember)
	case update.Message != nil:
		h.processMessage(ctx, update.Message)
	}
}

func (h *Handler) processMember(ctx context.Context, updateID int64, cmu *models.ChatMemberUpdated) {
	mu, ok := toMemberUpdate(updateID, cmu)
	if !ok {
		h.logger.Debug("Ignoring member update outside groups", "chat_id", cmu.Chat.ID, "chat_type", cmu.Chat.Type)
		return
	}
	h.sink.OnMembershipUpdate(ctx, mu)
}

func (h *Handler) processMessage(ctx context.Context, msg *models.Message) {
	if !isGroup(msg.Chat) {
		return
	}
	h.sink.OnLifecycleMessage(ctx, msg.Chat.ID, lifecycleKind(msg))
}

func isGroup(chat models.Chat) bool {
	return chat.Type == models.ChatTypeGroup || chat.Type == models.ChatTypeSupergroup
}

// toMemberUpdate converts a chat member change. Only group chats are converted.
func toMemberUpdate(updateID int64, cmu *models.ChatMemberUpdated) (memberDomain.MemberUpdate, bool) {
	if cmu == nil || !isGroup(cmu.Chat) {
		return memberDomain.MemberUpdate{}, false
	}

	mu := memberDomain.MemberUpdate{
		Seq:    updateID,
		ChatID: cmu.Chat.ID,
		Old:    memberDomain.StatusFromTag(string(cmu.OldChatMember.Type)),
		New:    memberDomain.StatusFromTag(string(cmu.NewChatMember.Type)),
	}
	if user := memberUser(cmu.NewChatMember); user != nil {
		mu.SubjectID = user.ID
	}
	return mu, true
}

// lifecycleKind classifies a group message. Video chat events arrive in the
// VoiceChat* fields once UpdatesClient has renamed their keys.
func lifecycleKind(msg *models.Message) lifecycleDomain.LifecycleKind {
	switch {
	case msg.VoiceChatStarted != nil:
		return lifecycleDomain.LifecycleKindVideoChatStarted
	case msg.VoiceChatEnded != nil:
		return lifecycleDomain.LifecycleKindVideoChatEnded
	default:
		return lifecycleDomain.LifecycleKindOther
	}
}

// memberUser returns the user a chat member entry describes, nil when absent
func memberUser(m models.ChatMember) *models.User {
	switch m.Type {
	case models.ChatMemberTypeOwner:
		if m.Owner != nil {
			return m.Owner.User
		}
	case models.ChatMemberTypeAdministrator:
		if m.Administrator != nil {
			return &m.Administrator.User
		}
	case models.ChatMemberTypeMember:
		if m.Member != nil {
			return m.Member.User
		}
	case models.ChatMemberTypeRestricted:
		if m.Restricted != nil {
			return m.Restricted.User
		}
	case models.ChatMemberTypeLeft:
		if m.Left != nil {
			return m.Left.User
		}
	case models.ChatMemberTypeBanned:
		if m.Banned != nil {
			return m.Banned.User
		}
	}
	return nil
}
