package telegram

import (
	"context"
	"sync"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	actionDomain "github.com/reshetovitsme/groupwatch/internal/modules/action/domain"
	"github.com/reshetovitsme/groupwatch/internal/shared/errors"
	"github.com/samber/lo"
	"github.com/samber/oops"
)

// Client adapts the Bot API to the collaborator ports of the core.
// The bot's own user is fetched once and cached.
type Client struct {
	bot *bot.Bot

	mu sync.Mutex
	me *models.User
}

// NewClient creates a new client around b
func NewClient(b *bot.Bot) *Client {
	return &Client{bot: b}
}

func (c *Client) self(ctx context.Context) (*models.User, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.me != nil {
		return c.me, nil
	}
	me, err := c.bot.GetMe(ctx)
	if err != nil {
		return nil, oops.In("telegram").With("operation", "getMe").Wrapf(errors.ErrIdentityUnavailable, "%v", err)
	}
	c.me = me
	return me, nil
}

// ResolveBotIdentity returns the bot's user id. The bot acts under one account in every chat.
func (c *Client) ResolveBotIdentity(ctx context.Context, _ int64) (int64, error) {
	me, err := c.self(ctx)
	if err != nil {
		return 0, err
	}
	return me.ID, nil
}

// BotUsername returns the bot's @username without the @
func (c *Client) BotUsername(ctx context.Context) (string, error) {
	me, err := c.self(ctx)
	if err != nil {
		return "", err
	}
	return me.Username, nil
}

// SendNotice sends an HTML message with one URL button per row
func (c *Client) SendNotice(ctx context.Context, chatID int64, notice actionDomain.Notice) error {
	params := &bot.SendMessageParams{
		ChatID:    chatID,
		Text:      notice.Text,
		ParseMode: models.ParseModeHTML,
	}
	if len(notice.Buttons) > 0 {
		params.ReplyMarkup = &models.InlineKeyboardMarkup{
			InlineKeyboard: lo.Map(notice.Buttons, func(b actionDomain.Button, _ int) []models.InlineKeyboardButton {
				return []models.InlineKeyboardButton{{Text: b.Text, URL: b.URL}}
			}),
		}
	}

	if _, err := c.bot.SendMessage(ctx, params); err != nil {
		return oops.In("telegram").With("chat_id", chatID, "operation", "sendMessage").Wrap(err)
	}
	return nil
}

// LeaveChat makes the bot leave chatID
func (c *Client) LeaveChat(ctx context.Context, chatID int64) error {
	if _, err := c.bot.LeaveChat(ctx, &bot.LeaveChatParams{ChatID: chatID}); err != nil {
		return oops.In("telegram").With("chat_id", chatID, "operation", "leaveChat").Wrap(err)
	}
	return nil
}

// MemberCount returns the number of members of chatID
func (c *Client) MemberCount(ctx context.Context, chatID int64) (int, error) {
	count, err := c.bot.GetChatMemberCount(ctx, &bot.GetChatMemberCountParams{ChatID: chatID})
	if err != nil {
		return 0, oops.In("telegram").With("chat_id", chatID, "operation", "getChatMemberCount").Wrapf(errors.ErrTransportLookup, "%v", err)
	}
	return count, nil
}

// FetchAdmins returns the user ids of all administrators of chatID, the owner included
func (c *Client) FetchAdmins(ctx context.Context, chatID int64) ([]int64, error) {
	members, err := c.bot.GetChatAdministrators(ctx, &bot.GetChatAdministratorsParams{ChatID: chatID})
	if err != nil {
		return nil, oops.In("telegram").With("chat_id", chatID, "operation", "getChatAdministrators").Wrapf(errors.ErrTransportLookup, "%v", err)
	}

	return lo.FilterMap(members, func(m models.ChatMember, _ int) (int64, bool) {
		user := memberUser(m)
		if user == nil {
			return 0, false
		}
		return user.ID, true
	}), nil
}
