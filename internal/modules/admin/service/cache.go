package service

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/reshetovitsme/groupwatch/internal/modules/admin/domain"
	"github.com/reshetovitsme/groupwatch/internal/shared/errors"
	"github.com/samber/lo"
	"github.com/samber/oops"
)

// Fetcher loads the current administrator ids of a chat from Telegram
type Fetcher interface {
	FetchAdmins(ctx context.Context, chatID int64) ([]int64, error)
}

// Cache keeps per-chat administrator lists
type Cache struct {
	fetcher Fetcher
	logger  *slog.Logger
	mu      sync.RWMutex
	lists   map[int64]*domain.AdminList
}

// New creates an empty admin cache
func New(fetcher Fetcher, logger *slog.Logger) *Cache {
	if logger == nil {
		logger = slog.Default()
	}
	return &Cache{
		fetcher: fetcher,
		logger:  logger,
		lists:   make(map[int64]*domain.AdminList),
	}
}

// Refresh loads the admin list of chatID. Without force a cached list is kept.
func (c *Cache) Refresh(ctx context.Context, chatID int64, force bool) error {
	if !force {
		c.mu.RLock()
		_, ok := c.lists[chatID]
		c.mu.RUnlock()
		if ok {
			return nil
		}
	}

	ids, err := c.fetcher.FetchAdmins(ctx, chatID)
	if err != nil {
		return oops.In("admin").
			With("chat_id", chatID, "force", force).
			Wrapf(errors.ErrAdminListUnavailable, "%v", err)
	}

	list := &domain.AdminList{
		ChatID:    chatID,
		UserIDs:   lo.Uniq(ids),
		FetchedAt: time.Now().UTC(),
	}

	c.mu.Lock()
	c.lists[chatID] = list
	c.mu.Unlock()

	c.logger.Debug("Admin list refreshed", "chat_id", chatID, "admins", len(list.UserIDs), "force", force)
	return nil
}

// Admins returns a copy of the cached list for chatID
func (c *Cache) Admins(chatID int64) (*domain.AdminList, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	list, ok := c.lists[chatID]
	if !ok {
		return nil, false
	}
	out := *list
	out.UserIDs = append([]int64(nil), list.UserIDs...)
	return &out, true
}

// Forget drops the cached list of chatID. The bot calls it once it is no longer a member.
func (c *Cache) Forget(chatID int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.lists, chatID)
}
