package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/feeds"
	actionDomain "github.com/reshetovitsme/groupwatch/internal/modules/action/domain"
	"github.com/reshetovitsme/groupwatch/internal/modules/journal/domain"
	journalRepo "github.com/reshetovitsme/groupwatch/internal/modules/journal/repository"
	"github.com/samber/lo"
)

// feedLimit caps the number of items rendered into one feed
const feedLimit = 50

// Service records executed actions and renders them as RSS
type Service struct {
	repo journalRepo.Repository
	now  func() time.Time
}

// New creates a new journal service
func New(repo journalRepo.Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

// Record appends action to the journal. failed marks a flow that was abandoned.
func (s *Service) Record(action actionDomain.Action, failed bool) *domain.Entry {
	entry := &domain.Entry{
		ID:     uuid.NewString(),
		Kind:   action.Kind,
		ChatID: action.ChatID,
		UserID: action.UserID,
		Self:   action.Self,
		Detail: describe(action),
		Failed: failed,
		At:     s.now().UTC(),
	}
	s.repo.Append(entry)
	return entry
}

// Entries returns up to limit entries, newest first. chatID 0 means every chat.
func (s *Service) Entries(chatID int64, limit int) []*domain.Entry {
	return s.repo.List(chatID, limit)
}

// Len returns how many entries the journal holds
func (s *Service) Len() int {
	return s.repo.Len()
}

// GenerateFeed builds an RSS feed of recent actions. chatID 0 means every chat.
func (s *Service) GenerateFeed(chatID int64, baseURL string) *feeds.Feed {
	entries := s.Entries(chatID, feedLimit)

	title := "groupwatch - all chats"
	link := baseURL + "/feed"
	if chatID != 0 {
		title = fmt.Sprintf("groupwatch - chat %d", chatID)
		link = fmt.Sprintf("%s/feed/%d", baseURL, chatID)
	}

	feed := &feeds.Feed{
		Title:       title,
		Link:        &feeds.Link{Href: link},
		Description: "Membership and lifecycle actions taken by the bot",
		Created:     s.now().UTC(),
	}
	if len(entries) > 0 {
		feed.Updated = entries[0].At
	}

	feed.Items = make([]*feeds.Item, 0, len(entries))
	for _, e := range entries {
		feed.Items = append(feed.Items, entryToFeedItem(e, baseURL))
	}
	return feed
}

func entryToFeedItem(e *domain.Entry, baseURL string) *feeds.Item {
	title := truncate(fmt.Sprintf("[%d] %s", e.ChatID, e.Detail), 100)
	if e.Failed {
		title += " (failed)"
	}

	content := fmt.Sprintf("<p>%s</p><ul><li>kind: %s</li><li>chat: %d</li>",
		escapeHTML(e.Detail), e.Kind, e.ChatID)
	if e.UserID != 0 {
		content += fmt.Sprintf("<li>user: %d</li>", e.UserID)
	}
	content += "</ul>"

	return &feeds.Item{
		Title:       title,
		Link:        &feeds.Link{Href: fmt.Sprintf("%s/feed/%d", baseURL, e.ChatID)},
		Description: e.Detail,
		Content:     content,
		Created:     e.At,
		Id:          e.ID,
	}
}

func describe(a actionDomain.Action) string {
	switch a.Kind {
	case actionDomain.ActionKindJoined:
		if a.Self {
			return "Bot joined the chat"
		}
		return fmt.Sprintf("User %d joined", a.UserID)
	case actionDomain.ActionKindLeftOrKicked:
		if a.Self {
			return "Bot left or was removed"
		}
		return fmt.Sprintf("User %d left or was kicked", a.UserID)
	case actionDomain.ActionKindBanned:
		return fmt.Sprintf("User %d banned", a.UserID)
	case actionDomain.ActionKindUnbanned:
		return fmt.Sprintf("User %d unbanned", a.UserID)
	case actionDomain.ActionKindSelfPromoted:
		return "Bot promoted to administrator"
	case actionDomain.ActionKindMemberPromotedOrDemoted:
		return fmt.Sprintf("User %d changed rights: %s -> %s", a.UserID, a.Old, a.New)
	case actionDomain.ActionKindRejectNonSupergroup:
		return "Left a chat that is not a supergroup"
	case actionDomain.ActionKindKickForTooSmall:
		return fmt.Sprintf("Left a supergroup with %d members", a.MemberCount)
	case actionDomain.ActionKindVideoChatCleared:
		return fmt.Sprintf("Runtime state cleared on %s", strings.ReplaceAll(a.Lifecycle.String(), "_", " "))
	case actionDomain.ActionKindUnrecognizedStatus:
		return fmt.Sprintf("Unrecognized status change for user %d: %s -> %s", a.UserID, a.Old, a.New)
	case actionDomain.ActionKindNoop:
		return "No action"
	}
	return a.Kind.String()
}

// truncate cuts s to maxLen runes
func truncate(s string, maxLen int) string {
	if lo.RuneLength(s) <= maxLen {
		return s
	}
	return lo.Substring(s, 0, uint(maxLen)) + "..."
}

func escapeHTML(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch r {
		case '<':
			b.WriteString("&lt;")
		case '>':
			b.WriteString("&gt;")
		case '&':
			b.WriteString("&amp;")
		case '"':
			b.WriteString("&quot;")
		case '\'':
			b.WriteString("&#39;")
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
