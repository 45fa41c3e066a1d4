package service

import (
	"context"
	"log/slog"

	actionDomain "github.com/reshetovitsme/groupwatch/internal/modules/action/domain"
	"github.com/reshetovitsme/groupwatch/internal/modules/membership/domain"
	"github.com/reshetovitsme/groupwatch/internal/modules/membership/statuscache"
	"github.com/reshetovitsme/groupwatch/internal/shared/errors"
	"github.com/samber/oops"
)

// MinGroupMembers is the smallest supergroup the bot agrees to stay in
const MinGroupMembers = 50

// MemberCounter looks up how many members a chat has
type MemberCounter interface {
	MemberCount(ctx context.Context, chatID int64) (int, error)
}

// IdentityResolver returns the user id the bot acts as in a chat
type IdentityResolver interface {
	ResolveBotIdentity(ctx context.Context, chatID int64) (int64, error)
}

// GroupSize is the verdict of the bot-join eligibility check
type GroupSize int

const (
	GroupSizeSufficient GroupSize = iota
	GroupSizeInsufficient
	GroupSizeLookupFailed
)

// CacheWrite describes the status cache write a classification performed
type CacheWrite struct {
	Key     statuscache.Key
	Status  domain.MembershipStatus
	Applied bool
}

// Result is the classification of one member update
type Result struct {
	Actions []actionDomain.Action
	Write   *CacheWrite
}

// Kinds lists the action kinds of r in order
func (r Result) Kinds() []actionDomain.ActionKind {
	kinds := make([]actionDomain.ActionKind, len(r.Actions))
	for i, a := range r.Actions {
		kinds[i] = a.Kind
	}
	return kinds
}

// SelfDeparted reports whether the update removed the bot from the chat
func (r Result) SelfDeparted() bool {
	if r.Write == nil {
		return false
	}
	return r.Write.Status == domain.MembershipStatusLeft || r.Write.Status == domain.MembershipStatusBanned
}

// Classifier maps member status transitions onto actions
type Classifier struct {
	cache    statuscache.Store
	counter  MemberCounter
	identity IdentityResolver
	logger   *slog.Logger
}

// NewClassifier creates a classifier writing into cache
func NewClassifier(cache statuscache.Store, counter MemberCounter, identity IdentityResolver, logger *slog.Logger) *Classifier {
	if logger == nil {
		logger = slog.Default()
	}
	return &Classifier{
		cache:    cache,
		counter:  counter,
		identity: identity,
		logger:   logger,
	}
}

// Classify evaluates the transition table for update. The chat must already
// have passed the eligibility filter. When the subject is the bot itself the
// status cache is written before Classify returns.
func (c *Classifier) Classify(ctx context.Context, update domain.MemberUpdate) Result {
	if update.SubjectID == 0 {
		c.logger.Debug("Member update without subject", "chat_id", update.ChatID,
			"error", oops.With("chat_id", update.ChatID).Wrap(errors.ErrIneligibleSubject))
		return Result{Actions: []actionDomain.Action{{Kind: actionDomain.ActionKindNoop, ChatID: update.ChatID}}}
	}

	botID, err := c.identity.ResolveBotIdentity(ctx, update.ChatID)
	if err != nil {
		c.logger.Warn("Bot identity unavailable, treating subject as foreign", "chat_id", update.ChatID, "error", err)
		botID = 0
	}
	self := botID != 0 && update.SubjectID == botID

	base := actionDomain.Action{
		ChatID: update.ChatID,
		UserID: update.SubjectID,
		Old:    update.Old,
		New:    update.New,
		Self:   self,
	}
	result := Result{}
	emit := func(kind actionDomain.ActionKind) {
		a := base
		a.Kind = kind
		result.Actions = append(result.Actions, a)
	}
	remember := func(status domain.MembershipStatus) {
		if !self {
			return
		}
		key := statuscache.Key{ChatID: update.ChatID, BotID: botID}
		applied := c.cache.Set(key, status, update.Seq)
		result.Write = &CacheWrite{Key: key, Status: status, Applied: applied}
		if !applied {
			c.logger.Debug("Stale status write rejected", "chat_id", update.ChatID, "seq", update.Seq, "status", status)
		}
	}

	switch {
	case update.New == domain.MembershipStatusBanned:
		emit(actionDomain.ActionKindBanned)
		remember(domain.MembershipStatusBanned)

	case update.Old == domain.MembershipStatusLeft && update.New.IsActive():
		emit(actionDomain.ActionKindJoined)
		if self {
			if verdict, count := c.CheckGroupSize(ctx, update.ChatID); verdict == GroupSizeInsufficient {
				kick := base
				kick.Kind = actionDomain.ActionKindKickForTooSmall
				kick.MemberCount = count
				result.Actions = append(result.Actions, kick)
			}
		}

	case update.Old.IsActive() && update.New == domain.MembershipStatusLeft:
		emit(actionDomain.ActionKindLeftOrKicked)
		remember(domain.MembershipStatusLeft)

	case update.Old == domain.MembershipStatusBanned && update.New == domain.MembershipStatusLeft:
		emit(actionDomain.ActionKindUnbanned)
		remember(domain.MembershipStatusLeft)

	default:
		kind := classifyAdminChange(update.Old, update.New, self)
		if kind == actionDomain.ActionKindNoop {
			c.logger.Debug("No transition rule matched", "chat_id", update.ChatID, "user_id", update.SubjectID,
				"error", oops.With("old", update.Old, "new", update.New).Wrap(errors.ErrNoMatchingRule))
		}
		emit(kind)
	}

	return result
}

// classifyAdminChange handles transitions the join/leave/ban rules did not match
func classifyAdminChange(old, new domain.MembershipStatus, self bool) actionDomain.ActionKind {
	promoted := old != domain.MembershipStatusAdministrator && new == domain.MembershipStatusAdministrator
	demoted := old == domain.MembershipStatusAdministrator && new != domain.MembershipStatusAdministrator

	switch {
	case self && promoted:
		return actionDomain.ActionKindSelfPromoted
	case promoted || demoted:
		return actionDomain.ActionKindMemberPromotedOrDemoted
	case !isRecognized(old) || !isRecognized(new):
		return actionDomain.ActionKindUnrecognizedStatus
	default:
		return actionDomain.ActionKindNoop
	}
}

func isRecognized(status domain.MembershipStatus) bool {
	switch status {
	case domain.MembershipStatusLeft,
		domain.MembershipStatusMember,
		domain.MembershipStatusAdministrator,
		domain.MembershipStatusBanned:
		return true
	case domain.MembershipStatusUnrecognized:
		return false
	}
	return false
}

// CheckGroupSize decides whether a chat the bot just joined is big enough.
// A failed lookup is logged and reported as GroupSizeLookupFailed, which callers treat as sufficient.
func (c *Classifier) CheckGroupSize(ctx context.Context, chatID int64) (GroupSize, int) {
	c.logger.Info("Bot joined the chat", "chat_id", chatID)

	count, err := c.counter.MemberCount(ctx, chatID)
	if err != nil {
		c.logger.Warn("Failed to get supergroup info", "chat_id", chatID,
			"error", oops.In("membership").With("chat_id", chatID).Wrap(errors.ErrTransportLookup),
			"cause", err)
		return GroupSizeLookupFailed, 0
	}

	if count < MinGroupMembers {
		return GroupSizeInsufficient, count
	}
	return GroupSizeSufficient, count
}
