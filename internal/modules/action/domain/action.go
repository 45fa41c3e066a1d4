package domain

import (
	lifecycleDomain "github.com/reshetovitsme/groupwatch/internal/modules/lifecycle/domain"
	memberDomain "github.com/reshetovitsme/groupwatch/internal/modules/membership/domain"
)

// Action is one classified side effect request for the executor
type Action struct {
	Kind   ActionKind
	ChatID int64
	UserID int64

	// Old and New are set for membership transitions
	Old memberDomain.MembershipStatus
	New memberDomain.MembershipStatus

	// Self is true when UserID is the bot's own identity
	Self bool

	// MemberCount is set for KickForTooSmall
	MemberCount int

	// Lifecycle is set for VideoChatCleared
	Lifecycle lifecycleDomain.LifecycleKind
}

// IsNoop reports whether executing a would have no side effects beyond logging
func (a Action) IsNoop() bool {
	return a.Kind == ActionKindNoop
}
