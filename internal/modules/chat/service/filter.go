package service

import (
	"github.com/reshetovitsme/groupwatch/internal/modules/chat/domain"
)

// Eligibility is the verdict of the chat filter
type Eligibility int

const (
	Eligible Eligibility = iota
	Ineligible
)

func (e Eligibility) String() string {
	if e == Eligible {
		return "eligible"
	}
	return "ineligible"
}

// Filter decides which chats the bot serves. Only supergroups are eligible.
type Filter struct{}

// Validate classifies chatID. It has no side effects; ineligible chats are
// handed to the reject flow by the caller.
func (Filter) Validate(chatID int64) Eligibility {
	if domain.IsSupergroup(chatID) {
		return Eligible
	}
	return Ineligible
}
