package domain

import (
	"time"

	actionDomain "github.com/reshetovitsme/groupwatch/internal/modules/action/domain"
)

// Entry is one executed action as recorded in the journal
type Entry struct {
	ID     string                  `json:"id"`
	Kind   actionDomain.ActionKind `json:"kind"`
	ChatID int64                   `json:"chat_id"`
	UserID int64                   `json:"user_id,omitempty"`
	Self   bool                    `json:"self,omitempty"`
	Detail string                  `json:"detail,omitempty"`
	Failed bool                    `json:"failed,omitempty"`
	At     time.Time               `json:"at"`
}
