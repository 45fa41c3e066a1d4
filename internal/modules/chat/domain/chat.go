package domain

import (
	"strconv"
	"strings"
	"time"
)

// supergroupPrefix is how Telegram marks supergroup and channel ids.
const supergroupPrefix = "-100"

// Chat is the persisted record of a chat the bot has seen and accepted
type Chat struct {
	ID        int64     `json:"id"`
	FirstSeen time.Time `json:"first_seen"`
	UpdatedAt time.Time `json:"updated_at"`
}

// IsSupergroup reports whether chatID follows the supergroup id convention
func IsSupergroup(chatID int64) bool {
	return strings.HasPrefix(strconv.FormatInt(chatID, 10), supergroupPrefix)
}
