package domain

import "time"

// AdminList is the cached set of administrators of one chat
type AdminList struct {
	ChatID    int64     `json:"chat_id"`
	UserIDs   []int64   `json:"user_ids"`
	FetchedAt time.Time `json:"fetched_at"`
}
