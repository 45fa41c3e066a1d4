package domain

import "time"

// Session is the per-chat runtime state tied to a video chat
type Session struct {
	ChatID          int64     `json:"chat_id"`
	VideoChatActive bool      `json:"video_chat_active"`
	StartedAt       time.Time `json:"started_at,omitzero"`
}
