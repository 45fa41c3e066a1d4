package repository

import "github.com/reshetovitsme/groupwatch/internal/modules/journal/domain"

// Repository defines the interface for journal storage
type Repository interface {
	Append(entry *domain.Entry)
	// List returns up to limit entries, newest first. chatID 0 means every chat.
	List(chatID int64, limit int) []*domain.Entry
	Len() int
}
