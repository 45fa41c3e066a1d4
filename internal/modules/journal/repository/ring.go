package repository

import (
	"sync"

	"github.com/reshetovitsme/groupwatch/internal/modules/journal/domain"
)

// Ring implements Repository as a fixed-size in-memory ring buffer.
// Once full, the oldest entry is overwritten.
type Ring struct {
	mu      sync.RWMutex
	entries []*domain.Entry
	next    int
	full    bool
}

// NewRing creates a ring holding at most size entries
func NewRing(size int) *Ring {
	if size <= 0 {
		size = 1
	}
	return &Ring{entries: make([]*domain.Entry, size)}
}

func (r *Ring) Append(entry *domain.Entry) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries[r.next] = entry
	r.next = (r.next + 1) % len(r.entries)
	if r.next == 0 {
		r.full = true
	}
}

func (r *Ring) List(chatID int64, limit int) []*domain.Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	n := r.next
	if r.full {
		n = len(r.entries)
	}
	if limit <= 0 || limit > n {
		limit = n
	}

	result := make([]*domain.Entry, 0, limit)
	for i := 1; i <= n && len(result) < limit; i++ {
		idx := (r.next - i + len(r.entries)) % len(r.entries)
		e := r.entries[idx]
		if chatID != 0 && e.ChatID != chatID {
			continue
		}
		result = append(result, e)
	}
	return result
}

func (r *Ring) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.full {
		return len(r.entries)
	}
	return r.next
}
