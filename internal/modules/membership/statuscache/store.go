// Package statuscache keeps the bot's last known membership status per chat.
package statuscache

import (
	"sync"

	"github.com/reshetovitsme/groupwatch/internal/modules/membership/domain"
	"github.com/samber/lo"
)

// Key identifies the bot account whose status is cached in one chat
type Key struct {
	ChatID int64
	BotID  int64
}

// Store is a concurrency-safe last-known-status map.
// Set rejects writes whose sequence is lower than the stored one.
type Store interface {
	Get(key Key) (domain.MembershipStatus, bool)
	Set(key Key, status domain.MembershipStatus, seq int64) bool
	ClearChat(chatID int64) int
	Len() int
}

type entry struct {
	status  domain.MembershipStatus
	seq     int64
	cleared bool
}

// MemoryStore implements Store in process memory
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[Key]entry
}

// NewMemoryStore creates an empty store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: make(map[Key]entry)}
}

func (s *MemoryStore) Get(key Key) (domain.MembershipStatus, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.entries[key]
	if !ok || e.cleared {
		return "", false
	}
	return e.status, true
}

// Set stores status for key. A zero seq is unsequenced: it always applies and
// keeps the existing watermark. Replaying the same seq is accepted.
func (s *MemoryStore) Set(key Key, status domain.MembershipStatus, seq int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.entries[key]
	if ok && seq != 0 && seq < current.seq {
		return false
	}

	next := entry{status: status, seq: current.seq}
	if seq > current.seq {
		next.seq = seq
	}
	s.entries[key] = next
	return true
}

// ClearChat forgets every status cached for chatID and returns how many were dropped.
// Watermarks survive so a stale write cannot resurrect a cleared entry.
func (s *MemoryStore) ClearChat(chatID int64) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	keys := lo.Filter(lo.Keys(s.entries), func(k Key, _ int) bool {
		return k.ChatID == chatID && !s.entries[k].cleared
	})
	for _, k := range keys {
		e := s.entries[k]
		e.cleared = true
		e.status = ""
		s.entries[k] = e
	}
	return len(keys)
}

// Len returns the number of live entries
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return lo.CountBy(lo.Values(s.entries), func(e entry) bool { return !e.cleared })
}
