package service

import (
	"sync/atomic"

	"github.com/reshetovitsme/groupwatch/internal/modules/action/domain"
	"github.com/samber/lo"
)

// Collaborator operations whose failures are counted
const (
	OpEnsureChat    = "ensure_chat"
	OpRemoveChat    = "remove_chat"
	OpSendNotice    = "send_notice"
	OpLeaveChat     = "leave_chat"
	OpLeaveDelay    = "leave_delay"
	OpRefreshAdmins = "refresh_admins"
	OpBotUsername   = "bot_username"
)

var operations = []string{OpEnsureChat, OpRemoveChat, OpSendNotice, OpLeaveChat, OpLeaveDelay, OpRefreshAdmins, OpBotUsername}

// Stats counts executed actions per kind and failed collaborator calls per operation.
// Both maps are fixed at construction so reads and increments need no lock.
type Stats struct {
	actions  map[domain.ActionKind]*atomic.Int64
	failures map[string]*atomic.Int64
}

// StatsSnapshot is a point-in-time copy of Stats
type StatsSnapshot struct {
	Actions  map[string]int64 `json:"actions"`
	Failures map[string]int64 `json:"failures"`
}

func newStats() *Stats {
	s := &Stats{
		actions:  make(map[domain.ActionKind]*atomic.Int64),
		failures: make(map[string]*atomic.Int64),
	}
	for _, name := range domain.ActionKindNames() {
		s.actions[domain.ActionKind(name)] = new(atomic.Int64)
	}
	for _, op := range operations {
		s.failures[op] = new(atomic.Int64)
	}
	return s
}

func (s *Stats) action(kind domain.ActionKind) {
	if c, ok := s.actions[kind]; ok {
		c.Add(1)
	}
}

func (s *Stats) failure(op string) {
	if c, ok := s.failures[op]; ok {
		c.Add(1)
	}
}

// Actions returns how many actions of kind were executed
func (s *Stats) Actions(kind domain.ActionKind) int64 {
	if c, ok := s.actions[kind]; ok {
		return c.Load()
	}
	return 0
}

// Failures returns how many calls of op failed
func (s *Stats) Failures(op string) int64 {
	if c, ok := s.failures[op]; ok {
		return c.Load()
	}
	return 0
}

// Snapshot copies all counters
func (s *Stats) Snapshot() StatsSnapshot {
	return StatsSnapshot{
		Actions: lo.MapEntries(s.actions, func(k domain.ActionKind, _ *atomic.Int64) (string, int64) {
			return string(k), s.Actions(k)
		}),
		Failures: lo.MapValues(s.failures, func(_ *atomic.Int64, op string) int64 {
			return s.Failures(op)
		}),
	}
}
