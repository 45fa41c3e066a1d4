package service

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"sync"
	"testing"

	actionDomain "github.com/reshetovitsme/groupwatch/internal/modules/action/domain"
	"github.com/reshetovitsme/groupwatch/internal/modules/membership/domain"
	"github.com/reshetovitsme/groupwatch/internal/modules/membership/statuscache"
	"github.com/reshetovitsme/groupwatch/internal/shared/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testChat int64 = -1001234567890
	testBot  int64 = 777
	testUser int64 = 42
)

type fakeCounter struct {
	mu    sync.Mutex
	count int
	err   error
	calls int
}

func (f *fakeCounter) MemberCount(_ context.Context, _ int64) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	return f.count, f.err
}

type fakeIdentity struct {
	id    int64
	err   error
	calls int
}

func (f *fakeIdentity) ResolveBotIdentity(_ context.Context, _ int64) (int64, error) {
	f.calls++
	return f.id, f.err
}

func newTestClassifier(count int) (*Classifier, *statuscache.MemoryStore, *fakeCounter, *fakeIdentity) {
	cache := statuscache.NewMemoryStore()
	counter := &fakeCounter{count: count}
	identity := &fakeIdentity{id: testBot}
	return NewClassifier(cache, counter, identity, nil), cache, counter, identity
}

func update(seq, subject int64, old, new domain.MembershipStatus) domain.MemberUpdate {
	return domain.MemberUpdate{Seq: seq, ChatID: testChat, SubjectID: subject, Old: old, New: new}
}

func TestClassify_TransitionTable(t *testing.T) {
	const (
		left   = domain.MembershipStatusLeft
		member = domain.MembershipStatusMember
		admin  = domain.MembershipStatusAdministrator
		banned = domain.MembershipStatusBanned
		unrec  = domain.MembershipStatusUnrecognized
	)

	tests := []struct {
		name      string
		subject   int64
		old, new  domain.MembershipStatus
		want      []actionDomain.ActionKind
		wantCache domain.MembershipStatus
	}{
		{"member banned", testUser, member, banned, []actionDomain.ActionKind{actionDomain.ActionKindBanned}, ""},
		{"bot banned", testBot, admin, banned, []actionDomain.ActionKind{actionDomain.ActionKindBanned}, banned},
		{"banned from left", testUser, left, banned, []actionDomain.ActionKind{actionDomain.ActionKindBanned}, ""},
		{"user joined", testUser, left, member, []actionDomain.ActionKind{actionDomain.ActionKindJoined}, ""},
		{"user joined as admin", testUser, left, admin, []actionDomain.ActionKind{actionDomain.ActionKindJoined}, ""},
		{"bot joined big group", testBot, left, member, []actionDomain.ActionKind{actionDomain.ActionKindJoined}, ""},
		{"member left", testUser, member, left, []actionDomain.ActionKind{actionDomain.ActionKindLeftOrKicked}, ""},
		{"bot removed", testBot, admin, left, []actionDomain.ActionKind{actionDomain.ActionKindLeftOrKicked}, left},
		{"user unbanned", testUser, banned, left, []actionDomain.ActionKind{actionDomain.ActionKindUnbanned}, ""},
		{"bot unbanned", testBot, banned, left, []actionDomain.ActionKind{actionDomain.ActionKindUnbanned}, left},
		{"bot promoted", testBot, member, admin, []actionDomain.ActionKind{actionDomain.ActionKindSelfPromoted}, ""},
		{"member promoted", testUser, member, admin, []actionDomain.ActionKind{actionDomain.ActionKindMemberPromotedOrDemoted}, ""},
		{"member demoted", testUser, admin, member, []actionDomain.ActionKind{actionDomain.ActionKindMemberPromotedOrDemoted}, ""},
		{"bot demoted", testBot, admin, member, []actionDomain.ActionKind{actionDomain.ActionKindMemberPromotedOrDemoted}, ""},
		{"restricted promoted", testUser, unrec, admin, []actionDomain.ActionKind{actionDomain.ActionKindMemberPromotedOrDemoted}, ""},
		{"unchanged member", testUser, member, member, []actionDomain.ActionKind{actionDomain.ActionKindNoop}, ""},
		{"left to left", testUser, left, left, []actionDomain.ActionKind{actionDomain.ActionKindNoop}, ""},
		{"creator tag", testUser, unrec, member, []actionDomain.ActionKind{actionDomain.ActionKindUnrecognizedStatus}, ""},
		{"restricted from left", testUser, left, unrec, []actionDomain.ActionKind{actionDomain.ActionKindUnrecognizedStatus}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, cache, _, _ := newTestClassifier(MinGroupMembers)

			result := c.Classify(context.Background(), update(10, tt.subject, tt.old, tt.new))
			assert.Equal(t, tt.want, result.Kinds())

			status, ok := cache.Get(statuscache.Key{ChatID: testChat, BotID: testBot})
			if tt.wantCache == "" {
				assert.False(t, ok)
				assert.Nil(t, result.Write)
				return
			}
			require.True(t, ok)
			assert.Equal(t, tt.wantCache, status)
			require.NotNil(t, result.Write)
			assert.True(t, result.Write.Applied)
		})
	}
}

func TestClassify_ZeroSubject(t *testing.T) {
	c, cache, counter, identity := newTestClassifier(0)

	result := c.Classify(context.Background(), update(1, 0, domain.MembershipStatusLeft, domain.MembershipStatusMember))

	assert.Equal(t, []actionDomain.ActionKind{actionDomain.ActionKindNoop}, result.Kinds())
	assert.Zero(t, identity.calls)
	assert.Zero(t, counter.calls)
	assert.Zero(t, cache.Len())
}

func TestClassify_BotJoinGroupSize(t *testing.T) {
	tests := []struct {
		name      string
		count     int
		err       error
		want      []actionDomain.ActionKind
		wantCount int
	}{
		{"exactly threshold", MinGroupMembers, nil, []actionDomain.ActionKind{actionDomain.ActionKindJoined}, 0},
		{"one below threshold", MinGroupMembers - 1, nil, []actionDomain.ActionKind{actionDomain.ActionKindJoined, actionDomain.ActionKindKickForTooSmall}, MinGroupMembers - 1},
		{"lookup failed", 0, fmt.Errorf("bad request"), []actionDomain.ActionKind{actionDomain.ActionKindJoined}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, cache, counter, _ := newTestClassifier(tt.count)
			counter.err = tt.err

			result := c.Classify(context.Background(), update(5, testBot, domain.MembershipStatusLeft, domain.MembershipStatusMember))

			assert.Equal(t, tt.want, result.Kinds())
			assert.Equal(t, 1, counter.calls)
			assert.Zero(t, cache.Len())
			if tt.wantCount > 0 {
				kick := result.Actions[1]
				assert.Equal(t, tt.wantCount, kick.MemberCount)
				assert.Equal(t, testChat, kick.ChatID)
				assert.True(t, kick.Self)
			}
		})
	}
}

func TestClassify_UserJoinSkipsGroupSize(t *testing.T) {
	c, _, counter, _ := newTestClassifier(1)

	result := c.Classify(context.Background(), update(5, testUser, domain.MembershipStatusLeft, domain.MembershipStatusMember))

	assert.Equal(t, []actionDomain.ActionKind{actionDomain.ActionKindJoined}, result.Kinds())
	assert.Zero(t, counter.calls)
}

func TestClassify_IdentityUnavailable(t *testing.T) {
	c, cache, _, identity := newTestClassifier(MinGroupMembers)
	identity.err = errors.ErrIdentityUnavailable

	result := c.Classify(context.Background(), update(3, testBot, domain.MembershipStatusMember, domain.MembershipStatusAdministrator))

	// without an identity the subject is treated as a regular member
	assert.Equal(t, []actionDomain.ActionKind{actionDomain.ActionKindMemberPromotedOrDemoted}, result.Kinds())
	assert.False(t, result.Actions[0].Self)
	assert.Zero(t, cache.Len())
}

func TestClassify_StaleWriteRejected(t *testing.T) {
	c, cache, _, _ := newTestClassifier(MinGroupMembers)
	key := statuscache.Key{ChatID: testChat, BotID: testBot}

	first := c.Classify(context.Background(), update(20, testBot, domain.MembershipStatusMember, domain.MembershipStatusBanned))
	require.NotNil(t, first.Write)
	assert.True(t, first.Write.Applied)

	stale := c.Classify(context.Background(), update(10, testBot, domain.MembershipStatusMember, domain.MembershipStatusLeft))
	assert.Equal(t, []actionDomain.ActionKind{actionDomain.ActionKindLeftOrKicked}, stale.Kinds())
	require.NotNil(t, stale.Write)
	assert.False(t, stale.Write.Applied)

	status, ok := cache.Get(key)
	require.True(t, ok)
	assert.Equal(t, domain.MembershipStatusBanned, status)
}

func TestClassify_ReplayIsIdempotent(t *testing.T) {
	c, cache, _, _ := newTestClassifier(MinGroupMembers)
	u := update(9, testBot, domain.MembershipStatusAdministrator, domain.MembershipStatusLeft)

	first := c.Classify(context.Background(), u)
	second := c.Classify(context.Background(), u)

	assert.Equal(t, first.Kinds(), second.Kinds())
	assert.Equal(t, 1, cache.Len())
	status, _ := cache.Get(statuscache.Key{ChatID: testChat, BotID: testBot})
	assert.Equal(t, domain.MembershipStatusLeft, status)
}

func TestClassify_NoMatchingRuleIsLogged(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	c := NewClassifier(statuscache.NewMemoryStore(), &fakeCounter{count: 100}, &fakeIdentity{id: testBot}, logger)

	got := c.Classify(context.Background(), update(1, testUser, domain.MembershipStatusMember, domain.MembershipStatusMember))

	assert.Equal(t, []actionDomain.ActionKind{actionDomain.ActionKindNoop}, got.Kinds())
	assert.Contains(t, buf.String(), "No transition rule matched")
	assert.Contains(t, buf.String(), errors.ErrNoMatchingRule.Error())
}
