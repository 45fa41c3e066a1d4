package telegram

import (
	"context"
	"sync"
	"testing"

	"github.com/go-telegram/bot/models"
	lifecycleDomain "github.com/reshetovitsme/groupwatch/internal/modules/lifecycle/domain"
	memberDomain "github.com/reshetovitsme/groupwatch/internal/modules/membership/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sinkFake struct {
	mu        sync.Mutex
	members   []memberDomain.MemberUpdate
	lifecycle []lifecycleDomain.LifecycleKind
}

func (s *sinkFake) OnMembershipUpdate(_ context.Context, u memberDomain.MemberUpdate) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.members = append(s.members, u)
}

func (s *sinkFake) OnLifecycleMessage(_ context.Context, _ int64, kind lifecycleDomain.LifecycleKind) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lifecycle = append(s.lifecycle, kind)
}

func supergroup() models.Chat {
	return models.Chat{ID: -1001234567890, Type: models.ChatTypeSupergroup}
}

func TestHandleUpdate_MyChatMember(t *testing.T) {
	sink := &sinkFake{}
	h := New(sink, nil)

	h.HandleUpdate(context.Background(), nil, &models.Update{
		ID: 991,
		MyChatMember: &models.ChatMemberUpdated{
			Chat: supergroup(),
			OldChatMember: models.ChatMember{
				Type: models.ChatMemberTypeLeft,
				Left: &models.ChatMemberLeft{User: &models.User{ID: 555}},
			},
			NewChatMember: models.ChatMember{
				Type:          models.ChatMemberTypeAdministrator,
				Administrator: &models.ChatMemberAdministrator{User: models.User{ID: 555}},
			},
		},
	})

	require.Len(t, sink.members, 1)
	assert.Equal(t, memberDomain.MemberUpdate{
		Seq:       991,
		ChatID:    -1001234567890,
		SubjectID: 555,
		Old:       memberDomain.MembershipStatusLeft,
		New:       memberDomain.MembershipStatusAdministrator,
	}, sink.members[0])
}

func TestToMemberUpdate_Statuses(t *testing.T) {
	tests := []struct {
		name   string
		member models.ChatMember
		want   memberDomain.MembershipStatus
	}{
		{"member", models.ChatMember{Type: models.ChatMemberTypeMember, Member: &models.ChatMemberMember{User: &models.User{ID: 1}}}, memberDomain.MembershipStatusMember},
		{"banned", models.ChatMember{Type: models.ChatMemberTypeBanned, Banned: &models.ChatMemberBanned{User: &models.User{ID: 1}}}, memberDomain.MembershipStatusBanned},
		{"owner", models.ChatMember{Type: models.ChatMemberTypeOwner, Owner: &models.ChatMemberOwner{User: &models.User{ID: 1}}}, memberDomain.MembershipStatusUnrecognized},
		{"restricted", models.ChatMember{Type: models.ChatMemberTypeRestricted, Restricted: &models.ChatMemberRestricted{User: &models.User{ID: 1}}}, memberDomain.MembershipStatusUnrecognized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mu, ok := toMemberUpdate(1, &models.ChatMemberUpdated{
				Chat:          supergroup(),
				OldChatMember: models.ChatMember{Type: models.ChatMemberTypeLeft},
				NewChatMember: tt.member,
			})
			require.True(t, ok)
			assert.Equal(t, tt.want, mu.New)
			assert.Equal(t, int64(1), mu.SubjectID)
		})
	}
}

func TestToMemberUpdate_MissingUser(t *testing.T) {
	mu, ok := toMemberUpdate(5, &models.ChatMemberUpdated{
		Chat:          supergroup(),
		NewChatMember: models.ChatMember{Type: models.ChatMemberTypeMember},
	})
	require.True(t, ok)
	assert.Zero(t, mu.SubjectID)
}

func TestHandleUpdate_IgnoresPrivateChats(t *testing.T) {
	sink := &sinkFake{}
	h := New(sink, nil)

	h.HandleUpdate(context.Background(), nil, &models.Update{
		ID: 1,
		MyChatMember: &models.ChatMemberUpdated{
			Chat:          models.Chat{ID: 42, Type: models.ChatTypePrivate},
			NewChatMember: models.ChatMember{Type: models.ChatMemberTypeBanned},
		},
	})
	h.HandleUpdate(context.Background(), nil, &models.Update{
		ID:      2,
		Message: &models.Message{Chat: models.Chat{ID: 42, Type: models.ChatTypePrivate}, Text: "/start"},
	})

	assert.Empty(t, sink.members)
	assert.Empty(t, sink.lifecycle)
}

func TestHandleUpdate_Lifecycle(t *testing.T) {
	sink := &sinkFake{}
	h := New(sink, nil)
	basic := models.Chat{ID: -4242, Type: models.ChatTypeGroup}

	h.HandleUpdate(context.Background(), nil, &models.Update{Message: &models.Message{Chat: supergroup(), VoiceChatStarted: &models.VoiceChatStarted{}}})
	h.HandleUpdate(context.Background(), nil, &models.Update{Message: &models.Message{Chat: supergroup(), VoiceChatEnded: &models.VoiceChatEnded{Duration: 60}}})
	h.HandleUpdate(context.Background(), nil, &models.Update{Message: &models.Message{Chat: basic, Text: "hello"}})

	assert.Equal(t, []lifecycleDomain.LifecycleKind{
		lifecycleDomain.LifecycleKindVideoChatStarted,
		lifecycleDomain.LifecycleKindVideoChatEnded,
		lifecycleDomain.LifecycleKindOther,
	}, sink.lifecycle)
}
