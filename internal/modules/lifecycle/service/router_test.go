package service

import (
	"testing"

	actionDomain "github.com/reshetovitsme/groupwatch/internal/modules/action/domain"
	"github.com/reshetovitsme/groupwatch/internal/modules/lifecycle/domain"
	"github.com/stretchr/testify/assert"
)

func TestRouter_Route(t *testing.T) {
	tests := []struct {
		kind domain.LifecycleKind
		want actionDomain.ActionKind
	}{
		{domain.LifecycleKindVideoChatStarted, actionDomain.ActionKindVideoChatCleared},
		{domain.LifecycleKindVideoChatEnded, actionDomain.ActionKindVideoChatCleared},
		{domain.LifecycleKindOther, actionDomain.ActionKindNoop},
		{domain.LifecycleKind("pinned_message"), actionDomain.ActionKindNoop},
	}

	r := NewRouter(nil)
	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			action := r.Route(-1001, tt.kind)
			assert.Equal(t, tt.want, action.Kind)
			assert.Equal(t, int64(-1001), action.ChatID)
			if tt.want == actionDomain.ActionKindVideoChatCleared {
				assert.Equal(t, tt.kind, action.Lifecycle)
			}
		})
	}
}
