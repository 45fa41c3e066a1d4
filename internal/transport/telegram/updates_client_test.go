package telegram

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	lifecycleDomain "github.com/reshetovitsme/groupwatch/internal/modules/lifecycle/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const videoChatUpdates = `[
	{"update_id":10,"message":{"message_id":1,"date":1700000000,"chat":{"id":-1001234567890,"type":"supergroup","title":"g"},"video_chat_started":{}}},
	{"update_id":11,"message":{"message_id":2,"date":1700000060,"chat":{"id":-1001234567890,"type":"supergroup","title":"g"},"video_chat_ended":{"duration":60}}},
	{"update_id":12,"message":{"message_id":3,"date":1700000070,"chat":{"id":-1001234567890,"type":"supergroup","title":"g"},"text":"\"video_chat_started\": is just text"}}
]`

func (s *sinkFake) kinds() []lifecycleDomain.LifecycleKind {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]lifecycleDomain.LifecycleKind(nil), s.lifecycle...)
}

func TestRenameVideoChatKeys_DecodesLifecycleMessages(t *testing.T) {
	var updates []*models.Update
	require.NoError(t, json.Unmarshal(RenameVideoChatKeys([]byte(videoChatUpdates)), &updates))
	require.Len(t, updates, 3)

	assert.NotNil(t, updates[0].Message.VoiceChatStarted)
	require.NotNil(t, updates[1].Message.VoiceChatEnded)
	assert.Equal(t, 60, updates[1].Message.VoiceChatEnded.Duration)
	assert.Equal(t, `"video_chat_started": is just text`, updates[2].Message.Text)

	sink := &sinkFake{}
	h := New(sink, nil)
	for _, u := range updates {
		h.HandleUpdate(context.Background(), nil, u)
	}
	assert.Equal(t, []lifecycleDomain.LifecycleKind{
		lifecycleDomain.LifecycleKindVideoChatStarted,
		lifecycleDomain.LifecycleKindVideoChatEnded,
		lifecycleDomain.LifecycleKindOther,
	}, sink.kinds())
}

func TestRenameVideoChatKeys_UntouchedWithoutKeys(t *testing.T) {
	payload := []byte(`{"update_id":1,"message":{"text":"video_chat_started"}}`)
	assert.Equal(t, payload, RenameVideoChatKeys(payload))
}

func TestUpdatesClient_LongPolling(t *testing.T) {
	var served atomic.Bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if !strings.HasSuffix(r.URL.Path, "/getUpdates") {
			_, _ = w.Write([]byte(`{"ok":true,"result":true}`))
			return
		}
		if served.CompareAndSwap(false, true) {
			_, _ = w.Write([]byte(`{"ok":true,"result":` + videoChatUpdates + `}`))
			return
		}
		select {
		case <-r.Context().Done():
		case <-time.After(20 * time.Millisecond):
		}
		_, _ = w.Write([]byte(`{"ok":true,"result":[]}`))
	}))
	t.Cleanup(srv.Close)

	sink := &sinkFake{}
	h := New(sink, nil)
	b, err := bot.New("123:abc",
		bot.WithServerURL(srv.URL),
		bot.WithSkipGetMe(),
		bot.WithHTTPClient(PollTimeout, NewUpdatesClient(srv.Client())),
		bot.WithNotAsyncHandlers(),
		bot.WithDefaultHandler(h.HandleUpdate),
	)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		b.Start(ctx)
	}()
	t.Cleanup(func() {
		cancel()
		<-done
	})

	require.Eventually(t, func() bool { return len(sink.kinds()) == 3 }, 5*time.Second, 10*time.Millisecond)
	assert.Equal(t, []lifecycleDomain.LifecycleKind{
		lifecycleDomain.LifecycleKindVideoChatStarted,
		lifecycleDomain.LifecycleKindVideoChatEnded,
		lifecycleDomain.LifecycleKindOther,
	}, sink.kinds())
}
