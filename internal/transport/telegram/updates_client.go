package telegram

import (
	"bytes"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/go-telegram/bot"
	"github.com/samber/oops"
)

// PollTimeout is the long polling timeout of getUpdates
const PollTimeout = time.Minute

// videoChatKey matches the video chat service message keys of the current
// Bot API. The library still decodes them under the former voice_chat names.
var videoChatKey = regexp.MustCompile(`"video_chat_(scheduled|started|ended|participants_invited)"(\s*):`)

// UpdatesClient is the HTTP client of the bot. It renames video chat keys in
// getUpdates responses so they land in Message.VoiceChat* fields.
type UpdatesClient struct {
	next bot.HttpClient
}

// NewUpdatesClient wraps next. A nil next uses an http.Client sized for long polling.
func NewUpdatesClient(next bot.HttpClient) *UpdatesClient {
	if next == nil {
		next = &http.Client{Timeout: PollTimeout}
	}
	return &UpdatesClient{next: next}
}

// Do implements bot.HttpClient
func (c *UpdatesClient) Do(req *http.Request) (*http.Response, error) {
	resp, err := c.next.Do(req)
	if err != nil || !strings.HasSuffix(req.URL.Path, "/getUpdates") {
		return resp, err
	}

	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	if err != nil {
		return nil, oops.In("telegram").With("operation", "getUpdates").Wrap(err)
	}

	body = RenameVideoChatKeys(body)
	resp.Body = io.NopCloser(bytes.NewReader(body))
	resp.ContentLength = int64(len(body))
	resp.Header.Del("Content-Length")
	return resp, nil
}

// RenameVideoChatKeys rewrites video_chat_* object keys to voice_chat_*.
// String values are left alone since a key is always followed by a colon.
func RenameVideoChatKeys(payload []byte) []byte {
	return videoChatKey.ReplaceAll(payload, []byte(`"voice_chat_${1}"${2}:`))
}
